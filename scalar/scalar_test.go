// seehuhn.de/go/vecgeom - a 2D vector graphics geometry engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearlyEqual(t *testing.T) {
	assert.True(t, NearlyEqual(1, 1+Near0/2))
	assert.False(t, NearlyEqual(1, 1+Near0*2))
	assert.True(t, NearlyZero(Near0/2))
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1, Sign(1))
	assert.Equal(t, -1, Sign(-1))
	assert.Equal(t, 0, Sign(0))
	assert.Equal(t, 0, Sign(Near0/2))
}

func TestTrig(t *testing.T) {
	assert.InDelta(t, 1.0, Cos(0), 1e-6)
	assert.InDelta(t, 0.0, Sin(0), 1e-6)
	assert.InDelta(t, float64(Pi/4), float64(Atan2(1, 1)), 1e-6)
}
