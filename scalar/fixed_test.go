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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedRoundTrip(t *testing.T) {
	for _, f := range []float32{0, 1, -1, 3.5, -3.5, 1000.25} {
		got := FixedFromFloat32(f).ToFloat32()
		assert.InDelta(t, f, got, 1.0/65536)
	}
}

func TestFixedArithmetic(t *testing.T) {
	a := FixedFromFloat32(2.5)
	b := FixedFromFloat32(4.0)
	assert.InDelta(t, 10.0, a.Mul(b).ToFloat32(), 1e-3)
	assert.InDelta(t, 0.625, a.Div(b).ToFloat32(), 1e-3)
	assert.InDelta(t, 6.5, a.Add(b).ToFloat32(), 1e-3)
	assert.InDelta(t, -1.5, a.Sub(b).ToFloat32(), 1e-3)
}

func TestFixedSaturates(t *testing.T) {
	big := Fixed(math.MaxInt32)
	assert.Equal(t, Fixed(math.MaxInt32), big.Add(big))
	assert.Equal(t, Fixed(math.MinInt32), Fixed(math.MinInt32).Sub(big))
}

func TestFixedDivByZero(t *testing.T) {
	assert.Equal(t, Fixed(math.MaxInt32), FixedFromFloat32(1).Div(0))
	assert.Equal(t, Fixed(0), Fixed(0).Div(0))
}

func TestFixedNearlyEqual(t *testing.T) {
	a := FixedFromFloat32(1.0)
	b := a.Add(FixedNear0 / 2)
	assert.True(t, a.NearlyEqual(b))
}
