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

package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seehuhn.de/go/vecgeom/geom"
)

func TestContours(t *testing.T) {
	p := &Polygon{
		Points: []geom.Point{
			{0, 0}, {10, 0}, {10, 10}, {0, 10},
			{20, 20}, {30, 20}, {20, 30},
		},
		Counts: []int{4, 3, 0},
	}
	cs := p.Contours()
	assert.Len(t, cs, 2)
	assert.Len(t, cs[0], 4)
	assert.Len(t, cs[1], 3)
	assert.Equal(t, 2, p.NumContours())
}

func TestSignedArea(t *testing.T) {
	// a 10x10 square, clockwise in y-down space
	p := &Polygon{
		Points: []geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		Counts: []int{4, 0},
	}
	assert.InDelta(t, 100.0, float64(p.SignedArea()), 1e-3)
}
