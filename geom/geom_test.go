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

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	b := Bounds(pts)
	assert.Equal(t, Rect{Min: Point{0, 0}, Max: Point{10, 10}}, b)
}

func TestBoundsEmpty(t *testing.T) {
	assert.Equal(t, Rect{}, Bounds(nil))
}

func TestPointCross(t *testing.T) {
	a := Pt(1, 0)
	b := Pt(0, 1)
	assert.Equal(t, float32(1), a.Cross(b))
	assert.Equal(t, float32(-1), b.Cross(a))
}

func TestPointNormalize(t *testing.T) {
	p := Pt(3, 4)
	n := p.Normalize()
	assert.InDelta(t, 1.0, float64(n.Length()), 1e-5)
}

func TestRoundRectDegeneracy(t *testing.T) {
	rr := RoundRect{Bounds: NewRect(0, 0, 10, 10)}
	assert.True(t, rr.AllRadiiZero())

	rr2 := RoundRect{
		Bounds: NewRect(0, 0, 10, 10),
		RxTL:   5, RyTL: 5, RxTR: 5, RyTR: 5,
		RxBR: 5, RyBR: 5, RxBL: 5, RyBL: 5,
	}
	assert.True(t, rr2.IsEllipse())
}
