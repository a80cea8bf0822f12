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

package stroke

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seehuhn.de/go/vecgeom/geom"
	"seehuhn.de/go/vecgeom/path"
)

// TestStrokeSingleLineButtCap is the testable-properties scenario: a
// straight horizontal segment stroked with a butt cap produces an outline
// whose bounds are exactly the expected rectangle.
func TestStrokeSingleLineButtCap(t *testing.T) {
	p := path.New()
	p.AddLine(geom.Pt(0, 0), geom.Pt(10, 0))

	s := New(Paint{Width: 4, MiterLimit: 4, Cap: CapButt, Join: JoinBevel})
	out := s.Done(p)

	assert.Equal(t, geom.NewRect(0, -2, 10, 2), out.Bounds())
}

func TestStrokeRoundCapExtendsBounds(t *testing.T) {
	p := path.New()
	p.AddLine(geom.Pt(0, 0), geom.Pt(10, 0))

	s := New(Paint{Width: 4, MiterLimit: 4, Cap: CapRound, Join: JoinRound})
	out := s.Done(p)

	b := out.Bounds()
	assert.LessOrEqual(t, b.Min.X, float32(-1.9))
	assert.GreaterOrEqual(t, b.Max.X, float32(11.9))
}

func TestStrokeClosedRectProducesTwoContours(t *testing.T) {
	p := path.New()
	p.AddRect(geom.NewRect(0, 0, 10, 10), geom.Clockwise)

	s := New(Paint{Width: 2, MiterLimit: 4, Cap: CapButt, Join: JoinMiter})
	out := s.Done(p)

	poly := out.Polygon()
	assert.Equal(t, 2, poly.NumContours())
}

func TestDonePointsProducesCircles(t *testing.T) {
	s := New(Paint{Width: 4, Cap: CapRound, Join: JoinRound, MiterLimit: 4})
	out := s.DonePoints([]geom.Point{{5, 5}})
	assert.Equal(t, geom.ShapeCircle, out.Hint().Kind)
}
