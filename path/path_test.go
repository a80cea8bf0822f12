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

package path

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seehuhn.de/go/vecgeom/geom"
	"seehuhn.de/go/vecgeom/matrix"
)

// TestAxisAlignedRectHint covers the testable-properties scenario: a MOVE
// plus four LINEs forming a closed axis-aligned rectangle is recognized as
// a RECT hint, reports the right bounds, and is convex.
func TestAxisAlignedRectHint(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt(0, 0))
	p.LineTo(geom.Pt(10, 0))
	p.LineTo(geom.Pt(10, 10))
	p.LineTo(geom.Pt(0, 10))
	p.LineTo(geom.Pt(0, 0))

	hint := p.Hint()
	assert.Equal(t, geom.ShapeRect, hint.Kind)
	assert.Equal(t, geom.NewRect(0, 0, 10, 10), hint.Rect)
	assert.Equal(t, geom.NewRect(0, 0, 10, 10), p.Bounds())
	assert.True(t, p.Convex())
}

func TestTriangleHint(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt(0, 0))
	p.LineTo(geom.Pt(10, 0))
	p.LineTo(geom.Pt(5, 10))
	p.Close()

	hint := p.Hint()
	assert.Equal(t, geom.ShapeTriangle, hint.Kind)
	assert.True(t, p.Convex())
}

func TestLineHint(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt(0, 0))
	p.LineTo(geom.Pt(10, 10))

	hint := p.Hint()
	assert.Equal(t, geom.ShapeLine, hint.Kind)
	assert.False(t, p.Convex())
}

func TestPointHint(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt(3, 4))

	hint := p.Hint()
	assert.Equal(t, geom.ShapePoint, hint.Kind)
}

// TestRoundRectDegeneracy is the scenario covering a RoundRect with all
// corner radii at zero degenerating to a plain rectangle hint.
func TestRoundRectDegeneracy(t *testing.T) {
	p := New()
	rr := geom.RoundRect{Bounds: geom.NewRect(0, 0, 20, 10)}
	p.AddRoundRect(rr, geom.Clockwise)

	hint := p.Hint()
	assert.Equal(t, geom.ShapeRect, hint.Kind)
}

func TestAddRectHintOnEmptyPath(t *testing.T) {
	p := New()
	p.AddRect(geom.NewRect(0, 0, 5, 5), geom.Clockwise)
	assert.Equal(t, geom.ShapeRect, p.Hint().Kind)
	assert.True(t, p.Convex())
}

func TestAddRectThenMoreLosesExplicitHint(t *testing.T) {
	p := New()
	p.AddRect(geom.NewRect(0, 0, 5, 5), geom.Clockwise)
	p.AddRect(geom.NewRect(10, 10, 15, 15), geom.Clockwise)
	// two contours: no longer a single primitive shape
	assert.Equal(t, geom.ShapeNone, p.Hint().Kind)
}

func TestLineToAfterAddRectLosesExplicitHint(t *testing.T) {
	p := New()
	p.AddRect(geom.NewRect(0, 0, 5, 5), geom.Clockwise)
	p.LineTo(geom.Pt(20, 20))
	// the extra segment opens a second contour; the path is no longer
	// the plain rectangle the adder recorded
	assert.NotEqual(t, geom.ShapeRect, p.Hint().Kind)
}

func TestApplyMatrixInvalidatesHint(t *testing.T) {
	p := New()
	p.AddCircle(geom.Pt(5, 5), 2, geom.Clockwise)
	assert.Equal(t, geom.ShapeCircle, p.Hint().Kind)

	p.ApplyMatrix(matrix.NewScale(3, 1))

	// the transformed outline is an ellipse; the recorded circle no
	// longer describes it
	assert.NotEqual(t, geom.ShapeCircle, p.Hint().Kind)

	// the point data itself was transformed
	last, ok := p.Last()
	assert.True(t, ok)
	assert.True(t, last.NearlyEqual(geom.Pt(21, 5)))
}

func TestCloseAfterCloseIsNoOp(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt(0, 0))
	p.LineTo(geom.Pt(1, 0))
	p.Close()
	n := len(p.Ops)
	p.Close()
	assert.Equal(t, n, len(p.Ops))
}

func TestLineAfterCloseAutoMoves(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt(0, 0))
	p.LineTo(geom.Pt(1, 0))
	p.Close()
	p.LineTo(geom.Pt(5, 5))

	// should have auto-inserted a MOVE back to the contour head (0,0)
	assert.Equal(t, 2, p.numContours)
	last, ok := p.Last()
	assert.True(t, ok)
	assert.Equal(t, geom.Pt(5, 5), last)
}

func TestConsecutiveMovesCollapse(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt(0, 0))
	p.MoveTo(geom.Pt(1, 1))
	assert.Equal(t, 1, len(p.Ops))
	assert.Equal(t, 1, len(p.Pts))
	assert.Equal(t, geom.Pt(1, 1), p.Pts[0])
}

func TestPolygonFlattensCurves(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt(0, 0))
	p.QuadTo(geom.Pt(50, 100), geom.Pt(100, 0))
	p.Close()

	poly := p.Polygon()
	assert.Equal(t, 1, poly.NumContours())
	assert.True(t, len(poly.Points) > 2)
}

func TestRPathToReversesAndSwapsControlOrder(t *testing.T) {
	src := New()
	src.MoveTo(geom.Pt(0, 0))
	src.CubicTo(geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(3, 3))

	dst := New()
	dst.RPathTo(src)

	assert.Equal(t, geom.Pt(3, 3), dst.Pts[0])
	assert.Equal(t, CubeTo, dst.Ops[1])
	// control points swap order: original (c0=1,1 c1=2,2) -> reversed (2,2 then 1,1)
	assert.Equal(t, geom.Pt(2, 2), dst.Pts[1])
	assert.Equal(t, geom.Pt(1, 1), dst.Pts[2])
	assert.Equal(t, geom.Pt(0, 0), dst.Pts[3])
}

func TestAddPathAppendsContours(t *testing.T) {
	a := New()
	a.AddRect(geom.NewRect(0, 0, 5, 5), geom.Clockwise)

	b := New()
	b.AddRect(geom.NewRect(10, 10, 15, 15), geom.Clockwise)

	a.AddPath(b)
	assert.Equal(t, 2, a.numContours)
}

func TestArcClosesEllipse(t *testing.T) {
	p := New()
	p.AddEllipse(geom.Pt(5, 5), 3, 2, geom.Clockwise)
	assert.Equal(t, geom.ShapeEllipse, p.Hint().Kind)

	last, ok := p.Last()
	assert.True(t, ok)
	assert.True(t, last.NearlyEqual(geom.Pt(8, 5)))
}

// TestPolygonRoundTrip checks that a path of only MOVE/LINE opcodes
// flattens to exactly the points that were inserted, contour by contour.
func TestPolygonRoundTrip(t *testing.T) {
	contours := [][]geom.Point{
		{{0, 0}, {10, 0}, {10, 10}},
		{{20, 20}, {30, 20}, {25, 30}, {20, 25}},
	}

	p := New()
	for _, c := range contours {
		p.MoveTo(c[0])
		for _, pt := range c[1:] {
			p.LineTo(pt)
		}
	}

	poly := p.Polygon()
	got := poly.Contours()
	assert.Len(t, got, len(contours))
	for i, c := range contours {
		assert.Equal(t, c, got[i])
	}
}

// TestStarIsNotConvex feeds the convexity detector a five-pointed star, a
// single closed contour whose edge turns change sign at every spike.
func TestStarIsNotConvex(t *testing.T) {
	p := New()
	star := []geom.Point{
		{0, 10}, {2, 2}, {10, 2}, {4, -2}, {6, -10},
		{0, -5}, {-6, -10}, {-4, -2}, {-10, 2}, {-2, 2},
	}
	p.MoveTo(star[0])
	for _, pt := range star[1:] {
		p.LineTo(pt)
	}
	p.Close()

	assert.False(t, p.Convex())
}

// TestConvexHexagon checks the other side: a single closed convex contour
// that is not one of the hinted primitive shapes.
func TestConvexHexagon(t *testing.T) {
	p := New()
	hex := []geom.Point{
		{2, 0}, {6, 0}, {8, 3}, {6, 6}, {2, 6}, {0, 3},
	}
	p.MoveTo(hex[0])
	for _, pt := range hex[1:] {
		p.LineTo(pt)
	}
	p.Close()

	assert.True(t, p.Convex())
}
