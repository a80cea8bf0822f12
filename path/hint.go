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

import "seehuhn.de/go/vecgeom/geom"

// Hint returns a cheap structural classification of the path: RECT,
// TRIANGLE, LINE or POINT when the raw opcode stream matches one of those
// shapes exactly, or a shape recorded directly by one of the Add* helpers
// (AddRect, AddRoundRect, AddCircle, AddEllipse, AddArc, AddTriangle, AddLine)
// when called on an otherwise-empty path. Returns ShapeNone when nothing
// more specific can be said; callers needing an exact outline should fall
// back to [Path.Polygon].
func (p *Path) Hint() geom.Shape {
	if p.hintDirty {
		p.hint = p.computeHint()
		p.hintDirty = false
	}
	return p.hint
}

func (p *Path) computeHint() geom.Shape {
	if p.explicitHint != nil {
		return *p.explicitHint
	}
	if p.curvePresent {
		return geom.Shape{Kind: geom.ShapeNone}
	}

	ops := p.Ops
	if n, ok := lastOp(ops); ok && n == Close {
		ops = ops[:len(ops)-1]
	}

	switch {
	case opsMatch(ops, MoveTo, LineTo, LineTo, LineTo, LineTo) && len(p.Pts) == 5 && p.Pts[0].NearlyEqual(p.Pts[4]):
		if r, ok := axisAlignedRect(p.Pts[:5]); ok {
			return geom.Shape{Kind: geom.ShapeRect, Rect: r}
		}
	case opsMatch(ops, MoveTo, LineTo, LineTo, LineTo) && len(p.Pts) == 4 && p.Pts[0].NearlyEqual(p.Pts[3]):
		return geom.Shape{Kind: geom.ShapeTriangle, Triangle: geom.Triangle{
			P0: p.Pts[0], P1: p.Pts[1], P2: p.Pts[2],
		}}
	case opsMatch(ops, MoveTo, LineTo) && len(p.Pts) == 2:
		return geom.Shape{Kind: geom.ShapeLine, Line: geom.Line{P0: p.Pts[0], P1: p.Pts[1]}}
	case opsMatch(ops, MoveTo) && len(p.Pts) == 1:
		return geom.Shape{Kind: geom.ShapePoint, Point: p.Pts[0]}
	}
	return geom.Shape{Kind: geom.ShapeNone}
}

func lastOp(ops []Op) (Op, bool) {
	if len(ops) == 0 {
		return 0, false
	}
	return ops[len(ops)-1], true
}

func opsMatch(ops []Op, want ...Op) bool {
	if len(ops) != len(want) {
		return false
	}
	for i, op := range want {
		if ops[i] != op {
			return false
		}
	}
	return true
}

// axisAlignedRect reports whether the 5-point closed quadrilateral pts
// (first point repeated as the fifth) is an axis-aligned rectangle, i.e.
// consecutive edges alternate between purely horizontal and purely
// vertical, and returns its normalized bounds.
func axisAlignedRect(pts []geom.Point) (geom.Rect, bool) {
	edgeHorizontal := make([]bool, 4)
	for i := 0; i < 4; i++ {
		a, b := pts[i], pts[i+1]
		horizontal := a.Y == b.Y
		vertical := a.X == b.X
		if horizontal == vertical { // both (degenerate) or neither (diagonal)
			return geom.Rect{}, false
		}
		edgeHorizontal[i] = horizontal
	}
	// a proper rectangle alternates horizontal/vertical edges
	for i := 0; i < 4; i++ {
		if edgeHorizontal[i] == edgeHorizontal[(i+1)%4] {
			return geom.Rect{}, false
		}
	}
	return geom.Bounds(pts), true
}
