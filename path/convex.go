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
	"seehuhn.de/go/vecgeom/curve"
	"seehuhn.de/go/vecgeom/geom"
	"seehuhn.de/go/vecgeom/polygon"
	"seehuhn.de/go/vecgeom/scalar"
)

// Polygon returns the flattened, curve-free polyline approximation of the
// path: every LINE is copied verbatim, every QUAD/CUBIC is replaced by its
// flattened segments, and each MOVE starts a new contour entry in Counts
// (CLOSE adds no point of its own).
func (p *Path) Polygon() polygon.Polygon {
	if p.polygonDirty {
		p.poly = p.flatten()
		p.polygonDirty = false
		p.poly.Convex = p.Convex()
	}
	return p.poly
}

func (p *Path) flatten() polygon.Polygon {
	var out polygon.Polygon
	contourStart := 0
	i := 0
	var cur geom.Point
	flushContour := func() {
		n := len(out.Points) - contourStart
		if n > 0 {
			out.Counts = append(out.Counts, n)
		}
		contourStart = len(out.Points)
	}
	for _, op := range p.Ops {
		switch op {
		case MoveTo:
			flushContour()
			cur = p.Pts[i]
			out.Points = append(out.Points, cur)
			i++
		case LineTo:
			cur = p.Pts[i]
			out.Points = append(out.Points, cur)
			i++
		case QuadTo:
			c, end := p.Pts[i], p.Pts[i+1]
			curve.FlattenQuadratic(cur, c, end, func(pt geom.Point) {
				out.Points = append(out.Points, pt)
			})
			cur = end
			i += 2
		case CubeTo:
			c0, c1, end := p.Pts[i], p.Pts[i+1], p.Pts[i+2]
			curve.FlattenCubic(cur, c0, c1, end, func(pt geom.Point) {
				out.Points = append(out.Points, pt)
			})
			cur = end
			i += 3
		case Close:
			// no point contribution; contour continues until the next MOVE
		}
	}
	flushContour()
	out.Counts = append(out.Counts, 0)
	return out
}

// Convex reports whether the path describes a single convex region, either
// because its [Hint] is a primitive that is always convex, or because it is
// a single closed contour whose flattened outline never turns against its
// initial winding direction.
func (p *Path) Convex() bool {
	if p.convexDirty {
		p.convex = p.computeConvex()
		p.convexDirty = false
	}
	return p.convex
}

// SetConvex overrides the cached convexity flag, skipping recomputation
// until the path is next mutated.
func (p *Path) SetConvex(convex bool) {
	p.convex = convex
	p.convexDirty = false
}

func (p *Path) computeConvex() bool {
	switch p.Hint().Kind {
	case geom.ShapeRect, geom.ShapeRoundRect, geom.ShapeTriangle, geom.ShapeCircle, geom.ShapeEllipse:
		return true
	case geom.ShapeLine, geom.ShapePoint:
		return false
	}

	if p.numContours != 1 {
		return false
	}
	last, ok := lastOp(p.Ops)
	if !ok || last != Close {
		return false
	}

	pts := singleContourPoints(p.Polygon())
	return isConvexLoop(pts)
}

func singleContourPoints(poly polygon.Polygon) []geom.Point {
	cs := poly.Contours()
	if len(cs) != 1 {
		return nil
	}
	return cs[0]
}

// isConvexLoop walks the closed polyline pts and reports whether the sign
// of the cross product between consecutive edge vectors never changes.
// Zero crosses (collinear edges) do not count as a turn either way.
func isConvexLoop(pts []geom.Point) bool {
	n := len(pts)
	if n < 3 {
		return false
	}
	expected := 0
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		c := pts[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		s := scalar.Sign(cross)
		if s == 0 {
			continue
		}
		if expected == 0 {
			expected = s
		} else if s != expected {
			return false
		}
	}
	return true
}
