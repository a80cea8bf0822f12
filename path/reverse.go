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

// segment is one non-MOVE opcode of a contour together with the points it
// contributes (control point(s) followed by the endpoint).
type segment struct {
	op  Op
	pts []geom.Point
}

// contourData is a single contour extracted from a Path's flat opcode
// stream, in a form convenient to walk forwards or backwards.
type contourData struct {
	start  geom.Point
	segs   []segment
	closed bool
}

func extractContours(p *Path) []contourData {
	var out []contourData
	var cur *contourData
	i := 0
	for _, op := range p.Ops {
		switch op {
		case MoveTo:
			out = append(out, contourData{start: p.Pts[i]})
			cur = &out[len(out)-1]
			i++
		case Close:
			if cur != nil {
				cur.closed = true
			}
		default:
			step := op.Step()
			pts := append([]geom.Point(nil), p.Pts[i:i+step]...)
			if cur != nil {
				cur.segs = append(cur.segs, segment{op: op, pts: pts})
			}
			i += step
		}
	}
	return out
}

// reversed returns c walked back to front: control points of each QUAD are
// kept, control points of each CUBIC swap order, and the contour's new
// start is its old last point.
func (c contourData) reversed() contourData {
	n := len(c.segs)
	ends := make([]geom.Point, n+1)
	ends[0] = c.start
	for i, s := range c.segs {
		ends[i+1] = s.pts[len(s.pts)-1]
	}

	rc := contourData{start: ends[n], closed: c.closed}
	for i := n - 1; i >= 0; i-- {
		s := c.segs[i]
		newEnd := ends[i]
		switch s.op {
		case LineTo:
			rc.segs = append(rc.segs, segment{op: LineTo, pts: []geom.Point{newEnd}})
		case QuadTo:
			rc.segs = append(rc.segs, segment{op: QuadTo, pts: []geom.Point{s.pts[0], newEnd}})
		case CubeTo:
			rc.segs = append(rc.segs, segment{op: CubeTo, pts: []geom.Point{s.pts[1], s.pts[0], newEnd}})
		}
	}
	return rc
}

func appendContour(dst *Path, c contourData) {
	dst.MoveTo(c.start)
	for _, s := range c.segs {
		switch s.op {
		case LineTo:
			dst.LineTo(s.pts[0])
		case QuadTo:
			dst.QuadTo(s.pts[0], s.pts[1])
		case CubeTo:
			dst.CubicTo(s.pts[0], s.pts[1], s.pts[2])
		}
	}
	if c.closed {
		dst.Close()
	}
}

// PathTo appends every contour of other onto p verbatim, each starting a
// new contour of its own.
func (p *Path) PathTo(other *Path) {
	for _, c := range extractContours(other) {
		appendContour(p, c)
	}
}

// AddPath appends other's contours onto p. It is PathTo under a name that
// matches the rest of the Add* family.
func (p *Path) AddPath(other *Path) { p.PathTo(other) }

// RPathTo appends every contour of other onto p in reverse: contour order
// is reversed, each contour's points are walked back to front, and CUBIC
// control points swap order.
func (p *Path) RPathTo(other *Path) {
	cs := extractContours(other)
	for i := len(cs) - 1; i >= 0; i-- {
		appendContour(p, cs[i].reversed())
	}
}

// AddRPath appends other's contours onto p in reverse. It is RPathTo under
// a name that matches the rest of the Add* family.
func (p *Path) AddRPath(other *Path) { p.RPathTo(other) }

// reversedContour returns a new path holding p's own contours in reverse,
// used internally to realize AddRoundRect's counter-clockwise direction.
func (p *Path) reversedContour() *Path {
	cs := extractContours(p)
	np := New()
	for i := len(cs) - 1; i >= 0; i-- {
		appendContour(np, cs[i].reversed())
	}
	return np
}
