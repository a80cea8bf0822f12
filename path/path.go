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

// Package path implements the append-only command/point stream at the
// center of the geometry pipeline, with lazily-computed caches for bounds,
// hint shape, convexity and the flattened [polygon.Polygon] used by the
// tessellator and the stroker.
package path

import (
	"seehuhn.de/go/vecgeom/curve"
	"seehuhn.de/go/vecgeom/geom"
	"seehuhn.de/go/vecgeom/matrix"
	"seehuhn.de/go/vecgeom/polygon"
	"seehuhn.de/go/vecgeom/scalar"
)

// Op is one opcode in a Path's command stream.
type Op uint8

const (
	MoveTo Op = iota
	Close
	LineTo
	QuadTo
	CubeTo
)

// Step returns the number of points the opcode contributes to the point
// stream: MOVE=1, CLOSE=0, LINE=1, QUAD=2, CUBIC=3.
func (op Op) Step() int {
	switch op {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubeTo:
		return 3
	default: // Close
		return 0
	}
}

func (op Op) String() string {
	switch op {
	case MoveTo:
		return "move"
	case Close:
		return "close"
	case LineTo:
		return "line"
	case QuadTo:
		return "quad"
	case CubeTo:
		return "cubic"
	default:
		return "?"
	}
}

// Path is an append-only stream of opcodes and points. The zero value is an
// empty, ready-to-use path.
type Path struct {
	Ops []Op
	Pts []geom.Point

	cur         geom.Point
	hasCur      bool
	contourHead geom.Point
	numContours int

	curvePresent bool
	explicitHint *geom.Shape

	boundsDirty  bool
	hintDirty    bool
	polygonDirty bool
	convexDirty  bool

	bounds  geom.Rect
	hint    geom.Shape
	poly    polygon.Polygon
	convex  bool
}

// New returns an empty path.
func New() *Path {
	p := &Path{}
	p.Init()
	return p
}

// Init resets p to the empty path, equivalent to the zero value.
func (p *Path) Init() {
	*p = Path{}
	p.markDirty()
}

// Clear removes all opcodes and points, keeping the underlying storage.
func (p *Path) Clear() {
	p.Ops = p.Ops[:0]
	p.Pts = p.Pts[:0]
	p.hasCur = false
	p.numContours = 0
	p.curvePresent = false
	p.explicitHint = nil
	p.markDirty()
}

// Copy returns an independent deep copy of p.
func (p *Path) Copy() *Path {
	q := &Path{
		Ops:          append([]Op(nil), p.Ops...),
		Pts:          append([]geom.Point(nil), p.Pts...),
		cur:          p.cur,
		hasCur:       p.hasCur,
		contourHead:  p.contourHead,
		numContours:  p.numContours,
		curvePresent: p.curvePresent,
	}
	q.markDirty()
	if p.explicitHint != nil {
		h := *p.explicitHint
		q.explicitHint = &h
	}
	return q
}

// IsNull reports whether the path has no opcodes at all.
func (p *Path) IsNull() bool { return len(p.Ops) == 0 }

// Last returns the current point and whether one exists (false for an
// empty path).
func (p *Path) Last() (geom.Point, bool) { return p.cur, p.hasCur }

// SetLast overwrites the current point without appending a new opcode,
// also rewriting the most recently pushed coordinate in the point stream.
func (p *Path) SetLast(pt geom.Point) {
	if !p.hasCur {
		return
	}
	p.cur = pt
	if len(p.Pts) > 0 {
		p.Pts[len(p.Pts)-1] = pt
	}
	p.markDirty()
}

// markDirty invalidates every cache, including an explicit hint recorded
// by a shape adder: any mutation can turn the path into something the
// recorded shape no longer describes. Adders re-record their hint after
// appending.
func (p *Path) markDirty() {
	p.boundsDirty = true
	p.hintDirty = true
	p.polygonDirty = true
	p.convexDirty = true
	p.explicitHint = nil
}

func (p *Path) lastOp() (Op, bool) {
	if len(p.Ops) == 0 {
		return 0, false
	}
	return p.Ops[len(p.Ops)-1], true
}

// ensureOpen guarantees there is a current contour to append to, honoring
// the "LINE/QUAD/CUBIC after CLOSE auto-inserts a MOVE" invariant, and the
// implicit move-to-origin for the degenerate case of building from an
// empty path.
func (p *Path) ensureOpen() {
	if last, ok := p.lastOp(); !ok {
		p.MoveTo(geom.Point{})
		return
	} else if last == Close {
		p.MoveTo(p.cur)
	}
}

// MoveTo starts a new contour at pt. If the path's last opcode is already a
// MOVE, the two collapse: pt replaces the previous move's point instead of
// appending a new one.
func (p *Path) MoveTo(pt geom.Point) {
	if last, ok := p.lastOp(); ok && last == MoveTo {
		p.Pts[len(p.Pts)-1] = pt
	} else {
		p.Ops = append(p.Ops, MoveTo)
		p.Pts = append(p.Pts, pt)
		p.numContours++
	}
	p.cur = pt
	p.hasCur = true
	p.contourHead = pt
	p.markDirty()
}

// LineTo appends a straight segment from the current point to pt.
func (p *Path) LineTo(pt geom.Point) {
	p.ensureOpen()
	p.Ops = append(p.Ops, LineTo)
	p.Pts = append(p.Pts, pt)
	p.cur = pt
	p.markDirty()
}

// QuadTo appends a quadratic Bezier from the current point through control
// point c to endpoint pt.
func (p *Path) QuadTo(c, pt geom.Point) {
	p.ensureOpen()
	p.Ops = append(p.Ops, QuadTo)
	p.Pts = append(p.Pts, c, pt)
	p.cur = pt
	p.curvePresent = true
	p.markDirty()
}

// CubicTo appends a cubic Bezier from the current point through controls
// c0, c1 to endpoint pt.
func (p *Path) CubicTo(c0, c1, pt geom.Point) {
	p.ensureOpen()
	p.Ops = append(p.Ops, CubeTo)
	p.Pts = append(p.Pts, c0, c1, pt)
	p.cur = pt
	p.curvePresent = true
	p.markDirty()
}

// ArcTo appends an elliptical arc (center, radii rx/ry, start angle and
// signed sweep in radians) as a sequence of quadratic Beziers, starting a
// new contour at the arc's nominal start point if the path has no current
// point yet.
func (p *Path) ArcTo(center geom.Point, rx, ry, start, sweep scalar.S) {
	if !p.hasCur {
		startPt := geom.Pt(center.X+rx*scalar.Cos(start), center.Y+ry*scalar.Sin(start))
		p.MoveTo(startPt)
	}
	curve.FlattenArc(center, rx, ry, start, sweep, func(ctrl, end geom.Point) {
		p.QuadTo(ctrl, end)
	})
}

// Close closes the current contour: if the current point is not already at
// the contour's starting point, a LINE to that point is emitted first, then
// a single CLOSE opcode. Calling Close when the last opcode is already
// CLOSE, or on an empty path, is a no-op.
func (p *Path) Close() {
	if !p.hasCur {
		return
	}
	if last, ok := p.lastOp(); ok && last == Close {
		return
	}
	if !p.cur.NearlyEqual(p.contourHead) {
		p.Ops = append(p.Ops, LineTo)
		p.Pts = append(p.Pts, p.contourHead)
	}
	p.Ops = append(p.Ops, Close)
	p.cur = p.contourHead
	p.markDirty()
}

// ApplyMatrix transforms every point in the path (including curve control
// points) in place through m.
func (p *Path) ApplyMatrix(m matrix.Matrix) {
	m.ApplyPoints(p.Pts)
	if p.hasCur {
		p.cur = m.Apply(p.cur)
		p.contourHead = m.Apply(p.contourHead)
	}
	p.markDirty()
}

// Bounds returns the path's bounding rectangle: the bounding box of every
// point in the raw stream, including curve control points. Since a Bezier
// curve always lies within the convex hull of its control points, this is
// always a safe (if not minimal) bound.
func (p *Path) Bounds() geom.Rect {
	if p.boundsDirty {
		p.bounds = geom.Bounds(p.Pts)
		p.boundsDirty = false
	}
	return p.bounds
}
