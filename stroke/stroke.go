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

// Package stroke builds a filled outline path from an input path (or raw
// point/line arrays) and a paint description, offsetting each contour by
// half the stroke width and patching the result together with the
// requested joins and caps.
package stroke

import (
	"seehuhn.de/go/vecgeom/curve"
	"seehuhn.de/go/vecgeom/geom"
	"seehuhn.de/go/vecgeom/path"
	"seehuhn.de/go/vecgeom/scalar"
)

// CapStyle selects how an open contour's endpoints are finished.
type CapStyle int

const (
	CapButt CapStyle = iota
	CapRound
	CapSquare
)

// JoinStyle selects how two adjacent segments of a contour are connected.
type JoinStyle int

const (
	JoinMiter JoinStyle = iota
	JoinRound
	JoinBevel
)

// Paint describes a stroke: a width, the join style's miter cutoff, and
// the cap/join styles themselves.
type Paint struct {
	Width      scalar.S
	MiterLimit scalar.S
	Cap        CapStyle
	Join       JoinStyle
}

// Stroker turns paths into their stroked outline under a fixed Paint.
type Stroker struct {
	Paint Paint
}

// New returns a Stroker using paint.
func New(paint Paint) *Stroker { return &Stroker{Paint: paint} }

// Done flattens p (via its polygon cache) and returns a new filled path
// tracing the stroked outline of every contour.
func (s *Stroker) Done(p *path.Path) *path.Path {
	out := path.New()
	poly := p.Polygon()
	for _, contour := range poly.Contours() {
		if len(contour) < 2 {
			continue
		}
		closed := contour[0].NearlyEqual(contour[len(contour)-1])
		pts := contour
		if closed && len(pts) > 1 {
			pts = pts[:len(pts)-1] // drop the repeated closing point
		}
		s.strokeContour(out, pts, closed)
	}
	return out
}

// DoneLines strokes each independent two-point segment in pts (pts[2i],
// pts[2i+1]) without going through a Path, for callers that already have
// raw line data.
func (s *Stroker) DoneLines(pts []geom.Point) *path.Path {
	out := path.New()
	for i := 0; i+1 < len(pts); i += 2 {
		s.strokeContour(out, []geom.Point{pts[i], pts[i+1]}, false)
	}
	return out
}

// DonePoints strokes each point in pts as a filled dot of diameter
// Paint.Width (a degenerate round-capped zero-length segment).
func (s *Stroker) DonePoints(pts []geom.Point) *path.Path {
	out := path.New()
	r := s.Paint.Width / 2
	for _, p := range pts {
		out.AddCircle(p, r, geom.Clockwise)
	}
	return out
}

func normal(dir geom.Point) geom.Point {
	return dir.Perp().Normalize()
}

// strokeContour appends one stroked outline contour to out.
func (s *Stroker) strokeContour(out *path.Path, pts []geom.Point, closed bool) {
	n := len(pts)
	half := s.Paint.Width / 2
	if n == 2 && pts[0].NearlyEqual(pts[1]) {
		return
	}

	segCount := n - 1
	if closed {
		segCount = n
	}
	dirs := make([]geom.Point, segCount)
	for i := 0; i < segCount; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		dirs[i] = b.Sub(a).Normalize()
	}

	var left, right []geom.Point
	emitJoin := func(prevIdx, idx int) {
		nL, pL := normal(dirs[prevIdx]), normal(dirs[idx])
		pivot := pts[idx%n]
		left = s.appendJoin(left, pivot, pivot.Add(nL.Scale(half)), pivot.Add(pL.Scale(half)), half, +1)
		right = s.appendJoin(right, pivot, pivot.Sub(nL.Scale(half)), pivot.Sub(pL.Scale(half)), half, -1)
	}

	// first vertex
	left = append(left, pts[0].Add(normal(dirs[0]).Scale(half)))
	right = append(right, pts[0].Sub(normal(dirs[0]).Scale(half)))
	for i := 1; i < segCount; i++ {
		emitJoin(i-1, i)
	}
	if closed {
		emitJoin(segCount-1, 0)
	} else {
		left = append(left, pts[n-1].Add(normal(dirs[segCount-1]).Scale(half)))
		right = append(right, pts[n-1].Sub(normal(dirs[segCount-1]).Scale(half)))
	}

	if closed {
		out.MoveTo(left[0])
		for _, p := range left[1:] {
			out.LineTo(p)
		}
		out.Close()
		out.MoveTo(right[0])
		for i := len(right) - 1; i >= 0; i-- {
			out.LineTo(right[i])
		}
		out.Close()
		return
	}

	out.MoveTo(left[0])
	for _, p := range left[1:] {
		out.LineTo(p)
	}
	s.appendCap(out, pts[n-1], dirs[segCount-1], half)
	for i := len(right) - 1; i >= 0; i-- {
		out.LineTo(right[i])
	}
	s.appendCap(out, pts[0], dirs[0].Neg(), half)
	out.Close()
}

// appendJoin returns side extended past pivot with the join between the
// incoming offset point a and outgoing offset point b, where sign is +1
// for the left strip and -1 for the right strip (the pivot-to-offset
// direction flips between them).
func (s *Stroker) appendJoin(side []geom.Point, pivot, a, b geom.Point, half scalar.S, sign scalar.S) []geom.Point {
	side = append(side, a)
	switch s.Paint.Join {
	case JoinBevel:
		side = append(side, b)
	case JoinRound:
		start := scalar.Atan2(a.Y-pivot.Y, a.X-pivot.X)
		end := scalar.Atan2(b.Y-pivot.Y, b.X-pivot.X)
		sweep := end - start
		for sweep > scalar.Pi {
			sweep -= scalar.TwoPi
		}
		for sweep < -scalar.Pi {
			sweep += scalar.TwoPi
		}
		curve.FlattenArc(pivot, half, half, start, sweep, func(_, end geom.Point) {
			side = append(side, end)
		})
	default: // JoinMiter
		if m, ok := miterPoint(pivot, a, b, half, s.Paint.MiterLimit); ok {
			side = append(side, m)
		}
		side = append(side, b)
	}
	return side
}

// miterPoint returns the point where the offset lines through a and b
// (parallel to their originating segments) meet, provided the resulting
// miter length stays within limit half-widths of pivot.
func miterPoint(pivot, a, b geom.Point, half, limit scalar.S) (geom.Point, bool) {
	// the miter point lies along the bisector of the angle at pivot
	da := a.Sub(pivot)
	db := b.Sub(pivot)
	bis := da.Normalize().Add(db.Normalize())
	if scalar.NearlyZero(bis.Length()) {
		return geom.Point{}, false
	}
	bis = bis.Normalize()
	cosHalf := bis.Dot(da.Normalize())
	if scalar.NearlyZero(cosHalf) {
		return geom.Point{}, false
	}
	miterLen := half / cosHalf
	if scalar.Abs(miterLen/half) > limit {
		return geom.Point{}, false
	}
	return pivot.Add(bis.Scale(miterLen)), true
}

// appendCap appends the cap geometry at an open contour's endpoint p,
// where outward is the outward-pointing tangent direction (the direction
// the contour was travelling, for the end cap, or its reverse for the
// start cap).
func (s *Stroker) appendCap(out *path.Path, p, outward geom.Point, half scalar.S) {
	n := outward.Perp()
	left := p.Add(n.Scale(half))
	right := p.Sub(n.Scale(half))
	switch s.Paint.Cap {
	case CapButt:
		out.LineTo(left)
		out.LineTo(right)
	case CapSquare:
		out.LineTo(left.Add(outward.Scale(half)))
		out.LineTo(right.Add(outward.Scale(half)))
	case CapRound:
		out.LineTo(left)
		start := scalar.Atan2(left.Y-p.Y, left.X-p.X)
		curve.FlattenArc(p, half, half, start, -scalar.Pi, func(_, end geom.Point) {
			out.LineTo(end)
		})
	}
}
