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
	"seehuhn.de/go/vecgeom/geom"
	"seehuhn.de/go/vecgeom/scalar"
)

// recordHint remembers shape as the explicit hint for this path, but only
// when the path was empty before the caller started appending: an adder
// called on a non-empty path produces a compound shape that no single
// primitive describes, and appending has already dropped any previously
// recorded hint (markDirty clears it on every mutation).
func (p *Path) recordHint(wasEmpty bool, shape geom.Shape) {
	if wasEmpty {
		p.explicitHint = &shape
	}
}

// AddLine appends a single straight segment as its own contour.
func (p *Path) AddLine(a, b geom.Point) {
	wasEmpty := p.IsNull()
	p.MoveTo(a)
	p.LineTo(b)
	p.recordHint(wasEmpty, geom.Shape{Kind: geom.ShapeLine, Line: geom.Line{P0: a, P1: b}})
}

// AddTriangle appends a closed triangular contour.
func (p *Path) AddTriangle(a, b, c geom.Point, dir geom.Direction) {
	wasEmpty := p.IsNull()
	if dir == geom.CounterClockwise {
		b, c = c, b
	}
	p.MoveTo(a)
	p.LineTo(b)
	p.LineTo(c)
	p.Close()
	p.recordHint(wasEmpty, geom.Shape{Kind: geom.ShapeTriangle, Triangle: geom.Triangle{P0: a, P1: b, P2: c}})
}

// AddRect appends a closed axis-aligned rectangular contour.
func (p *Path) AddRect(r geom.Rect, dir geom.Direction) {
	wasEmpty := p.IsNull()
	corners := r.Corners()
	if dir == geom.CounterClockwise {
		corners[1], corners[3] = corners[3], corners[1]
	}
	p.MoveTo(corners[0])
	for _, c := range corners[1:] {
		p.LineTo(c)
	}
	p.Close()
	p.recordHint(wasEmpty, geom.Shape{Kind: geom.ShapeRect, Rect: r})
}

// AddCircle appends a closed circular contour as quadratic-approximated
// arcs of at most 45 degrees each.
func (p *Path) AddCircle(center geom.Point, radius scalar.S, dir geom.Direction) {
	wasEmpty := p.IsNull()
	sweep := scalar.TwoPi
	if dir == geom.CounterClockwise {
		sweep = -sweep
	}
	p.MoveTo(geom.Pt(center.X+radius, center.Y))
	p.ArcTo(center, radius, radius, 0, sweep)
	p.Close()
	p.recordHint(wasEmpty, geom.Shape{Kind: geom.ShapeCircle, Circle: geom.Circle{Center: center, Radius: radius}})
}

// AddEllipse appends a closed elliptical contour.
func (p *Path) AddEllipse(center geom.Point, rx, ry scalar.S, dir geom.Direction) {
	wasEmpty := p.IsNull()
	sweep := scalar.TwoPi
	if dir == geom.CounterClockwise {
		sweep = -sweep
	}
	p.MoveTo(geom.Pt(center.X+rx, center.Y))
	p.ArcTo(center, rx, ry, 0, sweep)
	p.Close()
	p.recordHint(wasEmpty, geom.Shape{Kind: geom.ShapeEllipse, Ellipse: geom.Ellipse{Center: center, Rx: rx, Ry: ry}})
}

// AddArc appends an open elliptical arc as its own contour (not closed).
func (p *Path) AddArc(center geom.Point, rx, ry, start, sweep scalar.S) {
	wasEmpty := p.IsNull()
	p.MoveTo(geom.Pt(center.X+rx*scalar.Cos(start), center.Y+ry*scalar.Sin(start)))
	p.ArcTo(center, rx, ry, start, sweep)
	p.recordHint(wasEmpty, geom.Shape{Kind: geom.ShapeArc, Arc: geom.Arc{
		Center: center, Rx: rx, Ry: ry, Start: start, Sweep: sweep,
	}})
}

// AddRoundRect appends a closed rectangular contour with per-corner
// rounding. If every radius is nearly zero the result degenerates to a
// plain rectangle; if every radius fills its corner's half-extent (within
// [scalar.Near0]) it degenerates to an ellipse — both degenerate cases are recorded as
// such by the path's explicit hint, matching the corresponding adder.
func (p *Path) AddRoundRect(rr geom.RoundRect, dir geom.Direction) {
	wasEmpty := p.IsNull()
	if rr.AllRadiiZero() {
		p.AddRect(rr.Bounds, dir)
		return
	}
	if rr.IsEllipse() {
		cx := (rr.Bounds.Min.X + rr.Bounds.Max.X) / 2
		cy := (rr.Bounds.Min.Y + rr.Bounds.Max.Y) / 2
		p.AddEllipse(geom.Pt(cx, cy), rr.Bounds.Width()/2, rr.Bounds.Height()/2, dir)
		return
	}
	if dir == geom.CounterClockwise {
		tmp := New()
		tmp.AddRoundRect(rr, geom.Clockwise)
		p.PathTo(tmp.reversedContour())
		p.recordHint(wasEmpty, geom.Shape{Kind: geom.ShapeRoundRect, RoundRect: rr})
		return
	}

	b := rr.Bounds
	tl := geom.Pt(b.Min.X, b.Min.Y)
	tr := geom.Pt(b.Max.X, b.Min.Y)
	br := geom.Pt(b.Max.X, b.Max.Y)
	bl := geom.Pt(b.Min.X, b.Max.Y)

	p.MoveTo(geom.Pt(tl.X+rr.RxTL, tl.Y))
	p.LineTo(geom.Pt(tr.X-rr.RxTR, tr.Y))
	if rr.RxTR > 0 || rr.RyTR > 0 {
		p.ArcTo(geom.Pt(tr.X-rr.RxTR, tr.Y+rr.RyTR), rr.RxTR, rr.RyTR, -scalar.Pi/2, scalar.Pi/2)
	}
	p.LineTo(geom.Pt(br.X, br.Y-rr.RyBR))
	if rr.RxBR > 0 || rr.RyBR > 0 {
		p.ArcTo(geom.Pt(br.X-rr.RxBR, br.Y-rr.RyBR), rr.RxBR, rr.RyBR, 0, scalar.Pi/2)
	}
	p.LineTo(geom.Pt(bl.X+rr.RxBL, bl.Y))
	if rr.RxBL > 0 || rr.RyBL > 0 {
		p.ArcTo(geom.Pt(bl.X+rr.RxBL, bl.Y-rr.RyBL), rr.RxBL, rr.RyBL, scalar.Pi/2, scalar.Pi/2)
	}
	p.LineTo(geom.Pt(tl.X, tl.Y+rr.RyTL))
	if rr.RxTL > 0 || rr.RyTL > 0 {
		p.ArcTo(geom.Pt(tl.X+rr.RxTL, tl.Y+rr.RyTL), rr.RxTL, rr.RyTL, scalar.Pi, scalar.Pi/2)
	}
	p.Close()

	p.recordHint(wasEmpty, geom.Shape{Kind: geom.ShapeRoundRect, RoundRect: rr})
}
