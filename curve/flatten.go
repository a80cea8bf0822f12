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

// Package curve implements recursive midpoint flattening of quadratic and
// cubic Bezier curves, quadratic approximation of circular/elliptic arcs,
// and curvature/chopping utilities for cubic curves.
package curve

import (
	"seehuhn.de/go/vecgeom/geom"
	"seehuhn.de/go/vecgeom/scalar"
)

// errorUnit is the flattening error bound in scalar units: recursion stops
// once the control-to-chord deviation is at most this large.
const errorUnit scalar.S = 1

// FlattenQuadratic emits line segments approximating the quadratic Bezier
// p0, c, p1 to emit, recursing until the L1 distance from the control
// point to the chord midpoint is at most one scalar unit. emit receives
// only the destination of each segment; the caller is expected to already
// know p0.
func FlattenQuadratic(p0, c, p1 geom.Point, emit func(geom.Point)) {
	mid := p0.Add(p1).Scale(0.5)
	e := geom.L1Dist(c, mid)
	if e <= errorUnit {
		emit(p1)
		return
	}

	c0 := p0.Add(c).Scale(0.5)
	c1 := c.Add(p1).Scale(0.5)
	m := c0.Add(c1).Scale(0.5)

	FlattenQuadratic(p0, c0, m, emit)
	FlattenQuadratic(m, c1, p1, emit)
}

// FlattenCubic emits line segments approximating the cubic Bezier
// p0, c0, c1, p1 to emit, using the same chop-at-half recursion as
// [FlattenQuadratic] with the two-sided deviation estimator
//
//	e = min(|2(c0-p0) + (c0-p1)|, |2(c1-p1) + (c1-p0)|)
func FlattenCubic(p0, c0, c1, p1 geom.Point, emit func(geom.Point)) {
	d0 := c0.Sub(p0).Scale(2).Add(c0.Sub(p1))
	d1 := c1.Sub(p1).Scale(2).Add(c1.Sub(p0))
	e := min(geom.L1Dist(d0, geom.Point{}), geom.L1Dist(d1, geom.Point{}))
	if e <= errorUnit {
		emit(p1)
		return
	}

	// de Casteljau subdivision at t=1/2
	p01 := p0.Add(c0).Scale(0.5)
	p12 := c0.Add(c1).Scale(0.5)
	p23 := c1.Add(p1).Scale(0.5)
	p012 := p01.Add(p12).Scale(0.5)
	p123 := p12.Add(p23).Scale(0.5)
	m := p012.Add(p123).Scale(0.5)

	FlattenCubic(p0, p01, p012, m, emit)
	FlattenCubic(m, p123, p23, p1, emit)
}

// FlattenPathQuadratic is a convenience wrapper that also emits the start
// point p0 before flattening, for callers building a fresh polyline.
func FlattenPathQuadratic(p0, c, p1 geom.Point, emit func(geom.Point)) {
	emit(p0)
	FlattenQuadratic(p0, c, p1, emit)
}
