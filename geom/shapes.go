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

import "seehuhn.de/go/vecgeom/scalar"

// Direction selects the winding direction used by a shape adder.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Line is a straight segment between two points.
type Line struct {
	P0, P1 Point
}

// Triangle is three vertices in the order they were specified.
type Triangle struct {
	P0, P1, P2 Point
}

// Circle is centered at Center with radius Radius.
type Circle struct {
	Center Point
	Radius scalar.S
}

// Ellipse is an axis-aligned ellipse centered at Center with radii Rx, Ry.
type Ellipse struct {
	Center Point
	Rx, Ry scalar.S
}

// RoundRect is a rectangle with four independently specified corner
// radii. Indexing follows clockwise order starting at the top-left corner:
// RxTL/RyTL, RxTR/RyTR, RxBR/RyBR, RxBL/RyBL.
type RoundRect struct {
	Bounds                           Rect
	RxTL, RyTL, RxTR, RyTR           scalar.S
	RxBR, RyBR, RxBL, RyBL           scalar.S
}

// AllRadiiZero reports whether every corner radius is nearly zero, the
// condition under which a RoundRect degenerates to a plain [Rect].
func (rr RoundRect) AllRadiiZero() bool {
	return scalar.NearlyZero(rr.RxTL) && scalar.NearlyZero(rr.RyTL) &&
		scalar.NearlyZero(rr.RxTR) && scalar.NearlyZero(rr.RyTR) &&
		scalar.NearlyZero(rr.RxBR) && scalar.NearlyZero(rr.RyBR) &&
		scalar.NearlyZero(rr.RxBL) && scalar.NearlyZero(rr.RyBL)
}

// IsEllipse reports whether every corner radius equals the corresponding
// half-extent of Bounds, the condition under which a RoundRect degenerates
// to an [Ellipse].
func (rr RoundRect) IsEllipse() bool {
	hw := rr.Bounds.Width() / 2
	hh := rr.Bounds.Height() / 2
	eq := func(a, b scalar.S) bool { return scalar.NearlyEqual(a, b) }
	return eq(rr.RxTL, hw) && eq(rr.RyTL, hh) &&
		eq(rr.RxTR, hw) && eq(rr.RyTR, hh) &&
		eq(rr.RxBR, hw) && eq(rr.RyBR, hh) &&
		eq(rr.RxBL, hw) && eq(rr.RyBL, hh)
}

// Arc is a (possibly elliptical) arc: Center/Rx/Ry describe the supporting
// ellipse, Start is the starting angle in radians and Sweep is the signed
// sweep angle in radians (positive is clockwise, per [Direction.Clockwise]).
type Arc struct {
	Center     Point
	Rx, Ry     scalar.S
	Start      scalar.S
	Sweep      scalar.S
}

// ShapeKind tags the variant held by a [Shape].
type ShapeKind int

const (
	ShapeNone ShapeKind = iota
	ShapeLine
	ShapePoint
	ShapeRect
	ShapeRoundRect
	ShapeTriangle
	ShapeCircle
	ShapeEllipse
	ShapeArc
)

// Shape is a tagged union over the primitive shape values. Only the field
// matching Kind is meaningful.
type Shape struct {
	Kind      ShapeKind
	Point     Point
	Line      Line
	Rect      Rect
	RoundRect RoundRect
	Triangle  Triangle
	Circle    Circle
	Ellipse   Ellipse
	Arc       Arc
}
