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

// Package geom defines the immutable value shapes shared across the
// geometry pipeline: points, rectangles, lines, triangles, circles,
// ellipses, round rectangles and arcs, plus the tagged [Shape] union and
// axis-aligned [Bounds].
package geom

import "seehuhn.de/go/vecgeom/scalar"

// Point is a pair of scalars. It has no identity; two points with equal
// coordinates are interchangeable.
type Point struct {
	X, Y scalar.S
}

// Pt is a short constructor for [Point].
func Pt(x, y scalar.S) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by k.
func (p Point) Scale(k scalar.S) Point { return Point{p.X * k, p.Y * k} }

// Lerp linearly interpolates between p and q at parameter t (0 at p, 1 at q).
func (p Point) Lerp(q Point, t scalar.S) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Dot returns the dot product of p and q treated as vectors.
func (p Point) Dot(q Point) scalar.S { return p.X*q.X + p.Y*q.Y }

// Cross returns the z-component of the 3D cross product of p and q treated
// as vectors: p.X*q.Y - p.Y*q.X.
func (p Point) Cross(q Point) scalar.S { return p.X*q.Y - p.Y*q.X }

// Length returns the Euclidean length of p treated as a vector.
func (p Point) Length() scalar.S { return scalar.Hypot(p.X, p.Y) }

// Normalize returns p scaled to unit length. Returns the zero vector if p
// is nearly zero length.
func (p Point) Normalize() Point {
	l := p.Length()
	if scalar.NearlyZero(l) {
		return Point{}
	}
	return p.Scale(1 / l)
}

// Perp returns p rotated 90 degrees counter-clockwise: (-y, x).
func (p Point) Perp() Point { return Point{-p.Y, p.X} }

// Neg returns -p.
func (p Point) Neg() Point { return Point{-p.X, -p.Y} }

// NearlyEqual reports whether p and q are within [scalar.Near0] in each
// coordinate.
func (p Point) NearlyEqual(q Point) bool {
	return scalar.NearlyEqual(p.X, q.X) && scalar.NearlyEqual(p.Y, q.Y)
}

// L1Dist returns the L1 (Manhattan) distance between p and q, used by the
// curve-flattening error estimators.
func L1Dist(p, q Point) scalar.S {
	return scalar.Abs(p.X-q.X) + scalar.Abs(p.Y-q.Y)
}

// Bounds returns the smallest axis-aligned [Rect] containing every point in
// pts. The zero Rect is returned for an empty slice.
func Bounds(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return Rect{Min: Point{minX, minY}, Max: Point{maxX, maxY}}
}
