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

// Rect is an axis-aligned rectangle given by its diagonal corners. Min is
// expected to be the corner with the smaller X and Y (the top-left corner
// in this module's y-down coordinates); use
// [Rect.Normalize] to restore that invariant after arithmetic that might
// flip it.
type Rect struct {
	Min, Max Point
}

// NewRect builds a Rect from two corners in any order, normalizing them.
func NewRect(x0, y0, x1, y1 scalar.S) Rect {
	return Rect{
		Min: Point{min(x0, x1), min(y0, y1)},
		Max: Point{max(x0, x1), max(y0, y1)},
	}
}

// Width returns the rectangle's width.
func (r Rect) Width() scalar.S { return r.Max.X - r.Min.X }

// Height returns the rectangle's height.
func (r Rect) Height() scalar.S { return r.Max.Y - r.Min.Y }

// IsEmpty reports whether the rectangle has non-positive width or height.
func (r Rect) IsEmpty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Normalize swaps Min/Max coordinates as needed so Min always holds the
// smaller X and Y.
func (r Rect) Normalize() Rect {
	return NewRect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// Contains reports whether p lies within r, inclusive of the boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return Rect{
		Min: Point{min(r.Min.X, s.Min.X), min(r.Min.Y, s.Min.Y)},
		Max: Point{max(r.Max.X, s.Max.X), max(r.Max.Y, s.Max.Y)},
	}
}

// Corners returns the four corners of r in clockwise order starting at
// Min, the order path.Path.AddRect uses: (Min), (Max.X,Min.Y), (Max),
// (Min.X,Max.Y).
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.Min.X, r.Min.Y},
		{r.Max.X, r.Min.Y},
		{r.Max.X, r.Max.Y},
		{r.Min.X, r.Max.Y},
	}
}
