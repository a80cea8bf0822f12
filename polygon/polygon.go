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

// Package polygon defines the flattened, curve-free intermediate that sits
// between [seehuhn.de/go/vecgeom/path] and the tessellator/back-ends: a flat
// point array, per-contour counts, and a convexity flag.
package polygon

import "seehuhn.de/go/vecgeom/geom"

// Polygon is a sequence of points partitioned into contours by Counts, plus
// a cached convexity flag. Counts holds one entry per contour (point count)
// followed by a terminating 0 sentinel; the sum of the non-zero entries
// equals len(Points).
type Polygon struct {
	Points []geom.Point
	Counts []int
	Convex bool
}

// Contours returns the point slices for each contour, sliced out of
// Points without copying.
func (p *Polygon) Contours() [][]geom.Point {
	var out [][]geom.Point
	off := 0
	for _, c := range p.Counts {
		if c == 0 {
			break
		}
		out = append(out, p.Points[off:off+c])
		off += c
	}
	return out
}

// NumContours returns the number of non-sentinel entries in Counts.
func (p *Polygon) NumContours() int {
	n := 0
	for _, c := range p.Counts {
		if c == 0 {
			break
		}
		n++
	}
	return n
}

// Bounds returns the axis-aligned bounding box over every point in the
// polygon, regardless of contour membership.
func (p *Polygon) Bounds() geom.Rect {
	return geom.Bounds(p.Points)
}

// SignedArea returns the sum of the shoelace-formula signed areas of every
// contour. A contour wound clockwise (in the y-down convention this module
// uses throughout) contributes a positive area.
func (p *Polygon) SignedArea() float32 {
	var total float32
	for _, contour := range p.Contours() {
		total += contourSignedArea(contour)
	}
	return total
}

func contourSignedArea(pts []geom.Point) float32 {
	if len(pts) < 3 {
		return 0
	}
	var sum float32
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}
