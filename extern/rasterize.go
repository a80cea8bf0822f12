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

package extern

import (
	"image"

	"golang.org/x/image/vector"

	"seehuhn.de/go/vecgeom/path"
)

// RasterizeAlpha drives golang.org/x/image/vector's scan converter directly
// from p's opcode stream, producing a stand-alone alpha mask. Unlike a
// Device, which this package only declares the contract for,
// vector.Rasterizer is a real, runnable back end, so RasterizeAlpha gives
// callers one without this module growing its own scan converter.
//
// Curves are forwarded to the Rasterizer unflattened; vector.Rasterizer
// flattens QuadTo/CubeTo itself, so p need not have been flattened first.
func RasterizeAlpha(p *path.Path, width, height int) *image.Alpha {
	r := vector.NewRasterizer(width, height)

	i := 0
	for _, op := range p.Ops {
		switch op {
		case path.MoveTo:
			pt := p.Pts[i]
			r.MoveTo(float32(pt.X), float32(pt.Y))
			i++
		case path.LineTo:
			pt := p.Pts[i]
			r.LineTo(float32(pt.X), float32(pt.Y))
			i++
		case path.QuadTo:
			c, e := p.Pts[i], p.Pts[i+1]
			r.QuadTo(float32(c.X), float32(c.Y), float32(e.X), float32(e.Y))
			i += 2
		case path.CubeTo:
			c0, c1, e := p.Pts[i], p.Pts[i+1], p.Pts[i+2]
			r.CubeTo(float32(c0.X), float32(c0.Y), float32(c1.X), float32(c1.Y), float32(e.X), float32(e.Y))
			i += 3
		case path.Close:
			r.ClosePath()
		}
	}

	img := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(img, img.Bounds(), image.Opaque, image.Point{})
	return img
}
