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

// Package extern names the contracts a back-end (bitmap blitter, OpenGL
// renderer, external rasterizer) needs in order to consume this module's
// output. Apart from [RasterizeAlpha], which draws a path's coverage into
// an alpha mask, these are the types a back-end targets, not a back-end
// itself — blitting, GL state, and image codecs stay out of scope.
package extern

import (
	"image"
	"image/color"

	"seehuhn.de/go/vecgeom/geom"
	"seehuhn.de/go/vecgeom/matrix"
	"seehuhn.de/go/vecgeom/stroke"
)

// PaintMode selects whether a draw call fills, strokes, or both.
type PaintMode int

const (
	ModeFill PaintMode = iota
	ModeStroke
	ModeFillAndStroke
)

// FillRule selects the interior test a back-end's tessellation pass uses.
type FillRule int

const (
	FillOdd FillRule = iota
	FillNonZero
)

// Flags are the per-draw-call boolean hints a back-end may honor.
type Flags uint32

const (
	FlagAntialias Flags = 1 << iota
	FlagFilterBitmap
)

// Paint is everything a back-end needs to know about how to render one
// draw call: color/alpha, fill/stroke mode and parameters, the active
// fill rule, rendering flags, and an optional Shader replacing the solid
// color.
type Paint struct {
	Mode      PaintMode
	Color     color.Color
	Alpha     float32
	Stroke    stroke.Paint
	FillRule  FillRule
	Flags     Flags
	Shader    *Shader
}

// ShaderType names the kind of gradient or image a Shader produces.
type ShaderType int

const (
	ShaderLinear ShaderType = iota
	ShaderRadial
	ShaderBitmap
)

// ShaderTileMode selects how a Shader extends beyond its defined extent.
type ShaderTileMode int

const (
	TileBorder ShaderTileMode = iota
	TileClamp
	TileRepeat
	TileMirror
)

// Shader is opaque to the core geometry pipeline: it is a back-end's own
// color source (gradient or image), referenced here only so Paint has
// somewhere to hang one. A shader is shared between a paint and any draw
// still using it, so its lifetime is reference-counted; back-ends manage
// it through Retain/Release rather than a finalizer.
type Shader struct {
	Type   ShaderType
	Mode   ShaderTileMode
	Matrix matrix.Matrix

	refs int32
}

// Retain increments the shader's reference count.
func (s *Shader) Retain() { s.refs++ }

// Release decrements the shader's reference count, reporting whether it
// reached zero (at which point the back-end that owns the shader's
// underlying resource should free it).
func (s *Shader) Release() bool {
	s.refs--
	return s.refs <= 0
}

// PixelFormat is one of the seven wire-compatible pixel layouts a bitmap
// back-end may use, each with an optional big-endian variant.
type PixelFormat int

const (
	FormatPAL8 PixelFormat = iota
	FormatRGB565
	FormatRGB888
	FormatARGB4444
	FormatARGB1555
	FormatARGB8888
	FormatXRGB8888
	formatCount
)

// BigEndian, OR'd with a PixelFormat, selects the big-endian byte order
// for formats wider than one byte.
const BigEndian PixelFormat = 1 << 16

func (f PixelFormat) base() PixelFormat { return f &^ BigEndian }

// BitsPerPixel returns the format's bit depth.
func (f PixelFormat) BitsPerPixel() int {
	switch f.base() {
	case FormatPAL8:
		return 8
	case FormatRGB565, FormatARGB4444, FormatARGB1555:
		return 16
	case FormatRGB888:
		return 24
	case FormatARGB8888, FormatXRGB8888:
		return 32
	default:
		return 0
	}
}

// BytesPerPixel returns the format's byte stride per pixel, rounding up.
func (f PixelFormat) BytesPerPixel() int {
	return (f.BitsPerPixel() + 7) / 8
}

// BlendFunc composites a straight-alpha source pixel (already in this
// format's packed representation) onto a destination pixel of the same
// format, returning the packed result.
type BlendFunc func(dst, src uint32, alpha float32) uint32

// Bitmap is a row-major pixel buffer a bitmap back-end reads from or
// writes to. RowBytes must be at least Width*format.BytesPerPixel();
// Owns reports whether the Bitmap is responsible for freeing Pixels.
type Bitmap struct {
	Format   PixelFormat
	Width    int
	Height   int
	RowBytes int
	Pixels   []byte
	Owns     bool
}

// Rect returns the bitmap's bounds as an image.Rectangle, for interop
// with stdlib image code.
func (b *Bitmap) Rect() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// DrawInputKind selects which form a draw call's geometry takes: a full
// path, a flattened polygon with an optional shape hint, a point array,
// or a line array.
type DrawInputKind int

const (
	DrawPath DrawInputKind = iota
	DrawPolygon
	DrawPoints
	DrawLines
)

// DrawInput bundles a draw call's geometry with an optional bounds hint a
// back-end may use to cull or short-circuit before consuming the shape.
type DrawInput struct {
	Kind   DrawInputKind
	Points []geom.Point
	Bounds *geom.Rect
	Hint   *geom.Shape
}

// Device is the contract a bitmap/GL/external-rasterizer back-end
// implements to receive draw calls. The back-end may short-circuit on
// Hint (e.g. draw a rect directly) but must otherwise consume the
// flattened polygon and, when filling, invoke the tessellator with the
// active fill rule — this module does not call Device itself.
type Device interface {
	Draw(transform matrix.Matrix, paint Paint, input DrawInput) error
}
