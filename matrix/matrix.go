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

// Package matrix implements 3x3 affine transforms, stored as the six
// scalars that vary (the bottom row is always [0 0 1]).
package matrix

import (
	"seehuhn.de/go/vecgeom/geom"
	"seehuhn.de/go/vecgeom/scalar"
)

// Matrix represents the affine map
//
//	[x' y' 1]^T = [[Sx Kx Tx] [Ky Sy Ty] [0 0 1]] * [x y 1]^T
type Matrix struct {
	Sx, Kx, Ky, Sy, Tx, Ty scalar.S
}

// Identity is the identity transform.
var Identity = Matrix{Sx: 1, Sy: 1}

// New builds a Matrix from its six coefficients.
func New(sx, kx, ky, sy, tx, ty scalar.S) Matrix {
	return Matrix{Sx: sx, Kx: kx, Ky: ky, Sy: sy, Tx: tx, Ty: ty}
}

// NewTranslate builds a pure translation.
func NewTranslate(tx, ty scalar.S) Matrix {
	return Matrix{Sx: 1, Sy: 1, Tx: tx, Ty: ty}
}

// NewScale builds a pure scale about the origin.
func NewScale(sx, sy scalar.S) Matrix {
	return Matrix{Sx: sx, Sy: sy}
}

// NewSkew builds a shear transform with the given x and y skew factors.
func NewSkew(kx, ky scalar.S) Matrix {
	return Matrix{Sx: 1, Kx: kx, Ky: ky, Sy: 1}
}

// NewRotate builds a rotation by the angle whose sine and cosine are given,
// optionally about a pivot point (pass nil for the origin).
func NewRotate(sin, cos scalar.S, pivot *geom.Point) Matrix {
	m := Matrix{Sx: cos, Kx: -sin, Ky: sin, Sy: cos}
	if pivot == nil {
		return m
	}
	// rotate about pivot p: translate(p) * rotate * translate(-p)
	return NewTranslate(pivot.X, pivot.Y).Multiply(m).Multiply(NewTranslate(-pivot.X, -pivot.Y))
}

// NewRotateDeg builds a rotation by the given angle in degrees, optionally
// about a pivot point.
func NewRotateDeg(deg scalar.S, pivot *geom.Point) Matrix {
	rad := scalar.DegToRad(deg)
	return NewRotate(scalar.Sin(rad), scalar.Cos(rad), pivot)
}

// IsIdentity reports whether m is bitwise the identity transform.
func (m Matrix) IsIdentity() bool {
	return m.Sx == 1 && m.Sy == 1 && m.Kx == 0 && m.Ky == 0 && m.Tx == 0 && m.Ty == 0
}

// Det returns the determinant Sx*Sy - Kx*Ky.
func (m Matrix) Det() scalar.S {
	return m.Sx*m.Sy - m.Kx*m.Ky
}

// Invertible reports whether |det| > Near0^3, the threshold below which
// [Matrix.Invert] fails.
func (m Matrix) Invertible() bool {
	return scalar.Abs(m.Det()) > scalar.Near0Cubed
}

// Invert returns the inverse of m. ok is false, and the zero Matrix is
// returned, if m is not [Matrix.Invertible].
func (m Matrix) Invert() (inv Matrix, ok bool) {
	if !m.Invertible() {
		return Matrix{}, false
	}

	// axis-aligned fast path: kx = ky = 0
	if m.Kx == 0 && m.Ky == 0 {
		isx := 1 / m.Sx
		isy := 1 / m.Sy
		return Matrix{
			Sx: isx,
			Sy: isy,
			Tx: -m.Tx * isx,
			Ty: -m.Ty * isy,
		}, true
	}

	det := m.Det()
	invDet := 1 / det

	// classical 2x2 adjugate
	sx := m.Sy * invDet
	sy := m.Sx * invDet
	kx := -m.Kx * invDet
	ky := -m.Ky * invDet
	tx := -(sx*m.Tx + kx*m.Ty)
	ty := -(ky*m.Tx + sy*m.Ty)

	return Matrix{Sx: sx, Kx: kx, Ky: ky, Sy: sy, Tx: tx, Ty: ty}, true
}

// Multiply post-multiplies: the result maps p -> m . a . p, i.e. a is
// applied first.
func (m Matrix) Multiply(a Matrix) Matrix {
	if a.IsIdentity() {
		return m
	}
	if m.IsIdentity() {
		return a
	}
	return Matrix{
		Sx: m.Sx*a.Sx + m.Kx*a.Ky,
		Kx: m.Sx*a.Kx + m.Kx*a.Sy,
		Ky: m.Ky*a.Sx + m.Sy*a.Ky,
		Sy: m.Ky*a.Kx + m.Sy*a.Sy,
		Tx: m.Sx*a.Tx + m.Kx*a.Ty + m.Tx,
		Ty: m.Ky*a.Tx + m.Sy*a.Ty + m.Ty,
	}
}

// MultiplyLHS pre-multiplies: the result maps p -> a . m . p, i.e. m is
// applied first. Equivalent to a.Multiply(m).
func (m Matrix) MultiplyLHS(a Matrix) Matrix {
	return a.Multiply(m)
}

// Apply maps a single point through m.
func (m Matrix) Apply(p geom.Point) geom.Point {
	if m.IsIdentity() {
		return p
	}
	return geom.Point{
		X: m.Sx*p.X + m.Kx*p.Y + m.Tx,
		Y: m.Ky*p.X + m.Sy*p.Y + m.Ty,
	}
}

// ApplyPoints maps every point of pts in place through m.
func (m Matrix) ApplyPoints(pts []geom.Point) {
	if m.IsIdentity() {
		return
	}
	for i, p := range pts {
		pts[i] = m.Apply(p)
	}
}
