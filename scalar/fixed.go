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

package scalar

import "math"

// Fixed is a Q16.16 signed fixed-point number: the high 16 bits hold the
// integer part, the low 16 bits the fraction. It is the second scalar
// configuration named in the data model: every operation below matches the
// semantics of the corresponding [S] operation, saturating on overflow of
// the 64-bit intermediate product/quotient instead of wrapping.
type Fixed int32

const fixedShift = 16
const fixedOne Fixed = 1 << fixedShift

// FixedNear0 is the fixed-point equivalent of [Near0] (1/4096).
const FixedNear0 Fixed = fixedOne / 4096

// FixedFromFloat32 converts a float32 to fixed-point, saturating at the int32
// range.
func FixedFromFloat32(f float32) Fixed {
	scaled := float64(f) * float64(fixedOne)
	return saturate(scaled)
}

// ToFloat32 converts back to floating point.
func (a Fixed) ToFloat32() float32 {
	return float32(a) / float32(fixedOne)
}

func saturate(v float64) Fixed {
	switch {
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	default:
		return Fixed(int32(v))
	}
}

// Add returns a+b, saturating on overflow.
func (a Fixed) Add(b Fixed) Fixed {
	return saturate(float64(a) + float64(b))
}

// Sub returns a-b, saturating on overflow.
func (a Fixed) Sub(b Fixed) Fixed {
	return saturate(float64(a) - float64(b))
}

// Mul returns a*b computed via a 64-bit intermediate product, shifted back
// down to Q16.16 and saturated.
func (a Fixed) Mul(b Fixed) Fixed {
	prod := int64(a) * int64(b)
	shifted := prod >> fixedShift
	if shifted > math.MaxInt32 {
		return math.MaxInt32
	}
	if shifted < math.MinInt32 {
		return math.MinInt32
	}
	return Fixed(shifted)
}

// Div returns a/b computed via a 64-bit intermediate dividend, saturating
// on overflow or on division by zero (returns MaxInt32/MinInt32 with the
// sign of a, or 0 if a is also zero).
func (a Fixed) Div(b Fixed) Fixed {
	if b == 0 {
		switch {
		case a > 0:
			return math.MaxInt32
		case a < 0:
			return math.MinInt32
		default:
			return 0
		}
	}
	num := int64(a) << fixedShift
	q := num / int64(b)
	if q > math.MaxInt32 {
		return math.MaxInt32
	}
	if q < math.MinInt32 {
		return math.MinInt32
	}
	return Fixed(q)
}

// Sqrt returns the square root of a, computed in float64.
func (a Fixed) Sqrt() Fixed {
	if a < 0 {
		return 0
	}
	return FixedFromFloat32(float32(math.Sqrt(float64(a.ToFloat32()))))
}

// Sin returns sin(a), a in radians.
func (a Fixed) Sin() Fixed {
	return FixedFromFloat32(float32(math.Sin(float64(a.ToFloat32()))))
}

// Cos returns cos(a), a in radians.
func (a Fixed) Cos() Fixed {
	return FixedFromFloat32(float32(math.Cos(float64(a.ToFloat32()))))
}

// Atan2 returns atan2(a, x) in radians.
func (a Fixed) Atan2(x Fixed) Fixed {
	return FixedFromFloat32(float32(math.Atan2(float64(a.ToFloat32()), float64(x.ToFloat32()))))
}

// NearlyEqual reports whether a and b differ by at most [FixedNear0].
func (a Fixed) NearlyEqual(b Fixed) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d <= FixedNear0
}
