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

// Package scalar defines the scalar number type shared by every geometry
// package in this module, plus the "nearly zero" tolerance used throughout
// the tessellator and path code to absorb floating-point noise.
package scalar

import "math"

// S is the scalar type used by Point, Matrix, Path and everything built on
// top of them. This module runs the IEEE-754 single precision configuration;
// see [Fixed] for the Q16.16 fixed-point alternative.
type S = float32

// Near0 bounds "nearly zero" comparisons. Two scalars closer together than
// this are considered equal by [NearlyEqual].
const Near0 S = 1.0 / 4096

// Near0Cubed is the determinant threshold below which a matrix is treated
// as singular (|det| <= Near0Cubed).
const Near0Cubed S = Near0 * Near0 * Near0

// NearlyEqual reports whether a and b differ by at most [Near0].
func NearlyEqual(a, b S) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= Near0
}

// NearlyZero reports whether a is within [Near0] of zero.
func NearlyZero(a S) bool {
	return NearlyEqual(a, 0)
}

// Sign returns -1, 0 or +1 according to the sign of a, treating values
// within [Near0] of zero as zero.
func Sign(a S) int {
	switch {
	case a > Near0:
		return 1
	case a < -Near0:
		return -1
	default:
		return 0
	}
}

// Abs returns the absolute value of a.
func Abs(a S) S {
	if a < 0 {
		return -a
	}
	return a
}

// Sqrt computes in float64 and narrows to S, matching the "floating mode:
// double precision then truncated" rule from the scalar precision contract.
func Sqrt(a S) S { return S(math.Sqrt(float64(a))) }

// Sin computes sin(a) for a in radians.
func Sin(a S) S { return S(math.Sin(float64(a))) }

// Cos computes cos(a) for a in radians.
func Cos(a S) S { return S(math.Cos(float64(a))) }

// Atan2 computes atan2(y, x) in radians.
func Atan2(y, x S) S { return S(math.Atan2(float64(y), float64(x))) }

// Hypot computes sqrt(x*x + y*y) without intermediate overflow.
func Hypot(x, y S) S { return S(math.Hypot(float64(x), float64(y))) }

// DegToRad converts degrees to radians.
func DegToRad(deg S) S { return deg * (math.Pi / 180) }

const (
	// Pi is the usual circle constant, at scalar precision.
	Pi S = math.Pi
	// TwoPi is 2*Pi.
	TwoPi S = 2 * math.Pi
)
