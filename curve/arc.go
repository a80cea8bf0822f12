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

package curve

import (
	"seehuhn.de/go/vecgeom/geom"
	"seehuhn.de/go/vecgeom/scalar"
)

// sectorAngle is the 45-degree step used to tile an arc's sweep: each
// sector is approximated by a single quadratic Bezier, the same
// decomposition the unit-circle table uses.
const sectorAngle scalar.S = scalar.Pi / 4

// tanEighthPi is tan(pi/8), the control-point offset factor for a 45-degree
// sector, held as a named constant to mirror the fixed table constant
// quoted in the flattening contract.
const tanEighthPi scalar.S = 0.4142135623730951

// sqrtHalf is sqrt(2)/2, the coordinate of a unit vector at 45 degrees.
const sqrtHalf scalar.S = 0.7071067811865476

// StartStop returns the unit-circle start and stop vectors for an arc with
// the given start angle and (signed) sweep, and the sign (+1 clockwise,
// -1 counter-clockwise) and capped absolute sweep used to build it.
func StartStop(start, sweep scalar.S) (startDir, stopDir geom.Point, sign scalar.S, absSweep scalar.S) {
	sign = scalar.S(1)
	if sweep < 0 {
		sign = -1
	}
	absSweep = scalar.Abs(sweep)
	if absSweep > scalar.TwoPi {
		absSweep = scalar.TwoPi
	}
	startDir = geom.Pt(scalar.Cos(start), scalar.Sin(start))
	stopDir = geom.Pt(scalar.Cos(start+sign*absSweep), scalar.Sin(start+sign*absSweep))
	return
}

// FlattenArc approximates the arc of the ellipse centered at center with
// radii rx, ry, starting at angle start (radians) and sweeping by sweep
// radians (sign gives direction, magnitude capped at 360 degrees), as a
// sequence of quadratic Bezier sectors of at most 45 degrees each. emit is
// called once per sector with the sector's control point and end point, in
// ellipse space; the caller already knows the arc's start point
// (center + rx*cos(start), center + ry*sin(start)).
//
// Each sector's control point is built from the tan(sector/2) half-angle
// identity (tan(pi/8) for a full 45-degree sector, sin(r)/(1+cos(r)) for
// the partial trailing sector of sweep r), then mapped into ellipse space
// by scaling by (rx, ry) and translating by center. This folds the
// rotate-by-start step into the angle parameter directly rather than
// building a start-relative table and rotating it afterwards; the two are
// algebraically equivalent.
func FlattenArc(center geom.Point, rx, ry, start, sweep scalar.S, emit func(ctrl, end geom.Point)) {
	_, _, sign, absSweep := StartStop(start, sweep)
	if scalar.NearlyZero(absSweep) {
		return
	}

	toEllipse := func(local geom.Point) geom.Point {
		return geom.Pt(center.X+local.X*rx, center.Y+local.Y*ry)
	}

	angle := start
	remaining := absSweep
	for remaining > 0 {
		step := sectorAngle
		tanHalf := tanEighthPi
		if step >= remaining {
			step = remaining
			tanHalf = halfAngleTan(step)
		}

		startDir := geom.Pt(scalar.Cos(angle), scalar.Sin(angle))
		endAngle := angle + sign*step
		endDir := geom.Pt(scalar.Cos(endAngle), scalar.Sin(endAngle))
		ctrl := startDir.Add(startDir.Perp().Scale(sign * tanHalf))

		emit(toEllipse(ctrl), toEllipse(endDir))

		angle = endAngle
		remaining -= step
	}
}

// halfAngleTan returns tan(a/2) = sin(a) / (1 + cos(a)), the identity used
// to patch the partial trailing sector of an arc.
func halfAngleTan(a scalar.S) scalar.S {
	denom := 1 + scalar.Cos(a)
	if scalar.NearlyZero(denom) {
		// a is close to Pi, where tan(a/2) grows without bound; return
		// sin(a - Near0) instead. FlattenArc never passes an angle above
		// sectorAngle, so it does not reach this branch.
		return scalar.Sin(a - scalar.Near0)
	}
	return scalar.Sin(a) / denom
}
