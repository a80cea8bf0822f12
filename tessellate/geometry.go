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

package tessellate

import (
	"seehuhn.de/go/vecgeom/geom"
	"seehuhn.de/go/vecgeom/mesh"
	"seehuhn.de/go/vecgeom/scalar"
)

// The sweep runs top to bottom: vertex a is processed before b iff
// a.Y > b.Y, or a.Y == b.Y and a.X < b.X.

func sweepLess(a, b geom.Point) bool {
	return a.Y > b.Y || (a.Y == b.Y && a.X < b.X)
}

func sweepLeq(a, b geom.Point) bool {
	return a.Y > b.Y || (a.Y == b.Y && a.X <= b.X)
}

// vertEq reports whether two event positions are close enough to be
// treated as one vertex.
func vertEq(a, b geom.Point) bool { return a.NearlyEqual(b) }

// edgeGoesUp reports whether e's destination is its sweep-upper endpoint.
// Every edge in the active-region list is kept in this orientation.
func edgeGoesUp(m *mesh.Mesh, e mesh.EdgeID) bool {
	return sweepLeq(m.Pos(m.Dst(e)), m.Pos(m.Org(e)))
}

// edgeGoesDown is the opposite orientation: the origin is the upper
// endpoint.
func edgeGoesDown(m *mesh.Mesh, e mesh.EdgeID) bool {
	return sweepLeq(m.Pos(m.Org(e)), m.Pos(m.Dst(e)))
}

// edgeEval returns the signed horizontal distance of v from the line
// through u and w, where u precedes v precedes w in sweep order.
// Positive means v lies to the right of the line. The interpolation is
// arranged so the answer stays accurate when v is close to one endpoint.
func edgeEval(u, v, w geom.Point) scalar.S {
	gap1 := u.Y - v.Y
	gap2 := v.Y - w.Y
	if gap1+gap2 > 0 {
		if gap1 < gap2 {
			return (v.X - u.X) + (u.X-w.X)*(gap1/(gap1+gap2))
		}
		return (v.X - w.X) + (w.X-u.X)*(gap2/(gap1+gap2))
	}
	return 0
}

// edgeSign returns a value with the same sign as edgeEval(u, v, w) but
// without the division, for pure orientation tests.
func edgeSign(u, v, w geom.Point) scalar.S {
	gap1 := u.Y - v.Y
	gap2 := v.Y - w.Y
	if gap1+gap2 > 0 {
		return (v.X-w.X)*gap1 + (v.X-u.X)*gap2
	}
	return 0
}

// transLeq orders points along the axis transverse to the sweep: by x,
// with higher y breaking ties, mirroring sweepLeq with the roles of the
// two axes exchanged.
func transLeq(a, b geom.Point) bool {
	return a.X < b.X || (a.X == b.X && a.Y >= b.Y)
}

// transEval is edgeEval with the axes exchanged: the signed vertical
// distance of v from the line uw, with u, v, w in transLeq order.
func transEval(u, v, w geom.Point) scalar.S {
	gap1 := v.X - u.X
	gap2 := w.X - v.X
	if gap1+gap2 > 0 {
		if gap1 < gap2 {
			return (u.Y - v.Y) + (w.Y-u.Y)*(gap1/(gap1+gap2))
		}
		return (w.Y - v.Y) + (u.Y-w.Y)*(gap2/(gap1+gap2))
	}
	return 0
}

// transSign is edgeSign with the axes exchanged.
func transSign(u, v, w geom.Point) scalar.S {
	gap1 := v.X - u.X
	gap2 := w.X - v.X
	if gap1+gap2 > 0 {
		return (w.Y-v.Y)*gap1 + (u.Y-v.Y)*gap2
	}
	return 0
}

// ccw reports whether the triangle u, v, w has non-negative signed area.
func ccw(u, v, w geom.Point) bool {
	return u.X*(v.Y-w.Y)+v.X*(w.Y-u.Y)+w.X*(u.Y-v.Y) >= 0
}

// interpolate returns a weighted average of x and y, weighting each by
// the *other* value's coefficient, so that the result approaches x as a
// approaches zero. Negative weights are clamped; two zero weights give
// the midpoint.
func interpolate(a, x, b, y scalar.S) scalar.S {
	if a < 0 {
		a = 0
	}
	if b < 0 {
		b = 0
	}
	if a <= b {
		if b == 0 {
			return (x + y) / 2
		}
		return x + (y-x)*(a/(a+b))
	}
	return y + (x-y)*(b/(a+b))
}

// edgeIntersect computes the intersection of the segments o1-d1 and
// o2-d2, where each o is the segment's sweep-upper endpoint. Each
// coordinate is found by interpolating along the axis on which the
// computation is numerically stable, so the result degrades gracefully
// for nearly-parallel segments instead of blowing up.
func edgeIntersect(o1, d1, o2, d2 geom.Point) geom.Point {
	var v geom.Point

	if !sweepLeq(o1, d1) {
		o1, d1 = d1, o1
	}
	if !sweepLeq(o2, d2) {
		o2, d2 = d2, o2
	}
	if !sweepLeq(o1, o2) {
		o1, o2 = o2, o1
		d1, d2 = d2, d1
	}

	if !sweepLeq(o2, d1) {
		// the sweep ranges barely touch
		v.Y = (o2.Y + d1.Y) / 2
	} else if sweepLeq(d1, d2) {
		z1 := edgeEval(o1, o2, d1)
		z2 := edgeEval(o2, d1, d2)
		if z1+z2 < 0 {
			z1, z2 = -z1, -z2
		}
		v.Y = interpolate(z1, o2.Y, z2, d1.Y)
	} else {
		z1 := edgeSign(o1, o2, d1)
		z2 := -edgeSign(o1, d2, d1)
		if z1+z2 < 0 {
			z1, z2 = -z1, -z2
		}
		v.Y = interpolate(z1, o2.Y, z2, d2.Y)
	}

	if !transLeq(o1, d1) {
		o1, d1 = d1, o1
	}
	if !transLeq(o2, d2) {
		o2, d2 = d2, o2
	}
	if !transLeq(o1, o2) {
		o1, o2 = o2, o1
		d1, d2 = d2, d1
	}

	if !transLeq(o2, d1) {
		v.X = (o2.X + d1.X) / 2
	} else if transLeq(d1, d2) {
		z1 := transEval(o1, o2, d1)
		z2 := transEval(o2, d1, d2)
		if z1+z2 < 0 {
			z1, z2 = -z1, -z2
		}
		v.X = interpolate(z1, o2.X, z2, d1.X)
	} else {
		z1 := transSign(o1, o2, d1)
		z2 := -transSign(o1, d2, d1)
		if z1+z2 < 0 {
			z1, z2 = -z1, -z2
		}
		v.X = interpolate(z1, o2.X, z2, d2.X)
	}

	return v
}
