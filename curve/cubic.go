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

import "seehuhn.de/go/vecgeom/geom"

// Cubic is a cubic Bezier curve given by its four control points.
type Cubic [4]geom.Point

// DivideMax is the largest segment count [Cubic.DivideCount] will ever
// return.
const DivideMax = 6

// NearDistance approximates how far the curve's control polygon deviates
// from the chord p0-p3: the sum of the distances from p1 and p2 to the
// chord, an upper bound used by [Cubic.DivideCount].
func (c Cubic) NearDistance() float32 {
	chord := c[3].Sub(c[0])
	length := chord.Length()
	if length == 0 {
		return c[1].Sub(c[0]).Length() + c[2].Sub(c[3]).Length()
	}
	n := geom.Pt(-chord.Y, chord.X).Scale(1 / length)
	d1 := abs(c[1].Sub(c[0]).Dot(n))
	d2 := abs(c[2].Sub(c[3]).Dot(n))
	return d1 + d2
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// DivideCount estimates how many line segments are needed to flatten the
// curve to within tol of the true curve, capped at [DivideMax], for callers
// that want a fixed segment budget instead of adaptive [FlattenCubic]
// recursion.
func (c Cubic) DivideCount(tol float32) int {
	if tol <= 0 {
		tol = 1
	}
	d := c.NearDistance()
	n := 1
	for d > tol && n < DivideMax {
		d /= 4
		n++
	}
	return n
}

// IsFlat reports whether the curve's control polygon deviates from its
// chord by at most tol, as measured by [Cubic.NearDistance]. [FlattenCubic]
// stops recursing on its own L1 error estimate, not on this test.
func (c Cubic) IsFlat(tol float32) bool {
	return c.NearDistance() <= tol
}

// ChopAt splits the curve at parameter t (0, 1) via de Casteljau's
// algorithm, returning the two resulting cubics sharing the point at t.
func (c Cubic) ChopAt(t float32) (left, right Cubic) {
	p01 := c[0].Lerp(c[1], t)
	p12 := c[1].Lerp(c[2], t)
	p23 := c[2].Lerp(c[3], t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	m := p012.Lerp(p123, t)

	left = Cubic{c[0], p01, p012, m}
	right = Cubic{m, p123, p23, c[3]}
	return
}

// ChopAtHalf splits the curve at its midpoint parameter.
func (c Cubic) ChopAtHalf() (left, right Cubic) {
	return c.ChopAt(0.5)
}

// Curvature returns a signed scalar proportional to the curve's curvature
// at parameter t: the cross product of the first and second derivatives.
// Its sign gives the turning direction; its zero crossings are the
// inflection points used by [Cubic.ChopAtMaxCurvature].
func (c Cubic) Curvature(t float32) float32 {
	omt := 1 - t
	// first derivative: 3*((1-t)^2*(p1-p0) + 2*(1-t)*t*(p2-p1) + t^2*(p3-p2))
	d1 := c[1].Sub(c[0]).Scale(omt * omt).
		Add(c[2].Sub(c[1]).Scale(2 * omt * t)).
		Add(c[3].Sub(c[2]).Scale(t * t)).
		Scale(3)
	// second derivative: 6*((1-t)*(p2-2p1+p0) + t*(p3-2p2+p1))
	d2 := c[2].Sub(c[1].Scale(2)).Add(c[0]).Scale(omt).
		Add(c[3].Sub(c[2].Scale(2)).Add(c[1]).Scale(t)).
		Scale(6)
	return d1.Cross(d2)
}

// ChopAtMaxCurvature splits the curve at the parameter(s) where
// [Cubic.Curvature] changes sign, that is at its inflection points,
// returning between 1 and 3 pieces. Most curves have zero or one such
// point; a cubic can have at most two inflection points, giving at most
// three pieces. Points of maximum curvature magnitude are not located, and
// a curve without an inflection is returned whole.
func (c Cubic) ChopAtMaxCurvature() []Cubic {
	const samples = 16
	var roots []float32
	prev := c.Curvature(0)
	for i := 1; i <= samples; i++ {
		t := float32(i) / samples
		cur := c.Curvature(t)
		if (prev < 0) != (cur < 0) && prev != 0 && cur != 0 {
			// bisect for a tighter root estimate
			lo, hi := float32(i-1)/samples, t
			loVal := prev
			for range 20 {
				mid := (lo + hi) / 2
				midVal := c.Curvature(mid)
				if (midVal < 0) == (loVal < 0) {
					lo = mid
					loVal = midVal
				} else {
					hi = mid
				}
			}
			roots = append(roots, (lo+hi)/2)
		}
		prev = cur
	}

	if len(roots) == 0 {
		return []Cubic{c}
	}
	if len(roots) > 2 {
		roots = roots[:2]
	}

	out := make([]Cubic, 0, len(roots)+1)
	rest := c
	prevT := float32(0)
	for _, t := range roots {
		// re-parameterize t relative to the remaining sub-curve
		localT := (t - prevT) / (1 - prevT)
		left, right := rest.ChopAt(localT)
		out = append(out, left)
		rest = right
		prevT = t
	}
	out = append(out, rest)
	return out
}
