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

package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/vecgeom/geom"
	"seehuhn.de/go/vecgeom/scalar"
)

func assertPointsClose(t *testing.T, want, got geom.Point) {
	t.Helper()
	assert.InDelta(t, float64(want.X), float64(got.X), float64(scalar.Near0))
	assert.InDelta(t, float64(want.Y), float64(got.Y), float64(scalar.Near0))
}

// TestComposition is the scenario-4 end-to-end test from the testable
// properties: rotate(90) . translate(1,0) applied to the origin gives (0,1).
func TestComposition(t *testing.T) {
	a := NewRotateDeg(90, nil)
	b := NewTranslate(1, 0)
	combined := a.Multiply(b)
	got := combined.Apply(geom.Pt(0, 0))
	assertPointsClose(t, geom.Pt(0, 1), got)
}

// TestAssociativity checks (A.B).p == A.(B.p) for arbitrary matrices.
func TestAssociativity(t *testing.T) {
	a := NewRotateDeg(37, nil)
	b := NewScale(2, 3).Multiply(NewTranslate(5, -1))
	p := geom.Pt(3, 4)

	direct := a.Multiply(b).Apply(p)
	stepwise := a.Apply(b.Apply(p))
	assertPointsClose(t, direct, stepwise)
}

func TestInverse(t *testing.T) {
	m := NewRotateDeg(23, nil).Multiply(NewScale(2, 0.5)).Multiply(NewTranslate(7, -3))
	inv, ok := m.Invert()
	require.True(t, ok)

	p := geom.Pt(5, -2)
	roundTrip := inv.Apply(m.Apply(p))
	assertPointsClose(t, p, roundTrip)

	roundTrip2 := m.Apply(inv.Apply(p))
	assertPointsClose(t, p, roundTrip2)
}

func TestAxisAlignedInverseFastPath(t *testing.T) {
	m := New(2, 0, 0, 4, 3, -5)
	inv, ok := m.Invert()
	require.True(t, ok)
	assertPointsClose(t, geom.Pt(0, 0), inv.Apply(m.Apply(geom.Pt(0, 0))))
	assert.Equal(t, scalar.S(0.5), inv.Sx)
	assert.Equal(t, scalar.S(0.25), inv.Sy)
}

func TestSingularNotInvertible(t *testing.T) {
	m := New(0, 0, 0, 0, 1, 1)
	_, ok := m.Invert()
	assert.False(t, ok)
}

func TestIdentityShortCircuit(t *testing.T) {
	m := NewRotateDeg(12, nil)
	assert.Equal(t, m, m.Multiply(Identity))
	assert.Equal(t, m, Identity.Multiply(m))
	assert.True(t, Identity.IsIdentity())
}

func TestMultiplyLHSIsDistinctFromMultiply(t *testing.T) {
	a := NewScale(2, 1)
	b := NewTranslate(1, 0)

	post := a.Multiply(b) // p -> a . b . p
	pre := a.MultiplyLHS(b) // p -> b . a . p

	p := geom.Pt(1, 0)
	assertPointsClose(t, geom.Pt(4, 0), post.Apply(p))
	assertPointsClose(t, geom.Pt(3, 0), pre.Apply(p))
}
