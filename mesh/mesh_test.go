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

package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seehuhn.de/go/vecgeom/geom"
)

func TestMakeEdgeIsolatedLoop(t *testing.T) {
	m := New()
	e := m.MakeEdge()

	assert.Equal(t, m.Org(e), m.Dst(e))
	assert.NotEqual(t, m.Lface(e), m.Rface(e))
	assert.Equal(t, m.Sym(e), m.Onext(e))
	assert.Equal(t, e, m.Lnext(e))
	m.Check()
}

// TestSymInvolution checks sym(sym(e)) == e, the basic quad-edge identity.
func TestSymInvolution(t *testing.T) {
	m := New()
	e := m.MakeEdge()
	assert.Equal(t, e, m.Sym(m.Sym(e)))
	assert.Equal(t, e, m.Rot(m.Rot(m.Rot(m.Rot(e)))))
	assert.Equal(t, e, m.InvRot(m.Rot(e)))
}

// TestSpliceJoinsAndSplits splices the origins of two detached edges
// together and checks that the origin rings merge into one vertex, then
// splices again and checks they come back apart.
func TestSpliceJoinsAndSplits(t *testing.T) {
	m := New()
	a := m.AddEdge(geom.Pt(0, 0), geom.Pt(10, 0))
	b := m.AddEdge(geom.Pt(0, 0), geom.Pt(0, 10))

	assert.NotEqual(t, m.Org(a), m.Org(b))

	m.Splice(a, b)
	assert.Equal(t, b, m.Onext(a))
	assert.Equal(t, a, m.Onext(b))
	assert.Equal(t, m.Org(a), m.Org(b))
	m.Check()

	m.Splice(a, b)
	assert.Equal(t, a, m.Onext(a))
	assert.Equal(t, b, m.Onext(b))
	assert.NotEqual(t, m.Org(a), m.Org(b))
	m.Check()
}

// TestConnectSplitsFace builds a triangle from two chained edges and a
// Connect, and checks that the closing edge bounds a three-edge loop
// shared with the chain.
func TestConnectSplitsFace(t *testing.T) {
	m := New()

	e1 := m.AddEdge(geom.Pt(0, 0), geom.Pt(10, 0))
	e2 := m.AddEdgeVertex(e1)
	m.SetPos(m.Dst(e2), geom.Pt(5, 10))

	assert.Equal(t, m.Dst(e1), m.Org(e2))

	e3 := m.Connect(e2, e1)
	assert.Equal(t, m.Dst(e2), m.Org(e3))
	assert.Equal(t, m.Org(e1), m.Dst(e3))

	count := 0
	for f := e1; ; {
		count++
		f = m.Lnext(f)
		if f == e1 || count > 10 {
			break
		}
	}
	assert.Equal(t, 3, count)
	assert.Equal(t, m.Lface(e1), m.Lface(e3))
	assert.NotEqual(t, m.Lface(e3), m.Rface(e3))
	m.Check()
}

// TestSplitEdge splits an edge in the middle and checks both halves and
// the shared vertex.
func TestSplitEdge(t *testing.T) {
	m := New()
	e := m.AddEdge(geom.Pt(0, 0), geom.Pt(10, 0))
	dst := m.Dst(e)
	m.SetEdgeWinding(e, 1)
	m.SetEdgeWinding(m.Sym(e), -1)

	eNew := m.SplitEdge(e)
	m.SetPos(m.Org(eNew), geom.Pt(5, 0))

	assert.Equal(t, m.Dst(e), m.Org(eNew))
	assert.Equal(t, dst, m.Dst(eNew))
	assert.Equal(t, eNew, m.Lnext(e))
	assert.Equal(t, 1, m.EdgeWinding(eNew))
	assert.Equal(t, -1, m.EdgeWinding(m.Sym(eNew)))
	m.Check()
}

func TestDeleteEdgeUndoesMakeEdge(t *testing.T) {
	m := New()
	e := m.MakeEdge()
	before := len(m.Vertices())
	m.DeleteEdge(e)
	after := len(m.Vertices())
	assert.Less(t, after, before)
	assert.Empty(t, m.Edges())
}

// TestContourLoop grows a closed square contour the way the tessellator
// does, one SplitEdge at a time, and checks the loop structure.
func TestContourLoop(t *testing.T) {
	m := New()
	pts := []geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	var e EdgeID
	for _, p := range pts {
		if e == 0 {
			e = m.MakeEdge()
		} else {
			m.SplitEdge(e)
			e = m.Lnext(e)
		}
		m.SetPos(m.Org(e), p)
	}
	m.Check()

	// walking Lnext visits each corner once
	var got []geom.Point
	start := e
	for {
		got = append(got, m.Pos(m.Org(e)))
		e = m.Lnext(e)
		if e == start {
			break
		}
	}
	assert.Len(t, got, 4)
	assert.ElementsMatch(t, pts, got)
}
