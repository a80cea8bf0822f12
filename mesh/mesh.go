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

// Package mesh implements the Guibas–Stolfi quad-edge data structure: a
// doubly-connected edge list addressed by pooled, recycled integer
// handles rather than pointers. The Euler operators (MakeEdge, Splice,
// Connect, DeleteEdge, plus the derived AddEdgeVertex and SplitEdge)
// keep the vertex rings and face loops consistent; the tessellator
// composes every other mutation from them.
package mesh

import (
	"fmt"
	"log/slog"

	"seehuhn.de/go/vecgeom/geom"
)

// EdgeID names one of the four directed edges of a quad-edge record:
// the primal edge, its reverse (Sym), and the two dual edges that thread
// the left and right faces. The zero value is the nil edge.
type EdgeID int32

// VertexID and FaceID address pooled vertex/face records. The zero value
// is the nil handle.
type VertexID int32
type FaceID int32

type quadRecord struct {
	next [4]EdgeID
	data [4]int32 // data[0],data[2]: VertexID (Org of primal edges); data[1],data[3]: FaceID (Org of dual edges, i.e. Left/Right face)
	// winding[0], winding[1]: per-direction winding of the two primal
	// edges, used by the tessellator's sweep.
	winding [2]int32
	live    bool
}

type vertexRecord struct {
	pos    geom.Point
	anEdge EdgeID
	live   bool
}

type faceRecord struct {
	anEdge  EdgeID
	inside  bool
	winding int
	live    bool
}

// Mesh owns every vertex, edge and face it creates. Deleted elements are
// recycled from free lists rather than returned to the allocator, so
// handles stay stable for the lifetime of the Mesh but must not be used
// after the element they name has been deleted.
type Mesh struct {
	// Logger, if set, receives diagnostics about the quad-record pool:
	// whether a new edge recycled a deleted quad or had to grow the pool,
	// and when a quad is freed. Vertex and face pools are not logged.
	Logger *slog.Logger

	quads []quadRecord
	verts []vertexRecord
	faces []faceRecord

	freeQuads []int32
	freeVerts []int32
	freeFaces []int32
}

// New returns an empty mesh.
func New() *Mesh {
	m := &Mesh{}
	m.quads = append(m.quads, quadRecord{}) // index 0 is the nil sentinel
	m.verts = append(m.verts, vertexRecord{})
	m.faces = append(m.faces, faceRecord{})
	return m
}

// logger returns m.Logger, or a handler that discards everything if
// m.Logger is nil, so call sites never need a nil check of their own.
func (m *Mesh) logger() *slog.Logger {
	if m.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return m.Logger
}

func quadIndex(e EdgeID) int32 { return int32(e) / 4 }
func rotPart(e EdgeID) int32   { return int32(e) % 4 }

// Rot returns the dual edge obtained by rotating e 90 degrees CCW.
func (m *Mesh) Rot(e EdgeID) EdgeID {
	return EdgeID(quadIndex(e)*4 + (rotPart(e)+1)%4)
}

// InvRot is the inverse of Rot.
func (m *Mesh) InvRot(e EdgeID) EdgeID {
	return EdgeID(quadIndex(e)*4 + (rotPart(e)+3)%4)
}

// Sym returns e reversed: the same undirected edge, opposite direction.
func (m *Mesh) Sym(e EdgeID) EdgeID {
	return EdgeID(quadIndex(e)*4 + (rotPart(e)+2)%4)
}

// Onext returns the next edge CCW around Org(e).
func (m *Mesh) Onext(e EdgeID) EdgeID {
	return m.quads[quadIndex(e)].next[rotPart(e)]
}

func (m *Mesh) setOnext(e, v EdgeID) {
	m.quads[quadIndex(e)].next[rotPart(e)] = v
}

// Oprev returns the next edge CW around Org(e).
func (m *Mesh) Oprev(e EdgeID) EdgeID { return m.Rot(m.Onext(m.Rot(e))) }

// Lnext returns the next edge CCW around Lface(e) (the face loop).
func (m *Mesh) Lnext(e EdgeID) EdgeID { return m.Rot(m.Onext(m.InvRot(e))) }

// Lprev returns the previous edge around Lface(e).
func (m *Mesh) Lprev(e EdgeID) EdgeID { return m.Sym(m.Onext(e)) }

// Rprev returns the previous edge around Rface(e): Onext(Sym(e)).
func (m *Mesh) Rprev(e EdgeID) EdgeID { return m.Onext(m.Sym(e)) }

// Dnext returns the next edge CCW around Dst(e).
func (m *Mesh) Dnext(e EdgeID) EdgeID { return m.Sym(m.Rprev(e)) }

func (m *Mesh) data(e EdgeID) int32       { return m.quads[quadIndex(e)].data[rotPart(e)] }
func (m *Mesh) setData(e EdgeID, v int32) { m.quads[quadIndex(e)].data[rotPart(e)] = v }

// Org returns e's origin vertex.
func (m *Mesh) Org(e EdgeID) VertexID { return VertexID(m.data(e)) }

// Dst returns e's destination vertex, Org(Sym(e)).
func (m *Mesh) Dst(e EdgeID) VertexID { return m.Org(m.Sym(e)) }

// Lface returns the face to the left of e, in the direction Org->Dst.
func (m *Mesh) Lface(e EdgeID) FaceID { return FaceID(m.data(m.Rot(e))) }

// Rface returns the face to the right of e, Lface(Sym(e)).
func (m *Mesh) Rface(e EdgeID) FaceID { return m.Lface(m.Sym(e)) }

// Pos returns the position recorded at vertex v.
func (m *Mesh) Pos(v VertexID) geom.Point { return m.verts[v].pos }

// SetPos updates the position recorded at vertex v.
func (m *Mesh) SetPos(v VertexID, p geom.Point) { m.verts[v].pos = p }

// Winding returns the accumulated winding number recorded at face f.
func (m *Mesh) Winding(f FaceID) int { return m.faces[f].winding }

// SetWinding updates the winding number recorded at face f.
func (m *Mesh) SetWinding(f FaceID, w int) { m.faces[f].winding = w }

// Inside reports whether face f has been marked as interior to the
// selected fill rule.
func (m *Mesh) Inside(f FaceID) bool { return m.faces[f].inside }

// SetInside marks face f as interior (or not) to the selected fill rule.
func (m *Mesh) SetInside(f FaceID, inside bool) { m.faces[f].inside = inside }

// EdgeWinding returns the winding recorded on the directed edge e.
// Windings live on the two primal directions of an edge independently;
// SplitEdge copies them to both halves of a split.
func (m *Mesh) EdgeWinding(e EdgeID) int {
	return int(m.quads[quadIndex(e)].winding[rotPart(e)>>1])
}

// SetEdgeWinding records winding w on the directed edge e.
func (m *Mesh) SetEdgeWinding(e EdgeID, w int) {
	m.quads[quadIndex(e)].winding[rotPart(e)>>1] = int32(w)
}

// AddEdgeWinding adds w to the winding recorded on the directed edge e.
func (m *Mesh) AddEdgeWinding(e EdgeID, w int) {
	m.quads[quadIndex(e)].winding[rotPart(e)>>1] += int32(w)
}

func (m *Mesh) newVertex() VertexID {
	if n := len(m.freeVerts); n > 0 {
		id := m.freeVerts[n-1]
		m.freeVerts = m.freeVerts[:n-1]
		m.verts[id] = vertexRecord{live: true}
		return VertexID(id)
	}
	id := VertexID(len(m.verts))
	m.verts = append(m.verts, vertexRecord{live: true})
	return id
}

func (m *Mesh) freeVertex(v VertexID) {
	if v == 0 || !m.verts[v].live {
		return
	}
	m.verts[v] = vertexRecord{}
	m.freeVerts = append(m.freeVerts, int32(v))
}

func (m *Mesh) newFace() FaceID {
	if n := len(m.freeFaces); n > 0 {
		id := m.freeFaces[n-1]
		m.freeFaces = m.freeFaces[:n-1]
		m.faces[id] = faceRecord{live: true}
		return FaceID(id)
	}
	id := FaceID(len(m.faces))
	m.faces = append(m.faces, faceRecord{live: true})
	return id
}

func (m *Mesh) freeFace(f FaceID) {
	if f == 0 || !m.faces[f].live {
		return
	}
	m.faces[f] = faceRecord{}
	m.freeFaces = append(m.freeFaces, int32(f))
}

func (m *Mesh) newQuad() int32 {
	var qi int32
	if n := len(m.freeQuads); n > 0 {
		qi = m.freeQuads[n-1]
		m.freeQuads = m.freeQuads[:n-1]
		m.logger().Debug("recycled quad record", "index", qi, "free", len(m.freeQuads))
	} else {
		qi = int32(len(m.quads))
		m.quads = append(m.quads, quadRecord{})
		m.logger().Debug("grew quad pool", "index", qi, "size", len(m.quads))
	}
	m.quads[qi].live = true
	return qi
}

func (m *Mesh) freeQuad(qi int32) {
	m.quads[qi] = quadRecord{}
	m.freeQuads = append(m.freeQuads, qi)
	m.logger().Debug("freed quad record", "index", qi, "free", len(m.freeQuads))
}

// makeSegment creates a detached edge with two fresh vertices and one
// fresh face on both sides: Onext(e) == e and Lnext(e) == Sym(e). This
// is the raw building block Connect and AddEdgeVertex graft into place.
func (m *Mesh) makeSegment() EdgeID {
	qi := m.newQuad()

	e0 := EdgeID(qi*4 + 0)
	e1 := EdgeID(qi*4 + 1)
	e2 := EdgeID(qi*4 + 2)
	e3 := EdgeID(qi*4 + 3)

	q := &m.quads[qi]
	q.next[0] = e0
	q.next[1] = e3
	q.next[2] = e2
	q.next[3] = e1

	vOrg := m.newVertex()
	vDst := m.newVertex()
	f := m.newFace()
	q.data[0] = int32(vOrg)
	q.data[2] = int32(vDst)
	q.data[1] = int32(f)
	q.data[3] = int32(f)

	m.verts[vOrg].anEdge = e0
	m.verts[vDst].anEdge = e2
	m.faces[f].anEdge = e0
	return e0
}

// MakeEdge creates an isolated loop: a single new edge whose Org and Dst
// are the same freshly-allocated vertex, with a freshly-allocated face on
// each side.
func (m *Mesh) MakeEdge() EdgeID {
	qi := m.newQuad()

	e0 := EdgeID(qi*4 + 0)
	e1 := EdgeID(qi*4 + 1)
	e2 := EdgeID(qi*4 + 2)
	e3 := EdgeID(qi*4 + 3)

	// self-loop wiring: e and Sym(e) share one origin ring, and each
	// bounds its own one-edge face loop.
	q := &m.quads[qi]
	q.next[0] = e2
	q.next[1] = e1
	q.next[2] = e0
	q.next[3] = e3

	v := m.newVertex()
	fIn := m.newFace()
	fOut := m.newFace()
	q.data[0] = int32(v)
	q.data[2] = int32(v)
	q.data[1] = int32(fIn)
	q.data[3] = int32(fOut)

	m.verts[v].anEdge = e0
	m.faces[fIn].anEdge = e0
	m.faces[fOut].anEdge = e2
	return e0
}

// AddEdge creates a detached edge with its endpoints positioned at p0
// and p1.
func (m *Mesh) AddEdge(p0, p1 geom.Point) EdgeID {
	e := m.makeSegment()
	m.verts[m.Org(e)].pos = p0
	m.verts[m.Dst(e)].pos = p1
	return e
}

// splice is the raw topological splice: it swaps the Onext successors of
// a and b and of their duals, without touching vertex or face records.
func (m *Mesh) splice(a, b EdgeID) {
	alpha := m.Rot(m.Onext(a))
	beta := m.Rot(m.Onext(b))

	t1 := m.Onext(a)
	t2 := m.Onext(b)
	t3 := m.Onext(alpha)
	t4 := m.Onext(beta)

	m.setOnext(a, t2)
	m.setOnext(b, t1)
	m.setOnext(alpha, t4)
	m.setOnext(beta, t3)
}

// ringSetOrg assigns vertex v to every edge in e's origin ring.
func (m *Mesh) ringSetOrg(e EdgeID, v VertexID) {
	start := e
	for {
		m.setData(e, int32(v))
		e = m.Onext(e)
		if e == start {
			break
		}
	}
	if v != 0 {
		m.verts[v].anEdge = start
	}
}

// ringSetLface assigns face f to every edge in e's left face loop.
func (m *Mesh) ringSetLface(e EdgeID, f FaceID) {
	start := e
	for {
		m.setData(m.Rot(e), int32(f))
		e = m.Lnext(e)
		if e == start {
			break
		}
	}
	if f != 0 {
		m.faces[f].anEdge = start
	}
}

// killVertex reassigns every edge in vDel's origin ring to vKeep (which
// may be the nil vertex when the ring itself is about to go away) and
// frees vDel.
func (m *Mesh) killVertex(vDel, vKeep VertexID) {
	if vDel == vKeep || !m.verts[vDel].live {
		return
	}
	m.ringSetOrg(m.verts[vDel].anEdge, vKeep)
	m.freeVertex(vDel)
}

// killFace reassigns every edge in fDel's left loop to fKeep (which may
// be the nil face when the loop itself is about to go away) and frees
// fDel.
func (m *Mesh) killFace(fDel, fKeep FaceID) {
	if fDel == fKeep || !m.faces[fDel].live {
		return
	}
	m.ringSetLface(m.faces[fDel].anEdge, fKeep)
	m.freeFace(fDel)
}

// Splice swaps the Onext successors of Org(a) and Org(b) and keeps the
// vertex and face records consistent: if the two origin rings were
// previously distinct they merge into one (b's vertex is discarded), and
// if they were already the same ring it splits into two (b's ring gets a
// fresh vertex at the same position). The left faces merge or split the
// same way.
func (m *Mesh) Splice(a, b EdgeID) {
	if a == b {
		return
	}

	joiningVerts := false
	if m.Org(a) != m.Org(b) {
		joiningVerts = true
		m.killVertex(m.Org(b), m.Org(a))
	}
	joiningFaces := false
	if m.Lface(a) != m.Lface(b) {
		joiningFaces = true
		m.killFace(m.Lface(b), m.Lface(a))
	}

	m.splice(b, a)

	if !joiningVerts {
		v := m.newVertex()
		m.verts[v].pos = m.verts[m.Org(a)].pos
		m.ringSetOrg(b, v)
		m.verts[m.Org(a)].anEdge = a
	}
	if !joiningFaces {
		f := m.newFace()
		m.faces[f].inside = m.faces[m.Lface(a)].inside
		m.ringSetLface(b, f)
		m.faces[m.Lface(a)].anEdge = a
	}
}

// Connect creates a new edge joining Dst(a) to Org(b), inside the common
// face Lface(a) == Lface(b), splitting that face into the two faces the
// new edge now bounds. If a and b were on different faces, the faces are
// joined instead.
func (m *Mesh) Connect(a, b EdgeID) EdgeID {
	eNew := m.makeSegment()
	eNewSym := m.Sym(eNew)
	freshV1 := m.Org(eNew)
	freshV2 := m.Org(eNewSym)
	freshF := m.Lface(eNew)

	joining := false
	if m.Lface(b) != m.Lface(a) {
		joining = true
		m.killFace(m.Lface(b), m.Lface(a))
	}

	m.splice(eNew, m.Lnext(a))
	m.splice(eNewSym, b)

	m.setData(eNew, int32(m.Dst(a)))
	m.setData(eNewSym, int32(m.Org(b)))
	fL := m.Lface(a)
	m.setData(m.Rot(eNew), int32(fL))
	m.setData(m.Rot(eNewSym), int32(fL))
	m.freeVertex(freshV1)
	m.freeVertex(freshV2)
	m.freeFace(freshF)

	m.faces[fL].anEdge = eNewSym
	if !joining {
		f := m.newFace()
		m.faces[f].inside = m.faces[fL].inside
		m.ringSetLface(eNew, f)
	}
	return eNew
}

// DeleteEdge removes e from the mesh, undoing a Connect or shrinking the
// mesh: if e separated two faces they are joined, and if it was a bridge
// inside one face the face splits in two. Isolated endpoints are freed.
func (m *Mesh) DeleteEdge(eDel EdgeID) {
	eDelSym := m.Sym(eDel)

	joiningLoops := false
	if m.Lface(eDel) != m.Rface(eDel) {
		joiningLoops = true
		m.killFace(m.Lface(eDel), m.Rface(eDel))
	}

	if m.Onext(eDel) == eDel {
		m.killVertex(m.Org(eDel), 0)
	} else {
		m.faces[m.Rface(eDel)].anEdge = m.Oprev(eDel)
		m.verts[m.Org(eDel)].anEdge = m.Onext(eDel)
		m.splice(eDel, m.Oprev(eDel))
		if !joiningLoops {
			fOld := m.Lface(eDel)
			f := m.newFace()
			m.faces[f].inside = m.faces[fOld].inside
			m.ringSetLface(eDel, f)
		}
	}

	if m.Onext(eDelSym) == eDelSym {
		m.killVertex(m.Org(eDelSym), 0)
		m.killFace(m.Lface(eDelSym), 0)
	} else {
		m.faces[m.Lface(eDel)].anEdge = m.Oprev(eDelSym)
		m.verts[m.Org(eDelSym)].anEdge = m.Onext(eDelSym)
		m.splice(eDelSym, m.Oprev(eDelSym))
	}

	m.freeQuad(quadIndex(eDel))
}

// AddEdgeVertex adds a new edge and vertex hanging off Dst(eOrg): the
// new edge eNew satisfies Org(eNew) == Dst(eOrg) and Dst(eNew) is a
// fresh vertex whose position the caller must set. Both sides of eNew
// lie in Lface(eOrg).
func (m *Mesh) AddEdgeVertex(eOrg EdgeID) EdgeID {
	eNew := m.makeSegment()
	eNewSym := m.Sym(eNew)
	freshV := m.Org(eNew)
	freshF := m.Lface(eNew)

	m.splice(eNew, m.Lnext(eOrg))

	m.setData(eNew, int32(m.Dst(eOrg)))
	m.freeVertex(freshV)
	fL := m.Lface(eOrg)
	m.setData(m.Rot(eNew), int32(fL))
	m.setData(m.Rot(eNewSym), int32(fL))
	m.freeFace(freshF)
	return eNew
}

// SplitEdge splits eOrg at a new vertex: afterwards eOrg runs from its
// old origin to the new vertex and the returned edge eNew runs from the
// new vertex to eOrg's old destination. The caller positions the new
// vertex, Org(eNew). Edge windings are copied to the new half.
func (m *Mesh) SplitEdge(eOrg EdgeID) EdgeID {
	tempHalfEdge := m.AddEdgeVertex(eOrg)
	eNew := m.Sym(tempHalfEdge)

	// disconnect eOrg from its old destination and reconnect it to the
	// new vertex
	eOrgSym := m.Sym(eOrg)
	m.splice(eOrgSym, m.Oprev(eOrgSym))
	m.splice(eOrgSym, eNew)

	m.setData(eOrgSym, int32(m.Org(eNew)))
	m.verts[m.Dst(eNew)].anEdge = m.Sym(eNew) // may have pointed at Sym(eOrg)
	m.setData(m.Rot(m.Sym(eNew)), int32(m.Rface(eOrg)))
	m.SetEdgeWinding(eNew, m.EdgeWinding(eOrg))
	m.SetEdgeWinding(m.Sym(eNew), m.EdgeWinding(eOrgSym))
	return eNew
}

// EdgeAlive reports whether e names an edge that has not been deleted.
func (m *Mesh) EdgeAlive(e EdgeID) bool {
	return e != 0 && m.quads[quadIndex(e)].live
}

// FaceAlive reports whether f names a face that has not been deleted.
func (m *Mesh) FaceAlive(f FaceID) bool {
	return f != 0 && m.faces[f].live
}

// Vertices returns every live vertex handle.
func (m *Mesh) Vertices() []VertexID {
	var out []VertexID
	for i := 1; i < len(m.verts); i++ {
		if m.verts[i].live {
			out = append(out, VertexID(i))
		}
	}
	return out
}

// Edges returns one directed half of every live edge.
func (m *Mesh) Edges() []EdgeID {
	var out []EdgeID
	for qi := int32(1); qi < int32(len(m.quads)); qi++ {
		if m.quads[qi].live {
			out = append(out, EdgeID(qi*4))
		}
	}
	return out
}

// Faces returns every live face handle.
func (m *Mesh) Faces() []FaceID {
	var out []FaceID
	for i := 1; i < len(m.faces); i++ {
		if m.faces[i].live {
			out = append(out, FaceID(i))
		}
	}
	return out
}

// AnEdge returns some edge whose Org is v.
func (m *Mesh) AnEdge(v VertexID) EdgeID { return m.verts[v].anEdge }

// FaceEdge returns some edge whose Lface is f.
func (m *Mesh) FaceEdge(f FaceID) EdgeID { return m.faces[f].anEdge }

// SetFaceEdge records e as the representative edge of face f. The caller
// must ensure Lface(e) == f.
func (m *Mesh) SetFaceEdge(f FaceID, e EdgeID) { m.faces[f].anEdge = e }

// Check walks the whole mesh and panics on the first broken structural
// invariant. A violation means a bug inside this package or its caller,
// never bad geometry, so there is no error return.
func (m *Mesh) Check() {
	for _, e := range m.Edges() {
		for _, h := range [2]EdgeID{e, m.Sym(e)} {
			if m.Sym(m.Sym(h)) != h {
				panic(fmt.Sprintf("mesh: sym(sym(%d)) != %d", h, h))
			}
			if !m.verts[m.Org(h)].live {
				panic(fmt.Sprintf("mesh: edge %d has dead origin vertex %d", h, m.Org(h)))
			}
			if !m.faces[m.Lface(h)].live {
				panic(fmt.Sprintf("mesh: edge %d has dead left face %d", h, m.Lface(h)))
			}
			if m.Org(m.Onext(h)) != m.Org(h) {
				panic(fmt.Sprintf("mesh: onext ring of edge %d changes origin", h))
			}
			if m.Lface(m.Lnext(h)) != m.Lface(h) {
				panic(fmt.Sprintf("mesh: lnext ring of edge %d changes face", h))
			}
		}
	}
	for _, v := range m.Vertices() {
		if m.Org(m.verts[v].anEdge) != v {
			panic(fmt.Sprintf("mesh: vertex %d anEdge does not originate there", v))
		}
	}
	for _, f := range m.Faces() {
		if m.Lface(m.faces[f].anEdge) != f {
			panic(fmt.Sprintf("mesh: face %d anEdge is not on its loop", f))
		}
	}
}
