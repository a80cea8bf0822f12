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
)

// sweeper holds the state of one plane sweep over the mesh: the event
// queue of vertices, the ordered active-region list with its two bounds
// sentinels, and the mapping from active edges back to their regions.
type sweeper struct {
	tess *Tessellator
	m    *mesh.Mesh
	rule FillRule

	pq         *eventQueue
	head, tail *activeRegion // list dummies; head.next is the leftmost region
	regionOf   map[mesh.EdgeID]*activeRegion

	// the vertex being processed
	event mesh.VertexID
}

func newSweeper(t *Tessellator, m *mesh.Mesh, rule FillRule) *sweeper {
	s := &sweeper{
		tess:     t,
		m:        m,
		rule:     rule,
		pq:       newEventQueue(m),
		regionOf: make(map[mesh.EdgeID]*activeRegion),
		head:     &activeRegion{},
		tail:     &activeRegion{},
	}
	s.head.next = s.tail
	s.tail.prev = s.head
	return s
}

func (s *sweeper) eventPos() geom.Point { return s.m.Pos(s.event) }

// addWinding folds src's windings into dst, both directions, when two
// coincident edges merge into one.
func (s *sweeper) addWinding(dst, src mesh.EdgeID) {
	s.m.AddEdgeWinding(dst, s.m.EdgeWinding(src))
	s.m.AddEdgeWinding(s.m.Sym(dst), s.m.EdgeWinding(s.m.Sym(src)))
}

// mergeVertices splices the origin rings of a and b together, keeping
// a's vertex.
func (s *sweeper) mergeVertices(a, b mesh.EdgeID) {
	s.tess.logger().Debug("merging coincident vertices",
		"keep", s.m.Org(a), "drop", s.m.Org(b))
	s.m.Splice(a, b)
}

// run executes the sweep: all event vertices are processed in sweep
// order, leaving every face of the mesh marked inside or outside.
func (s *sweeper) run(bounds geom.Rect) {
	s.removeDegenerateEdges()
	for _, v := range s.m.Vertices() {
		s.pq.push(v)
	}
	s.initRegions(bounds)

	for {
		v, ok := s.pq.pop()
		if !ok {
			break
		}
		for {
			next, ok := s.pq.peek()
			if !ok || !vertEq(s.m.Pos(next), s.m.Pos(v)) {
				break
			}
			s.pq.pop()
			s.mergeVertices(s.m.AnEdge(v), s.m.AnEdge(next))
		}
		s.sweepEvent(v)
	}

	s.doneRegions()
	s.removeDegenerateFaces()
}

// removeDegenerateEdges deletes zero-length edges and collapses
// degenerate one- or two-edge contours before the sweep starts.
func (s *sweeper) removeDegenerateEdges() {
	m := s.m
	for _, e := range m.Edges() {
		if !m.EdgeAlive(e) {
			continue
		}
		eLnext := m.Lnext(e)
		if vertEq(m.Pos(m.Org(e)), m.Pos(m.Dst(e))) && m.Lnext(eLnext) != e {
			s.tess.logger().Debug("removing zero-length edge", "at", m.Pos(m.Org(e)))
			s.mergeVertices(eLnext, e)
			m.DeleteEdge(e)
			e = eLnext
			eLnext = m.Lnext(e)
		}
		if m.Lnext(eLnext) == e {
			// degenerate contour of one or two edges
			if eLnext != e {
				m.DeleteEdge(eLnext)
			}
			m.DeleteEdge(e)
		}
	}
}

// initRegions seeds the active list with the two bounds sentinels just
// outside the input's bounding box.
func (s *sweeper) initRegions(bounds geom.Rect) {
	xb := bounds.Min.X - 1
	xe := bounds.Max.X + 1
	yLo := bounds.Min.Y - 1
	yHi := bounds.Max.Y + 1
	s.addBounds(xb, yLo, yHi)
	s.addBounds(xe, yLo, yHi)
}

// doneRegions retires whatever is left in the active list. Only the two
// bounds sentinels, and possibly one leftover fixable edge, should still
// be here.
func (s *sweeper) doneRegions() {
	for s.head.next != s.tail {
		reg := s.head.next
		if !reg.bounds {
			s.tess.logger().Debug("leftover active region at sweep end",
				"edge", reg.edge, "fixedge", reg.fixedge)
		}
		s.deleteRegion(reg)
	}
}

// removeDegenerateFaces deletes two-edge faces left over from merged
// coincident edges, folding their windings together.
func (s *sweeper) removeDegenerateFaces() {
	m := s.m
	for _, f := range m.Faces() {
		if !m.FaceAlive(f) {
			continue
		}
		e := m.FaceEdge(f)
		if m.Lnext(m.Lnext(e)) == e {
			s.addWinding(m.Onext(e), e)
			m.DeleteEdge(e)
		}
	}
}

// sweepEvent processes one vertex. Edges ending at the vertex are
// finished right to left; edges starting at it are inserted into the
// active list.
func (s *sweeper) sweepEvent(v mesh.VertexID) {
	s.event = v

	// look for an active edge ending here
	e := s.m.AnEdge(v)
	for s.regionOf[e] == nil {
		e = s.m.Onext(e)
		if e == s.m.AnEdge(v) {
			// no active edge ends here: the vertex opens new regions
			s.connectTopEvent(v)
			return
		}
	}

	// finish the regions between edges ending at v
	regR := s.regionPastOrg(s.regionOf[e])
	reg := regR.prev
	eRight := reg.edge
	eLeft := s.finishUpperRegions(reg, nil)

	if s.m.Onext(eLeft) == eRight {
		// no edges start here; bridge downward with a temporary edge
		s.connectBottomEvent(regR, eLeft)
	} else {
		s.addLowerEdges(regR, s.m.Onext(eLeft), eRight, eRight, true)
	}
}

// finishUpperRegions retires the chain of regions whose edges end at the
// current event, walking leftward from regFirst until regLast (or until
// the chain of shared origins breaks). It returns the leftmost edge into
// the event, and re-links the mesh so the edges into the event form a
// contiguous Onext run.
func (s *sweeper) finishUpperRegions(regFirst, regLast *activeRegion) mesh.EdgeID {
	m := s.m
	regPrev := regFirst
	ePrev := regFirst.edge
	for regPrev != regLast {
		regPrev.fixedge = false
		reg := regPrev.prev
		e := reg.edge
		if m.Org(e) != m.Org(ePrev) {
			if !reg.fixedge {
				s.finishRegion(regPrev)
				break
			}
			// the neighbor is a temporary edge; give it a real edge
			// ending at the event
			e = m.Connect(m.Lprev(ePrev), m.Sym(e))
			s.fixRegionEdge(reg, e)
		}
		if m.Onext(ePrev) != e {
			m.Splice(m.Oprev(e), e)
			m.Splice(ePrev, e)
		}
		s.finishRegion(regPrev) // may change reg.edge
		ePrev = reg.edge
		regPrev = reg
	}
	return ePrev
}

// addLowerEdges inserts the edges leaving the event downward into the
// active list, computes their regions' windings, and merges coincident
// edges. eFirst..eLast is the Onext run of down-going edges; eLeftTop is
// the edge into the event just left of them, or 0 if there is none.
func (s *sweeper) addLowerEdges(regR *activeRegion, eFirst, eLast, eLeftTop mesh.EdgeID, cleanUp bool) {
	m := s.m

	e := eFirst
	for {
		if !edgeGoesDown(m, e) {
			panic("tessellate: upward edge in the down-going fan")
		}
		s.insertRegionLeftOf(regR, m.Sym(e))
		e = m.Onext(e)
		if e == eLast {
			break
		}
	}

	if eLeftTop == 0 {
		eLeftTop = m.Rprev(regR.prev.edge)
	}

	regPrev := regR
	ePrev := eLeftTop
	firstTime := true
	for {
		reg := regPrev.prev
		e := m.Sym(reg.edge)
		if m.Org(e) != m.Org(ePrev) {
			break
		}
		if m.Onext(e) != ePrev {
			// re-link the mesh to match the active-list ordering
			m.Splice(m.Oprev(e), e)
			m.Splice(m.Oprev(ePrev), e)
		}
		reg.winding = regPrev.winding - m.EdgeWinding(e)
		reg.inside = s.rule.inside(reg.winding)
		regPrev.dirty = true
		if !firstTime && s.checkLowerSplice(regPrev) {
			// ePrev and e turned out to be coincident: merge them
			s.addWinding(e, ePrev)
			s.deleteRegion(regPrev)
			m.DeleteEdge(ePrev)
		}
		firstTime = false
		regPrev = reg
		ePrev = e
	}
	regPrev.dirty = true

	if cleanUp {
		s.walkDirtyRegions(regPrev)
	}
}

// connectTopEvent handles a vertex none of whose edges are active yet:
// either a pure top vertex opening a new region, or a vertex inside an
// existing region that must be connected leftward.
func (s *sweeper) connectTopEvent(v mesh.VertexID) {
	m := s.m
	regR := s.locateRegion(m.Sym(m.AnEdge(v)))
	regL := regR.prev
	if regL == s.head {
		// can happen for inputs degenerate beyond the bounds sentinels
		return
	}
	eR := regR.edge
	eL := regL.edge

	if edgeSign(m.Pos(m.Dst(eR)), m.Pos(v), m.Pos(m.Org(eR))) == 0 {
		s.connectTopDegenerate(regR, v)
		return
	}

	// connect to whichever neighboring chain has the lower endpoint
	reg := regL
	if sweepLeq(m.Pos(m.Dst(eL)), m.Pos(m.Dst(eR))) {
		reg = regR
	}

	if regR.inside || reg.fixedge {
		var eNew mesh.EdgeID
		if reg == regR {
			eNew = m.Connect(m.Sym(m.AnEdge(v)), m.Lnext(eR))
		} else {
			eNew = m.Sym(m.Connect(m.Dnext(eL), m.AnEdge(v)))
		}
		if reg.fixedge {
			s.fixRegionEdge(reg, eNew)
		} else {
			s.computeWinding(s.insertRegionLeftOf(regR, eNew))
		}
		s.sweepEvent(v)
	} else {
		// the vertex lies in an exterior region; just start its edges
		s.addLowerEdges(regR, m.AnEdge(v), m.AnEdge(v), 0, true)
	}
}

// connectTopDegenerate handles a new vertex lying exactly on an active
// edge.
func (s *sweeper) connectTopDegenerate(regR *activeRegion, v mesh.VertexID) {
	m := s.m
	e := regR.edge

	if vertEq(m.Pos(m.Org(e)), m.Pos(v)) {
		// e's origin is an unprocessed vertex at the same spot: merge
		// and wait for it to come off the queue
		s.mergeVertices(e, m.AnEdge(v))
		return
	}

	if !vertEq(m.Pos(m.Dst(e)), m.Pos(v)) {
		// the vertex splits e in its interior
		m.SplitEdge(m.Sym(e))
		if regR.fixedge {
			// the unused lower part of a temporary edge goes away
			m.DeleteEdge(m.Onext(e))
			regR.fixedge = false
		}
		m.Splice(m.AnEdge(v), e)
		s.sweepEvent(v)
		return
	}

	// the vertex coincides with e's already-processed destination:
	// splice its edges into the fan there
	regR = s.regionPastDst(regR)
	reg := regR.prev
	eRightTop := m.Sym(reg.edge)
	eLeftTop := m.Onext(eRightTop)
	eLast := eLeftTop
	if reg.fixedge {
		if eLeftTop == eRightTop {
			panic("tessellate: fixable edge with no neighboring edges")
		}
		s.deleteRegion(reg)
		m.DeleteEdge(eRightTop)
		eRightTop = m.Oprev(eLeftTop)
	}
	m.Splice(m.AnEdge(v), eRightTop)
	if !edgeGoesUp(m, eLeftTop) {
		// there were no edges into the destination on the left side
		eLeftTop = 0
	}
	s.addLowerEdges(regR, m.Onext(eRightTop), eLast, eLeftTop, true)
}

// connectBottomEvent handles a vertex with edges ending at it but none
// leaving: the two neighboring chains are bridged with a temporary
// fixable edge so the region below the vertex stays bounded.
func (s *sweeper) connectBottomEvent(regR *activeRegion, eLeft mesh.EdgeID) {
	m := s.m
	eLeftTop := m.Onext(eLeft)
	regL := regR.prev
	eR := regR.edge
	eL := regL.edge
	degenerate := false

	if m.Dst(eR) != m.Dst(eL) {
		s.checkIntersect(regR)
	}

	// the neighboring edges may pass through the event exactly
	if vertEq(m.Pos(m.Org(eR)), s.eventPos()) {
		m.Splice(m.Oprev(eLeftTop), eR)
		regR = s.regionPastOrg(regR)
		eLeftTop = regR.prev.edge
		s.finishUpperRegions(regR.prev, regL)
		degenerate = true
	}
	if vertEq(m.Pos(m.Org(eL)), s.eventPos()) {
		m.Splice(eLeft, m.Oprev(eL))
		eLeft = s.finishUpperRegions(regL, nil)
		degenerate = true
	}
	if degenerate {
		s.addLowerEdges(regR, m.Onext(eLeft), eLeftTop, eLeftTop, true)
		return
	}

	// bridge to the closer of the two unprocessed endpoints with a
	// temporary edge
	var eNew mesh.EdgeID
	if sweepLeq(m.Pos(m.Org(eL)), m.Pos(m.Org(eR))) {
		eNew = m.Oprev(eL)
	} else {
		eNew = eR
	}
	eNew = m.Connect(m.Lprev(eLeft), eNew)

	s.addLowerEdges(regR, eNew, m.Onext(eNew), m.Onext(eNew), false)
	s.regionOf[m.Sym(eNew)].fixedge = true
	s.walkDirtyRegions(regR)
}

// checkLowerSplice restores the active-list invariants at the lower
// (unprocessed) endpoints of a region's two bounding edges: if one
// origin lies on the other edge, the edge is split and the vertices
// spliced together. Returns whether anything changed.
func (s *sweeper) checkLowerSplice(regR *activeRegion) bool {
	m := s.m
	regL := regR.prev
	eR := regR.edge
	eL := regL.edge
	orgR, orgL := m.Pos(m.Org(eR)), m.Pos(m.Org(eL))
	dstR, dstL := m.Pos(m.Dst(eR)), m.Pos(m.Dst(eL))

	if sweepLeq(orgR, orgL) {
		if edgeSign(dstL, orgR, orgL) > 0 {
			return false
		}
		if !vertEq(orgR, orgL) {
			// splice eR's origin into eL
			m.SplitEdge(m.Sym(eL))
			m.Splice(eR, m.Oprev(eL))
			regR.dirty = true
			regL.dirty = true
		} else if m.Org(eR) != m.Org(eL) {
			// coincident but distinct vertices: merge them
			s.pq.remove(m.Org(eR))
			s.mergeVertices(m.Oprev(eL), eR)
		}
	} else {
		if edgeSign(dstR, orgL, orgR) < 0 {
			return false
		}
		// splice eL's origin into eR
		regR.next.dirty = true
		regR.dirty = true
		m.SplitEdge(m.Sym(eR))
		m.Splice(m.Oprev(eL), eR)
	}
	return true
}

// checkUpperSplice restores the invariants at the upper (processed)
// endpoints: if one destination lies on the other edge, the edge is
// split there. Returns whether anything changed.
func (s *sweeper) checkUpperSplice(regR *activeRegion) bool {
	m := s.m
	regL := regR.prev
	eR := regR.edge
	eL := regL.edge
	orgR, orgL := m.Pos(m.Org(eR)), m.Pos(m.Org(eL))
	dstR, dstL := m.Pos(m.Dst(eR)), m.Pos(m.Dst(eL))

	if sweepLeq(dstR, dstL) {
		if edgeSign(dstR, dstL, orgR) < 0 {
			return false
		}
		// dstL lies on eR
		regR.next.dirty = true
		regR.dirty = true
		e := m.SplitEdge(eR)
		m.Splice(m.Sym(eL), e)
		m.SetInside(m.Lface(e), regR.inside)
	} else {
		if edgeSign(dstL, dstR, orgL) > 0 {
			return false
		}
		// dstR lies on eL
		regR.dirty = true
		regL.dirty = true
		e := m.SplitEdge(eL)
		m.Splice(m.Lnext(eR), m.Sym(eL))
		m.SetInside(m.Rface(e), regR.inside)
	}
	return true
}

// checkIntersect tests a region's two bounding edges for a crossing
// below the current event. On a real crossing both edges are split at
// the intersection point, which becomes a new event. Returns true if the
// processing of the current event was completed as a side effect.
func (s *sweeper) checkIntersect(regR *activeRegion) bool {
	m := s.m
	regL := regR.prev
	eR := regR.edge
	eL := regL.edge
	orgR, orgL := m.Pos(m.Org(eR)), m.Pos(m.Org(eL))
	dstR, dstL := m.Pos(m.Dst(eR)), m.Pos(m.Dst(eL))
	evPos := s.eventPos()

	if m.Org(eR) == m.Org(eL) {
		return false
	}
	if min(orgR.X, dstR.X) > max(orgL.X, dstL.X) {
		return false
	}
	if sweepLeq(orgR, orgL) {
		if edgeSign(dstL, orgR, orgL) > 0 {
			return false
		}
	} else {
		if edgeSign(dstR, orgL, orgR) < 0 {
			return false
		}
	}

	isect := edgeIntersect(dstR, orgR, dstL, orgL)

	// the intersection must come after the current event and before
	// both edges' lower endpoints
	if sweepLeq(isect, evPos) {
		isect = evPos
	}
	orgMin := orgR
	if sweepLeq(orgL, orgR) {
		orgMin = orgL
	}
	if sweepLeq(orgMin, isect) {
		isect = orgMin
	}

	if vertEq(isect, orgR) || vertEq(isect, orgL) {
		// the crossing is at one of the lower endpoints
		s.checkLowerSplice(regR)
		return false
	}

	if (!vertEq(dstR, evPos) && edgeSign(dstR, evPos, isect) >= 0) ||
		(!vertEq(dstL, evPos) && edgeSign(dstL, evPos, isect) <= 0) {
		// rounding would put the new edge on the wrong side of the
		// event; splice the event into the offending edge instead
		if m.Dst(eL) == s.event {
			m.SplitEdge(m.Sym(eR))
			m.Splice(m.Sym(eL), eR)
			regR = s.regionPastOrg(regR)
			eR = regR.prev.edge
			s.finishUpperRegions(regR.prev, regL)
			s.addLowerEdges(regR, m.Oprev(eR), eR, eR, true)
			return true
		}
		if m.Dst(eR) == s.event {
			m.SplitEdge(m.Sym(eL))
			m.Splice(m.Lnext(eR), m.Oprev(eL))
			regL = regR
			regR = s.regionPastDst(regR)
			e := m.Rprev(regR.prev.edge)
			delete(s.regionOf, regL.edge)
			regL.edge = m.Oprev(eL)
			s.regionOf[regL.edge] = regL
			eLeft := s.finishUpperRegions(regL, nil)
			s.addLowerEdges(regR, m.Onext(eLeft), m.Rprev(eR), e, true)
			return true
		}
		if edgeSign(dstR, evPos, isect) >= 0 {
			regR.next.dirty = true
			regR.dirty = true
			m.SplitEdge(m.Sym(eR))
			m.SetPos(m.Org(eR), evPos)
		}
		if edgeSign(dstL, evPos, isect) <= 0 {
			regR.dirty = true
			regL.dirty = true
			m.SplitEdge(m.Sym(eL))
			m.SetPos(m.Org(eL), evPos)
		}
		return false
	}

	// general case: split both edges and splice in the intersection
	// vertex, which becomes a future event
	m.SplitEdge(m.Sym(eR))
	m.SplitEdge(m.Sym(eL))
	m.Splice(m.Oprev(eL), eR)
	v := m.Org(eR)
	m.SetPos(v, isect)
	s.pq.push(v)
	s.tess.logger().Debug("inserted intersection event", "at", isect)
	regR.next.dirty = true
	regR.dirty = true
	regL.dirty = true
	return false
}

// walkDirtyRegions re-checks the ordering invariants around every region
// marked dirty, cascading until the neighborhood of the event is clean.
func (s *sweeper) walkDirtyRegions(regR *activeRegion) {
	m := s.m
	regL := regR.prev
	for {
		// find the leftmost dirty region; work left to right
		for regL.dirty {
			regR = regL
			regL = regL.prev
		}
		if !regR.dirty {
			regL = regR
			regR = regR.next
			if regR == s.tail || !regR.dirty {
				return
			}
		}
		regR.dirty = false
		eR := regR.edge
		eL := regL.edge

		if m.Dst(eR) != m.Dst(eL) {
			if s.checkUpperSplice(regR) {
				// a fixable edge that no longer bounds anything useful
				// can go away now
				if regL.fixedge {
					s.deleteRegion(regL)
					m.DeleteEdge(eL)
					regL = regR.prev
					eL = regL.edge
				} else if regR.fixedge {
					s.deleteRegion(regR)
					m.DeleteEdge(eR)
					regR = regL.next
					eR = regR.edge
				}
			}
		}
		if m.Org(eR) != m.Org(eL) {
			if m.Dst(eR) != m.Dst(eL) && !regR.fixedge && !regL.fixedge &&
				(m.Dst(eR) == s.event || m.Dst(eL) == s.event) {
				if s.checkIntersect(regR) {
					return
				}
			} else {
				s.checkLowerSplice(regR)
			}
		}
		if m.Org(eR) == m.Org(eL) && m.Dst(eR) == m.Dst(eL) {
			// the two edges became one; fold windings and drop one
			s.addWinding(eL, eR)
			s.deleteRegion(regR)
			m.DeleteEdge(eR)
			regR = regL.next
		}
	}
}
