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

/* activeRegion is one entry of the sweep's ordered edge list.
 *
 *  /.\                                     .              /.\
 *   .                 .                   .   .            .
 *   .               .   .                .       .         .
 *   .   region1   .       .             .           .      .
 *   .           .           .  region3 .                   .
 *   . ------- . - region2 --- . ---- event --------------- . ----- sweep line
 *   .       .                   .     .                    .
 *   .     edge                 edge   .     region4        . region5
 *   .                                 .                    .
 * edge                               edge                 edge
 * (bounds)                                               (bounds)
 *
 * Each region records the strip of plane between its edge and its left
 * neighbor's edge at the current sweep position, with the winding number
 * of that strip and whether the fill rule makes it interior. The two
 * bounds regions sit on vertical edges outside the input's bounding box
 * so every real edge has a neighbor on both sides.
 */
type activeRegion struct {
	// the region's edge; it goes up (its Dst is its upper endpoint)
	edge mesh.EdgeID

	// the winding number of the region
	winding int

	// is the region interior under the fill rule?
	inside bool

	// is this one of the two bounds sentinels?
	bounds bool

	// does the edge need fixing? A temporary edge added by
	// connectBottomEvent carries zero winding and is replaced by a real
	// edge, or removed, before the sweep finishes with it.
	fixedge bool

	// is the region ordering dirty? walkDirtyRegions re-checks it.
	dirty bool

	prev, next *activeRegion
}

// regionLeq reports whether l's edge crosses the current sweep line at
// or left of r's edge. Both edges go up. The comparison is exact for
// edges sharing an endpoint and otherwise tests the higher edge's free
// endpoint against the other edge's line, so geometrically-equal
// configurations compare equal instead of flapping.
func (s *sweeper) regionLeq(l, r *activeRegion) bool {
	m := s.m
	lOrg, lDst := m.Pos(m.Org(l.edge)), m.Pos(m.Dst(l.edge))
	rOrg, rDst := m.Pos(m.Org(r.edge)), m.Pos(m.Dst(r.edge))

	if m.Dst(l.edge) == m.Dst(r.edge) {
		if m.Org(l.edge) == m.Org(r.edge) {
			return true
		}
		if sweepLeq(lOrg, rOrg) {
			// l's origin is the higher of the two free endpoints
			return edgeSign(rDst, lOrg, rOrg) <= 0
		}
		return edgeSign(lDst, rOrg, lOrg) >= 0
	}
	if sweepLeq(lDst, rDst) {
		return edgeSign(lDst, rDst, lOrg) >= 0
	}
	return edgeSign(rDst, lDst, rOrg) <= 0
}

// insertRegionLeftOf inserts a new region for edge e into the list,
// searching leftward from the known right neighbor for the correct
// sorted position.
func (s *sweeper) insertRegionLeftOf(right *activeRegion, e mesh.EdgeID) *activeRegion {
	reg := &activeRegion{edge: e}
	cur := right.prev
	for cur != s.head && !s.regionLeq(cur, reg) {
		cur = cur.prev
	}
	reg.prev, reg.next = cur, cur.next
	cur.next.prev = reg
	cur.next = reg
	s.regionOf[e] = reg
	return reg
}

// locateRegion returns the leftmost region whose edge is at or right of
// e at the current sweep position. The bounds sentinels guarantee a hit.
func (s *sweeper) locateRegion(e mesh.EdgeID) *activeRegion {
	probe := &activeRegion{edge: e}
	cur := s.head.next
	for cur != s.tail && !s.regionLeq(probe, cur) {
		cur = cur.next
	}
	return cur
}

// deleteRegion unlinks reg from the list and forgets its edge mapping.
func (s *sweeper) deleteRegion(reg *activeRegion) {
	if reg.fixedge && s.m.EdgeWinding(reg.edge) != 0 {
		s.tess.logger().Debug("removing fixable region with nonzero winding",
			"edge", reg.edge, "winding", s.m.EdgeWinding(reg.edge))
	}
	delete(s.regionOf, reg.edge)
	reg.prev.next = reg.next
	reg.next.prev = reg.prev
}

// fixRegionEdge replaces a temporary fixable edge with a real one: the
// old edge is deleted from the mesh and the region re-keyed.
func (s *sweeper) fixRegionEdge(reg *activeRegion, e mesh.EdgeID) {
	delete(s.regionOf, reg.edge)
	s.m.DeleteEdge(reg.edge)
	reg.fixedge = false
	reg.edge = e
	s.regionOf[e] = reg
}

// computeWinding derives reg's winding from its right neighbor by
// crossing reg's own edge, and applies the fill rule.
func (s *sweeper) computeWinding(reg *activeRegion) {
	reg.winding = reg.next.winding + s.m.EdgeWinding(reg.edge)
	reg.inside = s.rule.inside(reg.winding)
}

// finishRegion transfers the region's inside flag onto the mesh face it
// has been sweeping out and retires the region.
func (s *sweeper) finishRegion(reg *activeRegion) {
	e := reg.edge
	f := s.m.Lface(e)
	s.m.SetInside(f, reg.inside)
	s.m.SetWinding(f, reg.winding)
	s.m.SetFaceEdge(f, e)
	s.deleteRegion(reg)
}

// regionPastOrg returns the first region right of reg whose edge does
// not share reg's edge's origin, replacing a temporary edge there if one
// is due for fixing.
func (s *sweeper) regionPastOrg(reg *activeRegion) *activeRegion {
	org := s.m.Org(reg.edge)
	for {
		reg = reg.next
		if s.m.Org(reg.edge) != org {
			break
		}
	}
	if reg.fixedge {
		e := s.m.Connect(s.m.Sym(reg.prev.edge), s.m.Lnext(reg.edge))
		s.fixRegionEdge(reg, e)
		reg = reg.next
	}
	return reg
}

// regionPastDst returns the first region right of reg whose edge does
// not share reg's edge's destination.
func (s *sweeper) regionPastDst(reg *activeRegion) *activeRegion {
	dst := s.m.Dst(reg.edge)
	for {
		reg = reg.next
		if s.m.Dst(reg.edge) != dst {
			break
		}
	}
	return reg
}

// addBounds inserts one bounds sentinel: a vertical edge at x spanning
// the input's full height, carrying zero winding.
func (s *sweeper) addBounds(x, yLo, yHi scalar.S) {
	e := s.m.AddEdge(geom.Pt(x, yLo), geom.Pt(x, yHi))
	reg := &activeRegion{edge: e, bounds: true}
	// append in list order; the two sentinels are inserted left to right
	reg.prev, reg.next = s.tail.prev, s.tail
	s.tail.prev.next = reg
	s.tail.prev = reg
	s.regionOf[e] = reg
}
