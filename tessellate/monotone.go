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

import "seehuhn.de/go/vecgeom/mesh"

// maxConvexPieceVerts bounds the size of a merged convex piece, keeping
// each emitted polygon comfortably small for downstream consumers.
const maxConvexPieceVerts = 16

// tessellateInterior triangulates every interior face. The faces coming
// out of the sweep are monotone, so each can be triangulated in a single
// boundary walk.
func tessellateInterior(m *mesh.Mesh) {
	for _, f := range m.Faces() {
		if m.FaceAlive(f) && m.Inside(f) {
			tessellateMonoRegion(m, f)
		}
	}
}

// tessellateMonoRegion triangulates one monotone face by walking its two
// boundary chains downward from the top vertex, emitting fans into
// whichever chain lags behind.
func tessellateMonoRegion(m *mesh.Mesh, f mesh.FaceID) {
	// position up at the topmost vertex, with up on the right chain
	up := m.FaceEdge(f)
	for sweepLeq(m.Pos(m.Dst(up)), m.Pos(m.Org(up))) {
		up = m.Lprev(up)
	}
	for sweepLeq(m.Pos(m.Org(up)), m.Pos(m.Dst(up))) {
		up = m.Lnext(up)
	}
	lo := m.Lprev(up)

	for m.Lnext(up) != lo {
		if sweepLeq(m.Pos(m.Dst(up)), m.Pos(m.Org(lo))) {
			// Dst(up) is lower: fan out of lo while doing so keeps the
			// pieces on the correct side
			for m.Lnext(lo) != up &&
				(edgeGoesUp(m, m.Lnext(lo)) ||
					edgeSign(m.Pos(m.Org(lo)), m.Pos(m.Dst(lo)), m.Pos(m.Dst(m.Lnext(lo)))) <= 0) {
				lo = m.Sym(m.Connect(m.Lnext(lo), lo))
			}
			lo = m.Lprev(lo)
		} else {
			for m.Lnext(lo) != up &&
				(edgeGoesDown(m, m.Lprev(up)) ||
					edgeSign(m.Pos(m.Dst(up)), m.Pos(m.Org(up)), m.Pos(m.Org(m.Lprev(up)))) >= 0) {
				up = m.Sym(m.Connect(up, m.Lprev(up)))
			}
			up = m.Lnext(up)
		}
	}

	// fan out whatever remains
	for m.Lnext(lo) != up {
		lo = m.Sym(m.Connect(m.Lnext(lo), lo))
	}
}

// faceVertCount returns the number of vertices around f's boundary.
func faceVertCount(m *mesh.Mesh, e mesh.EdgeID) int {
	n := 0
	start := e
	for {
		n++
		e = m.Lnext(e)
		if e == start {
			break
		}
	}
	return n
}

// mergeConvexFaces greedily deletes edges between neighboring interior
// faces whenever the union stays convex and below the piece size bound.
func mergeConvexFaces(m *mesh.Mesh, maxVerts int) {
	for _, f := range m.Faces() {
		if !m.FaceAlive(f) || !m.Inside(f) {
			continue
		}
		e := m.FaceEdge(f)
		vStart := m.Org(e)
		for {
			eNext := m.Lnext(e)
			eSym := m.Sym(e)
			merged := false

			if nf := m.Lface(eSym); m.FaceAlive(nf) && nf != m.Lface(e) && m.Inside(nf) {
				curNv := faceVertCount(m, e)
				symNv := faceVertCount(m, eSym)
				if curNv+symNv-2 <= maxVerts &&
					ccw(m.Pos(m.Org(m.Lprev(e))), m.Pos(m.Org(e)),
						m.Pos(m.Org(m.Lnext(m.Lnext(eSym))))) &&
					ccw(m.Pos(m.Org(m.Lprev(eSym))), m.Pos(m.Org(eSym)),
						m.Pos(m.Org(m.Lnext(m.Lnext(e))))) {
					eNext = m.Lnext(eSym)
					m.DeleteEdge(eSym)
					merged = true
				}
			}

			if !merged && m.Org(m.Lnext(e)) == vStart {
				break
			}
			e = eNext
		}
	}
}
