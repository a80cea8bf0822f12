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

// Package tessellate converts a possibly self-intersecting
// [polygon.Polygon] into non-overlapping pieces: convex pieces, triangles,
// or y-monotone faces, as selected by [Mode].
//
// The input contours are loaded into a quad-edge [mesh.Mesh] and a sweep
// line moves over the vertices top to bottom. An ordered list of active
// regions tracks the edges crossing the sweep line; edge crossings are
// split where they are discovered and become new sweep events, so the
// final mesh is a planar subdivision. Each face's winding number is
// accumulated across the active regions and the chosen fill rule decides
// which faces are interior. The interior faces, which the sweep leaves
// monotone, are then triangulated or merged into convex pieces as
// requested.
package tessellate

import (
	"log/slog"
	"math"

	"seehuhn.de/go/vecgeom/geom"
	"seehuhn.de/go/vecgeom/mesh"
	"seehuhn.de/go/vecgeom/polygon"
)

// FillRule selects which accumulated winding numbers count as interior.
type FillRule int

const (
	Odd FillRule = iota
	NonZero
)

func (r FillRule) inside(winding int) bool {
	if r == Odd {
		return winding&1 != 0
	}
	return winding != 0
}

// Mode selects the shape of the pieces emitted by [Tessellator.Done].
type Mode int

const (
	// ModeConvexPartition triangulates the interior and then merges
	// neighboring triangles back together while the union stays convex.
	// This is the default.
	ModeConvexPartition Mode = iota
	// ModeMonotone emits the y-monotone faces exactly as the sweep
	// leaves them.
	ModeMonotone
	// ModeTriangulate emits triangles.
	ModeTriangulate
)

// Tessellator runs plane sweeps. The zero value is ready to use; Logger,
// if set, receives diagnostics about degenerate input and numerical
// repairs. A Tessellator owns the scratch state of one sweep at a time
// and must not be shared between goroutines.
type Tessellator struct {
	Logger *slog.Logger

	mesh *mesh.Mesh
}

// New returns a ready-to-use Tessellator.
func New() *Tessellator { return &Tessellator{} }

// logger returns t.Logger, or a handler that discards everything if t.Logger
// is nil, so call sites never need a nil check of their own.
func (t *Tessellator) logger() *slog.Logger {
	if t.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return t.Logger
}

// Done tessellates poly under rule and emits each output piece, in
// mode's shape, to emit. It reports whether the input was acceptable:
// NaN coordinates make it return false without calling emit. Degenerate
// input (too few points, zero-length edges) is not an error and simply
// produces no output.
//
// The mesh built during the sweep remains available from [Mesh] until
// the next Done call; emit must not mutate it.
func (t *Tessellator) Done(poly polygon.Polygon, rule FillRule, mode Mode, emit func([]geom.Point)) bool {
	t.mesh = nil
	for _, p := range poly.Points {
		if math.IsNaN(float64(p.X)) || math.IsNaN(float64(p.Y)) {
			return false
		}
	}

	m := mesh.New()
	m.Logger = t.Logger
	t.mesh = m
	if !addContours(m, poly) {
		return true
	}

	s := newSweeper(t, m, rule)
	s.run(poly.Bounds())

	switch mode {
	case ModeTriangulate:
		tessellateInterior(m)
	case ModeConvexPartition:
		tessellateInterior(m)
		mergeConvexFaces(m, maxConvexPieceVerts)
	case ModeMonotone:
		// the sweep's faces are already monotone
	}

	for _, f := range m.Faces() {
		if !m.FaceAlive(f) || !m.Inside(f) {
			continue
		}
		pts := facePoints(m, f)
		if len(pts) >= 3 {
			emit(pts)
		}
	}
	return true
}

// Mesh returns the planar subdivision built by the most recent Done
// call, with interior faces marked, or nil if Done has not run.
func (t *Tessellator) Mesh() *mesh.Mesh { return t.mesh }

// addContours loads every contour of poly into the mesh as a closed loop
// of edges, recording winding +1 along the input direction and -1
// against it. It reports whether any edge was added.
func addContours(m *mesh.Mesh, poly polygon.Polygon) bool {
	added := false
	for _, contour := range poly.Contours() {
		if len(contour) < 2 {
			continue
		}
		var e mesh.EdgeID
		for _, p := range contour {
			if e == 0 {
				e = m.MakeEdge()
			} else {
				m.SplitEdge(e)
				e = m.Lnext(e)
			}
			m.SetPos(m.Org(e), p)
			m.SetEdgeWinding(e, 1)
			m.SetEdgeWinding(m.Sym(e), -1)
			added = true
		}
	}
	return added
}

// facePoints collects the vertex positions around f's boundary.
func facePoints(m *mesh.Mesh, f mesh.FaceID) []geom.Point {
	var pts []geom.Point
	start := m.FaceEdge(f)
	e := start
	for {
		pts = append(pts, m.Pos(m.Org(e)))
		e = m.Lnext(e)
		if e == start {
			break
		}
	}
	return pts
}
