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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/vecgeom/geom"
	"seehuhn.de/go/vecgeom/polygon"
	"seehuhn.de/go/vecgeom/scalar"
)

func pieceArea(pts []geom.Point) float64 {
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		sum += float64(a.X)*float64(b.Y) - float64(b.X)*float64(a.Y)
	}
	return math.Abs(sum) / 2
}

func totalArea(t *testing.T, poly polygon.Polygon, rule FillRule, mode Mode) float64 {
	t.Helper()
	var total float64
	tess := New()
	ok := tess.Done(poly, rule, mode, func(pts []geom.Point) {
		total += pieceArea(pts)
	})
	require.True(t, ok)
	tess.Mesh().Check()
	return total
}

func TestTriangulateSquare(t *testing.T) {
	square := polygon.Polygon{
		Points: []geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		Counts: []int{4, 0},
	}

	var pieces [][]geom.Point
	tess := New()
	ok := tess.Done(square, NonZero, ModeTriangulate, func(pts []geom.Point) {
		pieces = append(pieces, pts)
	})
	require.True(t, ok)

	var total float64
	for _, pts := range pieces {
		assert.Len(t, pts, 3)
		total += pieceArea(pts)
	}
	assert.InDelta(t, 100.0, total, 1e-2)
}

func TestConvexPartitionAreaConservation(t *testing.T) {
	rect := polygon.Polygon{
		Points: []geom.Point{{0, 0}, {20, 0}, {20, 10}, {0, 10}},
		Counts: []int{4, 0},
	}
	assert.InDelta(t, 200.0, totalArea(t, rect, Odd, ModeConvexPartition), 1e-2)
}

func TestMonotoneAreaConservation(t *testing.T) {
	square := polygon.Polygon{
		Points: []geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		Counts: []int{4, 0},
	}
	assert.InDelta(t, 100.0, totalArea(t, square, NonZero, ModeMonotone), 1e-2)
}

// TestBowtie feeds the self-crossing quadrilateral through the sweep:
// the crossing must be found and split, leaving the two 25-unit lobes on
// each side of the intersection point, 50 in total under either rule.
func TestBowtie(t *testing.T) {
	bowtie := polygon.Polygon{
		Points: []geom.Point{{0, 0}, {10, 10}, {10, 0}, {0, 10}},
		Counts: []int{4, 0},
	}
	assert.InDelta(t, 50.0, totalArea(t, bowtie, Odd, ModeTriangulate), 0.5)
	assert.InDelta(t, 50.0, totalArea(t, bowtie, NonZero, ModeTriangulate), 0.5)
}

// TestFillRulesDiffer overlaps two same-direction triangles so the
// overlap band has winding number two: interior under non-zero, excluded
// under odd.
func TestFillRulesDiffer(t *testing.T) {
	triangleA := []geom.Point{{0, 0}, {20, 0}, {10, 20}}
	triangleB := []geom.Point{{0, 10}, {20, 10}, {10, 30}}
	both := polygon.Polygon{
		Points: append(append([]geom.Point{}, triangleA...), triangleB...),
		Counts: []int{3, 3, 0},
	}

	oddTotal := totalArea(t, both, Odd, ModeConvexPartition)
	nonZeroTotal := totalArea(t, both, NonZero, ModeConvexPartition)

	assert.Greater(t, oddTotal, 0.0)
	assert.Greater(t, nonZeroTotal, oddTotal)
}

// TestRectWithHole cuts an opposite-wound inner rectangle out of an
// outer one; under the non-zero rule only the frame between them is
// filled.
func TestRectWithHole(t *testing.T) {
	outer := []geom.Point{{0, 0}, {20, 0}, {20, 20}, {0, 20}}
	inner := []geom.Point{{5, 5}, {5, 15}, {15, 15}, {15, 5}} // reversed
	ring := polygon.Polygon{
		Points: append(append([]geom.Point{}, outer...), inner...),
		Counts: []int{4, 4, 0},
	}
	assert.InDelta(t, 300.0, totalArea(t, ring, NonZero, ModeTriangulate), 1e-1)
	assert.InDelta(t, 300.0, totalArea(t, ring, Odd, ModeTriangulate), 1e-1)
}

// TestPentagram checks the classical fill-rule difference: the odd rule
// leaves the central pentagon of a five-pointed star empty, the
// non-zero rule fills it.
func TestPentagram(t *testing.T) {
	var pts []geom.Point
	for k := 0; k < 5; k++ {
		// connect every second vertex of a regular pentagon
		angle := scalar.DegToRad(scalar.S(90 + 144*k))
		pts = append(pts, geom.Pt(10*scalar.Cos(angle), 10*scalar.Sin(angle)))
	}
	star := polygon.Polygon{Points: pts, Counts: []int{5, 0}}

	oddTotal := totalArea(t, star, Odd, ModeTriangulate)
	nonZeroTotal := totalArea(t, star, NonZero, ModeTriangulate)

	assert.Greater(t, oddTotal, 0.0)
	assert.Greater(t, nonZeroTotal, oddTotal)
}

func TestConvexPartitionPiecesAreConvex(t *testing.T) {
	poly := polygon.Polygon{
		// a concave L shape
		Points: []geom.Point{{0, 0}, {20, 0}, {20, 10}, {10, 10}, {10, 20}, {0, 20}},
		Counts: []int{6, 0},
	}

	tess := New()
	ok := tess.Done(poly, NonZero, ModeConvexPartition, func(pts []geom.Point) {
		assert.LessOrEqual(t, len(pts), maxConvexPieceVerts)
		n := len(pts)
		pos, neg := 0, 0
		for i := 0; i < n; i++ {
			a, b, c := pts[i], pts[(i+1)%n], pts[(i+2)%n]
			cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
			switch {
			case cross > scalar.Near0:
				pos++
			case cross < -scalar.Near0:
				neg++
			}
		}
		assert.False(t, pos > 0 && neg > 0, "piece %v is not convex", pts)
	})
	require.True(t, ok)
}

func TestNoOutputForEmptyPolygon(t *testing.T) {
	var count int
	ok := New().Done(polygon.Polygon{}, NonZero, ModeConvexPartition, func(pts []geom.Point) {
		count++
	})
	assert.True(t, ok)
	assert.Equal(t, 0, count)
}

func TestNaNInputRejected(t *testing.T) {
	bad := polygon.Polygon{
		Points: []geom.Point{{0, 0}, {scalar.S(math.NaN()), 0}, {10, 10}},
		Counts: []int{3, 0},
	}
	var count int
	ok := New().Done(bad, NonZero, ModeTriangulate, func(pts []geom.Point) {
		count++
	})
	assert.False(t, ok)
	assert.Equal(t, 0, count)
}

func TestMeshRecordsInteriorFaces(t *testing.T) {
	square := polygon.Polygon{
		Points: []geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		Counts: []int{4, 0},
	}
	tess := New()
	ok := tess.Done(square, NonZero, ModeConvexPartition, func(pts []geom.Point) {})
	require.True(t, ok)

	m := tess.Mesh()
	require.NotNil(t, m)
	inside := 0
	for _, f := range m.Faces() {
		if m.Inside(f) {
			inside++
		}
	}
	assert.Greater(t, inside, 0)
}
