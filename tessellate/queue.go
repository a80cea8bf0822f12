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

// eventQueue is a binary heap of mesh vertices in sweep order. An index
// map allows removing a vertex from the middle of the heap, which the
// sweep needs when two queued vertices merge.
type eventQueue struct {
	m     *mesh.Mesh
	heap  []mesh.VertexID
	index map[mesh.VertexID]int
}

func newEventQueue(m *mesh.Mesh) *eventQueue {
	return &eventQueue{m: m, index: make(map[mesh.VertexID]int)}
}

func (q *eventQueue) less(i, j int) bool {
	return sweepLess(q.m.Pos(q.heap[i]), q.m.Pos(q.heap[j]))
}

func (q *eventQueue) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.index[q.heap[i]] = i
	q.index[q.heap[j]] = j
}

func (q *eventQueue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *eventQueue) siftDown(i int) {
	n := len(q.heap)
	for {
		child := 2*i + 1
		if child >= n {
			break
		}
		if child+1 < n && q.less(child+1, child) {
			child++
		}
		if !q.less(child, i) {
			break
		}
		q.swap(i, child)
		i = child
	}
}

func (q *eventQueue) push(v mesh.VertexID) {
	q.heap = append(q.heap, v)
	q.index[v] = len(q.heap) - 1
	q.siftUp(len(q.heap) - 1)
}

func (q *eventQueue) peek() (mesh.VertexID, bool) {
	if len(q.heap) == 0 {
		return 0, false
	}
	return q.heap[0], true
}

func (q *eventQueue) pop() (mesh.VertexID, bool) {
	if len(q.heap) == 0 {
		return 0, false
	}
	v := q.heap[0]
	q.removeAt(0)
	return v, true
}

// remove deletes v from the queue if it is still queued. Harmless when v
// has already been popped.
func (q *eventQueue) remove(v mesh.VertexID) {
	if i, ok := q.index[v]; ok {
		q.removeAt(i)
	}
}

func (q *eventQueue) removeAt(i int) {
	last := len(q.heap) - 1
	v := q.heap[i]
	if i != last {
		q.heap[i] = q.heap[last]
		q.index[q.heap[i]] = i
	}
	q.heap = q.heap[:last]
	delete(q.index, v)
	if i < last {
		q.siftDown(i)
		q.siftUp(i)
	}
}
