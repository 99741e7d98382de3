// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Paired edge lifecycle and per-vertex edge list navigation.
// Policy:
//   - Edges are always created and destroyed in pairs (id, id^1).
//   - Removal never searches the target's list; the pair index is used instead.

package multigraph

import "fmt"

// AddEdgePair creates the edge v1→v2 and its pair v2→v1, appending each to
// the tail of its source vertex list. Parallel edges and self-loops are
// permitted and tracked as separate edges.
//
// Returns the EdgeID of v1→v2; its pair is id^1.
// Errors: ErrVertexOutOfRange if either index is invalid.
// Complexity: O(1) amortized.
func (g *Graph) AddEdgePair(v1, v2 int) (EdgeID, error) {
	if !g.inRange(v1) || !g.inRange(v2) {
		return NoEdge, fmt.Errorf("AddEdgePair(%d,%d) with %d vertices: %w",
			v1, v2, len(g.vertices), ErrVertexOutOfRange)
	}

	// Allocate both directions in one step so that pair(id) == id^1.
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges,
		edge{to: v2, prev: NoEdge, next: NoEdge, live: true},
		edge{to: v1, prev: NoEdge, next: NoEdge, live: true},
	)

	g.linkTail(v1, id)
	g.linkTail(v2, id^1)
	g.live++

	return id, nil
}

// RemoveEdgePair removes the first edge in v1's list that targets v2,
// together with its pair at v2. The scan always starts at the head of the
// list. Returns false if no such edge exists or an index is invalid.
// Complexity: O(deg(v1)) scan, O(1) removal.
func (g *Graph) RemoveEdgePair(v1, v2 int) bool {
	if !g.inRange(v1) || !g.inRange(v2) {
		return false
	}

	for id := g.vertices[v1].head; id != NoEdge; id = g.edges[id].next {
		if g.edges[id].to == v2 {
			g.removePair(id)

			return true
		}
	}

	return false
}

// RemoveEdge removes the live edge id and its pair in O(1).
// Errors: ErrEdgeNotFound if id is not live.
func (g *Graph) RemoveEdge(id EdgeID) error {
	if !g.isLive(id) {
		return fmt.Errorf("RemoveEdge(%d): %w", id, ErrEdgeNotFound)
	}
	g.removePair(id)

	return nil
}

// FirstEdge returns the head of v's edge list.
func (g *Graph) FirstEdge(v int) (EdgeID, bool) {
	if !g.inRange(v) || g.vertices[v].head == NoEdge {
		return NoEdge, false
	}

	return g.vertices[v].head, true
}

// NextEdge returns the edge following id in its source vertex list.
func (g *Graph) NextEdge(id EdgeID) (EdgeID, bool) {
	if !g.isLive(id) || g.edges[id].next == NoEdge {
		return NoEdge, false
	}

	return g.edges[id].next, true
}

// Target returns the vertex that id points to, or -1 if id is not live.
func (g *Graph) Target(id EdgeID) int {
	if !g.isLive(id) {
		return -1
	}

	return g.edges[id].to
}

// Source returns the vertex whose list holds id, or -1 if id is not live.
func (g *Graph) Source(id EdgeID) int {
	if !g.isLive(id) {
		return -1
	}

	return g.edges[id^1].to
}

// PairOf returns the reverse-direction edge of id.
func (g *Graph) PairOf(id EdgeID) EdgeID {
	return id ^ 1
}

// Edges returns every live undirected edge once, in insertion order,
// oriented as it was passed to AddEdgePair.
// Complexity: O(E) over the arena.
func (g *Graph) Edges() []Pair {
	out := make([]Pair, 0, g.live)
	for id := 0; id+1 < len(g.edges); id += 2 {
		if g.edges[id].live {
			out = append(out, Pair{U: g.edges[id+1].to, V: g.edges[id].to})
		}
	}

	return out
}

// removePair unlinks id and id^1 from their source lists and marks both dead.
// The caller guarantees id is live.
func (g *Graph) removePair(id EdgeID) {
	g.unlink(g.edges[id^1].to, id)
	g.unlink(g.edges[id].to, id^1)
	g.live--
}

// linkTail appends id to the tail of v's edge list.
func (g *Graph) linkTail(v int, id EdgeID) {
	vx := &g.vertices[v]
	g.edges[id].prev = vx.tail
	if vx.tail != NoEdge {
		g.edges[vx.tail].next = id
	} else {
		vx.head = id
	}
	vx.tail = id
	vx.degree++
}

// unlink detaches id from v's edge list and marks it dead.
func (g *Graph) unlink(v int, id EdgeID) {
	vx := &g.vertices[v]
	e := &g.edges[id]

	if e.prev != NoEdge {
		g.edges[e.prev].next = e.next
	} else {
		vx.head = e.next
	}
	if e.next != NoEdge {
		g.edges[e.next].prev = e.prev
	} else {
		vx.tail = e.prev
	}

	e.prev, e.next, e.live = NoEdge, NoEdge, false
	vx.degree--
}
