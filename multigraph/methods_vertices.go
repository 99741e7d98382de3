// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and degree queries.

package multigraph

// AddVertex appends one isolated vertex and returns its index,
// which is always VertexCount()-1 after the call.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.vertices = append(g.vertices, vertex{head: NoEdge, tail: NoEdge})

	return len(g.vertices) - 1
}

// Degree returns the number of live edges at v, or 0 if v is out of range.
func (g *Graph) Degree(v int) int {
	if !g.inRange(v) {
		return 0
	}

	return g.vertices[v].degree
}

// HasEdges reports whether v has at least one live edge.
func (g *Graph) HasEdges(v int) bool {
	return g.Degree(v) > 0
}

// HasAnyEdges reports whether any vertex still has a live edge.
// Complexity: O(V).
func (g *Graph) HasAnyEdges() bool {
	for i := range g.vertices {
		if g.vertices[i].degree > 0 {
			return true
		}
	}

	return false
}

// Neighbors returns the targets of v's edges in list order. Parallel edges
// repeat, a self-loop contributes v twice. Out-of-range v yields nil.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) []int {
	if !g.inRange(v) {
		return nil
	}

	out := make([]int, 0, g.vertices[v].degree)
	for id := g.vertices[v].head; id != NoEdge; id = g.edges[id].next {
		out = append(out, g.edges[id].to)
	}

	return out
}
