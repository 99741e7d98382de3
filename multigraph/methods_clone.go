// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy of a graph, used to keep an untouched input next to the
// copy the Eulerian engine consumes.

package multigraph

// Clone returns a deep copy of g. EdgeIDs remain valid on the clone
// and refer to the same logical edges.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		vertices: make([]vertex, len(g.vertices)),
		edges:    make([]edge, len(g.edges)),
		live:     g.live,
	}
	copy(clone.vertices, g.vertices)
	copy(clone.edges, g.edges)

	return clone
}
