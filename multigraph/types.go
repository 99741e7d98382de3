// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, vertex and edge arena types, sentinel errors and the constructor.

package multigraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for multigraph operations.
var (
	// ErrNegativeVertexCount indicates New was called with vertexCount < 0.
	ErrNegativeVertexCount = errors.New("multigraph: negative vertex count")

	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("multigraph: vertex out of range")

	// ErrEdgeNotFound indicates an EdgeID that does not name a live edge.
	ErrEdgeNotFound = errors.New("multigraph: edge not found")
)

// EdgeID is a stable index into the edge arena of a Graph.
// The reverse-direction edge of id is always id^1.
type EdgeID int

// NoEdge is returned by navigation methods when no edge exists.
const NoEdge EdgeID = -1

// Pair is an undirected edge {U, V} as reported by Edges.
type Pair struct {
	U int
	V int
}

// String renders the pair as "U-V".
func (p Pair) String() string {
	return fmt.Sprintf("%d-%d", p.U, p.V)
}

// edge is one direction of an undirected edge, linked into the list of its
// source vertex.
type edge struct {
	to   int    // target vertex index
	prev EdgeID // previous edge in the source vertex list, NoEdge at head
	next EdgeID // next edge in the source vertex list, NoEdge at tail
	live bool   // false once removed
}

// vertex owns an intrusive doubly linked list of outgoing edges.
type vertex struct {
	head   EdgeID
	tail   EdgeID
	degree int // live list length, never negative
}

// Graph is an undirected multigraph over dense vertex indices 0..VertexCount()-1.
//
// Invariants:
//   - vertices[v].degree equals the number of live edges in v's list.
//   - edges[id] and edges[id^1] are created and destroyed together.
//   - every live edge targets an index in [0, len(vertices)).
type Graph struct {
	vertices []vertex
	edges    []edge
	live     int // number of live undirected pairs
}

// New creates a Graph with vertexCount isolated vertices.
// Complexity: O(V).
func New(vertexCount int) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("New(%d): %w", vertexCount, ErrNegativeVertexCount)
	}

	g := &Graph{vertices: make([]vertex, vertexCount)}
	for i := range g.vertices {
		g.vertices[i] = vertex{head: NoEdge, tail: NoEdge}
	}

	return g, nil
}

// VertexCount returns the current number of vertices.
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

// EdgeCount returns the number of live undirected edges.
func (g *Graph) EdgeCount() int {
	return g.live
}

// inRange reports whether v is a valid vertex index.
func (g *Graph) inRange(v int) bool {
	return v >= 0 && v < len(g.vertices)
}

// isLive reports whether id names a live arena slot.
func (g *Graph) isLive(id EdgeID) bool {
	return id >= 0 && int(id) < len(g.edges) && g.edges[id].live
}
