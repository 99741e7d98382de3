// Package multigraph provides the undirected multigraph store consumed by the
// Eulerian engine: dense integer vertices, each owning an intrusive doubly
// linked list of one-directional edges, with every edge paired to its reverse.
//
// Storage model:
//
//	vertices[v] = {head, tail, degree}          // per-vertex edge list
//	edges[id]   = {to, prev, next, live}        // arena slot
//	pair(id)    = id ^ 1                         // reverse edge, same allocation
//
// Edges are allocated two at a time, so the reverse of edge id is always
// id^1 and the source of id is the target of its pair. Removing an edge
// therefore unlinks both directions in O(1) without searching.
//
// Core Methods:
//
//	New(vertexCount int) (*Graph, error)      // O(V)
//	AddVertex() int                            // O(1) amortized
//	AddEdgePair(v1, v2 int) (EdgeID, error)    // O(1) amortized
//	RemoveEdgePair(v1, v2 int) bool            // O(deg(v1)) scan, O(1) unlink
//	RemoveEdge(id EdgeID) error                // O(1)
//	Degree(v int) int                          // O(1)
//	HasEdges(v int) bool / HasAnyEdges() bool  // O(1) / O(V)
//	FirstEdge / NextEdge / Target / PairOf     // O(1) list navigation
//	Edges() []Pair                             // O(E), insertion order
//	Clone() *Graph                             // O(V+E)
//	Reachable(start int) / Components()        // O(V+E) BFS diagnostics
//
// Semantics:
//
//   - Parallel edges are separate arena slots; self-loops add two entries to
//     the same vertex list (degree += 2), matching the handshake lemma.
//   - Removed slots are never reused, so an EdgeID never aliases a newer edge.
//   - A Graph is owned by a single goroutine. It holds no locks.
//
// Errors:
//
//	ErrNegativeVertexCount - New called with a negative count.
//	ErrVertexOutOfRange    - vertex index outside [0, VertexCount()).
//	ErrEdgeNotFound        - EdgeID does not name a live edge.
package multigraph
