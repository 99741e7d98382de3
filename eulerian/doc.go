// Package eulerian finds Eulerian cycles and paths on a multigraph.Graph
// using Hierholzer's sub-circuit extraction and splice-merge procedure.
//
// What:
//
//   - Classify: one pass over all vertices producing a Classification:
//     NoOdd (cycle candidate), TwoOdd (path candidate with both endpoints),
//     MoreThanTwoOdd (impossible) or AllZeroDegree (nothing to traverse).
//   - ReduceToCycle: for TwoOdd graphs, adds one synthetic vertex joined to
//     both odd endpoints so that every degree becomes even.
//   - FindCircuit: seeds a sub-circuit at the max-degree vertex, then scans
//     the growing walk and splices a new sub-circuit in place of every element
//     whose vertex still has edges. Leftover edges after the scan mean the
//     graph is disconnected; no walk is returned in that case.
//   - CycleVertices / PathVertices: turn the closed walk into output order,
//     rotating around (and dropping) the synthetic vertex for paths.
//   - Verify: checks a vertex sequence against an edge list.
//   - Solve: classify → reduce → engine → format in one call.
//
// Heuristics:
//
//   - The first sub-circuit starts at the vertex of maximum degree.
//   - While extracting, the walker takes the head edge of the current vertex,
//     except when that edge leads back to the start vertex and another edge
//     is available; then it takes the next one (WithDeferStart, default on).
//     Both choices yield valid circuits.
//
// Complexity:
//
//   - Classify:      Time O(V), Memory O(1)
//   - FindCircuit:   Time O(V + E) amortized, Memory O(E) for the walk
//   - PathVertices:  Time O(E)
//   - Verify:        Time O(E), Memory O(E)
//
// Errors:
//
//   - ErrGraphNil            graph pointer is nil
//   - ErrNoCandidate         FindCircuit called with MoreThanTwoOdd/AllZeroDegree
//   - ErrStaleClassification classification does not describe the graph
//   - ErrSyntheticNotFound   synthetic vertex missing from the walk
//   - ErrInvalidWalk         Verify rejected the sequence
//
// Non-existence (too many odd vertices, no edges, disconnected graph) is a
// normal outcome and is reported through values, never through errors.
// Graph mutation is in place: FindCircuit and Solve consume the graph's edges.
package eulerian
