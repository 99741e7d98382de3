// Package builder provides deterministic "functional-options"-style
// topology generators for multigraph.Graph. They are used as fixtures by the
// eulerian tests and by the `eulerpath generate` command.
//
// The package offers the following key components:
//
//   - Constructor: a function that appends one topology to an existing graph.
//   - BuildGraph / Build: run constructors in order on a new or existing graph.
//   - BuilderOption: WithSeed, WithRand for stochastic constructors.
//   - Topologies:
//     – Cycle(n):          C_n, every degree 2 (Eulerian cycle).
//     – Path(n):           P_n, endpoints of degree 1 (Eulerian path).
//     – Star(n):           hub plus n-1 leaves.
//     – Wheel(n):          C_{n-1} plus hub.
//     – Complete(n):       K_n (Eulerian iff n is odd).
//     – Grid(r, c):        4-neighbourhood lattice.
//     – RandomSparse(n,p): Erdős–Rényi-like sample (needs an RNG for 0<p<1).
//     – Doubled(con):      every edge of con emitted twice (all degrees even).
//
// Vertex numbering:
//
//	Each constructor appends its vertices after the ones already in the
//	graph (offset = g.VertexCount() at entry), so composing constructors in
//	BuildGraph yields a disjoint union, e.g. two cycles in one graph.
//
// Guarantees:
//
//   - Deterministic: same constructors, options and seed ⇒ identical graphs.
//   - Fast-fail validation with sentinel errors (ErrTooFewVertices, ...).
//   - Option constructors panic on nil arguments; constructors never panic.
package builder
