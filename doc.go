// Package eulerpath finds Eulerian cycles and paths in undirected multigraphs
// with Hierholzer's algorithm.
//
// What is inside?
//
//	multigraph/ - dense-index vertices with paired, intrusively linked edges
//	walk/       - doubly linked vertex sequence with ownership-moving Splice
//	eulerian/   - parity classification, reduction, engine, formatting, Solve
//	graphio/    - plain edge-list reader and writer
//	builder/    - deterministic topology generators (cycles, grids, K_n, ...)
//	cmd/eulerpath - command-line front end (solve, classify, generate)
//
// Quick start:
//
//	g, _ := multigraph.New(3)
//	g.AddEdgePair(0, 1)
//	g.AddEdgePair(1, 2)
//	sol, _ := eulerian.Solve(g)
//	fmt.Println(sol.Outcome, eulerian.Format(sol.Vertices)) // path 2 1 0
//
// A graph has an Eulerian cycle when every degree is even and all edges lie
// in one component; with exactly two odd vertices it has an Eulerian path
// between them. Solve reports which case applies, and why when neither does.
package eulerpath
