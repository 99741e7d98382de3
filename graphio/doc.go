// Package graphio reads and writes the plain edge-list format consumed by
// the eulerpath command.
//
// # Format
//
// The first line holds the vertex count n. Every following line holds one
// undirected edge as two vertex indices in [0, n) separated by whitespace:
//
//	4
//	0 1
//	1 2
//	2 3
//	3 0
//
// Blank lines are skipped. Reading stops without error at the first line
// that is not exactly two integers, so trailing notes after the edge list are
// ignored. Parallel edges and self-loops are kept as written.
//
// # Errors
//
// A missing, malformed or oversized (above math.MaxInt32) header yields
// [ErrFormat]; an edge naming a vertex outside [0, n) yields
// [ErrVertexOutOfRange]. Both are wrapped with the offending line number,
// so check them with errors.Is.
//
// # Writing
//
// [Write] emits the same format in insertion order, so Read(Write(g))
// reproduces g's vertex count and edge sequence.
package graphio
