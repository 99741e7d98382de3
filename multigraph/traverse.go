// SPDX-License-Identifier: MIT
//
// File: traverse.go
// Role: Breadth-first reachability over live edges, for connectivity diagnostics.

package multigraph

// Reachable returns, for every vertex, whether it can be reached from start
// over live edges. start itself is always reachable; an out-of-range start
// yields an all-false slice.
// Complexity: O(V + E).
func (g *Graph) Reachable(start int) []bool {
	seen := make([]bool, len(g.vertices))
	if g.inRange(start) {
		g.markFrom(start, seen, make([]int, 0, len(g.vertices)))
	}

	return seen
}

// Components counts connected components that contain at least one live edge.
// Isolated vertices are not counted.
// Complexity: O(V + E).
func (g *Graph) Components() int {
	seen := make([]bool, len(g.vertices))
	queue := make([]int, 0, len(g.vertices))
	count := 0

	for v := range g.vertices {
		if seen[v] || g.vertices[v].degree == 0 {
			continue
		}
		count++
		queue = g.markFrom(v, seen, queue[:0])
	}

	return count
}

// markFrom runs BFS from start, setting seen[] for every vertex it reaches.
// queue is scratch space; the (possibly grown) buffer is returned for reuse.
func (g *Graph) markFrom(start int, seen []bool, queue []int) []int {
	queue = append(queue, start)
	seen[start] = true

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for id := g.vertices[u].head; id != NoEdge; id = g.edges[id].next {
			if v := g.edges[id].to; !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return queue
}
