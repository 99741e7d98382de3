package eulerian

import (
	"fmt"

	"github.com/katalvlaran/eulerpath/multigraph"
)

// Verify checks that vertices is an Eulerian walk over edges: its length is
// len(edges)+1, consecutive vertices are joined by a not-yet-used edge, every
// edge is used exactly once, and the walk is closed (first == last) when
// closed is true or open with distinct endpoints otherwise.
//
// An empty edge list accepts only walks of at most one vertex.
// Errors: ErrInvalidWalk wrapped with the first violation found.
// Complexity: O(E) time, O(E) memory.
func Verify(edges []multigraph.Pair, vertices []int, closed bool) error {
	if len(edges) == 0 {
		if len(vertices) > 1 {
			return fmt.Errorf("Verify: %d vertices for 0 edges: %w", len(vertices), ErrInvalidWalk)
		}

		return nil
	}
	if len(vertices) != len(edges)+1 {
		return fmt.Errorf("Verify: %d vertices for %d edges: %w", len(vertices), len(edges), ErrInvalidWalk)
	}

	first, last := vertices[0], vertices[len(vertices)-1]
	if closed && first != last {
		return fmt.Errorf("Verify: cycle starts at %d but ends at %d: %w", first, last, ErrInvalidWalk)
	}
	if !closed && first == last {
		return fmt.Errorf("Verify: path starts and ends at %d: %w", first, ErrInvalidWalk)
	}

	// Multiset of unused undirected edges keyed by (min, max).
	remaining := make(map[[2]int]int, len(edges))
	for _, e := range edges {
		remaining[edgeKey(e.U, e.V)]++
	}

	for i := 0; i+1 < len(vertices); i++ {
		k := edgeKey(vertices[i], vertices[i+1])
		if remaining[k] == 0 {
			return fmt.Errorf("Verify: step %d uses %d-%d which is absent or already used: %w",
				i, vertices[i], vertices[i+1], ErrInvalidWalk)
		}
		remaining[k]--
	}

	// Length matches and every step consumed one edge, so nothing is left.
	return nil
}

func edgeKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
