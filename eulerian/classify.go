package eulerian

import (
	"fmt"

	"github.com/katalvlaran/eulerpath/multigraph"
)

// Classify inspects every vertex degree once and reports the parity class of g.
//
// Rules:
//   - A third odd-degree vertex ends the scan with MoreThanTwoOdd.
//   - The max-degree vertex is the first (lowest index) to reach the maximum.
//   - A maximum degree of 0 yields AllZeroDegree, which takes precedence over NoOdd.
//
// Classify does not mutate g; calling it twice on an untouched graph returns
// equal values. Complexity: O(V).
func Classify(g *multigraph.Graph) (Classification, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var (
		odd       int    // odd-degree vertices seen so far
		endpoints [2]int // first two odd-degree vertices
		maxDegree int    // best degree seen so far
		maxVertex = -1   // vertex holding maxDegree
	)

	for v := 0; v < g.VertexCount(); v++ {
		d := g.Degree(v)

		if d%2 != 0 {
			odd++
			if odd > len(endpoints) {
				// 1) Third odd vertex: no walk can exist, stop early.
				return MoreThanTwoOdd{}, nil
			}
			endpoints[odd-1] = v
		}

		// 2) Strictly greater keeps the lowest index on ties.
		if d > maxDegree {
			maxDegree, maxVertex = d, v
		}
	}

	// 3) Nothing to traverse is reported ahead of the parity outcome.
	if maxDegree == 0 {
		return AllZeroDegree{}, nil
	}

	switch odd {
	case 0:
		return NoOdd{MaxDegreeVertex: maxVertex}, nil
	case 2:
		return TwoOdd{MaxDegreeVertex: maxVertex, Endpoints: endpoints}, nil
	default:
		// The sum of degrees is even, so a single odd vertex is impossible.
		panic(fmt.Sprintf("eulerian: invariant: %d odd-degree vertices", odd))
	}
}
