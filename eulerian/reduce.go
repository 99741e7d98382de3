package eulerian

import (
	"fmt"

	"github.com/katalvlaran/eulerpath/multigraph"
)

// ReduceToCycle adds one synthetic vertex to g and joins it to both odd
// endpoints of c, leaving every degree even. It returns the synthetic
// vertex index, which is g.VertexCount()-1 after the call.
//
// Errors: ErrGraphNil, or ErrStaleClassification if an endpoint is not a
// vertex of g.
func ReduceToCycle(g *multigraph.Graph, c TwoOdd) (int, error) {
	if g == nil {
		return -1, ErrGraphNil
	}
	for _, v := range c.Endpoints {
		if v < 0 || v >= g.VertexCount() {
			return -1, fmt.Errorf("ReduceToCycle: endpoint %d: %w", v, ErrStaleClassification)
		}
	}

	synthetic := g.AddVertex()
	for _, v := range c.Endpoints {
		if _, err := g.AddEdgePair(synthetic, v); err != nil {
			// Both indices were range-checked above.
			panic(fmt.Sprintf("eulerian: invariant: AddEdgePair(%d,%d): %v", synthetic, v, err))
		}
	}

	return synthetic, nil
}
