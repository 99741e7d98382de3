// SPDX-License-Identifier: MIT
// Package: eulerpath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulerpath/multigraph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *multigraph.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		base := addVertices(g, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodPath, base+i-1, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
