// SPDX-License-Identifier: MIT
// Package: eulerpath/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices), since the rim C_{n-1} needs ≥ 3 vertices.
//   • Rim vertices base..base+n-2, hub base+n-1.
//   • Rim edges first (as Cycle), then spokes hub -> rim in ascending order.
//
// Complexity: O(n) vertices + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulerpath/multigraph"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *multigraph.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		base := g.VertexCount()
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		hub := g.AddVertex()
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodWheel, hub, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
