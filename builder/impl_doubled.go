// SPDX-License-Identifier: MIT
// Package: eulerpath/builder
//
// impl_doubled.go - Doubled(con): run con, then emit each of its edges again.
//
// Every vertex touched by con ends with even degree, so the result always
// passes the parity test for an Eulerian cycle (tree doubling).

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulerpath/multigraph"
)

const methodDoubled = "Doubled"

// Doubled returns a Constructor that applies con and then adds a parallel
// copy of every edge con created, in the same order.
func Doubled(con Constructor) Constructor {
	return func(g *multigraph.Graph, cfg builderConfig) error {
		if con == nil {
			return fmt.Errorf("%s: nil constructor: %w", methodDoubled, ErrConstructFailed)
		}

		before := g.EdgeCount()
		if err := con(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodDoubled, err)
		}

		// Edges() lists live edges in insertion order, so con's edges are the tail.
		for _, e := range g.Edges()[before:] {
			if err := addEdge(g, methodDoubled, e.U, e.V); err != nil {
				return err
			}
		}

		return nil
	}
}
