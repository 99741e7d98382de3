// SPDX-License-Identifier: MIT
// Package: eulerpath/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - BuildGraph(bopts, cons...) creates an empty graph, resolves cfg and runs cons in order.
//   - Build(g, bopts, cons...) does the same on an existing graph.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulerpath/multigraph"
)

// Constructor appends a deterministic topology to g using the resolved
// builderConfig. Constructors validate parameters before adding anything
// and return sentinel errors; they never panic.
type Constructor func(g *multigraph.Graph, cfg builderConfig) error

// BuildGraph creates a new empty graph, resolves bopts and applies all
// constructors in order. Any constructor error is wrapped with
// "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) + Σ cost of constructors.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*multigraph.Graph, error) {
	g, err := multigraph.New(0)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	if err = apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Build applies constructors to an existing graph, appending their vertices
// after the current ones.
func Build(g *multigraph.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Build: nil graph: %w", ErrConstructFailed)
	}
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("Build: %w", err)
	}

	return nil
}

func apply(g *multigraph.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// addVertices appends n vertices and returns the index of the first one.
func addVertices(g *multigraph.Graph, n int) int {
	base := g.VertexCount()
	for i := 0; i < n; i++ {
		g.AddVertex()
	}

	return base
}

// addEdge wraps AddEdgePair with constructor context.
func addEdge(g *multigraph.Graph, method string, u, v int) error {
	if _, err := g.AddEdgePair(u, v); err != nil {
		return fmt.Errorf("%s: AddEdgePair(%d,%d): %w", method, u, v, err)
	}

	return nil
}
