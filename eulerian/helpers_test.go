package eulerian_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eulerpath/builder"
	"github.com/katalvlaran/eulerpath/multigraph"
)

// mustGraph builds an n-vertex graph with the given edge pairs.
func mustGraph(t *testing.T, n int, pairs ...[2]int) *multigraph.Graph {
	t.Helper()

	g, err := multigraph.New(n)
	require.NoError(t, err)
	for _, p := range pairs {
		_, err = g.AddEdgePair(p[0], p[1])
		require.NoError(t, err)
	}

	return g
}

// mustBuild runs builder constructors with a fixed seed.
func mustBuild(t *testing.T, cons ...builder.Constructor) *multigraph.Graph {
	t.Helper()

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, cons...)
	require.NoError(t, err)

	return g
}

// oddVertices lists the odd-degree vertices of g in index order.
func oddVertices(g *multigraph.Graph) []int {
	var out []int
	for v := 0; v < g.VertexCount(); v++ {
		if g.Degree(v)%2 != 0 {
			out = append(out, v)
		}
	}

	return out
}

// squareWithEars is a 4-cycle with a triangle hanging off vertices 1 and 3.
// Seeded at vertex 1, the engine needs one extra sub-circuit at vertex 3.
func squareWithEars(t *testing.T) *multigraph.Graph {
	return mustGraph(t, 8,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0},
		[2]int{1, 4}, [2]int{4, 5}, [2]int{5, 1},
		[2]int{3, 6}, [2]int{6, 7}, [2]int{7, 3},
	)
}
