package eulerian_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eulerpath/eulerian"
	"github.com/katalvlaran/eulerpath/multigraph"
)

func mustClassify(t *testing.T, g *multigraph.Graph) eulerian.Classification {
	t.Helper()

	c, err := eulerian.Classify(g)
	require.NoError(t, err)

	return c
}

func TestFindCircuit_Square(t *testing.T) {
	g := mustGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})

	res, err := eulerian.FindCircuit(g, mustClassify(t, g))
	require.NoError(t, err)

	require.True(t, res.Exists)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, eulerian.CycleVertices(res.Cycle))
	assert.Equal(t, -1, res.Synthetic)
	assert.Equal(t, 1, res.SubCircuits)
	assert.Zero(t, res.Merges)
	assert.False(t, g.HasAnyEdges(), "every edge is consumed")
}

func TestFindCircuit_MergesAndHooks(t *testing.T) {
	g := squareWithEars(t)

	type extraction struct{ start, length int }
	var (
		subs   []extraction
		merges []int
	)
	res, err := eulerian.FindCircuit(g, mustClassify(t, g),
		eulerian.WithOnSubCircuit(func(start, length int) { subs = append(subs, extraction{start, length}) }),
		eulerian.WithOnMerge(func(v int) { merges = append(merges, v) }),
	)
	require.NoError(t, err)
	require.True(t, res.Exists)

	assert.Equal(t, []int{1, 0, 3, 6, 7, 3, 2, 1, 4, 5, 1}, eulerian.CycleVertices(res.Cycle))
	assert.Equal(t, []extraction{{1, 8}, {3, 4}}, subs)
	assert.Equal(t, []int{3}, merges)
	assert.Equal(t, len(subs), res.SubCircuits)
	assert.Equal(t, len(merges), res.Merges)
}

func TestFindCircuit_TwoOddReduces(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})

	res, err := eulerian.FindCircuit(g, mustClassify(t, g))
	require.NoError(t, err)
	require.True(t, res.Exists)

	assert.Equal(t, 3, res.Synthetic)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, []int{1, 0, 3, 2, 1}, eulerian.CycleVertices(res.Cycle))
}

func TestFindCircuit_Disconnected(t *testing.T) {
	// Two doubled edges: every degree is even, yet two components carry edges.
	g := mustGraph(t, 4, [2]int{0, 1}, [2]int{0, 1}, [2]int{2, 3}, [2]int{2, 3})

	c := mustClassify(t, g)
	require.Equal(t, eulerian.NoOdd{MaxDegreeVertex: 0}, c)

	res, err := eulerian.FindCircuit(g, c)
	require.NoError(t, err)
	assert.False(t, res.Exists)
	assert.Nil(t, res.Cycle)
	assert.True(t, g.HasEdges(2), "the unreached component keeps its edges")
}

func TestFindCircuit_Errors(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})

	tests := []struct {
		name string
		g    *multigraph.Graph
		c    eulerian.Classification
		want error
	}{
		{"nil graph", nil, eulerian.NoOdd{}, eulerian.ErrGraphNil},
		{"nil classification", g, nil, eulerian.ErrStaleClassification},
		{"more than two odd", g, eulerian.MoreThanTwoOdd{}, eulerian.ErrNoCandidate},
		{"all zero degree", g, eulerian.AllZeroDegree{}, eulerian.ErrNoCandidate},
		{"seed out of range", g, eulerian.NoOdd{MaxDegreeVertex: 9}, eulerian.ErrStaleClassification},
		{"two-odd seed out of range", g, eulerian.TwoOdd{MaxDegreeVertex: -1}, eulerian.ErrStaleClassification},
		{"endpoint out of range", g, eulerian.TwoOdd{MaxDegreeVertex: 1, Endpoints: [2]int{0, 7}}, eulerian.ErrStaleClassification},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := eulerian.FindCircuit(tc.g, tc.c)
			require.ErrorIs(t, err, tc.want)
		})
	}

	// None of the rejected calls touched g.
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestExtractSubCircuit_Deferral(t *testing.T) {
	build := func(t *testing.T) *multigraph.Graph {
		return mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 2}, [2]int{2, 1})
	}

	t.Run("deferred", func(t *testing.T) {
		g := build(t)
		sub := eulerian.ExtractSubCircuit(g, 0, true)
		assert.Equal(t, []int{0, 1, 2, 1, 0}, sub.Vertices())
		assert.False(t, g.HasAnyEdges())
	})

	t.Run("first edge", func(t *testing.T) {
		g := build(t)
		sub := eulerian.ExtractSubCircuit(g, 0, false)
		assert.Equal(t, []int{0, 1, 0}, sub.Vertices())
		assert.Equal(t, 2, g.EdgeCount(), "the 1-2 loop is left for a later sub-circuit")
	})
}

func TestExtractSubCircuit_NoEdges(t *testing.T) {
	g := mustGraph(t, 2)
	assert.Equal(t, []int{1}, eulerian.ExtractSubCircuit(g, 1, true).Vertices())
}

func TestExtractSubCircuit_SelfLoop(t *testing.T) {
	g := mustGraph(t, 2, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0})
	sub := eulerian.ExtractSubCircuit(g, 0, true)

	assert.Equal(t, []int{0, 0, 1, 0}, sub.Vertices())
	assert.False(t, g.HasAnyEdges())
}

func TestFindCircuit_DeferralBothValid(t *testing.T) {
	for _, deferStart := range []bool{true, false} {
		g := squareWithEars(t)
		edges := g.Edges()

		res, err := eulerian.FindCircuit(g, mustClassify(t, g), eulerian.WithDeferStart(deferStart))
		require.NoError(t, err)
		require.True(t, res.Exists)
		require.NoError(t, eulerian.Verify(edges, eulerian.CycleVertices(res.Cycle), true))
	}
}

func TestExtractSubCircuit_OddDegreePanics(t *testing.T) {
	g := mustGraph(t, 2, [2]int{0, 1})

	assert.PanicsWithValue(t, "eulerian: invariant: sub-circuit from 0 stuck at 1", func() {
		eulerian.ExtractSubCircuit(g, 0, true)
	})
}

func TestFindCircuit_MismatchedClassificationPanics(t *testing.T) {
	// The line 0-1-2 has two odd vertices; NoOdd passes the seed check but
	// breaks the even-degree precondition of extraction.
	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})

	assert.PanicsWithValue(t, "eulerian: invariant: sub-circuit from 1 stuck at 0", func() {
		_, _ = eulerian.FindCircuit(g, eulerian.NoOdd{MaxDegreeVertex: 1})
	})
}
