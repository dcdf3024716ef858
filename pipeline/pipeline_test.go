package pipeline_test

import (
	"testing"

	"github.com/katalvlaran/boruvka/bgraph"
	"github.com/katalvlaran/boruvka/pipeline"
	"github.com/stretchr/testify/require"
)

func mustGraph(t *testing.T, n uint32, edges []bgraph.Edge) *bgraph.Graph {
	t.Helper()
	var symmetrized []bgraph.Edge
	for _, e := range edges {
		symmetrized = append(symmetrized, e, bgraph.Edge{From: e.To, To: e.From, Weight: e.Weight})
	}
	g, err := bgraph.New(n, symmetrized)
	require.NoError(t, err)
	return g
}

func TestTriangle(t *testing.T) {
	g := mustGraph(t, 3, []bgraph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 0, To: 2, Weight: 3},
	})
	res, err := pipeline.Run(g, 2)
	require.NoError(t, err)
	require.InDelta(t, 3.0, res.TotalWeight, 1e-6)
	require.Len(t, res.MSTEdges, 2)
}

func TestSquareWithDiagonal(t *testing.T) {
	// 0-1-2-3-0 square (weight 1 each), plus a heavier diagonal 0-2.
	g := mustGraph(t, 4, []bgraph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 0, Weight: 1},
		{From: 0, To: 2, Weight: 5},
	})
	res, err := pipeline.Run(g, 3)
	require.NoError(t, err)
	require.InDelta(t, 3.0, res.TotalWeight, 1e-6)
	require.Len(t, res.MSTEdges, 3)
}

func TestDisconnectedTriangles(t *testing.T) {
	g := mustGraph(t, 6, []bgraph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 0, To: 2, Weight: 3},
		{From: 3, To: 4, Weight: 1},
		{From: 4, To: 5, Weight: 2},
		{From: 3, To: 5, Weight: 3},
	})
	res, err := pipeline.Run(g, 4)
	require.NoError(t, err)
	require.InDelta(t, 6.0, res.TotalWeight, 1e-6) // two separate 2-edge MSTs of weight 3 each
	require.Len(t, res.MSTEdges, 4)
}

func TestPathGraph(t *testing.T) {
	const n = 50
	var edges []bgraph.Edge
	for i := uint32(0); i < n-1; i++ {
		edges = append(edges, bgraph.Edge{From: i, To: i + 1, Weight: float32(i + 1)})
	}
	g := mustGraph(t, n, edges)
	res, err := pipeline.Run(g, 4)
	require.NoError(t, err)
	require.Len(t, res.MSTEdges, n-1)

	_, refWeight, err := pipeline.SequentialKruskal(g)
	require.NoError(t, err)
	require.InDelta(t, refWeight, res.TotalWeight, 1e-3)
}

func TestSingleVertexIsTrivial(t *testing.T) {
	g, err := bgraph.New(1, nil)
	require.NoError(t, err)
	res, err := pipeline.Run(g, 4)
	require.NoError(t, err)
	require.Empty(t, res.MSTEdges)
	require.Zero(t, res.TotalWeight)
}

func TestEmptyGraphRejected(t *testing.T) {
	g, err := bgraph.New(0, nil)
	require.NoError(t, err)
	_, err = pipeline.Run(g, 4)
	require.ErrorIs(t, err, pipeline.ErrEmptyGraph)
}

func TestSingleWorkerMatchesSequentialReference(t *testing.T) {
	g, err := bgraph.Generate(200, 600, bgraph.GenOptions{Seed: 11})
	require.NoError(t, err)
	res, err := pipeline.Run(g, 1)
	require.NoError(t, err)
	_, refWeight, err := pipeline.SequentialKruskal(g)
	require.NoError(t, err)
	require.InDelta(t, refWeight, res.TotalWeight, 1e-3)
}

// TestMatchesSequentialReferenceAcrossWorkerCounts is spec property 1:
// the parallel MST weight must equal the serial Kruskal reference,
// regardless of how many workers computed it.
func TestMatchesSequentialReferenceAcrossWorkerCounts(t *testing.T) {
	g, err := bgraph.Generate(1024, 10000, bgraph.GenOptions{Seed: 42})
	require.NoError(t, err)

	_, refWeight, err := pipeline.SequentialKruskal(g)
	require.NoError(t, err)

	for _, w := range []int{1, 2, 4, 8, 16} {
		snap := g.Snapshot()
		res, err := pipeline.Run(snap.Restore(), w)
		require.NoError(t, err, "workers=%d", w)
		require.InDelta(t, refWeight, res.TotalWeight, 1e-3, "workers=%d", w)
		require.Len(t, res.MSTEdges, 1024-1, "workers=%d", w)
	}
}

// TestRoundCountsAreMonotonicallyDecreasing is spec property: each
// round's active vertex and edge counts never exceed the previous
// round's.
func TestRoundCountsAreMonotonicallyDecreasing(t *testing.T) {
	g, err := bgraph.Generate(500, 4000, bgraph.GenOptions{Seed: 5})
	require.NoError(t, err)
	res, err := pipeline.Run(g, 6)
	require.NoError(t, err)

	prevV, prevE := 500, 2*4000 // each undirected edge is stored as two directed records
	for _, rnd := range res.Rounds {
		require.LessOrEqual(t, rnd.ActiveVertices, prevV)
		require.LessOrEqual(t, rnd.ActiveEdges, prevE)
		prevV, prevE = rnd.ActiveVertices, rnd.ActiveEdges
	}
}

func TestNoIntraComponentEdgeSurvivesFiltering(t *testing.T) {
	g, err := bgraph.Generate(300, 2000, bgraph.GenOptions{Seed: 9})
	require.NoError(t, err)
	res, err := pipeline.Run(g, 4)
	require.NoError(t, err)
	require.NotEmpty(t, res.MSTEdges)

	// Once a round leaves a single active vertex, every remaining edge is
	// intra-component, so filtering must have dropped all of them.
	for _, rnd := range res.Rounds {
		if rnd.ActiveVertices <= 1 {
			require.Zero(t, rnd.ActiveEdges, "round %d", rnd.Round)
		}
	}
}
