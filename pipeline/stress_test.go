package pipeline_test

import (
	"testing"

	"github.com/katalvlaran/boruvka/bgraph"
	"github.com/katalvlaran/boruvka/pipeline"
	"github.com/stretchr/testify/require"
)

// TestConcurrencyStressAcrossWorkerCounts exercises the large
// V=100000/E=1000000 sweep over W in {1,2,4,8,16} and checks that every
// worker count's total MST weight matches the sequential Kruskal
// reference. It is expensive, so it is skipped under -short.
func TestConcurrencyStressAcrossWorkerCounts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large sweep in -short mode")
	}

	g, err := bgraph.Generate(100000, 1000000, bgraph.GenOptions{Seed: 1})
	require.NoError(t, err)
	snap := g.Snapshot()

	_, refWeight, err := pipeline.SequentialKruskal(g)
	require.NoError(t, err)

	for _, w := range []int{1, 2, 4, 8, 16} {
		res, err := pipeline.Run(snap.Restore(), w)
		require.NoError(t, err, "workers=%d", w)
		require.InDelta(t, refWeight, res.TotalWeight, 1e-2, "workers=%d", w)
	}
}
