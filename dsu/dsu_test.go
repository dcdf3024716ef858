package dsu_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/boruvka/dsu"
	"github.com/stretchr/testify/require"
)

func TestNewSingletons(t *testing.T) {
	d := dsu.New(5)
	require.Equal(t, 5, d.Size())
	for i := uint32(0); i < 5; i++ {
		require.Equal(t, i, d.Parent(i))
		require.Equal(t, uint32(0), d.Rank(i))
	}
}

func TestUniteSame(t *testing.T) {
	d := dsu.New(4)
	require.False(t, d.Same(0, 1))

	d.Unite(0, 1)
	require.True(t, d.Same(0, 1))
	require.False(t, d.Same(0, 2))

	d.Unite(2, 3)
	require.True(t, d.Same(2, 3))
	require.False(t, d.Same(0, 2))

	d.Unite(1, 3)
	require.True(t, d.Same(0, 2))
	require.True(t, d.Same(0, 3))
}

func TestUniteIdempotent(t *testing.T) {
	d := dsu.New(2)
	r1 := d.Unite(0, 1)
	r2 := d.Unite(0, 1)
	require.Equal(t, r1, r2)
	require.True(t, d.Same(0, 1))
}

func TestUniteDeterministicTieBreak(t *testing.T) {
	// Equal rank (both 0), tie-break: higher id links into lower id per the
	// spec's "lower-rank / higher-id on tie" rule, so the root ends up being
	// the lower id.
	d := dsu.New(2)
	root := d.Unite(1, 0)
	require.Equal(t, uint32(0), root)
	require.Equal(t, uint32(0), d.Parent(0))
	require.Equal(t, uint32(0), d.Parent(1))
	require.Equal(t, uint32(1), d.Rank(0))
}

func TestFindPathCompression(t *testing.T) {
	d := dsu.New(4)
	d.Unite(0, 1)
	d.Unite(1, 2)
	d.Unite(2, 3)
	root := d.Find(0)
	for i := uint32(0); i < 4; i++ {
		require.Equal(t, root, d.Find(i))
	}
}

// TestConcurrentUnite mirrors lvlath/core's concurrency tests: many
// goroutines race to union a chain of ids, and the forest must end up
// fully merged into a single tree regardless of interleaving.
func TestConcurrentUnite(t *testing.T) {
	const n = 2000
	d := dsu.New(n)

	var wg sync.WaitGroup
	wg.Add(n - 1)
	for i := 0; i < n-1; i++ {
		go func(i int) {
			defer wg.Done()
			d.Unite(uint32(i), uint32(i+1))
		}(i)
	}
	wg.Wait()

	root := d.Find(0)
	for i := uint32(0); i < n; i++ {
		require.Equal(t, root, d.Find(i), "element %d not merged", i)
		require.True(t, d.Same(0, i))
	}
}

// TestConcurrentUniteRandomPairs checks correctness under concurrent unite
// calls for a random set of pairs, comparing the resulting equivalence
// classes against a sequential reference computed over the same pairs in
// a single serial order, per property 6 (union-find correctness under
// concurrency).
func TestConcurrentUniteRandomPairs(t *testing.T) {
	const n = 500
	rng := rand.New(rand.NewSource(7))
	pairs := make([][2]uint32, 3000)
	for i := range pairs {
		pairs[i] = [2]uint32{uint32(rng.Intn(n)), uint32(rng.Intn(n))}
	}

	// Sequential reference: plain union-by-index arrays.
	refParent := make([]int, n)
	for i := range refParent {
		refParent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for refParent[x] != x {
			refParent[x] = refParent[refParent[x]]
			x = refParent[x]
		}
		return x
	}
	for _, p := range pairs {
		a, b := find(int(p[0])), find(int(p[1]))
		if a != b {
			refParent[a] = b
		}
	}

	d := dsu.New(n)
	var wg sync.WaitGroup
	wg.Add(len(pairs))
	for _, p := range pairs {
		go func(p [2]uint32) {
			defer wg.Done()
			d.Unite(p[0], p[1])
		}(p)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			want := find(i) == find(j)
			got := d.Same(uint32(i), uint32(j))
			require.Equal(t, want, got, "mismatch for (%d,%d)", i, j)
		}
	}
}

// TestEquivalenceClassesStableAcrossGoroutineCounts checks that the
// partition into equivalence classes produced by a fixed set of unite
// calls does not depend on how many goroutines apply them — only which
// specific id ends up as each class's root may vary with interleaving.
// The pipeline package does not produce bit-identical root arrays across
// worker counts either: its Contract phase also applies concurrent unite
// calls, so its tests compare total MST weight instead.
func TestEquivalenceClassesStableAcrossGoroutineCounts(t *testing.T) {
	const n = 300
	rng := rand.New(rand.NewSource(42))
	pairs := make([][2]uint32, 1500)
	for i := range pairs {
		pairs[i] = [2]uint32{uint32(rng.Intn(n)), uint32(rng.Intn(n))}
	}

	run := func(workers int) []uint32 {
		d := dsu.New(n)
		chunk := (len(pairs) + workers - 1) / workers
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			start := w * chunk
			end := start + chunk
			if end > len(pairs) {
				end = len(pairs)
			}
			if start >= end {
				continue
			}
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				for _, p := range pairs[lo:hi] {
					d.Unite(p[0], p[1])
				}
			}(start, end)
		}
		wg.Wait()

		parents := make([]uint32, n)
		for i := uint32(0); i < n; i++ {
			parents[i] = d.Find(i)
		}
		return parents
	}

	base := run(1)
	for _, w := range []int{2, 4, 8, 16} {
		got := run(w)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				require.Equal(t, base[i] == base[j], got[i] == got[j], "workers=%d classes differ at (%d,%d)", w, i, j)
			}
		}
	}
}
