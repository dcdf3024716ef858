package bgraph

import (
	"fmt"
	"math/rand"
)

// GenOptions configures Generate. Grounded on lvlath/builder's
// impl_random_sparse.go: a functional-options-free, direct-parameter
// generator (n, e) with an explicit seed for determinism, following the
// same "validate, then sample with a stable trial order" shape.
type GenOptions struct {
	// Seed drives the RNG. The zero value (0) is a valid, deterministic
	// seed — callers wanting nondeterministic output must supply one
	// themselves (e.g. from time.Now().UnixNano()).
	Seed int64
}

// Generate produces a Graph with exactly e undirected edges between
// random distinct endpoints in [0, n), with weights uniform in [1, 10),
// per spec §6. Duplicate and self-loop candidates are resampled; with a
// fixed seed the resulting edge set is deterministic.
func Generate(n, e int, opts GenOptions) (*Graph, error) {
	if n < 0 || e < 0 {
		return nil, ErrNegativeCount
	}
	if e == 0 {
		return New(uint32(n), nil)
	}
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	maxEdges := int64(n) * int64(n-1) / 2
	if int64(e) > maxEdges {
		return nil, fmt.Errorf("bgraph: e=%d exceeds max simple-graph edges %d for n=%d", e, maxEdges, n)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	type pair struct{ a, b uint32 }
	seen := make(map[pair]struct{}, e)
	raw := make([]pair, 0, e)

	for len(raw) < e {
		a := uint32(rng.Intn(n))
		b := uint32(rng.Intn(n))
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		key := pair{a, b}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		raw = append(raw, key)
	}

	edges := make([]Edge, 0, 2*e)
	for _, p := range raw {
		w := float32(1.0 + rng.Float64()*9.0) // uniform in [1, 10)
		edges = append(edges, Edge{From: p.a, To: p.b, Weight: w})
		edges = append(edges, Edge{From: p.b, To: p.a, Weight: w})
	}

	return New(uint32(n), edges)
}
