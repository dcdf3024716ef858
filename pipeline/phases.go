package pipeline

import (
	"fmt"

	"github.com/katalvlaran/boruvka/bgraph"
	"github.com/katalvlaran/boruvka/dsu"
	"github.com/katalvlaran/boruvka/pool"
)

// roundState holds every array that is live for the duration of a single
// Borůvka round: the active (un-contracted) vertex ids, the still-live
// edge list, and the per-worker scratch the five phases write into. It
// is rebuilt at the top of each round from the previous round's
// FilterEdges/FilterVertices output.
type roundState struct {
	sets *dsu.DisjointSets
	pool *pool.Pool

	active []uint32
	edges  []bgraph.Edge

	// bestByWorker[w][root] is the minimum-weight outgoing edge worker w
	// observed for component root, across worker w's edge range. Sized
	// originalVertexCount so any root id can index it directly, avoiding
	// a second remapping layer.
	bestByWorker [][]bgraph.Edge
	// reduced[root] is bestByWorker merged across all workers: the true
	// minimum outgoing edge for that component this round.
	reduced []bgraph.Edge

	originalVertexCount int

	// parallelFor is the dispatcher every phase below calls through.
	// It defaults to the pool's static RangeSplitter partition and can
	// be swapped for the dynamic feedback-queue variant via
	// useDynamicChunking, per the "dynamic chunking" alternative spec
	// §9 allows as long as the contracted result is unaffected.
	parallelFor func(n int, body func(start, stop, worker int) error) error
}

func newRoundState(sets *dsu.DisjointSets, p *pool.Pool, active []uint32, edges []bgraph.Edge, originalVertexCount int) *roundState {
	return &roundState{
		sets:                sets,
		pool:                p,
		active:              active,
		edges:               edges,
		originalVertexCount: originalVertexCount,
		parallelFor:         p.ParallelFor,
	}
}

// useDynamicChunking swaps this round's dispatcher for
// pool.Pool.ParallelForDynamic with the given batch size.
func (r *roundState) useDynamicChunking(batchSize int) {
	r.parallelFor = func(n int, body func(start, stop, worker int) error) error {
		return r.pool.ParallelForDynamic(n, batchSize, body)
	}
}

func fillNull(s []bgraph.Edge) {
	for i := range s {
		s[i] = bgraph.NullEdge
	}
}

// minEdgePhase scans the live edge list in parallel, one disjoint range
// per worker, and records each worker's locally-best outgoing edge per
// component root. No cross-worker synchronization happens here — that
// is Reduce's job — so this phase never contends on shared memory
// beyond the read-only dsu.Find path-compression CAS.
func (r *roundState) minEdgePhase() error {
	w := r.pool.Size()
	r.bestByWorker = make([][]bgraph.Edge, w)
	for i := range r.bestByWorker {
		r.bestByWorker[i] = make([]bgraph.Edge, r.originalVertexCount)
		fillNull(r.bestByWorker[i])
	}

	err := r.parallelFor(len(r.edges), func(start, stop, worker int) error {
		local := r.bestByWorker[worker]
		for i := start; i < stop; i++ {
			e := r.edges[i]
			ru := r.sets.Find(e.From)
			rv := r.sets.Find(e.To)
			if ru == rv {
				continue
			}
			cur := local[ru]
			if cur.IsNull() || e.Weight < cur.Weight || (e.Weight == cur.Weight && e.Less(cur)) {
				local[ru] = e
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: min-edge: %v", ErrPhaseFailure, err)
	}
	return nil
}

// reducePhase merges the W per-worker candidate arrays produced by
// minEdgePhase into one reduced[] array, partitioning the MERGE over the
// active-vertex range rather than the edge range — each worker owns a
// disjoint slice of roots to merge, so there is no read/write overlap
// between workers even though every worker reads all W candidate arrays.
func (r *roundState) reducePhase() error {
	r.reduced = make([]bgraph.Edge, r.originalVertexCount)
	fillNull(r.reduced)

	err := r.parallelFor(len(r.active), func(start, stop, worker int) error {
		for idx := start; idx < stop; idx++ {
			v := r.active[idx]
			best := bgraph.NullEdge
			for _, local := range r.bestByWorker {
				cand := local[v]
				if cand.IsNull() {
					continue
				}
				if best.IsNull() || cand.Weight < best.Weight || (cand.Weight == best.Weight && cand.Less(best)) {
					best = cand
				}
			}
			r.reduced[v] = best
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: reduce: %v", ErrPhaseFailure, err)
	}
	return nil
}

// contractPhase unions each active root with the other endpoint of its
// reduced minimum edge. When two roots pick each other as their mutual
// minimum, only the numerically smaller root performs the union and
// records the MST edge, so the edge's weight is never double-counted —
// dsu.Unite itself is idempotent, but the MST edge list is not.
func (r *roundState) contractPhase() ([]bgraph.Edge, error) {
	perWorker := make([][]bgraph.Edge, r.pool.Size())

	err := r.parallelFor(len(r.active), func(start, stop, worker int) error {
		var local []bgraph.Edge
		for idx := start; idx < stop; idx++ {
			v := r.active[idx]
			if r.sets.Find(v) != v {
				continue
			}
			e := r.reduced[v]
			if e.IsNull() {
				continue
			}
			other := r.sets.Find(e.To)
			if other == v {
				continue
			}
			// e.To and mutual.To are round-start roots (filterEdgesPhase
			// remaps survivors onto roots), so both sides of a mutual pair
			// reach the same skip decision from reduced[] alone.
			if mutual := r.reduced[e.To]; !mutual.IsNull() && mutual.To == v {
				if v > e.To {
					continue
				}
			}
			r.sets.Unite(v, other)
			local = append(local, e)
		}
		perWorker[worker] = local
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: contract: %v", ErrPhaseFailure, err)
	}

	var contracted []bgraph.Edge
	for _, local := range perWorker {
		contracted = append(contracted, local...)
	}
	return contracted, nil
}

// filterEdgesPhase drops every edge whose endpoints now share a
// component root, and remaps the survivors onto their current roots.
// Each worker appends to its own slice over its own contiguous edge
// range, so concatenating the per-worker slices in worker order
// reproduces a stable relative ordering of the surviving edges.
func (r *roundState) filterEdgesPhase() ([]bgraph.Edge, error) {
	perWorker := make([][]bgraph.Edge, r.pool.Size())

	err := r.parallelFor(len(r.edges), func(start, stop, worker int) error {
		var kept []bgraph.Edge
		for i := start; i < stop; i++ {
			e := r.edges[i]
			ru := r.sets.Find(e.From)
			rv := r.sets.Find(e.To)
			if ru == rv {
				continue
			}
			kept = append(kept, bgraph.Edge{From: ru, To: rv, Weight: e.Weight})
		}
		perWorker[worker] = kept
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: filter-edges: %v", ErrPhaseFailure, err)
	}

	var out []bgraph.Edge
	for _, kept := range perWorker {
		out = append(out, kept...)
	}
	return out, nil
}

// filterVerticesPhase keeps only the vertices that are still their own
// component root, shrinking the active set for the next round.
func (r *roundState) filterVerticesPhase() ([]uint32, error) {
	perWorker := make([][]uint32, r.pool.Size())

	err := r.parallelFor(len(r.active), func(start, stop, worker int) error {
		var kept []uint32
		for idx := start; idx < stop; idx++ {
			v := r.active[idx]
			if r.sets.Find(v) == v {
				kept = append(kept, v)
			}
		}
		perWorker[worker] = kept
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: filter-vertices: %v", ErrPhaseFailure, err)
	}

	var out []uint32
	for _, kept := range perWorker {
		out = append(out, kept...)
	}
	return out, nil
}
