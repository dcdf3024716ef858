package pipeline

import (
	"github.com/katalvlaran/boruvka/bgraph"
	"github.com/katalvlaran/boruvka/dsu"
	"github.com/katalvlaran/boruvka/pool"
)

// RoundStats records one round's shape, for --verbose reporting and for
// the monotonicity property (active vertex/edge counts never increase).
type RoundStats struct {
	Round           int
	ActiveVertices  int
	ActiveEdges     int
	ContractedEdges int
}

// Result is the outcome of a full Run: the minimum spanning forest's
// edges, its total weight, and a per-round trace.
type Result struct {
	MSTEdges    []bgraph.Edge
	TotalWeight float64
	Rounds      []RoundStats
}

// options holds Run's optional behavior, following the teacher pack's
// functional-options convention (lvlath/core.GraphOption).
type options struct {
	dynamic   bool
	batchSize int
}

// Option configures a Run call.
type Option func(*options)

// WithDynamicChunking switches every phase from the default static
// RangeSplitter partition to the feedback-queue alternative
// (pool.Pool.ParallelForDynamic), claiming batchSize indices at a time.
// This trades the static splitter's fixed index-to-worker assignment for
// better load balance when per-index work is uneven; it is the engine
// counterpart of config.EngineConfig.ChunkStrategy == "dynamic".
func WithDynamicChunking(batchSize int) Option {
	return func(o *options) {
		o.dynamic = true
		o.batchSize = batchSize
	}
}

// Run drives the Borůvka rounds to completion: MinEdge, Reduce,
// Contract, FilterEdges, FilterVertices, repeated until the active
// vertex set has size <= 1 or a round contracts nothing (meaning the
// remaining components are mutually unreachable — the graph is
// disconnected and the result is a minimum spanning forest, not a
// single tree).
//
// workers <= 0 defaults to pool.New's own default (GOMAXPROCS). Run
// opens and closes its own pool.Pool per call and no pool outlives the
// call, since a pool is cheap to spin up
// relative to a single MST computation and callers sweeping over
// several worker counts need an independent pool per count anyway.
func Run(g *bgraph.Graph, workers int, opts ...Option) (*Result, error) {
	if g.OriginalVertexCount == 0 {
		return nil, ErrEmptyGraph
	}

	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	sets := dsu.New(int(g.OriginalVertexCount))
	p := pool.New(workers)
	defer p.Close()

	active := make([]uint32, len(g.Vertices))
	copy(active, g.Vertices)
	edges := make([]bgraph.Edge, len(g.Edges))
	copy(edges, g.Edges)

	var result Result
	round := 0
	for len(active) > 1 && len(edges) > 0 {
		round++
		rs := newRoundState(sets, p, active, edges, int(g.OriginalVertexCount))
		if cfg.dynamic {
			rs.useDynamicChunking(cfg.batchSize)
		}

		if err := rs.minEdgePhase(); err != nil {
			return nil, err
		}
		if err := rs.reducePhase(); err != nil {
			return nil, err
		}
		contracted, err := rs.contractPhase()
		if err != nil {
			return nil, err
		}
		if len(contracted) == 0 {
			// No component found a cross-component edge: the remaining
			// active vertices belong to mutually unreachable
			// components. Stop; the forest so far is final.
			break
		}
		for _, e := range contracted {
			result.MSTEdges = append(result.MSTEdges, e)
			result.TotalWeight += float64(e.Weight)
		}

		newEdges, err := rs.filterEdgesPhase()
		if err != nil {
			return nil, err
		}
		newActive, err := rs.filterVerticesPhase()
		if err != nil {
			return nil, err
		}

		result.Rounds = append(result.Rounds, RoundStats{
			Round:           round,
			ActiveVertices:  len(newActive),
			ActiveEdges:     len(newEdges),
			ContractedEdges: len(contracted),
		})

		active = newActive
		edges = newEdges
	}

	return &result, nil
}
