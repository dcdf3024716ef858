package bgraph

import (
	"fmt"
	"math"
)

// Edge is a directed view of an undirected edge: From, To, Weight. Under
// Less, two edges are equivalent iff they share the same ordered endpoint
// pair; the == operator also compares Weight.
type Edge struct {
	From   uint32
	To     uint32
	Weight float32
}

// NullEdge is the sentinel "no candidate" edge used by MinEdgePhase and
// ReducePhase. Its weight is +Inf so it compares larger than any real edge
// weight regardless of the input's weight range — the spec's Open
// Questions flag the alternative sentinel of 10.0 as unsafe whenever a
// real weight can equal 10.0, so this implementation always uses +Inf.
var NullEdge = Edge{From: 0, To: 0, Weight: float32(math.Inf(1))}

// IsNull reports whether e is the sentinel NullEdge.
func (e Edge) IsNull() bool {
	return e == NullEdge
}

// Less orders edges by their (From, To) pair. MinEdge and Reduce use it
// to break ties between candidate edges of equal weight.
func (e Edge) Less(o Edge) bool {
	if e.From != o.From {
		return e.From < o.From
	}
	return e.To < o.To
}

// Graph is the mutable container a Borůvka round operates on: the active
// vertex and edge arrays, plus the immutable original vertex count that
// every phase's scratch buffer is sized to (spec §3).
type Graph struct {
	// Vertices is the ordered, duplicate-free set of currently active
	// vertex ids, a subset of [0, OriginalVertexCount).
	Vertices []uint32

	// Edges is the ordered, directed edge list: each undirected edge
	// (a,b,w) of the input appears as both (a,b,w) and (b,a,w).
	Edges []Edge

	// OriginalVertexCount is V0, the immutable upper bound on vertex ids.
	// Scratch arrays in every phase are sized to V0, never to len(Vertices).
	OriginalVertexCount uint32
}

// New builds a Graph from an already-symmetrized, deduplicated, loop-free
// directed edge list over vertexCount vertices [0, vertexCount). Vertices
// is initialized to the identity sequence 0..vertexCount-1.
func New(vertexCount uint32, edges []Edge) (*Graph, error) {
	g := &Graph{
		Vertices:            make([]uint32, vertexCount),
		Edges:               edges,
		OriginalVertexCount: vertexCount,
	}
	for i := range g.Vertices {
		g.Vertices[i] = uint32(i)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks the invariants from spec §3: every edge endpoint is
// within [0, OriginalVertexCount), no self-loops, and Vertices contains no
// duplicates. It does not check the symmetry invariant (every (a,b,w) has
// a matching (b,a,w)) — that is an ingestion-time property enforced by the
// loader and generator, not re-verified on every round.
func (g *Graph) Validate() error {
	seen := make(map[uint32]struct{}, len(g.Vertices))
	for _, v := range g.Vertices {
		if v >= g.OriginalVertexCount {
			return fmt.Errorf("bgraph: vertex %d >= original count %d: %w", v, g.OriginalVertexCount, ErrVertexOutOfRange)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("bgraph: duplicate vertex %d", v)
		}
		seen[v] = struct{}{}
	}
	for _, e := range g.Edges {
		if e.From >= g.OriginalVertexCount || e.To >= g.OriginalVertexCount {
			return fmt.Errorf("bgraph: edge (%d,%d) endpoint >= original count %d: %w", e.From, e.To, g.OriginalVertexCount, ErrVertexOutOfRange)
		}
		if e.From == e.To {
			return fmt.Errorf("bgraph: edge (%d,%d): %w", e.From, e.To, ErrSelfLoop)
		}
	}
	return nil
}

// VertexCount returns the number of currently active vertices.
func (g *Graph) VertexCount() int {
	return len(g.Vertices)
}

// EdgeCount returns the number of currently active directed edge records
// (an undirected edge counts twice).
func (g *Graph) EdgeCount() int {
	return len(g.Edges)
}

// Reduced reports whether the graph has converged to a single component
// (the round driver's loop condition from spec §4.7).
func (g *Graph) Reduced() bool {
	return len(g.Vertices) <= 1
}
