package bgraph

import "errors"

// Sentinel errors for bgraph ingestion and validation. Callers use
// errors.Is, never string comparison, per the teacher pack's convention.
var (
	// ErrSelfLoop indicates an edge with From == To was rejected at load;
	// the engine targets simple undirected graphs (spec §3's invariants).
	ErrSelfLoop = errors.New("bgraph: self-loops are not permitted")

	// ErrVertexOutOfRange indicates an edge endpoint is >= the declared
	// vertex count. Corresponds to spec §7's OutOfRangeVertex error kind.
	ErrVertexOutOfRange = errors.New("bgraph: vertex id out of range")

	// ErrInvalidLine indicates a malformed "(u v w)" triple while parsing
	// a text edge list.
	ErrInvalidLine = errors.New("bgraph: malformed edge line")

	// ErrNegativeCount indicates a generator was asked for a negative
	// vertex or edge count.
	ErrNegativeCount = errors.New("bgraph: vertex/edge count must be non-negative")

	// ErrTooFewVertices indicates a generator was asked to place edges
	// among fewer than 2 distinct vertices.
	ErrTooFewVertices = errors.New("bgraph: need at least 2 vertices to place an edge")
)
