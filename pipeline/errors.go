package pipeline

import "errors"

var (
	// ErrEmptyGraph is returned by Run when the graph has zero vertices.
	ErrEmptyGraph = errors.New("pipeline: graph has no vertices")

	// ErrPhaseFailure wraps an error surfaced by a pool.Pool phase,
	// identifying which of the five phases it came from.
	ErrPhaseFailure = errors.New("pipeline: phase failed")
)
