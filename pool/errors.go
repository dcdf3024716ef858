package pool

import "errors"

var (
	// ErrClosed is returned by ParallelFor (and its dynamic variant) once
	// Close has been called on the pool.
	ErrClosed = errors.New("pool: worker pool is closed")

	// ErrWorkerFailure wraps the first non-nil error returned by any
	// chunk body during a ParallelFor call. The returned error wraps both
	// ErrWorkerFailure and the body's own error, so errors.Is / errors.As
	// match either.
	ErrWorkerFailure = errors.New("pool: worker body returned an error")
)
