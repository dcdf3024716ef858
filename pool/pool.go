package pool

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// job is a unit of dispatched work plus the barrier its caller is
// waiting on. Workers never know which phase or round a job belongs to;
// they just run fn and signal done, the same shape as go-highway's
// internal workItem.
type job struct {
	fn   func()
	done *sync.WaitGroup
}

// Pool is a fixed-size set of goroutines spawned exactly once and reused
// across every phase of every round. Grounded on
// go-highway/contrib/workerpool.Pool: callers never spawn or join
// goroutines themselves, they dispatch closures onto a channel the
// persistent workers drain.
type Pool struct {
	size      int
	jobs      chan job
	group     *errgroup.Group
	closed    atomic.Bool
	closeOnce sync.Once
}

// New spawns a Pool of size persistent workers. size <= 0 defaults to
// runtime.GOMAXPROCS(0), matching the "one worker per available core"
// default spec §6 assumes when --workers is omitted.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		size: size,
		jobs: make(chan job, size),
	}

	g := new(errgroup.Group)
	for i := 0; i < size; i++ {
		g.Go(func() error {
			for j := range p.jobs {
				j.fn()
				j.done.Done()
			}
			return nil
		})
	}
	p.group = g

	return p
}

// Size reports the number of persistent workers.
func (p *Pool) Size() int { return p.size }

// ParallelFor partitions [0, n) into Size() near-equal ranges via Split
// and runs body once per range on a persistent worker, blocking until
// every range has completed (the barrier required between consecutive
// Borůvka phases, spec §4.8). The first non-nil error returned by any
// range is wrapped in ErrWorkerFailure and returned; every other range
// still runs to completion before ParallelFor returns.
func (p *Pool) ParallelFor(n int, body func(start, stop, worker int) error) error {
	if p.closed.Load() {
		return ErrClosed
	}
	if n <= 0 {
		return nil
	}

	ranges := Split(n, p.size)
	errs := make([]error, len(ranges))

	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for i, r := range ranges {
		i, r := i, r
		p.jobs <- job{
			fn: func() {
				errs[i] = body(r.Start, r.Stop, r.Worker)
			},
			done: &wg,
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWorkerFailure, err)
		}
	}
	return nil
}

// ParallelForDynamic is the feedback-queue alternative to ParallelFor
// (spec §9's "dynamic chunking" option): instead of a fixed up-front
// partition, each worker repeatedly claims the next unclaimed batch of
// batchSize indices from a shared atomic cursor until [0, n) is
// exhausted. Grounded on go-highway's atomic-counter batched variant.
// Batch claim order (and therefore which worker processes which index)
// is load-dependent, so callers relying on W-invariant output must use
// ParallelFor instead.
func (p *Pool) ParallelForDynamic(n, batchSize int, body func(start, stop, worker int) error) error {
	if p.closed.Load() {
		return ErrClosed
	}
	if n <= 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	var cursor atomic.Int64
	errs := make([]error, p.size)

	var wg sync.WaitGroup
	wg.Add(p.size)
	for w := 0; w < p.size; w++ {
		w := w
		p.jobs <- job{
			fn: func() {
				for {
					start := int(cursor.Add(int64(batchSize))) - batchSize
					if start >= n {
						return
					}
					stop := start + batchSize
					if stop > n {
						stop = n
					}
					if err := body(start, stop, w); err != nil {
						errs[w] = err
						return
					}
				}
			},
			done: &wg,
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWorkerFailure, err)
		}
	}
	return nil
}

// Close shuts the pool down: no further ParallelFor call will dispatch
// work, and Close blocks until every persistent worker has drained the
// job channel and exited. Safe to call more than once; only the first
// call has effect.
func (p *Pool) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.jobs)
		err = p.group.Wait()
	})
	return err
}
