// Package pool provides the scheduling fabric for a Borůvka round: a
// persistent WorkerPool (goroutines spawned once, reused across every
// phase of every round) and a deterministic RangeSplitter that partitions
// [0, n) into near-equal contiguous chunks.
//
// The pool is grounded on go-highway/contrib/workerpool's persistent-Pool
// design — workers block on a channel and are reused across calls, rather
// than being spawned and joined per phase — and on
// junjiewwang-perf-analysis's errgroup.Group usage for spawning and
// joining that fixed worker set.
package pool
