// Package pipeline implements the data-parallel Borůvka round: five
// phases — MinEdge, Reduce, Contract, FilterEdges, FilterVertices — run
// in sequence over a persistent pool.Pool, separated by barriers, until
// the active vertex set can no longer shrink.
//
// The round structure is grounded on the original C++ driver's
// boruvka_thread.cpp main loop (repeated rounds of: find each
// component's minimum outgoing edge, union, compact), translated from
// std::thread/std::atomic onto goroutines, channels and
// sync/atomic.Uint64 (dsu.DisjointSets).
package pipeline
