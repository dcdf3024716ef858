// Package dsu implements a wait-free parallel disjoint-set forest
// (Anderson & Woll, 1991) for use as the component structure of a
// Borůvka-style MST reduction.
//
// Each element is backed by a single 64-bit atomic cell packing a 31-bit
// rank in the high bits and a 32-bit parent id in the low bits, so that a
// unite can swap both fields in one CAS. find is wait-free and safe to run
// concurrently with unite; unite is lock-free (a thread that loses a CAS
// race simply retries against the winner's state).
//
// The forest never fails at runtime: ids are assumed to lie in
// [0, Size()) by construction (bgraph.New checks every edge endpoint
// against the graph's original vertex count when the graph is built),
// and a violation is a
// programmer/data error reported via panic, not a recoverable error value.
//
// go get github.com/katalvlaran/boruvka/dsu
package dsu
