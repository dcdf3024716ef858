// Package bgraph holds the mutable vertex/edge arrays that a Borůvka round
// operates on: a dense-id Graph backed by flat slices rather than the
// adjacency-map Graph of lvlath/core, because every pipeline phase needs
// to range-partition Vertices and Edges across workers directly.
//
// Edges are stored directed: each undirected edge (a,b,w) of the input
// appears twice, as (a,b,w) and (b,a,w), so MinEdgePhase can find a
// vertex's cheapest incident edge with a single linear scan keyed on
// Edge.From.
package bgraph
