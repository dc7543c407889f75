// Package linear implements the L-engine: a direct sweep over a graph's
// main-strand vertex ordering that enumerates every linear K_k minor model —
// a partition of a strand prefix into k consecutive, non-empty segments plus
// a set of (k-1)(k-2)/2 long-range edges connecting non-adjacent segment
// pairs, one edge per pair, with no two chosen edges sharing an endpoint
// (unless explicitly allowed) and no bad triangle among them.
//
// The sweep processes vertices 0..n-1 in order. At each vertex it keeps a
// frontier of partial minors (Find's internal state set), closing the
// current segment and/or extending it with incident edges, nondeterministic
// at every fork. States that coincide on the dedup key (segment count,
// straddling-edge mask, earlier-segment connectivity mask) are coalesced,
// first kept — this is what keeps the frontier small enough to sweep large
// strands.
package linear
