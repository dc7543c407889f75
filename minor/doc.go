// Package minor implements the P-engine: a generic minor finder that sweeps
// a path decomposition, maintaining a set of partial minors (branch
// assignments for the live bag plus the inter-branch edges discovered so
// far) and emitting every minor whose size, minimum degree, and non-edge
// count satisfy the configured bounds.
//
// Partial minors are deduplicated on a canonical key — the branch count,
// the bag-to-branch assignment, and the inter-branch connectivity shape
// (which branch pairs are joined, ignoring which specific original edge
// realizes the join) — keeping only the best-scoring representative per
// key under is_better. This is what keeps the frontier tractable: many
// distinct historical edge choices collapse onto the same branch structure.
package minor
