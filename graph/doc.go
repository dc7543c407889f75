// Package graph holds the interaction graph searched by the minor-finding
// engines: a dense-ID name dictionary, an insertion-ordered edge list, and
// incidence lists built from it.
//
// A Graph is built by graph.New followed by repeated InternNode / AddEdge
// calls. The linear engine only reads the graph it is given; the minor and
// k6 engines populate the graph passed to them themselves, interning each
// IntroduceNode step and adding each IntroduceEdge step as they sweep the
// decomposition. Node IDs are assigned in the
// order nodes are first seen; when the caller interns NODE records in
// main-strand order (as ioformat does), ID order and strand order coincide,
// which is what makes the linear engine's "segment i is an interval of IDs"
// assumption valid.
//
// Complexity: InternNode and AddEdge are O(1) amortized. Edge is O(1);
// Incident returns a fresh copy of v's incidence list in O(deg(v)).
//
// Concurrency: Graph guards its maps and slices with a sync.RWMutex, so
// Size/EdgeCount can be read concurrently with ingest. Every read method,
// including those the engines call during a sweep, takes the read lock.
package graph
