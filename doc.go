// Package minorfind finds graph minors in chromatin contact graphs: a
// linear K_k minor along a main strand (linear), a general bounded minor
// model over a path decomposition (minor), and a specialized K_6 model
// (k6), plus the graph/pathdecomp types and ioformat file parsing they
// share.
//
//	graph/       — names dictionary + dense-ID node/edge storage
//	pathdecomp/  — path-decomposition bag model
//	fau/         — union-find, used by the minor sweep for branch merges
//	linear/      — L-engine: linear K_k minor search
//	minor/       — P-engine: general bounded minor search
//	k6/          — K6-engine: specialized K_6 minor search
//	ioformat/    — graph/path-decomposition parsing, MINOR record emission
//	cmd/         — lfinder, pfinder, k6finder command-line entry points
package minorfind
