package linear

import "github.com/chromatyna/minorfind/graph"

// lstate is one partial linear minor: the closed segments' right boundary
// vertices so far, the long-range edges chosen, and the two masks used both
// to decide what a vertex sweep step may still do and to dedup states.
type lstate struct {
	lastVertices     []int // right boundary (inclusive) of each closed segment
	chosenEdges      []int // edge IDs chosen so far, in choice order
	currentEdgesMask uint64
	currentVertexMask uint64
}

// key is the dedup tuple: states that agree on it are coalesced, first kept.
type key struct {
	segments   int
	edgesMask  uint64
	vertexMask uint64
}

func (s *lstate) key() key {
	return key{len(s.lastVertices), s.currentEdgesMask, s.currentVertexMask}
}

func (s *lstate) clone() *lstate {
	c := &lstate{
		currentEdgesMask:  s.currentEdgesMask,
		currentVertexMask: s.currentVertexMask,
	}
	c.lastVertices = append(c.lastVertices, s.lastVertices...)
	c.chosenEdges = append(c.chosenEdges, s.chosenEdges...)

	return c
}

// segmentOf returns the index of the segment vertex v falls in, given the
// segments closed so far (the current, still-open segment is index
// len(lastVertices)).
func (s *lstate) segmentOf(v int) int {
	i := 0
	for i < len(s.lastVertices) && s.lastVertices[i] < v {
		i++
	}

	return i
}

// hasMaxEdges reports whether enough edges have been chosen for the current
// (still-open) segment to legally close, per the L-engine edge-bound
// formula: |chosen| >= (k-1)(k-2)/2 + max(k-2-b, 0) - (k-1-b)(k-2-b)/2,
// where b is the number of segments already closed.
func (s *lstate) hasMaxEdges(k int) bool {
	b := len(s.lastVertices)
	required := (k-1)*(k-2)/2 + maxInt(k-2-b, 0) - (k-1-b)*(k-2-b)/2

	return len(s.chosenEdges) >= required
}

// closeMask returns the current_vertex_mask value required to close the
// segment at index b (b segments already closed): connectivity to every
// earlier segment except the immediately preceding one, which is adjacent
// and so may never carry a chosen edge.
func closeMask(b int) uint64 {
	m := maxInt(b-1, 0)

	return (uint64(1) << uint(m)) - 1
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// canTakeNewEdge reports whether eid may be added to s.chosenEdges: the
// segment isn't already at its edge bound, and (unless allowCommonEndpoints)
// it shares no endpoint with an already-chosen edge, and adding it forms no
// bad triangle (two prior edges sharing a left endpoint with eid's two
// endpoints).
func (s *lstate) canTakeNewEdge(g *graph.Graph, eid int, allowCommonEndpoints bool, k int) bool {
	if s.hasMaxEdges(k) {
		return false
	}

	e, err := g.Edge(eid)
	if err != nil {
		return false
	}

	for a, eaID := range s.chosenEdges {
		ea, err := g.Edge(eaID)
		if err != nil {
			return false
		}

		if !allowCommonEndpoints {
			if ea.First() == e.First() || ea.Second() == e.First() ||
				ea.First() == e.Second() || ea.Second() == e.Second() {
				return false
			}
		}

		for b := 0; b < a; b++ {
			eb, err := g.Edge(s.chosenEdges[b])
			if err != nil {
				return false
			}

			if ea.First() == eb.First() &&
				((ea.Second() == e.First() && eb.Second() == e.Second()) ||
					(eb.Second() == e.First() && ea.Second() == e.Second())) {
				return false
			}
		}
	}

	return true
}
