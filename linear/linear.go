package linear

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/chromatyna/minorfind/graph"
)

type engine struct {
	g                    *graph.Graph
	k                    int
	allowCommonEndpoints bool
	maxFrontier          int
	logger               *slog.Logger

	frontier        map[key]*lstate
	currentEdgesMap map[int]int // straddling edge ID -> bit index
	found           []Minor
}

// Find sweeps g's main-strand vertex ordering and returns every linear K_k
// minor model admitted by the configured options.
func Find(g *graph.Graph, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.cliqueSize < 3 || o.cliqueSize > 8 {
		return nil, fmt.Errorf("%w: clique size %d (must be in [3, 8])", ErrParameterRange, o.cliqueSize)
	}

	eng := &engine{
		g:                    g,
		k:                    o.cliqueSize,
		allowCommonEndpoints: o.allowCommonEndpoints,
		maxFrontier:          o.maxFrontier,
		logger:               o.logger,
		frontier:             map[key]*lstate{},
		currentEdgesMap:      map[int]int{},
	}
	eng.frontier[(&lstate{}).key()] = &lstate{}

	n := g.Size()
	for v := 0; v < n; v++ {
		select {
		case <-o.ctx.Done():
			return nil, context.Cause(o.ctx)
		default:
		}

		if err := eng.processVertex(v); err != nil {
			return nil, err
		}

		eng.logger.Debug("linear sweep step",
			"vertex", v, "frontier_size", len(eng.frontier), "found_so_far", len(eng.found))
	}

	eng.logger.Info("linear sweep finished", "vertices", n, "found", len(eng.found))

	if o.strictValidation {
		for i := range eng.found {
			if err := Validate(g, eng.found[i], o.cliqueSize, o.allowCommonEndpoints); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInternalInvariant, err)
			}
		}
	}

	return &Result{Minors: eng.found}, nil
}

// sortedFrontier returns the current frontier's states ordered by dedup
// key, matching the deterministic parent-processing order the dedup
// contract (first kept) relies on.
func (e *engine) sortedFrontier() []*lstate {
	out := make([]*lstate, 0, len(e.frontier))
	for _, s := range e.frontier {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		ki, kj := out[i].key(), out[j].key()
		if ki.segments != kj.segments {
			return ki.segments < kj.segments
		}
		if ki.edgesMask != kj.edgesMask {
			return ki.edgesMask < kj.edgesMask
		}

		return ki.vertexMask < kj.vertexMask
	})

	return out
}

func insert(frontier map[key]*lstate, s *lstate) {
	k := s.key()
	if _, exists := frontier[k]; !exists {
		frontier[k] = s
	}
}

// processVertex advances every live partial minor past vertex v: optionally
// closing the current segment at v-1, then forking over each edge incident
// to v, then rebuilding each survivor's straddling-edge mask.
func (e *engine) processVertex(v int) error {
	newStraddling := map[int]bool{}
	for eid := range e.currentEdgesMap {
		newStraddling[eid] = true
	}
	inc := e.g.Incident(v)
	for _, eid := range inc {
		edge, _ := e.g.Edge(eid)
		other := edge.U
		if edge.U == v {
			other = edge.V
		}
		if other < v {
			delete(newStraddling, eid)
		} else {
			newStraddling[eid] = true
		}
	}

	newSorted := make([]int, 0, len(newStraddling))
	for eid := range newStraddling {
		newSorted = append(newSorted, eid)
	}
	sort.Ints(newSorted)
	newMap := make(map[int]int, len(newSorted))
	for i, eid := range newSorted {
		newMap[eid] = i
	}

	newFrontier := map[key]*lstate{}

	for _, opm := range e.sortedFrontier() {
		tmpList := []*lstate{opm.clone()}

		if v > 0 {
			b := len(opm.lastVertices)
			if opm.currentVertexMask == closeMask(b) && opm.hasMaxEdges(e.k) {
				child := opm.clone()
				child.lastVertices = append(child.lastVertices, v-1)
				child.currentVertexMask = 0
				if len(child.lastVertices) == e.k {
					e.found = append(e.found, e.buildMinor(child))
				} else {
					tmpList = append(tmpList, child)
				}
			}
		}

		for _, eid := range inc {
			edge, _ := e.g.Edge(eid)
			other := edge.U
			if edge.U == v {
				other = edge.V
			}

			var next []*lstate
			if other < v {
				bit, wasStraddling := e.currentEdgesMap[eid]
				for _, pm := range tmpList {
					if wasStraddling && pm.currentEdgesMask&(uint64(1)<<uint(bit)) != 0 {
						left := edge.First()
						i := pm.segmentOf(left)
						b := len(pm.lastVertices)
						if i+1 < b && pm.currentVertexMask&(uint64(1)<<uint(i)) == 0 {
							npm := pm.clone()
							npm.currentVertexMask |= uint64(1) << uint(i)
							next = append(next, npm)
						}
						// else: this chosen edge's left endpoint lands in the
						// adjacent segment, or the segment is already marked
						// connected — either way the branch dies here.
					} else {
						next = append(next, pm)
					}
				}
			} else {
				for _, pm := range tmpList {
					next = append(next, pm)
					if pm.canTakeNewEdge(e.g, eid, e.allowCommonEndpoints, e.k) {
						npm := pm.clone()
						npm.chosenEdges = append(npm.chosenEdges, eid)
						next = append(next, npm)
					}
				}
			}
			tmpList = next
		}

		for _, pm := range tmpList {
			pm.currentEdgesMask = 0
			for _, eid := range pm.chosenEdges {
				if bit, ok := newMap[eid]; ok {
					pm.currentEdgesMask |= uint64(1) << uint(bit)
				}
			}
			insert(newFrontier, pm)
		}
	}

	e.frontier = newFrontier
	e.currentEdgesMap = newMap

	if e.maxFrontier > 0 && len(e.frontier) > e.maxFrontier {
		return fmt.Errorf("%w: %d states at vertex %d (bound %d)", ErrFrontierExhausted, len(e.frontier), v, e.maxFrontier)
	}

	return nil
}

// buildMinor reconstructs the Segment and ChosenEdge records for a state
// whose segment count has just reached k.
func (e *engine) buildMinor(s *lstate) Minor {
	m := Minor{Segments: make([]Segment, len(s.lastVertices))}
	start := 0
	for i, end := range s.lastVertices {
		m.Segments[i] = Segment{Start: start, End: end}
		start = end + 1
	}

	for _, eid := range s.chosenEdges {
		edge, _ := e.g.Edge(eid)
		m.Edges = append(m.Edges, ChosenEdge{
			EdgeID:      eid,
			FromSegment: s.segmentOf(edge.First()),
			ToSegment:   s.segmentOf(edge.Second()),
		})
	}

	return m
}
