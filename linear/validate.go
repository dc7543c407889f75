package linear

import (
	"fmt"

	"github.com/chromatyna/minorfind/graph"
)

// Validate re-checks a found Minor against every structural rule the sweep
// is supposed to already guarantee: exactly k segments, exactly
// (k-1)(k-2)/2 distinct chosen-edge connections, no adjacent-segment
// connection, no repeated segment pair, no bad triangle, and (unless
// allowCommonEndpoints) no shared endpoints.
func Validate(g *graph.Graph, m Minor, k int, allowCommonEndpoints bool) error {
	if len(m.Segments) != k {
		return fmt.Errorf("expected %d segments, got %d", k, len(m.Segments))
	}

	wantEdges := (k - 1) * (k - 2) / 2
	if len(m.Edges) != wantEdges {
		return fmt.Errorf("expected %d chosen edges, got %d", wantEdges, len(m.Edges))
	}

	seenPairs := map[[2]int]bool{}
	for _, ce := range m.Edges {
		from, to := ce.FromSegment, ce.ToSegment
		if from > to {
			from, to = to, from
		}
		if to-from == 1 {
			return fmt.Errorf("edge %d connects adjacent segments %d and %d", ce.EdgeID, from, to)
		}
		if from == to {
			return fmt.Errorf("edge %d connects segment %d to itself", ce.EdgeID, from)
		}
		pair := [2]int{from, to}
		if seenPairs[pair] {
			return fmt.Errorf("segment pair (%d, %d) has more than one chosen edge", from, to)
		}
		seenPairs[pair] = true
	}

	if !allowCommonEndpoints {
		seenVertex := map[int]bool{}
		for _, ce := range m.Edges {
			e, err := g.Edge(ce.EdgeID)
			if err != nil {
				return err
			}
			for _, ep := range []int{e.First(), e.Second()} {
				if seenVertex[ep] {
					return fmt.Errorf("vertex %d is an endpoint of more than one chosen edge", ep)
				}
				seenVertex[ep] = true
			}
		}
	}

	for a := range m.Edges {
		ea, err := g.Edge(m.Edges[a].EdgeID)
		if err != nil {
			return err
		}
		for b := 0; b < a; b++ {
			eb, err := g.Edge(m.Edges[b].EdgeID)
			if err != nil {
				return err
			}
			if ea.First() == eb.First() && ea.Second() != eb.Second() {
				// two edges sharing a left endpoint: check the third side
				// of the triangle isn't also chosen.
				for c := range m.Edges {
					if c == a || c == b {
						continue
					}
					ec, err := g.Edge(m.Edges[c].EdgeID)
					if err != nil {
						return err
					}
					if (ec.First() == ea.Second() && ec.Second() == eb.Second()) ||
						(ec.First() == eb.Second() && ec.Second() == ea.Second()) {
						return fmt.Errorf("bad triangle among edges %d, %d, %d", ea.First(), ea.Second(), eb.Second())
					}
				}
			}
		}
	}

	return nil
}
