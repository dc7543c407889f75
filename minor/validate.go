package minor

import (
	"fmt"

	"github.com/chromatyna/minorfind/graph"
)

// Validate re-checks a found Minor against every structural rule the sweep
// is supposed to already guarantee: branch-set count within [minN, maxN],
// cost within maxCost, non-edges within maxNonedges, branch-sets pairwise
// disjoint and each internally connected in g, and every recorded edge
// realized by an actual graph edge with endpoints in its two branch-sets.
func Validate(g *graph.Graph, m Minor, minN, maxN, maxNonedges, maxCost int) error {
	n := len(m.Branches)
	if n < minN || n > maxN {
		return fmt.Errorf("branch count %d outside [%d, %d]", n, minN, maxN)
	}

	if len(m.Edges) > maxCost {
		return fmt.Errorf("cost %d exceeds maxCost %d", len(m.Edges), maxCost)
	}

	totalPairs := n * (n - 1) / 2
	if totalPairs-len(m.Edges) > maxNonedges {
		return fmt.Errorf("non-edges %d exceed maxNonedges %d", totalPairs-len(m.Edges), maxNonedges)
	}

	owner := map[int]int{}
	for br, nodes := range m.Branches {
		for _, id := range nodes {
			if prev, seen := owner[id]; seen {
				return fmt.Errorf("node %d appears in both branch %d and branch %d", id, prev, br)
			}
			owner[id] = br
		}

		if !branchConnected(g, nodes) {
			return fmt.Errorf("branch %d does not induce a connected subgraph", br)
		}
	}

	for _, e := range m.Edges {
		ge, err := g.Edge(e.EdgeID)
		if err != nil {
			return err
		}
		brU, brV := owner[ge.U], owner[ge.V]
		if brU > brV {
			brU, brV = brV, brU
		}
		if brU != e.BrU || brV != e.BrV {
			return fmt.Errorf("edge %d connects branches %d,%d but is recorded as %d,%d", e.EdgeID, brU, brV, e.BrU, e.BrV)
		}
	}

	return nil
}

// branchConnected reports whether the subgraph induced by nodes is
// connected, via a breadth-first walk restricted to nodes.
func branchConnected(g *graph.Graph, nodes []int) bool {
	if len(nodes) <= 1 {
		return true
	}

	inBranch := make(map[int]bool, len(nodes))
	for _, id := range nodes {
		inBranch[id] = true
	}

	visited := map[int]bool{nodes[0]: true}
	queue := []int{nodes[0]}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for _, eid := range g.Incident(v) {
			e, err := g.Edge(eid)
			if err != nil {
				continue
			}
			other := e.U
			if other == v {
				other = e.V
			}
			if !inBranch[other] || visited[other] {
				continue
			}
			visited[other] = true
			queue = append(queue, other)
		}
	}

	return len(visited) == len(nodes)
}
