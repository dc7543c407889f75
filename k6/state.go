package k6

import (
	"fmt"
	"sort"
	"strings"
)

// params2color packs a branch index and the two other branches it connects
// into a single int: bits 6+ hold br, bits 3-5 hold min(u1,u2), bits 0-2
// hold max(u1,u2). Each of br, u1, u2 is in [0,6), so 3 bits each suffice.
func params2color(br, u1, u2 int) int {
	if u1 > u2 {
		u1, u2 = u2, u1
	}

	return (br << 6) | (u1 << 3) | u2
}

func colorBranch(c int) int { return c >> 6 }
func colorU1(c int) int     { return (c >> 3) & 7 }
func colorU2(c int) int     { return c & 7 }

// branchPath is one internal path inside a branch, connecting the bridge
// endpoint toward u1 to the bridge endpoint toward u2. V1/V2 are bag
// positions for the two ends still unresolved; -1 marks a resolved end
// (the path has reached its intended bridge endpoint).
type branchPath struct {
	Color  int
	V1, V2 int
	Solid  bool
}

func newBranchPath(br, u1, u2, v1, v2 int, solid bool) branchPath {
	return branchPath{Color: params2color(br, u1, u2), V1: v1, V2: v2, Solid: solid}
}

func (bp branchPath) Branch() int { return colorBranch(bp.Color) }
func (bp branchPath) U1() int     { return colorU1(bp.Color) }
func (bp branchPath) U2() int     { return colorU2(bp.Color) }

// sortPaths orders paths by (color, v1, v2); solid plays no role since a
// path's identity for dedup and lookup purposes is its color and its live
// endpoints.
func sortPaths(paths []branchPath) {
	sort.Slice(paths, func(i, j int) bool {
		if paths[i].Color != paths[j].Color {
			return paths[i].Color < paths[j].Color
		}
		if paths[i].V1 != paths[j].V1 {
			return paths[i].V1 < paths[j].V1
		}

		return paths[i].V2 < paths[j].V2
	})
}

// bridgeEdgeIndex maps an unordered branch pair to its slot in the
// 15-element triangular bridge-edge array.
func bridgeEdgeIndex(a, b int) int {
	if a > b {
		a, b = b, a
	}

	return b*(b-1)/2 + a
}

// pk6state is one partial K_6 model: the live bag's branch assignment,
// which branches are already fully forgotten, the bridge edges and
// internal paths discovered so far, and the original node IDs merged into
// each branch.
type pk6state struct {
	Forgotten       [6]bool
	Bag2Branch      []int
	BridgeEdges     [15]BridgeEdge
	Paths           []branchPath
	BridgeEndpoints [6]int
	SolidEdges      map[int]bool
	BranchSets      [6][]int
	TotalScore      int
}

func newPK6State() *pk6state {
	s := &pk6state{SolidEdges: map[int]bool{}}
	for i := range s.BridgeEdges {
		s.BridgeEdges[i] = BridgeEdge{EdgeID: -1}
	}
	for i := range s.BridgeEndpoints {
		s.BridgeEndpoints[i] = -1
	}

	return s
}

func (s *pk6state) clone() *pk6state {
	c := &pk6state{Forgotten: s.Forgotten, BridgeEdges: s.BridgeEdges, BridgeEndpoints: s.BridgeEndpoints, TotalScore: s.TotalScore}
	c.Bag2Branch = append(c.Bag2Branch, s.Bag2Branch...)
	c.Paths = append(c.Paths, s.Paths...)
	c.SolidEdges = make(map[int]bool, len(s.SolidEdges))
	for id := range s.SolidEdges {
		c.SolidEdges[id] = true
	}
	for i, b := range s.BranchSets {
		c.BranchSets[i] = append([]int{}, b...)
	}

	return c
}

func (s *pk6state) getBridgeEdge(a, b int) BridgeEdge {
	return s.BridgeEdges[bridgeEdgeIndex(a, b)]
}

func (s *pk6state) setBridgeEdge(a, b, id int, solid bool) {
	s.BridgeEdges[bridgeEdgeIndex(a, b)] = BridgeEdge{EdgeID: id, Solid: solid}
	if solid {
		s.SolidEdges[id] = true
	}
}

// addBridgeEndpoint resolves, for branch a's paths toward branch b, the
// end anchored at bag position v. Returns false if resolving it would
// leave more than one still-live path of that color once both its ends
// are (or become) resolved.
func (s *pk6state) addBridgeEndpoint(a, b, v int) bool {
	ok := true
	for i := range s.Paths {
		bp := &s.Paths[i]
		if bp.Branch() != a {
			continue
		}
		if bp.U1() == b && bp.V1 == v {
			bp.V1 = -1
			if bp.V2 == -1 && s.countPathsByColor(a, b, bp.U2()) > 1 {
				ok = false
			}
		}
		if bp.U2() == b && bp.V2 == v {
			bp.V2 = -1
			if bp.V1 == -1 && s.countPathsByColor(a, bp.U1(), b) > 1 {
				ok = false
			}
		}
	}

	return ok
}

func (s *pk6state) findPathByEndpoint(a, b, c, v int) int {
	color := params2color(a, b, c)
	for i, bp := range s.Paths {
		if bp.Color == color && (bp.V1 == v || bp.V2 == v) {
			return i
		}
	}

	return -1
}

func (s *pk6state) countPathsByColor(a, b, c int) int {
	color := params2color(a, b, c)
	cnt := 0
	for _, bp := range s.Paths {
		if bp.Color == color {
			cnt++
		}
	}

	return cnt
}

// tryMergePaths joins the two branch-(a,b,c)-colored paths anchored at bag
// positions u and v, provided each anchor is the path's unresolved outer
// end (not its intended-endpoint end). Mutates s.Paths in place.
func (s *pk6state) tryMergePaths(a, b, c, u, v, id int, solid bool) bool {
	iu := s.findPathByEndpoint(a, b, c, u)
	if iu < 0 {
		return false
	}
	iv := s.findPathByEndpoint(a, b, c, v)
	if iv < 0 || iu == iv {
		return false
	}
	if s.Paths[iu].V1 == u && s.Paths[iv].V1 == v {
		return false
	}
	if s.Paths[iu].V2 == u && s.Paths[iv].V2 == v {
		return false
	}
	if s.Paths[iu].V1 == u {
		iu, iv = iv, iu
		u, v = v, u
	}

	if s.Paths[iu].V1 == -1 && s.Paths[iv].V2 == -1 && s.countPathsByColor(a, b, c) > 2 {
		return false
	}

	s.Paths[iu].V2 = s.Paths[iv].V2
	s.Paths[iu].Solid = s.Paths[iu].Solid || solid || s.Paths[iv].Solid
	s.Paths = append(s.Paths[:iv], s.Paths[iv+1:]...)
	sortPaths(s.Paths)
	if solid {
		s.SolidEdges[id] = true
	}

	return true
}

func (s *pk6state) findFinishedPath(a, b, c int) int {
	color := params2color(a, b, c)
	for i, bp := range s.Paths {
		if bp.Color == color && bp.V1 == -1 && bp.V2 == -1 {
			return i
		}
	}

	return -1
}

func (s *pk6state) isPathFinished(a, b, c int) bool { return s.findFinishedPath(a, b, c) >= 0 }

// checkTriangles verifies every triangle through branch a has at least one
// solid side, among the triangles whose three internal paths are all
// already finished.
func (s *pk6state) checkTriangles(a int) bool {
	for b := 0; b < 5; b++ {
		if a == b {
			continue
		}
		for c := b + 1; c < 6; c++ {
			if a == c {
				continue
			}
			ia := s.findFinishedPath(a, b, c)
			ib := s.findFinishedPath(b, c, a)
			ic := s.findFinishedPath(c, a, b)
			if ia >= 0 && ib >= 0 && ic >= 0 {
				if !(s.Paths[ia].Solid || s.Paths[ib].Solid || s.Paths[ic].Solid ||
					s.getBridgeEdge(a, b).Solid || s.getBridgeEdge(b, c).Solid || s.getBridgeEdge(c, a).Solid) {
					return false
				}
			}
		}
	}

	return true
}

// canonKey identifies a pk6state for dedup purposes, ignoring TotalScore
// (the tie-break field, not part of identity).
func (s *pk6state) canonKey() string {
	var b strings.Builder
	for _, x := range s.Bag2Branch {
		fmt.Fprintf(&b, "%d,", x)
	}
	b.WriteByte('|')
	for _, f := range s.Forgotten {
		if f {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte('|')
	for _, bp := range s.Paths {
		fmt.Fprintf(&b, "%d:%d:%d:%t,", bp.Color, bp.V1, bp.V2, bp.Solid)
	}
	b.WriteByte('|')
	for _, be := range s.BridgeEdges {
		fmt.Fprintf(&b, "%d:%t,", be.EdgeID, be.Solid)
	}
	b.WriteByte('|')
	ids := make([]int, 0, len(s.SolidEdges))
	for id := range s.SolidEdges {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		fmt.Fprintf(&b, "%d,", id)
	}

	return b.String()
}

// isBetter reports whether a scores strictly better than b: lower
// total_score wins (fewer live path fragments relative to branches seen).
func isBetter(a, b *pk6state) bool { return a.TotalScore < b.TotalScore }

func (s *pk6state) toMinor(solid func(edgeID int) bool) Minor {
	edges := make([]BridgeEdge, 0, 15)
	for a := 0; a < 5; a++ {
		for b := a + 1; b < 6; b++ {
			be := s.getBridgeEdge(a, b)
			edges = append(edges, BridgeEdge{EdgeID: be.EdgeID, BrU: a, BrV: b, Solid: be.Solid})
		}
	}
	branches := make([][]int, 6)
	for i, br := range s.BranchSets {
		branches[i] = append([]int{}, br...)
	}

	return Minor{Edges: edges, Branches: branches, ArcsEdges: len(s.SolidEdges)}
}
