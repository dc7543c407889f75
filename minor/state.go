package minor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chromatyna/minorfind/fau"
)

// branchEdge is one inter-branch connection inside a partial minor: BrU <
// BrV always holds. Two branchEdges that agree on (BrU, BrV) are considered
// equal for dedup and repeated-edge purposes regardless of EdgeID — only
// one edge may ever connect a given branch pair, but which original edge
// realizes it does not distinguish otherwise-identical branch structures.
type branchEdge struct {
	EdgeID   int
	BrU, BrV int
}

// pstate is one partial minor: the live bag's branch assignment, the
// inter-branch connectivity discovered so far, and the original node IDs
// merged into each branch.
type pstate struct {
	n              int
	bag2branch     []int
	g              []branchEdge
	branches       [][]int
	arcsEdges      int
	arcsInBranches int
}

func (s *pstate) clone() *pstate {
	c := &pstate{n: s.n, arcsEdges: s.arcsEdges, arcsInBranches: s.arcsInBranches}
	c.bag2branch = append(c.bag2branch, s.bag2branch...)
	c.g = append(c.g, s.g...)
	c.branches = make([][]int, len(s.branches))
	for i, b := range s.branches {
		c.branches[i] = append([]int{}, b...)
	}

	return c
}

// canonKey identifies a pstate for dedup purposes: branch count, bag
// assignment, and connectivity shape (branch pairs joined), ignoring which
// specific edge realizes each join.
func (s *pstate) canonKey() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|", s.n)
	for _, x := range s.bag2branch {
		fmt.Fprintf(&b, "%d,", x)
	}
	b.WriteByte('|')
	for _, e := range s.g {
		fmt.Fprintf(&b, "%d-%d,", e.BrU, e.BrV)
	}

	return b.String()
}

func (s *pstate) jumpEdges() int { return s.arcsEdges + s.arcsInBranches }

func (s *pstate) maxBranchSet() int {
	res := 0
	for _, br := range s.branches {
		if len(br) > res {
			res = len(br)
		}
	}

	return res
}

func (s *pstate) sumBranchSets() int {
	res := 0
	for _, br := range s.branches {
		res += len(br)
	}

	return res
}

// isBetter reports whether a scores strictly better than b under
// (jump_edges, max_branch_set, sum_branch_sets), lexicographically smaller.
func isBetter(a, b *pstate) bool {
	if a.jumpEdges() != b.jumpEdges() {
		return a.jumpEdges() < b.jumpEdges()
	}
	if a.maxBranchSet() != b.maxBranchSet() {
		return a.maxBranchSet() < b.maxBranchSet()
	}

	return a.sumBranchSets() < b.sumBranchSets()
}

func sortGraph(g []branchEdge) {
	sort.Slice(g, func(i, j int) bool {
		if g[i].BrU != g[j].BrU {
			return g[i].BrU < g[j].BrU
		}

		return g[i].BrV < g[j].BrV
	})
}

func (s *pstate) hasEdge(u, v int) bool {
	for _, e := range s.g {
		if (e.BrU == u && e.BrV == v) || (e.BrU == v && e.BrV == u) {
			return true
		}
	}

	return false
}

func (s *pstate) addEdge(u, v, edgeID int) {
	if u > v {
		u, v = v, u
	}
	s.g = append(s.g, branchEdge{EdgeID: edgeID, BrU: u, BrV: v})
	sortGraph(s.g)
}

// remap relabels every branch reference through perm (perm[old] = new).
func (s *pstate) remap(perm []int) {
	for i, bid := range s.bag2branch {
		if bid >= 0 {
			s.bag2branch[i] = perm[bid]
		}
	}
	for i := range s.g {
		s.g[i].BrU = perm[s.g[i].BrU]
		s.g[i].BrV = perm[s.g[i].BrV]
		if s.g[i].BrU > s.g[i].BrV {
			s.g[i].BrU, s.g[i].BrV = s.g[i].BrV, s.g[i].BrU
		}
	}
	sortGraph(s.g)

	remapped := make([][]int, len(s.branches))
	for i, br := range s.branches {
		remapped[perm[i]] = br
	}
	s.branches = remapped
}

// remapToBag relabels branches so those present in the bag occupy the
// lowest indices, in order of first appearance, with forgotten branches
// following in their original relative order.
func (s *pstate) remapToBag() {
	perm := make([]int, s.n)
	for i := range perm {
		perm[i] = -1
	}
	cnt := 0
	for _, bid := range s.bag2branch {
		if bid >= 0 && perm[bid] == -1 {
			perm[bid] = cnt
			cnt++
		}
	}
	for i := 0; i < s.n; i++ {
		if perm[i] == -1 {
			perm[i] = cnt
			cnt++
		}
	}
	s.remap(perm)
}

// getN returns n_forgotten: the number of branches that do not appear
// anywhere in the current bag. Valid only after remapToBag, which packs
// in-bag branches into the low end of the index space.
func (s *pstate) getN() int {
	m := -1
	for _, bid := range s.bag2branch {
		if bid > m {
			m = bid
		}
	}

	return s.n - m - 1
}

func (s *pstate) containsBagVertices() bool {
	for _, bid := range s.bag2branch {
		if bid != -1 {
			return true
		}
	}

	return false
}

// isConnectedToBag reports whether every branch shares a union-find
// component (over the chosen inter-branch edges) with some branch still
// present in the bag.
func (s *pstate) isConnectedToBag() bool {
	f := fau.Make(s.n)
	for _, e := range s.g {
		f.Join(e.BrU, e.BrV)
	}

	bagComponents := map[int]bool{}
	for _, bid := range s.bag2branch {
		if bid >= 0 {
			bagComponents[f.Find(bid)] = true
		}
	}
	for i := 0; i < s.n; i++ {
		if !bagComponents[f.Find(i)] {
			return false
		}
	}

	return true
}

func (s *pstate) toMinor(solid func(edgeID int) bool) Minor {
	edges := make([]Edge, len(s.g))
	for i, e := range s.g {
		edges[i] = Edge{EdgeID: e.EdgeID, BrU: e.BrU, BrV: e.BrV, Solid: solid(e.EdgeID)}
	}
	branches := make([][]int, len(s.branches))
	for i, br := range s.branches {
		branches[i] = append([]int{}, br...)
	}

	return Minor{Edges: edges, Branches: branches, ArcsEdges: s.arcsEdges, ArcsInBranches: s.arcsInBranches}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// permuteSuffix enumerates every permutation of indices [from, n) in
// lexicographic order, starting from the identity, calling fn for each.
func permuteSuffix(n, from int, fn func(perm []int)) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	fn(perm)

	suffix := perm[from:]
	for nextPermutation(suffix) {
		fn(perm)
	}
}

// nextPermutation rearranges a into its next lexicographic permutation,
// reporting false (and leaving a sorted ascending) once the last
// permutation has been reached.
func nextPermutation(a []int) bool {
	n := len(a)
	if n < 2 {
		return false
	}

	i := n - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		sort.Ints(a)
		return false
	}

	j := n - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]

	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}

	return true
}

// graphLess reports whether a's connectivity shape sorts strictly before
// b's: shorter first, then lexicographic by (BrU, BrV) pairs.
func graphLess(a, b []branchEdge) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i].BrU != b[i].BrU {
			return a[i].BrU < b[i].BrU
		}
		if a[i].BrV != b[i].BrV {
			return a[i].BrV < b[i].BrV
		}
	}

	return false
}

// canonizeFull searches every relabeling of s's already-forgotten branches
// (those past the in-bag prefix) for the one producing the
// lexicographically smallest connectivity shape, replacing s's contents in
// place if a strictly smaller one is found. The in-bag prefix of
// bag2branch is unaffected by any such relabeling, so only the graph and
// the order of the forgotten branch-sets change.
func canonizeFull(s *pstate) {
	nInBag := s.n - s.getN()
	best := s.g

	permuteSuffix(s.n, nInBag, func(perm []int) {
		tmp := s.clone()
		tmp.remap(perm)
		if graphLess(tmp.g, best) {
			best = tmp.g
			s.bag2branch = tmp.bag2branch
			s.g = tmp.g
			s.branches = tmp.branches
		}
	})
}
