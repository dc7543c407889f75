package k6

import (
	"context"
	"sort"

	"github.com/chromatyna/minorfind/graph"
	"github.com/chromatyna/minorfind/pathdecomp"
)

type engine struct {
	g    *graph.Graph
	opts options

	frontier map[string]*pk6state
	found    []Minor
}

func insertInto(frontier map[string]*pk6state, s *pk6state) {
	key := s.canonKey()
	if existing, ok := frontier[key]; ok {
		if isBetter(s, existing) {
			frontier[key] = s
		}
		return
	}
	frontier[key] = s
}

func (e *engine) dump() []*pk6state {
	out := make([]*pk6state, 0, len(e.frontier))
	for _, s := range e.frontier {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].canonKey() < out[j].canonKey() })
	e.frontier = map[string]*pk6state{}

	return out
}

// Find sweeps pd and returns every K_6 minor model of g.
func Find(g *graph.Graph, pd *pathdecomp.PathDecomp, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	eng := &engine{g: g, opts: o, frontier: map[string]*pk6state{}}
	insertInto(eng.frontier, newPK6State())

	bag := pathdecomp.NewBag()

	for i, step := range pd.Steps {
		select {
		case <-o.ctx.Done():
			return nil, context.Cause(o.ctx)
		default:
		}

		switch step.Kind {
		case pathdecomp.IntroduceNode:
			nodeID, err := g.InternNode(step.Name)
			if err != nil {
				return nil, err
			}
			eng.introduceNode(nodeID)
			if err := bag.Step(step); err != nil {
				return nil, err
			}
		case pathdecomp.IntroduceEdge:
			uName, vName := bag.At(step.U), bag.At(step.V)
			edgeID, err := g.AddEdge(uName, vName, step.P, step.Q)
			if err != nil {
				return nil, err
			}
			eng.introduceEdge(step.U, step.V, edgeID)
			if err := bag.Step(step); err != nil {
				return nil, err
			}
		case pathdecomp.ForgetNode:
			bagID, err := bag.Find(step.Name)
			if err != nil {
				return nil, err
			}
			eng.forgetNode(bagID)
			if err := bag.Step(step); err != nil {
				return nil, err
			}
		}

		if o.maxFrontier > 0 && len(eng.frontier) > o.maxFrontier {
			return nil, ErrFrontierExhausted
		}

		o.logger.Debug("k6 sweep step",
			"step", i, "kind", step.Kind, "frontier_size", len(eng.frontier), "found_so_far", len(eng.found))
	}

	o.logger.Info("k6 sweep finished", "steps", len(pd.Steps), "found", len(eng.found))

	result := &Result{Minors: eng.found}
	if o.strictValidation {
		for _, m := range result.Minors {
			if err := Validate(m); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

func (e *engine) introduceNode(nodeID int) {
	old := e.dump()
	for _, opk := range old {
		nowhere := opk.clone()
		nowhere.Bag2Branch = append(nowhere.Bag2Branch, -1)
		insertInto(e.frontier, nowhere)

		v := len(opk.Bag2Branch)
		offset := opk.TotalScore - len(opk.Paths)

		for a := 0; a < 6; a++ {
			if opk.Forgotten[a] {
				continue
			}
			base := opk.clone()
			base.Bag2Branch = append(base.Bag2Branch, a)
			base.BranchSets[a] = append(base.BranchSets[a], nodeID)

			tmp1 := [][]branchPath{append([]branchPath{}, base.Paths...)}
			for b := 0; b < 5; b++ {
				if b == a {
					continue
				}
				for c := b + 1; c < 6; c++ {
					if c == a {
						continue
					}
					if base.isPathFinished(a, b, c) {
						continue
					}
					tmp2 := make([][]branchPath, 0, len(tmp1)*2)
					for _, vbp := range tmp1 {
						tmp2 = append(tmp2, vbp)
						vbp2 := append(append([]branchPath{}, vbp...), newBranchPath(a, b, c, v, v, false))
						tmp2 = append(tmp2, vbp2)
					}
					tmp1 = tmp2
				}
			}

			for _, vbp := range tmp1 {
				child := base.clone()
				child.Paths = append([]branchPath{}, vbp...)
				sortPaths(child.Paths)
				child.TotalScore = len(child.Paths) + offset
				insertInto(e.frontier, child)
			}
		}
	}
}

func (e *engine) introduceEdge(u, v, edgeID int) {
	old := e.dump()
	for _, opk := range old {
		brU, brV := opk.Bag2Branch[u], opk.Bag2Branch[v]

		if brU == -1 || brV == -1 || brU != brV {
			insertInto(e.frontier, opk.clone())
		}
		if brU == -1 || brV == -1 {
			continue
		}

		solid := e.g.Solid(edgeID)

		if brU != brV && opk.getBridgeEdge(brU, brV).EdgeID < 0 {
			pk := opk.clone()
			pk.setBridgeEdge(brU, brV, edgeID, solid)
			ok := pk.addBridgeEndpoint(brU, brV, u)
			if ok {
				ok = pk.addBridgeEndpoint(brV, brU, v)
			}
			if ok {
				sortPaths(pk.Paths)
				insertInto(e.frontier, pk)
			}
		}

		if brU == brV {
			tmp1 := []*pk6state{opk.clone()}
			for b := 0; b < 5; b++ {
				if b == brU {
					continue
				}
				for c := b + 1; c < 6; c++ {
					if c == brU {
						continue
					}
					tmp2 := make([]*pk6state, 0, len(tmp1)*2)
					for _, p := range tmp1 {
						tmp2 = append(tmp2, p)
						merged := p.clone()
						if merged.tryMergePaths(brU, b, c, u, v, edgeID, solid) {
							tmp2 = append(tmp2, merged)
						}
					}
					tmp1 = tmp2
				}
			}
			for _, p := range tmp1 {
				insertInto(e.frontier, p)
			}
		}
	}
}

func (e *engine) forgetNode(bagID int) {
	old := e.dump()
	for _, opk := range old {
		pk := opk.clone()
		bid := pk.Bag2Branch[bagID]
		pk.Bag2Branch = append(pk.Bag2Branch[:bagID], pk.Bag2Branch[bagID+1:]...)

		if bid == -1 {
			insertInto(e.frontier, pk)
			continue
		}

		ok := true
		for _, bp := range pk.Paths {
			if bp.V1 == bagID || bp.V2 == bagID {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		for u := 0; u < 6 && ok; u++ {
			if u == bid || pk.BridgeEndpoints[u] != bid {
				continue
			}
			mask := (1 << uint(bid)) | (1 << uint(u))
			for _, bp := range pk.Paths {
				if bp.Branch() == bid && (bp.U1() == u || bp.U2() == u) {
					if bp.U1() == u {
						mask |= 1 << uint(bp.U2())
					} else {
						mask |= 1 << uint(bp.U1())
					}
				}
			}
			if mask < (1<<6)-1 {
				ok = false
			}
		}
		if !ok {
			continue
		}

		isBranchForgotten := true
		for _, a := range pk.Bag2Branch {
			if a == bid {
				isBranchForgotten = false
				break
			}
		}
		if isBranchForgotten {
			pk.Forgotten[bid] = true
			cnt := 0
			for _, bp := range pk.Paths {
				if bp.Branch() == bid {
					cnt++
				}
			}
			if cnt < 10 {
				continue
			}
			if !pk.checkTriangles(bid) {
				continue
			}

			allForgotten := true
			for i := 0; i < 6; i++ {
				if !pk.Forgotten[i] {
					allForgotten = false
					break
				}
			}
			if allForgotten {
				e.found = append(e.found, pk.toMinor(e.g.Solid))
				continue
			}
		}

		for u := 0; u < 6; u++ {
			switch {
			case pk.BridgeEndpoints[u] == bid:
				pk.BridgeEndpoints[u] = -1
			case pk.BridgeEndpoints[u] > bid:
				pk.BridgeEndpoints[u]--
			}
		}
		insertInto(e.frontier, pk)
	}
}
