package minor

import (
	"context"
	"fmt"
	"sort"

	"github.com/chromatyna/minorfind/graph"
	"github.com/chromatyna/minorfind/pathdecomp"
)

type engine struct {
	g    *graph.Graph
	opts options

	frontier map[string]*pstate
	found    []Minor
}

func insertInto(frontier map[string]*pstate, s *pstate) {
	key := s.canonKey()
	if existing, ok := frontier[key]; ok {
		if isBetter(s, existing) {
			frontier[key] = s
		}
		return
	}
	frontier[key] = s
}

// dump returns the current frontier's states, sorted for deterministic
// iteration, and clears the frontier so the caller can rebuild it.
func (e *engine) dump() []*pstate {
	out := make([]*pstate, 0, len(e.frontier))
	for _, s := range e.frontier {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].canonKey() < out[j].canonKey() })
	e.frontier = map[string]*pstate{}

	return out
}

// Find sweeps pd and returns every minor model of g admitted by the
// configured size, degree, and cost bounds.
func Find(g *graph.Graph, pd *pathdecomp.PathDecomp, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	eng := &engine{g: g, opts: o, frontier: map[string]*pstate{}}
	insertInto(eng.frontier, &pstate{})

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
			eng.introduceEdge(step.U, step.V, edgeID, step.Q)
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

		o.logger.Debug("minor sweep step",
			"step", i, "kind", step.Kind, "frontier_size", len(eng.frontier), "found_so_far", len(eng.found))

		if o.maxFrontier > 0 && len(eng.frontier) > o.maxFrontier {
			return nil, fmt.Errorf("%w: %d states at step %d (bound %d)", ErrFrontierExhausted, len(eng.frontier), i, o.maxFrontier)
		}
	}

	o.logger.Info("minor sweep finished", "steps", len(pd.Steps), "found", len(eng.found))

	if o.strictValidation {
		for i := range eng.found {
			if err := Validate(g, eng.found[i], o.minN, o.maxN, o.maxNonedges, o.maxCost); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInternalInvariant, err)
			}
		}
	}

	return &Result{Minors: eng.found}, nil
}

func (e *engine) introduceNode(nodeID int) {
	old := e.dump()
	for _, opm := range old {
		nowhere := opm.clone()
		nowhere.bag2branch = append(nowhere.bag2branch, -1)
		insertInto(e.frontier, nowhere)

		newBranch := opm.clone()
		newBranch.bag2branch = append(newBranch.bag2branch, newBranch.n)
		newBranch.branches = append(newBranch.branches, []int{nodeID})
		newBranch.n++
		newBranch.remapToBag()
		insertInto(e.frontier, newBranch)
	}
}

func (e *engine) introduceEdge(u, v, edgeID, q int) {
	old := e.dump()
	for _, opm := range old {
		insertInto(e.frontier, opm) // ignore the edge

		if opm.bag2branch[u] == -1 || opm.bag2branch[v] == -1 || opm.bag2branch[u] == opm.bag2branch[v] {
			continue
		}
		brU, brV := opm.bag2branch[u], opm.bag2branch[v]
		if brU > brV {
			brU, brV = brV, brU
		}
		if opm.hasEdge(brU, brV) {
			continue
		}

		connect := opm.clone()
		connect.addEdge(brU, brV, edgeID)
		if q != 1 {
			connect.arcsEdges++
		}
		if len(connect.g) <= e.opts.maxCost {
			insertInto(e.frontier, connect)
		}

		merged := opm.clone()
		for i, x := range merged.bag2branch {
			switch {
			case x == brV:
				merged.bag2branch[i] = brU
			case x > brV:
				merged.bag2branch[i] = x - 1
			}
		}
		for i := range merged.g {
			me := &merged.g[i]
			switch {
			case me.BrU == brV:
				me.BrU = brU
			case me.BrU > brV:
				me.BrU--
			}
			switch {
			case me.BrV == brV:
				me.BrV = brU
			case me.BrV > brV:
				me.BrV--
			}
			if me.BrU > me.BrV {
				me.BrU, me.BrV = me.BrV, me.BrU
			}
		}
		sortGraph(merged.g)

		repeated := false
		for i := 1; i < len(merged.g); i++ {
			if merged.g[i].BrU == merged.g[i-1].BrU && merged.g[i].BrV == merged.g[i-1].BrV {
				repeated = true
				break
			}
		}
		if repeated {
			continue
		}

		merged.branches[brU] = append(merged.branches[brU], merged.branches[brV]...)
		merged.branches = append(merged.branches[:brV], merged.branches[brV+1:]...)
		merged.n--
		merged.remapToBag()
		if q != 1 {
			merged.arcsInBranches++
		}
		if len(merged.g) <= e.opts.maxCost {
			if e.opts.fullCanonicalization {
				canonizeFull(merged)
			}
			insertInto(e.frontier, merged)
		}
	}
}

func (e *engine) forgetNode(bagID int) {
	old := e.dump()
	for _, opm := range old {
		pm := opm.clone()
		bid := pm.bag2branch[bagID]
		pm.bag2branch = append(pm.bag2branch[:bagID], pm.bag2branch[bagID+1:]...)

		if bid == -1 {
			insertInto(e.frontier, pm)
			continue
		}

		bidPresent := false
		for _, x := range pm.bag2branch {
			if x == bid {
				bidPresent = true
				break
			}
		}

		bidDegree := 0
		if !bidPresent && e.opts.minDeg > 0 {
			for _, me := range pm.g {
				if me.BrU == bid || me.BrV == bid {
					bidDegree++
				}
			}
		}

		pm.remapToBag()
		n := pm.getN()

		forgottenEdges, halfForgottenEdges := 0, 0
		if !bidPresent {
			threshold := pm.n - n
			for _, me := range pm.g {
				switch {
				case me.BrU >= threshold && me.BrV >= threshold:
					forgottenEdges++
				case me.BrU >= threshold || me.BrV >= threshold:
					halfForgottenEdges++
				}
			}
		}
		sureNonedges := (n*(n-1)/2 - forgottenEdges) +
			maxInt(0, n*maxInt(0, e.opts.minN-n)-halfForgottenEdges)

		if n > e.opts.maxN || !(bidPresent || (bidDegree >= e.opts.minDeg && sureNonedges <= e.opts.maxNonedges)) {
			continue
		}

		if pm.isConnectedToBag() {
			if n < e.opts.maxN {
				insertInto(e.frontier, pm)
			}
		} else if !pm.containsBagVertices() && n >= e.opts.minN {
			e.found = append(e.found, pm.toMinor(e.g.Solid))
		}
	}
}
