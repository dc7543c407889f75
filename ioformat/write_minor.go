package ioformat

import (
	"fmt"
	"io"

	"github.com/chromatyna/minorfind/graph"
	"github.com/chromatyna/minorfind/k6"
	"github.com/chromatyna/minorfind/linear"
	"github.com/chromatyna/minorfind/minor"
)

// WriteLinearMinor writes one L-engine minor record to w, in the
// `MINOR { endpoints=[...] edges=[...] }` text format.
func WriteLinearMinor(w io.Writer, g *graph.Graph, m linear.Minor) error {
	fmt.Fprintln(w, "MINOR {")
	fmt.Fprintln(w, "  endpoints=[")
	for i, seg := range m.Segments {
		startName, err := g.Name(seg.Start)
		if err != nil {
			return err
		}
		endName, err := g.Name(seg.End)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "    segment=%d start=(%d=%s) end=(%d=%s)\n", i, seg.Start, startName, seg.End, endName)
	}
	fmt.Fprintln(w, "  ]")
	fmt.Fprintln(w, "  edges=[")
	for _, ce := range m.Edges {
		e, err := g.Edge(ce.EdgeID)
		if err != nil {
			return err
		}
		leftName, err := g.Name(e.First())
		if err != nil {
			return err
		}
		rightName, err := g.Name(e.Second())
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  from %d to %d, eid=%d, left=(%d=%s), right=(%d=%s)\n",
			ce.FromSegment, ce.ToSegment, ce.EdgeID, e.First(), leftName, e.Second(), rightName)
	}
	fmt.Fprintln(w, "  ]")
	fmt.Fprintln(w, "}")

	return nil
}

// WriteMinor writes one P-engine minor record to w, in the
// `MINOR (jump_edges=...): edge(...) branch(...)` text format.
func WriteMinor(w io.Writer, g *graph.Graph, m minor.Minor) error {
	fmt.Fprintf(w, "MINOR (jump_edges=%d+%d, max_branch_set=%d, sum_branch_sets=%d):",
		m.ArcsEdges, m.ArcsInBranches, m.MaxBranchSet(), m.SumBranchSets())

	for _, e := range m.Edges {
		ge, err := g.Edge(e.EdgeID)
		if err != nil {
			return err
		}
		uName, err := g.Name(ge.U)
		if err != nil {
			return err
		}
		vName, err := g.Name(ge.V)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, " edge(%d %d)=%d=(%s %s)", e.BrU, e.BrV, e.EdgeID, uName, vName)
	}

	for _, br := range m.Branches {
		fmt.Fprint(w, " branch(")
		for i, id := range br {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			name, err := g.Name(id)
			if err != nil {
				return err
			}
			fmt.Fprint(w, name)
		}
		fmt.Fprint(w, ")")
	}
	fmt.Fprintln(w)

	return nil
}

// WriteK6Minor writes one K6-engine minor record to w, in the same
// `MINOR (jump_edges=...): edge(...) branch(...)` text format as WriteMinor;
// the K6-engine always contributes 0 to arcs_in_branches since it never
// merges branch-internal nodes via a separate edge class.
func WriteK6Minor(w io.Writer, g *graph.Graph, m k6.Minor) error {
	fmt.Fprintf(w, "MINOR (jump_edges=%d+0, max_branch_set=%d, sum_branch_sets=%d):",
		m.ArcsEdges, m.MaxBranchSet(), m.SumBranchSets())

	for _, e := range m.Edges {
		ge, err := g.Edge(e.EdgeID)
		if err != nil {
			return err
		}
		uName, err := g.Name(ge.U)
		if err != nil {
			return err
		}
		vName, err := g.Name(ge.V)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, " edge(%d %d)=%d=(%s %s)", e.BrU, e.BrV, e.EdgeID, uName, vName)
	}

	for _, br := range m.Branches {
		fmt.Fprint(w, " branch(")
		for i, id := range br {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			name, err := g.Name(id)
			if err != nil {
				return err
			}
			fmt.Fprint(w, name)
		}
		fmt.Fprint(w, ")")
	}
	fmt.Fprintln(w)

	return nil
}
