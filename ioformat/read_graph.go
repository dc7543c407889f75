package ioformat

import (
	"io"

	"github.com/chromatyna/minorfind/graph"
)

// ReadGraph parses the NODE/EDGE graph file format from r. NODE records
// must appear before any EDGE record referencing the name they intern;
// EDGE records may otherwise appear in any order.
func ReadGraph(r io.Reader) (*graph.Graph, error) {
	var gf graphFile
	if err := graphParser.Parse(r, &gf); err != nil {
		return nil, &FormatError{Msg: err.Error()}
	}

	g := graph.New()
	seen := map[string]bool{}

	for _, rec := range gf.Records {
		switch {
		case rec.Node != nil:
			if _, err := g.InternNode(rec.Node.Name); err != nil {
				return nil, &FormatError{Line: rec.Node.Pos.Line, Msg: err.Error()}
			}
			seen[rec.Node.Name] = true

		case rec.Edge != nil:
			if !seen[rec.Edge.U] {
				return nil, &FormatError{Line: rec.Edge.Pos.Line, Msg: "edge references unknown node " + rec.Edge.U}
			}
			if !seen[rec.Edge.V] {
				return nil, &FormatError{Line: rec.Edge.Pos.Line, Msg: "edge references unknown node " + rec.Edge.V}
			}
			if _, err := g.AddEdge(rec.Edge.U, rec.Edge.V, rec.Edge.P, rec.Edge.Q); err != nil {
				return nil, &FormatError{Line: rec.Edge.Pos.Line, Msg: err.Error()}
			}
		}
	}

	return g, nil
}
