package ioformat

import (
	"io"

	"github.com/chromatyna/minorfind/pathdecomp"
)

// ReadPathDecomp parses the INTRODUCE_NODE/INTRODUCE_EDGE/FORGET_NODE
// path-decomposition file format from r, replaying it against a Bag as it
// goes so that a FORGET_NODE on an absent name or an out-of-range bag
// position is reported with the offending line. A non-empty bag at
// end-of-stream is also reported, as a FormatError with no line.
func ReadPathDecomp(r io.Reader) (*pathdecomp.PathDecomp, error) {
	var pf pdFile
	if err := pdParser.Parse(r, &pf); err != nil {
		return nil, &FormatError{Msg: err.Error()}
	}

	pd := &pathdecomp.PathDecomp{}
	bag := pathdecomp.NewBag()

	for _, rec := range pf.Records {
		var step pathdecomp.Node
		var line int

		switch {
		case rec.IntroduceNode != nil:
			step = pathdecomp.Node{Kind: pathdecomp.IntroduceNode, Name: rec.IntroduceNode.Name}
			line = rec.IntroduceNode.Pos.Line

		case rec.IntroduceEdge != nil:
			e := rec.IntroduceEdge
			if e.U < 0 || e.U >= bag.Size() || e.V < 0 || e.V >= bag.Size() {
				return nil, &FormatError{Line: e.Pos.Line, Msg: "edge position out of bag range"}
			}
			step = pathdecomp.Node{Kind: pathdecomp.IntroduceEdge, U: e.U, V: e.V, P: e.P, Q: e.Q}
			line = e.Pos.Line

		case rec.ForgetNode != nil:
			step = pathdecomp.Node{Kind: pathdecomp.ForgetNode, Name: rec.ForgetNode.Name}
			line = rec.ForgetNode.Pos.Line
		}

		if err := bag.Step(step); err != nil {
			return nil, &FormatError{Line: line, Msg: err.Error()}
		}
		pd.Steps = append(pd.Steps, step)
	}

	if bag.Size() != 0 {
		return nil, &FormatError{Msg: pathdecomp.ErrBagNotEmpty.Error()}
	}

	return pd, nil
}
