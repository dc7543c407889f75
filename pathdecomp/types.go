package pathdecomp

import "errors"

// Sentinel errors for bag replay.
var (
	// ErrNameNotInBag is returned by Bag.Find and by ForgetNode replay
	// when the referenced name is not currently live.
	ErrNameNotInBag = errors.New("pathdecomp: name not in bag")

	// ErrBagNotEmpty is returned by PathDecomp.Width when the bag is
	// non-empty after the last step, which the format forbids.
	ErrBagNotEmpty = errors.New("pathdecomp: bag not empty at end of stream")
)

// Kind discriminates the three step types a path decomposition is built
// from.
type Kind int

const (
	// IntroduceNode appends a new live vertex, named Name, to the bag.
	IntroduceNode Kind = iota
	// IntroduceEdge records an edge between two positions already in the
	// bag; it never changes the bag's contents.
	IntroduceEdge
	// ForgetNode removes a named vertex from the bag; it must currently
	// be present.
	ForgetNode
)

// Node is one step of a path decomposition.
//
// For IntroduceNode and ForgetNode, Name is the node's external name.
// For IntroduceEdge, U and V are bag positions (0-based, referring to the
// bag as it stood immediately before this step) and P, Q are the edge's
// two integer weights.
type Node struct {
	Kind Kind
	Name string
	U, V int
	P, Q int
}

// PathDecomp is the full ordered sequence of decomposition steps.
type PathDecomp struct {
	Steps []Node
}

// Bag replays a PathDecomp's steps, tracking which names are currently
// live and at what position. Bag is not safe for concurrent use; each
// engine sweep owns one.
type Bag struct {
	live []string
}

// NewBag returns an empty Bag.
func NewBag() *Bag {
	return &Bag{}
}

// Size returns the number of names currently live.
func (b *Bag) Size() int { return len(b.live) }

// At returns the name at bag position i.
func (b *Bag) At(i int) string { return b.live[i] }

// Find returns the bag position of name, or ErrNameNotInBag if absent.
func (b *Bag) Find(name string) (int, error) {
	for i, n := range b.live {
		if n == name {
			return i, nil
		}
	}

	return 0, ErrNameNotInBag
}

// Step advances the bag by one decomposition step. IntroduceNode appends;
// ForgetNode removes by name (returning ErrNameNotInBag if the name is
// absent); IntroduceEdge leaves the bag unchanged.
func (b *Bag) Step(n Node) error {
	switch n.Kind {
	case IntroduceNode:
		b.live = append(b.live, n.Name)
	case ForgetNode:
		i, err := b.Find(n.Name)
		if err != nil {
			return err
		}
		b.live = append(b.live[:i], b.live[i+1:]...)
	case IntroduceEdge:
		// no-op for the bag
	}

	return nil
}

// Width replays pd from an empty bag and returns the maximum bag size
// observed, failing if the bag is non-empty once the stream is exhausted.
func (pd *PathDecomp) Width() (int, error) {
	bag := NewBag()
	width := 0
	for _, n := range pd.Steps {
		if err := bag.Step(n); err != nil {
			return 0, err
		}
		if bag.Size() > width {
			width = bag.Size()
		}
	}
	if bag.Size() != 0 {
		return 0, ErrBagNotEmpty
	}

	return width, nil
}
