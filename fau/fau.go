package fau

import "github.com/spakin/disjoint"

// FAU is a disjoint-set forest over the integers [0, n), indexed by
// position. The zero value is not usable; build one with Make.
type FAU struct {
	elems []*disjoint.Element
}

// Make returns a FAU with n singleton sets {0}, {1}, ..., {n-1}.
func Make(n int) *FAU {
	f := &FAU{elems: make([]*disjoint.Element, n)}
	for i := range f.elems {
		e := disjoint.NewElement()
		e.Payload = i
		f.elems[i] = e
	}

	return f
}

// Find returns the representative (root) index of x's component.
func (f *FAU) Find(x int) int {
	return f.elems[x].Find().Payload.(int)
}

// Join merges the components containing x and y. It reports whether a
// merge actually happened (false if x and y were already in the same
// component).
func (f *FAU) Join(x, y int) bool {
	if f.Find(x) == f.Find(y) {
		return false
	}
	disjoint.Union(f.elems[x], f.elems[y])

	return true
}
