package k6

import "fmt"

// Validate checks the structural shape of an emitted minor: exactly 6
// branch-sets and exactly 15 bridge edges, one per branch pair, each with a
// recorded (non-negative) edge ID. The edge IDs are not looked up in a
// graph. Per-triangle solidness is already
// enforced during the sweep (checkTriangles) and is not re-derivable from
// Minor alone, so it is not re-checked here.
func Validate(m Minor) error {
	if len(m.Branches) != 6 {
		return fmt.Errorf("%w: expected 6 branch-sets, got %d", ErrInternalInvariant, len(m.Branches))
	}
	if len(m.Edges) != 15 {
		return fmt.Errorf("%w: expected 15 bridge edges, got %d", ErrInternalInvariant, len(m.Edges))
	}

	seen := map[[2]int]BridgeEdge{}
	for _, e := range m.Edges {
		if e.BrU >= e.BrV {
			return fmt.Errorf("%w: bridge edge (%d,%d) not in canonical order", ErrInternalInvariant, e.BrU, e.BrV)
		}
		if e.EdgeID < 0 {
			return fmt.Errorf("%w: bridge edge (%d,%d) has no realizing edge", ErrInternalInvariant, e.BrU, e.BrV)
		}
		key := [2]int{e.BrU, e.BrV}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate bridge edge (%d,%d)", ErrInternalInvariant, e.BrU, e.BrV)
		}
		seen[key] = e
	}
	for a := 0; a < 5; a++ {
		for b := a + 1; b < 6; b++ {
			if _, ok := seen[[2]int{a, b}]; !ok {
				return fmt.Errorf("%w: missing bridge edge (%d,%d)", ErrInternalInvariant, a, b)
			}
		}
	}

	return nil
}
