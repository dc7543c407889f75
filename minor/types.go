package minor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for P-engine configuration and execution.
var (
	// ErrParameterRange is returned when a size/cost/degree bound is
	// negative.
	ErrParameterRange = errors.New("minor: parameter out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("minor: invalid option supplied")

	// ErrFrontierExhausted is returned when the partial-minor frontier
	// exceeds a configured WithMaxFrontier bound.
	ErrFrontierExhausted = errors.New("minor: frontier exceeded configured bound")

	// ErrInternalInvariant is returned when a found minor fails the
	// post-sweep structural check (see Validate). It signals a bug in the
	// engine, not a malformed input.
	ErrInternalInvariant = errors.New("minor: internal invariant violated")
)

// Option configures a Find run via functional arguments.
type Option func(*options)

type options struct {
	maxCost              int
	maxN                 int
	minN                 int
	maxNonedges          int
	minDeg               int
	fullCanonicalization bool
	maxFrontier          int
	strictValidation     bool
	ctx                  context.Context
	logger               *slog.Logger
	err                  error
}

func defaultOptions() options {
	return options{
		maxCost:          1 << 30,
		maxN:             1 << 30,
		minN:             0,
		maxNonedges:      1 << 30,
		minDeg:           0,
		strictValidation: true,
		ctx:              context.Background(),
		logger:           slog.Default(),
	}
}

func nonNegative(name string, n int, set func(*options, int)) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: %s cannot be negative (%d)", ErrParameterRange, name, n)
			return
		}
		set(o, n)
	}
}

// WithMaxCost bounds the number of inter-branch edges recorded in a minor
// model's graph. Edges consumed by merging two branches are not counted.
func WithMaxCost(n int) Option {
	return nonNegative("MaxCost", n, func(o *options, n int) { o.maxCost = n })
}

// WithMaxN bounds the number of branch-sets a found minor may have.
func WithMaxN(n int) Option {
	return nonNegative("MaxN", n, func(o *options, n int) { o.maxN = n })
}

// WithMinN bounds below the number of branch-sets a found minor may have.
func WithMinN(n int) Option {
	return nonNegative("MinN", n, func(o *options, n int) { o.minN = n })
}

// WithMaxNonedges bounds the number of branch pairs a found minor is
// allowed to leave unconnected.
func WithMaxNonedges(n int) Option {
	return nonNegative("MaxNonedges", n, func(o *options, n int) { o.maxNonedges = n })
}

// WithMinDeg bounds below the minimum degree a forgotten branch must reach
// (in the partial minor graph) before it may leave the live frontier.
func WithMinDeg(n int) Option {
	return nonNegative("MinDeg", n, func(o *options, n int) { o.minDeg = n })
}

// WithFullCanonicalization enables the exhaustive canonicalization fallback
// over forgotten-branch index permutations: after a branch merge, search
// every relabeling of the already-forgotten branches for the
// lexicographically smallest connectivity graph. This strictly increases
// dedup power (and so can shrink the frontier) at a factorial cost in the
// number of forgotten branches; the default (false) skips it, matching the
// reference engine's default of leaving this search disabled.
func WithFullCanonicalization(on bool) Option {
	return func(o *options) { o.fullCanonicalization = on }
}

// WithMaxFrontier bounds the number of live partial-minor states kept
// between sweep steps. Zero (the default) means unbounded. Exceeding the
// bound fails Find with ErrFrontierExhausted rather than exhausting memory.
func WithMaxFrontier(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxFrontier cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxFrontier = n
	}
}

// WithStrictValidation toggles the post-sweep structural check run against
// every found minor. It defaults to on; turning it off skips re-verifying
// results the sweep already guarantees, trading safety for speed.
func WithStrictValidation(strict bool) Option {
	return func(o *options) { o.strictValidation = strict }
}

// WithContext sets a context polled once per path-decomposition step.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sets the structured logger used for per-step progress.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Edge is one inter-branch connection in a minor model.
type Edge struct {
	EdgeID   int
	BrU, BrV int // BrU < BrV
	Solid    bool
}

// Minor is one emitted minor model: the inter-branch edges found and the
// original node IDs merged into each branch-set, plus the non-solid edge
// counts used for scoring (jump_edges = ArcsEdges + ArcsInBranches).
type Minor struct {
	Edges          []Edge
	Branches       [][]int
	ArcsEdges      int
	ArcsInBranches int
}

// MaxBranchSet returns the size of the largest branch-set.
func (m Minor) MaxBranchSet() int {
	res := 0
	for _, b := range m.Branches {
		if len(b) > res {
			res = len(b)
		}
	}

	return res
}

// SumBranchSets returns the total number of original nodes across all
// branch-sets.
func (m Minor) SumBranchSets() int {
	res := 0
	for _, b := range m.Branches {
		res += len(b)
	}

	return res
}

// Result is the full output of a Find run.
type Result struct {
	Minors []Minor
}
