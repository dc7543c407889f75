package k6

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for K6-engine configuration and execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("k6: invalid option supplied")

	// ErrFrontierExhausted is returned when the live state count exceeds a
	// configured WithMaxFrontier bound.
	ErrFrontierExhausted = errors.New("k6: frontier exceeded configured bound")

	// ErrInternalInvariant is returned by Validate when an emitted minor
	// fails to satisfy the K_6 contract.
	ErrInternalInvariant = errors.New("k6: internal invariant violated")
)

// Option configures a Find run via functional arguments.
type Option func(*options)

type options struct {
	maxFrontier      int
	strictValidation bool
	ctx              context.Context
	logger           *slog.Logger
	err              error
}

func defaultOptions() options {
	return options{
		maxFrontier:      0,
		strictValidation: true,
		ctx:              context.Background(),
		logger:           slog.Default(),
	}
}

// WithMaxFrontier bounds the number of live partial states kept between
// decomposition steps; 0 (the default) leaves it unbounded.
func WithMaxFrontier(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxFrontier cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxFrontier = n
	}
}

// WithStrictValidation controls whether Find runs the post-hoc Validate
// pass over every emitted minor, returning ErrInternalInvariant on
// failure (default true) rather than merely trusting the sweep.
func WithStrictValidation(on bool) Option {
	return func(o *options) { o.strictValidation = on }
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

// BridgeEdge is one of the 15 edges connecting a pair of K_6 branches in an
// emitted minor.
type BridgeEdge struct {
	EdgeID   int
	BrU, BrV int // BrU < BrV
	Solid    bool
}

// Minor is one emitted K_6 minor model: always exactly 6 branch-sets and
// 15 bridge edges, one per branch pair.
type Minor struct {
	Edges     []BridgeEdge // always 15, ordered (BrU,BrV) = (0,1)..(4,5)
	Branches  [][]int      // always 6 entries, one original-node-ID list each
	ArcsEdges int          // count of solid edges used anywhere in the model
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
