package linear

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for L-engine configuration and execution.
var (
	// ErrParameterRange is returned when CliqueSize falls outside [3, 8].
	ErrParameterRange = errors.New("linear: parameter out of range")

	// ErrFrontierExhausted is returned when the partial-minor frontier
	// exceeds a configured WithMaxFrontier bound.
	ErrFrontierExhausted = errors.New("linear: frontier exceeded configured bound")

	// ErrInternalInvariant is returned when a found minor fails the
	// post-sweep structural check (see Validate). It signals a bug in the
	// engine, not a malformed input.
	ErrInternalInvariant = errors.New("linear: internal invariant violated")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("linear: invalid option supplied")
)

// Option configures a Find run via functional arguments. An invalid Option
// (e.g. a clique size out of range) is recorded internally and surfaced as
// ErrParameterRange or ErrOptionViolation when Find runs.
type Option func(*options)

type options struct {
	cliqueSize           int
	allowCommonEndpoints bool
	strictValidation     bool
	maxFrontier          int
	ctx                  context.Context
	logger               *slog.Logger
	err                  error
}

func defaultOptions() options {
	return options{
		cliqueSize:       6,
		strictValidation: true,
		ctx:              context.Background(),
		logger:           slog.Default(),
	}
}

// WithCliqueSize sets k, the size of the K_k minor to search for. Valid
// range is [3, 8]; anything else is rejected with ErrParameterRange when
// Find runs.
func WithCliqueSize(k int) Option {
	return func(o *options) { o.cliqueSize = k }
}

// WithAllowCommonEndpoints relaxes the rule that no two chosen long-range
// edges may share an endpoint vertex.
func WithAllowCommonEndpoints(allow bool) Option {
	return func(o *options) { o.allowCommonEndpoints = allow }
}

// WithStrictValidation toggles the post-sweep structural check run against
// every found minor. It defaults to on; turning it off skips re-verifying
// results the sweep already guarantees, trading safety for speed.
func WithStrictValidation(strict bool) Option {
	return func(o *options) { o.strictValidation = strict }
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

// WithContext sets a context polled once per swept vertex for cooperative
// cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sets the structured logger used for per-step progress. A nil
// logger is ignored; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Segment is one consecutive, non-empty run of main-strand vertices in a
// found minor, identified by its inclusive vertex-ID bounds.
type Segment struct {
	Start, End int
}

// ChosenEdge is one long-range edge selected to connect two non-adjacent
// segments of a found minor.
type ChosenEdge struct {
	EdgeID                 int
	FromSegment, ToSegment int
}

// Minor is one linear K_k minor model: k segments partitioning a strand
// prefix, plus the long-range edges connecting them.
type Minor struct {
	Segments []Segment
	Edges    []ChosenEdge
}

// Result is the full output of a Find run.
type Result struct {
	Minors []Minor
}
