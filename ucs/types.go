// Package ucs defines core types and configuration options for uniform-cost
// search over implicit graphs.
package ucs

import (
	"errors"
	"io"
	"log/slog"
	"math"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilExpander indicates that New was called without an Expander.
	ErrNilExpander = errors.New("ucs: expander is nil")

	// ErrNilGoal indicates that New was called without a GoalFunc.
	ErrNilGoal = errors.New("ucs: goal predicate is nil")

	// ErrNegativeCost indicates that the Expander produced an edge with a negative cost.
	// Uniform-cost search is only optimal for non-negative edges.
	ErrNegativeCost = errors.New("ucs: negative edge cost encountered")

	// ErrUnsolvable indicates that the frontier was exhausted without popping a goal state.
	// For well-formed inputs this signals malformed input or a move-generation bug.
	ErrUnsolvable = errors.New("ucs: frontier exhausted without reaching a goal")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("ucs: MaxCost must be non-negative")

	// ErrBadLogEvery indicates that LogEvery was set to a negative value.
	ErrBadLogEvery = errors.New("ucs: LogEvery must be non-negative")
)

// Phase is the state of one search invocation.
type Phase int

const (
	// Initialized means the engine was built (or reset) and has not popped anything yet.
	Initialized Phase = iota
	// Running means the main loop is popping and expanding states.
	Running
	// Solved means a goal state was popped; its cost is final.
	Solved
	// Exhausted means the frontier emptied without reaching a goal.
	Exhausted
)

// String returns the lower-case name of the phase.
func (p Phase) String() string {
	switch p {
	case Initialized:
		return "initialized"
	case Running:
		return "running"
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Edge is one outgoing transition of a state: the successor and the
// incremental cost of reaching it.
type Edge[S comparable] struct {
	To   S     // successor state
	Cost int64 // non-negative step cost
}

// Expander lists every legal successor of a state with its step cost.
// It must be a pure function of its argument.
type Expander[S comparable] func(S) []Edge[S]

// GoalFunc reports whether a state is a goal.
type GoalFunc[S comparable] func(S) bool

// Stats counts the work performed by the last Run.
type Stats struct {
	Popped      int // entries removed from the frontier, stale ones included
	Stale       int // popped entries skipped because a cheaper cost was already known
	Expanded    int // states handed to the Expander
	Pushed      int // entries added to the frontier, the start state included
	Improved    int // relaxations that lowered an already-known best cost
	MaxFrontier int // largest frontier size observed
}

// Options configures the behavior of the search engine.
//
// MaxCost  – candidates with a cumulative cost above this cap are never pushed.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// OnPop    – optional hook called with the cost of every non-stale popped entry.
// Logger   – destination of progress logs. Default discards everything.
// LogEvery – log a progress line every N expansions. 0 disables progress lines.
type Options struct {
	MaxCost  int64
	OnPop    func(cost int64)
	Logger   *slog.Logger
	LogEvery int
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithMaxCost bounds the cumulative cost explored by the search.
// A search whose cheapest goal lies beyond the cap ends with ErrUnsolvable.
// Panics on a negative value.
func WithMaxCost(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxCost.Error())
	}
	return func(o *Options) {
		o.MaxCost = max
	}
}

// WithOnPop registers a hook invoked with the cost of every settled (non-stale) pop.
// A nil hook is ignored.
func WithOnPop(fn func(cost int64)) Option {
	return func(o *Options) {
		o.OnPop = fn
	}
}

// WithLogger sets the structured logger used for lifecycle and progress records.
// A nil logger keeps the default (discard).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithLogEvery emits a debug progress record every n expansions.
// Panics on a negative value; zero disables progress records.
func WithLogEvery(n int) Option {
	if n < 0 {
		panic(ErrBadLogEvery.Error())
	}
	return func(o *Options) {
		o.LogEvery = n
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//
//   - MaxCost:  math.MaxInt64 (no cap).
//   - OnPop:    nil.
//   - Logger:   a logger that discards every record.
//   - LogEvery: 0 (no progress records).
func DefaultOptions() Options {
	return Options{
		MaxCost:  math.MaxInt64,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		LogEvery: 0,
	}
}
