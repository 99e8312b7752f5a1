package solver

import (
	"errors"
	"fmt"
	"time"

	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/coloring"
)

// Sentinel errors for solver configuration. All of them are rejected
// before any search begins; nothing in the search itself returns an
// error.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("solver: graph is nil")

	// ErrNegativeColors is returned for k < 0.
	ErrNegativeColors = errors.New("solver: color count must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrUnknownStrategy is returned for a Strategy outside the three
	// defined values.
	ErrUnknownStrategy = errors.New("solver: unknown strategy")

	// ErrNoTransport is returned when the distributed strategy is
	// requested without a messaging substrate.
	ErrNoTransport = errors.New("solver: distributed strategy requires a transport")
)

// Strategy selects the execution scheme for the exact search.
type Strategy int

const (
	// Serial runs the search single-threaded.
	Serial Strategy = iota
	// Threads races a fixed worker pool over the sub-problems.
	Threads
	// Distributed dispatches sub-problems from a master to workers
	// over a Transport.
	Distributed
)

// String implements fmt.Stringer for log and CLI output.
func (s Strategy) String() string {
	switch s {
	case Serial:
		return "serial"
	case Threads:
		return "threads"
	case Distributed:
		return "distributed"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Result is the outcome of one solve.
//
// On timeout or exhaustion without a solution Success is false and
// Color is nil. Nodes and Backtracks are totals across all workers of
// the solve; under parallel execution they are monotonic but not
// reproducible run to run.
type Result struct {
	Success    bool
	Color      coloring.Assignment
	Nodes      int64
	Backtracks int64
	Seconds    float64
}

// Option configures Solve via functional arguments. An invalid Option
// is recorded and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds the resolved solve parameters.
type Options struct {
	strategy   Strategy
	threads    int
	splitDepth int
	timeout    time.Duration
	transport  Transport

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the solve defaults: Serial strategy, 8
// threads, split depth 5, no deadline, no transport.
func DefaultOptions() Options {
	return Options{
		strategy:   Serial,
		threads:    8,
		splitDepth: 5,
	}
}

// WithStrategy selects the execution strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s < Serial || s > Distributed {
			o.err = fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
			return
		}
		o.strategy = s
	}
}

// WithThreads sets the worker pool size for the Threads strategy.
// t must be positive.
func WithThreads(t int) Option {
	return func(o *Options) {
		if t <= 0 {
			o.err = fmt.Errorf("%w: thread count must be positive (%d)", ErrOptionViolation, t)
			return
		}
		o.threads = t
	}
}

// WithSplitDepth sets the BFS depth at which the search tree is split
// into sub-problems. d must be non-negative; 0 yields a single
// sub-problem covering the whole space.
func WithSplitDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: split depth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.splitDepth = d
	}
}

// WithTimeout sets the wall-clock budget for the whole solve.
// Zero means no deadline; negative values are invalid.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: timeout cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.timeout = d
	}
}

// WithTransport supplies the messaging substrate for the Distributed
// strategy. Solve must be called on every rank with its own endpoint.
func WithTransport(t Transport) Option {
	return func(o *Options) { o.transport = t }
}

// deadlineFrom converts a timeout into an absolute deadline.
// The zero time means no deadline.
func deadlineFrom(start time.Time, timeout time.Duration) time.Time {
	if timeout <= 0 {
		return time.Time{}
	}
	return start.Add(timeout)
}
