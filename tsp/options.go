package tsp

import (
	"fmt"

	"github.com/go-logr/logr"
)

// DefaultMinLocations is the selection size below which Solve refuses to
// search. Smaller selections are trivial to plan by hand.
const DefaultMinLocations = 10

// Option configures a search via functional arguments. An invalid Option
// is recorded and surfaced as ErrOptionViolation by Solve, SolveGraph and
// NewSearcher.
type Option func(*Options)

// Options holds search parameters and hooks.
type Options struct {
	// Logger receives V(1) run summaries and V(2) best-tour updates.
	Logger logr.Logger

	// OnCandidate, if non-nil, is called at every Candidate-Complete
	// transition, after the best tour has been updated.
	OnCandidate func(Candidate)

	// MinLocations is the smallest accepted selection (Solve only).
	MinLocations int

	// MaxLocations, if > 0, is the largest accepted selection (Solve only).
	// 0 disables the limit.
	MaxLocations int

	err error
}

// DefaultOptions returns Options with a discarding logger, no hook,
// MinLocations = DefaultMinLocations and no upper limit.
func DefaultOptions() Options {
	return Options{
		Logger:       logr.Discard(),
		MinLocations: DefaultMinLocations,
	}
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnCandidate registers a hook for every completed path.
func WithOnCandidate(fn func(Candidate)) Option {
	return func(o *Options) { o.OnCandidate = fn }
}

// WithMinLocations sets the minimum selection size.
//
//	n >= 0: accept selections of at least n locations
//	n < 0:  invalid option → ErrOptionViolation
func WithMinLocations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MinLocations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MinLocations = n
	}
}

// WithMaxLocations sets the maximum selection size.
//
//	n > 0:  reject selections larger than n
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxLocations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLocations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLocations = n
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.MaxLocations > 0 && o.MinLocations > o.MaxLocations {
		return o, fmt.Errorf("%w: MinLocations %d exceeds MaxLocations %d",
			ErrOptionViolation, o.MinLocations, o.MaxLocations)
	}

	return o, nil
}
