package tsp

import (
	"fmt"
	"time"

	"github.com/Theoszt/DAA-DFS-dan-BFS/distance"
)

// NewSearcher returns the Searcher for algo.
// Errors: ErrUnsupportedAlgorithm, ErrOptionViolation.
func NewSearcher(algo Algorithm, opts ...Option) (Searcher, error) {
	switch algo {
	case DFS:
		return NewDepthFirst(opts...)
	case BFS:
		return NewBreadthFirst(opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, algo)
	}
}

// Solve validates a selection from table t, builds its Graph and runs the
// chosen search from start.
//
// Stages:
//  1. options (ErrOptionViolation);
//  2. selection size against MinLocations/MaxLocations
//     (ErrSelectionTooSmall, ErrSelectionTooLarge);
//  3. start membership (ErrStartNotFound);
//  4. distance.Build (distance sentinels);
//  5. search, with Result.Elapsed stamped.
//
// Every rejection happens before any search work is done. Missing
// distances are not errors; check Result.Complete.
func Solve(t *distance.Table, selected []distance.Location, start distance.Location,
	algo Algorithm, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err = validateSelection(selected, start, o); err != nil {
		return Result{}, err
	}
	g, err := distance.Build(t, selected)
	if err != nil {
		return Result{}, err
	}
	if missing := g.MissingPairs(); len(missing) > 0 {
		o.Logger.V(1).Info("selection has missing distances", "pairs", len(missing))
	}

	return SolveGraph(g, start, algo, opts...)
}

// SolveGraph runs the chosen search over an already built graph. It checks
// the graph, start and options but not the selection size policy.
func SolveGraph(g *distance.Graph, start distance.Location, algo Algorithm, opts ...Option) (Result, error) {
	if err := validateStart(g, start); err != nil {
		return Result{}, err
	}
	s, err := NewSearcher(algo, opts...)
	if err != nil {
		return Result{}, err
	}

	began := time.Now()
	res := s.Search(g, start)
	res.Elapsed = time.Since(began)

	return res, nil
}
