package tsp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Theoszt/DAA-DFS-dan-BFS/distance"
)

// Sentinel errors returned by Solve, SolveGraph and NewSearcher.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("tsp: graph is nil")

	// ErrStartNotFound is returned when the start location is not selected.
	ErrStartNotFound = errors.New("tsp: start location not in selection")

	// ErrSelectionTooSmall is returned when fewer locations than the
	// configured minimum are selected.
	ErrSelectionTooSmall = errors.New("tsp: too few locations selected")

	// ErrSelectionTooLarge is returned when more locations than the
	// configured maximum are selected.
	ErrSelectionTooLarge = errors.New("tsp: too many locations selected")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tsp: invalid option supplied")
)

// Algorithm selects a search strategy.
type Algorithm int

const (
	// DFS is the exhaustive backtracking depth-first search.
	DFS Algorithm = iota
	// BFS is the single-visit breadth-first search.
	BFS
)

// String returns "dfs" or "bfs".
func (a Algorithm) String() string {
	switch a {
	case DFS:
		return "dfs"
	case BFS:
		return "bfs"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// MarshalText encodes a as its String form.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a != DFS && a != BFS {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText accepts the forms understood by ParseAlgorithm.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// ParseAlgorithm maps "bfs"/"breadth-first" and "dfs"/"depth-first"
// (any case) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs", "depth-first":
		return DFS, nil
	case "bfs", "breadth-first":
		return BFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// Counters are diagnostic tallies of one search run. They only ever grow
// during a run. MemoryBytes is the peak of a coarse estimate of the live
// visited markers, path and frontier or stack; it is not a profile.
type Counters struct {
	Operations    int64 `json:"operations"`
	NodesVisited  int64 `json:"nodesVisited"`
	EdgesExamined int64 `json:"edgesExamined"`
	MemoryBytes   int64 `json:"memoryBytes"`
}

func (c *Counters) op()   { c.Operations++ }
func (c *Counters) node() { c.NodesVisited++ }
func (c *Counters) edge() { c.EdgesExamined++ }

// observeMemory raises MemoryBytes to b if b is a new peak.
func (c *Counters) observeMemory(b int64) {
	if b > c.MemoryBytes {
		c.MemoryBytes = b
	}
}

// Result is the outcome of one search run.
type Result struct {
	Algorithm Algorithm `json:"algorithm"`

	// Start is the designated start location.
	Start distance.Location `json:"start"`

	// Tour is the best ordering found, starting with Start. The closing
	// return to Start is implicit.
	Tour []distance.Location `json:"tour"`

	// Cost is TourCost(Tour), or distance.Unreachable.
	Cost distance.Cost `json:"cost"`

	// Locations is the number of locations in the searched graph.
	Locations int `json:"locations"`

	Counters

	// Elapsed is the wall time of the search, stamped by Solve/SolveGraph.
	Elapsed time.Duration `json:"-"`
}

// Route returns the closed tour: Tour followed by Start.
func (r Result) Route() []distance.Location {
	if len(r.Tour) == 0 {
		return nil
	}
	out := make([]distance.Location, 0, len(r.Tour)+1)
	out = append(out, r.Tour...)

	return append(out, r.Start)
}

// Complete reports whether r holds a finite tour over every location.
func (r Result) Complete() bool {
	return len(r.Tour) == r.Locations && r.Locations > 0 && !r.Cost.IsUnreachable()
}

// Candidate describes one Candidate-Complete transition: a path that
// covers every location, just evaluated.
type Candidate struct {
	Path     []distance.Location
	Cost     distance.Cost
	Improved bool     // Path became the new best tour
	Counters Counters // snapshot after evaluation
}

// Searcher is implemented by both traversal strategies.
// Search assumes g is non-nil and start is one of its locations; use
// SolveGraph for validated calls.
type Searcher interface {
	Algorithm() Algorithm
	Search(g *distance.Graph, start distance.Location) Result
}
