package distance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"
)

// Graph is the complete directed graph over a selection of locations.
// Every ordered pair of distinct locations carries a weight; a pair without
// a recorded distance weighs Unreachable. Self pairs carry no weight.
//
// Node IDs in the underlying gonum graph are the canonical indices, i.e.
// positions in the selection passed to Build. A Graph is immutable after
// construction and safe for concurrent readers.
type Graph struct {
	locs  []Location
	index map[Location]int
	g     *simple.WeightedDirectedGraph
}

// Build produces the Graph over selected from the raw table t.
//
// For every ordered pair (A, B), A≠B, the weight is t's A→B distance, or
// Unreachable when the cell is absent or A/B is missing from the table.
// Self-distances recorded in t are ignored. The selection size policy is
// the caller's business; Build accepts any non-empty selection.
//
// Returns ErrEmptyTable for an empty selection, ErrEmptyLocation or
// ErrDuplicateLocation for bad names.
//
// Complexity: O(n²) for n selected locations.
func Build(t *Table, selected []Location) (*Graph, error) {
	if t == nil || len(selected) == 0 {
		return nil, ErrEmptyTable
	}

	return build(selected, func(from, to Location) (float64, bool) {
		return t.Lookup(from, to)
	})
}

// FromMatrix builds a Graph from a square matrix km where km[i][j] is the
// distance names[i]→names[j]. +Inf, NaN and negative entries are treated
// as missing; the diagonal is ignored.
func FromMatrix(names []Location, km [][]float64) (*Graph, error) {
	if len(names) == 0 {
		return nil, ErrEmptyTable
	}
	if len(km) != len(names) {
		return nil, fmt.Errorf("%w: %d names, %d rows", ErrMalformedTable, len(names), len(km))
	}
	for i, row := range km {
		if len(row) != len(names) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedTable, i, len(row), len(names))
		}
	}
	pos := make(map[Location]int, len(names))
	for i, n := range names {
		pos[n] = i
	}

	return build(names, func(from, to Location) (float64, bool) {
		v := km[pos[from]][pos[to]]
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return 0, false
		}

		return v, true
	})
}

func build(selected []Location, lookup func(from, to Location) (float64, bool)) (*Graph, error) {
	index, err := indexNames(selected)
	if err != nil {
		return nil, err
	}

	// Absent edges and self pairs both read back as +Inf.
	g := simple.NewWeightedDirectedGraph(math.Inf(1), math.Inf(1))
	for i := range selected {
		g.AddNode(simple.Node(i))
	}
	for i, from := range selected {
		for j, to := range selected {
			if i == j {
				continue
			}
			km, ok := lookup(from, to)
			if !ok {
				continue
			}
			g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(i), simple.Node(j), km))
		}
	}

	return &Graph{
		locs:  append([]Location(nil), selected...),
		index: index,
		g:     g,
	}, nil
}

// Len returns the number of locations.
func (g *Graph) Len() int { return len(g.locs) }

// Locations returns the locations in canonical order.
func (g *Graph) Locations() []Location { return append([]Location(nil), g.locs...) }

// Location returns the location with canonical index i.
func (g *Graph) Location(i int) Location { return g.locs[i] }

// Index returns the canonical index of loc.
func (g *Graph) Index(loc Location) (int, bool) {
	i, ok := g.index[loc]

	return i, ok
}

// Has reports whether loc is one of the graph's locations.
func (g *Graph) Has(loc Location) bool {
	_, ok := g.index[loc]

	return ok
}

// Weight returns the from→to weight. Unknown locations and self pairs
// weigh Unreachable.
func (g *Graph) Weight(from, to Location) Cost {
	i, ok := g.index[from]
	if !ok {
		return Unreachable
	}
	j, ok := g.index[to]
	if !ok {
		return Unreachable
	}

	return g.WeightAt(i, j)
}

// WeightAt returns the weight between canonical indices i and j.
//
// Complexity: O(1).
func (g *Graph) WeightAt(i, j int) Cost {
	w, _ := g.g.Weight(int64(i), int64(j))

	return Finite(w)
}

// Neighbors returns every other location in canonical order. The graph is
// complete, so unreachable pairs are still neighbours; their weight says so.
func (g *Graph) Neighbors(loc Location) []Location {
	i, ok := g.index[loc]
	if !ok {
		return nil
	}
	out := make([]Location, 0, len(g.locs)-1)
	for j, l := range g.locs {
		if j != i {
			out = append(out, l)
		}
	}

	return out
}

// Pair is an ordered pair of locations.
type Pair struct {
	From Location `json:"from"`
	To   Location `json:"to"`
}

// MissingPairs lists, in canonical order, the ordered pairs of distinct
// locations that have no recorded distance.
//
// Complexity: O(n²).
func (g *Graph) MissingPairs() []Pair {
	var out []Pair
	for i, from := range g.locs {
		for j, to := range g.locs {
			if i != j && !g.g.HasEdgeFromTo(int64(i), int64(j)) {
				out = append(out, Pair{From: from, To: to})
			}
		}
	}

	return out
}
