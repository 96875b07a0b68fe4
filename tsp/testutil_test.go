// Package tsp_test holds helpers shared across the *_test.go files of this
// package: small fixed graphs, seeded random graphs and an independent
// brute-force oracle.
package tsp_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/Theoszt/DAA-DFS-dan-BFS/distance"
	"github.com/Theoszt/DAA-DFS-dan-BFS/tsp"
)

// seedDet is the seed for every random instance.
const seedDet = uint64(20240601)

var inf = math.Inf(1)

// squareGraph returns the graph A-B=1, B-C=1, C-D=1, D-A=1, A-C=5, B-D=5
// (symmetric). Its optimum from A is A-B-C-D-A with cost 4.
func squareGraph(t testing.TB) *distance.Graph {
	t.Helper()
	g, err := distance.FromMatrix([]string{"A", "B", "C", "D"}, [][]float64{
		{0, 1, 5, 1},
		{1, 0, 1, 5},
		{5, 1, 0, 1},
		{1, 5, 1, 0},
	})
	require.NoError(t, err)

	return g
}

// names returns n location names L0..L(n-1).
func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("L%d", i)
	}

	return out
}

// randomMatrix returns an n×n asymmetric matrix with weights in [1, 100).
func randomMatrix(n int, seed uint64) [][]float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			if i != j {
				m[i][j] = math.Round((1+rng.Float64()*99)*10) / 10
			}
		}
	}

	return m
}

// randomGraph returns a complete graph over names(n) with random weights.
func randomGraph(t testing.TB, n int, seed uint64) *distance.Graph {
	t.Helper()
	g, err := distance.FromMatrix(names(n), randomMatrix(n, seed))
	require.NoError(t, err)

	return g
}

// ringTable returns a square table over names(n) where consecutive
// locations are 1 km apart and every other pair is 10 km apart.
// The optimum tour is the ring, cost n.
func ringTable(t testing.TB, n int) *distance.Table {
	t.Helper()
	ls := names(n)
	tb, err := distance.NewSquareTable(ls)
	require.NoError(t, err)
	for i := range ls {
		for j := range ls {
			if i == j {
				continue
			}
			km := 10.0
			if d := (i - j + n) % n; d == 1 || d == n-1 {
				km = 1
			}
			require.NoError(t, tb.Set(ls[i], ls[j], km))
		}
	}

	return tb
}

// bruteForce returns the minimum closed-tour cost from start over every
// permutation of the other locations, computed independently of the
// searchers with gonum's permutation enumerator.
func bruteForce(g *distance.Graph, start string) distance.Cost {
	var others []string
	for _, l := range g.Locations() {
		if l != start {
			others = append(others, l)
		}
	}
	if len(others) == 0 {
		return tsp.TourCost(g, []string{start}, start)
	}
	best := distance.Unreachable
	path := make([]string, len(others)+1)
	path[0] = start
	for _, perm := range combin.Permutations(len(others), len(others)) {
		for i, p := range perm {
			path[i+1] = others[p]
		}
		if c := tsp.TourCost(g, path, start); c.Less(best) {
			best = c
		}
	}

	return best
}

// collect returns an Option recording every Candidate into *dst.
func collect(dst *[]tsp.Candidate) tsp.Option {
	return tsp.WithOnCandidate(func(c tsp.Candidate) { *dst = append(*dst, c) })
}

// requireMonotone fails unless every counter is non-negative and never
// decreases across the snapshots.
func requireMonotone(t *testing.T, snaps []tsp.Counters) {
	t.Helper()
	var prev tsp.Counters
	for i, c := range snaps {
		require.GreaterOrEqual(t, c.Operations, prev.Operations, "operations at %d", i)
		require.GreaterOrEqual(t, c.NodesVisited, prev.NodesVisited, "nodes at %d", i)
		require.GreaterOrEqual(t, c.EdgesExamined, prev.EdgesExamined, "edges at %d", i)
		require.GreaterOrEqual(t, c.MemoryBytes, prev.MemoryBytes, "memory at %d", i)
		prev = c
	}
}

// mustSearch runs algo over g from start via SolveGraph.
func mustSearch(t testing.TB, g *distance.Graph, start string, algo tsp.Algorithm, opts ...tsp.Option) tsp.Result {
	t.Helper()
	res, err := tsp.SolveGraph(g, start, algo, opts...)
	require.NoError(t, err)

	return res
}
