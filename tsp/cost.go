package tsp

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/Theoszt/DAA-DFS-dan-BFS/distance"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost returns the cost of visiting path in order and then returning to
// start: the sum of consecutive weights plus the weight from the last
// element back to start. A path ending at start has no closing edge, so a
// single-location tour costs 0. An empty path costs 0.
//
// Any Unreachable weight makes the total Unreachable. TourCost is pure;
// neither path nor g is modified.
//
// Complexity: O(len(path)).
func TourCost(g *distance.Graph, path []distance.Location, start distance.Location) distance.Cost {
	if g == nil {
		return distance.Unreachable
	}
	if len(path) == 0 {
		return distance.Finite(0)
	}
	idx := make([]int, len(path))
	for i, loc := range path {
		j, ok := g.Index(loc)
		if !ok {
			return distance.Unreachable
		}
		idx[i] = j
	}
	s, ok := g.Index(start)
	if !ok {
		return distance.Unreachable
	}

	return tourCost(g, idx, s)
}

// tourCost is TourCost over canonical indices.
func tourCost(g *distance.Graph, path []int, start int) distance.Cost {
	sum := distance.Finite(0)
	for i := 0; i+1 < len(path); i++ {
		sum = sum.Add(g.WeightAt(path[i], path[i+1]))
	}
	if last := path[len(path)-1]; last != start {
		sum = sum.Add(g.WeightAt(last, start))
	}
	if sum.IsUnreachable() {
		return sum
	}

	return distance.Finite(round1e9(sum.Km()))
}

// round1e9 returns x rounded to 1e-9 absolute precision, keeping costs
// stable across platforms without affecting which tour is cheapest.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// maxSearchSpaceN bounds SearchSpace: 20! still fits in an int64.
const maxSearchSpaceN = 21

// SearchSpace returns the number of complete tours a depth-first search
// evaluates over n locations, (n−1)!. It returns math.MaxInt when the
// count does not fit in an int.
func SearchSpace(n int) int {
	if n <= 1 {
		return 1
	}
	if n > maxSearchSpaceN {
		return math.MaxInt
	}

	return combin.NumPermutations(n-1, n-1)
}

// toLocations maps canonical indices back to locations.
func toLocations(g *distance.Graph, idx []int) []distance.Location {
	out := make([]distance.Location, len(idx))
	for i, j := range idx {
		out[i] = g.Location(j)
	}

	return out
}
