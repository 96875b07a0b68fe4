package tsp

import (
	"github.com/Theoszt/DAA-DFS-dan-BFS/distance"
)

// DepthFirst is the exhaustive backtracking tour search. It evaluates
// every ordering of the non-start locations and returns the cheapest.
type DepthFirst struct {
	opts Options
}

var _ Searcher = (*DepthFirst)(nil)

// NewDepthFirst returns a depth-first Searcher.
func NewDepthFirst(opts ...Option) (*DepthFirst, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	return &DepthFirst{opts: o}, nil
}

// Algorithm returns DFS.
func (*DepthFirst) Algorithm() Algorithm { return DFS }

// dfsWalker encapsulates the mutable state of one depth-first run. It is
// owned by a single Search call and threaded through the recursion by
// pointer; nothing else holds it.
type dfsWalker struct {
	g       *distance.Graph
	opts    Options
	start   int
	n       int
	visited []bool
	path    []int
	best    []int
	cost    distance.Cost
	found   bool
	cnt     Counters
}

// Search runs the depth-first search from start.
//
// Counters: NodesVisited grows per call entry; EdgesExamined per neighbour
// considered and per completed-path evaluation; Operations per
// mark-and-append, per neighbour considered, per best-tour update and per
// unmark-and-remove.
//
// Complexity: Time O(n·n!), Memory O(n).
func (s *DepthFirst) Search(g *distance.Graph, start distance.Location) Result {
	si, _ := g.Index(start)
	n := g.Len()
	w := &dfsWalker{
		g:       g,
		opts:    s.opts,
		start:   si,
		n:       n,
		visited: make([]bool, n),
		path:    make([]int, 0, n),
		cost:    distance.Unreachable,
	}

	w.opts.Logger.V(1).Info("search started", "algorithm", DFS, "start", start, "locations", n,
		"permutations", SearchSpace(n))
	w.visit(si)

	res := Result{
		Algorithm: DFS,
		Start:     start,
		Tour:      toLocations(g, w.best),
		Cost:      w.cost,
		Locations: n,
		Counters:  w.cnt,
	}
	w.opts.Logger.V(1).Info("search done", "algorithm", DFS, "cost", res.Cost, "nodes", res.NodesVisited)

	return res
}

// visit enters location u: marks it, extends the path, evaluates a full
// path or recurses into every unvisited neighbour, then restores visited
// and path to exactly their state before the call.
func (w *dfsWalker) visit(u int) {
	w.visited[u] = true
	w.path = append(w.path, u)
	w.cnt.node()
	w.cnt.op()
	w.observeMemory()

	if len(w.path) == w.n {
		w.evaluate()
	} else {
		for v := 0; v < w.n; v++ {
			if v == u {
				continue
			}
			w.cnt.edge()
			w.cnt.op()
			if !w.visited[v] {
				w.visit(v)
			}
		}
	}

	w.visited[u] = false
	w.path = w.path[:len(w.path)-1]
	w.cnt.op()
}

// evaluate scores the current full-coverage path and keeps it if it is the
// first one seen or strictly cheaper than the best so far.
func (w *dfsWalker) evaluate() {
	c := tourCost(w.g, w.path, w.start)
	w.cnt.edge()
	improved := !w.found || c.Less(w.cost)
	if improved {
		w.best = append(w.best[:0], w.path...)
		w.cost = c
		w.found = true
		w.cnt.op()
		w.opts.Logger.V(2).Info("best tour updated", "algorithm", DFS, "cost", c)
	}
	if w.opts.OnCandidate != nil {
		w.opts.OnCandidate(Candidate{
			Path:     toLocations(w.g, w.path),
			Cost:     c,
			Improved: improved,
			Counters: w.cnt,
		})
	}
}

// observeMemory records visited, path and the recursion stack, whose depth
// equals the path length.
func (w *dfsWalker) observeMemory() {
	w.cnt.observeMemory(visitedBytes(len(w.visited)) + sliceBytes(cap(w.path)) +
		int64(len(w.path))*dfsFrameBytes)
}
