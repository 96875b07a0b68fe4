package tsp

import (
	"github.com/Theoszt/DAA-DFS-dan-BFS/distance"
)

// BreadthFirst is the level-by-level tour search.
//
// It keeps one visited marker for the whole run and marks a location when
// it is enqueued, so each location is dequeued once and appended once to
// the single shared path. The run therefore completes exactly one tour.
// See the package documentation for how this differs from DepthFirst.
type BreadthFirst struct {
	opts Options
}

var _ Searcher = (*BreadthFirst)(nil)

// NewBreadthFirst returns a breadth-first Searcher.
func NewBreadthFirst(opts ...Option) (*BreadthFirst, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	return &BreadthFirst{opts: o}, nil
}

// Algorithm returns BFS.
func (*BreadthFirst) Algorithm() Algorithm { return BFS }

// bfsWalker encapsulates the mutable state of one breadth-first run.
type bfsWalker struct {
	g       *distance.Graph
	opts    Options
	start   int
	n       int
	visited []bool
	queue   []int // frontier; queue[head:] is pending
	head    int
	path    []int
	best    []int
	cost    distance.Cost
	found   bool
	cnt     Counters
}

// Search runs the breadth-first search from start.
//
// Counters: NodesVisited and Operations grow per dequeue; Operations and
// EdgesExamined grow per neighbour relaxation and per completed-path
// evaluation; Operations grows again when the best tour is replaced.
//
// Complexity: Time O(n²), Memory O(n).
func (s *BreadthFirst) Search(g *distance.Graph, start distance.Location) Result {
	si, _ := g.Index(start)
	n := g.Len()
	w := &bfsWalker{
		g:       g,
		opts:    s.opts,
		start:   si,
		n:       n,
		visited: make([]bool, n),
		queue:   make([]int, 0, n),
		path:    make([]int, 0, n),
		cost:    distance.Unreachable,
	}

	w.opts.Logger.V(1).Info("search started", "algorithm", BFS, "start", start, "locations", n)
	w.enqueue(si)
	w.loop()

	res := Result{
		Algorithm: BFS,
		Start:     start,
		Tour:      toLocations(g, w.best),
		Cost:      w.cost,
		Locations: n,
		Counters:  w.cnt,
	}
	w.opts.Logger.V(1).Info("search done", "algorithm", BFS, "cost", res.Cost, "nodes", res.NodesVisited)

	return res
}

// enqueue marks i visited and appends it to the frontier.
func (w *bfsWalker) enqueue(i int) {
	w.visited[i] = true
	w.queue = append(w.queue, i)
}

// loop processes the frontier until it is empty.
func (w *bfsWalker) loop() {
	for w.head < len(w.queue) {
		curr := w.queue[w.head]
		w.head++
		w.path = append(w.path, curr)
		w.cnt.op()
		w.cnt.node()
		w.observeMemory()

		if len(w.path) == w.n {
			w.evaluate()
		}
		w.relax(curr)
	}
}

// relax enqueues every neighbour of curr not yet visited, in canonical order.
func (w *bfsWalker) relax(curr int) {
	for j := 0; j < w.n; j++ {
		if j == curr || w.visited[j] {
			continue
		}
		w.enqueue(j)
		w.cnt.op()
		w.cnt.edge()
	}
}

// evaluate scores the current full-coverage path and keeps it if it is the
// first one seen or strictly cheaper than the best so far.
func (w *bfsWalker) evaluate() {
	c := tourCost(w.g, w.path, w.start)
	w.cnt.edge()
	w.cnt.op()
	improved := !w.found || c.Less(w.cost)
	if improved {
		w.best = append(w.best[:0], w.path...)
		w.cost = c
		w.found = true
		w.cnt.op()
		w.opts.Logger.V(2).Info("best tour updated", "algorithm", BFS, "cost", c)
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

// observeMemory records the live size of visited, path and pending frontier.
func (w *bfsWalker) observeMemory() {
	w.cnt.observeMemory(visitedBytes(len(w.visited)) + sliceBytes(cap(w.path)) + sliceBytes(cap(w.queue)))
}
