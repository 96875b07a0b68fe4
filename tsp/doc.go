// Package tsp finds the minimum-cost closed tour over a distance.Graph by
// exhaustive enumeration, and reports instrumentation counters that make the
// two traversal strategies comparable.
//
// What
//
//   - TourCost: the cost of a path plus the closing edge back to the start.
//   - BreadthFirst: level-by-level traversal with a FIFO frontier and one
//     visited marker shared by the whole run.
//   - DepthFirst: backtracking recursion with a visited marker that is
//     released on return; evaluates every (n−1)! ordering of the non-start
//     locations.
//   - Solve / SolveGraph: caller-side validation (selection size, start
//     membership, options) followed by the chosen Searcher.
//
// Both strategies implement Searcher and return the same Result shape:
// Tour (start first, closing return implicit), Cost, and Counters
// {Operations, NodesVisited, EdgesExamined, MemoryBytes}.
//
// Breadth-first vs depth-first
//
//	BreadthFirst marks a location visited when it is enqueued and never
//	releases it, so every location enters the single shared path exactly
//	once and a run completes exactly one tour: the start followed by the
//	other locations in canonical order. DepthFirst releases the marker on
//	backtrack and so completes every permutation. The two strategies agree
//	on cost only when that one breadth-first ordering happens to be optimal.
//
// Costs
//
//	Weights are distance.Cost values. A missing distance is
//	distance.Unreachable, which absorbs every addition and loses every
//	comparison, so a tour using it never beats a finite tour. When no
//	finite tour exists the Result carries Cost == Unreachable and the first
//	completed ordering; callers detect it with Cost.IsUnreachable or
//	Result.Complete.
//
// Concurrency
//
//	A search is single-threaded and runs to completion. Every call owns its
//	visited markers, frontier or stack, and best-tour state, so independent
//	calls may run in parallel over the same Graph. There is no cancellation;
//	bound latency by bounding the selection (WithMaxLocations), since
//	depth-first cost grows as (n−1)!.
//
// Complexity (n = locations)
//
//   - BreadthFirst: Time O(n²), Memory O(n).
//   - DepthFirst:   Time O(n·n!), Memory O(n).
//
// Errors
//
//   - ErrGraphNil              nil graph.
//   - ErrStartNotFound         start is not one of the graph's locations.
//   - ErrSelectionTooSmall     fewer locations than WithMinLocations.
//   - ErrSelectionTooLarge     more locations than WithMaxLocations.
//   - ErrUnsupportedAlgorithm  unknown Algorithm.
//   - ErrOptionViolation       invalid Option value.
//
// Missing distances are never errors.
package tsp
