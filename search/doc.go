// Package search runs instrumented pathfinding over a grid.Grid and records
// every observable event as a steps.Stream.
//
// What
//
//   - Eight strategies over 4-connected, unit-cost grids:
//     BFS, DFS, Greedy Best-First, Bidirectional BFS, A*, Dijkstra,
//     Iterative-Deepening DFS and Randomized Best-First.
//   - Each run emits one Visit per processed cell and, once the goal is
//     reached, the route as PathStep events from start to end inclusive.
//   - Three ways to consume a run:
//   - Search: blocking, returns the materialized Result.
//   - Steps: a lazy iter.Seq; each range is an independent run.
//   - NewStepper: pull one step at a time, for paced playback.
//
// Skeleton
//
//	All strategies but Bidirectional BFS and IDDFS share one walker:
//	select the next frontier entry, skip it if visited, emit Visit, stop at
//	the goal, else expand neighbors in the fixed order right, down, left, up.
//	A strategy only chooses the frontier (FIFO, LIFO, min-priority), whether
//	a neighbor is inserted, and its priority key.
//
// Determinism
//
//	Neighbor order is fixed and priority ties are broken by insertion order,
//	so every strategy except Randomized Best-First yields byte-identical
//	streams for identical input. Randomized Best-First draws a fresh random
//	tiebreak per insertion; pass WithSeed to make it reproducible.
//
// Optimality
//
//	BFS, A*, Dijkstra and Bidirectional BFS return shortest routes on unit-cost
//	grids. Greedy, DFS, IDDFS and Randomized Best-First return some route,
//	not necessarily the shortest.
//
// Errors
//
//   - ErrGridNil, ErrUnknownAlgorithm, ErrOutOfBounds, ErrSameEndpoints and
//     ErrBlockedEndpoint are reported before any step is produced.
//   - No route is not an error: Result.Found is false and the stream holds
//     visits only.
//   - ErrBrokenParentChain signals an internal failure in path reconstruction.
//   - A cancelled context fails Search with the context error. Steps just
//     ends early; Stepper.Err reports why.
//
// Usage
//
//	g, _ := grid.Parse("S..\n.#.\n..E")
//	start, end, _ := g.Endpoints()
//	res, err := search.Search(g, start, end, search.AStar)
//	if err != nil {
//		// handle precondition error
//	}
//	fmt.Println(res.Found, res.Path)
package search
