// Package stepviz turns classic search and sorting algorithms into
// replayable step streams: every cell visited, every comparison, every
// swap, recorded in order so a player can animate the run at any pace.
//
// What is stepviz?
//
//	A small, deterministic instrumentation engine:
//		• Grid model: obstacle grids, endpoints, random playgrounds
//		• Search: BFS, DFS, Greedy, Bidirectional BFS, A*, Dijkstra,
//		  Iterative-Deepening DFS, Randomized Best-First
//		• Sorting: Bubble, Selection, Insertion, Merge, Quick, Heap, Cocktail
//		• Step streams: replay, canonical JSON, hashing, schema validation,
//		  expression filters
//		• Catalog: complexity, explanations, optimality flags
//		• Runner + CLI: YAML scenarios, run IDs, structured logs
//
// Why stepviz?
//
//   - Pure engines: no rendering, no timers, no shared state between runs
//   - Byte-identical streams for identical input (Randomized Best-First
//     aside, unless seeded)
//   - Blocking, lazy (iter.Seq) and pull (Stepper) forms of every run
//
// Packages:
//
//	grid/        cells, coordinates, neighbors, random obstacles
//	steps/       Step, Stream, Recorder, replay, JSON, Filter
//	search/      the eight pathfinding strategies and path reconstruction
//	sorting/     the seven sorting strategies
//	catalog/     embedded algorithm descriptions
//	runner/      scenario loading and run dispatch
//	cmd/stepviz/ command-line driver
//
// Quick start:
//
//	g, _ := grid.Parse("S..#\n.#..\n...E")
//	start, end, _ := g.Endpoints()
//	res, _ := search.Search(g, start, end, search.AStar)
//	for _, st := range res.Stream.All() {
//		fmt.Println(st) // visit(0,0) … path(2,3)
//	}
//
//	out, _ := sorting.Sort([]float64{5, 3, 4, 1}, sorting.Merge)
//	fmt.Println(out.Sorted) // [1 3 4 5]
package stepviz
