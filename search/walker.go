package search

import (
	"context"
	"math/rand"
	"time"

	"github.com/katalvlaran/stepviz/grid"
	"github.com/katalvlaran/stepviz/steps"
)

// run encapsulates mutable state for one search execution. Nothing in it
// is shared with any other run.
type run struct {
	g          *grid.Grid
	start, end grid.Coord
	algo       Algorithm
	opts       Options
	ctx        context.Context
	yield      func(steps.Step) bool

	// stopped is set once the consumer declines a step, ctx is cancelled,
	// or an invariant fails. err carries the latter two.
	stopped bool
	err     error
	found   bool
	path    []grid.Coord
	visited int
	nbuf    [4]grid.Coord
}

// driver runs one strategy to completion, exhaustion, or stop.
type driver func(r *run)

func driverFor(a Algorithm) driver {
	switch a {
	case BFS:
		return func(r *run) { r.walk(uninformed{}) }
	case DFS:
		return func(r *run) { r.walk(uninformed{lifo: true}) }
	case Greedy:
		return func(r *run) { r.walk(greedy{end: r.end}) }
	case RandomBestFirst:
		return func(r *run) { r.walk(greedy{end: r.end, rng: r.rand()}) }
	case AStar:
		return func(r *run) { r.walk(newCosted(r.start, r.end, true, r.g.Size())) }
	case Dijkstra:
		return func(r *run) { r.walk(newCosted(r.start, r.end, false, r.g.Size())) }
	case Bidirectional:
		return (*run).bidirectional
	case IDDFS:
		return (*run).iddfs
	default:
		return nil
	}
}

// rand returns the tie-break source for this run.
func (r *run) rand() *rand.Rand {
	switch {
	case r.opts.Seed != nil:
		return rand.New(rand.NewSource(*r.opts.Seed))
	case r.opts.Rand != nil:
		return r.opts.Rand
	default:
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

// alive reports whether the run may continue, checking cancellation once.
func (r *run) alive() bool {
	if r.stopped {
		return false
	}
	if err := r.ctx.Err(); err != nil {
		r.err = err
		r.stopped = true
		return false
	}
	return true
}

// emit hands st to the consumer and records whether it wants more.
func (r *run) emit(st steps.Step) bool {
	if r.stopped {
		return false
	}
	if !r.yield(st) {
		r.stopped = true
		return false
	}
	return true
}

// visit emits a Visit step for c.
func (r *run) visit(c grid.Coord) bool {
	r.visited++
	return r.emit(steps.Visit(c))
}

// finish records a found route and emits its path steps, start to end.
func (r *run) finish(path []grid.Coord) {
	r.found = true
	r.path = path
	for _, c := range path {
		if !r.emit(steps.PathStep(c)) {
			return
		}
	}
}

// fail records an invariant failure and stops the run.
func (r *run) fail(err error) {
	r.err = err
	r.stopped = true
}

// walk is the shared expand-until-goal-or-exhaustion skeleton:
//
//  1. Seed the frontier with start.
//  2. Select the next entry; discard it if already visited, else mark it
//     visited and emit Visit.
//  3. If it is the goal, reconstruct and emit the path.
//  4. Otherwise offer each passable, unvisited neighbor (right, down, left,
//     up) to the strategy, registering its parent on first discovery.
//  5. An empty frontier ends the run with no path.
func (r *run) walk(s strategy) {
	f := s.newFrontier()
	f.push(entry{at: r.start, prio: s.priorityOf(r.start, 0)})
	visited := make(map[grid.Coord]bool, r.g.Size())
	parent := make(map[grid.Coord]grid.Coord, r.g.Size())

	for f.Len() > 0 {
		if !r.alive() {
			return
		}
		cur := f.selectNext()
		if visited[cur.at] {
			continue
		}
		visited[cur.at] = true
		if !r.visit(cur.at) {
			return
		}

		if grid.IsGoal(cur.at, r.end) {
			path, err := Reconstruct(parent, r.start, cur.at)
			if err != nil {
				r.fail(err)
				return
			}
			r.finish(path)
			return
		}

		for _, n := range r.g.Neighbors(cur.at, r.nbuf[:0]) {
			if visited[n] {
				continue
			}
			cost := cur.cost + 1
			if !s.shouldInsert(n, cost) {
				continue
			}
			if _, seen := parent[n]; !seen || s.relinks() {
				parent[n] = cur.at
			}
			f.push(entry{at: n, cost: cost, prio: s.priorityOf(n, cost)})
		}
	}
}
