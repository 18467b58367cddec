package search

import (
	"math/rand"

	"github.com/katalvlaran/stepviz/grid"
)

// strategy specializes the shared walker. The walker owns the visited set,
// the parent map, and neighbor expansion; a strategy decides only
//
//   - newFrontier: the selection rule (FIFO, LIFO, or min-priority),
//   - shouldInsert: whether a neighbor reached at cost enters the frontier,
//   - priorityOf: the key it enters with (ignored by FIFO/LIFO frontiers),
//   - relinks: whether an accepted insertion re-points the neighbor's parent.
//     Strategies without cost tracking keep the first discoverer.
type strategy interface {
	newFrontier() frontier
	shouldInsert(at grid.Coord, cost int) bool
	priorityOf(at grid.Coord, cost int) priority
	relinks() bool
}

// uninformed covers BFS and DFS: every unvisited neighbor is inserted.
type uninformed struct {
	lifo bool
}

func (u uninformed) newFrontier() frontier {
	if u.lifo {
		return &lifo{}
	}
	return &fifo{}
}

func (uninformed) shouldInsert(grid.Coord, int) bool { return true }
func (uninformed) priorityOf(grid.Coord, int) priority { return priority{} }
func (uninformed) relinks() bool { return false }

// greedy orders by Manhattan distance to the goal alone. With rng set it
// becomes Randomized Best-First: equal distances are broken by a fresh
// random draw per insertion.
type greedy struct {
	end grid.Coord
	rng *rand.Rand
}

func (greedy) newFrontier() frontier { return &minQueue{} }
func (greedy) shouldInsert(grid.Coord, int) bool { return true }
func (greedy) relinks() bool { return false }

func (g greedy) priorityOf(at grid.Coord, _ int) priority {
	p := priority{value: at.Manhattan(g.end)}
	if g.rng != nil {
		p.tiebreak = g.rng.Float64()
	}
	return p
}

// costed covers A* and Dijkstra. A neighbor is (re)inserted only when its
// tentative cost beats every cost recorded for it so far; the accepted
// insertion also re-points its parent so the route follows the cheaper chain.
// With heuristic unset the priority is the path cost alone (Dijkstra).
type costed struct {
	end       grid.Coord
	heuristic bool
	best      map[grid.Coord]int
}

func newCosted(start, end grid.Coord, heuristic bool, hint int) *costed {
	best := make(map[grid.Coord]int, hint)
	best[start] = 0
	return &costed{end: end, heuristic: heuristic, best: best}
}

func (c *costed) newFrontier() frontier { return &minQueue{} }

func (c *costed) shouldInsert(at grid.Coord, cost int) bool {
	if prev, ok := c.best[at]; ok && cost >= prev {
		return false
	}
	c.best[at] = cost
	return true
}

func (c *costed) priorityOf(at grid.Coord, cost int) priority {
	if c.heuristic {
		return priority{value: cost + at.Manhattan(c.end)}
	}
	return priority{value: cost}
}

func (c *costed) relinks() bool { return true }
