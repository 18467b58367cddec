package search

import "github.com/katalvlaran/stepviz/grid"

// iddfs restarts a depth-bounded DFS from start with ceilings 0, 1, 2, …
// Each iteration owns a fresh visited set and parent map, so cells are
// visited (and emitted) again in later iterations. The run ends when the goal
// is found, or when an iteration finishes without cutting off any neighbor at
// the ceiling: that iteration has already reached every reachable cell.
func (r *run) iddfs() {
	hint := r.g.Size()
	for limit := 0; ; limit++ {
		cutoff, done := r.depthLimited(limit, hint)
		if done || !cutoff {
			return
		}
	}
}

// depthLimited runs one iteration. done is true when the run must end
// (goal found, stopped, or failed).
func (r *run) depthLimited(limit, hint int) (cutoff, done bool) {
	var stack lifo
	stack.push(entry{at: r.start})
	visited := make(map[grid.Coord]bool, hint)
	parent := make(map[grid.Coord]grid.Coord, hint)

	for stack.Len() > 0 {
		if !r.alive() {
			return cutoff, true
		}
		cur := stack.selectNext()
		if visited[cur.at] {
			continue
		}
		visited[cur.at] = true
		if !r.visit(cur.at) {
			return cutoff, true
		}

		if grid.IsGoal(cur.at, r.end) {
			path, err := Reconstruct(parent, r.start, cur.at)
			if err != nil {
				r.fail(err)
				return cutoff, true
			}
			r.finish(path)
			return cutoff, true
		}

		for _, n := range r.g.Neighbors(cur.at, r.nbuf[:0]) {
			if visited[n] {
				continue
			}
			if cur.depth+1 > limit {
				cutoff = true
				continue
			}
			if _, seen := parent[n]; !seen {
				parent[n] = cur.at
			}
			stack.push(entry{at: n, depth: cur.depth + 1})
		}
	}
	return cutoff, false
}
