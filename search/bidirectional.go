package search

import (
	"slices"

	"github.com/katalvlaran/stepviz/grid"
)

// side is one half of a bidirectional search: its own FIFO frontier,
// visited set, and parent map.
type side struct {
	queue   fifo
	visited map[grid.Coord]bool
	parent  map[grid.Coord]grid.Coord
}

func newSide(seed grid.Coord, hint int) *side {
	s := &side{
		visited: make(map[grid.Coord]bool, hint),
		parent:  make(map[grid.Coord]grid.Coord, hint),
	}
	s.queue.push(entry{at: seed})
	return s
}

// bidirectional runs two BFS frontiers, forward from start and backward from
// end, in strict alternation: one forward selection, then one backward
// selection, per round. A side that has emptied is skipped. The search ends
// when a neighbor produced by one side is already visited by the other, or
// when both frontiers are empty.
func (r *run) bidirectional() {
	hint := r.g.Size()
	fwd := newSide(r.start, hint)
	bwd := newSide(r.end, hint)

	for fwd.queue.Len() > 0 || bwd.queue.Len() > 0 {
		if !r.alive() {
			return
		}
		if meet, ok := r.advance(fwd, bwd); ok {
			r.join(fwd, bwd, meet)
			return
		}
		if r.stopped {
			return
		}
		if meet, ok := r.advance(bwd, fwd); ok {
			r.join(fwd, bwd, meet)
			return
		}
		if r.stopped {
			return
		}
	}
}

// advance performs one selection on this side. It reports the meeting cell
// when an expanded neighbor is already visited by other.
func (r *run) advance(this, other *side) (grid.Coord, bool) {
	if this.queue.Len() == 0 {
		return grid.Coord{}, false
	}
	at := this.queue.selectNext().at
	if this.visited[at] {
		return grid.Coord{}, false
	}
	this.visited[at] = true
	// a cell seen by both sides is reported once
	if !other.visited[at] && !r.visit(at) {
		return grid.Coord{}, false
	}

	for _, n := range r.g.Neighbors(at, r.nbuf[:0]) {
		if this.visited[n] {
			continue
		}
		if _, seen := this.parent[n]; !seen {
			this.parent[n] = at
		}
		this.queue.push(entry{at: n})
		if other.visited[n] {
			return n, true
		}
	}
	return grid.Coord{}, false
}

// join concatenates the forward chain start→meet with the reversed backward
// chain meet→end.
func (r *run) join(fwd, bwd *side, meet grid.Coord) {
	head, err := Reconstruct(fwd.parent, r.start, meet)
	if err != nil {
		r.fail(err)
		return
	}
	tail, err := Reconstruct(bwd.parent, r.end, meet)
	if err != nil {
		r.fail(err)
		return
	}
	slices.Reverse(tail)
	r.finish(append(head, tail[1:]...))
}
