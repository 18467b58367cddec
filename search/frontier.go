package search

import (
	"container/heap"

	"github.com/katalvlaran/stepviz/grid"
)

// priority orders entries in a priority frontier: value first, then
// tiebreak, then insertion sequence.
type priority struct {
	value    int
	tiebreak float64
}

// entry is one frontier element.
type entry struct {
	at    grid.Coord
	cost  int // path cost from start along the discovering chain
	depth int // depth bound bookkeeping for IDDFS
	prio  priority
	seq   uint64
}

// frontier is the discovered-but-unprocessed set. selectNext must only be
// called when Len() > 0.
type frontier interface {
	push(e entry)
	selectNext() entry
	Len() int
}

// fifo is a queue; BFS and both sides of Bidirectional BFS use it.
type fifo struct {
	items []entry
	head  int
}

func (q *fifo) push(e entry) { q.items = append(q.items, e) }

func (q *fifo) selectNext() entry {
	e := q.items[q.head]
	q.head++
	// reclaim the consumed prefix once it dominates the backing array
	if q.head > 64 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return e
}

func (q *fifo) Len() int { return len(q.items) - q.head }

// lifo is a stack; DFS and IDDFS use it.
type lifo struct {
	items []entry
}

func (s *lifo) push(e entry) { s.items = append(s.items, e) }

func (s *lifo) selectNext() entry {
	n := len(s.items) - 1
	e := s.items[n]
	s.items = s.items[:n]
	return e
}

func (s *lifo) Len() int { return len(s.items) }

// minQueue is a min-priority frontier. Equal priorities come out in
// insertion order, which reproduces discovery-order tie-breaking.
type minQueue struct {
	h   entryHeap
	seq uint64
}

func (q *minQueue) push(e entry) {
	e.seq = q.seq
	q.seq++
	heap.Push(&q.h, e)
}

func (q *minQueue) selectNext() entry { return heap.Pop(&q.h).(entry) }

func (q *minQueue) Len() int { return q.h.Len() }

// entryHeap implements heap.Interface ordered by (prio.value, prio.tiebreak, seq).
// Stale duplicates are left in place and discarded on selection when their
// cell is already visited ("lazy decrease-key").
type entryHeap []entry

// Len returns the number of items in the heap.
func (h entryHeap) Len() int { return len(h) }

// Less defines the comparison: smaller priority → higher precedence.
func (h entryHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.prio.value != b.prio.value {
		return a.prio.value < b.prio.value
	}
	if a.prio.tiebreak != b.prio.tiebreak {
		return a.prio.tiebreak < b.prio.tiebreak
	}
	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *entryHeap) Push(x any) { *h = append(*h, x.(entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
