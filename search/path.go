package search

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/stepviz/grid"
)

// Reconstruct walks parent pointers from at back to start and returns the
// route in start→at order, both ends inclusive.
//
// The parent map is a forest rooted at start with one entry per discovered
// cell, so the walk takes at most len(parent) hops. A missing link or a
// longer walk means the map is corrupt and ErrBrokenParentChain is returned.
//
// Complexity: O(L) time and memory, L = route length.
func Reconstruct(parent map[grid.Coord]grid.Coord, start, at grid.Coord) ([]grid.Coord, error) {
	path := []grid.Coord{at}
	for cur := at; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no parent for %s", ErrBrokenParentChain, cur)
		}
		if len(path) > len(parent) {
			return nil, fmt.Errorf("%w: cycle through %s", ErrBrokenParentChain, cur)
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
