// Package grid models the 2-D obstacle grid consumed by every search strategy
// in github.com/katalvlaran/stepviz/search.
//
// What:
//
//   - Grid wraps an R×C rectangular array of cell states
//     (Empty, Start, End, Obstacle, Visited, Path).
//   - Coord addresses a cell by (row, col); it is comparable and is used
//     directly as a map key. Key() yields the canonical "row-col" string.
//   - Neighbors expands a cell into its passable orthogonal neighbors in the
//     fixed order right, down, left, up. That order is a tie-break input, so
//     every deterministic search built on it is exactly reproducible.
//   - RandomObstacles scatters obstacles over an empty grid from a seeded RNG.
//
// Immutability:
//
//	New and Parse deep-copy their input. Search strategies only read a Grid;
//	the only mutator is Set, which callers use on their own Clone (for example
//	when replaying a step stream for display).
//
// Complexity:
//
//   - New, Parse, Clone, String: O(R×C) time and memory.
//   - InBounds, At, Passable, IsGoal: O(1).
//   - Neighbors: O(1) (at most four candidates).
//   - Endpoints: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCell: layout contains a rune that is not a cell state.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//   - ErrMissingStart, ErrMissingEnd, ErrDuplicateStart, ErrDuplicateEnd:
//     endpoint markers are absent or repeated.
//   - ErrBadDensity: obstacle density outside [0,1].
package grid
