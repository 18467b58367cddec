package grid

import (
	"fmt"
	"strings"
)

// Grid is an R×C rectangular array of cell states stored row-major.
// A Grid built by New or Parse owns its storage; no caller slice aliases it.
type Grid struct {
	rows, cols int
	cells      []State
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(cells [][]State) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{rows: h, cols: w, cells: make([]State, 0, h*w)}
	for _, row := range cells {
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// Filled returns a rows×cols grid with every cell set to s.
func Filled(rows, cols int, s State) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]State, rows*cols)}
	if s != Empty {
		for i := range g.cells {
			g.cells[i] = s
		}
	}

	return g, nil
}

// Parse builds a Grid from a text layout, one line per row, one rune per cell:
//
//	.  empty      S  start      E  end
//	#  obstacle   v  visited    *  path
//
// Blank lines and surrounding whitespace on each line are ignored.
func Parse(layout string) (*Grid, error) {
	var rows [][]State
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]State, 0, len(line))
		for _, r := range line {
			s, err := StateFromRune(r)
			if err != nil {
				return nil, fmt.Errorf("grid: row %d: %w", len(rows), err)
			}
			row = append(row, s)
		}
		rows = append(rows, row)
	}

	return New(rows)
}

// Rows returns R.
func (g *Grid) Rows() int { return g.rows }

// Cols returns C.
func (g *Grid) Cols() int { return g.cols }

// Size returns R×C.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether 0 ≤ row < R and 0 ≤ col < C.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the state at c. It panics if c is out of bounds, matching
// slice indexing; use InBounds first for untrusted coordinates.
func (g *Grid) At(c Coord) State {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: At%s outside %dx%d", c, g.rows, g.cols))
	}
	return g.cells[g.index(c)]
}

// Passable reports whether c is in bounds and not an obstacle.
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)] != Obstacle
}

// IsGoal reports whether c is the goal end.
func IsGoal(c, end Coord) bool { return c == end }

// Neighbors returns the passable orthogonal neighbors of c in the fixed
// order right, down, left, up. The result is appended to buf[:0] so hot
// loops can reuse one backing array.
func (g *Grid) Neighbors(c Coord, buf []Coord) []Coord {
	buf = buf[:0]
	for _, d := range offsets {
		n := c.Add(d[0], d[1])
		if g.Passable(n) {
			buf = append(buf, n)
		}
	}
	return buf
}

// Endpoints locates the unique Start and End cells.
func (g *Grid) Endpoints() (start, end Coord, err error) {
	var haveStart, haveEnd bool
	for i, s := range g.cells {
		switch s {
		case Start:
			if haveStart {
				return Coord{}, Coord{}, ErrDuplicateStart
			}
			start, haveStart = g.coordinate(i), true
		case End:
			if haveEnd {
				return Coord{}, Coord{}, ErrDuplicateEnd
			}
			end, haveEnd = g.coordinate(i), true
		}
	}
	if !haveStart {
		return Coord{}, Coord{}, ErrMissingStart
	}
	if !haveEnd {
		return Coord{}, Coord{}, ErrMissingEnd
	}

	return start, end, nil
}

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, cells: make([]State, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Set overwrites the state at c. Only call Set on a grid you own (see Clone).
func (g *Grid) Set(c Coord, s State) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s in %dx%d", ErrOutOfBounds, c, g.rows, g.cols)
	}
	g.cells[g.index(c)] = s
	return nil
}

// Count returns how many cells hold state s.
func (g *Grid) Count(s State) int {
	n := 0
	for _, v := range g.cells {
		if v == s {
			n++
		}
	}
	return n
}

// String renders g in the Parse layout, rows separated by '\n'.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			b.WriteRune(g.cells[r*g.cols+c].Rune())
		}
	}
	return b.String()
}

// index maps c to a row-major index: row*cols + col.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// coordinate converts a row-major index back to a Coord.
func (g *Grid) coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}
