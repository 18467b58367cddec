// Package grid defines core types and sentinel errors for the grid model.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownCell indicates a layout rune that maps to no cell state.
	ErrUnknownCell = errors.New("grid: unknown cell rune")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrBadKey indicates a malformed "row-col" key.
	ErrBadKey = errors.New("grid: malformed coordinate key")
	// ErrMissingStart indicates no Start cell exists.
	ErrMissingStart = errors.New("grid: no start cell")
	// ErrMissingEnd indicates no End cell exists.
	ErrMissingEnd = errors.New("grid: no end cell")
	// ErrDuplicateStart indicates more than one Start cell.
	ErrDuplicateStart = errors.New("grid: more than one start cell")
	// ErrDuplicateEnd indicates more than one End cell.
	ErrDuplicateEnd = errors.New("grid: more than one end cell")
	// ErrBadDensity indicates an obstacle density outside [0,1].
	ErrBadDensity = errors.New("grid: obstacle density must be within [0,1]")
)

// State is the enumerated state of one cell.
type State uint8

const (
	// Empty is a free, passable cell.
	Empty State = iota
	// Start marks the search origin.
	Start
	// End marks the search goal.
	End
	// Obstacle cells are never entered.
	Obstacle
	// Visited marks a cell processed by a search (display only).
	Visited
	// Path marks a cell on the reconstructed route (display only).
	Path
)

var stateNames = [...]string{"empty", "start", "end", "obstacle", "visited", "path"}

// stateRunes is the single-rune layout encoding used by Parse and String.
var stateRunes = [...]rune{'.', 'S', 'E', '#', 'v', '*'}

// String returns the lower-case state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// Rune returns the layout rune for s.
func (s State) Rune() rune {
	if int(s) < len(stateRunes) {
		return stateRunes[s]
	}
	return '?'
}

// StateFromRune maps a layout rune back to its State.
func StateFromRune(r rune) (State, error) {
	for i, sr := range stateRunes {
		if sr == r {
			return State(i), nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownCell, r)
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// At is shorthand for Coord{Row: row, Col: col}.
func At(row, col int) Coord { return Coord{Row: row, Col: col} }

// Key returns the canonical "row-col" identifier.
func (c Coord) Key() string {
	return strconv.Itoa(c.Row) + "-" + strconv.Itoa(c.Col)
}

// String implements fmt.Stringer as "(row,col)".
func (c Coord) String() string {
	return "(" + strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col) + ")"
}

// Add returns c shifted by (dr, dc).
func (c Coord) Add(dr, dc int) Coord { return Coord{Row: c.Row + dr, Col: c.Col + dc} }

// Manhattan returns |c.Row-o.Row| + |c.Col-o.Col|.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Adjacent reports whether c and o are orthogonal neighbors.
func (c Coord) Adjacent(o Coord) bool { return c.Manhattan(o) == 1 }

// ParseKey inverts Coord.Key. Negative components are rejected.
func ParseKey(key string) (Coord, error) {
	rs, cs, ok := strings.Cut(key, "-")
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadKey, key)
	}
	r, err := strconv.Atoi(rs)
	if err != nil || r < 0 {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadKey, key)
	}
	c, err := strconv.Atoi(cs)
	if err != nil || c < 0 {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadKey, key)
	}
	return Coord{Row: r, Col: c}, nil
}

// offsets lists orthogonal moves as (dRow, dCol) in expansion order:
// right, down, left, up.
var offsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
