package grid

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass a nil RNG.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// RandomObstacles returns an empty rows×cols grid with exactly
// floor(rows*cols*density) obstacles placed on distinct cells.
//
// Cells are drawn by a partial Fisher–Yates shuffle of the row-major indices,
// so the cost is O(R×C) regardless of density. If rng==nil the default
// deterministic stream is used.
func RandomObstacles(rows, cols int, density float64, rng *rand.Rand) (*Grid, error) {
	if density < 0 || density > 1 {
		return nil, ErrBadDensity
	}
	g, err := Filled(rows, cols, Empty)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(0)
	}

	n := len(g.cells)
	want := int(float64(n) * density)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < want; i++ {
		j := i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		g.cells[idx[i]] = Obstacle
	}

	return g, nil
}

// PlaceEndpoints marks start and end on a clone of g, clearing any obstacle
// beneath them. Existing Start/End markers elsewhere are reset to Empty.
func PlaceEndpoints(g *Grid, start, end Coord) (*Grid, error) {
	if !g.InBounds(start) {
		return nil, ErrOutOfBounds
	}
	if !g.InBounds(end) {
		return nil, ErrOutOfBounds
	}
	out := g.Clone()
	for i, s := range out.cells {
		if s == Start || s == End {
			out.cells[i] = Empty
		}
	}
	out.cells[out.index(start)] = Start
	out.cells[out.index(end)] = End

	return out, nil
}
