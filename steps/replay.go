package steps

import (
	"fmt"

	"github.com/katalvlaran/stepviz/grid"
)

// ReplayValues applies the swap and overwrite steps of s, in order, to a copy
// of values and returns the result. Compare steps only get bounds-checked.
// values itself is never modified.
func ReplayValues(values []float64, s *Stream) ([]float64, error) {
	out := make([]float64, len(values))
	copy(out, values)
	n := len(out)
	check := func(pos, idx int) error {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: step %d addresses %d, length %d", ErrIndexOutOfRange, pos, idx, n)
		}
		return nil
	}

	for pos, st := range s.All() {
		if !st.Kind.IsArray() {
			return nil, fmt.Errorf("%w: step %d is %s", ErrKindMismatch, pos, st.Kind)
		}
		switch st.Kind {
		case KindCompare, KindSwap:
			if err := check(pos, st.I); err != nil {
				return nil, err
			}
			if err := check(pos, st.J); err != nil {
				return nil, err
			}
			if st.Kind == KindSwap {
				out[st.I], out[st.J] = out[st.J], out[st.I]
			}
		case KindOverwrite:
			if err := check(pos, st.I); err != nil {
				return nil, err
			}
			out[st.I] = st.Value
		}
	}

	return out, nil
}

// ReplayGrid marks visit steps as Visited and path steps as Path on a clone of
// g. Start and End cells keep their identity. g itself is never modified.
func ReplayGrid(g *grid.Grid, s *Stream) (*grid.Grid, error) {
	out := g.Clone()
	for pos, st := range s.All() {
		if !st.Kind.IsGrid() {
			return nil, fmt.Errorf("%w: step %d is %s", ErrKindMismatch, pos, st.Kind)
		}
		mark := grid.Visited
		if st.Kind == KindPath {
			mark = grid.Path
		}
		c := st.Coord()
		if !out.InBounds(c) {
			return nil, fmt.Errorf("%w: step %d addresses %s", ErrIndexOutOfRange, pos, c)
		}
		if cur := out.At(c); cur == grid.Start || cur == grid.End {
			continue
		}
		if err := out.Set(c, mark); err != nil {
			return nil, err
		}
	}

	return out, nil
}
