package steps_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/grid"
	"github.com/katalvlaran/stepviz/steps"
)

func TestFilter_Apply(t *testing.T) {
	s := steps.NewStream(
		steps.Compare(0, 1),
		steps.Swap(0, 1),
		steps.Compare(1, 2),
		steps.Overwrite(2, 42),
		steps.Swap(1, 2),
	)

	cases := []struct {
		expr string
		want []steps.Step
	}{
		{`kind == "swap"`, []steps.Step{steps.Swap(0, 1), steps.Swap(1, 2)}},
		{`kind == "compare" && j == 2`, []steps.Step{steps.Compare(1, 2)}},
		{`kind == "overwrite" && value > 40`, []steps.Step{steps.Overwrite(2, 42)}},
		{`seq >= 3`, []steps.Step{steps.Overwrite(2, 42), steps.Swap(1, 2)}},
		{`false`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			f, err := steps.NewFilter(tc.expr)
			require.NoError(t, err)
			out, err := f.Apply(s)
			require.NoError(t, err)
			assert.Equal(t, len(tc.want), out.Len())
			for i, st := range tc.want {
				assert.Equal(t, st, out.At(i))
			}
		})
	}
	assert.Equal(t, 5, s.Len(), "source stream untouched")
}

func TestFilter_GridFields(t *testing.T) {
	s := steps.NewStream(
		steps.Visit(grid.At(0, 0)),
		steps.Visit(grid.At(1, 0)),
		steps.PathStep(grid.At(1, 0)),
	)
	f, err := steps.NewFilter(`kind == "visit" && row == 1`)
	require.NoError(t, err)
	out, err := f.Apply(s)
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 0}}, out.Visits())
	assert.Equal(t, `kind == "visit" && row == 1`, f.String())
}

func TestFilter_Errors(t *testing.T) {
	for _, bad := range []string{"", `kind +`, `row + 1`, `nosuchvar == 1`} {
		_, err := steps.NewFilter(bad)
		assert.ErrorIs(t, err, steps.ErrBadFilter, "expr %q", bad)
	}
}
