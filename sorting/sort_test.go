package sorting_test

import (
	"context"
	"math"
	"math/rand"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/sorting"
	"github.com/katalvlaran/stepviz/steps"
)

// render lists a stream in its compact string form.
func render(s *steps.Stream) []string {
	out := make([]string, 0, s.Len())
	for _, st := range s.All() {
		out = append(out, st.String())
	}
	return out
}

// reference sorts a copy with the standard library.
func reference(values []float64) []float64 {
	out := slices.Clone(values)
	slices.Sort(out)
	return out
}

//----------------------------------------------------------------------------//
// Preconditions
//----------------------------------------------------------------------------//

func TestSort_Preconditions(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
		algo   sorting.Algorithm
		err    error
	}{
		{"Nil", nil, sorting.Bubble, sorting.ErrEmptyInput},
		{"Empty", []float64{}, sorting.Merge, sorting.ErrEmptyInput},
		{"NaN", []float64{1, math.NaN()}, sorting.Quick, sorting.ErrNotANumber},
		{"Inf", []float64{math.Inf(-1), 2}, sorting.Heap, sorting.ErrNotANumber},
		{"UnknownAlgorithm", []float64{2, 1}, sorting.Algorithm("bogo"), sorting.ErrUnknownAlgorithm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := sorting.Sort(tc.values, tc.algo)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.err)

			st, err := sorting.NewStepper(tc.values, tc.algo)
			assert.Nil(t, st)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	for in, want := range map[string]sorting.Algorithm{
		"Bubble Sort":          sorting.Bubble,
		"selection":            sorting.Selection,
		"Insertion Sort":       sorting.Insertion,
		"MERGE SORT":           sorting.Merge,
		"Quick Sort":           sorting.Quick,
		"heapsort":             sorting.Heap,
		"Cocktail Shaker Sort": sorting.Cocktail,
	} {
		got, err := sorting.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := sorting.ParseAlgorithm("bogo sort")
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)

	assert.Len(t, sorting.Algorithms(), 7)
	assert.True(t, sorting.Merge.Stable())
	assert.False(t, sorting.Quick.Stable())
}

//----------------------------------------------------------------------------//
// Exact streams on [5,3,4,1]
//----------------------------------------------------------------------------//

func TestSort_ExactStreams(t *testing.T) {
	input := []float64{5, 3, 4, 1}
	cases := map[sorting.Algorithm][]string{
		sorting.Bubble: {
			"compare[0,1]", "swap[0,1]", "compare[1,2]", "swap[1,2]", "compare[2,3]", "swap[2,3]",
			"compare[0,1]", "compare[1,2]", "swap[1,2]",
			"compare[0,1]", "swap[0,1]",
		},
		sorting.Selection: {
			"compare[0,1]", "compare[1,2]", "compare[1,3]", "swap[0,3]",
			"compare[1,2]", "compare[1,3]",
			"compare[2,3]",
		},
		sorting.Insertion: {
			"compare[0,1]", "overwrite[1]=5", "overwrite[0]=3",
			"compare[1,2]", "overwrite[2]=5", "overwrite[1]=4",
			"compare[2,3]", "overwrite[3]=5", "compare[1,2]", "overwrite[2]=4",
			"compare[0,1]", "overwrite[1]=3", "overwrite[0]=1",
		},
		sorting.Merge: {
			"compare[0,1]", "overwrite[0]=3", "compare[0,0]", "overwrite[1]=5",
			"compare[2,3]", "overwrite[2]=1", "compare[2,2]", "overwrite[3]=4",
			"compare[0,2]", "overwrite[0]=1", "compare[0,3]", "overwrite[1]=3",
			"compare[1,3]", "overwrite[2]=4", "compare[1,1]", "overwrite[3]=5",
		},
		sorting.Quick: {
			"compare[0,3]", "compare[1,3]", "compare[2,3]", "swap[0,3]",
			"compare[1,3]", "swap[1,1]", "compare[2,3]", "swap[2,2]", "swap[3,3]",
			"compare[1,2]", "swap[1,1]", "swap[2,2]",
		},
		sorting.Heap: {
			"compare[3,1]",
			"compare[1,0]", "compare[2,0]",
			"swap[0,3]", "compare[1,0]", "compare[2,1]", "swap[0,2]",
			"swap[0,2]", "compare[1,0]", "swap[0,1]",
			"swap[0,1]",
		},
		sorting.Cocktail: {
			"compare[0,1]", "swap[0,1]", "compare[1,2]", "swap[1,2]", "compare[2,3]", "swap[2,3]",
			"compare[2,3]", "compare[1,2]", "swap[1,2]", "compare[0,1]", "swap[0,1]",
			"compare[1,2]",
		},
	}
	for algo, want := range cases {
		t.Run(string(algo), func(t *testing.T) {
			res, err := sorting.Sort(input, algo)
			require.NoError(t, err)
			assert.Equal(t, want, render(res.Stream))
			assert.Equal(t, []float64{1, 3, 4, 5}, res.Sorted)
		})
	}
	assert.Equal(t, []float64{5, 3, 4, 1}, input, "input must not be modified")
}

// TestBubble_FirstPass checks the first pass on [5,3,4,1]: three adjacent
// comparisons, each followed by a swap since 5 bubbles to the end.
func TestBubble_FirstPass(t *testing.T) {
	res, err := sorting.Sort([]float64{5, 3, 4, 1}, sorting.Bubble)
	require.NoError(t, err)

	pass := steps.NewStream(res.Stream.Slice()[:6]...)
	assert.Equal(t, 3, pass.Count(steps.KindCompare))
	assert.Equal(t, 3, pass.Count(steps.KindSwap))

	after, err := steps.ReplayValues([]float64{5, 3, 4, 1}, pass)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 1, 5}, after)
	assert.Equal(t, []float64{1, 3, 4, 5}, res.Sorted)
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestSort_ReplayMatchesReference replays every stream against its input on
// random arrays, including duplicates, negatives and tiny lengths.
func TestSort_ReplayMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	inputs := [][]float64{
		{42},
		{2, 1},
		{1, 2},
		{7, 7, 7, 7},
		{1, 2, 3, 4, 5, 6},
		{6, 5, 4, 3, 2, 1},
		{-1.5, 3, 0, -7.25, 3, 0.5},
	}
	for i := 0; i < 30; i++ {
		vals, err := sorting.RandomValues(1+rng.Intn(60), 5, 100, rng)
		require.NoError(t, err)
		inputs = append(inputs, vals)
	}

	for _, algo := range sorting.Algorithms() {
		for _, in := range inputs {
			res, err := sorting.Sort(in, algo)
			require.NoError(t, err)
			want := reference(in)
			assert.Equal(t, want, res.Sorted, "%s %v", algo, in)

			got, err := steps.ReplayValues(in, res.Stream)
			require.NoError(t, err, "%s %v", algo, in)
			assert.Equal(t, want, got, "%s replay %v", algo, in)

			// only array kinds, indices inside the array
			for _, st := range res.Stream.All() {
				require.True(t, st.Kind.IsArray())
				assert.Less(t, st.I, len(in))
				assert.GreaterOrEqual(t, st.I, 0)
				if st.Kind != steps.KindOverwrite {
					assert.Less(t, st.J, len(in))
					assert.GreaterOrEqual(t, st.J, 0)
				}
			}
		}
	}
}

// TestSort_EqualValuesNeverSwap checks strict comparisons for the
// exchange-based strategies.
func TestSort_EqualValuesNeverSwap(t *testing.T) {
	for _, algo := range []sorting.Algorithm{sorting.Bubble, sorting.Selection, sorting.Cocktail} {
		res, err := sorting.Sort([]float64{4, 4, 4, 4, 4}, algo)
		require.NoError(t, err)
		assert.Zero(t, res.Stream.Count(steps.KindSwap), algo)
	}
}

func TestSort_Deterministic(t *testing.T) {
	vals, err := sorting.RandomValues(50, 5, 100, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	for _, algo := range sorting.Algorithms() {
		a, err := sorting.Sort(vals, algo)
		require.NoError(t, err)
		b, err := sorting.Sort(vals, algo)
		require.NoError(t, err)
		assert.True(t, a.Stream.Equal(b.Stream), algo)
	}
}

func TestRandomValues(t *testing.T) {
	vals, err := sorting.RandomValues(200, 5, 100, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Len(t, vals, 200)
	for _, v := range vals {
		assert.GreaterOrEqual(t, v, 5.0)
		assert.LessOrEqual(t, v, 100.0)
		assert.Equal(t, math.Trunc(v), v)
	}

	again, err := sorting.RandomValues(200, 5, 100, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, vals, again)

	_, err = sorting.RandomValues(0, 5, 100, nil)
	assert.ErrorIs(t, err, sorting.ErrBadRange)
	_, err = sorting.RandomValues(3, 9, 1, nil)
	assert.ErrorIs(t, err, sorting.ErrBadRange)
}

//----------------------------------------------------------------------------//
// Incremental forms
//----------------------------------------------------------------------------//

func TestSteps_MatchesSort(t *testing.T) {
	vals := []float64{9, 2, 7, 2, 5, 1}
	for _, algo := range sorting.Algorithms() {
		res, err := sorting.Sort(vals, algo)
		require.NoError(t, err)
		seq, err := sorting.Steps(vals, algo)
		require.NoError(t, err)
		assert.True(t, res.Stream.Equal(steps.Collect(seq)), algo)
		assert.True(t, res.Stream.Equal(steps.Collect(seq)), "%s second range", algo)
	}
}

func TestStepper_EarlyStop(t *testing.T) {
	vals := []float64{9, 8, 7, 6, 5, 4, 3, 2, 1}
	for _, algo := range sorting.Algorithms() {
		st, err := sorting.NewStepper(vals, algo)
		require.NoError(t, err)
		for i := 0; i < 4; i++ {
			_, ok := st.Next()
			require.True(t, ok, algo)
		}
		st.Stop()
		_, ok := st.Next()
		assert.False(t, ok, algo)
		assert.Equal(t, 4, st.Index())
		assert.NoError(t, st.Err(), algo)
	}
}

func TestStepper_ErrAfterCancel(t *testing.T) {
	vals := []float64{9, 8, 7, 6, 5}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	st, err := sorting.NewStepper(vals, sorting.Bubble, sorting.WithContext(ctx))
	require.NoError(t, err)
	defer st.Stop()

	for i := 0; i < 2; i++ {
		_, ok := st.Next()
		require.True(t, ok)
	}
	assert.NoError(t, st.Err())
	cancel()
	_, ok := st.Next()
	assert.False(t, ok)
	assert.Equal(t, 2, st.Index())
	assert.ErrorIs(t, st.Err(), context.Canceled)

	done, err := sorting.NewStepper(vals, sorting.Bubble)
	require.NoError(t, err)
	for {
		if _, ok := done.Next(); !ok {
			break
		}
	}
	assert.NoError(t, done.Err())
}

// TestSort_ConcurrentRunsIndependent ranges one lazy sequence from several
// goroutines; every run must match the serial stream. Meaningful under -race.
func TestSort_ConcurrentRunsIndependent(t *testing.T) {
	vals, err := sorting.RandomValues(200, 5, 100, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	const workers = 4
	for _, algo := range sorting.Algorithms() {
		t.Run(string(algo), func(t *testing.T) {
			seq, err := sorting.Steps(vals, algo)
			require.NoError(t, err)
			want := steps.Collect(seq)
			require.NotZero(t, want.Len())

			got := make([]*steps.Stream, workers)
			sorted := make([][]float64, workers)
			var wg sync.WaitGroup
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func(w int) {
					defer wg.Done()
					got[w] = steps.Collect(seq)
					if res, err := sorting.Sort(vals, algo); err == nil {
						sorted[w] = res.Sorted
					}
				}(w)
			}
			wg.Wait()

			for w := range got {
				assert.True(t, want.Equal(got[w]), "worker %d diverged", w)
				assert.Equal(t, reference(vals), sorted[w], "worker %d", w)
			}
		})
	}
}

func TestSort_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := sorting.Sort([]float64{3, 2, 1}, sorting.Quick, sorting.WithContext(ctx))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}
