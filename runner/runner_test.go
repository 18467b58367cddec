package runner_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/grid"
	"github.com/katalvlaran/stepviz/runner"
	"github.com/katalvlaran/stepviz/search"
	"github.com/katalvlaran/stepviz/sorting"
	"github.com/katalvlaran/stepviz/steps"
)

const scenarios = `
name: open-bfs
kind: search
algorithm: Breadth-First Search
grid:
  layout: |
    S..
    ...
    ..E
---
---
kind: sort
algorithm: Heap Sort
array:
  values: [5, 3, 4, 1]
---
name: playground
kind: search
algorithm: random-best-first
seed: 11
grid:
  random: {rows: 12, cols: 20}
  start: {row: 6, col: 1}
  end: {row: 6, col: 18}
`

// newRunner returns a runner logging into buf with a frozen clock.
func newRunner(t *testing.T, buf *bytes.Buffer) *runner.Runner {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	now := time.Unix(0, 0)
	r, err := runner.New(runner.WithLogger(logger), runner.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	return r
}

func mustLoad(t *testing.T, doc string) []*runner.Scenario {
	t.Helper()
	scs, err := runner.LoadScenarios(strings.NewReader(doc))
	require.NoError(t, err)
	return scs
}

//----------------------------------------------------------------------------//
// Loading
//----------------------------------------------------------------------------//

func TestLoadScenarios_MultiDocument(t *testing.T) {
	scs := mustLoad(t, scenarios)
	require.Len(t, scs, 3)

	assert.Equal(t, "open-bfs", scs[0].Name)
	assert.Equal(t, runner.KindSearch, scs[0].Kind)

	// the empty document is skipped; unnamed ones are numbered
	assert.Equal(t, "scenario-2", scs[1].Name)
	assert.Equal(t, []float64{5, 3, 4, 1}, scs[1].Array.Values)

	assert.Equal(t, int64(11), scs[2].Seed)
	require.NotNil(t, scs[2].Grid.Start)
	assert.Equal(t, grid.At(6, 1), *scs[2].Grid.Start)
}

func TestLoadScenarios_Invalid(t *testing.T) {
	cases := map[string]string{
		"UnknownKind":    "kind: graph\nalgorithm: bfs\n",
		"UnknownField":   "kind: sort\nalgorithm: quick\ncolour: red\narray: {values: [1]}\n",
		"BothGrids":      "kind: search\nalgorithm: bfs\ngrid: {layout: \"SE\", random: {rows: 2}}\n",
		"NoGrid":         "kind: search\nalgorithm: bfs\n",
		"SortWithGrid":   "kind: sort\nalgorithm: quick\ngrid: {layout: SE}\narray: {values: [1]}\n",
		"NoArray":        "kind: sort\nalgorithm: quick\narray: {}\n",
		"UnknownSearch":  "kind: search\nalgorithm: beam\ngrid: {layout: SE}\n",
		"UnknownSorting": "kind: sort\nalgorithm: bogo\narray: {values: [1]}\n",
		"OnlyEmptyDocs":  "---\n---\n",
		"MalformedYAML":  "kind: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := runner.LoadScenarios(strings.NewReader(doc))
			assert.ErrorIs(t, err, runner.ErrInvalidScenario)
		})
	}

	_, err := runner.LoadScenarios(strings.NewReader(cases["UnknownSearch"]))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
	_, err = runner.LoadScenarios(strings.NewReader(cases["UnknownSorting"]))
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}

//----------------------------------------------------------------------------//
// Running
//----------------------------------------------------------------------------//

func TestRun_SearchLayout(t *testing.T) {
	var buf bytes.Buffer
	r := newRunner(t, &buf)
	scs := mustLoad(t, scenarios)

	rep, err := r.Run(context.Background(), scs[0])
	require.NoError(t, err)

	_, err = uuid.Parse(rep.RunID)
	require.NoError(t, err)
	assert.Equal(t, "bfs", rep.Algorithm)
	assert.Equal(t, "Breadth-First Search (BFS)", rep.Title)
	assert.True(t, rep.Found)
	assert.Len(t, rep.Path, 5)
	assert.Equal(t, 9, rep.Stream.Count(steps.KindVisit))
	assert.Equal(t, "S**\nvv*\nvvE", rep.Board)

	hash, err := rep.Stream.Hash()
	require.NoError(t, err)
	assert.Equal(t, hash, rep.Hash)
	assert.Zero(t, rep.Elapsed)

	logs := buf.String()
	assert.Contains(t, logs, "run started")
	assert.Contains(t, logs, "run finished")
	assert.Contains(t, logs, "run_id="+rep.RunID)
	assert.Contains(t, logs, "scenario=open-bfs")
}

func TestRun_SortValues(t *testing.T) {
	var buf bytes.Buffer
	r := newRunner(t, &buf)
	scs := mustLoad(t, scenarios)

	rep, err := r.Run(context.Background(), scs[1])
	require.NoError(t, err)
	assert.Equal(t, "heap", rep.Algorithm)
	assert.Equal(t, "Heap Sort", rep.Title)
	assert.Equal(t, []float64{5, 3, 4, 1}, rep.Input)
	assert.Equal(t, []float64{1, 3, 4, 5}, rep.Sorted)
	assert.Equal(t, 11, rep.Stream.Len())
}

func TestRun_SeededRandomGridIsReproducible(t *testing.T) {
	var buf bytes.Buffer
	r := newRunner(t, &buf)
	sc := mustLoad(t, scenarios)[2]

	a, err := r.Run(context.Background(), sc)
	require.NoError(t, err)
	b, err := r.Run(context.Background(), sc)
	require.NoError(t, err)

	assert.Equal(t, a.Hash, b.Hash)
	assert.Equal(t, a.Board, b.Board)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestRun_RandomArrayDefaults(t *testing.T) {
	var buf bytes.Buffer
	r := newRunner(t, &buf)
	sc := mustLoad(t, "kind: sort\nalgorithm: merge\nseed: 3\narray:\n  random: {}\n")[0]

	rep, err := r.Run(context.Background(), sc)
	require.NoError(t, err)
	assert.Len(t, rep.Input, runner.DefaultArraySize)
	for _, v := range rep.Input {
		assert.GreaterOrEqual(t, v, float64(runner.DefaultArrayMin))
		assert.LessOrEqual(t, v, float64(runner.DefaultArrayMax))
	}
	assert.IsNonDecreasing(t, rep.Sorted)
}

func TestRun_ExplicitZeroesAreHonoured(t *testing.T) {
	var buf bytes.Buffer
	r := newRunner(t, &buf)

	sc := mustLoad(t, "kind: search\nalgorithm: bfs\ngrid:\n  random: {rows: 4, cols: 6, density: 0}\n")[0]
	require.NotNil(t, sc.Grid.Random.Density)
	rep, err := r.Run(context.Background(), sc)
	require.NoError(t, err)
	assert.NotContains(t, rep.Board, "#")
	require.True(t, rep.Found)
	assert.Len(t, rep.Path, 4+6-1)

	sc = mustLoad(t, "kind: sort\nalgorithm: insertion\narray:\n  random: {size: 8, min: 0, max: 0}\n")[0]
	rep, err = r.Run(context.Background(), sc)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 8), rep.Input)

	sc = mustLoad(t, "kind: sort\nalgorithm: insertion\narray:\n  random: {size: 20, min: -3}\n")[0]
	rep, err = r.Run(context.Background(), sc)
	require.NoError(t, err)
	for _, v := range rep.Input {
		assert.GreaterOrEqual(t, v, -3.0)
		assert.LessOrEqual(t, v, float64(runner.DefaultArrayMax))
	}
}

func TestRun_LayoutEndpointErrors(t *testing.T) {
	var buf bytes.Buffer
	r := newRunner(t, &buf)

	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"DuplicateStart", "kind: search\nalgorithm: bfs\ngrid: {layout: \"S.S\\n..E\"}\n", grid.ErrDuplicateStart},
		{"MissingEnd", "kind: search\nalgorithm: bfs\ngrid: {layout: \"S..\\n...\"}\n", grid.ErrMissingEnd},
		{"DuplicateEndStartGiven", "kind: search\nalgorithm: bfs\ngrid: {layout: \"..E\\nE..\", start: {row: 0, col: 0}}\n", grid.ErrDuplicateEnd},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Run(context.Background(), mustLoad(t, tc.doc)[0])
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRun_EndpointOverride(t *testing.T) {
	var buf bytes.Buffer
	r := newRunner(t, &buf)
	sc := mustLoad(t, "kind: search\nalgorithm: astar\ngrid:\n  layout: \"S...\\n....\"\n  end: {row: 1, col: 3}\n")[0]

	rep, err := r.Run(context.Background(), sc)
	require.NoError(t, err)
	assert.Equal(t, grid.At(0, 0), rep.Path[0])
	assert.Equal(t, grid.At(1, 3), rep.Path[len(rep.Path)-1])
}

func TestRun_EnginePreconditions(t *testing.T) {
	var buf bytes.Buffer
	r := newRunner(t, &buf)

	sc := mustLoad(t, "kind: search\nalgorithm: dfs\ngrid:\n  layout: \"...\\n..E\"\n")[0]
	_, err := r.Run(context.Background(), sc)
	assert.ErrorIs(t, err, grid.ErrMissingStart)

	sc = mustLoad(t, "kind: search\nalgorithm: dfs\ngrid:\n  layout: \"S..\\n...\"\n  start: {row: 0, col: 2}\n  end: {row: 0, col: 2}\n")[0]
	_, err = r.Run(context.Background(), sc)
	assert.ErrorIs(t, err, search.ErrSameEndpoints)

	sc = mustLoad(t, "kind: sort\nalgorithm: quick\narray: {values: [1, .nan, 2]}\n")[0]
	_, err = r.Run(context.Background(), sc)
	assert.ErrorIs(t, err, sorting.ErrNotANumber)
	assert.Contains(t, buf.String(), "run failed")
}

func TestRun_NoPathIsNotAnError(t *testing.T) {
	var buf bytes.Buffer
	r := newRunner(t, &buf)
	sc := mustLoad(t, "kind: search\nalgorithm: dijkstra\ngrid:\n  layout: \"S#E\"\n")[0]

	rep, err := r.Run(context.Background(), sc)
	require.NoError(t, err)
	assert.False(t, rep.Found)
	assert.Empty(t, rep.Path)
	assert.Contains(t, buf.String(), "no path")
}

func TestRunAll_StopsAtFirstFailure(t *testing.T) {
	var buf bytes.Buffer
	r := newRunner(t, &buf)
	scs := mustLoad(t, scenarios)
	bad := mustLoad(t, "kind: search\nalgorithm: bfs\ngrid: {layout: \"S..\"}\n")[0]

	reps, err := r.RunAll(context.Background(), []*runner.Scenario{scs[0], bad, scs[1]})
	assert.ErrorIs(t, err, grid.ErrMissingEnd)
	assert.Len(t, reps, 1)
}

func TestRun_Cancelled(t *testing.T) {
	var buf bytes.Buffer
	r := newRunner(t, &buf)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, mustLoad(t, scenarios)[0])
	assert.ErrorIs(t, err, context.Canceled)
}
