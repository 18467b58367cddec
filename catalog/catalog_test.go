package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/catalog"
	"github.com/katalvlaran/stepviz/search"
	"github.com/katalvlaran/stepviz/sorting"
)

// TestLoad_CoversEverySearchStrategy checks that each search identifier has
// an entry whose flags agree with the engine.
func TestLoad_CoversEverySearchStrategy(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	optimal := map[search.Algorithm]bool{
		search.BFS: true, search.AStar: true, search.Dijkstra: true, search.Bidirectional: true,
	}
	for _, algo := range search.Algorithms() {
		e, err := c.Lookup(catalog.Search, string(algo))
		require.NoError(t, err, algo)
		assert.NotEmpty(t, e.Name)
		assert.NotEmpty(t, e.Description)
		assert.NotEmpty(t, e.TimeComplexity)
		assert.NotEmpty(t, e.HowItWorks)
		assert.Equal(t, optimal[algo], e.Optimal, algo)
		assert.Equal(t, algo.Deterministic(), e.Deterministic, algo)

		// display names resolve back to the identifier
		parsed, err := search.ParseAlgorithm(e.Name)
		require.NoError(t, err, e.Name)
		assert.Equal(t, algo, parsed)
	}

	all, err := c.Family(catalog.Search)
	require.NoError(t, err)
	assert.Len(t, all, len(search.Algorithms()))
}

func TestLoad_CoversEverySortingStrategy(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	for _, algo := range sorting.Algorithms() {
		e, err := c.Lookup(catalog.Sorting, string(algo))
		require.NoError(t, err, algo)
		assert.True(t, e.Deterministic, algo)
		assert.False(t, e.Optimal, algo)
		assert.Equal(t, algo.Stable(), e.Stable, algo)

		parsed, err := sorting.ParseAlgorithm(e.Name)
		require.NoError(t, err, e.Name)
		assert.Equal(t, algo, parsed)
	}

	all, err := c.Family(catalog.Sorting)
	require.NoError(t, err)
	assert.Len(t, all, len(sorting.Algorithms()))
}

func TestLookup_Errors(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	_, err = c.Lookup(catalog.Search, "beam")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = c.Lookup(catalog.Family("graphs"), "bfs")
	assert.ErrorIs(t, err, catalog.ErrUnknownFamily)

	_, err = c.Family(catalog.Family("graphs"))
	assert.ErrorIs(t, err, catalog.ErrUnknownFamily)
}

func TestFamily_ReturnsCopy(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	a, err := c.Family(catalog.Sorting)
	require.NoError(t, err)
	a[0].Name = "changed"

	b, err := c.Family(catalog.Sorting)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", b[0].Name)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"UnknownKey":  "search:\n  - id: bfs\n    name: BFS\n    colour: red\n",
		"MissingName": "search:\n  - id: bfs\n",
		"Duplicate":   "sorting:\n  - id: heap\n    name: A\n  - id: heap\n    name: B\n",
		"NotYAML":     "search: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(doc))
			assert.ErrorIs(t, err, catalog.ErrInvalid)
		})
	}
}
