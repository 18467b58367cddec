// Package search provides tunable options and error definitions
// for instrumented pathfinding over a grid.Grid.
package search

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/katalvlaran/stepviz/grid"
	"github.com/katalvlaran/stepviz/steps"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrOutOfBounds is returned when start or end lies outside the grid.
	ErrOutOfBounds = errors.New("search: endpoint out of bounds")

	// ErrSameEndpoints is returned when start and end coincide.
	ErrSameEndpoints = errors.New("search: start and end are the same cell")

	// ErrBlockedEndpoint is returned when start or end is an obstacle.
	ErrBlockedEndpoint = errors.New("search: endpoint is an obstacle")

	// ErrUnknownAlgorithm is returned for an unrecognized strategy name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrBrokenParentChain reports a parent map that does not lead back to
	// start. It indicates a bug in a strategy, never bad input.
	ErrBrokenParentChain = errors.New("search: parent chain does not reach start")
)

// Algorithm identifies one search strategy.
type Algorithm string

// The eight search strategies.
const (
	BFS             Algorithm = "bfs"
	DFS             Algorithm = "dfs"
	Greedy          Algorithm = "greedy"
	Bidirectional   Algorithm = "bidirectional"
	AStar           Algorithm = "astar"
	Dijkstra        Algorithm = "dijkstra"
	IDDFS           Algorithm = "iddfs"
	RandomBestFirst Algorithm = "random-best-first"
)

// aliases maps lower-cased display names onto identifiers.
var aliases = map[string]Algorithm{
	"bfs":                        BFS,
	"breadth-first search":       BFS,
	"breadth-first search (bfs)": BFS,
	"dfs":                        DFS,
	"depth-first search":         DFS,
	"depth-first search (dfs)":   DFS,
	"greedy":                     Greedy,
	"greedy best-first search":   Greedy,
	"greedy-best-first":          Greedy,
	"bidirectional":              Bidirectional,
	"bidirectional bfs":          Bidirectional,
	"bidirectional-bfs":          Bidirectional,
	"astar":                      AStar,
	"a*":                         AStar,
	"a* search":                  AStar,
	"a* search algorithm":        AStar,
	"dijkstra":                   Dijkstra,
	"dijkstra's algorithm":       Dijkstra,
	"iddfs":                      IDDFS,
	"iterative deepening dfs":    IDDFS,
	"iterative-deepening-dfs":    IDDFS,
	"random-best-first":          RandomBestFirst,
	"random best-first search":   RandomBestFirst,
	"randomized best-first":      RandomBestFirst,
	"randomized-best-first":      RandomBestFirst,
}

// ParseAlgorithm resolves an identifier or display name, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	if a, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Algorithms returns the eight identifiers in sorted order.
func Algorithms() []Algorithm {
	out := []Algorithm{BFS, DFS, Greedy, Bidirectional, AStar, Dijkstra, IDDFS, RandomBestFirst}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Deterministic reports whether repeated runs of a on identical input
// produce identical streams. Only RandomBestFirst is nondeterministic.
func (a Algorithm) Deterministic() bool { return a != RandomBestFirst }

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters to customize a search run.
type Options struct {
	// Ctx allows cancellation. It is checked once per frontier selection.
	Ctx context.Context

	// Rand supplies random tie-breaks for RandomBestFirst. A *rand.Rand is
	// not goroutine-safe; do not share one between concurrent runs.
	Rand *rand.Rand

	// Seed, when non-nil, gives every run a fresh rand.Rand from the same
	// seed, so RandomBestFirst becomes reproducible. It takes precedence
	// over Rand.
	Seed *int64
}

// DefaultOptions returns Options with a background context and no seed:
// RandomBestFirst then draws tie-breaks from a time-seeded source.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed makes RandomBestFirst reproducible: each run reseeds from seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = &seed
		o.Rand = nil
	}
}

// WithRand supplies the tie-break source directly. Its state advances
// across runs.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
			o.Seed = nil
		}
	}
}

// Result holds the outcome of a completed search:
//   - Stream: visit steps, followed by path steps when Found.
//   - Found: whether the goal was reached.
//   - Path: the route from start to end inclusive; nil when not Found.
//   - Visited: number of visit steps.
type Result struct {
	Stream  *steps.Stream
	Found   bool
	Path    []grid.Coord
	Visited int
}
