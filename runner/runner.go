// Package runner loads run scenarios, dispatches them to the search or
// sorting engine, and reports each run under its own correlation ID.
//
// Logging goes through log/slog. Every record emitted while a run is in
// progress carries run_id and scenario attributes, injected from the
// context by CorrelationHandler.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/stepviz/catalog"
	"github.com/katalvlaran/stepviz/grid"
	"github.com/katalvlaran/stepviz/search"
	"github.com/katalvlaran/stepviz/sorting"
	"github.com/katalvlaran/stepviz/steps"
)

// ErrReplayMismatch reports a stream whose replay disagrees with the
// engine's own result. It indicates an engine bug.
var ErrReplayMismatch = errors.New("runner: replay does not reproduce result")

// Report is the outcome of one scenario.
type Report struct {
	RunID     string        `json:"run_id"`
	Scenario  string        `json:"scenario"`
	Kind      Kind          `json:"kind"`
	Algorithm string        `json:"algorithm"`
	Title     string        `json:"title"`
	Stream    *steps.Stream `json:"steps"`
	Hash      string        `json:"hash"`
	Elapsed   time.Duration `json:"elapsed_ns"`

	// search
	Found bool         `json:"found,omitempty"`
	Path  []grid.Coord `json:"path,omitempty"`
	Board string       `json:"board,omitempty"`

	// sort
	Input  []float64 `json:"input,omitempty"`
	Sorted []float64 `json:"sorted,omitempty"`
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. Its handler is wrapped so run_id is added.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = slog.New(NewCorrelationHandler(l.Handler()))
		}
	}
}

// WithCatalog sets the catalog used for display titles.
func WithCatalog(c *catalog.Catalog) Option {
	return func(r *Runner) {
		if c != nil {
			r.catalog = c
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// Runner executes scenarios. It holds no per-run state and is safe for
// concurrent use.
type Runner struct {
	logger  *slog.Logger
	catalog *catalog.Catalog
	now     func() time.Time
}

// New returns a Runner. Without WithLogger it discards logs; without
// WithCatalog it uses the built-in catalog.
func New(opts ...Option) (*Runner, error) {
	r := &Runner{
		logger: slog.New(NewCorrelationHandler(slog.NewTextHandler(io.Discard, nil))),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.catalog == nil {
		c, err := catalog.Load()
		if err != nil {
			return nil, err
		}
		r.catalog = c
	}
	return r, nil
}

// Run executes one scenario. Precondition errors from the engines are
// returned unchanged in the chain, so errors.Is works against the search
// and sorting sentinels.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Report, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	ctx = WithScenario(WithRunID(ctx, runID), sc.Name)

	rep := &Report{RunID: runID, Scenario: sc.Name, Kind: sc.Kind}
	r.logger.InfoContext(ctx, "run started", slog.String("kind", string(sc.Kind)), slog.String("algorithm", sc.Algorithm))
	began := r.now()

	var err error
	switch sc.Kind {
	case KindSearch:
		err = r.runSearch(ctx, sc, rep)
	case KindSort:
		err = r.runSort(ctx, sc, rep)
	}
	if err == nil {
		rep.Hash, err = rep.Stream.Hash()
	}
	rep.Elapsed = r.now().Sub(began)
	if err != nil {
		r.logger.ErrorContext(ctx, "run failed", slog.Any("error", err))
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	r.logger.InfoContext(ctx, "run finished",
		slog.String("algorithm", rep.Algorithm),
		slog.Int("steps", rep.Stream.Len()),
		slog.String("hash", rep.Hash),
		slog.Duration("elapsed", rep.Elapsed),
	)
	return rep, nil
}

// RunAll executes scenarios in order and stops at the first failure,
// returning the reports completed so far.
func (r *Runner) RunAll(ctx context.Context, scs []*Scenario) ([]*Report, error) {
	out := make([]*Report, 0, len(scs))
	for _, sc := range scs {
		rep, err := r.Run(ctx, sc)
		if err != nil {
			return out, err
		}
		out = append(out, rep)
	}
	return out, nil
}

func (r *Runner) runSearch(ctx context.Context, sc *Scenario, rep *Report) error {
	algo, err := search.ParseAlgorithm(sc.Algorithm)
	if err != nil {
		return err
	}
	rep.Algorithm, rep.Title = string(algo), r.title(catalog.Search, string(algo))

	g, start, end, err := sc.buildGrid()
	if err != nil {
		return err
	}
	r.logger.DebugContext(ctx, "grid ready",
		slog.Int("rows", g.Rows()), slog.Int("cols", g.Cols()),
		slog.Int("obstacles", g.Count(grid.Obstacle)),
		slog.String("start", start.Key()), slog.String("end", end.Key()),
	)

	opts := []search.Option{search.WithContext(ctx)}
	if sc.Seed != 0 {
		opts = append(opts, search.WithSeed(sc.Seed))
	}
	res, err := search.Search(g, start, end, algo, opts...)
	if err != nil {
		return err
	}

	board, err := steps.ReplayGrid(g, res.Stream)
	if err != nil {
		return err
	}
	rep.Stream, rep.Found, rep.Path, rep.Board = res.Stream, res.Found, res.Path, board.String()
	if !res.Found {
		r.logger.WarnContext(ctx, "no path", slog.Int("visited", res.Visited))
	}
	return nil
}

func (r *Runner) runSort(ctx context.Context, sc *Scenario, rep *Report) error {
	algo, err := sorting.ParseAlgorithm(sc.Algorithm)
	if err != nil {
		return err
	}
	rep.Algorithm, rep.Title = string(algo), r.title(catalog.Sorting, string(algo))

	values, err := sc.buildValues()
	if err != nil {
		return err
	}
	res, err := sorting.Sort(values, algo, sorting.WithContext(ctx))
	if err != nil {
		return err
	}

	replayed, err := steps.ReplayValues(values, res.Stream)
	if err != nil {
		return err
	}
	if !slices.Equal(replayed, res.Sorted) {
		return fmt.Errorf("%w: %s", ErrReplayMismatch, algo)
	}
	rep.Stream, rep.Input, rep.Sorted = res.Stream, slices.Clone(values), res.Sorted
	return nil
}

// title returns the display name for id, or id itself when the catalog has
// no entry.
func (r *Runner) title(f catalog.Family, id string) string {
	e, err := r.catalog.Lookup(f, id)
	if err != nil {
		return id
	}
	return e.Name
}
