package search

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/stepviz/grid"
	"github.com/katalvlaran/stepviz/steps"
)

// plan is a validated, ready-to-run invocation. Each execution of a plan
// builds a fresh run, so one plan may be replayed any number of times.
type plan struct {
	g          *grid.Grid
	start, end grid.Coord
	algo       Algorithm
	drive      driver
	opts       Options
}

// prepare applies options and checks every precondition before any
// frontier work starts. The grid is cloned so later caller mutation cannot
// leak into a lazily consumed run.
func prepare(g *grid.Grid, start, end grid.Coord, algo Algorithm, opts []Option) (*plan, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	drive := driverFor(algo)
	if drive == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(algo))
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Validate endpoints
	for _, c := range [...]grid.Coord{start, end} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %s not in %dx%d", ErrOutOfBounds, c, g.Rows(), g.Cols())
		}
	}
	if start == end {
		return nil, fmt.Errorf("%w: %s", ErrSameEndpoints, start)
	}
	for _, c := range [...]grid.Coord{start, end} {
		if g.At(c) == grid.Obstacle {
			return nil, fmt.Errorf("%w: %s", ErrBlockedEndpoint, c)
		}
	}

	return &plan{g: g.Clone(), start: start, end: end, algo: algo, drive: drive, opts: o}, nil
}

// execute runs the plan once, handing each step to yield.
func (p *plan) execute(yield func(steps.Step) bool) *run {
	r := &run{
		g:     p.g,
		start: p.start,
		end:   p.end,
		algo:  p.algo,
		opts:  p.opts,
		ctx:   p.opts.Ctx,
		yield: yield,
	}
	p.drive(r)
	return r
}

// Search runs algo on g from start to end and returns the complete Step
// Stream. Reaching no path is not an error: Result.Found is false and the
// stream holds visits only.
//
// Returns ErrGridNil, ErrUnknownAlgorithm, ErrOutOfBounds, ErrSameEndpoints
// or ErrBlockedEndpoint before any step is produced; the context error if
// the run was cancelled; ErrBrokenParentChain on an internal failure.
//
// Complexity: O(R·C·log(R·C)) for priority strategies, O(R·C) for BFS and
// DFS, O((R·C)²) worst case for IDDFS.
func Search(g *grid.Grid, start, end grid.Coord, algo Algorithm, opts ...Option) (*Result, error) {
	p, err := prepare(g, start, end, algo, opts)
	if err != nil {
		return nil, err
	}

	rec := steps.NewRecorder(p.g.Size())
	r := p.execute(func(st steps.Step) bool {
		rec.Append(st)
		return true
	})
	if r.err != nil {
		return nil, fmt.Errorf("search %s: %w", algo, r.err)
	}

	return &Result{
		Stream:  rec.Stream(),
		Found:   r.found,
		Path:    r.path,
		Visited: r.visited,
	}, nil
}

// Steps validates its arguments like Search and returns a lazy sequence of
// the same steps. Every range over the sequence is an independent run from
// scratch; breaking out of the loop abandons the run.
//
// A cancelled context or an internal failure ends the sequence early and the
// error is not reported: the sequence looks complete. Use Search or a
// Stepper (see Stepper.Err) when the distinction matters.
func Steps(g *grid.Grid, start, end grid.Coord, algo Algorithm, opts ...Option) (iter.Seq[steps.Step], error) {
	p, err := prepare(g, start, end, algo, opts)
	if err != nil {
		return nil, err
	}
	return p.seq(nil), nil
}

// seq returns the lazy form of p. When errp is non-nil the error of each
// finished run is stored there.
func (p *plan) seq(errp *error) iter.Seq[steps.Step] {
	return func(yield func(steps.Step) bool) {
		r := p.execute(yield)
		if errp != nil {
			*errp = r.err
		}
	}
}

// Stepper pulls one step at a time from a single run. It is not safe for
// concurrent use.
type Stepper struct {
	next  func() (steps.Step, bool)
	stop  func()
	index int
	err   error
}

// NewStepper validates its arguments like Search and returns a Stepper
// positioned before the first step. Call Stop when abandoning it early.
func NewStepper(g *grid.Grid, start, end grid.Coord, algo Algorithm, opts ...Option) (*Stepper, error) {
	p, err := prepare(g, start, end, algo, opts)
	if err != nil {
		return nil, err
	}
	s := &Stepper{}
	s.next, s.stop = iter.Pull(p.seq(&s.err))
	return s, nil
}

// Next returns the following step, or false once the run has ended.
func (s *Stepper) Next() (steps.Step, bool) {
	st, ok := s.next()
	if ok {
		s.index++
	}
	return st, ok
}

// Index is the number of steps returned so far.
func (s *Stepper) Index() int { return s.index }

// Stop releases the run. Next returns false afterwards.
func (s *Stepper) Stop() { s.stop() }

// Err returns the error that ended the run early: the context error on
// cancellation, or ErrBrokenParentChain. It is nil while the run is in
// progress, after normal completion and after Stop.
func (s *Stepper) Err() error {
	if s.err == nil {
		return nil
	}
	return fmt.Errorf("search: %w", s.err)
}
