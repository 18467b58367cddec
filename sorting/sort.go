package sorting

import (
	"fmt"
	"iter"
	"math"
	"math/rand"

	"github.com/katalvlaran/stepviz/steps"
)

// plan is a validated invocation holding a private copy of the input.
type plan struct {
	values []float64
	algo   Algorithm
	run    sorter
	opts   Options
}

func prepare(values []float64, algo Algorithm, opts []Option) (*plan, error) {
	run := sorterFor(algo)
	if run == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(algo))
	}
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: index %d is %v", ErrNotANumber, i, v)
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cp := make([]float64, len(values))
	copy(cp, values)

	return &plan{values: cp, algo: algo, run: run, opts: o}, nil
}

// execute sorts a fresh copy of the input, handing each step to yield.
func (p *plan) execute(yield func(steps.Step) bool) *tracer {
	a := make([]float64, len(p.values))
	copy(a, p.values)
	t := &tracer{a: a, ctx: p.opts.Ctx, yield: yield}
	p.run(t)
	return t
}

// Sort runs algo over a copy of values and returns the complete Step Stream
// together with the sorted array. values is never modified.
//
// Returns ErrUnknownAlgorithm, ErrEmptyInput or ErrNotANumber before any step
// is produced, or the context error if the run was cancelled.
func Sort(values []float64, algo Algorithm, opts ...Option) (*Result, error) {
	p, err := prepare(values, algo, opts)
	if err != nil {
		return nil, err
	}

	rec := steps.NewRecorder(min(len(values)*len(values), 1<<16))
	t := p.execute(func(st steps.Step) bool {
		rec.Append(st)
		return true
	})
	if t.err != nil {
		return nil, fmt.Errorf("sort %s: %w", algo, t.err)
	}

	return &Result{Stream: rec.Stream(), Sorted: t.a}, nil
}

// Steps validates its arguments like Sort and returns a lazy sequence of the
// same steps. Every range over the sequence sorts a fresh copy.
//
// Cancellation of the configured context ends the sequence early without
// reporting an error. Use Sort or a Stepper (see Stepper.Err) to observe it.
func Steps(values []float64, algo Algorithm, opts ...Option) (iter.Seq[steps.Step], error) {
	p, err := prepare(values, algo, opts)
	if err != nil {
		return nil, err
	}
	return p.seq(nil), nil
}

// seq returns the lazy form of p. When errp is non-nil the error of each
// finished run is stored there.
func (p *plan) seq(errp *error) iter.Seq[steps.Step] {
	return func(yield func(steps.Step) bool) {
		t := p.execute(yield)
		if errp != nil {
			*errp = t.err
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

// NewStepper validates its arguments like Sort and returns a Stepper
// positioned before the first step. Call Stop when abandoning it early.
func NewStepper(values []float64, algo Algorithm, opts ...Option) (*Stepper, error) {
	p, err := prepare(values, algo, opts)
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

// Err returns the context error if cancellation ended the run early. It is
// nil while the run is in progress, after normal completion and after Stop.
func (s *Stepper) Err() error {
	if s.err == nil {
		return nil
	}
	return fmt.Errorf("sorting: %w", s.err)
}

// RandomValues returns n integers drawn uniformly from [lo, hi], as
// float64. A nil rng uses a fixed seed.
func RandomValues(n, lo, hi int, rng *rand.Rand) ([]float64, error) {
	if n < 1 || lo > hi {
		return nil, fmt.Errorf("%w: n=%d [%d,%d]", ErrBadRange, n, lo, hi)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(lo + rng.Intn(hi-lo+1))
	}
	return out, nil
}
