package sorting

import (
	"context"

	"github.com/katalvlaran/stepviz/steps"
)

// tracer owns the working copy of one run and reports every comparison and
// mutation to yield. All methods return false once the run must stop, and
// algorithms unwind as soon as they see false.
type tracer struct {
	a     []float64
	ctx   context.Context
	yield func(steps.Step) bool

	halted bool
	err    error
}

func (t *tracer) emit(st steps.Step) bool {
	if t.halted {
		return false
	}
	if !t.yield(st) {
		t.halted = true
		return false
	}
	return true
}

// compare emits Compare(i, j). Cancellation is checked here, once per
// comparison.
func (t *tracer) compare(i, j int) bool {
	if t.halted {
		return false
	}
	if err := t.ctx.Err(); err != nil {
		t.err = err
		t.halted = true
		return false
	}
	return t.emit(steps.Compare(i, j))
}

// swap exchanges a[i] and a[j] and emits Swap(i, j).
func (t *tracer) swap(i, j int) bool {
	t.a[i], t.a[j] = t.a[j], t.a[i]
	return t.emit(steps.Swap(i, j))
}

// overwrite stores v at dst[k] and emits Overwrite(k, v). dst is the
// working array or, during merge sort, its auxiliary twin.
func (t *tracer) overwrite(dst []float64, k int, v float64) bool {
	dst[k] = v
	return t.emit(steps.Overwrite(k, v))
}
