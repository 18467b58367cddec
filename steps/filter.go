package steps

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled boolean predicate over steps. A Filter is safe for
// concurrent use; the compiled program is read-only.
//
// Variables available to the expression:
//
//	kind   string   "visit", "path", "compare", "swap", "overwrite"
//	seq    int      position of the step in its stream
//	row    int      visit/path row        col  int   visit/path column
//	i, j   int      compare/swap indices  index int  overwrite target
//	value  float    overwrite value
type Filter struct {
	source  string
	program *vm.Program
}

// filterEnv returns the expression environment for st at position seq.
func filterEnv(seq int, st Step) map[string]any {
	return map[string]any{
		"kind":  st.Kind.String(),
		"seq":   seq,
		"row":   st.Row,
		"col":   st.Col,
		"i":     st.I,
		"j":     st.J,
		"index": st.I,
		"value": st.Value,
	}
}

// NewFilter compiles expression. The result type must be boolean.
func NewFilter(expression string) (*Filter, error) {
	if expression == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrBadFilter)
	}
	prg, err := expr.Compile(expression,
		expr.Env(filterEnv(0, Step{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadFilter, expression, err)
	}
	return &Filter{source: expression, program: prg}, nil
}

// String returns the source expression.
func (f *Filter) String() string { return f.source }

// Match evaluates the filter on st at position seq.
func (f *Filter) Match(seq int, st Step) (bool, error) {
	out, err := vm.Run(f.program, filterEnv(seq, st))
	if err != nil {
		return false, fmt.Errorf("steps: filter %q at step %d: %w", f.source, seq, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Apply returns a new stream holding the steps of s that match f, in order.
// s is not modified.
func (f *Filter) Apply(s *Stream) (*Stream, error) {
	r := NewRecorder(0)
	for seq, st := range s.All() {
		ok, err := f.Match(seq, st)
		if err != nil {
			return nil, err
		}
		if ok {
			r.Append(st)
		}
	}
	return r.Stream(), nil
}
