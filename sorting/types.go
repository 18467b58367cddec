// Package sorting provides tunable options and error definitions
// for instrumented sorting of numeric arrays.
package sorting

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/stepviz/steps"
)

// Sentinel errors for sort execution.
var (
	// ErrEmptyInput is returned for a zero-length array.
	ErrEmptyInput = errors.New("sorting: empty input")

	// ErrNotANumber is returned when a value is NaN or infinite; such values
	// break the total order every strategy relies on.
	ErrNotANumber = errors.New("sorting: value is not a finite number")

	// ErrUnknownAlgorithm is returned for an unrecognized strategy name.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

	// ErrBadRange is returned by RandomValues for n < 1 or min > max.
	ErrBadRange = errors.New("sorting: invalid random range")
)

// Algorithm identifies one sorting strategy.
type Algorithm string

// The seven sorting strategies.
const (
	Bubble    Algorithm = "bubble"
	Selection Algorithm = "selection"
	Insertion Algorithm = "insertion"
	Merge     Algorithm = "merge"
	Quick     Algorithm = "quick"
	Heap      Algorithm = "heap"
	Cocktail  Algorithm = "cocktail"
)

// aliases maps lower-cased display names onto identifiers.
var aliases = map[string]Algorithm{
	"bubble":               Bubble,
	"bubble sort":          Bubble,
	"selection":            Selection,
	"selection sort":       Selection,
	"insertion":            Insertion,
	"insertion sort":       Insertion,
	"merge":                Merge,
	"merge sort":           Merge,
	"quick":                Quick,
	"quick sort":           Quick,
	"quicksort":            Quick,
	"heap":                 Heap,
	"heap sort":            Heap,
	"heapsort":             Heap,
	"cocktail":             Cocktail,
	"cocktail sort":        Cocktail,
	"cocktail shaker sort": Cocktail,
	"cocktail-shaker":      Cocktail,
}

// ParseAlgorithm resolves an identifier or display name, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	if a, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Algorithms returns the seven identifiers in sorted order.
func Algorithms() []Algorithm {
	out := []Algorithm{Bubble, Selection, Insertion, Merge, Quick, Heap, Cocktail}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Stable reports whether a keeps equal values in their input order.
func (a Algorithm) Stable() bool {
	switch a {
	case Bubble, Insertion, Merge, Cocktail:
		return true
	default:
		return false
	}
}

// Option configures sort behavior via functional arguments.
type Option func(*Options)

// Options holds parameters to customize a sort run.
type Options struct {
	// Ctx allows cancellation. It is checked once per comparison.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
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

// Result holds the outcome of a completed sort:
//   - Stream: compare, swap and overwrite steps in emission order.
//   - Sorted: the final ascending array, equal to replaying Stream
//     against the input.
type Result struct {
	Stream *steps.Stream
	Sorted []float64
}
