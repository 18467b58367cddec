package runner

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepviz/grid"
	"github.com/katalvlaran/stepviz/search"
	"github.com/katalvlaran/stepviz/sorting"
)

// ErrInvalidScenario is returned when a scenario document is malformed or
// inconsistent.
var ErrInvalidScenario = errors.New("runner: invalid scenario")

// Kind selects the engine a scenario runs on.
type Kind string

const (
	KindSearch Kind = "search"
	KindSort   Kind = "sort"
)

// Playground defaults, matching the interactive visualizer.
const (
	DefaultRows        = 20
	DefaultCols        = 40
	DefaultDensity     = 0.25
	DefaultArraySize   = 50
	DefaultArrayMin    = 5
	DefaultArrayMax    = 100
	defaultScenarioTag = "scenario"
)

// Scenario is one run request, decoded from YAML:
//
//	name: maze-astar
//	kind: search
//	algorithm: A* Search
//	seed: 7
//	grid:
//	  layout: |
//	    S..#
//	    .#..
//	    ...E
//
// A search scenario takes either grid.layout, whose S and E markers are the
// endpoints unless start/end override them, or grid.random, which needs
// start/end or falls back to opposite corners. A sort scenario takes either
// array.values or array.random.
//
// Seed drives random grids and arrays, and makes Randomized Best-First
// reproducible. Zero leaves Randomized Best-First time-seeded; random inputs
// then use a fixed default seed.
type Scenario struct {
	Name      string     `yaml:"name"`
	Kind      Kind       `yaml:"kind"`
	Algorithm string     `yaml:"algorithm"`
	Seed      int64      `yaml:"seed,omitempty"`
	Grid      *GridSpec  `yaml:"grid,omitempty"`
	Array     *ArraySpec `yaml:"array,omitempty"`
}

// GridSpec describes the search grid.
type GridSpec struct {
	Layout string      `yaml:"layout,omitempty"`
	Random *RandomGrid `yaml:"random,omitempty"`
	Start  *grid.Coord `yaml:"start,omitempty"`
	End    *grid.Coord `yaml:"end,omitempty"`
}

// RandomGrid asks for generated obstacles. Zero Rows or Cols and an absent
// Density take the playground defaults; density: 0 yields an open grid.
type RandomGrid struct {
	Rows    int      `yaml:"rows,omitempty"`
	Cols    int      `yaml:"cols,omitempty"`
	Density *float64 `yaml:"density,omitempty"`
}

// ArraySpec describes the sort input.
type ArraySpec struct {
	Values []float64    `yaml:"values,omitempty"`
	Random *RandomArray `yaml:"random,omitempty"`
}

// RandomArray asks for generated values in [Min, Max]. A zero Size and an
// absent Min or Max take the playground defaults.
type RandomArray struct {
	Size int  `yaml:"size,omitempty"`
	Min  *int `yaml:"min,omitempty"`
	Max  *int `yaml:"max,omitempty"`
}

// LoadScenarios decodes every YAML document in r. Documents are separated
// by "---"; empty documents are skipped.
func LoadScenarios(r io.Reader) ([]*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var out []*Scenario
	for i := 0; ; i++ {
		var sc Scenario
		err := dec.Decode(&sc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %v", ErrInvalidScenario, i, err)
		}
		if sc == (Scenario{}) {
			continue
		}
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("%s-%d", defaultScenarioTag, len(out)+1)
		}
		if err := sc.Validate(); err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		out = append(out, &sc)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no scenarios", ErrInvalidScenario)
	}
	return out, nil
}

// LoadFile reads scenarios from a YAML file.
func LoadFile(path string) ([]*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadScenarios(f)
}

// Validate checks that the scenario is internally consistent. Grid and
// value preconditions are left to the engines.
func (sc *Scenario) Validate() error {
	switch sc.Kind {
	case KindSearch:
		if _, err := search.ParseAlgorithm(sc.Algorithm); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidScenario, sc.Name, err)
		}
		if sc.Array != nil {
			return fmt.Errorf("%w: %s: search scenario with array", ErrInvalidScenario, sc.Name)
		}
		if sc.Grid == nil || (sc.Grid.Layout == "") == (sc.Grid.Random == nil) {
			return fmt.Errorf("%w: %s: need exactly one of grid.layout or grid.random", ErrInvalidScenario, sc.Name)
		}
	case KindSort:
		if _, err := sorting.ParseAlgorithm(sc.Algorithm); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidScenario, sc.Name, err)
		}
		if sc.Grid != nil {
			return fmt.Errorf("%w: %s: sort scenario with grid", ErrInvalidScenario, sc.Name)
		}
		if sc.Array == nil || (len(sc.Array.Values) == 0) == (sc.Array.Random == nil) {
			return fmt.Errorf("%w: %s: need exactly one of array.values or array.random", ErrInvalidScenario, sc.Name)
		}
	default:
		return fmt.Errorf("%w: %s: kind %q, want %q or %q", ErrInvalidScenario, sc.Name, sc.Kind, KindSearch, KindSort)
	}
	return nil
}

// buildGrid materializes the search grid and its endpoints.
func (sc *Scenario) buildGrid() (*grid.Grid, grid.Coord, grid.Coord, error) {
	spec := sc.Grid
	var (
		g          *grid.Grid
		start, end grid.Coord
		err        error
	)
	if spec.Layout != "" {
		if g, err = grid.Parse(spec.Layout); err != nil {
			return nil, start, end, err
		}
		switch {
		case spec.Start == nil && spec.End == nil:
			if start, end, err = g.Endpoints(); err != nil {
				return nil, start, end, err
			}
		case spec.Start == nil:
			if start, err = locate(g, grid.Start, grid.ErrMissingStart, grid.ErrDuplicateStart); err != nil {
				return nil, start, end, err
			}
		case spec.End == nil:
			if end, err = locate(g, grid.End, grid.ErrMissingEnd, grid.ErrDuplicateEnd); err != nil {
				return nil, start, end, err
			}
		}
	} else {
		rows, cols, density := spec.Random.Rows, spec.Random.Cols, DefaultDensity
		if rows == 0 {
			rows = DefaultRows
		}
		if cols == 0 {
			cols = DefaultCols
		}
		if spec.Random.Density != nil {
			density = *spec.Random.Density
		}
		if g, err = grid.RandomObstacles(rows, cols, density, grid.NewRand(sc.Seed)); err != nil {
			return nil, start, end, err
		}
		start, end = grid.At(0, 0), grid.At(rows-1, cols-1)
	}

	if spec.Start != nil {
		start = *spec.Start
	}
	if spec.End != nil {
		end = *spec.End
	}
	if g, err = grid.PlaceEndpoints(g, start, end); err != nil {
		return nil, start, end, err
	}
	return g, start, end, nil
}

// locate finds the single cell in state s, for layouts where only the other
// endpoint is overridden.
func locate(g *grid.Grid, s grid.State, missing, duplicate error) (grid.Coord, error) {
	var (
		at    grid.Coord
		found bool
	)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.At(grid.At(r, c)) != s {
				continue
			}
			if found {
				return at, duplicate
			}
			at, found = grid.At(r, c), true
		}
	}
	if !found {
		return at, missing
	}
	return at, nil
}

// buildValues materializes the sort input.
func (sc *Scenario) buildValues() ([]float64, error) {
	if len(sc.Array.Values) > 0 {
		return sc.Array.Values, nil
	}
	spec := sc.Array.Random
	size, lo, hi := spec.Size, DefaultArrayMin, DefaultArrayMax
	if size == 0 {
		size = DefaultArraySize
	}
	if spec.Min != nil {
		lo = *spec.Min
	}
	if spec.Max != nil {
		hi = *spec.Max
	}
	return sorting.RandomValues(size, lo, hi, grid.NewRand(sc.Seed))
}
