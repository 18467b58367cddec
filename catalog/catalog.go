// Package catalog describes every search and sorting strategy: display
// name, complexity, a plain-language explanation, and the properties the
// engines guarantee (optimality, determinism, stability).
//
// The descriptions live in an embedded YAML document and are parsed once on
// first use.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for catalog access.
var (
	// ErrNotFound is returned when no entry matches a family and id.
	ErrNotFound = errors.New("catalog: entry not found")

	// ErrUnknownFamily is returned for a family other than Search or Sorting.
	ErrUnknownFamily = errors.New("catalog: unknown family")

	// ErrInvalid is returned when a catalog document fails validation.
	ErrInvalid = errors.New("catalog: invalid document")
)

// Family groups strategies by the engine that runs them.
type Family string

const (
	Search  Family = "search"
	Sorting Family = "sorting"
)

// Entry describes one strategy.
type Entry struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	Description     string `yaml:"description"`
	TimeComplexity  string `yaml:"time"`
	SpaceComplexity string `yaml:"space"`
	HowItWorks      string `yaml:"how_it_works,omitempty"`
	ELI5            string `yaml:"eli5"`
	Optimal         bool   `yaml:"optimal,omitempty"`
	Deterministic   bool   `yaml:"deterministic"`
	Stable          bool   `yaml:"stable,omitempty"`
}

// document is the on-disk layout.
type document struct {
	Search  []Entry `yaml:"search"`
	Sorting []Entry `yaml:"sorting"`
}

// Catalog is an immutable, indexed set of entries.
type Catalog struct {
	families map[Family][]Entry
	index    map[Family]map[string]int
}

//go:embed catalog.yaml
var builtin []byte

var (
	loadOnce sync.Once
	loaded   *Catalog
	loadErr  error
)

// Load returns the built-in catalog.
func Load() (*Catalog, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(builtin)
	})
	return loaded, loadErr
}

// Parse decodes and validates a catalog document. Unknown keys, missing
// names and duplicate identifiers are rejected.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	c := &Catalog{
		families: map[Family][]Entry{Search: doc.Search, Sorting: doc.Sorting},
		index:    make(map[Family]map[string]int, 2),
	}
	for fam, entries := range c.families {
		idx := make(map[string]int, len(entries))
		for i, e := range entries {
			if e.ID == "" || e.Name == "" {
				return nil, fmt.Errorf("%w: %s entry %d lacks id or name", ErrInvalid, fam, i)
			}
			if _, dup := idx[e.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate %s id %q", ErrInvalid, fam, e.ID)
			}
			idx[e.ID] = i
		}
		c.index[fam] = idx
	}

	return c, nil
}

// Lookup returns the entry for id within family.
func (c *Catalog) Lookup(family Family, id string) (Entry, error) {
	idx, ok := c.index[family]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
	i, ok := idx[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s/%s", ErrNotFound, family, id)
	}
	return c.families[family][i], nil
}

// Family returns a copy of every entry in family, in document order.
func (c *Catalog) Family(family Family) ([]Entry, error) {
	entries, ok := c.families[family]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, nil
}
