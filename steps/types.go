package steps

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/stepviz/grid"
)

// Sentinel errors for stream handling.
var (
	// ErrIndexOutOfRange is returned when a step addresses an index outside [0, n).
	ErrIndexOutOfRange = errors.New("steps: index out of range")
	// ErrKindMismatch is returned when a step kind does not fit the replay target.
	ErrKindMismatch = errors.New("steps: step kind does not match replay target")
	// ErrUnknownKind is returned for an unrecognized kind tag.
	ErrUnknownKind = errors.New("steps: unknown step kind")
	// ErrInvalidStream is returned when encoded bytes fail schema validation.
	ErrInvalidStream = errors.New("steps: invalid encoded stream")
	// ErrBadFilter is returned when a filter expression cannot be compiled.
	ErrBadFilter = errors.New("steps: invalid filter expression")
)

// Kind is the event discriminator. The string forms are part of the wire
// format; do not rename.
type Kind uint8

const (
	// KindVisit marks a cell processed by a search.
	KindVisit Kind = iota + 1
	// KindPath marks one cell of the reconstructed route, start to goal.
	KindPath
	// KindCompare marks two array indices being compared.
	KindCompare
	// KindSwap marks two array indices exchanging values.
	KindSwap
	// KindOverwrite marks an array index receiving a value.
	KindOverwrite
)

var kindNames = map[Kind]string{
	KindVisit:     "visit",
	KindPath:      "path",
	KindCompare:   "compare",
	KindSwap:      "swap",
	KindOverwrite: "overwrite",
}

// String returns the wire name of k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps a wire name back to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// IsGrid reports whether k carries a coordinate.
func (k Kind) IsGrid() bool { return k == KindVisit || k == KindPath }

// IsArray reports whether k carries array indices.
func (k Kind) IsArray() bool { return k == KindCompare || k == KindSwap || k == KindOverwrite }

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	s, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Step is a single observable event.
//
// Field use by kind:
//
//	visit, path:    Row, Col
//	compare, swap:  I, J
//	overwrite:      I (the index), Value
type Step struct {
	Kind  Kind
	Row   int
	Col   int
	I     int
	J     int
	Value float64
}

// Visit records that a search processed c.
func Visit(c grid.Coord) Step { return Step{Kind: KindVisit, Row: c.Row, Col: c.Col} }

// PathStep records that c lies on the reconstructed route.
func PathStep(c grid.Coord) Step { return Step{Kind: KindPath, Row: c.Row, Col: c.Col} }

// Compare records a comparison between indices i and j.
func Compare(i, j int) Step { return Step{Kind: KindCompare, I: i, J: j} }

// Swap records an exchange of indices i and j.
func Swap(i, j int) Step { return Step{Kind: KindSwap, I: i, J: j} }

// Overwrite records that index receives value.
func Overwrite(index int, value float64) Step {
	return Step{Kind: KindOverwrite, I: index, Value: value}
}

// Coord returns the coordinate of a visit or path step.
func (s Step) Coord() grid.Coord { return grid.Coord{Row: s.Row, Col: s.Col} }

// Index returns the target index of an overwrite step.
func (s Step) Index() int { return s.I }

// String renders s compactly, e.g. "visit(0,1)", "swap[2,3]", "overwrite[4]=7".
func (s Step) String() string {
	switch s.Kind {
	case KindVisit, KindPath:
		return s.Kind.String() + s.Coord().String()
	case KindCompare, KindSwap:
		return fmt.Sprintf("%s[%d,%d]", s.Kind, s.I, s.J)
	case KindOverwrite:
		return fmt.Sprintf("%s[%d]=%g", s.Kind, s.I, s.Value)
	default:
		return s.Kind.String()
	}
}

// wire shapes keep a fixed field order per kind.
type (
	cellWire struct {
		Kind Kind `json:"kind"`
		Row  int  `json:"row"`
		Col  int  `json:"col"`
	}
	pairWire struct {
		Kind Kind `json:"kind"`
		I    int  `json:"i"`
		J    int  `json:"j"`
	}
	overwriteWire struct {
		Kind  Kind    `json:"kind"`
		Index int     `json:"index"`
		Value float64 `json:"value"`
	}
	anyWire struct {
		Kind  Kind     `json:"kind"`
		Row   *int     `json:"row"`
		Col   *int     `json:"col"`
		I     *int     `json:"i"`
		J     *int     `json:"j"`
		Index *int     `json:"index"`
		Value *float64 `json:"value"`
	}
)

// MarshalJSON encodes s in its canonical per-kind shape.
func (s Step) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case KindVisit, KindPath:
		return json.Marshal(cellWire{Kind: s.Kind, Row: s.Row, Col: s.Col})
	case KindCompare, KindSwap:
		return json.Marshal(pairWire{Kind: s.Kind, I: s.I, J: s.J})
	case KindOverwrite:
		return json.Marshal(overwriteWire{Kind: s.Kind, Index: s.I, Value: s.Value})
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(s.Kind))
	}
}

// UnmarshalJSON decodes a step, requiring exactly the fields its kind carries.
func (s *Step) UnmarshalJSON(b []byte) error {
	var w anyWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	missing := func(field string) error {
		return fmt.Errorf("%w: %s step without %q", ErrInvalidStream, w.Kind, field)
	}
	out := Step{Kind: w.Kind}
	switch w.Kind {
	case KindVisit, KindPath:
		if w.Row == nil {
			return missing("row")
		}
		if w.Col == nil {
			return missing("col")
		}
		out.Row, out.Col = *w.Row, *w.Col
	case KindCompare, KindSwap:
		if w.I == nil {
			return missing("i")
		}
		if w.J == nil {
			return missing("j")
		}
		out.I, out.J = *w.I, *w.J
	case KindOverwrite:
		if w.Index == nil {
			return missing("index")
		}
		if w.Value == nil {
			return missing("value")
		}
		out.I, out.Value = *w.Index, *w.Value
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, uint8(w.Kind))
	}
	*s = out
	return nil
}
