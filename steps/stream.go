package steps

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"iter"

	"github.com/katalvlaran/stepviz/grid"
)

// Stream is an immutable, ordered, finite sequence of Steps.
// The zero value is an empty stream.
type Stream struct {
	steps []Step
}

// NewStream copies steps into a new Stream.
func NewStream(steps ...Step) *Stream {
	out := make([]Step, len(steps))
	copy(out, steps)
	return &Stream{steps: out}
}

// Len returns the number of steps.
func (s *Stream) Len() int {
	if s == nil {
		return 0
	}
	return len(s.steps)
}

// At returns the i-th step. It panics if i is out of range.
func (s *Stream) At(i int) Step { return s.steps[i] }

// All iterates (position, step) pairs in order.
func (s *Stream) All() iter.Seq2[int, Step] {
	return func(yield func(int, Step) bool) {
		if s == nil {
			return
		}
		for i, st := range s.steps {
			if !yield(i, st) {
				return
			}
		}
	}
}

// Slice returns a copy of the steps.
func (s *Stream) Slice() []Step {
	if s == nil {
		return nil
	}
	out := make([]Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// Count returns how many steps have kind k.
func (s *Stream) Count(k Kind) int {
	n := 0
	for _, st := range s.All() {
		if st.Kind == k {
			n++
		}
	}
	return n
}

// Path returns the coordinates of the path steps in stream order.
// It is nil when the search found no route.
func (s *Stream) Path() []grid.Coord {
	var out []grid.Coord
	for _, st := range s.All() {
		if st.Kind == KindPath {
			out = append(out, st.Coord())
		}
	}
	return out
}

// Visits returns the coordinates of the visit steps in stream order.
func (s *Stream) Visits() []grid.Coord {
	var out []grid.Coord
	for _, st := range s.All() {
		if st.Kind == KindVisit {
			out = append(out, st.Coord())
		}
	}
	return out
}

// Equal reports whether s and o hold the same steps in the same order.
func (s *Stream) Equal(o *Stream) bool {
	if s.Len() != o.Len() {
		return false
	}
	for i := 0; i < s.Len(); i++ {
		if s.steps[i] != o.steps[i] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the stream as a JSON array of canonical steps.
func (s *Stream) MarshalJSON() ([]byte, error) {
	if s == nil || s.steps == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.steps)
}

// UnmarshalJSON decodes a JSON array of steps without schema validation;
// use Decode for untrusted input.
func (s *Stream) UnmarshalJSON(b []byte) error {
	var st []Step
	if err := json.Unmarshal(b, &st); err != nil {
		return err
	}
	if st == nil {
		st = []Step{}
	}
	s.steps = st
	return nil
}

// Hash returns the hex sha256 of the canonical JSON encoding.
func (s *Stream) Hash() (string, error) {
	b, err := s.MarshalJSON()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// Recorder is the append-only builder behind a Stream.
// It is not safe for concurrent use; each run owns its Recorder.
type Recorder struct {
	steps []Step
}

// NewRecorder returns a Recorder with room for hint steps.
func NewRecorder(hint int) *Recorder {
	if hint < 0 {
		hint = 0
	}
	return &Recorder{steps: make([]Step, 0, hint)}
}

// Append adds st to the end of the recording.
func (r *Recorder) Append(st Step) { r.steps = append(r.steps, st) }

// Len returns the number of recorded steps.
func (r *Recorder) Len() int { return len(r.steps) }

// Stream snapshots the recording. Later appends do not affect the result.
func (r *Recorder) Stream() *Stream { return NewStream(r.steps...) }

// Collect drains seq into a Stream.
func Collect(seq iter.Seq[Step]) *Stream {
	r := NewRecorder(64)
	for st := range seq {
		r.Append(st)
	}
	return &Stream{steps: r.steps}
}
