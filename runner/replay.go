package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/stepviz/grid"
	"github.com/katalvlaran/stepviz/steps"
)

// wireReport shadows Report.Stream so the raw steps can go through the
// schema check in steps.Decode.
type wireReport struct {
	Report
	Steps json.RawMessage `json:"steps"`
}

// ReadReports decodes a JSON array of reports, as written by the CLI's json
// format. Every report's steps are validated against the stream schema.
func ReadReports(r io.Reader) ([]*Report, error) {
	var wire []wireReport
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, fmt.Errorf("runner: decode reports: %w", err)
	}
	out := make([]*Report, 0, len(wire))
	for i := range wire {
		rep := wire[i].Report
		if wire[i].Steps == nil {
			return nil, fmt.Errorf("%w: report %d has no steps", steps.ErrInvalidStream, i)
		}
		s, err := steps.Decode(wire[i].Steps)
		if err != nil {
			return nil, fmt.Errorf("report %d (%s): %w", i, rep.Scenario, err)
		}
		rep.Stream = s
		out = append(out, &rep)
	}
	return out, nil
}

// Replay re-applies rep.Stream to the input recorded in rep and checks that
// it reproduces the recorded outcome: the board and path of a search, the
// sorted array of a sort. The recorded hash, when present, must match the
// stream. A mismatch is reported as ErrReplayMismatch.
func Replay(rep *Report) error {
	if rep.Hash != "" {
		h, err := rep.Stream.Hash()
		if err != nil {
			return err
		}
		if h != rep.Hash {
			return fmt.Errorf("%w: %s: hash %.12s, recorded %.12s", ErrReplayMismatch, rep.Scenario, h, rep.Hash)
		}
	}

	switch rep.Kind {
	case KindSearch:
		return replaySearch(rep)
	case KindSort:
		return replaySort(rep)
	default:
		return fmt.Errorf("%w: %s: kind %q", ErrInvalidScenario, rep.Scenario, rep.Kind)
	}
}

func replaySearch(rep *Report) error {
	board, err := grid.Parse(rep.Board)
	if err != nil {
		return fmt.Errorf("%w: %s: board: %v", ErrReplayMismatch, rep.Scenario, err)
	}
	// Strip the marks to recover the grid the run started from.
	base := board.Clone()
	for r := 0; r < base.Rows(); r++ {
		for c := 0; c < base.Cols(); c++ {
			if s := base.At(grid.At(r, c)); s == grid.Visited || s == grid.Path {
				if err := base.Set(grid.At(r, c), grid.Empty); err != nil {
					return err
				}
			}
		}
	}

	got, err := steps.ReplayGrid(base, rep.Stream)
	if err != nil {
		return fmt.Errorf("%s: %w", rep.Scenario, err)
	}
	if got.String() != board.String() {
		return fmt.Errorf("%w: %s: board differs", ErrReplayMismatch, rep.Scenario)
	}
	if path := rep.Stream.Path(); rep.Found != (len(path) > 0) || !slices.Equal(path, rep.Path) {
		return fmt.Errorf("%w: %s: path differs", ErrReplayMismatch, rep.Scenario)
	}
	return nil
}

func replaySort(rep *Report) error {
	got, err := steps.ReplayValues(rep.Input, rep.Stream)
	if err != nil {
		return fmt.Errorf("%s: %w", rep.Scenario, err)
	}
	if !slices.Equal(got, rep.Sorted) {
		return fmt.Errorf("%w: %s: sorted values differ", ErrReplayMismatch, rep.Scenario)
	}
	return nil
}
