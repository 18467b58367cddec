// Command stepviz runs search and sorting scenarios from a YAML file and
// prints their step streams.
//
//	stepviz -scenario runs.yaml [-format text|json|summary] [-where EXPR] [-v]
//	stepviz -replay runs.json [-format text|json|summary] [-where EXPR]
//	stepviz -list
//
// -where keeps only the steps matching an expression over kind, seq, row,
// col, i, j, index and value, e.g. -where 'kind == "swap" && i < 10'.
//
// -replay reads reports saved with -format json, checks each stream against
// the stream schema, replays it onto the recorded input and renders the
// reports again. A stream that does not reproduce its recorded outcome is
// an error.
//
// Exit status is 0 on success, 1 when any scenario fails and 2 on a usage
// error.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/katalvlaran/stepviz/catalog"
	"github.com/katalvlaran/stepviz/runner"
	"github.com/katalvlaran/stepviz/steps"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

type config struct {
	scenario string
	replay   string
	format   string
	where    string
	verbose  bool
	list     bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process boundary.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, "stepviz:", err)
		}
		return exitUsage
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cfg.list {
		if err := printCatalog(stdout); err != nil {
			logger.Error("catalog", slog.Any("error", err))
			return exitError
		}
		return exitOK
	}

	var filter *steps.Filter
	if cfg.where != "" {
		if filter, err = steps.NewFilter(cfg.where); err != nil {
			fmt.Fprintln(stderr, "stepviz:", err)
			return exitUsage
		}
	}

	if cfg.replay != "" {
		return replay(cfg, filter, stdin, stdout, logger)
	}

	var scs []*runner.Scenario
	if cfg.scenario == "-" {
		scs, err = runner.LoadScenarios(stdin)
	} else {
		scs, err = runner.LoadFile(cfg.scenario)
	}
	if err != nil {
		logger.Error("load scenarios", slog.String("path", cfg.scenario), slog.Any("error", err))
		return exitError
	}

	r, err := runner.New(runner.WithLogger(logger))
	if err != nil {
		logger.Error("init runner", slog.Any("error", err))
		return exitError
	}
	reports, runErr := r.RunAll(ctx, scs)

	if err := render(stdout, cfg.format, reports, filter); err != nil {
		logger.Error("render", slog.Any("error", err))
		return exitError
	}
	if runErr != nil {
		logger.Error("run", slog.Any("error", runErr))
		return exitError
	}
	return exitOK
}

// replay re-checks and re-renders saved reports.
func replay(cfg config, filter *steps.Filter, stdin io.Reader, stdout io.Writer, logger *slog.Logger) int {
	in := stdin
	if cfg.replay != "-" {
		f, err := os.Open(cfg.replay)
		if err != nil {
			logger.Error("open reports", slog.String("path", cfg.replay), slog.Any("error", err))
			return exitError
		}
		defer f.Close()
		in = f
	}

	reports, err := runner.ReadReports(in)
	if err != nil {
		logger.Error("read reports", slog.String("path", cfg.replay), slog.Any("error", err))
		return exitError
	}
	for _, rep := range reports {
		if err := runner.Replay(rep); err != nil {
			logger.Error("replay", slog.String("scenario", rep.Scenario), slog.Any("error", err))
			return exitError
		}
		if rep.Hash == "" {
			if rep.Hash, err = rep.Stream.Hash(); err != nil {
				logger.Error("hash", slog.Any("error", err))
				return exitError
			}
		}
		logger.Debug("replay ok", slog.String("scenario", rep.Scenario), slog.Int("steps", rep.Stream.Len()))
	}

	if err := render(stdout, cfg.format, reports, filter); err != nil {
		logger.Error("render", slog.Any("error", err))
		return exitError
	}
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("stepviz", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var cfg config
	fs.StringVar(&cfg.scenario, "scenario", "", "YAML scenario file, or - for stdin")
	fs.StringVar(&cfg.replay, "replay", "", "JSON reports to verify and render, or - for stdin")
	fs.StringVar(&cfg.format, "format", "text", "output format: text|json|summary")
	fs.StringVar(&cfg.where, "where", "", "expression selecting which steps to print")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging on stderr")
	fs.BoolVar(&cfg.list, "list", false, "describe every algorithm and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() != 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %q", errUsage, strings.Join(fs.Args(), " "))
	}
	switch cfg.format {
	case "text", "json", "summary":
	default:
		return cfg, fmt.Errorf("%w: unknown format %q", errUsage, cfg.format)
	}
	if cfg.scenario != "" && cfg.replay != "" {
		return cfg, fmt.Errorf("%w: -scenario and -replay are exclusive", errUsage)
	}
	if !cfg.list && cfg.scenario == "" && cfg.replay == "" {
		return cfg, fmt.Errorf("%w: -scenario or -replay is required", errUsage)
	}
	return cfg, nil
}

func render(w io.Writer, format string, reports []*runner.Report, filter *steps.Filter) error {
	switch format {
	case "json":
		return renderJSON(w, reports, filter)
	case "summary":
		return renderSummary(w, reports)
	default:
		return renderText(w, reports, filter)
	}
}

func renderText(w io.Writer, reports []*runner.Report, filter *steps.Filter) error {
	for _, rep := range reports {
		fmt.Fprintf(w, "== %s: %s (run %s)\n", rep.Scenario, rep.Title, rep.RunID)
		for seq, st := range rep.Stream.All() {
			if filter != nil {
				ok, err := filter.Match(seq, st)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
			}
			fmt.Fprintf(w, "%6d  %s\n", seq, st)
		}
		switch rep.Kind {
		case runner.KindSearch:
			if rep.Found {
				fmt.Fprintf(w, "path: %d cells, %d moves\n", len(rep.Path), len(rep.Path)-1)
			} else {
				fmt.Fprintln(w, "path: none")
			}
			fmt.Fprintln(w, rep.Board)
		case runner.KindSort:
			fmt.Fprintf(w, "sorted: %v\n", rep.Sorted)
		}
		fmt.Fprintf(w, "steps: %d  sha256: %s\n\n", rep.Stream.Len(), rep.Hash)
	}
	return nil
}

func renderJSON(w io.Writer, reports []*runner.Report, filter *steps.Filter) error {
	if filter != nil {
		out := make([]*runner.Report, len(reports))
		for i, rep := range reports {
			cp := *rep
			s, err := filter.Apply(rep.Stream)
			if err != nil {
				return err
			}
			cp.Stream = s
			out[i] = &cp
		}
		reports = out
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func renderSummary(w io.Writer, reports []*runner.Report) error {
	for _, rep := range reports {
		outcome := ""
		switch rep.Kind {
		case runner.KindSearch:
			outcome = "no path"
			if rep.Found {
				outcome = fmt.Sprintf("path %d", len(rep.Path)-1)
			}
		case runner.KindSort:
			outcome = fmt.Sprintf("sorted %d", len(rep.Sorted))
		}
		if _, err := fmt.Fprintf(w, "%-20s %-18s %7d steps  %-10s %s\n",
			rep.Scenario, rep.Algorithm, rep.Stream.Len(), outcome, rep.Hash[:12]); err != nil {
			return err
		}
	}
	return nil
}

func printCatalog(w io.Writer) error {
	c, err := catalog.Load()
	if err != nil {
		return err
	}
	for _, fam := range []catalog.Family{catalog.Search, catalog.Sorting} {
		entries, err := c.Family(fam)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s:\n", fam)
		for _, e := range entries {
			fmt.Fprintf(w, "  %-18s %-28s time %-14s space %s\n", e.ID, e.Name, e.TimeComplexity, e.SpaceComplexity)
		}
	}
	return nil
}
