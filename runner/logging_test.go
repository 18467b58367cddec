package runner_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stepviz/runner"
)

func TestContextKeys(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", runner.RunID(ctx))
	assert.Equal(t, "", runner.ScenarioName(ctx))

	ctx = runner.WithScenario(runner.WithRunID(ctx, "run-1"), "maze")
	assert.Equal(t, "run-1", runner.RunID(ctx))
	assert.Equal(t, "maze", runner.ScenarioName(ctx))
}

func TestCorrelationHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(runner.NewCorrelationHandler(slog.NewTextHandler(&buf, nil)))

	ctx := runner.WithRunID(context.Background(), "run-42")
	logger.With("component", "test").InfoContext(ctx, "hello")

	out := buf.String()
	assert.Contains(t, out, "run_id=run-42")
	assert.Contains(t, out, "component=test")
	assert.NotContains(t, out, "scenario=")

	buf.Reset()
	logger.Info("no context")
	assert.NotContains(t, buf.String(), "run_id")
}

func TestNewCorrelationHandler_Idempotent(t *testing.T) {
	h := runner.NewCorrelationHandler(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, h, runner.NewCorrelationHandler(h))
}
