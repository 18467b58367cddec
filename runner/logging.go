package runner

import (
	"context"
	"log/slog"
)

type ctxKey int

const (
	runIDKey ctxKey = iota
	scenarioKey
)

// WithRunID returns a context carrying the run ID.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunID extracts the run ID from the context, or "" if absent.
func RunID(ctx context.Context) string {
	v, _ := ctx.Value(runIDKey).(string)
	return v
}

// WithScenario returns a context carrying the scenario name.
func WithScenario(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, scenarioKey, name)
}

// ScenarioName extracts the scenario name from the context, or "" if absent.
func ScenarioName(ctx context.Context) string {
	v, _ := ctx.Value(scenarioKey).(string)
	return v
}

// CorrelationHandler wraps an slog.Handler and adds run_id and scenario
// from the context to every record logged with a *Context method.
type CorrelationHandler struct {
	inner slog.Handler
}

// NewCorrelationHandler wraps inner. Wrapping a CorrelationHandler again
// returns it unchanged.
func NewCorrelationHandler(inner slog.Handler) *CorrelationHandler {
	if h, ok := inner.(*CorrelationHandler); ok {
		return h
	}
	return &CorrelationHandler{inner: inner}
}

// Enabled defers to the wrapped handler.
func (h *CorrelationHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle adds run_id and scenario when ctx carries them, then passes r on.
func (h *CorrelationHandler) Handle(ctx context.Context, r slog.Record) error {
	if v := RunID(ctx); v != "" {
		r.AddAttrs(slog.String("run_id", v))
	}
	if v := ScenarioName(ctx); v != "" {
		r.AddAttrs(slog.String("scenario", v))
	}
	return h.inner.Handle(ctx, r)
}

// WithAttrs returns a CorrelationHandler over inner.WithAttrs(attrs), so
// derived loggers keep the correlation attributes.
func (h *CorrelationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CorrelationHandler{inner: h.inner.WithAttrs(attrs)}
}

// WithGroup returns a CorrelationHandler over inner.WithGroup(name).
func (h *CorrelationHandler) WithGroup(name string) slog.Handler {
	return &CorrelationHandler{inner: h.inner.WithGroup(name)}
}
