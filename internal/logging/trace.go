package logging

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type traceIDKey struct{}

// ContextWithTraceID attaches a trace identifier to ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace identifier attached to ctx, or an
// empty string when none is present.
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateTraceID returns the trace identifier already attached to ctx,
// generating a fresh ULID when the context carries none. ULIDs sort by
// creation time, which keeps log greps over a run's entries contiguous.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return NewRunID()
}

// NewRunID generates a ULID suitable for tagging one processing run.
func NewRunID() string {
	return ulid.Make().String()
}
