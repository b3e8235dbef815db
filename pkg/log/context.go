package log

import "context"

type traceIDKey struct{}

// WithTraceID returns a copy of ctx carrying the given trace id.
// Every line logged with that context includes it as the "trace_id" field.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, id)
}

// TraceID returns the trace id stored in ctx, or "".
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}
