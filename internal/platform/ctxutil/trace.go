package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type traceKey struct{}

// Trace correlates one HTTP request across logs, responses and spans.
type Trace struct {
	TraceID   string
	RequestID string
}

func WithTrace(ctx context.Context, t Trace) context.Context {
	return context.WithValue(Default(ctx), traceKey{}, t)
}

func TraceFrom(ctx context.Context) (Trace, bool) {
	if ctx == nil {
		return Trace{}, false
	}
	t, ok := ctx.Value(traceKey{}).(Trace)
	return t, ok
}

// LogFields returns the correlation ids and caller carried by ctx as logger
// key/value pairs. Empty values are left out.
func LogFields(ctx context.Context) []interface{} {
	var out []interface{}
	if t, ok := TraceFrom(ctx); ok {
		if t.TraceID != "" {
			out = append(out, "trace_id", t.TraceID)
		}
		if t.RequestID != "" {
			out = append(out, "request_id", t.RequestID)
		}
	}
	if rd := GetRequestData(ctx); rd != nil && rd.UserID != uuid.Nil {
		out = append(out, "user_id", rd.UserID.String())
	}
	return out
}
