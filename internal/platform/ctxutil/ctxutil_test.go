package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestLogFieldsSkipsMissingParts(t *testing.T) {
	require.Empty(t, LogFields(context.Background()))

	ctx := WithTrace(context.Background(), Trace{RequestID: "req-1"})
	require.Equal(t, []interface{}{"request_id", "req-1"}, LogFields(ctx))

	id := uuid.New()
	ctx = WithRequestData(WithTrace(ctx, Trace{TraceID: "t-1", RequestID: "req-2"}), &RequestData{UserID: id, Role: "user"})
	require.Equal(t, []interface{}{
		"trace_id", "t-1",
		"request_id", "req-2",
		"user_id", id.String(),
	}, LogFields(ctx))
}

func TestTraceFromNilContext(t *testing.T) {
	_, ok := TraceFrom(nil)
	require.False(t, ok)
	require.NotNil(t, Default(nil))
}
