package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
	}{
		{name: "WithRequestID", ctx: WithRequestID(context.Background(), "req-1"), wantID: "req-1"},
		{name: "WithoutRequestID", ctx: context.Background()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			Log = zap.New(core).Sugar()

			assert.Equal(t, tt.wantID, RequestID(tt.ctx))
			FromContext(tt.ctx).Errorw("failed", "error", "boom")

			entries := logs.All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			if tt.wantID == "" {
				assert.NotContains(t, fields, "request_id")
				return
			}
			assert.Equal(t, tt.wantID, fields["request_id"])
		})
	}
}
