package obs

import (
	"context"
	"dhl-location-service/internal/logger"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTimeLogsOutcome(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithRequestID(logger.WithLogger(context.Background(), zap.New(core)), "abc")

	var err error
	Time(ctx, "ok.op")(&err)

	err = errors.New("boom")
	Time(ctx, "bad.op")(&err)

	entries := logs.All()
	require.Len(t, entries, 2)

	require.Equal(t, "op done", entries[0].Message)
	require.Equal(t, "ok.op", entries[0].ContextMap()["op"])
	require.Equal(t, "abc", entries[0].ContextMap()["request_id"])

	require.Equal(t, "op failed", entries[1].Message)
	require.Equal(t, "boom", entries[1].ContextMap()["error"])
}
