package slogutil

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogMessageOnlyHandler(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	handler := &SlogMessageOnlyHandler{Level: slog.LevelInfo}

	require.False(t, handler.Enabled(ctx, slog.LevelDebug))
	require.True(t, handler.Enabled(ctx, slog.LevelInfo))
	require.True(t, handler.Enabled(ctx, slog.LevelError))

	// Attrs and groups are dropped on purpose; the handler stays the same.
	require.Same(t, slog.Handler(handler), handler.WithAttrs([]slog.Attr{slog.String("key", "value")}))
	require.Same(t, slog.Handler(handler), handler.WithGroup("group"))
}
