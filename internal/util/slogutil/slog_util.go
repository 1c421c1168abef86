// Package slogutil contains small slog helpers shared between tests and
// examples.
package slogutil

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogMessageOnlyHandler is a trivial slog handler that prints only the
// message part of each record. Useful for Example tests where timestamps and
// attribute noise would make `// Output:` comparisons unstable.
type SlogMessageOnlyHandler struct {
	Level slog.Level
}

func (h *SlogMessageOnlyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.Level
}

func (h *SlogMessageOnlyHandler) Handle(ctx context.Context, record slog.Record) error {
	fmt.Printf("%s\n", record.Message)
	return nil
}

func (h *SlogMessageOnlyHandler) WithAttrs(attrs []slog.Attr) slog.Handler { return h }
func (h *SlogMessageOnlyHandler) WithGroup(name string) slog.Handler       { return h }
