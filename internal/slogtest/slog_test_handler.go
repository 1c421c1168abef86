// Package slogtest provides a slog logger that routes output through a
// test's own logging so that log lines from registries under test stay
// attached to the test that produced them.
package slogtest

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
)

// NewLogger returns a new slog text logger that outputs through `t.Log`. This
// keeps test output well formatted and attributable when running a parallel
// test suite.
func NewLogger(tb testing.TB, opts *slog.HandlerOptions) *slog.Logger {
	tb.Helper()

	var buf bytes.Buffer

	return slog.New(&slogTestHandler{
		buf:   &buf,
		inner: slog.NewTextHandler(&buf, opts),
		mu:    &sync.Mutex{},
		tb:    tb,
	})
}

type slogTestHandler struct {
	buf   *bytes.Buffer
	inner slog.Handler
	mu    *sync.Mutex
	tb    testing.TB
}

func (h *slogTestHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *slogTestHandler) Handle(ctx context.Context, rec slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.inner.Handle(ctx, rec); err != nil {
		return err
	}

	output, err := io.ReadAll(h.buf)
	if err != nil {
		return err
	}

	// t.Log adds its own newline, so trim the one from slog.
	output = bytes.TrimSuffix(output, []byte("\n"))

	h.tb.Helper()
	h.tb.Log(string(output))

	return nil
}

func (h *slogTestHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogTestHandler{
		buf:   h.buf,
		inner: h.inner.WithAttrs(attrs),
		mu:    h.mu,
		tb:    h.tb,
	}
}

func (h *slogTestHandler) WithGroup(name string) slog.Handler {
	return &slogTestHandler{
		buf:   h.buf,
		inner: h.inner.WithGroup(name),
		mu:    h.mu,
		tb:    h.tb,
	}
}
