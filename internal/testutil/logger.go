// Package testutil provides shared helpers for tests: loggers bound to
// testing.T and a throwaway customer database.
package testutil

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"
)

// NewTestLogger returns a debug-level logger that routes records through
// t.Log, so they show only for failing tests or under -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(tbWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// LogBuffer collects text-formatted log records for assertions.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns everything logged so far.
func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// NewCaptureLogger returns a debug-level logger writing to both t.Log and
// the returned buffer.
func NewCaptureLogger(t testing.TB) (*slog.Logger, *LogBuffer) {
	t.Helper()
	logs := &LogBuffer{}
	handler := slog.NewTextHandler(teeWriter{tb: tbWriter{t}, buf: logs}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(handler), logs
}

type tbWriter struct {
	t testing.TB
}

func (w tbWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}

type teeWriter struct {
	tb  tbWriter
	buf *LogBuffer
}

func (w teeWriter) Write(p []byte) (int, error) {
	_, _ = w.tb.Write(p)
	return w.buf.Write(p)
}
