package testutil

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// TestLogger captures log output for assertion in tests.
type TestLogger struct {
	mu     sync.Mutex
	buffer bytes.Buffer

	Logger *slog.Logger
}

// NewTestLogger creates a logger that records everything it is handed.
func NewTestLogger(t *testing.T) *TestLogger {
	t.Helper()

	tl := &TestLogger{}
	tl.Logger = slog.New(slog.NewTextHandler(&lockedWriter{tl: tl}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return tl
}

// Output returns everything logged so far.
func (tl *TestLogger) Output() string {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return tl.buffer.String()
}

// Contains reports whether the captured output contains substr.
func (tl *TestLogger) Contains(substr string) bool {
	return strings.Contains(tl.Output(), substr)
}

type lockedWriter struct {
	tl *TestLogger
}

func (w *lockedWriter) Write(p []byte) (int, error) {
	w.tl.mu.Lock()
	defer w.tl.mu.Unlock()
	return w.tl.buffer.Write(p)
}
