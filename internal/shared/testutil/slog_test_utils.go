package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

// LogRecord is a captured log record.
type LogRecord struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// BufferedSlogHandler captures log records so tests can assert on them.
type BufferedSlogHandler struct {
	mu      sync.Mutex
	attrs   []slog.Attr
	records []LogRecord
	t       *testing.T
}

// NewBufferedSlogHandler creates a new buffered handler.
func NewBufferedSlogHandler(t *testing.T) *BufferedSlogHandler {
	return &BufferedSlogHandler{t: t}
}

// Handle implements slog.Handler.
func (h *BufferedSlogHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	attrs := make(map[string]any, r.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	h.records = append(h.records, LogRecord{
		Time:    r.Time,
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})

	if h.t != nil {
		h.t.Logf("[%s] %s %v", r.Level, r.Message, attrs)
	}

	return nil
}

// Enabled implements slog.Handler. Tests capture every level.
func (h *BufferedSlogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler. The returned handler shares the record
// buffer so assertions see all output.
func (h *BufferedSlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.attrs = append(h.attrs, attrs...)
	return h
}

// WithGroup implements slog.Handler.
func (h *BufferedSlogHandler) WithGroup(_ string) slog.Handler {
	return h
}

// Records returns a copy of all captured log records.
func (h *BufferedSlogHandler) Records() []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()

	records := make([]LogRecord, len(h.records))
	copy(records, h.records)
	return records
}

// RecordsByLevel returns captured records at the given level.
func (h *BufferedSlogHandler) RecordsByLevel(level slog.Level) []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()

	var filtered []LogRecord
	for _, r := range h.records {
		if r.Level == level {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ContainsMessage reports whether any record contains the given message.
func (h *BufferedSlogHandler) ContainsMessage(message string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, r := range h.records {
		if strings.Contains(r.Message, message) {
			return true
		}
	}
	return false
}

// ContainsAttr reports whether any record carries the given attribute.
func (h *BufferedSlogHandler) ContainsAttr(key string, value any) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, r := range h.records {
		if val, ok := r.Attrs[key]; ok && val == value {
			return true
		}
	}
	return false
}

// NewTestLogger creates a logger backed by a buffered handler.
func NewTestLogger(t *testing.T) (*slog.Logger, *BufferedSlogHandler) {
	handler := NewBufferedSlogHandler(t)
	return slog.New(handler), handler
}

// AssertLogContains fails the test when no record at level carries message.
func AssertLogContains(t *testing.T, handler *BufferedSlogHandler, level slog.Level, message string) {
	t.Helper()

	for _, r := range handler.RecordsByLevel(level) {
		if strings.Contains(r.Message, message) {
			return
		}
	}

	t.Errorf("expected log message not found at level %s: %q", level, message)
	for _, r := range handler.RecordsByLevel(level) {
		t.Logf("  - %s", r.Message)
	}
}

// AssertNoErrors fails the test when any error-level record was captured.
func AssertNoErrors(t *testing.T, handler *BufferedSlogHandler) {
	t.Helper()

	for _, r := range handler.RecordsByLevel(slog.LevelError) {
		t.Errorf("unexpected error log: %s %v", r.Message, r.Attrs)
	}
}
