package logger

import (
	"sync"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
)

// NoopLogger discards every entry. Used when logging is disabled and in tests.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{level: core.LogLevelInfo}
}

func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level = level }
func (l *NoopLogger) GetLevel() core.LogLevel { return l.level }
func (l *NoopLogger) Debug(string, map[string]any) {}
func (l *NoopLogger) Info(string, map[string]any) {}
func (l *NoopLogger) Warn(string, map[string]any) {}
func (l *NoopLogger) Error(string, map[string]any) {}
func (l *NoopLogger) Flush() error { return nil }

// Entry is one record kept by a RecordingLogger
type Entry struct {
	Level   core.LogLevel
	Message string
	Fields  map[string]any
}

// RecordingLogger keeps entries in memory so tests can assert on what was logged
type RecordingLogger struct {
	mu      sync.Mutex
	level   core.LogLevel
	entries []Entry
}

// NewRecordingLogger creates a logger that records every level
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{level: core.LogLevelDebug}
}

func (l *RecordingLogger) SetLevel(level core.LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *RecordingLogger) GetLevel() core.LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *RecordingLogger) Debug(message string, fields map[string]any) {
	l.record(core.LogLevelDebug, message, fields)
}

func (l *RecordingLogger) Info(message string, fields map[string]any) {
	l.record(core.LogLevelInfo, message, fields)
}

func (l *RecordingLogger) Warn(message string, fields map[string]any) {
	l.record(core.LogLevelWarn, message, fields)
}

func (l *RecordingLogger) Error(message string, fields map[string]any) {
	l.record(core.LogLevelError, message, fields)
}

func (l *RecordingLogger) Flush() error { return nil }

// Entries returns a copy of the recorded entries
func (l *RecordingLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Messages returns the recorded messages at level
func (l *RecordingLogger) Messages(level core.LogLevel) []string {
	var out []string
	for _, e := range l.Entries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

func (l *RecordingLogger) record(level core.LogLevel, message string, fields map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	l.entries = append(l.entries, Entry{Level: level, Message: message, Fields: fields})
}
