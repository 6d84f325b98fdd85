package testdoubles

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// LogHandlerSpy is a slog.Handler implementation that captures log records for testing.
type LogHandlerSpy struct {
	records     []slog.Record
	mu          sync.Mutex
	logToStdout bool
}

// NewLogHandlerSpy creates a new LogHandlerSpy.
// Switchable to log to stdout, which helps when debugging a test.
func NewLogHandlerSpy(logToStdout bool) *LogHandlerSpy {
	return &LogHandlerSpy{
		records:     make([]slog.Record, 0),
		logToStdout: logToStdout,
	}
}

// NewLogger wraps the spy into a *slog.Logger.
func (s *LogHandlerSpy) NewLogger() *slog.Logger {
	return slog.New(s)
}

// Handle implements slog.Handler.
func (s *LogHandlerSpy) Handle(ctx context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record.Clone())

	if s.logToStdout {
		_ = slog.NewJSONHandler(os.Stdout, nil).Handle(ctx, record)
	}

	return nil
}

// Enabled implements slog.Handler.
func (s *LogHandlerSpy) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler.
func (s *LogHandlerSpy) WithAttrs(_ []slog.Attr) slog.Handler {
	return s
}

// WithGroup implements slog.Handler.
func (s *LogHandlerSpy) WithGroup(_ string) slog.Handler {
	return s
}

// GetRecordCount returns the number of captured log records.
func (s *LogHandlerSpy) GetRecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// Reset clears all captured log records.
func (s *LogHandlerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = s.records[:0]
}

// SpyLogRecordMatcher provides a fluent interface for checking log record attributes.
type SpyLogRecordMatcher struct {
	record *slog.Record
	found  bool
}

// HasDebugLogWithMessage starts a fluent chain to check a debug-level log record.
func (s *LogHandlerSpy) HasDebugLogWithMessage(message string) *SpyLogRecordMatcher {
	return s.hasLogWithMessage(slog.LevelDebug, message)
}

// HasInfoLogWithMessage starts a fluent chain to check an info-level log record.
func (s *LogHandlerSpy) HasInfoLogWithMessage(message string) *SpyLogRecordMatcher {
	return s.hasLogWithMessage(slog.LevelInfo, message)
}

// HasWarnLogWithMessage starts a fluent chain to check a warn-level log record.
func (s *LogHandlerSpy) HasWarnLogWithMessage(message string) *SpyLogRecordMatcher {
	return s.hasLogWithMessage(slog.LevelWarn, message)
}

// HasErrorLogWithMessage starts a fluent chain to check an error-level log record.
func (s *LogHandlerSpy) HasErrorLogWithMessage(message string) *SpyLogRecordMatcher {
	return s.hasLogWithMessage(slog.LevelError, message)
}

func (s *LogHandlerSpy) hasLogWithMessage(level slog.Level, message string) *SpyLogRecordMatcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].Level == level && s.records[i].Message == message {
			record := s.records[i]
			return &SpyLogRecordMatcher{record: &record, found: true}
		}
	}

	return &SpyLogRecordMatcher{found: false}
}

// WithDurationMS checks if the log record has a duration_ms attribute with a non-negative value.
func (m *SpyLogRecordMatcher) WithDurationMS() *SpyLogRecordMatcher {
	if !m.found {
		return m
	}

	hasDurationMS := false
	m.record.Attrs(func(attr slog.Attr) bool {
		if attr.Key != "duration_ms" {
			return true
		}

		switch attr.Value.Kind() {
		case slog.KindInt64:
			hasDurationMS = attr.Value.Int64() >= 0
		case slog.KindFloat64:
			hasDurationMS = attr.Value.Float64() >= 0
		default:
		}

		return false
	})

	m.found = hasDurationMS

	return m
}

// WithAttribute checks if the log record has an attribute with the given key and string value.
func (m *SpyLogRecordMatcher) WithAttribute(key, value string) *SpyLogRecordMatcher {
	if !m.found {
		return m
	}

	hasAttribute := false
	m.record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == key && attr.Value.String() == value {
			hasAttribute = true
			return false
		}

		return true
	})

	m.found = hasAttribute

	return m
}

// WithAttributeKey checks if the log record has an attribute with the given key.
func (m *SpyLogRecordMatcher) WithAttributeKey(key string) *SpyLogRecordMatcher {
	if !m.found {
		return m
	}

	hasKey := false
	m.record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == key {
			hasKey = true
			return false
		}

		return true
	})

	m.found = hasKey

	return m
}

// Assert returns true if all conditions in the fluent chain were met.
func (m *SpyLogRecordMatcher) Assert() bool {
	return m.found
}
