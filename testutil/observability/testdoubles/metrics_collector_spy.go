package testdoubles

import (
	"context"
	"maps"
	"sync"
	"time"
)

// MetricsCollectorSpy captures metrics calls for testing.
// It implements eventstore.ContextualMetricsCollector, so instrumented code takes the context-aware path.
type MetricsCollectorSpy struct {
	durationRecords []SpyDurationRecord
	counterRecords  []SpyCounterRecord
	valueRecords    []SpyValueRecord
	mu              sync.Mutex
	recordCalls     bool
}

// SpyDurationRecord represents a recorded duration metric call.
type SpyDurationRecord struct {
	Metric   string
	Duration time.Duration
	Labels   map[string]string
}

// SpyCounterRecord represents a recorded counter increment call.
type SpyCounterRecord struct {
	Metric string
	Labels map[string]string
}

// SpyValueRecord represents a recorded value metric call.
type SpyValueRecord struct {
	Metric string
	Value  float64
	Labels map[string]string
}

// NewMetricsCollectorSpy creates a new MetricsCollectorSpy.
// Set recordCalls to true to capture all metrics calls for inspection in tests.
func NewMetricsCollectorSpy(recordCalls bool) *MetricsCollectorSpy {
	return &MetricsCollectorSpy{
		durationRecords: make([]SpyDurationRecord, 0),
		counterRecords:  make([]SpyCounterRecord, 0),
		valueRecords:    make([]SpyValueRecord, 0),
		recordCalls:     recordCalls,
	}
}

// RecordDuration implements eventstore.MetricsCollector.
func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.durationRecords = append(s.durationRecords, SpyDurationRecord{
		Metric:   metric,
		Duration: duration,
		Labels:   maps.Clone(labels),
	})
}

// IncrementCounter implements eventstore.MetricsCollector.
func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.counterRecords = append(s.counterRecords, SpyCounterRecord{
		Metric: metric,
		Labels: maps.Clone(labels),
	})
}

// RecordValue implements eventstore.MetricsCollector.
func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.valueRecords = append(s.valueRecords, SpyValueRecord{
		Metric: metric,
		Value:  value,
		Labels: maps.Clone(labels),
	})
}

// RecordDurationContext implements eventstore.ContextualMetricsCollector.
func (s *MetricsCollectorSpy) RecordDurationContext(_ context.Context, metric string, duration time.Duration, labels map[string]string) {
	s.RecordDuration(metric, duration, labels)
}

// IncrementCounterContext implements eventstore.ContextualMetricsCollector.
func (s *MetricsCollectorSpy) IncrementCounterContext(_ context.Context, metric string, labels map[string]string) {
	s.IncrementCounter(metric, labels)
}

// RecordValueContext implements eventstore.ContextualMetricsCollector.
func (s *MetricsCollectorSpy) RecordValueContext(_ context.Context, metric string, value float64, labels map[string]string) {
	s.RecordValue(metric, value, labels)
}

// GetDurationRecords returns a copy of all captured duration records.
func (s *MetricsCollectorSpy) GetDurationRecords() []SpyDurationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]SpyDurationRecord, len(s.durationRecords))
	copy(records, s.durationRecords)

	return records
}

// GetCounterRecords returns a copy of all captured counter records.
func (s *MetricsCollectorSpy) GetCounterRecords() []SpyCounterRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]SpyCounterRecord, len(s.counterRecords))
	copy(records, s.counterRecords)

	return records
}

// Reset clears all captured metric records.
func (s *MetricsCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durationRecords = s.durationRecords[:0]
	s.counterRecords = s.counterRecords[:0]
	s.valueRecords = s.valueRecords[:0]
}

// MetricRecordMatcher provides a fluent interface for checking metric records.
type MetricRecordMatcher struct {
	candidates []map[string]string
}

// HasDurationRecordForMetric starts a fluent chain to check duration records.
func (s *MetricsCollectorSpy) HasDurationRecordForMetric(metric string) *MetricRecordMatcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &MetricRecordMatcher{}
	for _, record := range s.durationRecords {
		if record.Metric == metric {
			m.candidates = append(m.candidates, record.Labels)
		}
	}

	return m
}

// HasCounterRecordForMetric starts a fluent chain to check counter records.
func (s *MetricsCollectorSpy) HasCounterRecordForMetric(metric string) *MetricRecordMatcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &MetricRecordMatcher{}
	for _, record := range s.counterRecords {
		if record.Metric == metric {
			m.candidates = append(m.candidates, record.Labels)
		}
	}

	return m
}

// HasValueRecordForMetric starts a fluent chain to check value records.
func (s *MetricsCollectorSpy) HasValueRecordForMetric(metric string) *MetricRecordMatcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &MetricRecordMatcher{}
	for _, record := range s.valueRecords {
		if record.Metric == metric {
			m.candidates = append(m.candidates, record.Labels)
		}
	}

	return m
}

// WithOperation narrows the records to those with the given operation label.
func (m *MetricRecordMatcher) WithOperation(operation string) *MetricRecordMatcher {
	return m.WithLabel("operation", operation)
}

// WithStatus narrows the records to those with the given status label.
func (m *MetricRecordMatcher) WithStatus(status string) *MetricRecordMatcher {
	return m.WithLabel("status", status)
}

// WithLabel narrows the records to those with the given label value.
func (m *MetricRecordMatcher) WithLabel(key, value string) *MetricRecordMatcher {
	narrowed := make([]map[string]string, 0, len(m.candidates))
	for _, labels := range m.candidates {
		if labelValue, exists := labels[key]; exists && labelValue == value {
			narrowed = append(narrowed, labels)
		}
	}
	m.candidates = narrowed

	return m
}

// Assert returns true if at least one record met all conditions in the fluent chain.
func (m *MetricRecordMatcher) Assert() bool {
	return len(m.candidates) > 0
}

// Count returns how many records met all conditions in the fluent chain.
func (m *MetricRecordMatcher) Count() int {
	return len(m.candidates)
}
