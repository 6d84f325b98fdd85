package oteladapters_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/AntonStoeckl/lending-catalog-go/eventstore/oteladapters"
)

func givenCollectorWithManualReader() (*oteladapters.MetricsCollector, *sdkmetric.ManualReader) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	return oteladapters.NewMetricsCollector(provider.Meter("test")), reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var resourceMetrics metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &resourceMetrics), "failed to collect metrics")

	return resourceMetrics
}

func Test_MetricsCollector_RecordDuration_InSeconds(t *testing.T) {
	// arrange
	collector, reader := givenCollectorWithManualReader()
	labels := map[string]string{"operation": "borrow", "status": "success"}

	// act
	collector.RecordDuration("catalog_operation_duration_seconds", 150*time.Millisecond, labels)

	// assert
	histogram := findHistogramMetric(t, collect(t, reader), "catalog_operation_duration_seconds")
	require.Len(t, histogram.DataPoints, 1)
	dataPoint := histogram.DataPoints[0]
	assert.Equal(t, uint64(1), dataPoint.Count)
	assert.InDelta(t, 0.15, dataPoint.Sum, 0.001)

	expectedAttrs := attribute.NewSet(
		attribute.String("operation", "borrow"),
		attribute.String("status", "success"),
	)
	assert.True(t, dataPoint.Attributes.Equals(&expectedAttrs))
}

func Test_MetricsCollector_IncrementCounter_ReusesTheInstrument(t *testing.T) {
	// arrange
	collector, reader := givenCollectorWithManualReader()
	labels := map[string]string{"operation": "add_book", "status": "success"}

	// act
	collector.IncrementCounter("catalog_operation_calls_total", labels)
	collector.IncrementCounter("catalog_operation_calls_total", labels)
	collector.IncrementCounterContext(context.Background(), "catalog_operation_calls_total", labels)

	// assert
	counter := findCounterMetric(t, collect(t, reader), "catalog_operation_calls_total")
	require.Len(t, counter.DataPoints, 1)
	assert.Equal(t, int64(3), counter.DataPoints[0].Value)
}

func Test_MetricsCollector_IncrementCounter_SplitsByLabels(t *testing.T) {
	// arrange
	collector, reader := givenCollectorWithManualReader()

	// act
	collector.IncrementCounter("catalog_operation_rejections_total", map[string]string{"operation": "borrow"})
	collector.IncrementCounter("catalog_operation_rejections_total", map[string]string{"operation": "return_book"})

	// assert
	counter := findCounterMetric(t, collect(t, reader), "catalog_operation_rejections_total")
	assert.Len(t, counter.DataPoints, 2)
}

func Test_MetricsCollector_RecordValue(t *testing.T) {
	// arrange
	collector, reader := givenCollectorWithManualReader()

	// act
	collector.RecordValue("journal_events_queried", 3, map[string]string{"operation": "query"})
	collector.RecordValueContext(context.Background(), "journal_events_queried", 7, map[string]string{"operation": "query"})

	// assert
	gauge := findGaugeMetric(t, collect(t, reader), "journal_events_queried")
	require.Len(t, gauge.DataPoints, 1)
	assert.InDelta(t, 7.0, gauge.DataPoints[0].Value, 0.0001, "a gauge keeps the last value")
}

func Test_MetricsCollector_NilLabels(t *testing.T) {
	// arrange
	collector, reader := givenCollectorWithManualReader()

	// act
	collector.RecordDuration("catalog_operation_duration_seconds", time.Second, nil)

	// assert
	histogram := findHistogramMetric(t, collect(t, reader), "catalog_operation_duration_seconds")
	require.Len(t, histogram.DataPoints, 1)
	assert.Equal(t, 0, histogram.DataPoints[0].Attributes.Len())
}

func Test_MetricsCollector_IsSafeForConcurrentUse(t *testing.T) {
	// arrange
	collector, reader := givenCollectorWithManualReader()
	var wg sync.WaitGroup

	// act
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			collector.IncrementCounterContext(context.Background(), "catalog_operation_calls_total", nil)
		}()
	}
	wg.Wait()

	// assert
	counter := findCounterMetric(t, collect(t, reader), "catalog_operation_calls_total")
	require.Len(t, counter.DataPoints, 1)
	assert.Equal(t, int64(20), counter.DataPoints[0].Value)
}

func Test_MetricsCollector_InstrumentCreationErrors(t *testing.T) {
	// arrange
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	collector := oteladapters.NewMetricsCollector(&errorInjectingMeter{Meter: provider.Meter("test")})
	ctx := context.Background()

	// act & assert
	assert.NotPanics(t, func() {
		collector.RecordDuration("error_histogram", 100*time.Millisecond, nil)
		collector.IncrementCounter("error_counter", nil)
		collector.RecordValue("error_gauge", 42.0, nil)
		collector.RecordDurationContext(ctx, "error_histogram", 100*time.Millisecond, nil)
		collector.IncrementCounterContext(ctx, "error_counter", nil)
		collector.RecordValueContext(ctx, "error_gauge", 42.0, nil)
	})
}

// errorInjectingMeter wraps a real meter but fails to create instruments with an "error_" name.
type errorInjectingMeter struct {
	metric.Meter
}

func (m *errorInjectingMeter) Float64Histogram(name string, options ...metric.Float64HistogramOption) (metric.Float64Histogram, error) {
	if name == "error_histogram" {
		return nil, errors.New("histogram creation failed")
	}

	return m.Meter.Float64Histogram(name, options...)
}

func (m *errorInjectingMeter) Int64Counter(name string, options ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	if name == "error_counter" {
		return nil, errors.New("counter creation failed")
	}

	return m.Meter.Int64Counter(name, options...)
}

func (m *errorInjectingMeter) Float64Gauge(name string, options ...metric.Float64GaugeOption) (metric.Float64Gauge, error) {
	if name == "error_gauge" {
		return nil, errors.New("gauge creation failed")
	}

	return m.Meter.Float64Gauge(name, options...)
}

func findMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Aggregation {
	t.Helper()

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			if m.Name == name {
				return m.Data
			}
		}
	}

	t.Fatalf("metric %s not found", name)

	return nil
}

func findHistogramMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Histogram[float64] {
	t.Helper()

	histogram, ok := findMetric(t, resourceMetrics, name).(metricdata.Histogram[float64])
	require.True(t, ok, "metric %s is not a float64 histogram", name)

	return histogram
}

func findCounterMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Sum[int64] {
	t.Helper()

	counter, ok := findMetric(t, resourceMetrics, name).(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 sum", name)

	return counter
}

func findGaugeMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Gauge[float64] {
	t.Helper()

	gauge, ok := findMetric(t, resourceMetrics, name).(metricdata.Gauge[float64])
	require.True(t, ok, "metric %s is not a float64 gauge", name)

	return gauge
}
