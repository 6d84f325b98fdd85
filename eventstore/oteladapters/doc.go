// Package oteladapters implements the observability interfaces of the eventstore package with OpenTelemetry.
//
//   - SlogBridgeLogger: eventstore.ContextualLogger on top of the otelslog bridge (trace correlated)
//   - MetricsCollector: eventstore.ContextualMetricsCollector on top of an otel metric.Meter
//   - TracingCollector: eventstore.TracingCollector on top of an otel trace.Tracer
//
// The catalog and the journal stay free of OpenTelemetry imports; only wiring code needs this package.
package oteladapters
