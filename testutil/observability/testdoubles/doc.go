// Package testdoubles provides spies for the observability interfaces of the eventstore package.
//
//   - LogHandlerSpy: a slog.Handler capturing records, to be wrapped in a *slog.Logger
//   - MetricsCollectorSpy: captures durations, counters and values
//   - TracingCollectorSpy: captures started and finished spans
//
// They allow asserting on instrumentation without a telemetry backend.
package testdoubles
