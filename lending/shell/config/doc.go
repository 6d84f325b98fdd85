// Package config builds the OpenTelemetry providers used by the command line tool.
//
// Telemetry is written to an io.Writer with the stdout exporters, so spans and metrics
// of a catalog session can be inspected without a collector.
package config
