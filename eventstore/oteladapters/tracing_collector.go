package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/lending-catalog-go/eventstore"
)

// TracingCollector implements eventstore.TracingCollector with the OpenTelemetry tracing API.
type TracingCollector struct {
	tracer trace.Tracer
}

// NewTracingCollector creates a TracingCollector. The tracer should come from your TracerProvider.
func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

// StartSpan starts a span with the given attributes and returns the context carrying it.
func (t *TracingCollector) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, eventstore.SpanContext) {
	spanCtx, span := t.tracer.Start(ctx, name, trace.WithAttributes(toAttributes(attrs)...))

	return spanCtx, &OTelSpanContext{span: span}
}

// FinishSpan adds the attributes, maps the status and ends the span.
// SpanContexts not created by this collector are ignored.
func (t *TracingCollector) FinishSpan(spanCtx eventstore.SpanContext, status string, attrs map[string]string) {
	otelSpanCtx, ok := spanCtx.(*OTelSpanContext)
	if !ok {
		return
	}

	otelSpanCtx.span.SetAttributes(toAttributes(attrs)...)
	otelSpanCtx.SetStatus(status)
	otelSpanCtx.span.End()
}

var _ eventstore.TracingCollector = (*TracingCollector)(nil)

// OTelSpanContext implements eventstore.SpanContext by wrapping an OpenTelemetry span.
type OTelSpanContext struct {
	span trace.Span
}

// SetStatus maps the status strings used by the catalog to OpenTelemetry status codes.
// Business rejections are not span errors; they keep the Unset code and are recorded as attribute.
func (s *OTelSpanContext) SetStatus(status string) {
	switch status {
	case "success":
		s.span.SetStatus(codes.Ok, "")
	case "error":
		s.span.SetStatus(codes.Error, "operation failed")
	case "canceled":
		s.span.SetStatus(codes.Error, "operation canceled")
	case "conflict":
		s.span.SetStatus(codes.Error, "concurrency conflict")
	default:
		s.AddAttribute("status", status)
	}
}

// AddAttribute adds a string attribute to the span.
func (s *OTelSpanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(toAttributes(map[string]string{key: value})...)
}

var _ eventstore.SpanContext = (*OTelSpanContext)(nil)
