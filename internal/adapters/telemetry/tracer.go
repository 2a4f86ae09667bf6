// Package telemetry provides the tracing adapter for the data-access layer.
package telemetry

import (
	"context"

	"go.farmtech.dev/agroview/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// OTelTracer implements ports.Tracer using OpenTelemetry. Without a
// configured SDK the global provider is a no-op, so tracing is free unless
// the embedding process installs an exporter.
type OTelTracer struct {
	tracer trace.Tracer
}

// NewOTelTracer creates a tracer with the given instrumentation name.
func NewOTelTracer(name string) *OTelTracer {
	return &OTelTracer{tracer: otel.Tracer(name)}
}

// Start opens a span.
func (t *OTelTracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &otelSpan{span: span}
}

type otelSpan struct {
	span trace.Span
}

func (s *otelSpan) End() {
	s.span.End()
}

func (s *otelSpan) RecordError(err error) {
	if err != nil {
		s.span.RecordError(err)
	}
}

func (s *otelSpan) SetAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

// NoopTracer implements ports.Tracer without recording anything. Used in
// tests and when tracing is disabled.
type NoopTracer struct{}

// NewNoopTracer creates a NoopTracer.
func NewNoopTracer() *NoopTracer {
	return &NoopTracer{}
}

// Start returns the context unchanged and a span that does nothing.
func (t *NoopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(_, _ string) {}
