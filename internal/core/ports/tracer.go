package ports

import "context"

// Span is one traced unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError attaches an error to the span.
	RecordError(err error)
	// SetAttribute attaches a key/value attribute to the span.
	SetAttribute(key string, value string)
}

// Tracer creates spans around executor calls and load sessions. It decouples
// the data layer from the telemetry backend; a noop implementation is used
// when tracing is disabled.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start opens a span and returns the derived context carrying it.
	Start(ctx context.Context, name string) (context.Context, Span)
}
