// Package tracer defines the minimal tracing surface the validation service
// needs, with an OpenTelemetry adapter. Keeping the interface internal means
// the service never depends on OpenTelemetry APIs directly and tests can run
// with the no-op tracer.
package tracer

import "context"

// Attribute is a key/value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String builds a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool builds a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Tracer starts spans around validation operations.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Span is one in-flight traced operation.
type Span interface {
	// End completes the span, recording any error.
	End(err error)
	// SetAttributes adds attributes to the span.
	SetAttributes(attrs ...Attribute)
}

// Noop is a tracer that records nothing.
type Noop struct{}

func (Noop) Start(ctx context.Context, _ string, _ ...Attribute) (context.Context, Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End(error) {}

func (noopSpan) SetAttributes(...Attribute) {}

var (
	_ Tracer = Noop{}
	_ Span   = noopSpan{}
)
