package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("smartenum")

// SpanManager handles trace spans for explicit enum definition.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartDefineSpan starts a span covering the definition of one enum type.
	StartDefineSpan(ctx context.Context, enumType, registryID string) (context.Context, trace.Span)

	// EndDefineSpan records the variant count and ends the span.
	EndDefineSpan(span trace.Span, variants int, err error)
}

type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses the global OTel tracer
// provider.
func NewSpanManager() SpanManager {
	return otelSpanManager{}
}

// StartDefineSpan starts a "smartenum.define" span.
func (otelSpanManager) StartDefineSpan(ctx context.Context, enumType, registryID string) (context.Context, trace.Span) {
	return StartDefineSpan(ctx, enumType, registryID)
}

// EndDefineSpan ends span.
func (otelSpanManager) EndDefineSpan(span trace.Span, variants int, err error) {
	if span == nil {
		return
	}
	span.SetAttributes(attribute.Int("enum.variants", variants))
	EndSpanWithError(span, err)
}

// StartDefineSpan starts a "smartenum.define" span on the global tracer.
func StartDefineSpan(ctx context.Context, enumType, registryID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "smartenum.define",
		trace.WithAttributes(
			attribute.String("enum.type", enumType),
			attribute.String("enum.registry_id", registryID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
