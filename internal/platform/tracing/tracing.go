// Package tracing opens spans only beneath an existing request span, so
// background work and filtered routes never start orphan traces.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Tracer returns the global tracer for a package scope.
func Tracer(scope string) trace.Tracer {
	return otel.Tracer("fantasy-cricket/" + scope)
}

// Child starts name under the span carried by ctx. Without a valid parent,
// or with an empty name, ctx is returned unchanged alongside a no-op span.
func Child(ctx context.Context, tracer trace.Tracer, name string) (context.Context, trace.Span) {
	if name == "" || !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, noop.Span{}
	}
	return tracer.Start(ctx, name)
}
