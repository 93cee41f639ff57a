package usecase

import (
	"context"

	"github.com/riskibarqy/fantasy-cricket/internal/platform/tracing"
	"go.opentelemetry.io/otel/trace"
)

var tracer = tracing.Tracer("internal/usecase")

func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracing.Child(ctx, tracer, name)
}
