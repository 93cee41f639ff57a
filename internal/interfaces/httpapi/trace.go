package httpapi

import (
	"context"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/tracing"
	"go.opentelemetry.io/otel/trace"
)

var tracer = tracing.Tracer("internal/interfaces/httpapi")

// startSpan opens handler spans beneath the otelhttp request span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracing.Child(ctx, tracer, name)
}

type principalKey struct{}

func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func principalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(user.Principal)
	return p, ok
}
