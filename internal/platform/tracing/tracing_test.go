package tracing

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestChild(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := provider.Tracer("test")

	_, orphan := Child(context.Background(), tracer, "usecase.Orphan")
	orphan.End()
	if got := len(recorder.Ended()); got != 0 {
		t.Fatalf("expected no span without a parent, got %d", got)
	}

	ctx, root := tracer.Start(context.Background(), "GET /v1/players")
	_, unnamed := Child(ctx, tracer, "")
	unnamed.End()

	_, child := Child(ctx, tracer, "usecase.PlayerService.List")
	child.End()
	root.End()

	ended := recorder.Ended()
	if len(ended) != 2 {
		t.Fatalf("expected root and child spans, got %d", len(ended))
	}
	if ended[0].Name() != "usecase.PlayerService.List" {
		t.Fatalf("unexpected child span name %q", ended[0].Name())
	}
	if ended[0].Parent().SpanID() != root.SpanContext().SpanID() {
		t.Fatalf("child span is not parented to the request span")
	}
}
