package rest

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/driftmail/driftmail-go"

// tracer provides OpenTelemetry tracing for API requests. Spans are no-ops
// unless the host application installs a tracer provider.
type tracer struct {
	tracer trace.Tracer
}

func newTracer() *tracer {
	return &tracer{tracer: otel.Tracer(tracerName)}
}

// startRequestSpan starts a client span for a single API request.
func (t *tracer) startRequestSpan(ctx context.Context, method, path string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "driftmail.request",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
}

// endRequestSpan ends a request span with result attributes.
func (t *tracer) endRequestSpan(span trace.Span, statusCode int, errMsg string) {
	if statusCode > 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", statusCode))
	}
	if errMsg != "" {
		span.SetAttributes(attribute.String("driftmail.error", errMsg))
	}
	span.End()
}
