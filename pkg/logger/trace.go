package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// TraceFields возвращает trace_id/span_id активного спана, чтобы логи можно было
// сопоставить с трейсами. Без валидного спана возвращает nil.
func TraceFields(ctx context.Context) []Field {
	spanCtx := trace.SpanFromContext(ctx).SpanContext()
	if !spanCtx.IsValid() {
		return nil
	}

	return []Field{
		NewField("trace_id", spanCtx.TraceID().String()),
		NewField("span_id", spanCtx.SpanID().String()),
	}
}
