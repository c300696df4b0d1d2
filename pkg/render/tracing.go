package render

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const spanName = "htmlelem.render"

// Span attribute keys.
const (
	attrTag        = attribute.Key("htmlelem.tag")
	attrBytes      = attribute.Key("htmlelem.bytes")
	attrSelfClose  = attribute.Key("htmlelem.self_closing")
	attrChildCount = attribute.Key("htmlelem.children")
)

func newTracer(config Config) trace.Tracer {
	name := config.TracerName
	if name == "" {
		name = defaultTracerName
	}
	if config.TracerProvider != nil {
		return config.TracerProvider.Tracer(name)
	}
	return otel.Tracer(name)
}

func startSpan(ctx context.Context, tracer trace.Tracer, tag string, selfClosing bool, children int) (context.Context, trace.Span) {
	return tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attrTag.String(tag),
			attrSelfClose.Bool(selfClosing),
			attrChildCount.Int(children),
		),
	)
}

func endSpan(span trace.Span, n int64, err error) {
	span.SetAttributes(attrBytes.Int64(n))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
