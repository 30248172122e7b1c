package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/metadata"

	"github.com/Goden-Gun/rpcerr-lib/pkg/rpcerr"
)

const traceMetadataKey = "x-trace-id"

// EventClassified is the span event added for every classified error.
const EventClassified = "rpc.error.classified"

// Span attribute keys.
const (
	AttrKind    = attribute.Key("rpc.error.kind")
	AttrCode    = attribute.Key("rpc.error.code")
	AttrID      = attribute.Key("rpc.error.id")
	AttrParam   = attribute.Key("rpc.error.param")
	AttrUnknown = attribute.Key("rpc.error.unknown")
	AttrRPC     = attribute.Key("rpc.error.caused_by")
)

var propagator = propagation.TraceContext{}

// Annotate records the classification on the span carried by ctx.
func Annotate(ctx context.Context, e *rpcerr.Error) {
	if ctx == nil || e == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	attrs := []attribute.KeyValue{
		AttrKind.String(string(e.Kind)),
		AttrCode.Int64(int64(e.Code)),
		AttrID.String(e.ID),
		AttrUnknown.Bool(e.Unknown),
	}
	if e.Param != nil {
		attrs = append(attrs, AttrParam.Int64(*e.Param))
	}
	if e.RPC != "" {
		attrs = append(attrs, AttrRPC.String(e.RPC))
	}
	span.AddEvent(EventClassified, trace.WithAttributes(attrs...))
	span.SetAttributes(attrs...)
}

// InjectMetadata injects tracing context into gRPC metadata.
func InjectMetadata(ctx context.Context, md metadata.MD) metadata.MD {
	if md == nil {
		md = metadata.New(nil)
	}
	propagator.Inject(ctx, propagation.HeaderCarrier(md))
	if span := trace.SpanFromContext(ctx); span.SpanContext().HasTraceID() {
		md.Set(traceMetadataKey, span.SpanContext().TraceID().String())
	}
	return md
}

// ExtractMetadata extracts tracing context from metadata.
func ExtractMetadata(ctx context.Context, md metadata.MD) context.Context {
	if md == nil {
		return ctx
	}
	ctx = propagator.Extract(ctx, propagation.HeaderCarrier(md))
	if traceIDs := md.Get(traceMetadataKey); len(traceIDs) > 0 {
		span := trace.SpanFromContext(ctx)
		span.SetAttributes(attribute.String(traceMetadataKey, traceIDs[0]))
	}
	return ctx
}

// Tracer returns named tracer for classification components.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
