package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"google.golang.org/grpc/metadata"

	"github.com/Goden-Gun/rpcerr-lib/pkg/rpcerr"
)

func newRecorder() (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	rec := tracetest.NewSpanRecorder()
	return rec, sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
}

func TestAnnotate(t *testing.T) {
	rec, tp := newRecorder()
	ctx, span := tp.Tracer("test").Start(context.Background(), "call")
	p := int64(5)

	Annotate(ctx, &rpcerr.Error{Kind: "FLOOD_WAIT", ID: "FLOOD_WAIT_X", Code: 420, Param: &p, RPC: "messages.SendMessage"})
	span.End()

	spans := rec.Ended()
	require.Len(t, spans, 1)
	events := spans[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, EventClassified, events[0].Name)
	assert.Contains(t, spans[0].Attributes(), AttrKind.String("FLOOD_WAIT"))
	assert.Contains(t, spans[0].Attributes(), AttrParam.Int64(5))
	assert.Contains(t, spans[0].Attributes(), attribute.Bool(string(AttrUnknown), false))
}

func TestAnnotate_NoSpan(t *testing.T) {
	assert.NotPanics(t, func() {
		Annotate(context.Background(), &rpcerr.Error{Kind: "X"})
		Annotate(context.Background(), nil)
	})
}

func TestInjectExtractMetadata(t *testing.T) {
	_, tp := newRecorder()
	ctx, span := tp.Tracer("test").Start(context.Background(), "call")
	defer span.End()

	md := InjectMetadata(ctx, nil)
	assert.Equal(t, []string{span.SpanContext().TraceID().String()}, md.Get(traceMetadataKey))

	out := ExtractMetadata(context.Background(), md)
	assert.NotNil(t, out)
	assert.Equal(t, context.Background(), ExtractMetadata(context.Background(), metadata.MD(nil)))
}
