package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func newBufferLogger() (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := New()
	l.SetOutput(buf)
	l.SetFormatter(&JSONFormatter{})
	l.SetLevel(DebugLevel)
	return l, buf
}

func TestWithTrace_AddsTraceID(t *testing.T) {
	l, buf := newBufferLogger()
	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID, TraceFlags: trace.FlagsSampled})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	WithTrace(ctx, l).Info("hello")

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", out[FieldTraceID])
}

func TestWithTrace_NoSpan(t *testing.T) {
	l, buf := newBufferLogger()

	WithTrace(context.Background(), l).Info("hello")

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	_, ok := out[FieldTraceID]
	assert.False(t, ok)
}

func TestWithReport(t *testing.T) {
	l, buf := newBufferLogger()

	WithReport(NewEntry(l), 400, "SOME_NEW_ERROR_99", "").Warn("fallback")

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, float64(400), out[FieldCode])
	assert.Equal(t, "SOME_NEW_ERROR_99", out[FieldMessage])
	_, ok := out[FieldRPC]
	assert.False(t, ok)
}
