package logger

import (
	"context"
	"io"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// Package logger is a thin wrapper around logrus' standard logger.
//
// It is designed to be imported as `log`, so the classifier, the reporter and
// host applications share one logging backend configured once (typically via
// rpcerr-lib/pkg/bootstrap).

type Fields = log.Fields
type Entry = log.Entry
type Logger = log.Logger
type Level = log.Level
type Formatter = log.Formatter
type Hook = log.Hook
type JSONFormatter = log.JSONFormatter
type TextFormatter = log.TextFormatter

var AllLevels = log.AllLevels

const (
	ErrorLevel = log.ErrorLevel
	WarnLevel  = log.WarnLevel
	InfoLevel  = log.InfoLevel
	DebugLevel = log.DebugLevel
	TraceLevel = log.TraceLevel
)

// Field keys shared by every component that logs an error report.
const (
	FieldCode    = "rpc_error_code"
	FieldMessage = "rpc_error_message"
	FieldRPC     = "rpc"
	FieldKind    = "rpc_error_kind"
	FieldTier    = "tier"
	FieldSink    = "sink"
	FieldTraceID = "trace_id"
)

func StandardLogger() *Logger { return log.StandardLogger() }
func New() *Logger            { return log.New() }
func NewEntry(l *Logger) *Entry {
	return log.NewEntry(l)
}

func AddHook(h Hook)                         { log.AddHook(h) }
func SetFormatter(f Formatter)               { log.SetFormatter(f) }
func SetLevel(level Level)                   { log.SetLevel(level) }
func ParseLevel(level string) (Level, error) { return log.ParseLevel(level) }
func SetOutput(out io.Writer)                { log.SetOutput(out) }
func SetReportCaller(report bool)            { log.SetReportCaller(report) }

func WithField(key string, value any) *Entry { return log.WithField(key, value) }
func WithFields(fields Fields) *Entry        { return log.WithFields(fields) }
func WithError(err error) *Entry             { return log.WithError(err) }

// WithTrace binds ctx to an entry of l (the standard logger when nil) and adds
// "trace_id" when an OpenTelemetry span context is present.
func WithTrace(ctx context.Context, l *Logger) *Entry {
	if l == nil {
		l = log.StandardLogger()
	}
	e := log.NewEntry(l)
	if ctx == nil {
		return e
	}
	e = e.WithContext(ctx)
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		e = e.WithField(FieldTraceID, sc.TraceID().String())
	}
	return e
}

// WithReport decorates e with the raw report fields.
func WithReport(e *Entry, code int32, message, rpc string) *Entry {
	fields := Fields{
		FieldCode:    code,
		FieldMessage: message,
	}
	if rpc != "" {
		fields[FieldRPC] = rpc
	}
	return e.WithFields(fields)
}

func Debugf(format string, args ...any) { log.Debugf(format, args...) }
func Infof(format string, args ...any)  { log.Infof(format, args...) }
func Warnf(format string, args ...any)  { log.Warnf(format, args...) }
func Errorf(format string, args ...any) { log.Errorf(format, args...) }
