// Package reporter durably records RPC error reports the catalog could not
// resolve precisely, so the catalog can be extended later.
//
// Record never fails from the caller's point of view: sink errors are logged
// and counted, then dropped. Every sink writes one record as one atomic line
// (or list element, or message), so concurrent reporters never interleave.
package reporter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	log "github.com/Goden-Gun/rpcerr-lib/pkg/logger"
	"github.com/Goden-Gun/rpcerr-lib/pkg/metrics"
)

// Record is one unresolved report.
type Record struct {
	ID      string    `json:"id"`
	Time    time.Time `json:"time"`
	Code    int32     `json:"code"`
	Message string    `json:"message"`
	RPC     string    `json:"rpc,omitempty"`
}

// Line renders the record as one tab separated line:
//
//	{RFC3339Nano time}\t[{code} {message}]\t{rpc}\n
//
// Tabs and line breaks inside fields are folded to spaces.
func (r Record) Line() string {
	return fmt.Sprintf("%s\t[%d %s]\t%s\n",
		r.Time.Format(time.RFC3339Nano), r.Code, flatten(r.Message), flatten(r.RPC))
}

var flattener = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

func flatten(s string) string {
	return flattener.Replace(s)
}

// Sink persists records. Implementations must be safe for concurrent use.
type Sink interface {
	Name() string
	Append(ctx context.Context, rec Record) error
}

// Reporter fans records out to its sinks.
type Reporter struct {
	sinks  []Sink
	now    func() time.Time
	newID  func() string
	logger *log.Logger
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Reporter) { r.now = now }
}

// WithLogger routes sink failures to l instead of the standard logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Reporter) { r.logger = l }
}

// New builds a reporter writing to sinks.
func New(sinks []Sink, opts ...Option) *Reporter {
	r := &Reporter{
		sinks: sinks,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Sinks returns the configured sinks.
func (r *Reporter) Sinks() []Sink {
	return r.sinks
}

// Record appends the report to every sink. It never returns an error and
// never panics on sink failure.
func (r *Reporter) Record(ctx context.Context, code int32, message, rpc string) {
	if r == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	rec := Record{
		ID:      r.newID(),
		Time:    r.now(),
		Code:    code,
		Message: message,
		RPC:     rpc,
	}
	for _, sink := range r.sinks {
		err := r.appendSafe(ctx, sink, rec)
		metrics.ReporterAppendsTotal.WithLabelValues(sink.Name(), metrics.Result(err)).Inc()
		if err != nil {
			log.WithReport(log.WithTrace(ctx, r.logger), code, message, rpc).
				WithField(log.FieldSink, sink.Name()).
				WithError(err).
				Warn("unknown error record dropped")
		}
	}
}

func (r *Reporter) appendSafe(ctx context.Context, sink Sink, rec Record) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("sink %s panicked: %v", sink.Name(), p)
		}
	}()
	return sink.Append(ctx, rec)
}

// Close closes every sink that holds resources.
func (r *Reporter) Close() error {
	var first error
	for _, sink := range r.sinks {
		c, ok := sink.(interface{ Close() error })
		if !ok {
			continue
		}
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
