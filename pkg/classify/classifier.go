// Package classify resolves raw RPC error reports into classified errors.
//
// Resolution falls back in three tiers:
//
//   - exact: the code and the normalized message template are both in the
//     catalog; the matched kind is returned with its parameter.
//   - code default: the code is known but the template is not; the code's
//     default kind is returned, flagged unknown, and the report is recorded.
//   - unknown: the code itself is unknown; UNKNOWN_ERROR (520) is returned
//     and the report is recorded.
//
// Classify never fails and never returns nil.
package classify

import (
	"context"
	"fmt"

	"github.com/Goden-Gun/rpcerr-lib/pkg/catalog"
	log "github.com/Goden-Gun/rpcerr-lib/pkg/logger"
	"github.com/Goden-Gun/rpcerr-lib/pkg/metrics"
	"github.com/Goden-Gun/rpcerr-lib/pkg/normalize"
	"github.com/Goden-Gun/rpcerr-lib/pkg/rpcerr"
	"github.com/Goden-Gun/rpcerr-lib/pkg/tracing"
)

// Recorder receives reports that could not be classified exactly.
// *reporter.Reporter implements it.
type Recorder interface {
	Record(ctx context.Context, code int32, message, rpc string)
}

// Classifier maps reports onto a catalog. It is safe for concurrent use.
type Classifier struct {
	catalog  *catalog.Catalog
	recorder Recorder
	logger   *log.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithRecorder sets the sink for imprecise classifications.
func WithRecorder(r Recorder) Option {
	return func(c *Classifier) { c.recorder = r }
}

// WithLogger overrides the standard logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Classifier) { c.logger = l }
}

// New returns a classifier over cat, or over the packaged catalog when cat is nil.
func New(cat *catalog.Catalog, opts ...Option) *Classifier {
	if cat == nil {
		cat = catalog.Default()
	}
	c := &Classifier{catalog: cat}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog returns the catalog the classifier resolves against.
func (c *Classifier) Catalog() *catalog.Catalog {
	return c.catalog
}

// Classify resolves report into a classified error. rpc labels the call
// that failed and is carried on the result and on recorded reports.
func (c *Classifier) Classify(ctx context.Context, report rpcerr.Report, rpc string) *rpcerr.Error {
	if ctx == nil {
		ctx = context.Background()
	}

	table, ok := c.catalog.Lookup(report.Code)
	if !ok {
		e := rpcerr.Unknown(report, rpc)
		c.record(ctx, report, rpc)
		c.observe(ctx, report, e, metrics.TierUnknown)
		return e
	}

	norm := normalize.Parse(report.Message)
	entry, ok := table.Match(norm.Template)
	if !ok {
		def := table.Default()
		e := &rpcerr.Error{
			Kind:    def.Kind,
			ID:      def.ID,
			Code:    report.Code,
			X:       report.String(),
			RPC:     rpc,
			Unknown: true,
			Message: def.Message,
		}
		c.record(ctx, report, rpc)
		c.observe(ctx, report, e, metrics.TierCodeDefault)
		return e
	}

	e := &rpcerr.Error{
		Kind:    entry.Kind,
		ID:      entry.ID,
		Code:    report.Code,
		X:       report.Message,
		RPC:     rpc,
		Message: entry.Message,
	}
	if norm.OK {
		param := norm.Param
		e.Param = &param
	}
	if norm.Raw != "" {
		e.X = norm.Raw
	}
	c.observe(ctx, report, e, metrics.TierExact)
	return e
}

// Check classifies report when it is non-nil. It returns a nil error for a
// nil report, so it can be used directly on optional RPC results.
func (c *Classifier) Check(ctx context.Context, report *rpcerr.Report, rpc string) error {
	if report == nil {
		return nil
	}
	return c.Classify(ctx, *report, rpc)
}

func (c *Classifier) record(ctx context.Context, report rpcerr.Report, rpc string) {
	if c.recorder == nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			log.WithReport(log.WithTrace(ctx, c.logger), report.Code, report.Message, rpc).
				WithError(fmt.Errorf("recorder panicked: %v", p)).
				Error("unknown error record dropped")
		}
	}()
	c.recorder.Record(ctx, report.Code, report.Message, rpc)
}

func (c *Classifier) observe(ctx context.Context, report rpcerr.Report, e *rpcerr.Error, tier string) {
	metrics.ClassificationsTotal.WithLabelValues(tier, string(e.Kind)).Inc()
	tracing.Annotate(ctx, e)

	entry := log.WithReport(log.WithTrace(ctx, c.logger), report.Code, report.Message, e.RPC).
		WithField(log.FieldKind, e.Kind).
		WithField(log.FieldTier, tier)
	if tier == metrics.TierExact {
		entry.Debug("rpc error classified")
		return
	}
	entry.Warn("rpc error classified imprecisely")
}
