package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Classification tiers, from most to least precise.
const (
	TierExact       = "exact"
	TierCodeDefault = "code_default"
	TierUnknown     = "unknown"
)

// Append results for reporter sinks.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	// ClassificationsTotal tracks classified reports per tier and kind
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rpcerr_classifications_total",
			Help: "Total number of RPC error reports classified",
		},
		[]string{"tier", "kind"},
	)

	// ReporterAppendsTotal tracks unknown-error record appends per sink
	ReporterAppendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rpcerr_reporter_appends_total",
			Help: "Total number of unknown-error records appended, by sink and result",
		},
		[]string{"sink", "result"},
	)

	// PublishLatency tracks Kafka publish latency for reporter records
	PublishLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rpcerr_publish_latency_seconds",
			Help:    "Kafka publish latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"topic", "result"},
	)
)

// Result maps an error to a result label.
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
