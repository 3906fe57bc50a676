package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricTransactionCreated = "transaction.created"
	MetricRangeQuery         = "transaction.range_query"
	MetricStoreFailure       = "store.failure"
	MetricSummaryDuration    = "summary.duration"
	MetricQueryDuration      = "query.duration"
	MetricQueryResultSize    = "query.result_size"
)

type PrometheusMetrics struct {
	transactionsCreated *prometheus.CounterVec
	rangeQueries        *prometheus.CounterVec
	storeFailures       *prometheus.CounterVec
	summaryDuration     prometheus.Histogram
	queryDuration       prometheus.Histogram
	queryResultSize     prometheus.Histogram
}

// NewPrometheusMetrics registers the ledger collectors on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_created_total",
				Help: "Total number of ledger transactions created",
			},
			[]string{"type"},
		),
		rangeQueries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_range_queries_total",
				Help: "Total number of transaction range queries",
			},
			[]string{"window", "status"},
		),
		storeFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_store_failures_total",
				Help: "Total number of backing store failures",
			},
			[]string{"operation"},
		),
		summaryDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_summary_duration_milliseconds",
				Help:    "Summary generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		queryDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_query_duration_milliseconds",
				Help:    "Range query duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		queryResultSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_query_result_size",
				Help:    "Number of transactions returned by a range query",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricTransactionCreated:
		m.transactionsCreated.WithLabelValues(tags["type"]).Inc()
	case MetricRangeQuery:
		m.rangeQueries.WithLabelValues(tags["window"], tags["status"]).Inc()
	case MetricStoreFailure:
		m.storeFailures.WithLabelValues(tags["operation"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricSummaryDuration:
		m.summaryDuration.Observe(float64(duration.Milliseconds()))
	case MetricQueryDuration:
		m.queryDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricQueryResultSize:
		m.queryResultSize.Observe(value)
	}
}
