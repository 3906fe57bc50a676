package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	metrics.IncrementCounter(MetricTransactionCreated, map[string]string{"type": "income"})
	metrics.IncrementCounter(MetricTransactionCreated, map[string]string{"type": "income"})
	metrics.IncrementCounter(MetricTransactionCreated, map[string]string{"type": "expense"})
	metrics.IncrementCounter(MetricRangeQuery, map[string]string{"window": "month", "status": "ok"})
	metrics.IncrementCounter(MetricStoreFailure, map[string]string{"operation": "create"})
	metrics.IncrementCounter("unknown.metric", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.transactionsCreated.WithLabelValues("income")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.transactionsCreated.WithLabelValues("expense")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.rangeQueries.WithLabelValues("month", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.storeFailures.WithLabelValues("create")))
}

func TestPrometheusMetrics_Histograms(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.RecordProcessingTime(MetricSummaryDuration, 12*time.Millisecond)
	metrics.RecordProcessingTime(MetricQueryDuration, 3*time.Millisecond)
	metrics.RecordGauge(MetricQueryResultSize, 42, nil)

	count, err := testutil.GatherAndCount(reg,
		"ledger_summary_duration_milliseconds",
		"ledger_query_duration_milliseconds",
		"ledger_query_result_size",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
