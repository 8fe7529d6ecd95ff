package obsmetrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/tantivygo/aggregations/internal/obsmetrics"
)

func TestSketchInsertsTotal_IncrementsPerField(t *testing.T) {
	before := testutil.ToFloat64(obsmetrics.SketchInsertsTotal.WithLabelValues("price"))

	obsmetrics.SketchInsertsTotal.WithLabelValues("price").Inc()

	after := testutil.ToFloat64(obsmetrics.SketchInsertsTotal.WithLabelValues("price"))
	assert.Equal(t, before+1, after)
}

func TestSketchMergesTotal_IsLabeledByField(t *testing.T) {
	obsmetrics.SketchMergesTotal.WithLabelValues("latency_ms").Inc()
	obsmetrics.SketchMergesTotal.WithLabelValues("price").Inc()
	obsmetrics.SketchMergesTotal.WithLabelValues("price").Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(obsmetrics.SketchMergesTotal.WithLabelValues("latency_ms")))
	assert.Equal(t, float64(2), testutil.ToFloat64(obsmetrics.SketchMergesTotal.WithLabelValues("price")))
}

func TestSketchSampleSize_ObservesIntoHistogram(t *testing.T) {
	countBefore := testutil.CollectAndCount(obsmetrics.SketchSampleSize)

	obsmetrics.SketchSampleSize.WithLabelValues("price").Observe(128)

	countAfter := testutil.CollectAndCount(obsmetrics.SketchSampleSize)
	assert.GreaterOrEqual(t, countAfter, countBefore)
}

func TestBucketMapSize_ObservesByKind(t *testing.T) {
	obsmetrics.BucketMapSize.WithLabelValues("terms").Observe(16)
	obsmetrics.BucketMapSize.WithLabelValues("histogram").Observe(4)

	// Both label values must be independently collectible without panicking.
	assert.NotPanics(t, func() {
		testutil.CollectAndCount(obsmetrics.BucketMapSize)
	})
}
