// Package obsmetrics holds this module's promauto-registered Prometheus
// metrics, kept separate from the OpenTelemetry instrumentation search.Run
// emits directly — this codebase runs both stacks side by side rather than
// picking one.
package obsmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SketchInsertsTotal counts values inserted into percentile sketches,
	// labeled by field.
	SketchInsertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aggregations_sketch_inserts_total",
		Help: "Total values inserted into a quantile sketch, by field",
	}, []string{"field"})

	// SketchMergesTotal counts sketch merges, labeled by field.
	SketchMergesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aggregations_sketch_merges_total",
		Help: "Total quantile sketch merges, by field",
	}, []string{"field"})

	// SketchSampleSize observes the number of retained samples in a sketch
	// at merge time, a proxy for the sketch's memory footprint.
	SketchSampleSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aggregations_sketch_sample_size",
		Help:    "Retained sample count of a quantile sketch observed at merge time",
		Buckets: []float64{8, 32, 128, 512, 2048, 8192},
	}, []string{"field"})

	// BucketMapSize observes the number of distinct keys in a terms or
	// histogram bucket map at merge time.
	BucketMapSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aggregations_bucket_map_size",
		Help:    "Distinct bucket key count observed at merge time, by bucket kind",
		Buckets: []float64{1, 4, 16, 64, 256, 1024, 4096},
	}, []string{"kind"})
)
