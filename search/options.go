package search

import "github.com/tantivygo/aggregations/internal/validate"

// Options configures one call to Run.
type Options struct {
	// Concurrency is the maximum number of segments processed at once.
	// 0 or 1 selects the single-threaded mode; any higher value fans
	// segment workers out through a bounded pool of that size.
	Concurrency int `validate:"gte=0"`

	// PercentileEpsilon is the approximation error callers should pass to
	// metric.Percentile when building a search's aggregator tree, surfaced
	// here so a caller (e.g. the demo CLI) can carry one knob through its
	// own config instead of hard-coding sketch.DefaultEpsilon. Run itself
	// never reaches into a tree to rewrite a leaf's epsilon; descriptors
	// are immutable once built. Zero means "let metric.Percentile fall
	// back to its own default."
	PercentileEpsilon float64 `validate:"gte=0,lt=1"`
}

// validateOptions checks o's struct tags and returns an *agg.PreconditionError on
// violation.
func (o Options) validateOptions() error {
	return validate.Struct(o)
}

func (o Options) threaded() bool { return o.Concurrency > 1 }
