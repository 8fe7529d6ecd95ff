package metric

import (
	"math"

	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/index"
	"github.com/tantivygo/aggregations/internal/obsmetrics"
	"github.com/tantivygo/aggregations/internal/sketch"
)

// Percentiles is the percentile leaf's fruit: a mergeable quantile sketch
// over every value the leaf has observed.
type Percentiles struct {
	field   string
	epsilon float64
	sk      *sketch.Sketch
}

// Query returns the approximate rank and value at quantile q, or
// (0, 0, false) if no document has contributed a value.
func (p Percentiles) Query(q float64) (rank int64, value float64, ok bool) {
	if p.sk == nil || p.sk.Len() == 0 {
		return 0, 0, false
	}
	rank, value = p.sk.Query(q)
	return rank, value, true
}

type percentilesDescriptor struct {
	field   string
	epsilon float64
}

// Percentile computes an epsilon-approximate quantile sketch over a
// single-valued float64 fast field, using epsilon as the approximation
// error (sketch.DefaultEpsilon if epsilon <= 0).
func Percentile(field string, epsilon float64) agg.Descriptor[Percentiles] {
	if epsilon <= 0 {
		epsilon = sketch.DefaultEpsilon
	}
	return percentilesDescriptor{field: field, epsilon: epsilon}
}

func (percentilesDescriptor) RequiresScoring() bool { return false }

func (d percentilesDescriptor) Prepare(index.Searcher) (agg.Prepared[Percentiles], error) {
	return percentilesPrepared{field: d.field, epsilon: d.epsilon}, nil
}

type percentilesPrepared struct {
	field   string
	epsilon float64
}

func (p percentilesPrepared) CreateFruit() Percentiles {
	return Percentiles{field: p.field, epsilon: p.epsilon, sk: sketch.New(p.epsilon)}
}

func (p percentilesPrepared) Merge(dst *Percentiles, src Percentiles) {
	dst.sk.Merge(src.sk)
	obsmetrics.SketchMergesTotal.WithLabelValues(p.field).Inc()
	obsmetrics.SketchSampleSize.WithLabelValues(p.field).Observe(float64(dst.sk.SampleCount()))
}

func (p percentilesPrepared) ForSegment(ctx agg.SegmentContext) (agg.Segment[Percentiles], error) {
	fr, err := ctx.Reader.FastFields().F64(p.field)
	if err != nil {
		return nil, &agg.SchemaError{Field: p.field, Want: "single-valued f64 fast field", Err: err}
	}
	return percentilesSegment{field: p.field, get: fr.Get}, nil
}

type percentilesSegment struct {
	field string
	get   singleGetter[float64]
}

// Collect ignores NaN values, matching histogram's Collect: NaN never
// enters the sketch.
func (s percentilesSegment) Collect(doc uint32, _ float64, fruit *Percentiles) {
	v := s.get(doc)
	if math.IsNaN(v) {
		return
	}
	fruit.sk.Insert(v)
	obsmetrics.SketchInsertsTotal.WithLabelValues(s.field).Inc()
}
