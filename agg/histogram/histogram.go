// Package histogram buckets a sub-aggregator's results by a fixed-width
// interval over a float64 column, producing one sub-fruit per non-empty
// bucket plus enough bookkeeping to fill gaps between them on read.
package histogram

import (
	"math"

	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/index"
	"github.com/tantivygo/aggregations/internal/obsmetrics"
)

type descriptor[F any] struct {
	field    string
	start    float64
	interval float64
	sub      agg.Descriptor[F]
}

// New builds a histogram bucket composer over the named single-valued
// float64 field. interval must be > 0 — a construction-time precondition
// (I6), not deferred to Prepare/ForSegment.
func New[F any](field string, start, interval float64, sub agg.Descriptor[F]) (agg.Descriptor[Result[F]], error) {
	if interval <= 0 {
		return nil, &agg.PreconditionError{Reason: "histogram: interval must be > 0"}
	}
	return descriptor[F]{field: field, start: start, interval: interval, sub: sub}, nil
}

func (d descriptor[F]) RequiresScoring() bool { return d.sub.RequiresScoring() }

func (d descriptor[F]) Prepare(s index.Searcher) (agg.Prepared[Result[F]], error) {
	subPrepared, err := d.sub.Prepare(s)
	if err != nil {
		return nil, err
	}
	return prepared[F]{field: d.field, start: d.start, interval: d.interval, sub: subPrepared}, nil
}

type prepared[F any] struct {
	field    string
	start    float64
	interval float64
	sub      agg.Prepared[F]
}

func (p prepared[F]) CreateFruit() Result[F] {
	return Result[F]{start: p.start, interval: p.interval, buckets: map[int64]F{}}
}

func (p prepared[F]) Merge(dst *Result[F], src Result[F]) {
	for ord, bucket := range src.buckets {
		existing, ok := dst.buckets[ord]
		if !ok {
			existing = p.sub.CreateFruit()
		}
		p.sub.Merge(&existing, bucket)
		dst.buckets[ord] = existing
	}
	obsmetrics.BucketMapSize.WithLabelValues("histogram").Observe(float64(len(dst.buckets)))
}

func (p prepared[F]) ForSegment(ctx agg.SegmentContext) (agg.Segment[Result[F]], error) {
	reader, err := ctx.Reader.FastFields().F64(p.field)
	if err != nil {
		return nil, &agg.SchemaError{Field: p.field, Want: "f64 fast field", Err: err}
	}
	sub, err := p.sub.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	return &segment[F]{reader: reader, start: p.start, interval: p.interval, sub: sub, newFruit: p.sub.CreateFruit}, nil
}

type segment[F any] struct {
	reader   index.F64Reader
	start    float64
	interval float64
	sub      agg.Segment[F]
	newFruit func() F
}

// Collect ignores NaN values and values below start, matching the
// original's collect behavior; otherwise it routes the document into the
// bucket for floor((value-start)/interval).
func (s *segment[F]) Collect(doc uint32, score float64, fruit *Result[F]) {
	v := s.reader.Get(doc)
	if math.IsNaN(v) {
		return
	}
	n := v - s.start
	if n < 0 {
		return
	}
	ord := int64(math.Floor(n / s.interval))
	bucket, ok := fruit.buckets[ord]
	if !ok {
		bucket = s.newFruit()
	}
	s.sub.Collect(doc, score, &bucket)
	fruit.buckets[ord] = bucket
}
