package metric

import (
	"math"
	"time"

	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/index"
)

// Value is the Option<T>-shaped fruit shared by min, max and sum leaves: no
// document has been seen until Valid is true, satisfying the merge
// identity law against a zero-value Value[T].
type Value[T any] struct {
	V     T
	Valid bool
}

// Get returns the accumulated value and whether any document contributed
// to it.
func (v Value[T]) Get() (T, bool) { return v.V, v.Valid }

type singleGetter[T any] func(doc uint32) T
type multiGetter[T any] func(doc uint32, scratch []T) []T

type openSingle[T any] func(r index.FastFieldReaders) (singleGetter[T], error)
type openMulti[T any] func(r index.FastFieldReaders) (multiGetter[T], error)

// minMaxSingle implements the three-stage protocol for a single-valued
// min or max leaf; better(a, b) reports whether a should replace the
// current accumulated value b.
type minMaxSingle[T any] struct {
	field  string
	open   openSingle[T]
	better func(a, b T) bool
	isNaN  func(T) bool
}

func (d *minMaxSingle[T]) RequiresScoring() bool { return false }

func (d *minMaxSingle[T]) Prepare(index.Searcher) (agg.Prepared[Value[T]], error) {
	return &minMaxSinglePrepared[T]{field: d.field, open: d.open, better: d.better, isNaN: d.isNaN}, nil
}

type minMaxSinglePrepared[T any] struct {
	field  string
	open   openSingle[T]
	better func(a, b T) bool
	isNaN  func(T) bool
}

func (p *minMaxSinglePrepared[T]) CreateFruit() Value[T] { return Value[T]{} }

func (p *minMaxSinglePrepared[T]) Merge(dst *Value[T], src Value[T]) {
	if !src.Valid {
		return
	}
	if !dst.Valid {
		*dst = src
		return
	}
	if p.better(src.V, dst.V) {
		dst.V = src.V
	}
}

func (p *minMaxSinglePrepared[T]) ForSegment(ctx agg.SegmentContext) (agg.Segment[Value[T]], error) {
	get, err := p.open(ctx.Reader.FastFields())
	if err != nil {
		return nil, &agg.SchemaError{Field: p.field, Want: "single-valued fast field", Err: err}
	}
	return &minMaxSingleSegment[T]{get: get, better: p.better, isNaN: p.isNaN}, nil
}

type minMaxSingleSegment[T any] struct {
	get    singleGetter[T]
	better func(a, b T) bool
	isNaN  func(T) bool
}

// Collect ignores NaN values for float fields, matching histogram's
// Collect: NaN never participates in a comparison or becomes the fruit.
func (s *minMaxSingleSegment[T]) Collect(doc uint32, _ float64, fruit *Value[T]) {
	v := s.get(doc)
	if s.isNaN != nil && s.isNaN(v) {
		return
	}
	if !fruit.Valid {
		fruit.V, fruit.Valid = v, true
		return
	}
	if s.better(v, fruit.V) {
		fruit.V = v
	}
}

// minMaxMulti is the multi-valued counterpart: every value in a document's
// value list is folded into the running accumulator.
type minMaxMulti[T any] struct {
	field  string
	open   openMulti[T]
	better func(a, b T) bool
	isNaN  func(T) bool
}

func (d *minMaxMulti[T]) RequiresScoring() bool { return false }

func (d *minMaxMulti[T]) Prepare(index.Searcher) (agg.Prepared[Value[T]], error) {
	return &minMaxMultiPrepared[T]{field: d.field, open: d.open, better: d.better, isNaN: d.isNaN}, nil
}

type minMaxMultiPrepared[T any] struct {
	field  string
	open   openMulti[T]
	better func(a, b T) bool
	isNaN  func(T) bool
}

func (p *minMaxMultiPrepared[T]) CreateFruit() Value[T] { return Value[T]{} }

func (p *minMaxMultiPrepared[T]) Merge(dst *Value[T], src Value[T]) {
	if !src.Valid {
		return
	}
	if !dst.Valid {
		*dst = src
		return
	}
	if p.better(src.V, dst.V) {
		dst.V = src.V
	}
}

func (p *minMaxMultiPrepared[T]) ForSegment(ctx agg.SegmentContext) (agg.Segment[Value[T]], error) {
	get, err := p.open(ctx.Reader.FastFields())
	if err != nil {
		return nil, &agg.SchemaError{Field: p.field, Want: "multi-valued fast field", Err: err}
	}
	return &minMaxMultiSegment[T]{get: get, better: p.better, isNaN: p.isNaN}, nil
}

type minMaxMultiSegment[T any] struct {
	get     multiGetter[T]
	better  func(a, b T) bool
	isNaN   func(T) bool
	scratch []T
}

// Collect ignores NaN values for float fields, matching histogram's
// Collect: NaN never participates in a comparison or becomes the fruit.
func (s *minMaxMultiSegment[T]) Collect(doc uint32, _ float64, fruit *Value[T]) {
	s.scratch = s.get(doc, s.scratch[:0])
	for _, v := range s.scratch {
		if s.isNaN != nil && s.isNaN(v) {
			continue
		}
		if !fruit.Valid {
			fruit.V, fruit.Valid = v, true
			continue
		}
		if s.better(v, fruit.V) {
			fruit.V = v
		}
	}
}

func lt[T int64 | uint64 | float64](a, b T) bool { return a < b }
func gt[T int64 | uint64 | float64](a, b T) bool { return a > b }

// MinU64 computes the minimum value of a single-valued uint64 fast field.
func MinU64(field string) agg.Descriptor[Value[uint64]] {
	return &minMaxSingle[uint64]{field: field, better: lt[uint64], open: func(r index.FastFieldReaders) (singleGetter[uint64], error) {
		fr, err := r.U64(field)
		if err != nil {
			return nil, err
		}
		return fr.Get, nil
	}}
}

// MaxU64 computes the maximum value of a single-valued uint64 fast field.
func MaxU64(field string) agg.Descriptor[Value[uint64]] {
	return &minMaxSingle[uint64]{field: field, better: gt[uint64], open: func(r index.FastFieldReaders) (singleGetter[uint64], error) {
		fr, err := r.U64(field)
		if err != nil {
			return nil, err
		}
		return fr.Get, nil
	}}
}

// MinI64 computes the minimum value of a single-valued int64 fast field.
func MinI64(field string) agg.Descriptor[Value[int64]] {
	return &minMaxSingle[int64]{field: field, better: lt[int64], open: func(r index.FastFieldReaders) (singleGetter[int64], error) {
		fr, err := r.I64(field)
		if err != nil {
			return nil, err
		}
		return fr.Get, nil
	}}
}

// MaxI64 computes the maximum value of a single-valued int64 fast field.
func MaxI64(field string) agg.Descriptor[Value[int64]] {
	return &minMaxSingle[int64]{field: field, better: gt[int64], open: func(r index.FastFieldReaders) (singleGetter[int64], error) {
		fr, err := r.I64(field)
		if err != nil {
			return nil, err
		}
		return fr.Get, nil
	}}
}

// MinF64 computes the minimum value of a single-valued float64 fast field.
// NaN values are filtered before any comparison.
func MinF64(field string) agg.Descriptor[Value[float64]] {
	return &minMaxSingle[float64]{field: field, better: lt[float64], isNaN: math.IsNaN, open: func(r index.FastFieldReaders) (singleGetter[float64], error) {
		fr, err := r.F64(field)
		if err != nil {
			return nil, err
		}
		return fr.Get, nil
	}}
}

// MaxF64 computes the maximum value of a single-valued float64 fast field.
// NaN values are filtered before any comparison.
func MaxF64(field string) agg.Descriptor[Value[float64]] {
	return &minMaxSingle[float64]{field: field, better: gt[float64], isNaN: math.IsNaN, open: func(r index.FastFieldReaders) (singleGetter[float64], error) {
		fr, err := r.F64(field)
		if err != nil {
			return nil, err
		}
		return fr.Get, nil
	}}
}

func timestampGetter(fr index.TimestampReader) singleGetter[time.Time] {
	return func(doc uint32) time.Time { return time.Unix(0, fr.Get(doc)).UTC() }
}

// MinTimestamp computes the minimum value of a single-valued timestamp
// fast field.
func MinTimestamp(field string) agg.Descriptor[Value[time.Time]] {
	return &minMaxSingle[time.Time]{field: field, better: func(a, b time.Time) bool { return a.Before(b) }, open: func(r index.FastFieldReaders) (singleGetter[time.Time], error) {
		fr, err := r.Timestamp(field)
		if err != nil {
			return nil, err
		}
		return timestampGetter(fr), nil
	}}
}

// MaxTimestamp computes the maximum value of a single-valued timestamp
// fast field.
func MaxTimestamp(field string) agg.Descriptor[Value[time.Time]] {
	return &minMaxSingle[time.Time]{field: field, better: func(a, b time.Time) bool { return a.After(b) }, open: func(r index.FastFieldReaders) (singleGetter[time.Time], error) {
		fr, err := r.Timestamp(field)
		if err != nil {
			return nil, err
		}
		return timestampGetter(fr), nil
	}}
}

// MinU64s computes the minimum value across a multi-valued uint64 fast field.
func MinU64s(field string) agg.Descriptor[Value[uint64]] {
	return &minMaxMulti[uint64]{field: field, better: lt[uint64], open: func(r index.FastFieldReaders) (multiGetter[uint64], error) {
		fr, err := r.U64s(field)
		if err != nil {
			return nil, err
		}
		return fr.GetInto, nil
	}}
}

// MaxU64s computes the maximum value across a multi-valued uint64 fast field.
func MaxU64s(field string) agg.Descriptor[Value[uint64]] {
	return &minMaxMulti[uint64]{field: field, better: gt[uint64], open: func(r index.FastFieldReaders) (multiGetter[uint64], error) {
		fr, err := r.U64s(field)
		if err != nil {
			return nil, err
		}
		return fr.GetInto, nil
	}}
}

// MinI64s computes the minimum value across a multi-valued int64 fast field.
func MinI64s(field string) agg.Descriptor[Value[int64]] {
	return &minMaxMulti[int64]{field: field, better: lt[int64], open: func(r index.FastFieldReaders) (multiGetter[int64], error) {
		fr, err := r.I64s(field)
		if err != nil {
			return nil, err
		}
		return fr.GetInto, nil
	}}
}

// MaxI64s computes the maximum value across a multi-valued int64 fast field.
func MaxI64s(field string) agg.Descriptor[Value[int64]] {
	return &minMaxMulti[int64]{field: field, better: gt[int64], open: func(r index.FastFieldReaders) (multiGetter[int64], error) {
		fr, err := r.I64s(field)
		if err != nil {
			return nil, err
		}
		return fr.GetInto, nil
	}}
}

// MinF64s computes the minimum value across a multi-valued float64 fast
// field. NaN values are filtered before any comparison.
func MinF64s(field string) agg.Descriptor[Value[float64]] {
	return &minMaxMulti[float64]{field: field, better: lt[float64], isNaN: math.IsNaN, open: func(r index.FastFieldReaders) (multiGetter[float64], error) {
		fr, err := r.F64s(field)
		if err != nil {
			return nil, err
		}
		return fr.GetInto, nil
	}}
}

// MaxF64s computes the maximum value across a multi-valued float64 fast
// field. NaN values are filtered before any comparison.
func MaxF64s(field string) agg.Descriptor[Value[float64]] {
	return &minMaxMulti[float64]{field: field, better: gt[float64], isNaN: math.IsNaN, open: func(r index.FastFieldReaders) (multiGetter[float64], error) {
		fr, err := r.F64s(field)
		if err != nil {
			return nil, err
		}
		return fr.GetInto, nil
	}}
}

func timestampsGetter(fr index.TimestampsReader) multiGetter[time.Time] {
	return func(doc uint32, scratch []time.Time) []time.Time {
		var nanoScratch []int64
		nanoScratch = fr.GetInto(doc, nanoScratch[:0])
		out := scratch[:0]
		for _, n := range nanoScratch {
			out = append(out, time.Unix(0, n).UTC())
		}
		return out
	}
}

// MinTimestamps computes the minimum value across a multi-valued timestamp
// fast field.
func MinTimestamps(field string) agg.Descriptor[Value[time.Time]] {
	return &minMaxMulti[time.Time]{field: field, better: func(a, b time.Time) bool { return a.Before(b) }, open: func(r index.FastFieldReaders) (multiGetter[time.Time], error) {
		fr, err := r.Timestamps(field)
		if err != nil {
			return nil, err
		}
		return timestampsGetter(fr), nil
	}}
}

// MaxTimestamps computes the maximum value across a multi-valued timestamp
// fast field.
func MaxTimestamps(field string) agg.Descriptor[Value[time.Time]] {
	return &minMaxMulti[time.Time]{field: field, better: func(a, b time.Time) bool { return a.After(b) }, open: func(r index.FastFieldReaders) (multiGetter[time.Time], error) {
		fr, err := r.Timestamps(field)
		if err != nil {
			return nil, err
		}
		return timestampsGetter(fr), nil
	}}
}
