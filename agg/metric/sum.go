package metric

import (
	"math"

	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/index"
)

// Sum is the sum leaf's fruit. Valid is false until a document has
// contributed. Overflowed is set, and V saturates at the type's extreme,
// once an addition would otherwise wrap around — this resolves the sum
// overflow Open Question in favor of saturation over silent wraparound.
type Sum[T int64 | uint64 | float64] struct {
	V          T
	Valid      bool
	Overflowed bool
}

// Get returns the accumulated sum, whether any document contributed, and
// whether the sum saturated.
func (s Sum[T]) Get() (value T, valid bool, overflowed bool) {
	return s.V, s.Valid, s.Overflowed
}

func addSaturating[T int64 | uint64 | float64](a, b T) (T, bool) {
	switch av := any(a).(type) {
	case uint64:
		bv := any(b).(uint64)
		sum := av + bv
		overflow := sum < av
		result := sum
		if overflow {
			result = math.MaxUint64
		}
		return any(result).(T), overflow
	case int64:
		bv := any(b).(int64)
		sum := av + bv
		overflow := (bv > 0 && sum < av) || (bv < 0 && sum > av)
		result := sum
		if overflow {
			if bv > 0 {
				result = math.MaxInt64
			} else {
				result = math.MinInt64
			}
		}
		return any(result).(T), overflow
	default:
		av2 := any(a).(float64)
		bv2 := any(b).(float64)
		sum := av2 + bv2
		overflow := math.IsInf(sum, 0) && !math.IsInf(av2, 0) && !math.IsInf(bv2, 0)
		return any(sum).(T), overflow
	}
}

type sumSingle[T int64 | uint64 | float64] struct {
	field string
	open  openSingle[T]
}

func (d *sumSingle[T]) RequiresScoring() bool { return false }

func (d *sumSingle[T]) Prepare(index.Searcher) (agg.Prepared[Sum[T]], error) {
	return &sumSinglePrepared[T]{field: d.field, open: d.open}, nil
}

type sumSinglePrepared[T int64 | uint64 | float64] struct {
	field string
	open  openSingle[T]
}

func (p *sumSinglePrepared[T]) CreateFruit() Sum[T] { return Sum[T]{} }

func (p *sumSinglePrepared[T]) Merge(dst *Sum[T], src Sum[T]) {
	if !src.Valid {
		return
	}
	if !dst.Valid {
		*dst = src
		return
	}
	sum, overflow := addSaturating(dst.V, src.V)
	dst.V = sum
	dst.Overflowed = dst.Overflowed || src.Overflowed || overflow
}

func (p *sumSinglePrepared[T]) ForSegment(ctx agg.SegmentContext) (agg.Segment[Sum[T]], error) {
	get, err := p.open(ctx.Reader.FastFields())
	if err != nil {
		return nil, &agg.SchemaError{Field: p.field, Want: "single-valued fast field", Err: err}
	}
	return &sumSingleSegment[T]{get: get}, nil
}

type sumSingleSegment[T int64 | uint64 | float64] struct {
	get singleGetter[T]
}

func (s *sumSingleSegment[T]) Collect(doc uint32, _ float64, fruit *Sum[T]) {
	v := s.get(doc)
	if !fruit.Valid {
		fruit.V, fruit.Valid = v, true
		return
	}
	sum, overflow := addSaturating(fruit.V, v)
	fruit.V = sum
	fruit.Overflowed = fruit.Overflowed || overflow
}

type sumMulti[T int64 | uint64 | float64] struct {
	field string
	open  openMulti[T]
}

func (d *sumMulti[T]) RequiresScoring() bool { return false }

func (d *sumMulti[T]) Prepare(index.Searcher) (agg.Prepared[Sum[T]], error) {
	return &sumMultiPrepared[T]{field: d.field, open: d.open}, nil
}

type sumMultiPrepared[T int64 | uint64 | float64] struct {
	field string
	open  openMulti[T]
}

func (p *sumMultiPrepared[T]) CreateFruit() Sum[T] { return Sum[T]{} }

func (p *sumMultiPrepared[T]) Merge(dst *Sum[T], src Sum[T]) {
	if !src.Valid {
		return
	}
	if !dst.Valid {
		*dst = src
		return
	}
	sum, overflow := addSaturating(dst.V, src.V)
	dst.V = sum
	dst.Overflowed = dst.Overflowed || src.Overflowed || overflow
}

func (p *sumMultiPrepared[T]) ForSegment(ctx agg.SegmentContext) (agg.Segment[Sum[T]], error) {
	get, err := p.open(ctx.Reader.FastFields())
	if err != nil {
		return nil, &agg.SchemaError{Field: p.field, Want: "multi-valued fast field", Err: err}
	}
	return &sumMultiSegment[T]{get: get}, nil
}

type sumMultiSegment[T int64 | uint64 | float64] struct {
	get     multiGetter[T]
	scratch []T
}

func (s *sumMultiSegment[T]) Collect(doc uint32, _ float64, fruit *Sum[T]) {
	s.scratch = s.get(doc, s.scratch[:0])
	for _, v := range s.scratch {
		if !fruit.Valid {
			fruit.V, fruit.Valid = v, true
			continue
		}
		sum, overflow := addSaturating(fruit.V, v)
		fruit.V = sum
		fruit.Overflowed = fruit.Overflowed || overflow
	}
}

// SumU64 sums a single-valued uint64 fast field, saturating at
// math.MaxUint64.
func SumU64(field string) agg.Descriptor[Sum[uint64]] {
	return &sumSingle[uint64]{field: field, open: func(r index.FastFieldReaders) (singleGetter[uint64], error) {
		fr, err := r.U64(field)
		if err != nil {
			return nil, err
		}
		return fr.Get, nil
	}}
}

// SumI64 sums a single-valued int64 fast field, saturating at
// math.MaxInt64/math.MinInt64.
func SumI64(field string) agg.Descriptor[Sum[int64]] {
	return &sumSingle[int64]{field: field, open: func(r index.FastFieldReaders) (singleGetter[int64], error) {
		fr, err := r.I64(field)
		if err != nil {
			return nil, err
		}
		return fr.Get, nil
	}}
}

// SumF64 sums a single-valued float64 fast field.
func SumF64(field string) agg.Descriptor[Sum[float64]] {
	return &sumSingle[float64]{field: field, open: func(r index.FastFieldReaders) (singleGetter[float64], error) {
		fr, err := r.F64(field)
		if err != nil {
			return nil, err
		}
		return fr.Get, nil
	}}
}

// SumU64s sums a multi-valued uint64 fast field.
func SumU64s(field string) agg.Descriptor[Sum[uint64]] {
	return &sumMulti[uint64]{field: field, open: func(r index.FastFieldReaders) (multiGetter[uint64], error) {
		fr, err := r.U64s(field)
		if err != nil {
			return nil, err
		}
		return fr.GetInto, nil
	}}
}

// SumI64s sums a multi-valued int64 fast field.
func SumI64s(field string) agg.Descriptor[Sum[int64]] {
	return &sumMulti[int64]{field: field, open: func(r index.FastFieldReaders) (multiGetter[int64], error) {
		fr, err := r.I64s(field)
		if err != nil {
			return nil, err
		}
		return fr.GetInto, nil
	}}
}

// SumF64s sums a multi-valued float64 fast field.
func SumF64s(field string) agg.Descriptor[Sum[float64]] {
	return &sumMulti[float64]{field: field, open: func(r index.FastFieldReaders) (multiGetter[float64], error) {
		fr, err := r.F64s(field)
		if err != nil {
			return nil, err
		}
		return fr.GetInto, nil
	}}
}
