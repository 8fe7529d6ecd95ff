// Package terms buckets a sub-aggregator's results by the distinct values
// of a u64 or i64 fast field, single- or multi-valued, with an optional
// restriction to a fixed set of keys (the "filtered" variants).
package terms

import (
	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/index"
	"github.com/tantivygo/aggregations/internal/obsmetrics"
)

type singleGetter[T any] func(doc uint32) T
type multiGetter[T any] func(doc uint32, scratch []T) []T

// descriptor buckets sub by the key(s) open yields for a document. keys
// returns the one or more keys a document contributes to; for a
// single-valued field that's always exactly one key, for a multi-valued
// field it's every value on that document, repeated values included (a
// document with two tag ids contributes to two buckets).
type descriptor[K uint64 | int64, F any] struct {
	field   string
	open    func(index.FastFieldReaders) (keyGetter[K], error)
	allowed map[K]struct{} // nil means unrestricted
	sub     agg.Descriptor[F]
}

// keyGetter yields the keys a document contributes to, one per value.
type keyGetter[K uint64 | int64] func(doc uint32) []K

func new_[K uint64 | int64, F any](field string, open func(index.FastFieldReaders) (keyGetter[K], error), allowed map[K]struct{}, sub agg.Descriptor[F]) agg.Descriptor[Map[K, F]] {
	return descriptor[K, F]{field: field, open: open, allowed: allowed, sub: sub}
}

func (d descriptor[K, F]) RequiresScoring() bool { return d.sub.RequiresScoring() }

func (d descriptor[K, F]) Prepare(s index.Searcher) (agg.Prepared[Map[K, F]], error) {
	subPrepared, err := d.sub.Prepare(s)
	if err != nil {
		return nil, err
	}
	return prepared[K, F]{field: d.field, open: d.open, allowed: d.allowed, sub: subPrepared}, nil
}

type prepared[K uint64 | int64, F any] struct {
	field   string
	open    func(index.FastFieldReaders) (keyGetter[K], error)
	allowed map[K]struct{}
	sub     agg.Prepared[F]
}

func (p prepared[K, F]) CreateFruit() Map[K, F] {
	return Map[K, F]{buckets: map[K]F{}}
}

func (p prepared[K, F]) Merge(dst *Map[K, F], src Map[K, F]) {
	for key, bucket := range src.buckets {
		existing, ok := dst.buckets[key]
		if !ok {
			existing = p.sub.CreateFruit()
		}
		p.sub.Merge(&existing, bucket)
		dst.buckets[key] = existing
	}
	obsmetrics.BucketMapSize.WithLabelValues("terms").Observe(float64(len(dst.buckets)))
}

func (p prepared[K, F]) ForSegment(ctx agg.SegmentContext) (agg.Segment[Map[K, F]], error) {
	get, err := p.open(ctx.Reader.FastFields())
	if err != nil {
		return nil, &agg.SchemaError{Field: p.field, Want: "fast field", Err: err}
	}
	sub, err := p.sub.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	return &segment[K, F]{get: get, allowed: p.allowed, sub: sub, newFruit: p.sub.CreateFruit}, nil
}

type segment[K uint64 | int64, F any] struct {
	get      keyGetter[K]
	allowed  map[K]struct{}
	sub      agg.Segment[F]
	newFruit func() F
}

// Collect routes doc into the bucket for each key it contributes, skipping
// keys outside the allowed set when one was given (the filtered variants).
func (s *segment[K, F]) Collect(doc uint32, score float64, fruit *Map[K, F]) {
	for _, key := range s.get(doc) {
		if s.allowed != nil {
			if _, ok := s.allowed[key]; !ok {
				continue
			}
		}
		bucket, ok := fruit.buckets[key]
		if !ok {
			bucket = s.newFruit()
		}
		s.sub.Collect(doc, score, &bucket)
		fruit.buckets[key] = bucket
	}
}

func single[K uint64 | int64](get singleGetter[K]) keyGetter[K] {
	return func(doc uint32) []K { return []K{get(doc)} }
}

func multi[K uint64 | int64](get multiGetter[K]) keyGetter[K] {
	scratch := make([]K, 0, 8)
	return func(doc uint32) []K {
		scratch = get(doc, scratch[:0])
		return scratch
	}
}

// U64 buckets sub by the values of a single-valued uint64 field.
func U64[F any](field string, sub agg.Descriptor[F]) agg.Descriptor[Map[uint64, F]] {
	return new_[uint64](field, func(r index.FastFieldReaders) (keyGetter[uint64], error) {
		fr, err := r.U64(field)
		if err != nil {
			return nil, err
		}
		return single[uint64](fr.Get), nil
	}, nil, sub)
}

// I64 buckets sub by the values of a single-valued int64 field.
func I64[F any](field string, sub agg.Descriptor[F]) agg.Descriptor[Map[int64, F]] {
	return new_[int64](field, func(r index.FastFieldReaders) (keyGetter[int64], error) {
		fr, err := r.I64(field)
		if err != nil {
			return nil, err
		}
		return single[int64](fr.Get), nil
	}, nil, sub)
}

// U64s buckets sub by every value of a multi-valued uint64 field; a
// document with N values is collected N times, once per value.
func U64s[F any](field string, sub agg.Descriptor[F]) agg.Descriptor[Map[uint64, F]] {
	return new_[uint64](field, func(r index.FastFieldReaders) (keyGetter[uint64], error) {
		fr, err := r.U64s(field)
		if err != nil {
			return nil, err
		}
		return multi[uint64](fr.GetInto), nil
	}, nil, sub)
}

// I64s buckets sub by every value of a multi-valued int64 field.
func I64s[F any](field string, sub agg.Descriptor[F]) agg.Descriptor[Map[int64, F]] {
	return new_[int64](field, func(r index.FastFieldReaders) (keyGetter[int64], error) {
		fr, err := r.I64s(field)
		if err != nil {
			return nil, err
		}
		return multi[int64](fr.GetInto), nil
	}, nil, sub)
}

func toSet[K uint64 | int64](keys []K) map[K]struct{} {
	set := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// FilteredU64 restricts U64 to only the given keys; documents whose value
// falls outside keys don't open a bucket at all.
func FilteredU64[F any](field string, keys []uint64, sub agg.Descriptor[F]) agg.Descriptor[Map[uint64, F]] {
	return new_[uint64](field, func(r index.FastFieldReaders) (keyGetter[uint64], error) {
		fr, err := r.U64(field)
		if err != nil {
			return nil, err
		}
		return single[uint64](fr.Get), nil
	}, toSet(keys), sub)
}

// FilteredI64 restricts I64 to only the given keys.
func FilteredI64[F any](field string, keys []int64, sub agg.Descriptor[F]) agg.Descriptor[Map[int64, F]] {
	return new_[int64](field, func(r index.FastFieldReaders) (keyGetter[int64], error) {
		fr, err := r.I64(field)
		if err != nil {
			return nil, err
		}
		return single[int64](fr.Get), nil
	}, toSet(keys), sub)
}

// FilteredU64s restricts U64s to only the given keys.
func FilteredU64s[F any](field string, keys []uint64, sub agg.Descriptor[F]) agg.Descriptor[Map[uint64, F]] {
	return new_[uint64](field, func(r index.FastFieldReaders) (keyGetter[uint64], error) {
		fr, err := r.U64s(field)
		if err != nil {
			return nil, err
		}
		return multi[uint64](fr.GetInto), nil
	}, toSet(keys), sub)
}

// FilteredI64s restricts I64s to only the given keys.
func FilteredI64s[F any](field string, keys []int64, sub agg.Descriptor[F]) agg.Descriptor[Map[int64, F]] {
	return new_[int64](field, func(r index.FastFieldReaders) (keyGetter[int64], error) {
		fr, err := r.I64s(field)
		if err != nil {
			return nil, err
		}
		return multi[int64](fr.GetInto), nil
	}, toSet(keys), sub)
}
