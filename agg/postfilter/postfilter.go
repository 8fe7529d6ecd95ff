// Package postfilter narrows a sub-aggregator using a predicate evaluated
// directly against a document's column value(s), rather than against a
// compiled Query. It is cheaper than filter.Filter when the condition is a
// simple value comparison, since no Scorer or Weight needs to be opened.
package postfilter

import (
	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/index"
)

// FieldFetcher opens whatever per-segment column readers a predicate
// needs. It mirrors the original's closure-based design for ad-hoc
// multi-column predicates that don't fit one of the typed constructors
// below.
type FieldFetcher[R any] func(reader index.SegmentReader) (R, error)

// Predicate reports whether a document satisfies a post-filter condition
// given its opened column reader(s).
type Predicate[R any] func(r R, doc uint32, score float64) bool

type descriptor[R, F any] struct {
	field string
	fetch FieldFetcher[R]
	pred  Predicate[R]
	sub   agg.Descriptor[F]
}

// PostFilter builds a post-filter composer from an arbitrary field
// fetcher and predicate, for cases the typed single/multi constructors
// below don't cover (e.g. a predicate spanning two columns). fieldName is
// used only to label schema errors.
func PostFilter[R, F any](fieldName string, fetch FieldFetcher[R], pred Predicate[R], sub agg.Descriptor[F]) agg.Descriptor[F] {
	return descriptor[R, F]{field: fieldName, fetch: fetch, pred: pred, sub: sub}
}

func (d descriptor[R, F]) RequiresScoring() bool { return d.sub.RequiresScoring() }

func (d descriptor[R, F]) Prepare(s index.Searcher) (agg.Prepared[F], error) {
	subPrepared, err := d.sub.Prepare(s)
	if err != nil {
		return nil, err
	}
	return prepared[R, F]{field: d.field, fetch: d.fetch, pred: d.pred, sub: subPrepared}, nil
}

type prepared[R, F any] struct {
	field string
	fetch FieldFetcher[R]
	pred  Predicate[R]
	sub   agg.Prepared[F]
}

func (p prepared[R, F]) CreateFruit() F { return p.sub.CreateFruit() }

func (p prepared[R, F]) Merge(dst *F, src F) { p.sub.Merge(dst, src) }

func (p prepared[R, F]) ForSegment(ctx agg.SegmentContext) (agg.Segment[F], error) {
	r, err := p.fetch(ctx.Reader)
	if err != nil {
		return nil, &agg.SchemaError{Field: p.field, Want: "fast field", Err: err}
	}
	sub, err := p.sub.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	return &segment[R, F]{reader: r, pred: p.pred, sub: sub}, nil
}

type segment[R, F any] struct {
	reader R
	pred   Predicate[R]
	sub    agg.Segment[F]
}

func (s *segment[R, F]) Collect(doc uint32, score float64, fruit *F) {
	if s.pred(s.reader, doc, score) {
		s.sub.Collect(doc, score, fruit)
	}
}

// --- typed single/multi-valued constructors ---------------------------

type singleGetter[T any] func(doc uint32) T
type multiGetter[T any] func(doc uint32, scratch []T) []T

func singleDescriptor[T, F any](field string, open func(index.FastFieldReaders) (singleGetter[T], error), pred func(T) bool, sub agg.Descriptor[F]) agg.Descriptor[F] {
	fetch := func(reader index.SegmentReader) (singleGetter[T], error) {
		return open(reader.FastFields())
	}
	wrapped := func(get singleGetter[T], doc uint32, _ float64) bool {
		return pred(get(doc))
	}
	return PostFilter(field, fetch, wrapped, sub)
}

func multiDescriptor[T, F any](field string, open func(index.FastFieldReaders) (multiGetter[T], error), pred func(T) bool, sub agg.Descriptor[F]) agg.Descriptor[F] {
	fetch := func(reader index.SegmentReader) (*multiState[T], error) {
		get, err := open(reader.FastFields())
		if err != nil {
			return nil, err
		}
		return &multiState[T]{get: get}, nil
	}
	// wrapped forwards once per document as soon as any value satisfies
	// pred (at-least-one semantics), matching the source's post-filter
	// multi-valued variant, which returns immediately on the first hit.
	wrapped := func(st *multiState[T], doc uint32, _ float64) bool {
		st.scratch = st.get(doc, st.scratch[:0])
		for _, v := range st.scratch {
			if pred(v) {
				return true
			}
		}
		return false
	}
	return PostFilter(field, fetch, wrapped, sub)
}

type multiState[T any] struct {
	get     multiGetter[T]
	scratch []T
}

// U64 restricts sub to documents whose single-valued uint64 field
// satisfies pred.
func U64[F any](field string, pred func(uint64) bool, sub agg.Descriptor[F]) agg.Descriptor[F] {
	return singleDescriptor[uint64](field, func(r index.FastFieldReaders) (singleGetter[uint64], error) {
		fr, err := r.U64(field)
		if err != nil {
			return nil, err
		}
		return fr.Get, nil
	}, pred, sub)
}

// I64 restricts sub to documents whose single-valued int64 field
// satisfies pred.
func I64[F any](field string, pred func(int64) bool, sub agg.Descriptor[F]) agg.Descriptor[F] {
	return singleDescriptor[int64](field, func(r index.FastFieldReaders) (singleGetter[int64], error) {
		fr, err := r.I64(field)
		if err != nil {
			return nil, err
		}
		return fr.Get, nil
	}, pred, sub)
}

// F64 restricts sub to documents whose single-valued float64 field
// satisfies pred.
func F64[F any](field string, pred func(float64) bool, sub agg.Descriptor[F]) agg.Descriptor[F] {
	return singleDescriptor[float64](field, func(r index.FastFieldReaders) (singleGetter[float64], error) {
		fr, err := r.F64(field)
		if err != nil {
			return nil, err
		}
		return fr.Get, nil
	}, pred, sub)
}

// U64s restricts sub to documents where at least one value of a
// multi-valued uint64 field satisfies pred.
func U64s[F any](field string, pred func(uint64) bool, sub agg.Descriptor[F]) agg.Descriptor[F] {
	return multiDescriptor[uint64](field, func(r index.FastFieldReaders) (multiGetter[uint64], error) {
		fr, err := r.U64s(field)
		if err != nil {
			return nil, err
		}
		return fr.GetInto, nil
	}, pred, sub)
}

// I64s restricts sub to documents where at least one value of a
// multi-valued int64 field satisfies pred.
func I64s[F any](field string, pred func(int64) bool, sub agg.Descriptor[F]) agg.Descriptor[F] {
	return multiDescriptor[int64](field, func(r index.FastFieldReaders) (multiGetter[int64], error) {
		fr, err := r.I64s(field)
		if err != nil {
			return nil, err
		}
		return fr.GetInto, nil
	}, pred, sub)
}

// F64s restricts sub to documents where at least one value of a
// multi-valued float64 field satisfies pred.
func F64s[F any](field string, pred func(float64) bool, sub agg.Descriptor[F]) agg.Descriptor[F] {
	return multiDescriptor[float64](field, func(r index.FastFieldReaders) (multiGetter[float64], error) {
		fr, err := r.F64s(field)
		if err != nil {
			return nil, err
		}
		return fr.GetInto, nil
	}, pred, sub)
}
