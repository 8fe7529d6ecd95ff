// Package tuple composes 2 to 10 independent aggregator subtrees into one,
// collecting every matched document into all of them and producing a
// struct fruit with one field per subtree. Go has no variadic generics, so
// each arity is a distinct hand-written type — the direct counterpart of
// the source's impl_agg_for_tuple! macro expansion for arities 1 through
// 10.
package tuple

import (
	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/index"
)

// Fruit2 is the fruit shape of a two-way tuple composer.
type Fruit2[F1, F2 any] struct {
	V1 F1
	V2 F2
}

type descriptor2[F1, F2 any] struct {
	d1 agg.Descriptor[F1]
	d2 agg.Descriptor[F2]
}

// Of2 composes two independent aggregator subtrees.
func Of2[F1, F2 any](d1 agg.Descriptor[F1], d2 agg.Descriptor[F2]) agg.Descriptor[Fruit2[F1, F2]] {
	return descriptor2[F1, F2]{d1: d1, d2: d2}
}

func (d descriptor2[F1, F2]) RequiresScoring() bool {
	return d.d1.RequiresScoring() || d.d2.RequiresScoring()
}

func (d descriptor2[F1, F2]) Prepare(s index.Searcher) (agg.Prepared[Fruit2[F1, F2]], error) {
	p1, err := d.d1.Prepare(s)
	if err != nil {
		return nil, err
	}
	p2, err := d.d2.Prepare(s)
	if err != nil {
		return nil, err
	}
	return prepared2[F1, F2]{p1: p1, p2: p2}, nil
}

type prepared2[F1, F2 any] struct {
	p1 agg.Prepared[F1]
	p2 agg.Prepared[F2]
}

func (p prepared2[F1, F2]) CreateFruit() Fruit2[F1, F2] {
	return Fruit2[F1, F2]{V1: p.p1.CreateFruit(), V2: p.p2.CreateFruit()}
}

func (p prepared2[F1, F2]) Merge(dst *Fruit2[F1, F2], src Fruit2[F1, F2]) {
	p.p1.Merge(&dst.V1, src.V1)
	p.p2.Merge(&dst.V2, src.V2)
}

func (p prepared2[F1, F2]) ForSegment(ctx agg.SegmentContext) (agg.Segment[Fruit2[F1, F2]], error) {
	s1, err := p.p1.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s2, err := p.p2.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	return segment2[F1, F2]{s1: s1, s2: s2}, nil
}

type segment2[F1, F2 any] struct {
	s1 agg.Segment[F1]
	s2 agg.Segment[F2]
}

func (s segment2[F1, F2]) Collect(doc uint32, score float64, fruit *Fruit2[F1, F2]) {
	s.s1.Collect(doc, score, &fruit.V1)
	s.s2.Collect(doc, score, &fruit.V2)
}

// Fruit3 is the fruit shape of a three-way tuple composer.
type Fruit3[F1, F2, F3 any] struct {
	V1 F1
	V2 F2
	V3 F3
}

type descriptor3[F1, F2, F3 any] struct {
	d1 agg.Descriptor[F1]
	d2 agg.Descriptor[F2]
	d3 agg.Descriptor[F3]
}

// Of3 composes three independent aggregator subtrees.
func Of3[F1, F2, F3 any](d1 agg.Descriptor[F1], d2 agg.Descriptor[F2], d3 agg.Descriptor[F3]) agg.Descriptor[Fruit3[F1, F2, F3]] {
	return descriptor3[F1, F2, F3]{d1: d1, d2: d2, d3: d3}
}

func (d descriptor3[F1, F2, F3]) RequiresScoring() bool {
	return d.d1.RequiresScoring() || d.d2.RequiresScoring() || d.d3.RequiresScoring()
}

func (d descriptor3[F1, F2, F3]) Prepare(s index.Searcher) (agg.Prepared[Fruit3[F1, F2, F3]], error) {
	p1, err := d.d1.Prepare(s)
	if err != nil {
		return nil, err
	}
	p2, err := d.d2.Prepare(s)
	if err != nil {
		return nil, err
	}
	p3, err := d.d3.Prepare(s)
	if err != nil {
		return nil, err
	}
	return prepared3[F1, F2, F3]{p1: p1, p2: p2, p3: p3}, nil
}

type prepared3[F1, F2, F3 any] struct {
	p1 agg.Prepared[F1]
	p2 agg.Prepared[F2]
	p3 agg.Prepared[F3]
}

func (p prepared3[F1, F2, F3]) CreateFruit() Fruit3[F1, F2, F3] {
	return Fruit3[F1, F2, F3]{V1: p.p1.CreateFruit(), V2: p.p2.CreateFruit(), V3: p.p3.CreateFruit()}
}

func (p prepared3[F1, F2, F3]) Merge(dst *Fruit3[F1, F2, F3], src Fruit3[F1, F2, F3]) {
	p.p1.Merge(&dst.V1, src.V1)
	p.p2.Merge(&dst.V2, src.V2)
	p.p3.Merge(&dst.V3, src.V3)
}

func (p prepared3[F1, F2, F3]) ForSegment(ctx agg.SegmentContext) (agg.Segment[Fruit3[F1, F2, F3]], error) {
	s1, err := p.p1.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s2, err := p.p2.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s3, err := p.p3.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	return segment3[F1, F2, F3]{s1: s1, s2: s2, s3: s3}, nil
}

type segment3[F1, F2, F3 any] struct {
	s1 agg.Segment[F1]
	s2 agg.Segment[F2]
	s3 agg.Segment[F3]
}

func (s segment3[F1, F2, F3]) Collect(doc uint32, score float64, fruit *Fruit3[F1, F2, F3]) {
	s.s1.Collect(doc, score, &fruit.V1)
	s.s2.Collect(doc, score, &fruit.V2)
	s.s3.Collect(doc, score, &fruit.V3)
}
