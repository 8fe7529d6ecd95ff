package tuple

import (
	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/index"
)

// Fruit4 is the fruit shape of a 4-way tuple composer.
type Fruit4[F1, F2, F3, F4 any] struct {
	V1 F1
	V2 F2
	V3 F3
	V4 F4
}

type descriptor4[F1, F2, F3, F4 any] struct {
	d1 agg.Descriptor[F1]
	d2 agg.Descriptor[F2]
	d3 agg.Descriptor[F3]
	d4 agg.Descriptor[F4]
}

// Of4 composes 4 independent aggregator subtrees.
func Of4[F1, F2, F3, F4 any](d1 agg.Descriptor[F1], d2 agg.Descriptor[F2], d3 agg.Descriptor[F3], d4 agg.Descriptor[F4]) agg.Descriptor[Fruit4[F1, F2, F3, F4]] {
	return descriptor4[F1, F2, F3, F4]{d1: d1, d2: d2, d3: d3, d4: d4}
}

func (d descriptor4[F1, F2, F3, F4]) RequiresScoring() bool {
	return d.d1.RequiresScoring() || d.d2.RequiresScoring() || d.d3.RequiresScoring() || d.d4.RequiresScoring()
}

func (d descriptor4[F1, F2, F3, F4]) Prepare(s index.Searcher) (agg.Prepared[Fruit4[F1, F2, F3, F4]], error) {
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
	p4, err := d.d4.Prepare(s)
	if err != nil {
		return nil, err
	}
	return prepared4[F1, F2, F3, F4]{p1: p1, p2: p2, p3: p3, p4: p4}, nil
}

type prepared4[F1, F2, F3, F4 any] struct {
	p1 agg.Prepared[F1]
	p2 agg.Prepared[F2]
	p3 agg.Prepared[F3]
	p4 agg.Prepared[F4]
}

func (p prepared4[F1, F2, F3, F4]) CreateFruit() Fruit4[F1, F2, F3, F4] {
	return Fruit4[F1, F2, F3, F4]{V1: p.p1.CreateFruit(), V2: p.p2.CreateFruit(), V3: p.p3.CreateFruit(), V4: p.p4.CreateFruit()}
}

func (p prepared4[F1, F2, F3, F4]) Merge(dst *Fruit4[F1, F2, F3, F4], src Fruit4[F1, F2, F3, F4]) {
	p.p1.Merge(&dst.V1, src.V1)
	p.p2.Merge(&dst.V2, src.V2)
	p.p3.Merge(&dst.V3, src.V3)
	p.p4.Merge(&dst.V4, src.V4)
}

func (p prepared4[F1, F2, F3, F4]) ForSegment(ctx agg.SegmentContext) (agg.Segment[Fruit4[F1, F2, F3, F4]], error) {
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
	s4, err := p.p4.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	return segment4[F1, F2, F3, F4]{s1: s1, s2: s2, s3: s3, s4: s4}, nil
}

type segment4[F1, F2, F3, F4 any] struct {
	s1 agg.Segment[F1]
	s2 agg.Segment[F2]
	s3 agg.Segment[F3]
	s4 agg.Segment[F4]
}

func (s segment4[F1, F2, F3, F4]) Collect(doc uint32, score float64, fruit *Fruit4[F1, F2, F3, F4]) {
	s.s1.Collect(doc, score, &fruit.V1)
	s.s2.Collect(doc, score, &fruit.V2)
	s.s3.Collect(doc, score, &fruit.V3)
	s.s4.Collect(doc, score, &fruit.V4)
}

// Fruit5 is the fruit shape of a 5-way tuple composer.
type Fruit5[F1, F2, F3, F4, F5 any] struct {
	V1 F1
	V2 F2
	V3 F3
	V4 F4
	V5 F5
}

type descriptor5[F1, F2, F3, F4, F5 any] struct {
	d1 agg.Descriptor[F1]
	d2 agg.Descriptor[F2]
	d3 agg.Descriptor[F3]
	d4 agg.Descriptor[F4]
	d5 agg.Descriptor[F5]
}

// Of5 composes 5 independent aggregator subtrees.
func Of5[F1, F2, F3, F4, F5 any](d1 agg.Descriptor[F1], d2 agg.Descriptor[F2], d3 agg.Descriptor[F3], d4 agg.Descriptor[F4], d5 agg.Descriptor[F5]) agg.Descriptor[Fruit5[F1, F2, F3, F4, F5]] {
	return descriptor5[F1, F2, F3, F4, F5]{d1: d1, d2: d2, d3: d3, d4: d4, d5: d5}
}

func (d descriptor5[F1, F2, F3, F4, F5]) RequiresScoring() bool {
	return d.d1.RequiresScoring() || d.d2.RequiresScoring() || d.d3.RequiresScoring() || d.d4.RequiresScoring() || d.d5.RequiresScoring()
}

func (d descriptor5[F1, F2, F3, F4, F5]) Prepare(s index.Searcher) (agg.Prepared[Fruit5[F1, F2, F3, F4, F5]], error) {
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
	p4, err := d.d4.Prepare(s)
	if err != nil {
		return nil, err
	}
	p5, err := d.d5.Prepare(s)
	if err != nil {
		return nil, err
	}
	return prepared5[F1, F2, F3, F4, F5]{p1: p1, p2: p2, p3: p3, p4: p4, p5: p5}, nil
}

type prepared5[F1, F2, F3, F4, F5 any] struct {
	p1 agg.Prepared[F1]
	p2 agg.Prepared[F2]
	p3 agg.Prepared[F3]
	p4 agg.Prepared[F4]
	p5 agg.Prepared[F5]
}

func (p prepared5[F1, F2, F3, F4, F5]) CreateFruit() Fruit5[F1, F2, F3, F4, F5] {
	return Fruit5[F1, F2, F3, F4, F5]{V1: p.p1.CreateFruit(), V2: p.p2.CreateFruit(), V3: p.p3.CreateFruit(), V4: p.p4.CreateFruit(), V5: p.p5.CreateFruit()}
}

func (p prepared5[F1, F2, F3, F4, F5]) Merge(dst *Fruit5[F1, F2, F3, F4, F5], src Fruit5[F1, F2, F3, F4, F5]) {
	p.p1.Merge(&dst.V1, src.V1)
	p.p2.Merge(&dst.V2, src.V2)
	p.p3.Merge(&dst.V3, src.V3)
	p.p4.Merge(&dst.V4, src.V4)
	p.p5.Merge(&dst.V5, src.V5)
}

func (p prepared5[F1, F2, F3, F4, F5]) ForSegment(ctx agg.SegmentContext) (agg.Segment[Fruit5[F1, F2, F3, F4, F5]], error) {
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
	s4, err := p.p4.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s5, err := p.p5.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	return segment5[F1, F2, F3, F4, F5]{s1: s1, s2: s2, s3: s3, s4: s4, s5: s5}, nil
}

type segment5[F1, F2, F3, F4, F5 any] struct {
	s1 agg.Segment[F1]
	s2 agg.Segment[F2]
	s3 agg.Segment[F3]
	s4 agg.Segment[F4]
	s5 agg.Segment[F5]
}

func (s segment5[F1, F2, F3, F4, F5]) Collect(doc uint32, score float64, fruit *Fruit5[F1, F2, F3, F4, F5]) {
	s.s1.Collect(doc, score, &fruit.V1)
	s.s2.Collect(doc, score, &fruit.V2)
	s.s3.Collect(doc, score, &fruit.V3)
	s.s4.Collect(doc, score, &fruit.V4)
	s.s5.Collect(doc, score, &fruit.V5)
}

// Fruit6 is the fruit shape of a 6-way tuple composer.
type Fruit6[F1, F2, F3, F4, F5, F6 any] struct {
	V1 F1
	V2 F2
	V3 F3
	V4 F4
	V5 F5
	V6 F6
}

type descriptor6[F1, F2, F3, F4, F5, F6 any] struct {
	d1 agg.Descriptor[F1]
	d2 agg.Descriptor[F2]
	d3 agg.Descriptor[F3]
	d4 agg.Descriptor[F4]
	d5 agg.Descriptor[F5]
	d6 agg.Descriptor[F6]
}

// Of6 composes 6 independent aggregator subtrees.
func Of6[F1, F2, F3, F4, F5, F6 any](d1 agg.Descriptor[F1], d2 agg.Descriptor[F2], d3 agg.Descriptor[F3], d4 agg.Descriptor[F4], d5 agg.Descriptor[F5], d6 agg.Descriptor[F6]) agg.Descriptor[Fruit6[F1, F2, F3, F4, F5, F6]] {
	return descriptor6[F1, F2, F3, F4, F5, F6]{d1: d1, d2: d2, d3: d3, d4: d4, d5: d5, d6: d6}
}

func (d descriptor6[F1, F2, F3, F4, F5, F6]) RequiresScoring() bool {
	return d.d1.RequiresScoring() || d.d2.RequiresScoring() || d.d3.RequiresScoring() || d.d4.RequiresScoring() || d.d5.RequiresScoring() || d.d6.RequiresScoring()
}

func (d descriptor6[F1, F2, F3, F4, F5, F6]) Prepare(s index.Searcher) (agg.Prepared[Fruit6[F1, F2, F3, F4, F5, F6]], error) {
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
	p4, err := d.d4.Prepare(s)
	if err != nil {
		return nil, err
	}
	p5, err := d.d5.Prepare(s)
	if err != nil {
		return nil, err
	}
	p6, err := d.d6.Prepare(s)
	if err != nil {
		return nil, err
	}
	return prepared6[F1, F2, F3, F4, F5, F6]{p1: p1, p2: p2, p3: p3, p4: p4, p5: p5, p6: p6}, nil
}

type prepared6[F1, F2, F3, F4, F5, F6 any] struct {
	p1 agg.Prepared[F1]
	p2 agg.Prepared[F2]
	p3 agg.Prepared[F3]
	p4 agg.Prepared[F4]
	p5 agg.Prepared[F5]
	p6 agg.Prepared[F6]
}

func (p prepared6[F1, F2, F3, F4, F5, F6]) CreateFruit() Fruit6[F1, F2, F3, F4, F5, F6] {
	return Fruit6[F1, F2, F3, F4, F5, F6]{V1: p.p1.CreateFruit(), V2: p.p2.CreateFruit(), V3: p.p3.CreateFruit(), V4: p.p4.CreateFruit(), V5: p.p5.CreateFruit(), V6: p.p6.CreateFruit()}
}

func (p prepared6[F1, F2, F3, F4, F5, F6]) Merge(dst *Fruit6[F1, F2, F3, F4, F5, F6], src Fruit6[F1, F2, F3, F4, F5, F6]) {
	p.p1.Merge(&dst.V1, src.V1)
	p.p2.Merge(&dst.V2, src.V2)
	p.p3.Merge(&dst.V3, src.V3)
	p.p4.Merge(&dst.V4, src.V4)
	p.p5.Merge(&dst.V5, src.V5)
	p.p6.Merge(&dst.V6, src.V6)
}

func (p prepared6[F1, F2, F3, F4, F5, F6]) ForSegment(ctx agg.SegmentContext) (agg.Segment[Fruit6[F1, F2, F3, F4, F5, F6]], error) {
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
	s4, err := p.p4.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s5, err := p.p5.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s6, err := p.p6.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	return segment6[F1, F2, F3, F4, F5, F6]{s1: s1, s2: s2, s3: s3, s4: s4, s5: s5, s6: s6}, nil
}

type segment6[F1, F2, F3, F4, F5, F6 any] struct {
	s1 agg.Segment[F1]
	s2 agg.Segment[F2]
	s3 agg.Segment[F3]
	s4 agg.Segment[F4]
	s5 agg.Segment[F5]
	s6 agg.Segment[F6]
}

func (s segment6[F1, F2, F3, F4, F5, F6]) Collect(doc uint32, score float64, fruit *Fruit6[F1, F2, F3, F4, F5, F6]) {
	s.s1.Collect(doc, score, &fruit.V1)
	s.s2.Collect(doc, score, &fruit.V2)
	s.s3.Collect(doc, score, &fruit.V3)
	s.s4.Collect(doc, score, &fruit.V4)
	s.s5.Collect(doc, score, &fruit.V5)
	s.s6.Collect(doc, score, &fruit.V6)
}

// Fruit7 is the fruit shape of a 7-way tuple composer.
type Fruit7[F1, F2, F3, F4, F5, F6, F7 any] struct {
	V1 F1
	V2 F2
	V3 F3
	V4 F4
	V5 F5
	V6 F6
	V7 F7
}

type descriptor7[F1, F2, F3, F4, F5, F6, F7 any] struct {
	d1 agg.Descriptor[F1]
	d2 agg.Descriptor[F2]
	d3 agg.Descriptor[F3]
	d4 agg.Descriptor[F4]
	d5 agg.Descriptor[F5]
	d6 agg.Descriptor[F6]
	d7 agg.Descriptor[F7]
}

// Of7 composes 7 independent aggregator subtrees.
func Of7[F1, F2, F3, F4, F5, F6, F7 any](d1 agg.Descriptor[F1], d2 agg.Descriptor[F2], d3 agg.Descriptor[F3], d4 agg.Descriptor[F4], d5 agg.Descriptor[F5], d6 agg.Descriptor[F6], d7 agg.Descriptor[F7]) agg.Descriptor[Fruit7[F1, F2, F3, F4, F5, F6, F7]] {
	return descriptor7[F1, F2, F3, F4, F5, F6, F7]{d1: d1, d2: d2, d3: d3, d4: d4, d5: d5, d6: d6, d7: d7}
}

func (d descriptor7[F1, F2, F3, F4, F5, F6, F7]) RequiresScoring() bool {
	return d.d1.RequiresScoring() || d.d2.RequiresScoring() || d.d3.RequiresScoring() || d.d4.RequiresScoring() || d.d5.RequiresScoring() || d.d6.RequiresScoring() || d.d7.RequiresScoring()
}

func (d descriptor7[F1, F2, F3, F4, F5, F6, F7]) Prepare(s index.Searcher) (agg.Prepared[Fruit7[F1, F2, F3, F4, F5, F6, F7]], error) {
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
	p4, err := d.d4.Prepare(s)
	if err != nil {
		return nil, err
	}
	p5, err := d.d5.Prepare(s)
	if err != nil {
		return nil, err
	}
	p6, err := d.d6.Prepare(s)
	if err != nil {
		return nil, err
	}
	p7, err := d.d7.Prepare(s)
	if err != nil {
		return nil, err
	}
	return prepared7[F1, F2, F3, F4, F5, F6, F7]{p1: p1, p2: p2, p3: p3, p4: p4, p5: p5, p6: p6, p7: p7}, nil
}

type prepared7[F1, F2, F3, F4, F5, F6, F7 any] struct {
	p1 agg.Prepared[F1]
	p2 agg.Prepared[F2]
	p3 agg.Prepared[F3]
	p4 agg.Prepared[F4]
	p5 agg.Prepared[F5]
	p6 agg.Prepared[F6]
	p7 agg.Prepared[F7]
}

func (p prepared7[F1, F2, F3, F4, F5, F6, F7]) CreateFruit() Fruit7[F1, F2, F3, F4, F5, F6, F7] {
	return Fruit7[F1, F2, F3, F4, F5, F6, F7]{V1: p.p1.CreateFruit(), V2: p.p2.CreateFruit(), V3: p.p3.CreateFruit(), V4: p.p4.CreateFruit(), V5: p.p5.CreateFruit(), V6: p.p6.CreateFruit(), V7: p.p7.CreateFruit()}
}

func (p prepared7[F1, F2, F3, F4, F5, F6, F7]) Merge(dst *Fruit7[F1, F2, F3, F4, F5, F6, F7], src Fruit7[F1, F2, F3, F4, F5, F6, F7]) {
	p.p1.Merge(&dst.V1, src.V1)
	p.p2.Merge(&dst.V2, src.V2)
	p.p3.Merge(&dst.V3, src.V3)
	p.p4.Merge(&dst.V4, src.V4)
	p.p5.Merge(&dst.V5, src.V5)
	p.p6.Merge(&dst.V6, src.V6)
	p.p7.Merge(&dst.V7, src.V7)
}

func (p prepared7[F1, F2, F3, F4, F5, F6, F7]) ForSegment(ctx agg.SegmentContext) (agg.Segment[Fruit7[F1, F2, F3, F4, F5, F6, F7]], error) {
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
	s4, err := p.p4.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s5, err := p.p5.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s6, err := p.p6.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s7, err := p.p7.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	return segment7[F1, F2, F3, F4, F5, F6, F7]{s1: s1, s2: s2, s3: s3, s4: s4, s5: s5, s6: s6, s7: s7}, nil
}

type segment7[F1, F2, F3, F4, F5, F6, F7 any] struct {
	s1 agg.Segment[F1]
	s2 agg.Segment[F2]
	s3 agg.Segment[F3]
	s4 agg.Segment[F4]
	s5 agg.Segment[F5]
	s6 agg.Segment[F6]
	s7 agg.Segment[F7]
}

func (s segment7[F1, F2, F3, F4, F5, F6, F7]) Collect(doc uint32, score float64, fruit *Fruit7[F1, F2, F3, F4, F5, F6, F7]) {
	s.s1.Collect(doc, score, &fruit.V1)
	s.s2.Collect(doc, score, &fruit.V2)
	s.s3.Collect(doc, score, &fruit.V3)
	s.s4.Collect(doc, score, &fruit.V4)
	s.s5.Collect(doc, score, &fruit.V5)
	s.s6.Collect(doc, score, &fruit.V6)
	s.s7.Collect(doc, score, &fruit.V7)
}

// Fruit8 is the fruit shape of a 8-way tuple composer.
type Fruit8[F1, F2, F3, F4, F5, F6, F7, F8 any] struct {
	V1 F1
	V2 F2
	V3 F3
	V4 F4
	V5 F5
	V6 F6
	V7 F7
	V8 F8
}

type descriptor8[F1, F2, F3, F4, F5, F6, F7, F8 any] struct {
	d1 agg.Descriptor[F1]
	d2 agg.Descriptor[F2]
	d3 agg.Descriptor[F3]
	d4 agg.Descriptor[F4]
	d5 agg.Descriptor[F5]
	d6 agg.Descriptor[F6]
	d7 agg.Descriptor[F7]
	d8 agg.Descriptor[F8]
}

// Of8 composes 8 independent aggregator subtrees.
func Of8[F1, F2, F3, F4, F5, F6, F7, F8 any](d1 agg.Descriptor[F1], d2 agg.Descriptor[F2], d3 agg.Descriptor[F3], d4 agg.Descriptor[F4], d5 agg.Descriptor[F5], d6 agg.Descriptor[F6], d7 agg.Descriptor[F7], d8 agg.Descriptor[F8]) agg.Descriptor[Fruit8[F1, F2, F3, F4, F5, F6, F7, F8]] {
	return descriptor8[F1, F2, F3, F4, F5, F6, F7, F8]{d1: d1, d2: d2, d3: d3, d4: d4, d5: d5, d6: d6, d7: d7, d8: d8}
}

func (d descriptor8[F1, F2, F3, F4, F5, F6, F7, F8]) RequiresScoring() bool {
	return d.d1.RequiresScoring() || d.d2.RequiresScoring() || d.d3.RequiresScoring() || d.d4.RequiresScoring() || d.d5.RequiresScoring() || d.d6.RequiresScoring() || d.d7.RequiresScoring() || d.d8.RequiresScoring()
}

func (d descriptor8[F1, F2, F3, F4, F5, F6, F7, F8]) Prepare(s index.Searcher) (agg.Prepared[Fruit8[F1, F2, F3, F4, F5, F6, F7, F8]], error) {
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
	p4, err := d.d4.Prepare(s)
	if err != nil {
		return nil, err
	}
	p5, err := d.d5.Prepare(s)
	if err != nil {
		return nil, err
	}
	p6, err := d.d6.Prepare(s)
	if err != nil {
		return nil, err
	}
	p7, err := d.d7.Prepare(s)
	if err != nil {
		return nil, err
	}
	p8, err := d.d8.Prepare(s)
	if err != nil {
		return nil, err
	}
	return prepared8[F1, F2, F3, F4, F5, F6, F7, F8]{p1: p1, p2: p2, p3: p3, p4: p4, p5: p5, p6: p6, p7: p7, p8: p8}, nil
}

type prepared8[F1, F2, F3, F4, F5, F6, F7, F8 any] struct {
	p1 agg.Prepared[F1]
	p2 agg.Prepared[F2]
	p3 agg.Prepared[F3]
	p4 agg.Prepared[F4]
	p5 agg.Prepared[F5]
	p6 agg.Prepared[F6]
	p7 agg.Prepared[F7]
	p8 agg.Prepared[F8]
}

func (p prepared8[F1, F2, F3, F4, F5, F6, F7, F8]) CreateFruit() Fruit8[F1, F2, F3, F4, F5, F6, F7, F8] {
	return Fruit8[F1, F2, F3, F4, F5, F6, F7, F8]{V1: p.p1.CreateFruit(), V2: p.p2.CreateFruit(), V3: p.p3.CreateFruit(), V4: p.p4.CreateFruit(), V5: p.p5.CreateFruit(), V6: p.p6.CreateFruit(), V7: p.p7.CreateFruit(), V8: p.p8.CreateFruit()}
}

func (p prepared8[F1, F2, F3, F4, F5, F6, F7, F8]) Merge(dst *Fruit8[F1, F2, F3, F4, F5, F6, F7, F8], src Fruit8[F1, F2, F3, F4, F5, F6, F7, F8]) {
	p.p1.Merge(&dst.V1, src.V1)
	p.p2.Merge(&dst.V2, src.V2)
	p.p3.Merge(&dst.V3, src.V3)
	p.p4.Merge(&dst.V4, src.V4)
	p.p5.Merge(&dst.V5, src.V5)
	p.p6.Merge(&dst.V6, src.V6)
	p.p7.Merge(&dst.V7, src.V7)
	p.p8.Merge(&dst.V8, src.V8)
}

func (p prepared8[F1, F2, F3, F4, F5, F6, F7, F8]) ForSegment(ctx agg.SegmentContext) (agg.Segment[Fruit8[F1, F2, F3, F4, F5, F6, F7, F8]], error) {
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
	s4, err := p.p4.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s5, err := p.p5.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s6, err := p.p6.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s7, err := p.p7.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s8, err := p.p8.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	return segment8[F1, F2, F3, F4, F5, F6, F7, F8]{s1: s1, s2: s2, s3: s3, s4: s4, s5: s5, s6: s6, s7: s7, s8: s8}, nil
}

type segment8[F1, F2, F3, F4, F5, F6, F7, F8 any] struct {
	s1 agg.Segment[F1]
	s2 agg.Segment[F2]
	s3 agg.Segment[F3]
	s4 agg.Segment[F4]
	s5 agg.Segment[F5]
	s6 agg.Segment[F6]
	s7 agg.Segment[F7]
	s8 agg.Segment[F8]
}

func (s segment8[F1, F2, F3, F4, F5, F6, F7, F8]) Collect(doc uint32, score float64, fruit *Fruit8[F1, F2, F3, F4, F5, F6, F7, F8]) {
	s.s1.Collect(doc, score, &fruit.V1)
	s.s2.Collect(doc, score, &fruit.V2)
	s.s3.Collect(doc, score, &fruit.V3)
	s.s4.Collect(doc, score, &fruit.V4)
	s.s5.Collect(doc, score, &fruit.V5)
	s.s6.Collect(doc, score, &fruit.V6)
	s.s7.Collect(doc, score, &fruit.V7)
	s.s8.Collect(doc, score, &fruit.V8)
}

// Fruit9 is the fruit shape of a 9-way tuple composer.
type Fruit9[F1, F2, F3, F4, F5, F6, F7, F8, F9 any] struct {
	V1 F1
	V2 F2
	V3 F3
	V4 F4
	V5 F5
	V6 F6
	V7 F7
	V8 F8
	V9 F9
}

type descriptor9[F1, F2, F3, F4, F5, F6, F7, F8, F9 any] struct {
	d1 agg.Descriptor[F1]
	d2 agg.Descriptor[F2]
	d3 agg.Descriptor[F3]
	d4 agg.Descriptor[F4]
	d5 agg.Descriptor[F5]
	d6 agg.Descriptor[F6]
	d7 agg.Descriptor[F7]
	d8 agg.Descriptor[F8]
	d9 agg.Descriptor[F9]
}

// Of9 composes 9 independent aggregator subtrees.
func Of9[F1, F2, F3, F4, F5, F6, F7, F8, F9 any](d1 agg.Descriptor[F1], d2 agg.Descriptor[F2], d3 agg.Descriptor[F3], d4 agg.Descriptor[F4], d5 agg.Descriptor[F5], d6 agg.Descriptor[F6], d7 agg.Descriptor[F7], d8 agg.Descriptor[F8], d9 agg.Descriptor[F9]) agg.Descriptor[Fruit9[F1, F2, F3, F4, F5, F6, F7, F8, F9]] {
	return descriptor9[F1, F2, F3, F4, F5, F6, F7, F8, F9]{d1: d1, d2: d2, d3: d3, d4: d4, d5: d5, d6: d6, d7: d7, d8: d8, d9: d9}
}

func (d descriptor9[F1, F2, F3, F4, F5, F6, F7, F8, F9]) RequiresScoring() bool {
	return d.d1.RequiresScoring() || d.d2.RequiresScoring() || d.d3.RequiresScoring() || d.d4.RequiresScoring() || d.d5.RequiresScoring() || d.d6.RequiresScoring() || d.d7.RequiresScoring() || d.d8.RequiresScoring() || d.d9.RequiresScoring()
}

func (d descriptor9[F1, F2, F3, F4, F5, F6, F7, F8, F9]) Prepare(s index.Searcher) (agg.Prepared[Fruit9[F1, F2, F3, F4, F5, F6, F7, F8, F9]], error) {
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
	p4, err := d.d4.Prepare(s)
	if err != nil {
		return nil, err
	}
	p5, err := d.d5.Prepare(s)
	if err != nil {
		return nil, err
	}
	p6, err := d.d6.Prepare(s)
	if err != nil {
		return nil, err
	}
	p7, err := d.d7.Prepare(s)
	if err != nil {
		return nil, err
	}
	p8, err := d.d8.Prepare(s)
	if err != nil {
		return nil, err
	}
	p9, err := d.d9.Prepare(s)
	if err != nil {
		return nil, err
	}
	return prepared9[F1, F2, F3, F4, F5, F6, F7, F8, F9]{p1: p1, p2: p2, p3: p3, p4: p4, p5: p5, p6: p6, p7: p7, p8: p8, p9: p9}, nil
}

type prepared9[F1, F2, F3, F4, F5, F6, F7, F8, F9 any] struct {
	p1 agg.Prepared[F1]
	p2 agg.Prepared[F2]
	p3 agg.Prepared[F3]
	p4 agg.Prepared[F4]
	p5 agg.Prepared[F5]
	p6 agg.Prepared[F6]
	p7 agg.Prepared[F7]
	p8 agg.Prepared[F8]
	p9 agg.Prepared[F9]
}

func (p prepared9[F1, F2, F3, F4, F5, F6, F7, F8, F9]) CreateFruit() Fruit9[F1, F2, F3, F4, F5, F6, F7, F8, F9] {
	return Fruit9[F1, F2, F3, F4, F5, F6, F7, F8, F9]{V1: p.p1.CreateFruit(), V2: p.p2.CreateFruit(), V3: p.p3.CreateFruit(), V4: p.p4.CreateFruit(), V5: p.p5.CreateFruit(), V6: p.p6.CreateFruit(), V7: p.p7.CreateFruit(), V8: p.p8.CreateFruit(), V9: p.p9.CreateFruit()}
}

func (p prepared9[F1, F2, F3, F4, F5, F6, F7, F8, F9]) Merge(dst *Fruit9[F1, F2, F3, F4, F5, F6, F7, F8, F9], src Fruit9[F1, F2, F3, F4, F5, F6, F7, F8, F9]) {
	p.p1.Merge(&dst.V1, src.V1)
	p.p2.Merge(&dst.V2, src.V2)
	p.p3.Merge(&dst.V3, src.V3)
	p.p4.Merge(&dst.V4, src.V4)
	p.p5.Merge(&dst.V5, src.V5)
	p.p6.Merge(&dst.V6, src.V6)
	p.p7.Merge(&dst.V7, src.V7)
	p.p8.Merge(&dst.V8, src.V8)
	p.p9.Merge(&dst.V9, src.V9)
}

func (p prepared9[F1, F2, F3, F4, F5, F6, F7, F8, F9]) ForSegment(ctx agg.SegmentContext) (agg.Segment[Fruit9[F1, F2, F3, F4, F5, F6, F7, F8, F9]], error) {
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
	s4, err := p.p4.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s5, err := p.p5.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s6, err := p.p6.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s7, err := p.p7.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s8, err := p.p8.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s9, err := p.p9.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	return segment9[F1, F2, F3, F4, F5, F6, F7, F8, F9]{s1: s1, s2: s2, s3: s3, s4: s4, s5: s5, s6: s6, s7: s7, s8: s8, s9: s9}, nil
}

type segment9[F1, F2, F3, F4, F5, F6, F7, F8, F9 any] struct {
	s1 agg.Segment[F1]
	s2 agg.Segment[F2]
	s3 agg.Segment[F3]
	s4 agg.Segment[F4]
	s5 agg.Segment[F5]
	s6 agg.Segment[F6]
	s7 agg.Segment[F7]
	s8 agg.Segment[F8]
	s9 agg.Segment[F9]
}

func (s segment9[F1, F2, F3, F4, F5, F6, F7, F8, F9]) Collect(doc uint32, score float64, fruit *Fruit9[F1, F2, F3, F4, F5, F6, F7, F8, F9]) {
	s.s1.Collect(doc, score, &fruit.V1)
	s.s2.Collect(doc, score, &fruit.V2)
	s.s3.Collect(doc, score, &fruit.V3)
	s.s4.Collect(doc, score, &fruit.V4)
	s.s5.Collect(doc, score, &fruit.V5)
	s.s6.Collect(doc, score, &fruit.V6)
	s.s7.Collect(doc, score, &fruit.V7)
	s.s8.Collect(doc, score, &fruit.V8)
	s.s9.Collect(doc, score, &fruit.V9)
}

// Fruit10 is the fruit shape of a 10-way tuple composer.
type Fruit10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10 any] struct {
	V1 F1
	V2 F2
	V3 F3
	V4 F4
	V5 F5
	V6 F6
	V7 F7
	V8 F8
	V9 F9
	V10 F10
}

type descriptor10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10 any] struct {
	d1 agg.Descriptor[F1]
	d2 agg.Descriptor[F2]
	d3 agg.Descriptor[F3]
	d4 agg.Descriptor[F4]
	d5 agg.Descriptor[F5]
	d6 agg.Descriptor[F6]
	d7 agg.Descriptor[F7]
	d8 agg.Descriptor[F8]
	d9 agg.Descriptor[F9]
	d10 agg.Descriptor[F10]
}

// Of10 composes 10 independent aggregator subtrees.
func Of10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10 any](d1 agg.Descriptor[F1], d2 agg.Descriptor[F2], d3 agg.Descriptor[F3], d4 agg.Descriptor[F4], d5 agg.Descriptor[F5], d6 agg.Descriptor[F6], d7 agg.Descriptor[F7], d8 agg.Descriptor[F8], d9 agg.Descriptor[F9], d10 agg.Descriptor[F10]) agg.Descriptor[Fruit10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10]] {
	return descriptor10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10]{d1: d1, d2: d2, d3: d3, d4: d4, d5: d5, d6: d6, d7: d7, d8: d8, d9: d9, d10: d10}
}

func (d descriptor10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10]) RequiresScoring() bool {
	return d.d1.RequiresScoring() || d.d2.RequiresScoring() || d.d3.RequiresScoring() || d.d4.RequiresScoring() || d.d5.RequiresScoring() || d.d6.RequiresScoring() || d.d7.RequiresScoring() || d.d8.RequiresScoring() || d.d9.RequiresScoring() || d.d10.RequiresScoring()
}

func (d descriptor10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10]) Prepare(s index.Searcher) (agg.Prepared[Fruit10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10]], error) {
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
	p4, err := d.d4.Prepare(s)
	if err != nil {
		return nil, err
	}
	p5, err := d.d5.Prepare(s)
	if err != nil {
		return nil, err
	}
	p6, err := d.d6.Prepare(s)
	if err != nil {
		return nil, err
	}
	p7, err := d.d7.Prepare(s)
	if err != nil {
		return nil, err
	}
	p8, err := d.d8.Prepare(s)
	if err != nil {
		return nil, err
	}
	p9, err := d.d9.Prepare(s)
	if err != nil {
		return nil, err
	}
	p10, err := d.d10.Prepare(s)
	if err != nil {
		return nil, err
	}
	return prepared10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10]{p1: p1, p2: p2, p3: p3, p4: p4, p5: p5, p6: p6, p7: p7, p8: p8, p9: p9, p10: p10}, nil
}

type prepared10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10 any] struct {
	p1 agg.Prepared[F1]
	p2 agg.Prepared[F2]
	p3 agg.Prepared[F3]
	p4 agg.Prepared[F4]
	p5 agg.Prepared[F5]
	p6 agg.Prepared[F6]
	p7 agg.Prepared[F7]
	p8 agg.Prepared[F8]
	p9 agg.Prepared[F9]
	p10 agg.Prepared[F10]
}

func (p prepared10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10]) CreateFruit() Fruit10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10] {
	return Fruit10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10]{V1: p.p1.CreateFruit(), V2: p.p2.CreateFruit(), V3: p.p3.CreateFruit(), V4: p.p4.CreateFruit(), V5: p.p5.CreateFruit(), V6: p.p6.CreateFruit(), V7: p.p7.CreateFruit(), V8: p.p8.CreateFruit(), V9: p.p9.CreateFruit(), V10: p.p10.CreateFruit()}
}

func (p prepared10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10]) Merge(dst *Fruit10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10], src Fruit10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10]) {
	p.p1.Merge(&dst.V1, src.V1)
	p.p2.Merge(&dst.V2, src.V2)
	p.p3.Merge(&dst.V3, src.V3)
	p.p4.Merge(&dst.V4, src.V4)
	p.p5.Merge(&dst.V5, src.V5)
	p.p6.Merge(&dst.V6, src.V6)
	p.p7.Merge(&dst.V7, src.V7)
	p.p8.Merge(&dst.V8, src.V8)
	p.p9.Merge(&dst.V9, src.V9)
	p.p10.Merge(&dst.V10, src.V10)
}

func (p prepared10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10]) ForSegment(ctx agg.SegmentContext) (agg.Segment[Fruit10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10]], error) {
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
	s4, err := p.p4.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s5, err := p.p5.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s6, err := p.p6.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s7, err := p.p7.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s8, err := p.p8.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s9, err := p.p9.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	s10, err := p.p10.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	return segment10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10]{s1: s1, s2: s2, s3: s3, s4: s4, s5: s5, s6: s6, s7: s7, s8: s8, s9: s9, s10: s10}, nil
}

type segment10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10 any] struct {
	s1 agg.Segment[F1]
	s2 agg.Segment[F2]
	s3 agg.Segment[F3]
	s4 agg.Segment[F4]
	s5 agg.Segment[F5]
	s6 agg.Segment[F6]
	s7 agg.Segment[F7]
	s8 agg.Segment[F8]
	s9 agg.Segment[F9]
	s10 agg.Segment[F10]
}

func (s segment10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10]) Collect(doc uint32, score float64, fruit *Fruit10[F1, F2, F3, F4, F5, F6, F7, F8, F9, F10]) {
	s.s1.Collect(doc, score, &fruit.V1)
	s.s2.Collect(doc, score, &fruit.V2)
	s.s3.Collect(doc, score, &fruit.V3)
	s.s4.Collect(doc, score, &fruit.V4)
	s.s5.Collect(doc, score, &fruit.V5)
	s.s6.Collect(doc, score, &fruit.V6)
	s.s7.Collect(doc, score, &fruit.V7)
	s.s8.Collect(doc, score, &fruit.V8)
	s.s9.Collect(doc, score, &fruit.V9)
	s.s10.Collect(doc, score, &fruit.V10)
}
