// Package filter narrows a sub-aggregator to documents also matching a
// second query, without scoring that query — only its matched document
// set is consulted. It is the one composer that holds index-level state
// (a compiled Weight) and per-segment state (a Scorer cursor).
package filter

import (
	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/index"
)

type descriptor[F any] struct {
	query index.Query
	sub   agg.Descriptor[F]
}

// Filter restricts sub to documents that also match query; query itself is
// evaluated without relevance scoring.
func Filter[F any](query index.Query, sub agg.Descriptor[F]) agg.Descriptor[F] {
	return descriptor[F]{query: query, sub: sub}
}

func (d descriptor[F]) RequiresScoring() bool { return d.sub.RequiresScoring() }

func (d descriptor[F]) Prepare(s index.Searcher) (agg.Prepared[F], error) {
	weight, err := d.query.Weight(s, false)
	if err != nil {
		return nil, &agg.QueryCompileError{Err: err}
	}
	subPrepared, err := d.sub.Prepare(s)
	if err != nil {
		return nil, err
	}
	return prepared[F]{weight: weight, sub: subPrepared}, nil
}

type prepared[F any] struct {
	weight index.Weight
	sub    agg.Prepared[F]
}

func (p prepared[F]) CreateFruit() F { return p.sub.CreateFruit() }

func (p prepared[F]) Merge(dst *F, src F) { p.sub.Merge(dst, src) }

func (p prepared[F]) ForSegment(ctx agg.SegmentContext) (agg.Segment[F], error) {
	scorer, err := p.weight.Scorer(ctx.Reader)
	if err != nil {
		return nil, &agg.ReaderError{Op: "opening filter scorer", Err: err}
	}
	subSegment, err := p.sub.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	return &segment[F]{
		scorer:    scorer,
		exhausted: !scorer.Advance(),
		sub:       subSegment,
	}, nil
}

type segment[F any] struct {
	scorer    index.Scorer
	exhausted bool
	sub       agg.Segment[F]
}

// Collect forwards to sub only if doc also matches the filter query,
// advancing the filter's scorer cursor monotonically: doc ids are
// presented in ascending order, so the cursor only ever moves forward.
func (s *segment[F]) Collect(doc uint32, score float64, fruit *F) {
	if s.exhausted {
		return
	}
	if doc == s.scorer.CurrentDoc() {
		s.sub.Collect(doc, score, fruit)
		return
	}
	switch s.scorer.SkipNext(doc) {
	case index.Reached:
		s.sub.Collect(doc, score, fruit)
	case index.Overstepped:
		// The filter's next match is past doc; doc itself doesn't match.
	case index.End:
		s.exhausted = true
	}
}
