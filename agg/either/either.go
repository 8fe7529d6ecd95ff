// Package either composes two aggregator subtrees that are mutually
// exclusive at a given call site (e.g. "if a filter field was given,
// aggregate that; otherwise just count"), without forcing both fruit
// shapes into a single uniform type.
package either

import (
	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/index"
)

// Tagged is a tagged union of an L-shaped or R-shaped value. Go has no
// native sum type, so the arm actually populated is recorded in IsRight.
type Tagged[L, R any] struct {
	Left    L
	Right   R
	IsRight bool
}

// LeftOf builds a Tagged value carrying its left arm.
func LeftOf[L, R any](v L) Tagged[L, R] {
	return Tagged[L, R]{Left: v}
}

// RightOf builds a Tagged value carrying its right arm.
func RightOf[L, R any](v R) Tagged[L, R] {
	return Tagged[L, R]{Right: v, IsRight: true}
}

// descriptor implements agg.Descriptor[Tagged[FL, FR]] by forwarding to
// whichever of left/right was supplied at construction.
type descriptor[FL, FR any] struct {
	left    agg.Descriptor[FL]
	right   agg.Descriptor[FR]
	isRight bool
}

// Either selects one of two aggregator subtrees at construction time,
// producing a fruit tagged with which arm ran. Merging two fruits whose
// tags disagree is a precondition violation (I4): it can only happen if a
// caller hand-built a mismatched fruit, since the driver only ever
// produces fruits from this same descriptor's own CreateFruit.
func Either[FL, FR any](which Tagged[agg.Descriptor[FL], agg.Descriptor[FR]]) agg.Descriptor[Tagged[FL, FR]] {
	if which.IsRight {
		return descriptor[FL, FR]{right: which.Right, isRight: true}
	}
	return descriptor[FL, FR]{left: which.Left}
}

func (d descriptor[FL, FR]) RequiresScoring() bool {
	if d.isRight {
		return d.right.RequiresScoring()
	}
	return d.left.RequiresScoring()
}

func (d descriptor[FL, FR]) Prepare(s index.Searcher) (agg.Prepared[Tagged[FL, FR]], error) {
	if d.isRight {
		p, err := d.right.Prepare(s)
		if err != nil {
			return nil, err
		}
		return prepared[FL, FR]{right: p, isRight: true}, nil
	}
	p, err := d.left.Prepare(s)
	if err != nil {
		return nil, err
	}
	return prepared[FL, FR]{left: p}, nil
}

type prepared[FL, FR any] struct {
	left    agg.Prepared[FL]
	right   agg.Prepared[FR]
	isRight bool
}

func (p prepared[FL, FR]) CreateFruit() Tagged[FL, FR] {
	if p.isRight {
		return RightOf[FL](p.right.CreateFruit())
	}
	return LeftOf[FL, FR](p.left.CreateFruit())
}

func (p prepared[FL, FR]) Merge(dst *Tagged[FL, FR], src Tagged[FL, FR]) {
	if p.isRight != dst.IsRight || p.isRight != src.IsRight {
		panic(&agg.PreconditionError{Reason: "either: merge called across mismatched arms"})
	}
	if p.isRight {
		p.right.Merge(&dst.Right, src.Right)
		return
	}
	p.left.Merge(&dst.Left, src.Left)
}

func (p prepared[FL, FR]) ForSegment(ctx agg.SegmentContext) (agg.Segment[Tagged[FL, FR]], error) {
	if p.isRight {
		s, err := p.right.ForSegment(ctx)
		if err != nil {
			return nil, err
		}
		return segment[FL, FR]{right: s, isRight: true}, nil
	}
	s, err := p.left.ForSegment(ctx)
	if err != nil {
		return nil, err
	}
	return segment[FL, FR]{left: s}, nil
}

type segment[FL, FR any] struct {
	left    agg.Segment[FL]
	right   agg.Segment[FR]
	isRight bool
}

func (s segment[FL, FR]) Collect(doc uint32, score float64, fruit *Tagged[FL, FR]) {
	if s.isRight {
		s.right.Collect(doc, score, &fruit.Right)
		return
	}
	s.left.Collect(doc, score, &fruit.Left)
}

// OneOf selects one of two same-shaped aggregator subtrees at
// construction time. Unlike Either, the fruit carries no arm tag: since
// both arms already produce the same fruit type, the chosen descriptor
// can be used exactly as-is, with no wrapper type needed.
func OneOf[F any](which Tagged[agg.Descriptor[F], agg.Descriptor[F]]) agg.Descriptor[F] {
	if which.IsRight {
		return which.Right
	}
	return which.Left
}
