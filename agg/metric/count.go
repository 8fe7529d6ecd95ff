package metric

import (
	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/index"
)

// countDescriptor counts matched, non-deleted documents. It needs no
// column reader at all: every matching document increments the fruit by
// one regardless of field values.
type countDescriptor struct{}

// Count computes the number of matched documents.
func Count() agg.Descriptor[uint64] {
	return countDescriptor{}
}

func (countDescriptor) RequiresScoring() bool { return false }

func (countDescriptor) Prepare(index.Searcher) (agg.Prepared[uint64], error) {
	return countPrepared{}, nil
}

type countPrepared struct{}

func (countPrepared) CreateFruit() uint64 { return 0 }

func (countPrepared) Merge(dst *uint64, src uint64) { *dst += src }

func (countPrepared) ForSegment(agg.SegmentContext) (agg.Segment[uint64], error) {
	return countSegment{}, nil
}

type countSegment struct{}

func (countSegment) Collect(_ uint32, _ float64, fruit *uint64) { *fruit++ }
