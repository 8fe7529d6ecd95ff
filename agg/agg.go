// Package agg defines the three-stage aggregator protocol that every
// aggregation node in this module implements: a Descriptor binds to the
// overall searcher, a Prepared value binds to one segment at a time, and a
// Segment value consumes (doc, score) pairs and writes into a fruit.
//
// # Thread Safety
//
// Prepared values are read concurrently by every segment worker in a
// search; implementations must not mutate Prepared state in for_segment or
// merge. Segment values are owned by exactly one worker for the lifetime of
// one segment and require no synchronization.
package agg

import (
	"github.com/tantivygo/aggregations/index"
)

// SegmentContext is the ephemeral record passed to Prepared.ForSegment.
type SegmentContext struct {
	// SegmentOrdinal is this segment's position among the searcher's segments.
	SegmentOrdinal int
	// Reader exposes fast fields, schema and deletions for this segment.
	Reader index.SegmentReader
	// Scorer yields the (doc, score) pairs this search matched in this segment.
	Scorer index.Scorer
}

// Descriptor is the immutable, user-built description of what to compute.
// It is bound to index-wide state by Prepare.
type Descriptor[F any] interface {
	// Prepare binds the descriptor to the searcher, resolving field handles
	// and compiling any filter query weights.
	Prepare(searcher index.Searcher) (Prepared[F], error)

	// RequiresScoring reports whether any leaf under this node needs a real
	// score rather than a placeholder.
	RequiresScoring() bool
}

// Prepared is bound to the overall index and must be safe to read
// concurrently from every segment worker in a search.
type Prepared[F any] interface {
	// CreateFruit returns a zero/empty accumulator satisfying the merge
	// identity law: Merge(CreateFruit(), f) == f.
	CreateFruit() F

	// ForSegment acquires this node's per-segment state: column readers,
	// a compiled filter scorer, scratch buffers.
	ForSegment(ctx SegmentContext) (Segment[F], error)

	// Merge combines src into dst. Merge must be commutative and
	// associative per node so that segment processing order never affects
	// the final result.
	Merge(dst *F, src F)
}

// Segment is exclusively owned by one worker for the duration of one
// segment's evaluation.
type Segment[F any] interface {
	// Collect is called once per matched, non-deleted document in
	// ascending document-id order within the segment.
	Collect(doc uint32, score float64, fruit *F)
}
