package either_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/agg/either"
	"github.com/tantivygo/aggregations/agg/metric"
	"github.com/tantivygo/aggregations/index/memindex"
)

func TestEither_LeftArmRuns(t *testing.T) {
	idx := memindex.ProductFixture()
	d := either.Either[uint64, metric.Value[float64]](either.LeftOf[agg.Descriptor[uint64], agg.Descriptor[metric.Value[float64]]](metric.Count()))

	prepared, err := d.Prepare(idx)
	require.NoError(t, err)

	harvest := prepared.CreateFruit()
	require.False(t, harvest.IsRight)

	for _, reader := range idx.SegmentReaders() {
		weight, err := memindex.AllQuery{}.Weight(idx, false)
		require.NoError(t, err)
		scorer, err := weight.Scorer(reader)
		require.NoError(t, err)
		segment, err := prepared.ForSegment(agg.SegmentContext{Reader: reader, Scorer: scorer})
		require.NoError(t, err)

		fruit := prepared.CreateFruit()
		scorer.ForEach(func(doc uint32, score float64) { segment.Collect(doc, score, &fruit) })
		prepared.Merge(&harvest, fruit)
	}

	assert.Equal(t, uint64(5), harvest.Left)
}

func TestEither_RightArmRuns(t *testing.T) {
	idx := memindex.ProductFixture()
	d := either.Either[uint64, metric.Value[float64]](either.RightOf[agg.Descriptor[uint64], agg.Descriptor[metric.Value[float64]]](metric.MaxF64("price")))

	prepared, err := d.Prepare(idx)
	require.NoError(t, err)
	harvest := prepared.CreateFruit()
	assert.True(t, harvest.IsRight)

	for _, reader := range idx.SegmentReaders() {
		weight, err := memindex.AllQuery{}.Weight(idx, false)
		require.NoError(t, err)
		scorer, err := weight.Scorer(reader)
		require.NoError(t, err)
		segment, err := prepared.ForSegment(agg.SegmentContext{Reader: reader, Scorer: scorer})
		require.NoError(t, err)

		fruit := prepared.CreateFruit()
		scorer.ForEach(func(doc uint32, score float64) { segment.Collect(doc, score, &fruit) })
		prepared.Merge(&harvest, fruit)
	}

	max, ok := harvest.Right.Get()
	require.True(t, ok)
	assert.Equal(t, 100.01, max)
}

func TestEither_MergeAcrossMismatchedArmsPanics(t *testing.T) {
	idx := memindex.ProductFixture()
	d := either.Either[uint64, metric.Value[float64]](either.LeftOf[agg.Descriptor[uint64], agg.Descriptor[metric.Value[float64]]](metric.Count()))

	prepared, err := d.Prepare(idx)
	require.NoError(t, err)

	dst := prepared.CreateFruit()
	mismatched := either.RightOf[uint64, metric.Value[float64]](metric.Value[float64]{})

	assert.Panics(t, func() {
		prepared.Merge(&dst, mismatched)
	}, "merging a right-tagged fruit into a left-prepared node is a precondition violation (I4)")
}

func TestOneOf_NoWrapperType(t *testing.T) {
	idx := memindex.ProductFixture()
	d := either.OneOf(either.RightOf[agg.Descriptor[uint64], agg.Descriptor[uint64]](metric.Count()))

	prepared, err := d.Prepare(idx)
	require.NoError(t, err)
	harvest := prepared.CreateFruit()
	assert.Equal(t, uint64(0), harvest, "OneOf's fruit is the bare subtree type, not a Tagged wrapper")
}
