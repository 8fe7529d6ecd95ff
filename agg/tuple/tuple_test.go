package tuple_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/agg/metric"
	"github.com/tantivygo/aggregations/agg/tuple"
	"github.com/tantivygo/aggregations/index/memindex"
)

func collect[F any](t *testing.T, idx *memindex.Index, d agg.Descriptor[F]) F {
	t.Helper()
	prepared, err := d.Prepare(idx)
	require.NoError(t, err)

	harvest := prepared.CreateFruit()
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
	return harvest
}

func TestOf2_BothArmsSeeEveryDocument(t *testing.T) {
	idx := memindex.ProductFixture()
	d := tuple.Of2(metric.Count(), metric.SumF64("price"))

	got := collect(t, idx, d)

	assert.Equal(t, uint64(5), got.V1)
	sum, valid, overflowed := got.V2.Get()
	require.True(t, valid)
	assert.False(t, overflowed)
	assert.InDelta(t, 170.5, sum, 1e-9)
}

func TestOf3_FruitShapeIndependentOfData(t *testing.T) {
	idx := memindex.ProductFixture()
	d := tuple.Of3(metric.Count(), metric.MinF64("price"), metric.MaxF64("price"))

	prepared, err := d.Prepare(idx)
	require.NoError(t, err)
	fruit := prepared.CreateFruit()

	// I1: an untouched fruit still has all three fields present, just at
	// their own zero/invalid states.
	assert.Equal(t, uint64(0), fruit.V1)
	_, ok := fruit.V2.Get()
	assert.False(t, ok)
	_, ok = fruit.V3.Get()
	assert.False(t, ok)
}

func TestOf4_MergeIsAssociative(t *testing.T) {
	idx := memindex.ProductFixtureSegments()
	d := tuple.Of4(metric.Count(), metric.MinF64("price"), metric.MaxF64("price"), metric.SumF64("price"))

	got := collect(t, idx, d)

	assert.Equal(t, uint64(5), got.V1)
	min, _ := got.V2.Get()
	max, _ := got.V3.Get()
	assert.Equal(t, 0.5, min)
	assert.Equal(t, 100.01, max)
	sum, _, _ := got.V4.Get()
	assert.InDelta(t, 170.5, sum, 1e-9)
}
