package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/agg/filter"
	"github.com/tantivygo/aggregations/agg/metric"
	"github.com/tantivygo/aggregations/index/memindex"
)

func collect[F any](t *testing.T, idx *memindex.Index, d agg.Descriptor[F]) F {
	t.Helper()
	prepared, err := d.Prepare(idx)
	require.NoError(t, err)

	harvest := prepared.CreateFruit()
	for _, reader := range idx.SegmentReaders() {
		weight, err := memindex.AllQuery{}.Weight(idx, d.RequiresScoring())
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

func TestFilter_NarrowsToMatchingDocuments(t *testing.T) {
	idx := memindex.ProductFixture()
	d := filter.Filter(memindex.TermQuery{Field: "category_id", Value: 2}, metric.Count())

	got := collect(t, idx, d)
	assert.Equal(t, uint64(3), got, "category_id=2 matches docs 2,3,4")
}

func TestFilter_SumRestrictedToRange(t *testing.T) {
	idx := memindex.ProductFixture()
	d := filter.Filter(memindex.RangeQuery{Field: "price", Lo: 0, Hi: 20}, metric.SumF64("price"))

	got := collect(t, idx, d)
	sum, valid, _ := got.Get()
	require.True(t, valid)
	assert.InDelta(t, 9.99+10+0.5, sum, 1e-9, "range [0,20) matches docs 0,1,2")
}

func TestFilter_DoesNotRequireScoring(t *testing.T) {
	d := filter.Filter(memindex.AllQuery{}, metric.Count())
	assert.False(t, d.RequiresScoring())
}
