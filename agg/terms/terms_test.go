package terms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/agg/metric"
	"github.com/tantivygo/aggregations/agg/terms"
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

func TestU64_OneBucketPerCategory(t *testing.T) {
	idx := memindex.ProductFixture()
	d := terms.U64("category_id", metric.Count())

	got := collect(t, idx, d)
	require.Equal(t, 2, got.Len())

	v, ok := got.Get(1)
	require.True(t, ok)
	assert.Equal(t, uint64(2), v)

	v, ok = got.Get(2)
	require.True(t, ok)
	assert.Equal(t, uint64(3), v)
}

func TestU64_AcrossSegments(t *testing.T) {
	idx := memindex.ProductFixtureSegments()
	got := collect(t, idx, terms.U64("category_id", metric.Count()))

	v, ok := got.Get(2)
	require.True(t, ok)
	assert.Equal(t, uint64(3), v, "category 2's three docs are split across segments 2 and 3 and must merge into one bucket")
}

func TestU64s_OneDocContributesToEveryTagBucket(t *testing.T) {
	idx := memindex.TaggedFixture()
	got := collect(t, idx, terms.U64s("tag_ids", metric.Count()))

	// doc 1 carries tags [111,211,311], so it contributes to 3 buckets.
	v, ok := got.Get(111)
	require.True(t, ok)
	assert.Equal(t, uint64(2), v) // docs 0,1

	v, ok = got.Get(211)
	require.True(t, ok)
	assert.Equal(t, uint64(4), v) // docs 0,1,2,3

	v, ok = got.Get(320)
	require.True(t, ok)
	assert.Equal(t, uint64(2), v) // docs 3,4
}

func TestFilteredU64_RestrictsToAllowedKeys(t *testing.T) {
	idx := memindex.ProductFixture()
	d := terms.FilteredU64("category_id", []uint64{1}, metric.Count())

	got := collect(t, idx, d)
	assert.Equal(t, 1, got.Len())
	v, ok := got.Get(1)
	require.True(t, ok)
	assert.Equal(t, uint64(2), v)

	_, ok = got.Get(2)
	assert.False(t, ok, "category 2 was not in the allowed key set")
}

func TestTopK_BreaksTiesByAscendingKey(t *testing.T) {
	idx := memindex.ProductFixture()
	got := collect(t, idx, terms.U64("category_id", metric.Count()))

	top := got.TopK(1, func(c uint64) float64 { return float64(c) })
	require.Len(t, top, 1)
	assert.Equal(t, uint64(2), top[0].Key, "category 2 has the higher count (3 vs 2)")

	tied := got.TopK(1, func(uint64) float64 { return 0 })
	require.Len(t, tied, 1)
	assert.Equal(t, uint64(1), tied[0].Key, "with every rank equal, the lower key wins")
}

func TestTopK_NeverExceedsRequestedSize(t *testing.T) {
	idx := memindex.ProductFixture()
	got := collect(t, idx, terms.U64("category_id", metric.Count()))

	top := got.TopK(10, func(c uint64) float64 { return float64(c) })
	assert.Len(t, top, 2, "only 2 distinct categories exist even though 10 were requested")
}
