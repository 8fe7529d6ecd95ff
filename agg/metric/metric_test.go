package metric_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/agg/metric"
	"github.com/tantivygo/aggregations/index"
	"github.com/tantivygo/aggregations/index/memindex"
)

func runOver[F any](t *testing.T, s index.Searcher, d agg.Descriptor[F]) F {
	t.Helper()
	prepared, err := d.Prepare(s)
	require.NoError(t, err)

	harvest := prepared.CreateFruit()
	for _, reader := range s.SegmentReaders() {
		weight, err := memindex.AllQuery{}.Weight(s, d.RequiresScoring())
		require.NoError(t, err)
		scorer, err := weight.Scorer(reader)
		require.NoError(t, err)

		segCtx := agg.SegmentContext{Reader: reader, Scorer: scorer}
		segment, err := prepared.ForSegment(segCtx)
		require.NoError(t, err)

		fruit := prepared.CreateFruit()
		scorer.ForEach(func(doc uint32, score float64) {
			segment.Collect(doc, score, &fruit)
		})
		prepared.Merge(&harvest, fruit)
	}
	return harvest
}

func TestCount_AllFiveDocs(t *testing.T) {
	idx := memindex.ProductFixture()
	got := runOver[uint64](t, idx, metric.Count())
	assert.Equal(t, uint64(5), got)
}

func TestCount_AcrossSegments(t *testing.T) {
	idx := memindex.ProductFixtureSegments()
	got := runOver[uint64](t, idx, metric.Count())
	assert.Equal(t, uint64(5), got)
}

func TestMinMaxF64_Price(t *testing.T) {
	idx := memindex.ProductFixture()

	min := runOver(t, idx, metric.MinF64("price"))
	max := runOver(t, idx, metric.MaxF64("price"))

	v, ok := min.Get()
	require.True(t, ok)
	assert.Equal(t, 0.5, v)

	v, ok = max.Get()
	require.True(t, ok)
	assert.Equal(t, 100.01, v)
}

func TestMinMaxF64_EmptySegmentIsInvalid(t *testing.T) {
	b := memindex.NewBuilder(map[string]index.FieldType{"price": index.FieldTypeF64})
	idx := b.Build()

	got := runOver(t, idx, metric.MinF64("price"))
	_, ok := got.Get()
	assert.False(t, ok, "min over zero documents must report Valid=false, not a zero value")
}

func TestSumF64_Price(t *testing.T) {
	idx := memindex.ProductFixture()
	got := runOver(t, idx, metric.SumF64("price"))

	v, valid, overflowed := got.Get()
	require.True(t, valid)
	assert.False(t, overflowed)
	assert.InDelta(t, 9.99+10+0.5+50+100.01, v, 1e-9)
}

func TestSumU64_Overflow(t *testing.T) {
	b := memindex.NewBuilder(map[string]index.FieldType{"n": index.FieldTypeU64})
	b.AddDoc(memindex.Doc{"n": uint64(18446744073709551615)})
	b.AddDoc(memindex.Doc{"n": uint64(1)})
	idx := b.Build()

	got := runOver(t, idx, metric.SumU64("n"))
	_, valid, overflowed := got.Get()
	require.True(t, valid)
	assert.True(t, overflowed, "summing past math.MaxUint64 must be reported, not silently wrapped")
}

func TestMinMaxF64_IgnoresNaN(t *testing.T) {
	b := memindex.NewBuilder(map[string]index.FieldType{"price": index.FieldTypeF64})
	b.AddDoc(memindex.Doc{"price": math.NaN()})
	b.AddDoc(memindex.Doc{"price": 5.0})
	b.AddDoc(memindex.Doc{"price": math.NaN()})
	idx := b.Build()

	min := runOver(t, idx, metric.MinF64("price"))
	max := runOver(t, idx, metric.MaxF64("price"))

	v, ok := min.Get()
	require.True(t, ok)
	assert.Equal(t, 5.0, v)

	v, ok = max.Get()
	require.True(t, ok)
	assert.Equal(t, 5.0, v)
}

func TestMinMaxF64s_IgnoresNaNAmongMultipleValues(t *testing.T) {
	b := memindex.NewBuilder(map[string]index.FieldType{"prices": index.FieldTypeF64s})
	b.AddDoc(memindex.Doc{"prices": []float64{math.NaN(), 3.0, math.NaN(), 7.0}})
	idx := b.Build()

	min := runOver(t, idx, metric.MinF64s("prices"))
	max := runOver(t, idx, metric.MaxF64s("prices"))

	v, ok := min.Get()
	require.True(t, ok)
	assert.Equal(t, 3.0, v)

	v, ok = max.Get()
	require.True(t, ok)
	assert.Equal(t, 7.0, v)
}

func TestMinMaxU64s_MultiValued(t *testing.T) {
	idx := memindex.TaggedFixture()

	min := runOver(t, idx, metric.MinU64s("tag_ids"))
	max := runOver(t, idx, metric.MaxU64s("tag_ids"))

	v, ok := min.Get()
	require.True(t, ok)
	assert.Equal(t, uint64(111), v)

	v, ok = max.Get()
	require.True(t, ok)
	assert.Equal(t, uint64(320), v)
}

func TestMinMaxTimestamp(t *testing.T) {
	b := memindex.NewBuilder(map[string]index.FieldType{"ts": index.FieldTypeTimestamp})
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b.AddDoc(memindex.Doc{"ts": base})
	b.AddDoc(memindex.Doc{"ts": base.Add(48 * time.Hour)})
	idx := b.Build()

	min := runOver(t, idx, metric.MinTimestamp("ts"))
	max := runOver(t, idx, metric.MaxTimestamp("ts"))

	v, ok := min.Get()
	require.True(t, ok)
	assert.True(t, v.Equal(base))

	v, ok = max.Get()
	require.True(t, ok)
	assert.True(t, v.Equal(base.Add(48*time.Hour)))
}

func TestPercentile_ExactQuantilesOfPrices(t *testing.T) {
	idx := memindex.ProductFixture()
	got := runOver(t, idx, metric.Percentile("price", 0.01))

	_, v, ok := got.Query(0.01)
	require.True(t, ok)
	assert.Equal(t, 0.5, v)

	_, v, ok = got.Query(0.5)
	require.True(t, ok)
	assert.Equal(t, 10.0, v)

	_, v, ok = got.Query(0.99)
	require.True(t, ok)
	assert.Equal(t, 100.01, v)
}

func TestPercentile_IgnoresNaN(t *testing.T) {
	b := memindex.NewBuilder(map[string]index.FieldType{"price": index.FieldTypeF64})
	b.AddDoc(memindex.Doc{"price": math.NaN()})
	b.AddDoc(memindex.Doc{"price": 10.0})
	idx := b.Build()

	got := runOver(t, idx, metric.Percentile("price", 0.01))
	_, v, ok := got.Query(0.5)
	require.True(t, ok)
	assert.Equal(t, 10.0, v, "a NaN-only-then-one-real-value segment must report the real value, not be skewed by NaN")
}

func TestPercentile_EmptyIsNotOk(t *testing.T) {
	b := memindex.NewBuilder(map[string]index.FieldType{"price": index.FieldTypeF64})
	idx := b.Build()

	got := runOver(t, idx, metric.Percentile("price", 0.01))
	_, _, ok := got.Query(0.5)
	assert.False(t, ok)
}

func TestPercentile_Merge(t *testing.T) {
	d := metric.Percentile("price", 0.01)
	prepared, err := d.Prepare(memindex.ProductFixture())
	require.NoError(t, err)

	a := prepared.CreateFruit()
	b := prepared.CreateFruit()
	prepared.Merge(&a, b)

	_, _, ok := a.Query(0.5)
	assert.False(t, ok, "merging two empty sketches must stay empty (merge identity law)")
}
