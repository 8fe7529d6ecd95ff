package postfilter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/agg/metric"
	"github.com/tantivygo/aggregations/agg/postfilter"
	"github.com/tantivygo/aggregations/index"
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

func TestF64_PredicateNarrowsDocuments(t *testing.T) {
	idx := memindex.ProductFixture()
	d := postfilter.F64("price", func(v float64) bool { return v >= 10 }, metric.Count())

	got := collect(t, idx, d)
	assert.Equal(t, uint64(3), got, "docs 1,3,4 have price >= 10")
}

func TestU64s_PredicateOverMultiValuedField(t *testing.T) {
	idx := memindex.TaggedFixture()
	d := postfilter.U64s("tag_ids", func(v uint64) bool { return v == 211 }, metric.Count())

	got := collect(t, idx, d)
	assert.Equal(t, uint64(4), got, "docs 0,1,2,3 carry tag 211 among their tag_ids")
}

func TestPostFilter_CustomFetcherSpanningOneColumn(t *testing.T) {
	idx := memindex.ProductFixture()
	fetch := func(reader index.SegmentReader) (index.F64Reader, error) {
		return reader.FastFields().F64("price")
	}
	pred := func(r index.F64Reader, doc uint32, _ float64) bool { return r.Get(doc) < 1 }

	d := postfilter.PostFilter("price", fetch, pred, metric.Count())
	got := collect(t, idx, d)
	assert.Equal(t, uint64(1), got, "only doc 2 (price 0.5) is under 1")
}

func TestSchemaError_WrongFieldType(t *testing.T) {
	idx := memindex.ProductFixture()
	d := postfilter.U64("price", func(uint64) bool { return true }, metric.Count())

	_, err := d.Prepare(idx)
	require.NoError(t, err, "Prepare never touches the schema; the error surfaces from ForSegment")

	prepared, err := d.Prepare(idx)
	require.NoError(t, err)

	reader := idx.SegmentReaders()[0]
	_, err = prepared.ForSegment(agg.SegmentContext{Reader: reader})
	require.Error(t, err)

	var schemaErr *agg.SchemaError
	assert.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "price", schemaErr.Field)
}
