package memindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tantivygo/aggregations/index"
	"github.com/tantivygo/aggregations/index/memindex"
)

func scanAll(t *testing.T, idx *memindex.Index, q index.Query) []uint32 {
	t.Helper()
	var docs []uint32
	for segOrd, reader := range idx.SegmentReaders() {
		weight, err := q.Weight(idx, false)
		require.NoError(t, err)
		scorer, err := weight.Scorer(reader)
		require.NoError(t, err)
		dead, hasDeletes := reader.DeleteBitset()
		scorer.ForEach(func(doc uint32, _ float64) {
			if hasDeletes && !dead.IsAlive(doc) {
				return
			}
			_ = segOrd
			docs = append(docs, doc)
		})
	}
	return docs
}

func TestAllQuery_MatchesEveryDocument(t *testing.T) {
	idx := memindex.ProductFixture()
	docs := scanAll(t, idx, memindex.AllQuery{})
	assert.Equal(t, []uint32{0, 1, 2, 3, 4}, docs)
}

func TestTermQuery_MatchesOnlyEqualDocs(t *testing.T) {
	idx := memindex.ProductFixture()
	docs := scanAll(t, idx, memindex.TermQuery{Field: "category_id", Value: 2})
	assert.Equal(t, []uint32{2, 3, 4}, docs)
}

func TestRangeQuery_HalfOpenInterval(t *testing.T) {
	idx := memindex.ProductFixture()
	docs := scanAll(t, idx, memindex.RangeQuery{Field: "price", Lo: 10, Hi: 50})
	assert.Equal(t, []uint32{1}, docs, "[10,50) includes price==10 but excludes price==50")
}

func TestBuilder_CommitStartsFreshSegment(t *testing.T) {
	b := memindex.NewBuilder(map[string]index.FieldType{"category_id": index.FieldTypeU64})
	id0 := b.AddDoc(memindex.Doc{"category_id": uint64(1)})
	b.Commit()
	id1 := b.AddDoc(memindex.Doc{"category_id": uint64(2)})

	idx := b.Build()
	assert.Equal(t, uint32(0), id0)
	assert.Equal(t, uint32(0), id1, "doc ids restart at 0 within each new segment")
	assert.Len(t, idx.SegmentReaders(), 2)
}

func TestBuilder_DeleteTombstonesWithinSegment(t *testing.T) {
	b := memindex.NewBuilder(map[string]index.FieldType{"category_id": index.FieldTypeU64})
	b.AddDoc(memindex.Doc{"category_id": uint64(1)})
	b.AddDoc(memindex.Doc{"category_id": uint64(2)})
	b.Delete(0)
	idx := b.Build()

	docs := scanAll(t, idx, memindex.AllQuery{})
	assert.Equal(t, []uint32{1}, docs, "doc 0 is deleted and must be skipped by every query")
}

func TestIndex_NumDocsExcludesDeleted(t *testing.T) {
	b := memindex.NewBuilder(map[string]index.FieldType{"category_id": index.FieldTypeU64})
	b.AddDoc(memindex.Doc{"category_id": uint64(1)})
	b.AddDoc(memindex.Doc{"category_id": uint64(2)})
	b.Delete(1)
	idx := b.Build()

	assert.Equal(t, uint64(1), idx.NumDocs())
}

func TestFastFields_WrongTypeErrors(t *testing.T) {
	idx := memindex.ProductFixture()
	reader := idx.SegmentReaders()[0]

	_, err := reader.FastFields().I64("price")
	require.Error(t, err, "price is an f64 field, not i64")
}

func TestSchema_ReportsDeclaredFieldTypes(t *testing.T) {
	idx := memindex.ProductFixture()
	reader := idx.SegmentReaders()[0]

	typ, ok := reader.Schema().FieldType("category_id")
	require.True(t, ok)
	assert.Equal(t, index.FieldTypeU64, typ)

	_, ok = reader.Schema().FieldType("nonexistent")
	assert.False(t, ok)
}
