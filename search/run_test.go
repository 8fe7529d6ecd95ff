package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tantivygo/aggregations/agg/metric"
	"github.com/tantivygo/aggregations/agg/terms"
	"github.com/tantivygo/aggregations/index"
	"github.com/tantivygo/aggregations/index/memindex"
	"github.com/tantivygo/aggregations/search"
)

func TestRun_SequentialMatchesThreaded(t *testing.T) {
	idx := memindex.ProductFixtureSegments()
	descriptor := terms.U64("category_id", metric.Count())

	seq, err := search.Run[terms.Map[uint64, uint64]](
		context.Background(), idx, index.Query(memindex.AllQuery{}), descriptor, search.Options{Concurrency: 1})
	require.NoError(t, err)

	threaded, err := search.Run[terms.Map[uint64, uint64]](
		context.Background(), idx, index.Query(memindex.AllQuery{}), descriptor, search.Options{Concurrency: 4})
	require.NoError(t, err)

	v1, ok1 := seq.Get(2)
	v2, ok2 := threaded.Get(2)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, v1, v2, "sequential and threaded execution must merge to the identical result regardless of segment order")
}

func TestRun_CountOverAllDocuments(t *testing.T) {
	idx := memindex.ProductFixture()
	got, err := search.Run[uint64](context.Background(), idx, index.Query(memindex.AllQuery{}), metric.Count(), search.Options{})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), got)
}

func TestRun_FilteredByQuery(t *testing.T) {
	idx := memindex.ProductFixture()
	got, err := search.Run[uint64](
		context.Background(), idx, index.Query(memindex.TermQuery{Field: "category_id", Value: 1}), metric.Count(), search.Options{})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got)
}

func TestRun_ContextCancelledBeforeNextSegment(t *testing.T) {
	idx := memindex.ProductFixtureSegments()
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already cancelled before Run starts

	_, err := search.Run[uint64](ctx, idx, index.Query(memindex.AllQuery{}), metric.Count(), search.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InvalidOptionsRejected(t *testing.T) {
	idx := memindex.ProductFixture()
	_, err := search.Run[uint64](context.Background(), idx, index.Query(memindex.AllQuery{}), metric.Count(), search.Options{Concurrency: -1})
	require.Error(t, err)
}

func TestRun_DoesNotHangUnderTimeout(t *testing.T) {
	idx := memindex.ProductFixtureSegments()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := search.Run[uint64](ctx, idx, index.Query(memindex.AllQuery{}), metric.Count(), search.Options{Concurrency: 2})
	require.NoError(t, err)
}
