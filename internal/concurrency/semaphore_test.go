package concurrency_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tantivygo/aggregations/internal/concurrency"
)

func TestSemaphore_BoundsConcurrentHolders(t *testing.T) {
	sem := concurrency.NewSemaphore(2)
	ctx := context.Background()

	require.NoError(t, sem.Acquire(ctx))
	require.NoError(t, sem.Acquire(ctx))

	acquired := make(chan struct{})
	go func() {
		_ = sem.Acquire(ctx)
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("a third Acquire must block while capacity 2 is fully held")
	case <-time.After(20 * time.Millisecond):
	}

	sem.Release()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("Acquire should unblock once a slot is released")
	}
}

func TestSemaphore_AcquireRespectsContextCancellation(t *testing.T) {
	sem := concurrency.NewSemaphore(1)
	require.NoError(t, sem.Acquire(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sem.Acquire(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSemaphore_NonPositiveCapacityDefaultsToOne(t *testing.T) {
	sem := concurrency.NewSemaphore(0)
	require.NoError(t, sem.Acquire(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := sem.Acquire(ctx)
	assert.Error(t, err, "capacity 0 must be treated as capacity 1, not unlimited")
}
