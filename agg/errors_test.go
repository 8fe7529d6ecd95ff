package agg_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tantivygo/aggregations/agg"
)

func TestSchemaError_UnwrapsToSentinel(t *testing.T) {
	err := &agg.SchemaError{Field: "price", Want: "f64", Err: fmt.Errorf("not a fast field")}
	assert.ErrorIs(t, err, agg.ErrSchema)
	assert.Contains(t, err.Error(), "price")
	assert.Contains(t, err.Error(), "f64")
}

func TestQueryCompileError_UnwrapsToSentinel(t *testing.T) {
	err := &agg.QueryCompileError{Err: fmt.Errorf("bad term")}
	assert.ErrorIs(t, err, agg.ErrQueryCompile)
	assert.Contains(t, err.Error(), "bad term")
}

func TestReaderError_UnwrapsToSentinel(t *testing.T) {
	err := &agg.ReaderError{Op: "Scorer", Err: fmt.Errorf("closed")}
	assert.ErrorIs(t, err, agg.ErrReader)
	assert.Contains(t, err.Error(), "Scorer")
}

func TestPreconditionError_UnwrapsToSentinel(t *testing.T) {
	err := &agg.PreconditionError{Reason: "top-k must be positive"}
	assert.ErrorIs(t, err, agg.ErrPrecondition)
	assert.Contains(t, err.Error(), "top-k must be positive")
}

func TestErrorKinds_AreDistinctSentinels(t *testing.T) {
	err := &agg.SchemaError{Field: "x", Want: "u64", Err: fmt.Errorf("missing")}
	assert.False(t, errors.Is(err, agg.ErrReader))
	assert.False(t, errors.Is(err, agg.ErrPrecondition))
}

func TestErrorsAs_RecoversConcreteType(t *testing.T) {
	var wrapped error = fmt.Errorf("search failed: %w", &agg.ReaderError{Op: "ForEach", Err: fmt.Errorf("eof")})

	var readerErr *agg.ReaderError
	require := assert.New(t)
	require.True(errors.As(wrapped, &readerErr))
	require.Equal("ForEach", readerErr.Op)
}
