package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/internal/validate"
)

type sample struct {
	Concurrency int     `validate:"gte=0"`
	Epsilon     float64 `validate:"gte=0,lt=1"`
}

func TestStruct_ValidValuesPass(t *testing.T) {
	err := validate.Struct(sample{Concurrency: 4, Epsilon: 0.01})
	assert.NoError(t, err)
}

func TestStruct_ViolationReturnsPreconditionError(t *testing.T) {
	err := validate.Struct(sample{Concurrency: -1, Epsilon: 0.01})
	require.Error(t, err)

	var precondition *agg.PreconditionError
	require.ErrorAs(t, err, &precondition)
	assert.Contains(t, precondition.Reason, "Concurrency")
}

func TestStruct_OutOfRangeEpsilonFails(t *testing.T) {
	err := validate.Struct(sample{Concurrency: 0, Epsilon: 1})
	require.Error(t, err)

	var precondition *agg.PreconditionError
	require.ErrorAs(t, err, &precondition)
	assert.Contains(t, precondition.Reason, "Epsilon")
}

func TestRequire_FalseConditionReturnsPreconditionError(t *testing.T) {
	err := validate.Require(false, "field name must not be empty")
	require.Error(t, err)

	var precondition *agg.PreconditionError
	require.ErrorAs(t, err, &precondition)
	assert.Equal(t, "field name must not be empty", precondition.Reason)
}

func TestRequire_TrueConditionReturnsNil(t *testing.T) {
	err := validate.Require(true, "unused")
	assert.NoError(t, err)
}
