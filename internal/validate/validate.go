// Package validate wraps github.com/go-playground/validator/v10 into the
// helper search.Options uses to enforce construction-time preconditions.
// Descriptor constructors do not use it; histogram.New checks its interval
// directly.
package validate

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tantivygo/aggregations/agg"
)

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
	})
	return v
}

// Struct validates s against its `validate:"..."` struct tags, returning an
// *agg.PreconditionError describing the first failing field on violation.
func Struct(s any) error {
	if err := instance().Struct(s); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return &agg.PreconditionError{
				Reason: fmt.Sprintf("field %q failed %q", fe.Namespace(), fe.Tag()),
			}
		}
		return &agg.PreconditionError{Reason: err.Error()}
	}
	return nil
}

// Require reports an *agg.PreconditionError with reason if cond is false.
// Used for checks a struct tag cannot express (e.g. non-empty field name).
func Require(cond bool, reason string) error {
	if cond {
		return nil
	}
	return &agg.PreconditionError{Reason: reason}
}
