package agg

import "fmt"

// Sentinel errors identifying each error kind this module raises. Callers
// match on kind with errors.Is/errors.As, never on message text.
var (
	// ErrSchema marks a requested column that is missing or not a fast
	// field of the expected type in a given segment.
	ErrSchema = fmt.Errorf("agg: schema mismatch")
	// ErrQueryCompile marks a failure compiling a filter query into a
	// weight/scorer pair.
	ErrQueryCompile = fmt.Errorf("agg: query compilation failed")
	// ErrReader marks a failure reading from an underlying column or
	// scorer.
	ErrReader = fmt.Errorf("agg: reader failure")
	// ErrPrecondition marks a programmer error detected at construction
	// or merge time (bad histogram interval, mismatched either arm).
	ErrPrecondition = fmt.Errorf("agg: precondition violated")
)

// SchemaError reports that a field was not a fast-access column of the
// expected type. It is raised from Prepared.ForSegment and is fatal for the
// whole search.
type SchemaError struct {
	Field string
	Want  string
	Err   error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("agg: field %q: want %s fast field: %v", e.Field, e.Want, e.Err)
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// QueryCompileError wraps a failure compiling a filter's Query into a
// Weight. It is raised from Descriptor.Prepare and is fatal.
type QueryCompileError struct {
	Err error
}

func (e *QueryCompileError) Error() string {
	return fmt.Sprintf("agg: compiling filter query: %v", e.Err)
}

func (e *QueryCompileError) Unwrap() error { return ErrQueryCompile }

// ReaderError wraps a failure returned by an underlying SegmentReader,
// Scorer, or column reader.
type ReaderError struct {
	Op  string
	Err error
}

func (e *ReaderError) Error() string {
	return fmt.Sprintf("agg: %s: %v", e.Op, e.Err)
}

func (e *ReaderError) Unwrap() error { return ErrReader }

// PreconditionError reports a programmer error: a descriptor built with an
// invalid argument, or two fruits merged out of the shape their aggregator
// subtree guarantees (I1). It is always fatal and is never recoverable by
// retrying.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("agg: precondition violated: %s", e.Reason)
}

func (e *PreconditionError) Unwrap() error { return ErrPrecondition }
