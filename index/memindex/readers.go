package memindex

import (
	"fmt"
	"time"

	"github.com/tantivygo/aggregations/index"
)

type fastFields struct{ seg *segment }

func (f fastFields) column(name string, want index.FieldType) (*column, error) {
	col, ok := f.seg.columns[name]
	if !ok {
		return nil, fmt.Errorf("memindex: no such field %q", name)
	}
	if col.typ != want {
		return nil, fmt.Errorf("memindex: field %q is not %v", name, want)
	}
	return col, nil
}

func (f fastFields) U64(name string) (index.U64Reader, error) {
	col, err := f.column(name, index.FieldTypeU64)
	if err != nil {
		return nil, err
	}
	return u64Reader{col.u64}, nil
}

func (f fastFields) I64(name string) (index.I64Reader, error) {
	col, err := f.column(name, index.FieldTypeI64)
	if err != nil {
		return nil, err
	}
	return i64Reader{col.i64}, nil
}

func (f fastFields) F64(name string) (index.F64Reader, error) {
	col, err := f.column(name, index.FieldTypeF64)
	if err != nil {
		return nil, err
	}
	return f64Reader{col.f64}, nil
}

func (f fastFields) Timestamp(name string) (index.TimestampReader, error) {
	col, err := f.column(name, index.FieldTypeTimestamp)
	if err != nil {
		return nil, err
	}
	return tsReader{col.ts}, nil
}

func (f fastFields) U64s(name string) (index.U64sReader, error) {
	col, err := f.column(name, index.FieldTypeU64s)
	if err != nil {
		return nil, err
	}
	return u64sReader{col.u64s}, nil
}

func (f fastFields) I64s(name string) (index.I64sReader, error) {
	col, err := f.column(name, index.FieldTypeI64s)
	if err != nil {
		return nil, err
	}
	return i64sReader{col.i64s}, nil
}

func (f fastFields) F64s(name string) (index.F64sReader, error) {
	col, err := f.column(name, index.FieldTypeF64s)
	if err != nil {
		return nil, err
	}
	return f64sReader{col.f64s}, nil
}

func (f fastFields) Timestamps(name string) (index.TimestampsReader, error) {
	col, err := f.column(name, index.FieldTypeTimestamps)
	if err != nil {
		return nil, err
	}
	return tssReader{col.tss}, nil
}

type u64Reader struct{ vals []uint64 }

func (r u64Reader) Get(doc uint32) uint64 { return r.vals[doc] }

type i64Reader struct{ vals []int64 }

func (r i64Reader) Get(doc uint32) int64 { return r.vals[doc] }

type f64Reader struct{ vals []float64 }

func (r f64Reader) Get(doc uint32) float64 { return r.vals[doc] }

// tsReader stores Unix nanoseconds directly, matching index.TimestampReader.
type tsReader struct{ vals []int64 }

func (r tsReader) Get(doc uint32) int64 { return r.vals[doc] }

type u64sReader struct{ vals [][]uint64 }

func (r u64sReader) GetInto(doc uint32, scratch []uint64) []uint64 {
	return append(scratch, r.vals[doc]...)
}

type i64sReader struct{ vals [][]int64 }

func (r i64sReader) GetInto(doc uint32, scratch []int64) []int64 {
	return append(scratch, r.vals[doc]...)
}

type f64sReader struct{ vals [][]float64 }

func (r f64sReader) GetInto(doc uint32, scratch []float64) []float64 {
	return append(scratch, r.vals[doc]...)
}

type tssReader struct{ vals [][]int64 }

func (r tssReader) GetInto(doc uint32, scratch []int64) []int64 {
	return append(scratch, r.vals[doc]...)
}

// timeToNanos adapts a time.Time to the Unix-nanosecond representation this
// package's timestamp columns use internally.
func timeToNanos(t time.Time) int64 { return t.UnixNano() }
