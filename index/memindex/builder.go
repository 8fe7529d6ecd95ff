package memindex

import (
	"time"

	"github.com/tantivygo/aggregations/index"
)

// Builder accumulates documents into segments and produces an Index.
// Calling Commit seals the current segment and starts a new one, mirroring
// the source's one-segment-per-writer-commit model closely enough to
// exercise this module's multi-segment fan-out.
type Builder struct {
	fields  map[string]index.FieldType
	current *segment
	sealed  []*segment
}

// NewBuilder starts a builder over the given field schema.
func NewBuilder(fields map[string]index.FieldType) *Builder {
	b := &Builder{fields: fields}
	b.current = b.newSegment()
	return b
}

func (b *Builder) newSegment() *segment {
	cols := make(map[string]*column, len(b.fields))
	for name, typ := range b.fields {
		cols[name] = &column{typ: typ}
	}
	return &segment{columns: cols, dead: map[uint32]struct{}{}}
}

// Doc is a set of field values for one document, single-valued fields given
// directly (uint64, int64, float64, time.Time) and multi-valued fields
// given as slices ([]uint64, []int64, []float64, []time.Time).
type Doc map[string]any

// AddDoc appends a document to the current (unsealed) segment and returns
// its document id within that segment.
func (b *Builder) AddDoc(doc Doc) uint32 {
	id := b.current.numDocs
	for name, col := range b.current.columns {
		v, present := doc[name]
		switch col.typ {
		case index.FieldTypeU64:
			var val uint64
			if present {
				val = v.(uint64)
			}
			col.u64 = append(col.u64, val)
		case index.FieldTypeI64:
			var val int64
			if present {
				val = v.(int64)
			}
			col.i64 = append(col.i64, val)
		case index.FieldTypeF64:
			var val float64
			if present {
				val = v.(float64)
			}
			col.f64 = append(col.f64, val)
		case index.FieldTypeTimestamp:
			var val int64
			if present {
				val = timeToNanos(v.(time.Time))
			}
			col.ts = append(col.ts, val)
		case index.FieldTypeU64s:
			var vals []uint64
			if present {
				vals = v.([]uint64)
			}
			col.u64s = append(col.u64s, vals)
		case index.FieldTypeI64s:
			var vals []int64
			if present {
				vals = v.([]int64)
			}
			col.i64s = append(col.i64s, vals)
		case index.FieldTypeF64s:
			var vals []float64
			if present {
				vals = v.([]float64)
			}
			col.f64s = append(col.f64s, vals)
		case index.FieldTypeTimestamps:
			var nanos []int64
			if present {
				for _, t := range v.([]time.Time) {
					nanos = append(nanos, timeToNanos(t))
				}
			}
			col.tss = append(col.tss, nanos)
		}
	}
	b.current.numDocs++
	return id
}

// Delete tombstones a document already added to the current segment.
func (b *Builder) Delete(doc uint32) {
	b.current.dead[doc] = struct{}{}
}

// Commit seals the current segment, starting a fresh one for any further
// AddDoc calls.
func (b *Builder) Commit() {
	b.sealed = append(b.sealed, b.current)
	b.current = b.newSegment()
}

// Build finalizes the index, committing the current segment if it holds
// any documents or if no segment was sealed yet, so the index always has
// at least one segment.
func (b *Builder) Build() *Index {
	if b.current.numDocs > 0 || len(b.sealed) == 0 {
		b.Commit()
	}
	return &Index{segments: b.sealed}
}
