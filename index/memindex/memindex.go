// Package memindex is a complete in-memory implementation of the index
// interfaces, used by this repository's own tests and by the demonstration
// CLI. It favors a straightforward columnar layout (one typed slice per
// field per segment) and brute-force query evaluation over realistic
// inverted-index machinery, since its job is to exercise the aggregation
// composers, not to be a production search engine.
package memindex

import (
	"fmt"

	"github.com/tantivygo/aggregations/index"
)

// column is one field's storage for one segment. Exactly one of the typed
// slices is populated, matching typ.
type column struct {
	typ  index.FieldType
	u64  []uint64
	i64  []int64
	f64  []float64
	ts   []int64
	u64s [][]uint64
	i64s [][]int64
	f64s [][]float64
	tss  [][]int64
}

type segment struct {
	numDocs uint32
	columns map[string]*column
	dead    map[uint32]struct{}
}

func (s *segment) FastFields() index.FastFieldReaders { return fastFields{seg: s} }

func (s *segment) Schema() index.Schema { return schema{seg: s} }

func (s *segment) DeleteBitset() (index.DeleteBitset, bool) {
	if len(s.dead) == 0 {
		return nil, false
	}
	return deleteBitset{dead: s.dead}, true
}

func (s *segment) MaxDoc() uint32 { return s.numDocs }

type deleteBitset struct{ dead map[uint32]struct{} }

func (d deleteBitset) IsAlive(doc uint32) bool {
	_, dead := d.dead[doc]
	return !dead
}

type schema struct{ seg *segment }

func (s schema) FieldType(name string) (index.FieldType, bool) {
	col, ok := s.seg.columns[name]
	if !ok {
		return index.FieldTypeUnknown, false
	}
	return col.typ, true
}

// Index is a searcher over a fixed set of segments built by Builder.
type Index struct {
	segments []*segment
}

func (ix *Index) SegmentReaders() []index.SegmentReader {
	readers := make([]index.SegmentReader, len(ix.segments))
	for i, s := range ix.segments {
		readers[i] = s
	}
	return readers
}

// DocFreq is a brute-force scan over every segment's column for field,
// counting documents whose value renders to term. It exists only to satisfy
// index.Searcher; no composer in this module calls it.
func (ix *Index) DocFreq(field, term string) (uint64, error) {
	var n uint64
	for _, s := range ix.segments {
		col, ok := s.columns[field]
		if !ok {
			continue
		}
		switch col.typ {
		case index.FieldTypeU64:
			for _, v := range col.u64 {
				if fmt.Sprint(v) == term {
					n++
				}
			}
		case index.FieldTypeI64:
			for _, v := range col.i64 {
				if fmt.Sprint(v) == term {
					n++
				}
			}
		}
	}
	return n, nil
}

func (ix *Index) NumDocs() uint64 {
	var n uint64
	for _, s := range ix.segments {
		for doc := uint32(0); doc < s.numDocs; doc++ {
			if _, dead := s.dead[doc]; !dead {
				n++
			}
		}
	}
	return n
}
