package memindex

import (
	"github.com/tantivygo/aggregations/index"
)

// AllQuery matches every document in a segment, deleted ones included;
// search.Run drops deleted documents via the segment's DeleteBitset.
type AllQuery struct{}

func (AllQuery) Weight(index.Searcher, bool) (index.Weight, error) { return allWeight{}, nil }

type allWeight struct{}

func (allWeight) Scorer(reader index.SegmentReader) (index.Scorer, error) {
	return &rangeScorer{maxDoc: reader.MaxDoc(), cur: -1}, nil
}

// rangeScorer walks every document id in [0, maxDoc) in order; it backs
// AllQuery, whose match set needs no column lookup at all.
type rangeScorer struct {
	maxDoc uint32
	cur    int64
}

func (s *rangeScorer) CurrentDoc() uint32 { return uint32(s.cur) }

func (s *rangeScorer) Advance() bool {
	s.cur++
	return uint32(s.cur) < s.maxDoc
}

func (s *rangeScorer) Score() float64 { return 1 }

func (s *rangeScorer) SkipNext(target uint32) index.SkipOutcome {
	if uint64(target) >= uint64(s.maxDoc) {
		s.cur = int64(s.maxDoc)
		return index.End
	}
	if int64(target) < s.cur {
		return index.Overstepped
	}
	s.cur = int64(target)
	return index.Reached
}

func (s *rangeScorer) ForEach(fn func(doc uint32, score float64)) {
	for d := uint32(s.cur + 1); d < s.maxDoc; d++ {
		fn(d, 1)
	}
	s.cur = int64(s.maxDoc)
}

// TermQuery matches documents whose single-valued uint64 field equals
// Value, the reference-impl counterpart of the source's
// TermQuery::new(Term::from_field_u64(...)) used to filter by category id.
type TermQuery struct {
	Field string
	Value uint64
}

func (q TermQuery) Weight(index.Searcher, bool) (index.Weight, error) {
	return termWeight{field: q.Field, value: q.Value}, nil
}

type termWeight struct {
	field string
	value uint64
}

func (w termWeight) Scorer(reader index.SegmentReader) (index.Scorer, error) {
	col, err := reader.FastFields().U64(w.field)
	if err != nil {
		return nil, err
	}
	var matches []uint32
	for d := uint32(0); d < reader.MaxDoc(); d++ {
		if col.Get(d) == w.value {
			matches = append(matches, d)
		}
	}
	return &listScorer{docs: matches, idx: -1}, nil
}

// RangeQuery matches documents whose single-valued float64 field falls in
// [Lo, Hi), the counterpart of the source's RangeQuery::new_f64.
type RangeQuery struct {
	Field  string
	Lo, Hi float64
}

func (q RangeQuery) Weight(index.Searcher, bool) (index.Weight, error) {
	return rangeWeight{field: q.Field, lo: q.Lo, hi: q.Hi}, nil
}

type rangeWeight struct {
	field  string
	lo, hi float64
}

func (w rangeWeight) Scorer(reader index.SegmentReader) (index.Scorer, error) {
	col, err := reader.FastFields().F64(w.field)
	if err != nil {
		return nil, err
	}
	var matches []uint32
	for d := uint32(0); d < reader.MaxDoc(); d++ {
		v := col.Get(d)
		if v >= w.lo && v < w.hi {
			matches = append(matches, d)
		}
	}
	return &listScorer{docs: matches, idx: -1}, nil
}

// listScorer walks a precomputed, ascending list of matching document ids.
// Brute-force match evaluation is acceptable here: memindex exists to
// exercise the aggregation composers against small, deterministic
// fixtures, not to demonstrate posting-list performance.
type listScorer struct {
	docs []uint32
	idx  int
}

func (s *listScorer) CurrentDoc() uint32 {
	if s.idx < 0 || s.idx >= len(s.docs) {
		return 0
	}
	return s.docs[s.idx]
}

func (s *listScorer) Advance() bool {
	s.idx++
	return s.idx < len(s.docs)
}

func (s *listScorer) Score() float64 { return 1 }

func (s *listScorer) SkipNext(target uint32) index.SkipOutcome {
	if s.idx < 0 {
		s.idx = 0
	}
	for s.idx < len(s.docs) && s.docs[s.idx] < target {
		s.idx++
	}
	if s.idx >= len(s.docs) {
		return index.End
	}
	if s.docs[s.idx] == target {
		return index.Reached
	}
	return index.Overstepped
}

func (s *listScorer) ForEach(fn func(doc uint32, score float64)) {
	for s.idx++; s.idx < len(s.docs); s.idx++ {
		fn(s.docs[s.idx], 1)
	}
}
