// Package sketch implements the streaming quantile summary the percentile
// metric leaf is built on; it holds no other sketch type.
//
// Description:
//
//	Sketch is a Cormode-Korn-Muthukrishnan-Srivastava (CKMS) style
//	epsilon-approximate quantile summary. It answers Query(q) for any
//	q in [0, 1] within +/- epsilon*n of the true rank, using space that
//	grows with O(1/epsilon * log(epsilon*n)) rather than with n.
//
// Thread Safety: Sketch is NOT safe for concurrent use; callers serialize
// access the same way Segment values are owned by one worker at a time.
package sketch

import "sort"

// tuple is one retained summary entry: value is an observed sample, g is
// the minimum possible rank difference from the previous retained entry,
// and delta is the maximum uncertainty in that rank.
type tuple struct {
	value float64
	g     int64
	delta int64
}

// Sketch is a mergeable, epsilon-approximate quantile summary over a
// stream of float64 values.
type Sketch struct {
	epsilon float64
	n       int64
	samples []tuple
}

// DefaultEpsilon is the approximation error used when a caller does not
// override it.
const DefaultEpsilon = 0.01

// New returns an empty Sketch with the given approximation error. epsilon
// must be in (0, 1); callers needing validation should check this at
// construction time via internal/validate.
func New(epsilon float64) *Sketch {
	if epsilon <= 0 || epsilon >= 1 {
		epsilon = DefaultEpsilon
	}
	return &Sketch{epsilon: epsilon}
}

// Len reports how many values have been inserted (including merged-in
// values), not the number of retained samples.
func (s *Sketch) Len() int64 { return s.n }

// SampleCount reports the number of retained summary tuples, a proxy for
// the sketch's memory footprint.
func (s *Sketch) SampleCount() int { return len(s.samples) }

// Insert records one observation.
func (s *Sketch) Insert(v float64) {
	i := sort.Search(len(s.samples), func(i int) bool { return s.samples[i].value >= v })

	var g int64 = 1
	var delta int64
	if i == 0 || i == len(s.samples) {
		// New minimum or maximum: known exactly.
		delta = 0
	} else {
		delta = s.invariant(i) - 1
		if delta < 0 {
			delta = 0
		}
	}

	s.samples = append(s.samples, tuple{})
	copy(s.samples[i+1:], s.samples[i:])
	s.samples[i] = tuple{value: v, g: g, delta: delta}
	s.n++

	if s.n%int64(1.0/s.epsilon) == 0 {
		s.compress()
	}
}

// invariant returns the maximum allowed (g+delta) band width at position i
// for the current stream size, per the CKMS uniform-quantile invariant
// f(r) = 2*epsilon*n.
func (s *Sketch) invariant(i int) int64 {
	band := int64(2 * s.epsilon * float64(s.n))
	if band < 1 {
		band = 1
	}
	return band
}

// compress merges adjacent tuples that can be combined without the
// combined band exceeding the invariant, bounding the sketch's size.
func (s *Sketch) compress() {
	if len(s.samples) < 3 {
		return
	}
	band := s.invariant(len(s.samples))
	out := make([]tuple, 0, len(s.samples))
	out = append(out, s.samples[0])
	for i := 1; i < len(s.samples)-1; i++ {
		prev := &out[len(out)-1]
		cur := s.samples[i]
		if prev.g+cur.g+cur.delta <= band {
			prev.g += cur.g
			continue
		}
		out = append(out, cur)
	}
	out = append(out, s.samples[len(s.samples)-1])
	s.samples = out
}

// Query returns the approximate rank and value at quantile q (0 <= q <= 1).
// The returned rank is 1-based: Query(0) returns the minimum with rank 1.
func (s *Sketch) Query(q float64) (rank int64, value float64) {
	if len(s.samples) == 0 {
		return 0, 0
	}
	if q <= 0 {
		return 1, s.samples[0].value
	}
	if q >= 1 {
		last := s.samples[len(s.samples)-1]
		return s.n, last.value
	}

	target := int64(q * float64(s.n))
	band := int64(s.epsilon * float64(s.n))

	var r int64
	for i, t := range s.samples {
		r += t.g
		if r+t.delta > target+band {
			if i == 0 {
				return r, t.value
			}
			return r, t.value
		}
	}
	last := s.samples[len(s.samples)-1]
	return s.n, last.value
}

// Merge folds src into s by re-inserting every value src currently retains
// as a summary tuple. This mirrors the merge strategy of re-inserting a
// source sketch's compressed samples into the destination one value at a
// time rather than carrying over retained (g, delta) weights, trading a
// small amount of extra approximation error for a simple, clearly
// commutative-in-effect merge.
func (s *Sketch) Merge(src *Sketch) {
	if src == nil {
		return
	}
	for _, t := range src.samples {
		s.Insert(t.value)
	}
	// Retained samples undercount src's true observation count once
	// compress() has run; true the total back up so Len() stays accurate
	// even though individual compressed duplicates are no longer
	// distinguishable.
	if extra := src.n - int64(len(src.samples)); extra > 0 {
		s.n += extra
	}
}

// Values returns the values of all retained samples in ascending order,
// for tests and for merge.
func (s *Sketch) Values() []float64 {
	out := make([]float64, len(s.samples))
	for i, t := range s.samples {
		out[i] = t.value
	}
	return out
}
