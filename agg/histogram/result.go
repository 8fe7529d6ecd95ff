package histogram

import "sort"

// Result is the fruit shape of a histogram composer: a sparse map from
// bucket ordinal to sub-fruit, plus enough context to translate ordinals
// back into the column's value space on read.
type Result[F any] struct {
	start    float64
	interval float64
	buckets  map[int64]F
}

// Bucket pairs a bucket's lower bound with its sub-fruit. Gaps between
// populated buckets are reported with Present == false, matching the
// original's Option<&T> gap markers.
type Bucket[F any] struct {
	LowerBound float64
	Fruit      F
	Present    bool
}

// Buckets walks every populated bucket ordinal in ascending order, filling
// any gap between consecutive populated ordinals with absent entries so the
// result reads as a contiguous histogram.
func (r Result[F]) Buckets() []Bucket[F] {
	if len(r.buckets) == 0 {
		return nil
	}
	ords := make([]int64, 0, len(r.buckets))
	for ord := range r.buckets {
		ords = append(ords, ord)
	}
	sort.Slice(ords, func(i, j int) bool { return ords[i] < ords[j] })

	res := make([]Bucket[F], 0, len(ords))
	last := ords[0]
	for _, ord := range ords {
		gap := ord - last
		for i := int64(0); i < gap-1; i++ {
			fillOrd := last + i + 1
			res = append(res, Bucket[F]{LowerBound: float64(fillOrd)*r.interval + r.start})
		}
		res = append(res, Bucket[F]{
			LowerBound: float64(ord)*r.interval + r.start,
			Fruit:      r.buckets[ord],
			Present:    true,
		})
		last = ord
	}
	return res
}
