package terms

import "sort"

// Map is the fruit shape of a terms composer: one sub-fruit per distinct
// key observed.
type Map[K uint64 | int64, F any] struct {
	buckets map[K]F
}

// Entry pairs a bucket's key with its sub-fruit.
type Entry[K uint64 | int64, F any] struct {
	Key   K
	Fruit F
}

// Get returns the sub-fruit for key, if any bucket was populated for it.
func (m Map[K, F]) Get(key K) (F, bool) {
	f, ok := m.buckets[key]
	return f, ok
}

// Len reports the number of distinct keys observed.
func (m Map[K, F]) Len() int { return len(m.buckets) }

// TopK returns the n entries with the highest rank, as computed by rankOf
// over each entry's sub-fruit. Ties are broken by ascending key order so
// that TopK is deterministic across runs, independent of Go's unspecified
// map iteration order.
func (m Map[K, F]) TopK(n int, rankOf func(F) float64) []Entry[K, F] {
	entries := make([]Entry[K, F], 0, len(m.buckets))
	for key, fruit := range m.buckets {
		entries = append(entries, Entry[K, F]{Key: key, Fruit: fruit})
	}
	sort.Slice(entries, func(i, j int) bool {
		ri, rj := rankOf(entries[i].Fruit), rankOf(entries[j].Fruit)
		if ri != rj {
			return ri > rj
		}
		return entries[i].Key < entries[j].Key
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
