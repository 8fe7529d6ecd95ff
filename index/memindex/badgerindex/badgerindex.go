// Package badgerindex builds a benchmark-scale fixture index backed by
// github.com/dgraph-io/badger/v4, standing in for a segment's on-disk
// sorted columnar blocks. It exists only for this repository's benchmark
// harness: every core aggregation package only ever sees the index
// interfaces, never this package, and memindex.ProductFixture/TaggedFixture
// remain the fixtures used by correctness tests.
package badgerindex

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	"github.com/dgraph-io/badger/v4"

	"github.com/tantivygo/aggregations/index"
	"github.com/tantivygo/aggregations/index/memindex"
)

// Config controls how a benchmark fixture is generated and stored.
type Config struct {
	// Docs is the number of synthetic documents to generate.
	Docs int
	// Categories bounds the category_id value range [0, Categories).
	Categories int
	// TagsPerDoc is how many tag_ids values each document gets.
	TagsPerDoc int
	// Seed makes generation reproducible across runs.
	Seed int64
}

// DefaultConfig returns a moderate-scale fixture configuration suitable for
// local benchmarking.
func DefaultConfig() Config {
	return Config{Docs: 100_000, Categories: 500, TagsPerDoc: 3, Seed: 1}
}

func keyFor(doc int, column string) []byte {
	return []byte(fmt.Sprintf("doc:%010d:%s", doc, column))
}

// Build generates cfg.Docs synthetic product rows, writes them into a
// fresh in-memory badger instance in arbitrary order, then replays them
// back out via badger's sorted key iteration — exercising the same
// sorted-iteration-over-columnar-storage shape a real segment's on-disk
// fast fields present — to assemble a memindex.Index. The badger instance
// is closed before Build returns; nothing about the returned Index
// depends on it remaining open.
func Build(cfg Config) (*memindex.Index, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badgerindex: opening in-memory db: %w", err)
	}
	defer db.Close()

	rng := rand.New(rand.NewSource(cfg.Seed))

	if err := db.Update(func(txn *badger.Txn) error {
		for d := 0; d < cfg.Docs; d++ {
			category := uint64(rng.Intn(cfg.Categories))
			price := rng.Float64() * 1000

			if err := txn.Set(keyFor(d, "category_id"), encodeU64(category)); err != nil {
				return err
			}
			if err := txn.Set(keyFor(d, "price"), encodeF64(price)); err != nil {
				return err
			}
			tags := make([]byte, 0, cfg.TagsPerDoc*8)
			for t := 0; t < cfg.TagsPerDoc; t++ {
				tags = encodeU64Append(tags, uint64(rng.Intn(cfg.Categories*4)))
			}
			if err := txn.Set(keyFor(d, "tag_ids"), tags); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("badgerindex: writing fixture: %w", err)
	}

	b := memindex.NewBuilder(map[string]index.FieldType{
		"category_id": index.FieldTypeU64,
		"price":       index.FieldTypeF64,
		"tag_ids":     index.FieldTypeU64s,
	})

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		doc := memindex.Doc{}
		docNum := -1
		flush := func() {
			if docNum >= 0 {
				b.AddDoc(doc)
			}
		}
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			var n int
			var col string
			if _, err := fmt.Sscanf(string(item.Key()), "doc:%010d:%s", &n, &col); err != nil {
				continue
			}
			if n != docNum {
				flush()
				doc = memindex.Doc{}
				docNum = n
			}
			if err := item.Value(func(val []byte) error {
				switch col {
				case "category_id":
					doc["category_id"] = decodeU64(val)
				case "price":
					doc["price"] = decodeF64(val)
				case "tag_ids":
					doc["tag_ids"] = decodeU64Slice(val)
				}
				return nil
			}); err != nil {
				return err
			}
		}
		flush()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badgerindex: replaying fixture: %w", err)
	}

	return b.Build(), nil
}

func encodeU64(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

func decodeU64(buf []byte) uint64 { return binary.BigEndian.Uint64(buf) }

func encodeF64(v float64) []byte { return encodeU64(math.Float64bits(v)) }

func decodeF64(buf []byte) float64 { return math.Float64frombits(decodeU64(buf)) }

func encodeU64Append(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

func decodeU64Slice(buf []byte) []uint64 {
	out := make([]uint64, 0, len(buf)/8)
	for i := 0; i+8 <= len(buf); i += 8 {
		out = append(out, binary.BigEndian.Uint64(buf[i:i+8]))
	}
	return out
}
