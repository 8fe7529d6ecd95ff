// Package index declares the capabilities this module requires from a host
// inverted-index / columnar-storage library. Nothing in agg, search or the
// composer packages depends on a concrete index implementation; they only
// ever see these interfaces. index/memindex provides a complete in-memory
// implementation used by this repository's own tests and demo.
package index


// Searcher is the top-level, index-wide handle a Descriptor binds against.
type Searcher interface {
	// SegmentReaders returns one reader per segment, in a stable order that
	// is assigned as each reader's ordinal.
	SegmentReaders() []SegmentReader
	// DocFreq returns the number of documents containing term in field.
	DocFreq(field, term string) (uint64, error)
	// NumDocs returns the total number of live documents across all segments.
	NumDocs() uint64
}

// SegmentReader exposes one segment's column storage, schema and deletions.
type SegmentReader interface {
	// FastFields returns the column-reader factory for this segment.
	FastFields() FastFieldReaders
	// Schema returns the field names and types known to this segment.
	Schema() Schema
	// DeleteBitset returns the segment's tombstone set, or (nil, false) if
	// the segment has no deleted documents.
	DeleteBitset() (DeleteBitset, bool)
	// MaxDoc returns one past the highest document id in this segment.
	MaxDoc() uint32
}

// DeleteBitset reports whether a document is live.
type DeleteBitset interface {
	IsAlive(doc uint32) bool
}

// Schema resolves field names to their declared type.
type Schema interface {
	FieldType(name string) (FieldType, bool)
}

// FieldType enumerates the fast-field value types this module understands.
type FieldType int

const (
	FieldTypeUnknown FieldType = iota
	FieldTypeU64
	FieldTypeI64
	FieldTypeF64
	FieldTypeTimestamp
	FieldTypeU64s
	FieldTypeI64s
	FieldTypeF64s
	FieldTypeTimestamps
)

// FastFieldReaders is the per-segment factory for typed column readers.
// Each accessor returns an error if the named field is not a fast field of
// the requested type in this segment.
type FastFieldReaders interface {
	U64(field string) (U64Reader, error)
	I64(field string) (I64Reader, error)
	F64(field string) (F64Reader, error)
	Timestamp(field string) (TimestampReader, error)

	U64s(field string) (U64sReader, error)
	I64s(field string) (I64sReader, error)
	F64s(field string) (F64sReader, error)
	Timestamps(field string) (TimestampsReader, error)
}

// U64Reader is a single-valued, random-access uint64 column reader.
type U64Reader interface {
	Get(doc uint32) uint64
}

// I64Reader is a single-valued, random-access int64 column reader.
type I64Reader interface {
	Get(doc uint32) int64
}

// F64Reader is a single-valued, random-access float64 column reader.
type F64Reader interface {
	Get(doc uint32) float64
}

// TimestampReader is a single-valued, random-access time.Time column reader,
// expressed as Unix nanoseconds so comparisons stay allocation-free.
type TimestampReader interface {
	Get(doc uint32) int64
}

// U64sReader is a multi-valued uint64 column reader. GetInto appends doc's
// values to scratch and returns the extended slice, letting callers reuse a
// scratch buffer across documents.
type U64sReader interface {
	GetInto(doc uint32, scratch []uint64) []uint64
}

// I64sReader is a multi-valued int64 column reader.
type I64sReader interface {
	GetInto(doc uint32, scratch []int64) []int64
}

// F64sReader is a multi-valued float64 column reader.
type F64sReader interface {
	GetInto(doc uint32, scratch []float64) []float64
}

// TimestampsReader is a multi-valued timestamp column reader (Unix nanoseconds).
type TimestampsReader interface {
	GetInto(doc uint32, scratch []int64) []int64
}

// Query compiles against a Searcher into a Weight. scoring reports whether
// the caller needs real relevance scores; a query may skip score
// computation entirely when it is false.
type Query interface {
	Weight(searcher Searcher, scoring bool) (Weight, error)
}

// Weight is a Query bound to a Searcher; it opens a Scorer per segment.
type Weight interface {
	Scorer(reader SegmentReader) (Scorer, error)
}

// SkipOutcome is the three-way result of Scorer.SkipNext, matching the
// monotonic skip-cursor protocol the filter composer relies on.
type SkipOutcome int

const (
	// Reached means the scorer landed exactly on the requested document.
	Reached SkipOutcome = iota
	// Overstepped means the scorer advanced past the requested document
	// without ever matching it; CurrentDoc now reports the next match.
	Overstepped
	// End means no further matches exist in this segment.
	End
)

// Scorer is a cursor over the documents a Query matched within one segment,
// yielding ascending document ids and their relevance scores.
type Scorer interface {
	// CurrentDoc returns the document id the cursor currently sits on.
	CurrentDoc() uint32
	// Advance moves to the next matching document, reporting false once
	// the segment is exhausted.
	Advance() bool
	// Score returns the relevance score of the current document.
	Score() float64
	// SkipNext advances the cursor to the first matching document with id
	// >= target.
	SkipNext(target uint32) SkipOutcome
	// ForEach invokes fn for every remaining matching document in
	// ascending order.
	ForEach(fn func(doc uint32, score float64))
}
