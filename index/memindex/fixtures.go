package memindex

import "github.com/tantivygo/aggregations/index"

// ProductFixture builds the 5-row product index used throughout this
// repository's scenario tests, grounded on the original's
// ProductSchema/index_test_products fixture: two fields, category_id
// (single-valued uint64) and price (single-valued float64), one segment.
//
//	doc  category_id  price
//	0    1            9.99
//	1    1            10.0
//	2    2            0.5
//	3    2            50.0
//	4    2            100.01
func ProductFixture() *Index {
	b := NewBuilder(map[string]index.FieldType{
		"category_id": index.FieldTypeU64,
		"price":       index.FieldTypeF64,
	})
	rows := []struct {
		category uint64
		price    float64
	}{
		{1, 9.99},
		{1, 10},
		{2, 0.5},
		{2, 50},
		{2, 100.01},
	}
	for _, r := range rows {
		b.AddDoc(Doc{"category_id": r.category, "price": r.price})
	}
	return b.Build()
}

// ProductFixtureSegments is ProductFixture split across three segments (two
// products, two products, one product), used to exercise this module's
// per-segment fan-out and merge path rather than a single linear scan.
func ProductFixtureSegments() *Index {
	b := NewBuilder(map[string]index.FieldType{
		"category_id": index.FieldTypeU64,
		"price":       index.FieldTypeF64,
	})
	b.AddDoc(Doc{"category_id": uint64(1), "price": 9.99})
	b.AddDoc(Doc{"category_id": uint64(1), "price": 10.0})
	b.Commit()
	b.AddDoc(Doc{"category_id": uint64(2), "price": 0.5})
	b.AddDoc(Doc{"category_id": uint64(2), "price": 50.0})
	b.Commit()
	b.AddDoc(Doc{"category_id": uint64(2), "price": 100.01})
	return b.Build()
}

// TaggedFixture extends the product fixture with a multi-valued tag_ids
// uint64 field over the same five rows, for the multi-valued test coverage
// spec.md's scenario table doesn't itself enumerate.
//
//	doc  category_id  price    tag_ids
//	0    1            9.99     [111, 211]
//	1    1            10.0     [111, 211, 311]
//	2    2            0.5      [211]
//	3    2            50.0     [211, 320]
//	4    2            100.01   [311, 320]
func TaggedFixture() *Index {
	b := NewBuilder(map[string]index.FieldType{
		"category_id": index.FieldTypeU64,
		"price":       index.FieldTypeF64,
		"tag_ids":     index.FieldTypeU64s,
	})
	rows := []struct {
		category uint64
		price    float64
		tags     []uint64
	}{
		{1, 9.99, []uint64{111, 211}},
		{1, 10.0, []uint64{111, 211, 311}},
		{2, 0.5, []uint64{211}},
		{2, 50.0, []uint64{211, 320}},
		{2, 100.01, []uint64{311, 320}},
	}
	for _, r := range rows {
		b.AddDoc(Doc{"category_id": r.category, "price": r.price, "tag_ids": r.tags})
	}
	return b.Build()
}
