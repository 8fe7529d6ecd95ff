package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tantivygo/aggregations/agg/metric"
	"github.com/tantivygo/aggregations/agg/terms"
	"github.com/tantivygo/aggregations/agg/tuple"
	"github.com/tantivygo/aggregations/index"
	"github.com/tantivygo/aggregations/index/memindex"
	"github.com/tantivygo/aggregations/index/memindex/badgerindex"
	"github.com/tantivygo/aggregations/search"
)

func runBench(cmd *cobra.Command, args []string) error {
	shutdown, err := setupTelemetry(":9090")
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(ctx)
	}()

	cfg := badgerindex.Config{
		Docs:       flagBenchDocs,
		Categories: flagBenchCategories,
		TagsPerDoc: flagBenchTags,
		Seed:       flagBenchSeed,
	}

	fmt.Println(styles.Title.Render(fmt.Sprintf("Generating %d synthetic documents across %d categories...", cfg.Docs, cfg.Categories)))
	buildStart := time.Now()
	idx, err := badgerindex.Build(cfg)
	if err != nil {
		return fmt.Errorf("aggdemo: building badger-backed fixture: %w", err)
	}
	fmt.Println(styles.Key.Render(fmt.Sprintf("  fixture built in %s", time.Since(buildStart))))

	descriptor := terms.U64("category_id", tuple.Of3(
		metric.Count(),
		metric.SumF64("price"),
		metric.Percentile("price", flagEpsilon),
	))

	opts := search.Options{Concurrency: flagConcurrency}

	searchStart := time.Now()
	result, err := search.Run[terms.Map[uint64, categoryFruit]](
		cmd.Context(), idx, index.Query(memindex.AllQuery{}), descriptor, opts,
	)
	if err != nil {
		return fmt.Errorf("aggdemo: running search: %w", err)
	}
	elapsed := time.Since(searchStart)

	renderCategoryResult(result, flagTopK, elapsed)
	return nil
}
