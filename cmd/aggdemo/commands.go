package main

import (
	"github.com/spf13/cobra"
)

var (
	flagFixture     string
	flagConcurrency int
	flagTopK        int
	flagEpsilon     float64
	flagTUI         bool

	flagBenchDocs       int
	flagBenchCategories int
	flagBenchTags       int
	flagBenchSeed       int64
)

var rootCmd = &cobra.Command{
	Use:   "aggdemo",
	Short: "Explore the aggregation engine against reference fixtures",
	Long: "aggdemo builds one of the module's in-memory reference fixtures, composes\n" +
		"an aggregator tree over it, runs it through search.Run, and renders the\n" +
		"merged result.",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a terms-by-category aggregation over a product fixture",
	RunE:  runRun,
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the same aggregation over a badger-backed synthetic fixture",
	RunE:  runBench,
}

func init() {
	runCmd.Flags().StringVar(&flagFixture, "fixture", "single", "fixture to use: single, segmented, or tagged")
	runCmd.Flags().IntVar(&flagConcurrency, "concurrency", 1, "segment fan-out concurrency (<=1 runs sequentially)")
	runCmd.Flags().IntVar(&flagTopK, "top", 5, "number of top categories to display")
	runCmd.Flags().Float64Var(&flagEpsilon, "epsilon", 0, "percentile sketch approximation error (0 = library default)")
	runCmd.Flags().BoolVar(&flagTUI, "tui", false, "display the result in a full-screen scrollable viewport instead of stdout")

	benchCmd.Flags().IntVar(&flagBenchDocs, "docs", 100_000, "number of synthetic documents to generate")
	benchCmd.Flags().IntVar(&flagBenchCategories, "categories", 500, "number of distinct category ids")
	benchCmd.Flags().IntVar(&flagBenchTags, "tags-per-doc", 3, "tag_ids values per document")
	benchCmd.Flags().Int64Var(&flagBenchSeed, "seed", 1, "random seed for fixture generation")
	benchCmd.Flags().IntVar(&flagConcurrency, "concurrency", 1, "segment fan-out concurrency (<=1 runs sequentially)")
	benchCmd.Flags().IntVar(&flagTopK, "top", 5, "number of top categories to display")

	rootCmd.AddCommand(runCmd, benchCmd)
}
