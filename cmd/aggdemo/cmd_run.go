package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/tantivygo/aggregations/agg/metric"
	"github.com/tantivygo/aggregations/agg/terms"
	"github.com/tantivygo/aggregations/agg/tuple"
	"github.com/tantivygo/aggregations/index"
	"github.com/tantivygo/aggregations/index/memindex"
	"github.com/tantivygo/aggregations/search"
)

// categoryFruit is the per-category aggregate this command composes: a
// matched-document count, the summed price, and a price percentile
// sketch, bucketed by category_id.
type categoryFruit = tuple.Fruit3[uint64, metric.Sum[float64], metric.Percentiles]

func buildFixture(name string) (*memindex.Index, error) {
	switch name {
	case "single":
		return memindex.ProductFixture(), nil
	case "segmented":
		return memindex.ProductFixtureSegments(), nil
	case "tagged":
		return memindex.TaggedFixture(), nil
	default:
		return nil, fmt.Errorf("unknown fixture %q (want single, segmented, or tagged)", name)
	}
}

func chooseFixtureInteractively(current string) string {
	if !interactive() {
		return current
	}
	selected := current
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Pick a reference fixture").
			Options(
				huh.NewOption("single segment, 5 products", "single"),
				huh.NewOption("same 5 products across 3 segments", "segmented"),
				huh.NewOption("5 products with multi-valued tag_ids", "tagged"),
			).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return current
	}
	return selected
}

func runRun(cmd *cobra.Command, args []string) error {
	fixtureName := chooseFixtureInteractively(flagFixture)

	idx, err := buildFixture(fixtureName)
	if err != nil {
		return err
	}

	descriptor := terms.U64("category_id", tuple.Of3(
		metric.Count(),
		metric.SumF64("price"),
		metric.Percentile("price", flagEpsilon),
	))

	opts := search.Options{Concurrency: flagConcurrency, PercentileEpsilon: flagEpsilon}

	start := time.Now()
	result, err := search.Run[terms.Map[uint64, categoryFruit]](
		cmd.Context(), idx, index.Query(memindex.AllQuery{}), descriptor, opts,
	)
	if err != nil {
		return fmt.Errorf("aggdemo: running search: %w", err)
	}
	elapsed := time.Since(start)

	if flagTUI && interactive() {
		return runResultTUI(fmt.Sprintf("%s fixture, concurrency=%d", fixtureName, flagConcurrency), formatCategoryResult(result, flagTopK, elapsed))
	}
	renderCategoryResult(result, flagTopK, elapsed)
	return nil
}

func renderCategoryResult(result terms.Map[uint64, categoryFruit], topK int, elapsed time.Duration) {
	fmt.Println(formatCategoryResult(result, topK, elapsed))
}

// formatCategoryResult renders the same content renderCategoryResult prints,
// but as a string — shared by the plain-stdout path and the full-screen
// bubbletea viewport in tui.go.
func formatCategoryResult(result terms.Map[uint64, categoryFruit], topK int, elapsed time.Duration) string {
	top := result.TopK(topK, func(f categoryFruit) float64 { return float64(f.V1) })

	var b strings.Builder
	b.WriteString(styles.Title.Render(fmt.Sprintf("Top %d categories (of %d), collected in %s", len(top), result.Len(), elapsed)))
	for _, entry := range top {
		sum, sumValid, overflowed := entry.Fruit.V2.Get()
		_, p50, p50ok := entry.Fruit.V3.Query(0.5)
		fmt.Fprintf(&b, "\n  %s%s  %s%d  %s%s  %s%s",
			styles.Key.Render("category_id="), styles.Value.Render(fmt.Sprint(entry.Key)),
			styles.Key.Render("count="), entry.Fruit.V1,
			styles.Key.Render("price_sum="), formatSum(sum, sumValid, overflowed),
			styles.Key.Render("p50_price="), formatPercentile(p50, p50ok))
	}
	return b.String()
}

func formatSum(v float64, valid, overflowed bool) string {
	if !valid {
		return "n/a"
	}
	if overflowed {
		return fmt.Sprintf("%.2f (overflowed)", v)
	}
	return fmt.Sprintf("%.2f", v)
}

func formatPercentile(v float64, ok bool) string {
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}
