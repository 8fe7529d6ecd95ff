// Package search drives one aggregator tree to completion over a Searcher:
// it prepares the tree once, fans out per-segment collection either
// sequentially or through a bounded worker pool, and folds every segment's
// fruit into one result via the tree's own commutative, associative merge.
package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/tantivygo/aggregations/agg"
	"github.com/tantivygo/aggregations/index"
	"github.com/tantivygo/aggregations/internal/concurrency"
	"github.com/tantivygo/aggregations/internal/obslog"
)

// Run executes descriptor's aggregator tree over every document query
// matches in searcher, returning the merged fruit. ctx cancellation is
// checked at each segment boundary: a cancelled context aborts before the
// next segment's collection starts, but never interrupts a segment already
// in flight.
func Run[F any](ctx context.Context, searcher index.Searcher, query index.Query, descriptor agg.Descriptor[F], opts Options) (F, error) {
	var zero F

	if err := opts.validateOptions(); err != nil {
		return zero, err
	}

	correlationID := uuid.NewString()
	logger := obslog.Default("search").With(slog.String("search_id", correlationID))
	instr.init(logger.Logger)

	ctx, span := tracer.Start(ctx, "search.Run",
		trace.WithAttributes(
			attribute.String("search.id", correlationID),
			attribute.Bool("search.threaded", opts.threaded()),
			attribute.Int("search.concurrency", opts.Concurrency),
		),
	)
	defer span.End()

	start := time.Now()
	logger.Info("search started")

	weight, err := query.Weight(searcher, descriptor.RequiresScoring())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return zero, &agg.QueryCompileError{Err: err}
	}

	prepared, err := descriptor.Prepare(searcher)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return zero, err
	}

	readers := searcher.SegmentReaders()

	var harvest F
	if opts.threaded() {
		harvest, err = runThreaded(ctx, prepared, weight, readers, opts.Concurrency, logger)
	} else {
		harvest, err = runSequential(ctx, prepared, weight, readers, logger)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("search failed", slog.String("error", err.Error()))
		return zero, err
	}

	span.SetStatus(codes.Ok, "")
	logger.Info("search completed", slog.Duration("duration", time.Since(start)))
	return harvest, nil
}

func runSequential[F any](ctx context.Context, prepared agg.Prepared[F], weight index.Weight, readers []index.SegmentReader, logger *obslog.Logger) (F, error) {
	harvest := prepared.CreateFruit()
	for ord, reader := range readers {
		if err := ctx.Err(); err != nil {
			return harvest, err
		}
		fruit, err := collectSegment(ctx, prepared, weight, ord, reader, logger)
		if err != nil {
			return harvest, err
		}
		prepared.Merge(&harvest, fruit)
	}
	return harvest, nil
}

func runThreaded[F any](ctx context.Context, prepared agg.Prepared[F], weight index.Weight, readers []index.SegmentReader, concurrencyLimit int, logger *obslog.Logger) (F, error) {
	sem := concurrency.NewSemaphore(concurrencyLimit)
	fruits := make([]F, len(readers))

	g, gctx := errgroup.WithContext(ctx)
	for ord, reader := range readers {
		ord, reader := ord, reader
		g.Go(func() error {
			if err := sem.Acquire(gctx); err != nil {
				return err
			}
			defer sem.Release()
			if err := gctx.Err(); err != nil {
				return err
			}

			if instr.activeSegWorkers != nil {
				instr.activeSegWorkers.Add(gctx, 1)
				defer instr.activeSegWorkers.Add(gctx, -1)
			}

			fruit, err := collectSegment(gctx, prepared, weight, ord, reader, logger)
			if err != nil {
				return err
			}
			fruits[ord] = fruit
			return nil
		})
	}

	var zero F
	if err := g.Wait(); err != nil {
		return zero, err
	}

	harvest := prepared.CreateFruit()
	for _, fruit := range fruits {
		prepared.Merge(&harvest, fruit)
	}
	return harvest, nil
}

func collectSegment[F any](ctx context.Context, prepared agg.Prepared[F], weight index.Weight, ord int, reader index.SegmentReader, logger *obslog.Logger) (F, error) {
	var zero F
	start := time.Now()

	scorer, err := weight.Scorer(reader)
	if err != nil {
		return zero, &agg.ReaderError{Op: "opening segment scorer", Err: err}
	}

	segCtx := agg.SegmentContext{SegmentOrdinal: ord, Reader: reader, Scorer: scorer}
	segment, err := prepared.ForSegment(segCtx)
	if err != nil {
		return zero, err
	}

	fruit := prepared.CreateFruit()
	dead, hasDeletes := reader.DeleteBitset()

	var collected int64
	collect := func(doc uint32, score float64) {
		if hasDeletes && !dead.IsAlive(doc) {
			return
		}
		segment.Collect(doc, score, &fruit)
		collected++
	}
	scorer.ForEach(collect)

	if instr.segmentDuration != nil {
		instr.segmentDuration.Record(ctx, time.Since(start).Seconds())
	}
	if instr.documentsCollect != nil {
		instr.documentsCollect.Add(ctx, collected)
	}
	logger.Debug("segment collected",
		slog.Int("segment_ordinal", ord),
		slog.Int64("documents", collected),
		slog.Duration("duration", time.Since(start)),
	)

	return fruit, nil
}
