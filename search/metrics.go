package search

import (
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("aggregations.search")
	meter  = otel.Meter("aggregations.search")
)

// instruments holds this package's lazily-initialized OpenTelemetry
// instruments, following this codebase's own DAG executor's
// sync.Once-guarded metric setup so Run never panics if the otel SDK
// hasn't been configured by the caller.
type instruments struct {
	once              sync.Once
	segmentDuration   metric.Float64Histogram
	documentsCollect  metric.Int64Counter
	activeSegWorkers  metric.Int64UpDownCounter
}

var instr instruments

func (i *instruments) init(logger *slog.Logger) {
	i.once.Do(func() {
		var errs []string
		var err error

		i.segmentDuration, err = meter.Float64Histogram("search_segment_duration_seconds",
			metric.WithDescription("Time spent collecting one segment"),
			metric.WithUnit("s"),
		)
		if err != nil {
			errs = append(errs, "segment_duration: "+err.Error())
		}

		i.documentsCollect, err = meter.Int64Counter("search_documents_collected_total",
			metric.WithDescription("Total matched, non-deleted documents collected"),
		)
		if err != nil {
			errs = append(errs, "documents_collected: "+err.Error())
		}

		i.activeSegWorkers, err = meter.Int64UpDownCounter("search_active_segment_workers",
			metric.WithDescription("Number of segment workers currently collecting"),
		)
		if err != nil {
			errs = append(errs, "active_segment_workers: "+err.Error())
		}

		if len(errs) > 0 {
			logger.Error("failed to initialize some search metrics (observability degraded)",
				slog.Any("errors", errs))
		}
	})
}
