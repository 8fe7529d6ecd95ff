package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// setupTelemetry installs a stdout span exporter and a Prometheus metrics
// exporter as the process-global OpenTelemetry providers, mirroring the
// provider-injection shape this codebase's eval sink accepts — but wired
// to concrete exporters here since aggdemo has no caller to inject one.
// It serves /metrics on addr and returns a shutdown func; an empty addr
// skips the Prometheus HTTP server (metrics are still recorded, just not
// served).
func setupTelemetry(addr string) (shutdown func(context.Context) error, err error) {
	traceExporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("aggdemo: creating stdout trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)

	reader, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("aggdemo: creating prometheus metric reader: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(mp)

	var server *http.Server
	if addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server = &http.Server{Addr: addr, Handler: mux}
		go func() {
			_ = server.ListenAndServe()
		}()
	}

	return func(ctx context.Context) error {
		if server != nil {
			_ = server.Shutdown(ctx)
		}
		if err := tp.Shutdown(ctx); err != nil {
			return err
		}
		return mp.Shutdown(ctx)
	}, nil
}
