// Package telemetry exports game session traces over OTLP. Tracing is
// opt-in: it activates only when OTEL_EXPORTER_OTLP_ENDPOINT is set, and
// every method is safe to call on a nil *Exporter.
package telemetry

import (
	"context"
	"os"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Exporter traces one game session at a time: a span per game with an event
// per move.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer

	gameCtx  context.Context
	gameSpan oteltrace.Span
}

// NewExporter creates an exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil (and no error) when tracing is disabled.
func NewExporter(ctx context.Context) (*Exporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "freecell"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Exporter{
		provider: provider,
		tracer:   provider.Tracer("freecell/game"),
	}, nil
}

// StartGame opens a span for a new deal, ending any span still open.
func (e *Exporter) StartGame(ctx context.Context, seed uint64) {
	if e == nil {
		return
	}
	if e.gameSpan != nil {
		e.gameSpan.End()
	}
	e.gameCtx, e.gameSpan = e.tracer.Start(ctx, "game",
		oteltrace.WithAttributes(
			attribute.String("freecell.seed", strconv.FormatUint(seed, 10)),
		))
}

// RecordMove adds a move event to the current game span.
func (e *Exporter) RecordMove(kind, target string) {
	if e == nil || e.gameSpan == nil {
		return
	}
	e.gameSpan.AddEvent("move",
		oteltrace.WithAttributes(
			attribute.String("freecell.move.kind", kind),
			attribute.String("freecell.move.target", target),
		))
}

// EndGame closes the current game span with the outcome.
func (e *Exporter) EndGame(won bool) {
	if e == nil || e.gameSpan == nil {
		return
	}
	e.gameSpan.SetAttributes(attribute.Bool("freecell.won", won))
	e.gameSpan.End()
	e.gameSpan = nil
	e.gameCtx = nil
}

// Shutdown ends any open span and flushes the exporter.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	if e.gameSpan != nil {
		e.gameSpan.End()
		e.gameSpan = nil
	}
	return e.provider.Shutdown(ctx)
}
