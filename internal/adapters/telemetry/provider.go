package telemetry

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
)

// InstrumentationName is the tracer name used for pipeline spans.
const InstrumentationName = "rapp"

// OTelTelemetry is a ports.Telemetry backed by an OpenTelemetry tracer provider.
type OTelTelemetry struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
	renderer *LinearRenderer
}

// NewOTelTelemetry creates an OTelTelemetry whose spans are rendered by renderer.
// Extra span processors, such as exporters, receive the same spans.
func NewOTelTelemetry(renderer *LinearRenderer, processors ...sdktrace.SpanProcessor) *OTelTelemetry {
	opts := []sdktrace.TracerProviderOption{sdktrace.WithSpanProcessor(NewBridge(renderer))}
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	return &OTelTelemetry{
		provider: tp,
		tracer:   otel.Tracer(InstrumentationName),
		renderer: renderer,
	}
}

// Record starts a span for the stage name.
func (t *OTelTelemetry) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	ctx, span := t.tracer.Start(ctx, name)
	v := &OTelVertex{
		span:   span,
		spanID: span.SpanContext().SpanID().String(),
		render: t.renderer,
	}
	return ports.ContextWithVertex(ctx, v), v
}

// Close flushes and shuts down the tracer provider.
func (t *OTelTelemetry) Close() error {
	return t.provider.Shutdown(context.Background())
}

// OTelVertex implements ports.Vertex on top of a span.
type OTelVertex struct {
	span   trace.Span
	spanID string
	render *LinearRenderer
}

// Stdout returns a writer that renders output lines under the stage prefix.
func (v *OTelVertex) Stdout() io.Writer {
	return stageWriter{v: v}
}

// Stderr returns a writer that renders output lines under the stage prefix.
func (v *OTelVertex) Stderr() io.Writer {
	return stageWriter{v: v}
}

// Log adds a log event to the span and renders it.
func (v *OTelVertex) Log(level domain.LogLevel, msg string) {
	v.span.AddEvent("log", trace.WithAttributes(
		attribute.String("level", level.String()),
		attribute.String("message", msg),
	))
	if v.render != nil {
		v.render.OnStageLog(v.spanID, []byte(msg+"\n"))
	}
}

// Complete records err, if any, and ends the span.
func (v *OTelVertex) Complete(err error) {
	if err != nil {
		v.span.RecordError(err)
		v.span.SetStatus(codes.Error, err.Error())
	}
	v.span.End()
}

// Cached marks the span as a cache hit.
func (v *OTelVertex) Cached() {
	v.span.SetAttributes(attribute.Bool(CachedAttribute, true))
}

type stageWriter struct {
	v *OTelVertex
}

func (w stageWriter) Write(p []byte) (int, error) {
	if w.v.render != nil {
		w.v.render.OnStageLog(w.v.spanID, p)
	}
	return len(p), nil
}
