package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/rapp/internal/adapters/shell"
	"go.trai.ch/rapp/internal/adapters/telemetry"
	"go.trai.ch/rapp/internal/adapters/telemetry/progrock"
	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
	"go.trai.ch/rapp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRenderer(t *testing.T) (*telemetry.LinearRenderer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	return telemetry.NewLinearRenderer(&buf), &buf
}

func TestLinearRenderer_StageLifecycle(t *testing.T) {
	r, buf := newRenderer(t)
	start := time.Now()

	r.OnStageStart("span1", "viewer", start)
	r.OnStageLog("span1", []byte("Compiling foo\nCompil"))
	r.OnStageLog("span1", []byte("ing runner\n"))
	r.OnStageLog("span1", []byte("tail"))
	r.OnStageComplete("span1", start.Add(1500*time.Millisecond), nil, false)

	assert.Equal(t,
		"[viewer] started\n"+
			"[viewer] Compiling foo\n"+
			"[viewer] Compiling runner\n"+
			"[viewer] tail\n"+
			"[viewer] ✓ done in 1.5s\n",
		buf.String())
}

func TestLinearRenderer_CachedAndFailed(t *testing.T) {
	r, buf := newRenderer(t)
	start := time.Now()

	r.OnStageStart("a", "config", start)
	r.OnStageComplete("a", start, nil, true)

	r.OnStageStart("b", "launch", start)
	r.OnStageComplete("b", start.Add(time.Second), errors.New("viewer binary not found"), false)

	assert.Equal(t,
		"[config] started\n"+
			"[config] ~ cached\n"+
			"[launch] started\n"+
			"[launch] ✗ failed after 1s: viewer binary not found\n",
		buf.String())
}

func TestLinearRenderer_UnknownSpanIgnored(t *testing.T) {
	r, buf := newRenderer(t)

	r.OnStageLog("nope", []byte("lost\n"))
	r.OnStageComplete("nope", time.Now(), nil, false)

	assert.Empty(t, buf.String())
}

func TestBridge_WithNilRenderer(_ *testing.T) {
	bridge := telemetry.NewBridge(nil)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	_, span := tp.Tracer("test").Start(context.Background(), "test-span")
	span.End()
}

func TestBridge_ForwardsSpans(t *testing.T) {
	r, buf := newRenderer(t)
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(r)))
	tracer := tp.Tracer("test")

	_, cachedSpan := tracer.Start(context.Background(), "config")
	cachedSpan.SetAttributes(attribute.Bool(telemetry.CachedAttribute, true))
	cachedSpan.End()

	_, failed := tracer.Start(context.Background(), "viewer")
	failed.SetStatus(codes.Error, "")
	failed.End()

	out := buf.String()
	assert.Contains(t, out, "[config] started\n")
	assert.Contains(t, out, "[config] ~ cached\n")
	assert.Contains(t, out, "[viewer] ✗ failed after")
	assert.Contains(t, out, "stage failed")
}

func TestOTelTelemetry_Record(t *testing.T) {
	r, buf := newRenderer(t)
	sr := tracetest.NewSpanRecorder()
	tel := telemetry.NewOTelTelemetry(r, sr)

	ctx, vertex := tel.Record(context.Background(), domain.StageViewer)
	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, _ = vertex.Stdout().Write([]byte("Compiling foo\n"))
	_, _ = vertex.Stderr().Write([]byte("warning: unused\n"))
	vertex.Log(domain.LogLevelInfo, "regenerating viewer")
	vertex.Complete(errors.New("build did not produce the viewer binary"))

	_, cached := tel.Record(context.Background(), domain.StageConfig)
	cached.Cached()
	cached.Complete(nil)

	require.NoError(t, tel.Close())

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, domain.StageViewer, spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, domain.StageConfig, spans[1].Name())
	assert.Contains(t, spans[1].Attributes(), attribute.Bool(telemetry.CachedAttribute, true))

	var logEvents int
	for _, ev := range spans[0].Events() {
		if ev.Name == "log" {
			logEvents++
		}
	}
	assert.Equal(t, 1, logEvents)

	out := buf.String()
	assert.Contains(t, out, "[viewer] Compiling foo\n")
	assert.Contains(t, out, "[viewer] warning: unused\n")
	assert.Contains(t, out, "[viewer] regenerating viewer\n")
	assert.Contains(t, out, "[viewer] ✗ failed after")
	assert.Contains(t, out, "[config] ~ cached\n")
}

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()
	ctx := context.Background()

	got, vertex := tel.Record(ctx, domain.StageLaunch)
	_, ok := ports.VertexFromContext(got)
	assert.False(t, ok)

	_, err := vertex.Stdout().Write([]byte("x"))
	require.NoError(t, err)
	vertex.Log(domain.LogLevelError, "ignored")
	vertex.Cached()
	vertex.Complete(nil)
	require.NoError(t, tel.Close())
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	tests := []struct {
		backend string
		check   func(t *testing.T, tel ports.Telemetry)
	}{
		{domain.TelemetryProgrock, func(t *testing.T, tel ports.Telemetry) { assert.IsType(t, &progrock.Recorder{}, tel) }},
		{domain.TelemetryOTel, func(t *testing.T, tel ports.Telemetry) { assert.IsType(t, &telemetry.OTelTelemetry{}, tel) }},
		{domain.TelemetryNone, func(t *testing.T, tel ports.Telemetry) { assert.IsType(t, &telemetry.NoOp{}, tel) }},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			tel, err := telemetry.New(tt.backend, io.Discard, log)
			require.NoError(t, err)
			tt.check(t, tel)
			require.NoError(t, tel.Close())
		})
	}

	_, err := telemetry.New("jaeger", io.Discard, log)
	require.ErrorIs(t, err, domain.ErrInvalidSettings)
}

func TestNew_DefaultBackendRendersBuildOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	var buf bytes.Buffer

	tel, err := telemetry.New(domain.DefaultSettings().Telemetry, &buf, log)
	require.NoError(t, err)

	ctx, vertex := tel.Record(context.Background(), domain.StageViewer)
	res, err := shell.NewExecutor(log).Execute(ctx, domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo compiling foo; echo warning: bar >&2"},
	})
	require.NoError(t, err)
	require.True(t, res.Success())
	vertex.Complete(nil)

	_, cached := tel.Record(context.Background(), domain.StageConfig)
	cached.Cached()
	cached.Complete(nil)

	_, failed := tel.Record(context.Background(), domain.StageLaunch)
	failed.Complete(errors.New("viewer binary not found"))

	require.NoError(t, tel.Close())

	out := buf.String()
	assert.Contains(t, out, "[viewer] started\n")
	assert.Contains(t, out, "[viewer] compiling foo\n")
	assert.Contains(t, out, "[viewer] warning: bar\n")
	assert.Contains(t, out, "[viewer] ✓ done in")
	assert.Contains(t, out, "[config] ~ cached\n")
	assert.Contains(t, out, "[launch] ✗ failed after")
	assert.Contains(t, out, "viewer binary not found")
}
