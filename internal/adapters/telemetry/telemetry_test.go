package telemetry_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"go.trai.ch/iroot/internal/adapters/telemetry"
	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports"
	"go.trai.ch/iroot/internal/core/ports/mocks"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
	var _ sdktrace.SpanProcessor = (*telemetry.Bridge)(nil)
}

func TestOTelTracer_Attributes(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracerFrom(tp, "test")

	_, span := tracer.Start(context.Background(), "perturb")
	span.SetAttribute("idiom", domain.Idiom1)
	span.SetAttribute("attempts", uint32(2))
	span.SetAttribute("delay", 3*time.Millisecond)
	span.SetAttribute("exposed", true)
	span.RecordError(errors.New("timeout"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "perturb", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Contains(t, ended[0].Attributes(), attribute.String("idiom", "idiom1"))
	assert.Contains(t, ended[0].Attributes(), attribute.Int64("attempts", 2))
	assert.Contains(t, ended[0].Attributes(), attribute.Int64("delay", 3000))
	assert.Contains(t, ended[0].Attributes(), attribute.Bool("exposed", true))
}

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gotCtx, span := telemetry.NewNoOpTracer().Start(ctx, "noop")
	assert.Equal(t, ctx, gotCtx)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestBridge_OnEnd(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	bridge := telemetry.NewBridge(log)
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	tracer := telemetry.NewOTelTracerFrom(tp, "test")

	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		assert.True(t, strings.HasPrefix(msg, "perturb "))
		assert.Contains(t, msg, "result=exposed")
	}).Times(1)
	_, span := tracer.Start(context.Background(), "perturb")
	span.SetAttribute("result", "exposed")
	span.End()

	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, "perturb: target exited")
	}).Times(1)
	_, span = tracer.Start(context.Background(), "perturb")
	span.RecordError(errors.New("target exited"))
	span.End()
}

func TestBridge_NilLogger(_ *testing.T) {
	bridge := telemetry.NewBridge(nil)
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	_, span := tp.Tracer("test").Start(context.Background(), "span")
	span.End()
}

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := telemetry.NewMetrics()
	m.InstructionsCounted(40)
	m.InstructionsCounted(2)
	m.AccessFiltered()
	m.CandidateDiscovered(domain.Idiom1)
	m.CandidateDiscovered(domain.Idiom1)
	m.CandidateDiscovered(domain.Idiom2)
	m.InterleavingObserved(domain.Idiom2)
	m.CandidateSkipped(domain.OutcomeExposed)
	m.PerturbationFinished(ports.PerturbTimeout, 50*time.Millisecond)

	n, err := testutil.GatherAndCount(m.Registry())
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	path := filepath.Join(t.TempDir(), "metrics", "iroot.prom")
	require.NoError(t, m.Export(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "iroot_instructions_total 42")
	assert.Contains(t, text, "iroot_accesses_filtered_total 1")
	assert.Contains(t, text, `iroot_candidates_discovered_total{idiom="idiom1"} 2`)
	assert.Contains(t, text, `iroot_candidates_discovered_total{idiom="idiom2"} 1`)
	assert.Contains(t, text, `iroot_interleavings_observed_total{idiom="idiom2"} 1`)
	assert.Contains(t, text, `iroot_candidates_skipped_total{outcome="exposed"} 1`)
	assert.Contains(t, text, `iroot_perturbations_total{result="timeout"} 1`)
	assert.Contains(t, text, `iroot_perturbation_delay_seconds_count{result="timeout"} 1`)
}

func TestMetrics_ExportFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := telemetry.NewMetrics().Export(filepath.Join(blocker, "iroot.prom"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMetricsWriteFailed.Error())
}
