package stats_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/percolate/internal/logging"
	"github.com/katalvlaran/percolate/stats"
)

// histogramSampleCount gathers reg and returns the sample count of the named
// histogram, or 0 when absent.
func histogramSampleCount(t *testing.T, reg prometheus.Gatherer, name string) uint64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if h := m.GetHistogram(); h != nil {
				return h.GetSampleCount()
			}
		}
	}
	return 0
}

// TestMetrics_RecordsTrials verifies counters and histograms after a run.
func TestMetrics_RecordsTrials(t *testing.T) {
	reg := prometheus.NewRegistry()
	col, err := stats.NewCollector(reg)
	require.NoError(t, err)

	_, err = stats.New(8, 7, stats.WithSeed(2), stats.WithMetrics(col))
	require.NoError(t, err)

	assert.Equal(t, 7.0, testutil.ToFloat64(col.Trials.WithLabelValues("percolated")))
	assert.Equal(t, 0.0, testutil.ToFloat64(col.Trials.WithLabelValues("failed")))
	for _, name := range []string{
		"percolation_trial_duration_seconds",
		"percolation_threshold",
		"percolation_sites_opened",
	} {
		assert.Equal(t, uint64(7), histogramSampleCount(t, reg, name), name)
	}
}

// TestMetrics_RecordsFailure verifies the failed outcome label.
func TestMetrics_RecordsFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	col, err := stats.NewCollector(reg)
	require.NoError(t, err)

	_, err = stats.New(3, 1,
		stats.WithSourceFactory(scriptedFactory(0)),
		stats.WithMaxDraws(10),
		stats.WithMetrics(col),
	)
	require.ErrorIs(t, err, stats.ErrDrawLimit)
	assert.Equal(t, 1.0, testutil.ToFloat64(col.Trials.WithLabelValues("failed")))
}

// TestNewCollector_Reregister verifies that a second registration reuses the
// existing metrics instead of failing.
func TestNewCollector_Reregister(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := stats.NewCollector(reg)
	require.NoError(t, err)
	second, err := stats.NewCollector(reg)
	require.NoError(t, err)

	second.Trials.WithLabelValues("percolated").Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(first.Trials.WithLabelValues("percolated")))
}

// TestTracing_Spans verifies one run span and one child span per trial.
func TestTracing_Spans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, err := stats.New(6, 3, stats.WithSeed(4), stats.WithTracerProvider(tp))
	require.NoError(t, err)

	var runSpans, trialSpans int
	var runID string
	for _, s := range sr.Ended() {
		switch s.Name() {
		case "stats.Run":
			runSpans++
			runID = s.SpanContext().SpanID().String()
		case "stats.trial":
			trialSpans++
		}
	}
	assert.Equal(t, 1, runSpans)
	assert.Equal(t, 3, trialSpans)
	for _, s := range sr.Ended() {
		if s.Name() == "stats.trial" {
			assert.Equal(t, runID, s.Parent().SpanID().String())
		}
	}
}

// TestLogging_RunLines verifies the start/finish lines and per-trial debug lines.
func TestLogging_RunLines(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Level: "debug", Format: "json", Output: &buf})

	_, err := stats.New(5, 2, stats.WithSeed(6), stats.WithLogger(log))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"percolation run started"`)
	assert.Contains(t, out, `"msg":"percolation run finished"`)
	assert.Equal(t, 2, strings.Count(out, `"msg":"trial percolated"`))
	assert.Contains(t, out, `"grid_size":5`)
}
