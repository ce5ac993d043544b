package infrastructure

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOTelConfig(t *testing.T) {
	cfg := DefaultOTelConfig()

	assert.Equal(t, ServiceName, cfg.ServiceName)
	assert.Equal(t, "stdout", cfg.TraceExporter)
	assert.Equal(t, "prometheus", cfg.MetricExporter)
	assert.True(t, cfg.EnableTracing)
	assert.True(t, cfg.EnableMetrics)
	assert.Equal(t, 1.0, cfg.SampleRatio)
}

func TestInitializeOTel_Disabled(t *testing.T) {
	cfg := DefaultOTelConfig()
	cfg.EnableTracing = false
	cfg.EnableMetrics = false

	providers, err := InitializeOTel(cfg, slog.Default())
	require.NoError(t, err)
	assert.Nil(t, providers.TracerProvider)
	assert.Nil(t, providers.MeterProvider)
	assert.NoError(t, providers.Shutdown(context.Background()))
}

func TestInitializeOTel_UnsupportedExporters(t *testing.T) {
	t.Run("trace", func(t *testing.T) {
		cfg := DefaultOTelConfig()
		cfg.TraceExporter = "jaeger"

		_, err := InitializeOTel(cfg, slog.Default())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported trace exporter")
	})

	t.Run("metric", func(t *testing.T) {
		cfg := DefaultOTelConfig()
		cfg.EnableTracing = false
		cfg.MetricExporter = "statsd"

		_, err := InitializeOTel(cfg, slog.Default())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported metric exporter")
	})
}

func TestCreateBusinessMetrics(t *testing.T) {
	cfg := DefaultOTelConfig()
	cfg.EnableTracing = false

	providers, err := InitializeOTel(cfg, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = providers.Shutdown(context.Background()) })

	metrics, err := CreateBusinessMetrics(providers.Meter)
	require.NoError(t, err)
	require.NotNil(t, metrics)

	assert.NotNil(t, metrics.HTTPRequestsTotal)
	assert.NotNil(t, metrics.AnalysesTotal)
	assert.NotNil(t, metrics.AnalysisFailures)

	// Recording must not panic, with or without an error outcome.
	ctx := context.Background()
	RecordAnalysisMetrics(ctx, metrics, "january.csv", 10, 50*time.Millisecond, nil)
	RecordAnalysisMetrics(ctx, metrics, "broken.csv", 0, time.Millisecond, assert.AnError)
	RecordAnalysisMetrics(ctx, nil, "ignored.csv", 0, 0, nil)
}
