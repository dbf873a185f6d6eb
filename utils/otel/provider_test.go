package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearOTelEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OTEL_ENABLED", "OTEL_SERVICE_NAME", "OTEL_EXPORTER_OTLP_ENDPOINT",
		"OTEL_TRACE_SAMPLE_RATIO", "SERVICE_VERSION", "DEPLOYMENT_ENV",
	} {
		t.Setenv(key, "")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearOTelEnv(t)

	cfg := ConfigFromEnv()
	assert.Equal(t, Config{
		ServiceName:    "news-dashboard",
		ServiceVersion: "0.0.0",
		Environment:    "development",
		OTLPEndpoint:   "http://localhost:4318",
		Enabled:        false,
		SampleRatio:    1.0,
	}, cfg)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearOTelEnv(t)
	t.Setenv("OTEL_ENABLED", "TRUE")
	t.Setenv("OTEL_SERVICE_NAME", "dash")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4318/")
	t.Setenv("OTEL_TRACE_SAMPLE_RATIO", "0.25")
	t.Setenv("SERVICE_VERSION", "1.2.3")
	t.Setenv("DEPLOYMENT_ENV", "production")

	cfg := ConfigFromEnv()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "dash", cfg.ServiceName)
	assert.Equal(t, "http://collector:4318", cfg.OTLPEndpoint)
	assert.Equal(t, 0.25, cfg.SampleRatio)
	assert.Equal(t, "1.2.3", cfg.ServiceVersion)
	assert.Equal(t, "production", cfg.Environment)
}

func TestConfigFromEnv_IgnoresOutOfRangeRatio(t *testing.T) {
	clearOTelEnv(t)
	t.Setenv("OTEL_TRACE_SAMPLE_RATIO", "1.5")
	assert.Equal(t, 1.0, ConfigFromEnv().SampleRatio)

	t.Setenv("OTEL_TRACE_SAMPLE_RATIO", "abc")
	assert.Equal(t, 1.0, ConfigFromEnv().SampleRatio)
}

func TestInitProvider_Disabled(t *testing.T) {
	shutdown, err := InitProvider(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}
