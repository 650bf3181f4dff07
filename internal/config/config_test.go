package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.APITimeout)
	assert.Equal(t, 300*time.Millisecond, cfg.QueryDebounce)
	assert.Equal(t, 30*time.Second, cfg.HealthPollInterval)
	assert.Equal(t, 5, cfg.DefaultThreshold)
	assert.False(t, cfg.UseKafka)
	assert.Equal(t, []string{"localhost:9093"}, cfg.KafkaBrokers)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://inventory.local/api/")
	t.Setenv("QUERY_DEBOUNCE_MS", "150")
	t.Setenv("API_RATE_LIMIT", "2.5")
	t.Setenv("USE_KAFKA", "true")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092")
	t.Setenv("DEFAULT_THRESHOLD", "not-a-number")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "http://inventory.local/api", cfg.APIBaseURL)
	assert.Equal(t, 150*time.Millisecond, cfg.QueryDebounce)
	assert.Equal(t, 2.5, cfg.APIRateLimit)
	assert.True(t, cfg.UseKafka)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 5, cfg.DefaultThreshold)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EXPORT_DIR=/tmp/reports\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("EXPORT_DIR") })

	cfg := Load(path)

	assert.Equal(t, "/tmp/reports", cfg.ExportDir)
}
