package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerServiceFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"CUSTOMER_SERVICE_ADDR", "INSURANCE_SERVICE_URL", "VEHICLE_SERVICE_URL",
		"UPSTREAM_TIMEOUT", "VEHICLE_LOOKUP_TIMEOUT", "VEHICLE_LOOKUP_CONCURRENCY",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "LOG_LEVEL", "LOG_FORMAT", "APP_ENV",
	} {
		t.Setenv(key, "")
	}

	cfg := CustomerServiceFromEnv()

	assert.Equal(t, "customer-service", cfg.Name)
	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, "http://localhost:5002", cfg.InsuranceServiceURL)
	assert.Equal(t, "http://localhost:5001", cfg.VehicleServiceURL)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 10*time.Second, cfg.VehicleLookupTimeout)
	assert.Zero(t, cfg.VehicleLookupConcurrency)
	assert.Zero(t, cfg.RateLimitRPS)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.Warnings)
}

func TestCustomerServiceFromEnvOverrides(t *testing.T) {
	t.Setenv("CUSTOMER_SERVICE_ADDR", ":9000")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("VEHICLE_LOOKUP_TIMEOUT", "2")
	t.Setenv("VEHICLE_LOOKUP_CONCURRENCY", "4")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := CustomerServiceFromEnv()

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 2*time.Second, cfg.VehicleLookupTimeout)
	assert.Equal(t, 4, cfg.VehicleLookupConcurrency)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestInvalidValuesFallBackWithWarning(t *testing.T) {
	t.Setenv("HTTP_CLIENT_TIMEOUT", "soon")

	cfg := InsuranceServiceFromEnv()

	assert.Equal(t, DefaultClientTimeout, cfg.ClientTimeout)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "HTTP_CLIENT_TIMEOUT")
}

func TestNegativeConcurrencyFallsBack(t *testing.T) {
	t.Setenv("VEHICLE_LOOKUP_CONCURRENCY", "-3")

	cfg := CustomerServiceFromEnv()

	assert.Zero(t, cfg.VehicleLookupConcurrency)
	assert.Len(t, cfg.Warnings, 1)
}

func TestLoadMissingFileIsIgnored(t *testing.T) {
	require.NoError(t, Load(filepath.Join(t.TempDir(), "missing.env")))
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("VEHICLE_SEED_FILE=/tmp/vehicles.yaml\n"), 0o600))
	t.Setenv("VEHICLE_SEED_FILE", "")
	os.Unsetenv("VEHICLE_SEED_FILE")

	require.NoError(t, Load(path))
	assert.Equal(t, "/tmp/vehicles.yaml", VehicleDBFromEnv().SeedFile)
}
