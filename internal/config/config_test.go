package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"commissions/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_RepositoryConfig(t *testing.T) {
	cfg, err := config.Load(filepath.Join("..", "..", "config.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "/riverui", cfg.HTTP.RiverUIPath)
	require.Equal(t, int32(0), cfg.Commission.RoundingPlaces)
	require.True(t, cfg.Scheduler.Enabled)
	require.Equal(t, 24*time.Hour, cfg.Scheduler.Interval)
	require.Equal(t, 3, cfg.Scheduler.StalledAfterMonths)
}

func TestLoad_DefaultsAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("environment: production\n"), 0o600))
	t.Setenv("SCHEDULER_STALLED_AFTER_MONTHS", "6")
	t.Setenv("COMMISSION_ROUNDING_PLACES", "2")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, 6, cfg.Scheduler.StalledAfterMonths)
	require.Equal(t, int32(2), cfg.Commission.RoundingPlaces)
	require.Equal(t, uint(200), cfg.Scheduler.BatchSize)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoad_RoundingPlacesBeyondStoredScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("commission:\n  roundingPlaces: 3\n"), 0o600))

	_, err := config.Load(path)
	require.ErrorContains(t, err, "rounding places")

	t.Setenv("COMMISSION_ROUNDING_PLACES", "-1")
	require.NoError(t, os.WriteFile(path, []byte("environment: production\n"), 0o600))
	_, err = config.Load(path)
	require.ErrorContains(t, err, "rounding places")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
