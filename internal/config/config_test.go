package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE_BUCKET", "fishing-tracker-media")
	t.Setenv("GOOGLE_CREDENTIALS_PATH", "/etc/secrets/sa.json")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "fishing_tracker", cfg.MongoDB.DBName)
	assert.Equal(t, "0 3 * * *", cfg.Backup.CronSchedule)
	assert.Equal(t, "https://api.open-meteo.com", cfg.Weather.ForecastBaseURL)
	assert.Equal(t, "https://geocoding-api.open-meteo.com", cfg.Weather.GeocodeBaseURL)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("MONGODB_DB_NAME", "fishing_tracker_test")
	t.Setenv("BACKUP_CRON_SCHEDULE", "30 2 * * *")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "fishing_tracker_test", cfg.MongoDB.DBName)
	assert.Equal(t, "30 2 * * *", cfg.Backup.CronSchedule)
}

func TestLoadMissingBucket(t *testing.T) {
	t.Setenv("STORAGE_BUCKET", "")
	t.Setenv("GOOGLE_CREDENTIALS_PATH", "/etc/secrets/sa.json")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_BUCKET")
}

func TestLoadMissingCredentials(t *testing.T) {
	t.Setenv("STORAGE_BUCKET", "fishing-tracker-media")
	t.Setenv("GOOGLE_CREDENTIALS_PATH", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_CREDENTIALS_PATH")
}

func TestValidateNil(t *testing.T) {
	var cfg *Config
	require.Error(t, cfg.Validate())
}
