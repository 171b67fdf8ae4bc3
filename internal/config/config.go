package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Storage StorageConfig
	Backup  BackupConfig
	Weather WeatherConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// StorageConfig holds settings for the object storage bucket that backs
// photo uploads.
type StorageConfig struct {
	Bucket          string
	CredentialsPath string
}

// BackupConfig holds scheduler-related settings for the nightly backup job.
type BackupConfig struct {
	CronSchedule string
	AppVersion   string
}

// WeatherConfig holds the Open-Meteo endpoints.
type WeatherConfig struct {
	ForecastBaseURL string
	GeocodeBaseURL  string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "fishing_tracker"),
		},
		Storage: StorageConfig{
			Bucket:          os.Getenv("STORAGE_BUCKET"),
			CredentialsPath: os.Getenv("GOOGLE_CREDENTIALS_PATH"),
		},
		Backup: BackupConfig{
			CronSchedule: getenvWithDefault("BACKUP_CRON_SCHEDULE", "0 3 * * *"),
			AppVersion:   getenvWithDefault("APP_VERSION", "1.0.0"),
		},
		Weather: WeatherConfig{
			ForecastBaseURL: getenvWithDefault("OPEN_METEO_BASE_URL", "https://api.open-meteo.com"),
			GeocodeBaseURL:  getenvWithDefault("OPEN_METEO_GEOCODE_URL", "https://geocoding-api.open-meteo.com"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.MongoDB.URI == "":
		return errors.New("MONGODB_URI must be provided")
	case c.MongoDB.DBName == "":
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.Storage.Bucket == "" {
		return errors.New("STORAGE_BUCKET must be provided")
	}

	if c.Storage.CredentialsPath == "" {
		return errors.New("GOOGLE_CREDENTIALS_PATH must be provided")
	}

	if c.Backup.CronSchedule == "" {
		return errors.New("BACKUP_CRON_SCHEDULE must be provided")
	}

	if c.Weather.ForecastBaseURL == "" {
		return errors.New("OPEN_METEO_BASE_URL must not be empty")
	}

	if c.Weather.GeocodeBaseURL == "" {
		return errors.New("OPEN_METEO_GEOCODE_URL must not be empty")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
