package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Log     LogConfig
	Store   StoreConfig
	Metrics MetricsConfig
}

type LogConfig struct {
	Level string
}

type StoreConfig struct {
	// SeedFile is a YAML file of documents loaded into the store at startup.
	SeedFile string
}

type MetricsConfig struct {
	// File receives the Prometheus text exposition when non-empty.
	File string
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DOCSTORE_SEED_FILE", "")
	v.SetDefault("DOCSTORE_METRICS_FILE", "")

	cfg := &Config{
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Store: StoreConfig{
			SeedFile: v.GetString("DOCSTORE_SEED_FILE"),
		},
		Metrics: MetricsConfig{
			File: v.GetString("DOCSTORE_METRICS_FILE"),
		},
	}
	return cfg, nil
}
