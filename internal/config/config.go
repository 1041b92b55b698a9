package config

import (
	"github.com/caarlos0/env/v11"

	"adchain/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_ prefix).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// AdServer configures the remote ad server client (ADSERVER_ prefix).
	AdServer configs.AdServer `envPrefix:"ADSERVER_"`

	// Ads configures caching, preloading and placement (ADS_ prefix).
	Ads configs.Ads `envPrefix:"ADS_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their defaults when no variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
