package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the midpoint service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the HTTP API and monitoring endpoints.
// - Workers: The number of concurrent workers computing stored segment midpoints.
// - Interval: The duration between polls for pending segments.
// - BatchSize: The maximum number of segments fetched per poll.
// - Provider: Settings of the geocoding provider used for address queries.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env       string         `yaml:"meridian_env"`        // Env is the current environment: local, development, production.
	Port      int            `yaml:"meridian_http_port"`  // Port is the HTTP server port.
	Workers   int            `yaml:"meridian_workers"`    // The number of concurrent workers.
	Interval  time.Duration  `yaml:"meridian_interval"`   // The duration between polling intervals.
	BatchSize int            `yaml:"meridian_batch_size"` // The number of segments fetched per poll.
	Provider  ProviderConfig `yaml:"provider"`            // Provider holds the geocoding provider settings.
	Database  PostgresConfig `yaml:"postgres"`            // Database holds the postgres database configuration.
}

// ProviderConfig selects the geocoding provider used to resolve addresses into points.
type ProviderConfig struct {
	Type      string `yaml:"meridian_provider_type"`       // Type is one of none, google, nominatim, visicom.
	APIKey    string `yaml:"meridian_provider_key"`        // APIKey for providers that need one.
	RateLimit int    `yaml:"meridian_provider_rate_limit"` // RateLimit in requests per second.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"db_host"`     // Host is the database server address.
	Port     string `yaml:"db_port"`     // Port is the database server port.
	User     string `yaml:"db_username"` // User is the database user.
	Password string `yaml:"db_password"` // Password is the database user's password.
	Name     string `yaml:"db_name"`     // Name is the name of the database.
}

// Enabled reports whether a database was configured at all.
func (p PostgresConfig) Enabled() bool { return p.Host != "" }

var defaults = map[string]any{
	"MERIDIAN_ENV":                 "production",
	"MERIDIAN_HTTP_PORT":           "8080",
	"MERIDIAN_WORKERS":             "4",
	"MERIDIAN_INTERVAL":            "1m",
	"MERIDIAN_BATCH_SIZE":          "100",
	"MERIDIAN_PROVIDER_TYPE":       "none",
	"MERIDIAN_PROVIDER_KEY":        "",
	"MERIDIAN_PROVIDER_RATE_LIMIT": "10",
	"DB_HOST":                      "",
	"DB_PORT":                      "5432",
	"DB_USERNAME":                  "",
	"DB_PASSWORD":                  "",
	"DB_NAME":                      "",
}

// MustLoad reads the configuration from the environment, an optional .env file and an optional
// YAML file named by MERIDIAN_CONFIG_FILE. Environment variables win over the file.
func MustLoad() *Config {
	_ = godotenv.Load()

	vpr := viper.New()
	for key, value := range defaults {
		vpr.SetDefault(key, value)
	}
	vpr.AutomaticEnv()

	if file, ok := os.LookupEnv("MERIDIAN_CONFIG_FILE"); ok && file != "" {
		vpr.SetConfigFile(file)
		if err := vpr.ReadInConfig(); err != nil {
			panic("failed to read configuration file")
		}
	}

	interval, err := time.ParseDuration(vpr.GetString("MERIDIAN_INTERVAL"))
	if err != nil {
		panic("failed to parse interval from configuration")
	}

	port, err := strconv.Atoi(vpr.GetString("MERIDIAN_HTTP_PORT"))
	if err != nil {
		panic("failed to parse port for http server from configuration")
	}

	workers, err := strconv.Atoi(vpr.GetString("MERIDIAN_WORKERS"))
	if err != nil || workers < 1 {
		panic("failed to parse workers from configuration, must be a positive integer")
	}

	batchSize, err := strconv.Atoi(vpr.GetString("MERIDIAN_BATCH_SIZE"))
	if err != nil || batchSize < 1 {
		panic("failed to parse batch size from configuration, must be a positive integer")
	}

	rateLimit, err := strconv.Atoi(vpr.GetString("MERIDIAN_PROVIDER_RATE_LIMIT"))
	if err != nil {
		panic("failed to parse provider rate limit from configuration")
	}

	return &Config{
		Env:       vpr.GetString("MERIDIAN_ENV"),
		Port:      port,
		Workers:   workers,
		Interval:  interval,
		BatchSize: batchSize,
		Provider: ProviderConfig{
			Type:      vpr.GetString("MERIDIAN_PROVIDER_TYPE"),
			APIKey:    vpr.GetString("MERIDIAN_PROVIDER_KEY"),
			RateLimit: rateLimit,
		},
		Database: PostgresConfig{
			Host:     vpr.GetString("DB_HOST"),
			Port:     vpr.GetString("DB_PORT"),
			User:     vpr.GetString("DB_USERNAME"),
			Password: vpr.GetString("DB_PASSWORD"),
			Name:     vpr.GetString("DB_NAME"),
		},
	}
}
