package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/meridian/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("MERIDIAN_ENV", "local")
	t.Setenv("MERIDIAN_INTERVAL", "30s")
	t.Setenv("MERIDIAN_PROVIDER_TYPE", "nominatim")
	t.Setenv("MERIDIAN_PROVIDER_KEY", "testAPIKey")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, 30*time.Second, cfg.Interval)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, "nominatim", cfg.Provider.Type)
	assert.Equal(t, "testAPIKey", cfg.Provider.APIKey)
	assert.Equal(t, 10, cfg.Provider.RateLimit)
}

func Test_MustLoadDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "")

	cfg := config.MustLoad()

	assert.Equal(t, "none", cfg.Provider.Type)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, time.Minute, cfg.Interval)
	assert.False(t, cfg.Database.Enabled())
}

func Test_MustLoadFromFile(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "meridian.yaml")
	filet.File(t, path, "meridian_env: development\nmeridian_workers: 8\nmeridian_interval: 5m\ndb_name: fromFile\n")

	t.Setenv("MERIDIAN_CONFIG_FILE", path)
	t.Setenv("MERIDIAN_WORKERS", "2")

	cfg := config.MustLoad()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 5*time.Minute, cfg.Interval)
	assert.Equal(t, "fromFile", cfg.Database.Name)
	assert.Equal(t, 2, cfg.Workers, "environment must win over the file")
}

func TestMustLoad_MissingFile(t *testing.T) {
	t.Setenv("MERIDIAN_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	assert.PanicsWithValue(t, "failed to read configuration file", func() {
		config.MustLoad()
	})
}

func TestMustLoad_IntervalError(t *testing.T) {
	t.Setenv("MERIDIAN_INTERVAL", "error_value")

	assert.PanicsWithValue(t, "failed to parse interval from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("MERIDIAN_HTTP_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for http server from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_WorkersError(t *testing.T) {
	t.Setenv("MERIDIAN_WORKERS", "0")

	assert.PanicsWithValue(t, "failed to parse workers from configuration, must be a positive integer", func() {
		config.MustLoad()
	})
}

func TestMustLoad_BatchSizeError(t *testing.T) {
	t.Setenv("MERIDIAN_BATCH_SIZE", "many")

	assert.PanicsWithValue(t, "failed to parse batch size from configuration, must be a positive integer", func() {
		config.MustLoad()
	})
}

func TestMustLoad_RateLimitError(t *testing.T) {
	t.Setenv("MERIDIAN_PROVIDER_RATE_LIMIT", "fast")

	assert.PanicsWithValue(t, "failed to parse provider rate limit from configuration", func() {
		config.MustLoad()
	})
}
