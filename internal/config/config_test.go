package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, "sales.db", cfg.Database.DSN)
	require.Equal(t, time.Hour, cfg.Weather.CacheTTL)
	require.Zero(t, cfg.Loader.Timeout)
	require.Equal(t, 800, cfg.Chart.Width)
	require.Equal(t, 400, cfg.Chart.Height)
	require.Empty(t, cfg.Auth.Secret)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "http://localhost:8080", cfg.LoaderBaseURL())
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	yaml := `
server:
  addr: "127.0.0.1:9090"
database:
  driver: memory
loader:
  timeout: 5s
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("DASHBOARD_AUTH_SECRET", "s3cret")
	t.Setenv("DASHBOARD_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	require.Equal(t, "memory", cfg.Database.Driver)
	require.Equal(t, 5*time.Second, cfg.Loader.Timeout)
	require.Equal(t, "console", cfg.Log.Format)
	require.Equal(t, "warn", cfg.Log.Level, "env overrides file")
	require.Equal(t, "s3cret", cfg.Auth.Secret)
	require.Equal(t, "http://127.0.0.1:9090", cfg.LoaderBaseURL())
}

func TestLoad_DatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://shop@localhost/shop")
	t.Setenv("DASHBOARD_DATABASE_DRIVER", "postgres")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "postgres", cfg.Database.Driver)
	require.Equal(t, "postgres://shop@localhost/shop", cfg.Database.DSN)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name     string
		mutate   func(*Config)
		errorMsg string
	}{
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, "invalid log level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format"},
		{"bad driver", func(c *Config) { c.Database.Driver = "oracle" }, "invalid database driver"},
		{"missing dsn", func(c *Config) { c.Database.DSN = "" }, "dsn is required"},
		{"negative timeout", func(c *Config) { c.Loader.Timeout = -time.Second }, "must not be negative"},
		{"zero chart size", func(c *Config) { c.Chart.Width = 0 }, "invalid chart size"},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, "rate limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorContains(t, err, tt.errorMsg)
		})
	}

	mem := valid()
	mem.Database.Driver = "memory"
	mem.Database.DSN = ""
	require.NoError(t, mem.Validate())
}
