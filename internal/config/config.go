// Package config loads the dashboard settings from defaults, an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rogerio-castellano/sales-dashboard/internal/db"
)

const envPrefix = "DASHBOARD"

type (
	Config struct {
		Server    ServerConfig    `mapstructure:"server"`
		Database  DatabaseConfig  `mapstructure:"database"`
		Redis     RedisConfig     `mapstructure:"redis"`
		Weather   WeatherConfig   `mapstructure:"weather"`
		Loader    LoaderConfig    `mapstructure:"loader"`
		Chart     ChartConfig     `mapstructure:"chart"`
		Auth      AuthConfig      `mapstructure:"auth"`
		RateLimit RateLimitConfig `mapstructure:"rate_limit"`
		Log       LogConfig       `mapstructure:"log"`
	}
	ServerConfig struct {
		Addr            string        `mapstructure:"addr"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	}
	DatabaseConfig struct {
		// Driver is one of "sqlite", "postgres" or "memory".
		Driver string `mapstructure:"driver"`
		DSN    string `mapstructure:"dsn"`
	}
	// RedisConfig is optional. An empty Addr disables the weather cache.
	RedisConfig struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
		Prefix   string `mapstructure:"prefix"`
	}
	WeatherConfig struct {
		BaseURL  string        `mapstructure:"base_url"`
		CacheTTL time.Duration `mapstructure:"cache_ttl"`
	}
	LoaderConfig struct {
		// BaseURL is where the widget endpoints are fetched from. Empty means this server.
		BaseURL string `mapstructure:"base_url"`
		// Timeout bounds each fetch; zero leaves fetches unbounded.
		Timeout time.Duration `mapstructure:"timeout"`
	}
	ChartConfig struct {
		Width  int `mapstructure:"width"`
		Height int `mapstructure:"height"`
	}
	// AuthConfig guards the refresh endpoint. An empty Secret disables it.
	AuthConfig struct {
		Secret   string        `mapstructure:"secret"`
		TokenTTL time.Duration `mapstructure:"token_ttl"`
	}
	RateLimitConfig struct {
		RPS   float64 `mapstructure:"rps"`
		Burst int     `mapstructure:"burst"`
	}
	LogConfig struct {
		// Level is one of "debug", "info", "warn", "error".
		Level string `mapstructure:"level"`
		// Format is "json" or "console".
		Format string `mapstructure:"format"`
	}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.driver", db.DriverSQLite)
	v.SetDefault("database.dsn", "sales.db")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "dashboard:")
	v.SetDefault("weather.base_url", "https://archive-api.open-meteo.com/v1/archive")
	v.SetDefault("weather.cache_ttl", time.Hour)
	v.SetDefault("loader.base_url", "")
	v.SetDefault("loader.timeout", time.Duration(0))
	v.SetDefault("chart.width", 800)
	v.SetDefault("chart.height", 400)
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("rate_limit.rps", 5.0)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Load reads the configuration. path may be empty, in which case only defaults and environment
// variables (DASHBOARD_SERVER_ADDR, DASHBOARD_DATABASE_DSN, ...) apply. DATABASE_URL is accepted
// for the database DSN as well.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("database.dsn", envPrefix+"_DATABASE_DSN", "DATABASE_URL"); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate ensures the configuration is usable.
func (c Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level: %s", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("invalid log format: %s", c.Log.Format))
	}

	switch c.Database.Driver {
	case db.DriverSQLite, db.DriverPostgres:
		if c.Database.DSN == "" {
			errs = append(errs, fmt.Errorf("database dsn is required for driver %s", c.Database.Driver))
		}
	case db.DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("invalid database driver: %s", c.Database.Driver))
	}

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server addr is required"))
	}
	if c.Loader.Timeout < 0 {
		errs = append(errs, errors.New("loader timeout must not be negative"))
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid chart size %dx%d", c.Chart.Width, c.Chart.Height))
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("rate limit rps and burst must be positive"))
	}

	return errors.Join(errs...)
}

// LoaderBaseURL is where the widget endpoints live: the configured loader base URL or, when
// unset, this server on localhost.
func (c Config) LoaderBaseURL() string {
	if c.Loader.BaseURL != "" {
		return c.Loader.BaseURL
	}
	addr := c.Server.Addr
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
