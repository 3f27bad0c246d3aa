package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/sales-dashboard/internal/config"
	"github.com/rogerio-castellano/sales-dashboard/internal/logging"
)

var configPath string

// @title Sales Dashboard API
// @version 1.0
// @description Sales metrics API and server-rendered dashboard charts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Sales dashboard server and chart renderer",
		Long: `dashboard serves the sales metrics API and renders its charts, either in the
server (serve) or once against a running instance (render).`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default: env and defaults only)")

	rootCmd.AddCommand(newServeCmd(), newRenderCmd(), newTokenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads .env, the configuration and the process logger.
func setup() (config.Config, zerolog.Logger, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config.Config{}, zerolog.Nop(), err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	return cfg, logger, nil
}
