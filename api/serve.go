package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/sales-dashboard/internal/auth"
	"github.com/rogerio-castellano/sales-dashboard/internal/config"
	"github.com/rogerio-castellano/sales-dashboard/internal/db"
	api "github.com/rogerio-castellano/sales-dashboard/internal/http"
	"github.com/rogerio-castellano/sales-dashboard/internal/http/handlers"
	rl "github.com/rogerio-castellano/sales-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/sales-dashboard/internal/loader"
	"github.com/rogerio-castellano/sales-dashboard/internal/redissvc"
	"github.com/rogerio-castellano/sales-dashboard/internal/repo"
	"github.com/rogerio-castellano/sales-dashboard/internal/surface"
	"github.com/rogerio-castellano/sales-dashboard/internal/weather"
	"github.com/rogerio-castellano/sales-dashboard/internal/widgets"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the API and dashboard, rendering every chart once the listener is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, logger)
		},
	}
}

func serve(parent context.Context, cfg config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics, closeRepo, err := openMetricsRepo(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()
	handlers.SetMetricsRepo(metrics)

	weatherOpts := []weather.Option{weather.WithBaseURL(cfg.Weather.BaseURL), weather.WithLogger(logger)}
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		cache := redissvc.NewRedisService(rdb, cfg.Redis.Prefix)
		if err := cache.Ping(ctx); err != nil {
			logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable, weather responses will not be cached until it is")
		}
		weatherOpts = append(weatherOpts, weather.WithCache(cache, cfg.Weather.CacheTTL))
		handlers.SetHealthCheck("redis", cache)
	}
	handlers.SetWeatherClient(weather.NewClient(weatherOpts...))

	doc := surface.NewDocument(widgets.SurfaceIDs()...)
	ld := loader.New(doc, surface.NewPNGCharts(cfg.Chart.Width, cfg.Chart.Height),
		loader.WithTimeout(cfg.Loader.Timeout),
		loader.WithLogger(logger),
	)
	descriptors := widgets.All(cfg.LoaderBaseURL())
	handlers.SetDashboard(doc, func() { ld.RenderAll(ctx, descriptors) })

	auth.SetSecret(cfg.Auth.Secret)
	if !auth.Enabled() {
		logger.Info().Msg("auth.secret not set, dashboard refresh endpoint disabled")
	}

	rl.SetLimits(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go rl.StartVisitorCleanupLoop(ctx, time.Minute)

	api.SetLogger(logger)
	srv := &http.Server{
		Handler:           api.NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.Addr, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()
	logger.Info().Str("addr", ln.Addr().String()).Msg("server running")

	ld.RenderAll(ctx, descriptors)

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	ld.Wait()
	return nil
}

// openMetricsRepo connects the configured store. The returned func releases it.
func openMetricsRepo(ctx context.Context, cfg config.Config) (repo.MetricsRepository, func(), error) {
	if cfg.Database.Driver == db.DriverMemory {
		return repo.NewInMemoryMetricsRepository(), func() {}, nil
	}

	database, err := db.Connect(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, nil, err
	}
	if err := db.EnsureSchema(ctx, database); err != nil {
		database.Close()
		return nil, nil, err
	}
	handlers.SetHealthCheck("database", handlers.PingFunc(database.PingContext))

	return repo.NewSQLMetricsRepository(database), func() { database.Close() }, nil
}
