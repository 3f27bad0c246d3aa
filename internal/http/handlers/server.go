package handlers

import (
	"context"

	"github.com/rs/zerolog"

	repo "github.com/rogerio-castellano/sales-dashboard/internal/repo"
	"github.com/rogerio-castellano/sales-dashboard/internal/surface"
)

// TemperatureSource serves the temperature widget. Implemented by weather.Client.
type TemperatureSource interface {
	DailyMaxTemperature(ctx context.Context, start, end string) ([]byte, error)
}

// Pinger is a dependency /health reports on.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function such as (*sql.DB).PingContext to a Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

var (
	metricsRepo   repo.MetricsRepository
	weatherClient TemperatureSource

	document *surface.Document
	refresh  func()

	healthChecks = map[string]Pinger{}

	logger = zerolog.Nop()
)

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetWeatherClient(c TemperatureSource) {
	weatherClient = c
}

// SetDashboard wires the page and chart routes to doc. refresh re-runs every widget loader
// and must not block.
func SetDashboard(doc *surface.Document, refreshFn func()) {
	document = doc
	refresh = refreshFn
}

// SetHealthCheck registers a named dependency; a nil pinger removes it.
func SetHealthCheck(name string, p Pinger) {
	if p == nil {
		delete(healthChecks, name)
		return
	}
	healthChecks[name] = p
}

func SetLogger(l zerolog.Logger) {
	logger = l
}
