package handlers

import (
	"context"
	"net/http"
	"time"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"

	healthTimeout = 2 * time.Second
)

// HealthHandler godoc
// @Summary Liveness of the dashboard and its dependencies
// @Tags ops
// @Produce json
// @Success 200 {object} handlers.HealthResult
// @Failure 503 {object} handlers.HealthResult
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	result := HealthResult{Status: statusOK, Components: map[string]string{}}
	for name, p := range healthChecks {
		if err := p.Ping(ctx); err != nil {
			logger.Warn().Err(err).Str("component", name).Msg("health check failed")
			result.Components[name] = err.Error()
			result.Status = statusDegraded
			continue
		}
		result.Components[name] = statusOK
	}

	if document != nil {
		result.Surfaces = SurfaceCounts{Total: len(document.Surfaces()), Rendered: document.Rendered()}
	}

	status := http.StatusOK
	if result.Status != statusOK {
		status = http.StatusServiceUnavailable
	}
	if err := writeJSON(w, status, result); err != nil {
		logger.Error().Err(err).Msg("failed to write health response")
	}
}
