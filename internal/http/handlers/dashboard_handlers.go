package handlers

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/sales-dashboard/internal/auth"
	"github.com/rogerio-castellano/sales-dashboard/internal/surface"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// DashboardPageHandler renders the dashboard page with one slot per surface.
func DashboardPageHandler(w http.ResponseWriter, r *http.Request) {
	if document == nil {
		internalError(w, r, errors.New("dashboard document not configured"))
		return
	}

	var views []SurfaceView
	for _, s := range document.Surfaces() {
		_, _, ok := s.Snapshot()
		views = append(views, SurfaceView{ID: s.ID, Rendered: ok, RenderedAt: s.RenderedAt()})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTemplate.Execute(w, views); err != nil {
		logger.Error().Err(err).Msg("failed to render dashboard page")
	}
}

// lookupRendered finds the surface named in the route and its chart. It answers 404 itself
// when either is missing.
func lookupRendered(w http.ResponseWriter, r *http.Request) (*surface.Surface, bool) {
	if document == nil {
		writeError(w, http.StatusNotFound, msgNotFound)
		return nil, false
	}
	s, err := document.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, msgNotFound)
		return nil, false
	}
	if _, _, ok := s.Snapshot(); !ok {
		writeError(w, http.StatusNotFound, msgNotFound)
		return nil, false
	}
	return s, true
}

// ChartImageHandler godoc
// @Summary Rendered chart image of a surface
// @Tags charts
// @Produce png
// @Param id path string true "Surface id, e.g. ordersChart"
// @Success 200 {file} binary
// @Failure 404 {object} handlers.ErrorResponse
// @Router /charts/{id}.png [get]
func ChartImageHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupRendered(w, r)
	if !ok {
		return
	}
	_, image, _ := s.Snapshot()
	if len(image) == 0 {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Last-Modified", s.RenderedAt().UTC().Format(http.TimeFormat))
	if _, err := w.Write(image); err != nil {
		logger.Error().Err(err).Str("surface", s.ID).Msg("failed to write chart image")
	}
}

// ChartConfigHandler godoc
// @Summary Chart configuration last drawn on a surface
// @Tags charts
// @Produce json
// @Param id path string true "Surface id, e.g. ordersChart"
// @Success 200 {object} chart.Config
// @Failure 404 {object} handlers.ErrorResponse
// @Router /charts/{id}.json [get]
func ChartConfigHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupRendered(w, r)
	if !ok {
		return
	}
	cfg, _, _ := s.Snapshot()
	respond(w, cfg)
}

// RefreshDashboardHandler godoc
// @Summary Re-render every dashboard widget
// @Description Starts one load per widget in the background and returns immediately.
// @Tags dashboard
// @Produce json
// @Success 202 {object} handlers.RefreshResult
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /dashboard/refresh [post]
func RefreshDashboardHandler(w http.ResponseWriter, r *http.Request) {
	if refresh == nil || document == nil {
		internalError(w, r, errors.New("dashboard refresh not configured"))
		return
	}

	refresh()

	var ids []string
	for _, s := range document.Surfaces() {
		ids = append(ids, s.ID)
	}
	logger.Info().
		Str("subject", auth.Subject(r.Context())).
		Str("surfaces", strings.Join(ids, ",")).
		Msg("dashboard refresh started")

	if err := writeJSON(w, http.StatusAccepted, RefreshResult{Message: "refresh started", Surfaces: ids}); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
	}
}
