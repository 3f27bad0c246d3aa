package handlers

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type RefreshResult struct {
	Message  string   `json:"message"`
	Surfaces []string `json:"surfaces"`
}

type HealthResult struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
	Surfaces   SurfaceCounts     `json:"surfaces"`
}

type SurfaceCounts struct {
	Total    int `json:"total"`
	Rendered int `json:"rendered"`
}

// SurfaceView is one chart slot on the dashboard page.
type SurfaceView struct {
	ID         string
	Rendered   bool
	RenderedAt time.Time
}
