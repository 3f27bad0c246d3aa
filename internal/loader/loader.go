// Package loader fetches widget data over HTTP and draws the resulting charts.
//
// Each render is a single best-effort attempt: GET the endpoint, parse the JSON body, map it
// to a chart configuration and instantiate the chart on its surface. Failures are logged once
// and never retried; the surface is left as it was.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/sales-dashboard/internal/surface"
	"github.com/rogerio-castellano/sales-dashboard/internal/widgets"
)

// Loader renders dashboard widgets onto the surfaces of a document.
type Loader struct {
	client *http.Client
	doc    *surface.Document
	charts surface.Charts
	logger zerolog.Logger

	wg sync.WaitGroup
}

type Option func(*Loader)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		l.client = c
	}
}

// WithTimeout bounds each fetch. Zero keeps fetches unbounded.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.client = &http.Client{Timeout: d, Transport: l.client.Transport}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

func New(doc *surface.Document, charts surface.Charts, opts ...Option) *Loader {
	l := &Loader{
		client: &http.Client{},
		doc:    doc,
		charts: charts,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Render makes one attempt to draw the chart for endpoint on surfaceID.
// It never returns an error: a failure is logged and the surface stays as it was.
func (l *Loader) Render(ctx context.Context, endpoint, surfaceID string, toConfig widgets.Mapper) {
	err := l.render(ctx, endpoint, surfaceID, toConfig)
	if err != nil {
		stage := Stage("")
		var re *RenderError
		if errors.As(err, &re) {
			stage = re.Stage
		}
		rendersTotal.WithLabelValues(surfaceID, outcomeFailed, string(stage)).Inc()
		l.logger.Error().
			Err(err).
			Str("endpoint", endpoint).
			Str("surface", surfaceID).
			Str("stage", string(stage)).
			Msg("error fetching or rendering chart")
		return
	}

	rendersTotal.WithLabelValues(surfaceID, outcomeRendered, "").Inc()
	l.logger.Debug().Str("endpoint", endpoint).Str("surface", surfaceID).Msg("chart rendered")
}

func (l *Loader) render(ctx context.Context, endpoint, surfaceID string, toConfig widgets.Mapper) error {
	fail := func(stage Stage, err error) error {
		return newRenderError(endpoint, surfaceID, stage, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fail(StageFetch, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return fail(StageFetch, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(StageFetch, fmt.Errorf("failed to read body: %w", err))
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fail(StageStatus, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode))
	}
	if !json.Valid(body) {
		return fail(StageDecode, ErrInvalidJSON)
	}

	cfg, err := toConfig(body)
	if err != nil {
		return fail(StageMap, err)
	}

	s, err := l.doc.Lookup(surfaceID)
	if err != nil {
		return fail(StageSurface, err)
	}

	if err := l.charts.New(s, cfg); err != nil {
		return fail(StageDraw, err)
	}
	return nil
}

// Go starts Render for d in its own goroutine and returns immediately.
func (l *Loader) Go(ctx context.Context, d widgets.Descriptor) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.Render(ctx, d.Endpoint, d.SurfaceID, d.ToConfig)
	}()
}

// RenderAll starts one independent render per descriptor. Completion order is unspecified.
func (l *Loader) RenderAll(ctx context.Context, ds []widgets.Descriptor) {
	for _, d := range ds {
		l.Go(ctx, d)
	}
}

// Wait blocks until every render started so far has finished.
func (l *Loader) Wait() {
	l.wg.Wait()
}
