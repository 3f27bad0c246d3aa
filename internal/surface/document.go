// Package surface holds the rendering surfaces charts are drawn on and the charting
// backends that draw them.
package surface

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rogerio-castellano/sales-dashboard/internal/chart"
)

// ErrSurfaceNotFound is returned when no surface has the requested id.
var ErrSurfaceNotFound = errors.New("surface not found")

// Charts is the charting library: it instantiates a chart against a surface.
type Charts interface {
	New(s *Surface, cfg chart.Config) error
}

// Surface is a named area of the dashboard that holds at most one chart.
type Surface struct {
	ID string

	mu         sync.RWMutex
	config     *chart.Config
	image      []byte
	renderedAt time.Time
}

// Draw replaces the surface's chart.
func (s *Surface) Draw(cfg chart.Config, image []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = &cfg
	s.image = image
	s.renderedAt = time.Now()
}

// Snapshot returns the current chart. ok is false while nothing has been drawn.
func (s *Surface) Snapshot() (cfg chart.Config, image []byte, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.config == nil {
		return chart.Config{}, nil, false
	}
	return *s.config, s.image, true
}

// RenderedAt is the time of the last Draw, zero if never drawn.
func (s *Surface) RenderedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.renderedAt
}

// Document is the set of surfaces a dashboard is made of.
type Document struct {
	order    []string
	surfaces map[string]*Surface
}

// NewDocument creates one empty surface per id. Duplicate ids are ignored.
func NewDocument(ids ...string) *Document {
	d := &Document{surfaces: make(map[string]*Surface, len(ids))}
	for _, id := range ids {
		if _, exists := d.surfaces[id]; exists {
			continue
		}
		d.order = append(d.order, id)
		d.surfaces[id] = &Surface{ID: id}
	}
	return d
}

// Lookup finds a surface by id.
func (d *Document) Lookup(id string) (*Surface, error) {
	s, ok := d.surfaces[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSurfaceNotFound, id)
	}
	return s, nil
}

// Surfaces returns every surface in creation order.
func (d *Document) Surfaces() []*Surface {
	out := make([]*Surface, len(d.order))
	for i, id := range d.order {
		out[i] = d.surfaces[id]
	}
	return out
}

// Rendered counts the surfaces that currently hold a chart.
func (d *Document) Rendered() int {
	n := 0
	for _, s := range d.surfaces {
		if _, _, ok := s.Snapshot(); ok {
			n++
		}
	}
	return n
}

// Multi fans a chart out to several backends, stopping at the first failure. The surface is
// only drawn once every backend has succeeded.
type Multi []Charts

func (m Multi) New(s *Surface, cfg chart.Config) error {
	scratch := &Surface{ID: s.ID}
	for _, c := range m {
		if err := c.New(scratch, cfg); err != nil {
			return err
		}
	}
	if drawn, image, ok := scratch.Snapshot(); ok {
		s.Draw(drawn, image)
	}
	return nil
}
