// Package chart describes the chart configuration document handed to the charting library.
package chart

import (
	"errors"
	"fmt"
	"math"

	"github.com/goccy/go-json"
)

// Type is the kind of chart to draw.
type Type string

const (
	Line Type = "line"
	Bar  Type = "bar"
	Pie  Type = "pie"
)

// ErrUnsupportedType is returned by Validate for chart types the dashboard cannot draw.
var ErrUnsupportedType = errors.New("unsupported chart type")

// Config is a complete chart description: type, labelled data series and display options.
type Config struct {
	Type    Type     `json:"type"`
	Data    Data     `json:"data"`
	Options *Options `json:"options,omitempty"`
}

// Data holds the category labels and one or more series plotted against them.
type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is a single labelled series. A NaN value is a missing reading.
type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor,omitempty"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
	Fill            *bool     `json:"fill,omitempty"`
}

// MarshalJSON writes missing values as null, which the chart library leaves as gaps.
func (d Dataset) MarshalJSON() ([]byte, error) {
	var data []*float64
	if d.Data != nil {
		data = make([]*float64, len(d.Data))
		for i := range d.Data {
			if !math.IsNaN(d.Data[i]) {
				data[i] = &d.Data[i]
			}
		}
	}
	return json.Marshal(struct {
		Label           string     `json:"label"`
		Data            []*float64 `json:"data"`
		BorderColor     string     `json:"borderColor,omitempty"`
		BackgroundColor string     `json:"backgroundColor,omitempty"`
		Fill            *bool      `json:"fill,omitempty"`
	}{d.Label, data, d.BorderColor, d.BackgroundColor, d.Fill})
}

// Options are the optional display settings.
type Options struct {
	Responsive bool    `json:"responsive,omitempty"`
	Scales     *Scales `json:"scales,omitempty"`
}

type Scales struct {
	X *Axis `json:"x,omitempty"`
	Y *Axis `json:"y,omitempty"`
}

// Axis configures one axis. A nil Display leaves the library default (shown).
type Axis struct {
	Display     *bool `json:"display,omitempty"`
	BeginAtZero bool  `json:"beginAtZero,omitempty"`
}

// Bool returns a pointer to b, for the optional flags above.
func Bool(b bool) *bool {
	return &b
}

// Validate checks the parts of a configuration the renderers rely on.
func (c Config) Validate() error {
	switch c.Type {
	case Line, Bar, Pie:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedType, c.Type)
	}
	if len(c.Data.Datasets) == 0 {
		return errors.New("chart has no datasets")
	}
	return nil
}

// XAxisShown reports whether the category axis is displayed.
func (c Config) XAxisShown() bool {
	if c.Options == nil || c.Options.Scales == nil || c.Options.Scales.X == nil || c.Options.Scales.X.Display == nil {
		return true
	}
	return *c.Options.Scales.X.Display
}

// YBeginsAtZero reports whether the value axis is anchored at zero.
func (c Config) YBeginsAtZero() bool {
	if c.Options == nil || c.Options.Scales == nil || c.Options.Scales.Y == nil {
		return false
	}
	return c.Options.Scales.Y.BeginAtZero
}

// Point is a label paired with its value in a dataset.
type Point struct {
	Label string
	Value float64
}

// Points pairs labels with the values of dataset i, stopping at the shorter of the two.
// Missing values are skipped.
func (c Config) Points(i int) []Point {
	if i < 0 || i >= len(c.Data.Datasets) {
		return nil
	}
	values := c.Data.Datasets[i].Data
	n := min(len(values), len(c.Data.Labels))
	points := make([]Point, 0, n)
	for j := 0; j < n; j++ {
		if math.IsNaN(values[j]) {
			continue
		}
		points = append(points, Point{Label: c.Data.Labels[j], Value: values[j]})
	}
	return points
}
