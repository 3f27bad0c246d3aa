package surface

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rogerio-castellano/sales-dashboard/internal/chart"
)

const (
	defaultWidth  = 800
	defaultHeight = 400
)

// PNGCharts draws charts as PNG images with go-chart and stores them on the surface.
type PNGCharts struct {
	Width  int
	Height int
}

func NewPNGCharts(width, height int) *PNGCharts {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return &PNGCharts{Width: width, Height: height}
}

// New renders cfg and draws the image on s.
func (p *PNGCharts) New(s *Surface, cfg chart.Config) error {
	image, err := p.Render(cfg)
	if err != nil {
		return err
	}
	s.Draw(cfg, image)
	return nil
}

// Render produces the PNG bytes for cfg. A chart with nothing to plot renders as a titled
// blank canvas.
func (p *PNGCharts) Render(cfg chart.Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	var err error
	switch {
	case !plottable(cfg):
		err = p.empty(cfg, &buf)
	case cfg.Type == chart.Line:
		err = p.line(cfg, &buf)
	case cfg.Type == chart.Bar:
		err = p.bar(cfg, &buf)
	case cfg.Type == chart.Pie:
		err = p.pie(cfg, &buf)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render %s chart: %w", cfg.Type, err)
	}
	return buf.Bytes(), nil
}

// plottable reports whether go-chart can draw cfg: it rejects charts without series, bars
// or positive pie slices.
func plottable(cfg chart.Config) bool {
	switch cfg.Type {
	case chart.Line:
		for i := range cfg.Data.Datasets {
			if len(cfg.Points(i)) > 0 {
				return true
			}
		}
		return false
	case chart.Pie:
		for _, pt := range cfg.Points(0) {
			if pt.Value > 0 {
				return true
			}
		}
		return false
	default:
		return len(cfg.Points(0)) > 0
	}
}

func (p *PNGCharts) empty(cfg chart.Config, buf *bytes.Buffer) error {
	r, err := gochart.PNG(p.Width, p.Height)
	if err != nil {
		return err
	}
	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(p.Width, 0)
	r.LineTo(p.Width, p.Height)
	r.LineTo(0, p.Height)
	r.Close()
	r.Fill()

	if title := cfg.Data.Datasets[0].Label; title != "" {
		font, err := gochart.GetDefaultFont()
		if err != nil {
			return err
		}
		r.SetFont(font)
		r.SetFontColor(drawing.ColorBlack)
		r.SetFontSize(12)
		box := r.MeasureText(title)
		r.Text(title, (p.Width-box.Width())/2, p.Height/2)
	}
	return r.Save(buf)
}

// line draws each dataset as one series per run of present values, so missing readings
// leave a gap.
func (p *PNGCharts) line(cfg chart.Config, buf *bytes.Buffer) error {
	n := len(cfg.Data.Labels)
	var series, named []gochart.Series
	for i, ds := range cfg.Data.Datasets {
		// runs of one dataset share its color
		style := gochart.Style{StrokeWidth: 2, StrokeColor: gochart.GetDefaultColor(i)}
		if c, ok := parseColor(ds.BorderColor); ok {
			style.StrokeColor = c
		}
		style.DotColor = style.StrokeColor
		if c, ok := parseColor(ds.BackgroundColor); ok && ds.Fill != nil && *ds.Fill {
			style.FillColor = c
		}

		name := ds.Label
		var xs, ys []float64
		flush := func() {
			if len(xs) == 0 {
				return
			}
			runStyle := style
			if len(xs) == 1 {
				runStyle.DotWidth = 3
			}
			run := gochart.ContinuousSeries{Name: name, XValues: xs, YValues: ys, Style: runStyle}
			series = append(series, run)
			if name != "" {
				named = append(named, run)
			}
			// one legend entry per dataset
			name = ""
			xs, ys = nil, nil
		}
		for j := 0; j < min(n, len(ds.Data)); j++ {
			if math.IsNaN(ds.Data[j]) {
				flush()
				continue
			}
			xs = append(xs, float64(j))
			ys = append(ys, ds.Data[j])
		}
		flush()
	}

	xTicks := ticks(cfg.Data.Labels)
	// go-chart needs two X values to compute a range
	if len(xTicks) == 1 {
		xTicks = append(xTicks, gochart.Tick{Value: 1})
	}

	c := gochart.Chart{
		Width:  p.Width,
		Height: p.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Style: gochart.Style{Hidden: !cfg.XAxisShown()},
			Ticks: xTicks,
		},
		YAxis:  gochart.YAxis{Range: p.valueRange(cfg)},
		Series: series,
	}
	legend := c
	legend.Series = named
	c.Elements = []gochart.Renderable{gochart.Legend(&legend)}
	return c.Render(gochart.PNG, buf)
}

func (p *PNGCharts) bar(cfg chart.Config, buf *bytes.Buffer) error {
	points := cfg.Points(0)
	bars := make([]gochart.Value, len(points))
	for i, pt := range points {
		bars[i] = gochart.Value{Label: pt.Label, Value: pt.Value}
	}

	width := max(4, (p.Width-100)/(2*len(bars)))
	c := gochart.BarChart{
		Title:      cfg.Data.Datasets[0].Label,
		Width:      p.Width,
		Height:     p.Height,
		BarWidth:   width,
		BarSpacing: width,
		XAxis:      gochart.Style{Hidden: !cfg.XAxisShown()},
		YAxis:      gochart.YAxis{Range: p.valueRange(cfg)},
		Bars:       bars,
	}
	return c.Render(gochart.PNG, buf)
}

func (p *PNGCharts) pie(cfg chart.Config, buf *bytes.Buffer) error {
	var values []gochart.Value
	for _, pt := range cfg.Points(0) {
		// slices need a positive share of the whole
		if pt.Value > 0 {
			values = append(values, gochart.Value{Label: pt.Label, Value: pt.Value})
		}
	}

	c := gochart.PieChart{
		Title:  cfg.Data.Datasets[0].Label,
		Width:  p.Width,
		Height: p.Height,
		Values: values,
	}
	return c.Render(gochart.PNG, buf)
}

// valueRange anchors the value axis at zero when asked to and widens flat series, which
// go-chart rejects as a zero range. Otherwise go-chart picks the range.
func (p *PNGCharts) valueRange(cfg chart.Config) gochart.Range {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, ds := range cfg.Data.Datasets {
		for _, v := range ds.Data {
			if math.IsNaN(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		lo, hi = 0, 0
	}

	zero := cfg.YBeginsAtZero()
	if zero {
		lo = math.Min(0, lo)
	}
	if hi > lo && !zero {
		return nil
	}
	if hi <= lo {
		hi = lo + 1
	}
	return &gochart.ContinuousRange{Min: lo, Max: hi}
}

func ticks(labels []string) []gochart.Tick {
	if len(labels) == 0 {
		return nil
	}
	// keep at most ~10 labels readable on the axis
	step := max(1, len(labels)/10)
	var out []gochart.Tick
	for i := 0; i < len(labels); i += step {
		out = append(out, gochart.Tick{Value: float64(i), Label: labels[i]})
	}
	// the last tick bounds the X range
	if last := len(labels) - 1; out[len(out)-1].Value != float64(last) {
		out = append(out, gochart.Tick{Value: float64(last), Label: labels[last]})
	}
	return out
}

// parseColor understands the CSS forms used by the widgets: rgba(r, g, b, a), rgb(r, g, b)
// and #rrggbb.
func parseColor(css string) (drawing.Color, bool) {
	css = strings.TrimSpace(css)
	switch {
	case css == "":
		return drawing.Color{}, false
	case strings.HasPrefix(css, "#"):
		return drawing.ColorFromHex(strings.TrimPrefix(css, "#")), true
	case strings.HasPrefix(css, "rgba(") || strings.HasPrefix(css, "rgb("):
		open, end := strings.IndexByte(css, '('), strings.LastIndexByte(css, ')')
		if end <= open {
			return drawing.Color{}, false
		}
		parts := strings.Split(css[open+1:end], ",")
		if len(parts) != 3 && len(parts) != 4 {
			return drawing.Color{}, false
		}
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
			if err != nil || v < 0 || v > 255 {
				return drawing.Color{}, false
			}
			rgb[i] = uint8(v)
		}
		alpha := uint8(255)
		if len(parts) == 4 {
			a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
			if err != nil || a < 0 || a > 1 {
				return drawing.Color{}, false
			}
			alpha = uint8(math.Round(a * 255))
		}
		return drawing.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: alpha}, true
	}
	return drawing.Color{}, false
}
