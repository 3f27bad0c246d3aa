package chart

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestConfigJSON_LineWithoutOptions(t *testing.T) {
	cfg := Config{
		Type: Line,
		Data: Data{
			Labels:   []string{"2024-01-01", "2024-01-02"},
			Datasets: []Dataset{{Label: "Number of Orders", Data: []float64{3, 5}}},
		},
	}

	out, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"type":"line","data":{"labels":["2024-01-01","2024-01-02"],"datasets":[{"label":"Number of Orders","data":[3,5]}]}}`
	if string(out) != want {
		t.Errorf("expected %s, got %s", want, out)
	}
}

func TestConfigJSON_ScalesAndFill(t *testing.T) {
	cfg := Config{
		Type: Bar,
		Data: Data{
			Labels:   []string{"P1"},
			Datasets: []Dataset{{Label: "Low Stock", Data: []float64{2}, Fill: Bool(false)}},
		},
		Options: &Options{
			Responsive: true,
			Scales: &Scales{
				Y: &Axis{BeginAtZero: true},
				X: &Axis{Display: Bool(false)},
			},
		},
	}

	out, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"type":"bar","data":{"labels":["P1"],"datasets":[{"label":"Low Stock","data":[2],"fill":false}]},` +
		`"options":{"responsive":true,"scales":{"x":{"display":false},"y":{"beginAtZero":true}}}}`
	if string(out) != want {
		t.Errorf("expected %s, got %s", want, out)
	}
}

func TestConfigJSON_MissingValuesAreNull(t *testing.T) {
	cfg := Config{
		Type: Line,
		Data: Data{
			Labels:   []string{"2024-01-01", "2024-01-02", "2024-01-03"},
			Datasets: []Dataset{{Label: "Temperature (°C)", Data: []float64{7.5, math.NaN(), 10}}},
		},
	}

	out, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"type":"line","data":{"labels":["2024-01-01","2024-01-02","2024-01-03"],"datasets":[{"label":"Temperature (°C)","data":[7.5,null,10]}]}}`
	if string(out) != want {
		t.Errorf("expected %s, got %s", want, out)
	}

	points := cfg.Points(0)
	if len(points) != 2 || points[1] != (Point{Label: "2024-01-03", Value: 10}) {
		t.Errorf("expected the missing reading to be skipped, got %+v", points)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"line", Config{Type: Line, Data: Data{Datasets: []Dataset{{}}}}, false},
		{"pie", Config{Type: Pie, Data: Data{Datasets: []Dataset{{}}}}, false},
		{"unknown type", Config{Type: "radar", Data: Data{Datasets: []Dataset{{}}}}, true},
		{"no datasets", Config{Type: Bar}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}

	err := Config{Type: "radar", Data: Data{Datasets: []Dataset{{}}}}.Validate()
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestAxisHelpers(t *testing.T) {
	plain := Config{Type: Line}
	if !plain.XAxisShown() {
		t.Error("x axis should be shown by default")
	}
	if plain.YBeginsAtZero() {
		t.Error("y axis should not begin at zero by default")
	}

	styled := Config{Type: Bar, Options: &Options{Scales: &Scales{X: &Axis{Display: Bool(false)}, Y: &Axis{BeginAtZero: true}}}}
	if styled.XAxisShown() {
		t.Error("x axis should be hidden")
	}
	if !styled.YBeginsAtZero() {
		t.Error("y axis should begin at zero")
	}
}

func TestPoints_TruncatesToShorterSide(t *testing.T) {
	cfg := Config{
		Type: Pie,
		Data: Data{
			Labels:   []string{"Card", "Cash", "Voucher"},
			Datasets: []Dataset{{Data: []float64{7, 2}}},
		},
	}

	points := cfg.Points(0)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[1] != (Point{Label: "Cash", Value: 2}) {
		t.Errorf("unexpected second point: %+v", points[1])
	}
	if cfg.Points(3) != nil {
		t.Error("expected nil for an out of range dataset")
	}
}
