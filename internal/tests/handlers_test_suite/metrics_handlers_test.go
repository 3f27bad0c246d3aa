package handlers_test_suite

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	api "github.com/rogerio-castellano/sales-dashboard/internal/http"
	handler "github.com/rogerio-castellano/sales-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/sales-dashboard/internal/models"
	"github.com/rogerio-castellano/sales-dashboard/internal/repo"
)

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("failed to decode %s: %v", body, err)
	}
	return v
}

func TestMetricsEndpoints(t *testing.T) {
	r := api.NewRouter()

	tests := []struct {
		path  string
		check func(t *testing.T, body []byte)
	}{
		{"/api/orders_over_time", func(t *testing.T, body []byte) {
			got := decode[models.OrdersOverTime](t, body)
			want := models.OrdersOverTime{Dates: []string{"2024-01-01", "2024-01-02"}, Counts: []float64{2, 1}}
			if !reflect.DeepEqual(want, got) {
				t.Errorf("expected %+v, got %+v", want, got)
			}
		}},
		{"/api/low_stock_levels", func(t *testing.T, body []byte) {
			got := decode[models.LowStockLevels](t, body)
			want := models.LowStockLevels{Products: []string{"Mouse", "Novel", "Keyboard"}, Quantities: []float64{3, 7, 12}}
			if !reflect.DeepEqual(want, got) {
				t.Errorf("expected %+v, got %+v", want, got)
			}
		}},
		{"/api/most_popular_products", func(t *testing.T, body []byte) {
			got := decode[[]models.PopularProduct](t, body)
			if len(got) != 3 {
				t.Fatalf("expected 3 products, got %d", len(got))
			}
			if got[0].ProductName != "Mouse" || got[0].TotalQuantity != 5 {
				t.Errorf("expected Mouse with 5 first, got %+v", got[0])
			}
		}},
		{"/api/revenue_generation", func(t *testing.T, body []byte) {
			got := decode[models.RevenueGeneration](t, body)
			want := models.RevenueGeneration{Dates: []string{"2024-01-01", "2024-01-02"}, Revenues: []float64{192.5, 40}}
			if !reflect.DeepEqual(want, got) {
				t.Errorf("expected %+v, got %+v", want, got)
			}
		}},
		{"/api/product_category_popularity", func(t *testing.T, body []byte) {
			got := decode[models.CategoryPopularity](t, body)
			want := models.CategoryPopularity{Categories: []string{"Peripherals", "Books"}, Sales: []float64{220, 12.5}}
			if !reflect.DeepEqual(want, got) {
				t.Errorf("expected %+v, got %+v", want, got)
			}
		}},
		{"/api/payment_method_popularity", func(t *testing.T, body []byte) {
			got := decode[models.PaymentMethodPopularity](t, body)
			want := models.PaymentMethodPopularity{Methods: []string{"Credit Card", "PayPal"}, Counts: []float64{2, 1}}
			if !reflect.DeepEqual(want, got) {
				t.Errorf("expected %+v, got %+v", want, got)
			}
		}},
		{"/api/temperature_over_time", func(t *testing.T, body []byte) {
			got := decode[models.TemperatureOverTime](t, body)
			temps := got.Daily.Temperature2mMax
			if len(temps) != 2 || temps[0] == nil || temps[1] == nil || *temps[0] != 9.5 || *temps[1] != 11.25 {
				t.Errorf("unexpected temperatures %v", temps)
			}
			var raw map[string]any
			json.Unmarshal(body, &raw)
			if _, ok := raw["daily_units"]; !ok {
				t.Error("expected the upstream document to be passed through unchanged")
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(r, tt.path)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected application/json, got %q", ct)
			}
			tt.check(t, w.Body.Bytes())
		})
	}
}

func TestTemperatureOverTime_UsesOrderDateRange(t *testing.T) {
	r := api.NewRouter()

	w := get(r, "/api/temperature_over_time")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	weather.mu.Lock()
	defer weather.mu.Unlock()
	if weather.start != "2024-01-01" || weather.end != "2024-01-02" {
		t.Errorf("expected range 2024-01-01..2024-01-02, got %s..%s", weather.start, weather.end)
	}
}

func TestTemperatureOverTime_UpstreamFailure(t *testing.T) {
	t.Cleanup(weather.fail(errors.New("archive unavailable")))
	r := api.NewRouter()

	w := get(r, "/api/temperature_over_time")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if body := decode[handler.ErrorResponse](t, w.Body.Bytes()); body.Error != "Internal server error" {
		t.Errorf("unexpected error body %+v", body)
	}
}

type failingRepo struct{ repo.MetricsRepository }

func (failingRepo) OrdersOverTime(context.Context) (models.OrdersOverTime, error) {
	return models.OrdersOverTime{}, errors.New("database is locked")
}

func (failingRepo) OrderDateRange(context.Context) (models.DateRange, error) {
	return models.DateRange{}, repo.ErrNoOrders
}

func TestMetricsEndpoints_RepositoryFailure(t *testing.T) {
	handler.SetMetricsRepo(failingRepo{metricsRepo})
	t.Cleanup(func() { handler.SetMetricsRepo(metricsRepo) })
	r := api.NewRouter()

	for _, path := range []string{"/api/orders_over_time", "/api/temperature_over_time"} {
		w := get(r, path)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("%s: expected 500, got %d", path, w.Code)
		}
		if body := decode[handler.ErrorResponse](t, w.Body.Bytes()); body.Error != "Internal server error" {
			t.Errorf("%s: unexpected error body %+v", path, body)
		}
	}

	// other endpoints are unaffected
	if w := get(r, "/api/low_stock_levels"); w.Code != http.StatusOK {
		t.Errorf("expected 200 OK, got %d", w.Code)
	}
}

func TestNotFound(t *testing.T) {
	r := api.NewRouter()

	for _, path := range []string{"/api/nope", "/products", "/charts"} {
		w := get(r, path)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, w.Code)
		}
		if body := decode[handler.ErrorResponse](t, w.Body.Bytes()); body.Error != "Not found" {
			t.Errorf("%s: unexpected error body %+v", path, body)
		}
	}
}

func TestCORS(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/orders_over_time", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard CORS origin, got %q", got)
	}
}
