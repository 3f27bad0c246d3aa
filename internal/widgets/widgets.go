// Package widgets declares the dashboard widgets: which endpoint feeds which rendering
// surface, and how each endpoint's response becomes a chart configuration.
package widgets

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/rogerio-castellano/sales-dashboard/internal/chart"
)

// Mapper converts a raw JSON payload into a chart configuration.
// Each mapper assumes the response shape of its own endpoint.
type Mapper func(raw []byte) (chart.Config, error)

// Descriptor binds an endpoint to the surface its chart is drawn on.
type Descriptor struct {
	Endpoint  string
	SurfaceID string
	ToConfig  Mapper
}

// Typed adapts a pure mapping over a decoded response shape into a Mapper.
// Fields missing from the payload decode to empty series; fields of the wrong type fail.
func Typed[T any](fn func(T) chart.Config) Mapper {
	return func(raw []byte) (chart.Config, error) {
		var data T
		if err := json.Unmarshal(raw, &data); err != nil {
			return chart.Config{}, fmt.Errorf("decode %T: %w", data, err)
		}
		return fn(data), nil
	}
}

// Surface ids, as referenced by the dashboard page.
const (
	OrdersSurface          = "ordersChart"
	StockSurface           = "stockChart"
	PopularProductsSurface = "popularProductsChart"
	RevenueSurface         = "revenueChart"
	CategorySurface        = "categoryPopularityChart"
	PaymentMethodSurface   = "paymentMethodChart"
	TemperatureSurface     = "temperatureChart"
)

var table = []Descriptor{
	{"/api/orders_over_time", OrdersSurface, Typed(OrdersOverTime)},
	{"/api/low_stock_levels", StockSurface, Typed(LowStockLevels)},
	{"/api/most_popular_products", PopularProductsSurface, Typed(MostPopularProducts)},
	{"/api/revenue_generation", RevenueSurface, Typed(RevenueGeneration)},
	{"/api/product_category_popularity", CategorySurface, Typed(CategoryPopularity)},
	{"/api/payment_method_popularity", PaymentMethodSurface, Typed(PaymentMethodPopularity)},
	{"/api/temperature_over_time", TemperatureSurface, Typed(TemperatureOverTime)},
}

// All returns the dashboard widgets with endpoints resolved against baseURL.
// An empty baseURL keeps the endpoint paths relative.
func All(baseURL string) []Descriptor {
	base := strings.TrimRight(baseURL, "/")
	out := make([]Descriptor, len(table))
	for i, d := range table {
		d.Endpoint = base + d.Endpoint
		out[i] = d
	}
	return out
}

// SurfaceIDs lists the rendering surfaces in page order.
func SurfaceIDs() []string {
	ids := make([]string, len(table))
	for i, d := range table {
		ids[i] = d.SurfaceID
	}
	return ids
}

// Lookup returns the widget drawn on surfaceID.
func Lookup(surfaceID string) (Descriptor, bool) {
	for _, d := range table {
		if d.SurfaceID == surfaceID {
			return d, true
		}
	}
	return Descriptor{}, false
}
