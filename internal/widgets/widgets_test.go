package widgets

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/sales-dashboard/internal/chart"
)

func mapFor(t *testing.T, surfaceID, payload string) chart.Config {
	t.Helper()
	d, ok := Lookup(surfaceID)
	require.True(t, ok, "no widget for surface %s", surfaceID)
	cfg, err := d.ToConfig([]byte(payload))
	require.NoError(t, err)
	return cfg
}

func TestOrdersOverTime(t *testing.T) {
	cfg := mapFor(t, OrdersSurface, `{"dates":["2024-01-01","2024-01-02"],"counts":[3,5]}`)

	require.Equal(t, chart.Config{
		Type: chart.Line,
		Data: chart.Data{
			Labels:   []string{"2024-01-01", "2024-01-02"},
			Datasets: []chart.Dataset{{Label: "Number of Orders", Data: []float64{3, 5}}},
		},
	}, cfg)
}

func TestMostPopularProducts(t *testing.T) {
	cfg := mapFor(t, PopularProductsSurface,
		`[{"product_name":"A","total_quantity":10},{"product_name":"B","total_quantity":4}]`)

	require.Equal(t, chart.Bar, cfg.Type)
	require.Equal(t, []string{"A", "B"}, cfg.Data.Labels)
	require.Len(t, cfg.Data.Datasets, 1)
	require.Equal(t, "Quantity Sold", cfg.Data.Datasets[0].Label)
	require.Equal(t, []float64{10, 4}, cfg.Data.Datasets[0].Data)
	require.False(t, cfg.XAxisShown())
}

func TestLowStockLevels(t *testing.T) {
	cfg := mapFor(t, StockSurface, `{"products":["P1"],"quantities":[2]}`)

	require.Equal(t, chart.Bar, cfg.Type)
	require.Equal(t, []string{"P1"}, cfg.Data.Labels)
	require.Equal(t, []float64{2}, cfg.Data.Datasets[0].Data)
	require.True(t, cfg.YBeginsAtZero())
	require.False(t, cfg.XAxisShown())
	require.True(t, cfg.Options.Responsive)
}

func TestRevenueGeneration(t *testing.T) {
	cfg := mapFor(t, RevenueSurface, `{"dates":["2024-01-01"],"revenues":[129.5]}`)

	require.Equal(t, chart.Line, cfg.Type)
	require.Equal(t, "Total Revenue", cfg.Data.Datasets[0].Label)
	require.Equal(t, []float64{129.5}, cfg.Data.Datasets[0].Data)
	require.Nil(t, cfg.Options)
}

func TestCategoryPopularity(t *testing.T) {
	cfg := mapFor(t, CategorySurface, `{"categories":["Books","Games"],"sales":[80.25,12]}`)

	require.Equal(t, chart.Pie, cfg.Type)
	require.Equal(t, []string{"Books", "Games"}, cfg.Data.Labels)
	require.Equal(t, "Total Sales", cfg.Data.Datasets[0].Label)
	require.Equal(t, []float64{80.25, 12}, cfg.Data.Datasets[0].Data)
}

func TestPaymentMethodPopularity(t *testing.T) {
	cfg := mapFor(t, PaymentMethodSurface, `{"methods":["Card","Cash"],"counts":[7,2]}`)

	require.Equal(t, chart.Pie, cfg.Type)
	require.Equal(t, "Transaction Count", cfg.Data.Datasets[0].Label)
	require.False(t, cfg.XAxisShown())
	require.False(t, cfg.YBeginsAtZero())
}

func TestTemperatureOverTime(t *testing.T) {
	cfg := mapFor(t, TemperatureSurface,
		`{"latitude":50.6,"daily_units":{"temperature_2m_max":"°C"},"daily":{"time":["2024-01-01","2024-01-02"],"temperature_2m_max":[8.4,null]}}`)

	require.Equal(t, chart.Line, cfg.Type)
	require.Equal(t, []string{"2024-01-01", "2024-01-02"}, cfg.Data.Labels)
	ds := cfg.Data.Datasets[0]
	require.Equal(t, "Temperature (°C)", ds.Label)
	require.Len(t, ds.Data, 2)
	require.Equal(t, 8.4, ds.Data[0])
	require.True(t, math.IsNaN(ds.Data[1]), "a null reading is a gap")
	require.Equal(t, "rgba(255, 0, 0, 1)", ds.BorderColor)
	require.Equal(t, "rgba(200, 0, 192, 0.2)", ds.BackgroundColor)
	require.NotNil(t, ds.Fill)
	require.False(t, *ds.Fill)
}

func TestMapper_AcceptsFractionalCounts(t *testing.T) {
	cfg := mapFor(t, PaymentMethodSurface, `{"methods":["Card","Cash"],"counts":[2.5,1]}`)
	require.Equal(t, []float64{2.5, 1}, cfg.Data.Datasets[0].Data)

	cfg = mapFor(t, PopularProductsSurface, `[{"product_id":1,"product_name":"Rake","total_quantity":4.5}]`)
	require.Equal(t, []float64{4.5}, cfg.Data.Datasets[0].Data)
}

func TestMapper_MissingFieldsGiveEmptySeries(t *testing.T) {
	cfg := mapFor(t, OrdersSurface, `{}`)

	require.Empty(t, cfg.Data.Labels)
	require.Empty(t, cfg.Data.Datasets[0].Data)
}

func TestMapper_WrongShapeFails(t *testing.T) {
	d, _ := Lookup(PopularProductsSurface)
	_, err := d.ToConfig([]byte(`{"products":["P1"],"quantities":[2]}`))
	require.Error(t, err)

	d, _ = Lookup(OrdersSurface)
	_, err = d.ToConfig([]byte(`{"dates":"2024-01-01","counts":[1]}`))
	require.Error(t, err)
}

func TestAll_ResolvesAgainstBaseURL(t *testing.T) {
	ds := All("http://localhost:8080/")

	require.Len(t, ds, 7)
	require.Equal(t, "http://localhost:8080/api/orders_over_time", ds[0].Endpoint)
	require.Equal(t, OrdersSurface, ds[0].SurfaceID)
	require.Equal(t, "/api/temperature_over_time", All("")[6].Endpoint)

	// the package table itself is left untouched
	require.Equal(t, "/api/orders_over_time", table[0].Endpoint)
}

func TestSurfaceIDs_Unique(t *testing.T) {
	seen := map[string]bool{}
	for _, id := range SurfaceIDs() {
		require.False(t, seen[id], "duplicate surface %s", id)
		seen[id] = true
	}
	require.Len(t, seen, len(table))

	_, ok := Lookup("missingChart")
	require.False(t, ok)
}
