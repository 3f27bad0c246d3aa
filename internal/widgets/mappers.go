package widgets

import (
	"math"

	"github.com/rogerio-castellano/sales-dashboard/internal/chart"
	"github.com/rogerio-castellano/sales-dashboard/internal/models"
)

// hiddenX is the option block shared by the bar widgets: values from zero, no category labels.
func hiddenX() *chart.Options {
	return &chart.Options{
		Responsive: true,
		Scales: &chart.Scales{
			Y: &chart.Axis{BeginAtZero: true},
			X: &chart.Axis{Display: chart.Bool(false)},
		},
	}
}

func single(t chart.Type, labels []string, label string, data []float64) chart.Config {
	return chart.Config{
		Type: t,
		Data: chart.Data{
			Labels:   labels,
			Datasets: []chart.Dataset{{Label: label, Data: data}},
		},
	}
}

// readings turns absent values into NaN, the chart's marker for a gap.
func readings(xs []*float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		if x == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *x
	}
	return out
}

func OrdersOverTime(d models.OrdersOverTime) chart.Config {
	return single(chart.Line, d.Dates, "Number of Orders", d.Counts)
}

func LowStockLevels(d models.LowStockLevels) chart.Config {
	cfg := single(chart.Bar, d.Products, "Low Stock", d.Quantities)
	cfg.Options = hiddenX()
	return cfg
}

func MostPopularProducts(d []models.PopularProduct) chart.Config {
	labels := make([]string, len(d))
	values := make([]float64, len(d))
	for i, p := range d {
		labels[i] = p.ProductName
		values[i] = p.TotalQuantity
	}
	cfg := single(chart.Bar, labels, "Quantity Sold", values)
	cfg.Options = hiddenX()
	return cfg
}

func RevenueGeneration(d models.RevenueGeneration) chart.Config {
	return single(chart.Line, d.Dates, "Total Revenue", d.Revenues)
}

func CategoryPopularity(d models.CategoryPopularity) chart.Config {
	return single(chart.Pie, d.Categories, "Total Sales", d.Sales)
}

func PaymentMethodPopularity(d models.PaymentMethodPopularity) chart.Config {
	cfg := single(chart.Pie, d.Methods, "Transaction Count", d.Counts)
	cfg.Options = &chart.Options{
		Responsive: true,
		Scales:     &chart.Scales{X: &chart.Axis{Display: chart.Bool(false)}},
	}
	return cfg
}

func TemperatureOverTime(d models.TemperatureOverTime) chart.Config {
	return chart.Config{
		Type: chart.Line,
		Data: chart.Data{
			Labels: d.Daily.Time,
			Datasets: []chart.Dataset{{
				Label:           "Temperature (°C)",
				Data:            readings(d.Daily.Temperature2mMax),
				BorderColor:     "rgba(255, 0, 0, 1)",
				BackgroundColor: "rgba(200, 0, 192, 0.2)",
				Fill:            chart.Bool(false),
			}},
		},
	}
}
