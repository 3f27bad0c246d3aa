package models

// The types below are the JSON shapes served under /api and consumed by the dashboard widgets.

type OrdersOverTime struct {
	Dates  []string  `json:"dates"`
	Counts []float64 `json:"counts"`
}

type LowStockLevels struct {
	Products   []string  `json:"products"`
	Quantities []float64 `json:"quantities"`
}

// PopularProduct is one entry of the most popular products list.
type PopularProduct struct {
	ProductID     int     `json:"product_id"`
	ProductName   string  `json:"product_name"`
	TotalQuantity float64 `json:"total_quantity"`
}

type RevenueGeneration struct {
	Dates    []string  `json:"dates"`
	Revenues []float64 `json:"revenues"`
}

type CategoryPopularity struct {
	Categories []string  `json:"categories"`
	Sales      []float64 `json:"sales"`
}

type PaymentMethodPopularity struct {
	Methods []string  `json:"methods"`
	Counts  []float64 `json:"counts"`
}

// TemperatureOverTime is the subset of the weather archive response the dashboard reads.
type TemperatureOverTime struct {
	Daily DailyTemperature `json:"daily"`
}

// DailyTemperature holds one reading per day. Days without a reading are null.
type DailyTemperature struct {
	Time             []string   `json:"time"`
	Temperature2mMax []*float64 `json:"temperature_2m_max"`
}

// DateRange is the span of order dates on record.
type DateRange struct {
	Start string `json:"start_date"`
	End   string `json:"end_date"`
}
