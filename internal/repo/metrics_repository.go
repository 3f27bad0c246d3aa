package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/sales-dashboard/internal/models"
)

// ErrNoOrders is returned when a date range is requested but no orders exist.
var ErrNoOrders = errors.New("no orders on record")

// popularProductsLimit caps the most popular products list.
const popularProductsLimit = 10

// MetricsRepository serves the aggregates behind the dashboard charts.
type MetricsRepository interface {
	OrdersOverTime(ctx context.Context) (models.OrdersOverTime, error)
	LowStockLevels(ctx context.Context) (models.LowStockLevels, error)
	MostPopularProducts(ctx context.Context) ([]models.PopularProduct, error)
	RevenueGeneration(ctx context.Context) (models.RevenueGeneration, error)
	ProductCategoryPopularity(ctx context.Context) (models.CategoryPopularity, error)
	PaymentMethodPopularity(ctx context.Context) (models.PaymentMethodPopularity, error)
	OrderDateRange(ctx context.Context) (models.DateRange, error)
}
