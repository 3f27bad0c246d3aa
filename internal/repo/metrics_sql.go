package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/sales-dashboard/internal/models"
)

const queryTimeout = 3 * time.Second

// Order dates are cast to text so SQLite and Postgres both scan them as YYYY-MM-DD.
const (
	ordersOverTimeSQL = `
		SELECT CAST(order_date AS TEXT) AS day, COUNT(order_id) AS num_orders
		FROM orders
		GROUP BY order_date
		ORDER BY order_date`

	lowStockLevelsSQL = `
		SELECT p.product_name, s.quantity
		FROM stock_level s
		JOIN products p ON s.product_id = p.product_id
		ORDER BY s.quantity ASC`

	mostPopularProductsSQL = `
		SELECT p.product_id, p.product_name, SUM(od.quantity_ordered) AS total_quantity
		FROM order_details od
		JOIN products p ON od.product_id = p.product_id
		GROUP BY p.product_id, p.product_name
		ORDER BY total_quantity DESC
		LIMIT %d`

	revenueGenerationSQL = `
		SELECT CAST(o.order_date AS TEXT) AS day, SUM(od.price_at_time * od.quantity_ordered) AS total_revenue
		FROM order_details od
		JOIN orders o ON od.order_id = o.order_id
		GROUP BY o.order_date
		ORDER BY o.order_date`

	productCategoryPopularitySQL = `
		SELECT pc.category_name, SUM(od.price_at_time * od.quantity_ordered) AS total_sales
		FROM products p
		JOIN product_categories pc ON p.category_id = pc.category_id
		JOIN order_details od ON p.product_id = od.product_id
		GROUP BY pc.category_name
		ORDER BY total_sales DESC`

	paymentMethodPopularitySQL = `
		SELECT pm.method_name, COUNT(p.payment_id) AS transaction_count
		FROM payments p
		JOIN payment_methods pm ON p.method_id = pm.method_id
		GROUP BY pm.method_name
		ORDER BY transaction_count DESC`

	orderDateRangeSQL = `
		SELECT CAST(MIN(order_date) AS TEXT), CAST(MAX(order_date) AS TEXT)
		FROM orders`
)

// SQLMetricsRepository runs the dashboard aggregates against SQLite or Postgres.
type SQLMetricsRepository struct {
	db *sql.DB
}

func NewSQLMetricsRepository(db *sql.DB) *SQLMetricsRepository {
	return &SQLMetricsRepository{db: db}
}

// query runs q and hands every row to scan.
func (r *SQLMetricsRepository) query(ctx context.Context, q string, scan func(*sql.Rows) error) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("scan error: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows error: %w", err)
	}
	return nil
}

func (r *SQLMetricsRepository) OrdersOverTime(ctx context.Context) (models.OrdersOverTime, error) {
	m := models.OrdersOverTime{Dates: []string{}, Counts: []float64{}}
	err := r.query(ctx, ordersOverTimeSQL, func(rows *sql.Rows) error {
		var day string
		var n int
		if err := rows.Scan(&day, &n); err != nil {
			return err
		}
		m.Dates = append(m.Dates, day)
		m.Counts = append(m.Counts, float64(n))
		return nil
	})
	return m, err
}

func (r *SQLMetricsRepository) LowStockLevels(ctx context.Context) (models.LowStockLevels, error) {
	m := models.LowStockLevels{Products: []string{}, Quantities: []float64{}}
	err := r.query(ctx, lowStockLevelsSQL, func(rows *sql.Rows) error {
		var name string
		var qty int
		if err := rows.Scan(&name, &qty); err != nil {
			return err
		}
		m.Products = append(m.Products, name)
		m.Quantities = append(m.Quantities, float64(qty))
		return nil
	})
	return m, err
}

func (r *SQLMetricsRepository) MostPopularProducts(ctx context.Context) ([]models.PopularProduct, error) {
	products := make([]models.PopularProduct, 0, popularProductsLimit)
	err := r.query(ctx, fmt.Sprintf(mostPopularProductsSQL, popularProductsLimit), func(rows *sql.Rows) error {
		var p models.PopularProduct
		var total int
		if err := rows.Scan(&p.ProductID, &p.ProductName, &total); err != nil {
			return err
		}
		p.TotalQuantity = float64(total)
		products = append(products, p)
		return nil
	})
	return products, err
}

func (r *SQLMetricsRepository) RevenueGeneration(ctx context.Context) (models.RevenueGeneration, error) {
	m := models.RevenueGeneration{Dates: []string{}, Revenues: []float64{}}
	err := r.query(ctx, revenueGenerationSQL, func(rows *sql.Rows) error {
		var day string
		var revenue float64
		if err := rows.Scan(&day, &revenue); err != nil {
			return err
		}
		m.Dates = append(m.Dates, day)
		m.Revenues = append(m.Revenues, revenue)
		return nil
	})
	return m, err
}

func (r *SQLMetricsRepository) ProductCategoryPopularity(ctx context.Context) (models.CategoryPopularity, error) {
	m := models.CategoryPopularity{Categories: []string{}, Sales: []float64{}}
	err := r.query(ctx, productCategoryPopularitySQL, func(rows *sql.Rows) error {
		var category string
		var sales float64
		if err := rows.Scan(&category, &sales); err != nil {
			return err
		}
		m.Categories = append(m.Categories, category)
		m.Sales = append(m.Sales, sales)
		return nil
	})
	return m, err
}

func (r *SQLMetricsRepository) PaymentMethodPopularity(ctx context.Context) (models.PaymentMethodPopularity, error) {
	m := models.PaymentMethodPopularity{Methods: []string{}, Counts: []float64{}}
	err := r.query(ctx, paymentMethodPopularitySQL, func(rows *sql.Rows) error {
		var method string
		var n int
		if err := rows.Scan(&method, &n); err != nil {
			return err
		}
		m.Methods = append(m.Methods, method)
		m.Counts = append(m.Counts, float64(n))
		return nil
	})
	return m, err
}

func (r *SQLMetricsRepository) OrderDateRange(ctx context.Context) (models.DateRange, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var start, end sql.NullString
	err := r.db.QueryRowContext(ctx, orderDateRangeSQL).Scan(&start, &end)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !start.Valid) {
		return models.DateRange{}, ErrNoOrders
	}
	if err != nil {
		return models.DateRange{}, fmt.Errorf("query failed: %w", err)
	}
	return models.DateRange{Start: start.String, End: end.String}, nil
}
