package handlers_integrated_test_suite

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"github.com/rogerio-castellano/sales-dashboard/internal/db"
	handler "github.com/rogerio-castellano/sales-dashboard/internal/http/handlers"
	rl "github.com/rogerio-castellano/sales-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/sales-dashboard/internal/repo"
	"github.com/rogerio-castellano/sales-dashboard/internal/surface"
	"github.com/rogerio-castellano/sales-dashboard/internal/weather"
	"github.com/rogerio-castellano/sales-dashboard/internal/widgets"
)

var (
	database *sql.DB
	document *surface.Document
	archive  *httptest.Server
)

const archiveDoc = `{"daily":{"time":["2024-02-01","2024-02-02","2024-02-03"],"temperature_2m_max":[7.5,null,10]}}`

func init() {
	rl.SetLimits(1000, 1000)
	setupTestRepos()
}

// setupTestRepos runs against Postgres when DATABASE_URL is set and a throwaway SQLite file
// otherwise.
func setupTestRepos() {
	driver, dsn := db.DriverPostgres, os.Getenv("DATABASE_URL")
	if dsn == "" {
		dir, err := os.MkdirTemp("", "dashboard-it-")
		if err != nil {
			log.Fatal("could not create temp dir:", err)
		}
		driver, dsn = db.DriverSQLite, filepath.Join(dir, "shop.db")
	}

	var err error
	database, err = db.Connect(driver, dsn)
	if err != nil {
		log.Fatal("could not connect to database:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.EnsureSchema(ctx, database); err != nil {
		log.Fatal("could not create schema:", err)
	}
	if err := seedDatabase(ctx); err != nil {
		log.Fatal("could not seed database:", err)
	}

	handler.SetMetricsRepo(repo.NewSQLMetricsRepository(database))
	handler.SetHealthCheck("database", handler.PingFunc(database.PingContext))

	archive = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("start_date") != "2024-02-01" || q.Get("end_date") != "2024-02-03" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":true,"reason":"unexpected range"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(archiveDoc))
	}))
	handler.SetWeatherClient(weather.NewClient(weather.WithBaseURL(archive.URL)))

	resetDocument()
}

func resetDocument() {
	document = surface.NewDocument(widgets.SurfaceIDs()...)
	handler.SetDashboard(document, func() {})
}

func seedDatabase(ctx context.Context) error {
	statements := []string{
		`DELETE FROM payments`,
		`DELETE FROM payment_methods`,
		`DELETE FROM order_details`,
		`DELETE FROM orders`,
		`DELETE FROM stock_level`,
		`DELETE FROM products`,
		`DELETE FROM product_categories`,
		`INSERT INTO product_categories (category_id, category_name) VALUES (1, 'Garden'), (2, 'Kitchen')`,
		`INSERT INTO products (product_id, product_name, category_id) VALUES (1, 'Rake', 1), (2, 'Kettle', 2), (3, 'Spade', 1)`,
		`INSERT INTO stock_level (product_id, quantity) VALUES (1, 4), (2, 30), (3, 1)`,
		`INSERT INTO orders (order_id, order_date) VALUES (1, '2024-02-01'), (2, '2024-02-03'), (3, '2024-02-03')`,
		`INSERT INTO order_details (order_id, product_id, quantity_ordered, price_at_time) VALUES
			(1, 1, 3, 15), (1, 2, 1, 25), (2, 3, 2, 20), (3, 1, 1, 15)`,
		`INSERT INTO payment_methods (method_id, method_name) VALUES (1, 'Cash'), (2, 'Credit Card')`,
		`INSERT INTO payments (payment_id, method_id) VALUES (1, 2), (2, 1), (3, 2)`,
	}
	for _, stmt := range statements {
		if _, err := database.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", stmt, err)
		}
	}
	return nil
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
