package handlers_test_suite

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rogerio-castellano/sales-dashboard/internal/auth"
	api "github.com/rogerio-castellano/sales-dashboard/internal/http"
	handler "github.com/rogerio-castellano/sales-dashboard/internal/http/handlers"
	rl "github.com/rogerio-castellano/sales-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/sales-dashboard/internal/models"
	"github.com/rogerio-castellano/sales-dashboard/internal/repo"
	"github.com/rogerio-castellano/sales-dashboard/internal/surface"
	"github.com/rogerio-castellano/sales-dashboard/internal/widgets"
)

const (
	testSecret     = "test-secret"
	temperatureDoc = `{"latitude":50.6,"longitude":-3.6,"daily_units":{"temperature_2m_max":"°C"},` +
		`"daily":{"time":["2024-01-01","2024-01-02"],"temperature_2m_max":[9.5,11.25]}}`
)

var (
	token        string
	metricsRepo  *repo.InMemoryMetricsRepository
	weather      *fakeWeather
	document     *surface.Document
	refreshCalls atomic.Int32
)

type fakeWeather struct {
	mu         sync.Mutex
	start, end string
	err        error
}

func (f *fakeWeather) DailyMaxTemperature(_ context.Context, start, end string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.start, f.end = start, end
	if f.err != nil {
		return nil, f.err
	}
	return []byte(temperatureDoc), nil
}

func (f *fakeWeather) fail(err error) func() {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		f.err = nil
		f.mu.Unlock()
	}
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func init() {
	rl.SetLimits(1000, 1000)
	setupTestRepos()

	auth.SetSecret(testSecret)
	var err error
	token, err = auth.GenerateToken("operator", time.Hour)
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos() {
	metricsRepo = repo.NewInMemoryMetricsRepository()
	handler.SetMetricsRepo(metricsRepo)
	seedShop()

	weather = &fakeWeather{}
	handler.SetWeatherClient(weather)

	resetDocument()
	handler.SetHealthCheck("database", fakePinger{})
}

// resetDocument gives every test a dashboard with nothing drawn yet.
func resetDocument() {
	document = surface.NewDocument(widgets.SurfaceIDs()...)
	handler.SetDashboard(document, func() { refreshCalls.Add(1) })
}

// seedShop loads three orders over two days:
// Keyboard x2 @ 40 and Mouse x5 @ 20 on 2024-01-01, Novel x1 @ 12.5 on 2024-01-01, Keyboard x1 @ 40 on 2024-01-02.
func seedShop() {
	metricsRepo.Clear()
	metricsRepo.AddCategory(models.Category{ID: 1, Name: "Peripherals"})
	metricsRepo.AddCategory(models.Category{ID: 2, Name: "Books"})
	metricsRepo.AddProduct(models.Product{ID: 1, Name: "Keyboard", CategoryID: 1})
	metricsRepo.AddProduct(models.Product{ID: 2, Name: "Mouse", CategoryID: 1})
	metricsRepo.AddProduct(models.Product{ID: 3, Name: "Novel", CategoryID: 2})
	metricsRepo.SetStock(models.StockLevel{ProductID: 1, Quantity: 12})
	metricsRepo.SetStock(models.StockLevel{ProductID: 2, Quantity: 3})
	metricsRepo.SetStock(models.StockLevel{ProductID: 3, Quantity: 7})
	metricsRepo.AddOrder(models.Order{ID: 1, Date: "2024-01-01"},
		models.OrderDetail{ProductID: 1, Quantity: 2, PriceAtTime: 40},
		models.OrderDetail{ProductID: 2, Quantity: 5, PriceAtTime: 20})
	metricsRepo.AddOrder(models.Order{ID: 2, Date: "2024-01-01"},
		models.OrderDetail{ProductID: 3, Quantity: 1, PriceAtTime: 12.5})
	metricsRepo.AddOrder(models.Order{ID: 3, Date: "2024-01-02"},
		models.OrderDetail{ProductID: 1, Quantity: 1, PriceAtTime: 40})
	metricsRepo.AddPaymentMethod(models.PaymentMethod{ID: 1, Name: "Credit Card"})
	metricsRepo.AddPaymentMethod(models.PaymentMethod{ID: 2, Name: "PayPal"})
	metricsRepo.AddPayment(models.Payment{ID: 1, MethodID: 1})
	metricsRepo.AddPayment(models.Payment{ID: 2, MethodID: 2})
	metricsRepo.AddPayment(models.Payment{ID: 3, MethodID: 1})
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postRefresh(r http.Handler, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/dashboard/refresh", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// newServer serves the router on a real listener for the chart loader to fetch from.
func newServer() *httptest.Server {
	return httptest.NewServer(api.NewRouter())
}
