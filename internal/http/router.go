package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/sales-dashboard/docs"
	"github.com/rogerio-castellano/sales-dashboard/internal/http/handlers"
)

var logger = zerolog.Nop()

// SetLogger sets the access and handler logger.
func SetLogger(l zerolog.Logger) {
	logger = l
	handlers.SetLogger(l)
}

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         3600,
	}))

	r.NotFound(handlers.NotFoundHandler)
	r.MethodNotAllowed(handlers.MethodNotAllowedHandler)

	r.Get("/", handlers.DashboardPageHandler)
	r.Get("/health", handlers.HealthHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Get("/orders_over_time", handlers.OrdersOverTimeHandler)
		r.Get("/low_stock_levels", handlers.LowStockLevelsHandler)
		r.Get("/most_popular_products", handlers.MostPopularProductsHandler)
		r.Get("/revenue_generation", handlers.RevenueGenerationHandler)
		r.Get("/product_category_popularity", handlers.ProductCategoryPopularityHandler)
		r.Get("/payment_method_popularity", handlers.PaymentMethodPopularityHandler)
		r.Get("/temperature_over_time", handlers.TemperatureOverTimeHandler)
	})

	r.Get("/charts/{id}.png", handlers.ChartImageHandler)
	r.Get("/charts/{id}.json", handlers.ChartConfigHandler)

	r.With(AuthMiddleware).Post("/dashboard/refresh", handlers.RefreshDashboardHandler)

	return r
}

// RequestLogger writes one debug line per request.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}
