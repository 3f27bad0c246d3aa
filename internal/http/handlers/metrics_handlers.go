package handlers

import (
	"fmt"
	"net/http"
)

// OrdersOverTimeHandler godoc
// @Summary Number of orders per day
// @Tags api
// @Produce json
// @Success 200 {object} models.OrdersOverTime
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/orders_over_time [get]
func OrdersOverTimeHandler(w http.ResponseWriter, r *http.Request) {
	m, err := metricsRepo.OrdersOverTime(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	respond(w, m)
}

// LowStockLevelsHandler godoc
// @Summary Stock on hand per product, lowest first
// @Tags api
// @Produce json
// @Success 200 {object} models.LowStockLevels
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/low_stock_levels [get]
func LowStockLevelsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := metricsRepo.LowStockLevels(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	respond(w, m)
}

// MostPopularProductsHandler godoc
// @Summary Ten best selling products by quantity
// @Tags api
// @Produce json
// @Success 200 {array} models.PopularProduct
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/most_popular_products [get]
func MostPopularProductsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := metricsRepo.MostPopularProducts(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	respond(w, m)
}

// RevenueGenerationHandler godoc
// @Summary Revenue per day
// @Tags api
// @Produce json
// @Success 200 {object} models.RevenueGeneration
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/revenue_generation [get]
func RevenueGenerationHandler(w http.ResponseWriter, r *http.Request) {
	m, err := metricsRepo.RevenueGeneration(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	respond(w, m)
}

// ProductCategoryPopularityHandler godoc
// @Summary Sales per product category
// @Tags api
// @Produce json
// @Success 200 {object} models.CategoryPopularity
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/product_category_popularity [get]
func ProductCategoryPopularityHandler(w http.ResponseWriter, r *http.Request) {
	m, err := metricsRepo.ProductCategoryPopularity(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	respond(w, m)
}

// PaymentMethodPopularityHandler godoc
// @Summary Transactions per payment method
// @Tags api
// @Produce json
// @Success 200 {object} models.PaymentMethodPopularity
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/payment_method_popularity [get]
func PaymentMethodPopularityHandler(w http.ResponseWriter, r *http.Request) {
	m, err := metricsRepo.PaymentMethodPopularity(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	respond(w, m)
}

// TemperatureOverTimeHandler godoc
// @Summary Daily maximum temperature over the span of recorded orders
// @Description Proxies the open-meteo archive for the first to last order date.
// @Tags api
// @Produce json
// @Success 200 {object} models.TemperatureOverTime
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/temperature_over_time [get]
func TemperatureOverTimeHandler(w http.ResponseWriter, r *http.Request) {
	dr, err := metricsRepo.OrderDateRange(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	if weatherClient == nil {
		internalError(w, r, fmt.Errorf("weather client not configured"))
		return
	}

	body, err := weatherClient.DailyMaxTemperature(r.Context(), dr.Start, dr.End)
	if err != nil {
		internalError(w, r, err)
		return
	}
	if err := writeRawJSON(w, http.StatusOK, body); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
	}
}
