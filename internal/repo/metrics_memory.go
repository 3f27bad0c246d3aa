package repo

import (
	"context"
	"sort"
	"sync"

	"github.com/rogerio-castellano/sales-dashboard/internal/models"
)

// InMemoryMetricsRepository computes the dashboard aggregates from rows held in memory.
type InMemoryMetricsRepository struct {
	mu             sync.RWMutex
	products       []models.Product
	categories     []models.Category
	stock          []models.StockLevel
	orders         []models.Order
	details        []models.OrderDetail
	paymentMethods []models.PaymentMethod
	payments       []models.Payment
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (r *InMemoryMetricsRepository) AddProduct(p models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, p)
}

func (r *InMemoryMetricsRepository) AddCategory(c models.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = append(r.categories, c)
}

func (r *InMemoryMetricsRepository) SetStock(s models.StockLevel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.stock {
		if r.stock[i].ProductID == s.ProductID {
			r.stock[i] = s
			return
		}
	}
	r.stock = append(r.stock, s)
}

// AddOrder records an order together with its lines.
func (r *InMemoryMetricsRepository) AddOrder(o models.Order, lines ...models.OrderDetail) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o)
	for _, l := range lines {
		l.OrderID = o.ID
		r.details = append(r.details, l)
	}
}

func (r *InMemoryMetricsRepository) AddPaymentMethod(m models.PaymentMethod) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paymentMethods = append(r.paymentMethods, m)
}

func (r *InMemoryMetricsRepository) AddPayment(p models.Payment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, p)
}

// Clear drops every row.
func (r *InMemoryMetricsRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products, r.categories, r.stock = nil, nil, nil
	r.orders, r.details = nil, nil
	r.paymentMethods, r.payments = nil, nil
}

func (r *InMemoryMetricsRepository) OrdersOverTime(ctx context.Context) (models.OrdersOverTime, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := map[string]int{}
	for _, o := range r.orders {
		counts[o.Date]++
	}
	m := models.OrdersOverTime{Dates: sortedKeys(counts), Counts: []float64{}}
	for _, d := range m.Dates {
		m.Counts = append(m.Counts, float64(counts[d]))
	}
	return m, nil
}

func (r *InMemoryMetricsRepository) LowStockLevels(ctx context.Context) (models.LowStockLevels, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.productNames()
	levels := make([]models.StockLevel, 0, len(r.stock))
	for _, s := range r.stock {
		if _, ok := names[s.ProductID]; ok {
			levels = append(levels, s)
		}
	}
	sort.SliceStable(levels, func(i, j int) bool { return levels[i].Quantity < levels[j].Quantity })

	m := models.LowStockLevels{Products: []string{}, Quantities: []float64{}}
	for _, s := range levels {
		m.Products = append(m.Products, names[s.ProductID])
		m.Quantities = append(m.Quantities, float64(s.Quantity))
	}
	return m, nil
}

func (r *InMemoryMetricsRepository) MostPopularProducts(ctx context.Context) ([]models.PopularProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.productNames()
	totals := map[int]int{}
	for _, d := range r.details {
		if _, ok := names[d.ProductID]; ok {
			totals[d.ProductID] += d.Quantity
		}
	}

	products := make([]models.PopularProduct, 0, len(totals))
	for id, total := range totals {
		products = append(products, models.PopularProduct{ProductID: id, ProductName: names[id], TotalQuantity: float64(total)})
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].TotalQuantity != products[j].TotalQuantity {
			return products[i].TotalQuantity > products[j].TotalQuantity
		}
		return products[i].ProductID < products[j].ProductID
	})
	if len(products) > popularProductsLimit {
		products = products[:popularProductsLimit]
	}
	return products, nil
}

func (r *InMemoryMetricsRepository) RevenueGeneration(ctx context.Context) (models.RevenueGeneration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dates := map[int]string{}
	for _, o := range r.orders {
		dates[o.ID] = o.Date
	}
	revenue := map[string]float64{}
	for _, d := range r.details {
		if day, ok := dates[d.OrderID]; ok {
			revenue[day] += d.PriceAtTime * float64(d.Quantity)
		}
	}

	m := models.RevenueGeneration{Dates: sortedKeys(revenue), Revenues: []float64{}}
	for _, d := range m.Dates {
		m.Revenues = append(m.Revenues, revenue[d])
	}
	return m, nil
}

func (r *InMemoryMetricsRepository) ProductCategoryPopularity(ctx context.Context) (models.CategoryPopularity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categoryNames := map[int]string{}
	for _, c := range r.categories {
		categoryNames[c.ID] = c.Name
	}
	productCategory := map[int]string{}
	for _, p := range r.products {
		if name, ok := categoryNames[p.CategoryID]; ok {
			productCategory[p.ID] = name
		}
	}
	sales := map[string]float64{}
	for _, d := range r.details {
		if name, ok := productCategory[d.ProductID]; ok {
			sales[name] += d.PriceAtTime * float64(d.Quantity)
		}
	}

	names := sortedKeys(sales)
	sort.SliceStable(names, func(i, j int) bool { return sales[names[i]] > sales[names[j]] })
	m := models.CategoryPopularity{Categories: names, Sales: []float64{}}
	for _, n := range names {
		m.Sales = append(m.Sales, sales[n])
	}
	return m, nil
}

func (r *InMemoryMetricsRepository) PaymentMethodPopularity(ctx context.Context) (models.PaymentMethodPopularity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	methodNames := map[int]string{}
	for _, pm := range r.paymentMethods {
		methodNames[pm.ID] = pm.Name
	}
	counts := map[string]int{}
	for _, p := range r.payments {
		if name, ok := methodNames[p.MethodID]; ok {
			counts[name]++
		}
	}

	names := sortedKeys(counts)
	sort.SliceStable(names, func(i, j int) bool { return counts[names[i]] > counts[names[j]] })
	m := models.PaymentMethodPopularity{Methods: names, Counts: []float64{}}
	for _, n := range names {
		m.Counts = append(m.Counts, float64(counts[n]))
	}
	return m, nil
}

func (r *InMemoryMetricsRepository) OrderDateRange(ctx context.Context) (models.DateRange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.orders) == 0 {
		return models.DateRange{}, ErrNoOrders
	}
	dr := models.DateRange{Start: r.orders[0].Date, End: r.orders[0].Date}
	for _, o := range r.orders[1:] {
		dr.Start = min(dr.Start, o.Date)
		dr.End = max(dr.End, o.Date)
	}
	return dr, nil
}

func (r *InMemoryMetricsRepository) productNames() map[int]string {
	names := make(map[int]string, len(r.products))
	for _, p := range r.products {
		names[p.ID] = p.Name
	}
	return names
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
