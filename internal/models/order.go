package models

// Order is a placed order. Date is an ISO date (YYYY-MM-DD).
type Order struct {
	ID   int    `json:"order_id"`
	Date string `json:"order_date"`
}

// OrderDetail is one product line of an order, priced at the time of the order.
type OrderDetail struct {
	OrderID     int     `json:"order_id"`
	ProductID   int     `json:"product_id"`
	Quantity    int     `json:"quantity_ordered"`
	PriceAtTime float64 `json:"price_at_time"`
}

// PaymentMethod is a way of paying, e.g. "Credit Card".
type PaymentMethod struct {
	ID   int    `json:"method_id"`
	Name string `json:"method_name"`
}

// Payment is a single payment transaction.
type Payment struct {
	ID       int `json:"payment_id"`
	MethodID int `json:"method_id"`
}
