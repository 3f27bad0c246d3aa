package models

// Product represents a product in the catalogue.
type Product struct {
	ID         int    `json:"product_id"`
	Name       string `json:"product_name"`
	CategoryID int    `json:"category_id"`
}

// Category groups products for the category popularity chart.
type Category struct {
	ID   int    `json:"category_id"`
	Name string `json:"category_name"`
}

// StockLevel is the quantity on hand for one product.
type StockLevel struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}
