package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo del caixa.
// StockQuantity sólo cambia a través del ledger de stock.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int             `json:"stock_quantity"`
	Category      string          `json:"category"`
	Barcode       string          `json:"barcode,omitempty"`
}

// DefaultCatalog es el catálogo inicial cuando la colección de productos está vacía.
func DefaultCatalog() []Product {
	return []Product{
		{ID: "1", Name: "Coxinha", UnitPrice: decimal.RequireFromString("5.00"), StockQuantity: 50, Category: "Salgados", Barcode: "7891234567890"},
		{ID: "2", Name: "Refrigerante 2L", UnitPrice: decimal.RequireFromString("8.50"), StockQuantity: 30, Category: "Bebidas", Barcode: "7891234567891"},
		{ID: "3", Name: "Combo Lanche", UnitPrice: decimal.RequireFromString("25.00"), StockQuantity: 20, Category: "Combos", Barcode: "7891234567892"},
		{ID: "4", Name: "Pastel", UnitPrice: decimal.RequireFromString("6.00"), StockQuantity: 40, Category: "Salgados", Barcode: "7891234567893"},
		{ID: "5", Name: "Suco Natural", UnitPrice: decimal.RequireFromString("7.00"), StockQuantity: 25, Category: "Bebidas", Barcode: "7891234567894"},
	}
}
