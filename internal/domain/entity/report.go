package entity

import "github.com/shopspring/decimal"

// ProductSales agregado por producto dentro de un reporte.
type ProductSales struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// SellerSales agregado por vendedor dentro de un reporte.
type SellerSales struct {
	SellerName string          `json:"seller_name"`
	SalesCount int             `json:"sales_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// SalesReport resumen de ventas confirmadas en un rango de fechas.
type SalesReport struct {
	DateFrom               string                            `json:"date_from,omitempty"`
	DateTo                 string                            `json:"date_to,omitempty"`
	TotalSales             int                               `json:"total_sales"`
	TotalRevenue           decimal.Decimal                   `json:"total_revenue"`
	TotalDiscount          decimal.Decimal                   `json:"total_discount"`
	RevenueByPaymentMethod map[PaymentMethod]decimal.Decimal `json:"revenue_by_payment_method"`
	ByProduct              map[string]ProductSales           `json:"by_product"`
	BySeller               map[string]SellerSales            `json:"by_seller"`
}
