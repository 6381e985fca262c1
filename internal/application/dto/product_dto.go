package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mb-vendas/internal/domain/entity"
)

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int             `json:"stock_quantity"`
	Category      string          `json:"category,omitempty"`
	Barcode       string          `json:"barcode,omitempty"`
}

// ProductFromEntity convierte la entidad en respuesta.
func ProductFromEntity(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		UnitPrice:     p.UnitPrice,
		StockQuantity: p.StockQuantity,
		Category:      p.Category,
		Barcode:       p.Barcode,
	}
}
