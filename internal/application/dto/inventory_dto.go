package dto

import "github.com/jhoicas/mb-vendas/internal/application/inventory"

// StockAdjustmentRequest ajuste manual de stock. Type vacío = adjustment.
type StockAdjustmentRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Delta     int    `json:"delta" validate:"ne=0"`
	Type      string `json:"type" validate:"omitempty,oneof=adjustment restock"`
}

// ToInput convierte la petición en la entrada del ledger.
func (r StockAdjustmentRequest) ToInput() inventory.AdjustInput {
	return inventory.AdjustInput{ProductID: r.ProductID, Delta: r.Delta, Type: r.Type}
}
