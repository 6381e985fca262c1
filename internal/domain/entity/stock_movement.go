package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeSale         = "sale"         // salida por venta
	MovementTypeCancellation = "cancellation" // reposición por cancelación
	MovementTypeAdjustment   = "adjustment"   // ajuste manual (+/-)
	MovementTypeRestock      = "restock"      // entrada de mercadería
)

// StockMovement registro inmutable de un cambio de stock. QuantityDelta es negativo en salidas.
type StockMovement struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name"`
	QuantityDelta int       `json:"quantity_delta"`
	Type          string    `json:"type"`
	RelatedSaleID string    `json:"related_sale_id,omitempty"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	SellerID      string    `json:"seller_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// IsValidMovementType indica si t es un tipo de movimiento conocido.
func IsValidMovementType(t string) bool {
	switch t {
	case MovementTypeSale, MovementTypeCancellation, MovementTypeAdjustment, MovementTypeRestock:
		return true
	}
	return false
}
