package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dirección de un asiento de caja.
const (
	CashDirectionIn  = "in"
	CashDirectionOut = "out"
)

// Categorías de caja usadas por el servicio de ventas y por los asientos manuales.
const (
	CashCategorySales      = "Sales"
	CashCategoryReversals  = "Reversals"
	CashCategorySupply     = "Supply"
	CashCategoryWithdrawal = "Withdrawal"
)

// CashEntry asiento inmutable del libro de caja. Value siempre es positivo; el signo lo da Direction.
type CashEntry struct {
	ID            string          `json:"id"`
	Direction     string          `json:"direction"`
	Description   string          `json:"description"`
	Value         decimal.Decimal `json:"value"`
	Category      string          `json:"category"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	CreatedAt     time.Time       `json:"created_at"`
	RelatedSaleID string          `json:"related_sale_id,omitempty"`
}

// Signed devuelve el valor con signo según la dirección.
func (e CashEntry) Signed() decimal.Decimal {
	if e.Direction == CashDirectionOut {
		return e.Value.Neg()
	}
	return e.Value
}
