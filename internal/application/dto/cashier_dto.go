package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mb-vendas/internal/application/cashier"
	"github.com/jhoicas/mb-vendas/internal/domain/entity"
)

// CashEntryRequest asiento manual (suprimento o sangria).
type CashEntryRequest struct {
	Direction   string          `json:"direction" validate:"required,oneof=in out"`
	Description string          `json:"description" validate:"required,max=200"`
	Value       decimal.Decimal `json:"value"`
	Category    string          `json:"category" validate:"omitempty,oneof=Supply Withdrawal"`
}

// ToInput convierte la petición; la categoría por defecto sigue a la dirección.
func (r CashEntryRequest) ToInput() cashier.RecordInput {
	category := r.Category
	if category == "" {
		category = entity.CashCategorySupply
		if r.Direction == entity.CashDirectionOut {
			category = entity.CashCategoryWithdrawal
		}
	}
	return cashier.RecordInput{
		Direction:   r.Direction,
		Description: r.Description,
		Value:       r.Value,
		Category:    category,
	}
}

// CashEntryQuery filtros de GET /api/cashier/entries.
type CashEntryQuery struct {
	Direction string `query:"direction" validate:"omitempty,oneof=in out"`
	Category  string `query:"category"`
	DateFrom  string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo    string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
}

// ToFilter convierte la consulta en el filtro del ledger.
func (q CashEntryQuery) ToFilter() cashier.EntryFilter {
	return cashier.EntryFilter{
		Direction: q.Direction,
		Category:  q.Category,
		DateFrom:  q.DateFrom,
		DateTo:    q.DateTo,
	}
}

// BalanceResponse saldo de caja. Formatted usa el formato BRL (R$1.234,50).
type BalanceResponse struct {
	Balance   decimal.Decimal `json:"balance"`
	Formatted string          `json:"formatted"`
}
