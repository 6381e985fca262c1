package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mb-vendas/internal/application/cashier"
	"github.com/jhoicas/mb-vendas/internal/application/dto"
	"github.com/jhoicas/mb-vendas/pkg/currency"
)

// CashierHandler libro de caja.
type CashierHandler struct {
	ledger *cashier.Ledger
}

// NewCashierHandler construye el handler.
func NewCashierHandler(ledger *cashier.Ledger) *CashierHandler {
	return &CashierHandler{ledger: ledger}
}

// Balance godoc
// @Summary      Saldo de caja
// @Tags         cashier
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BalanceResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/cashier/balance [get]
func (h *CashierHandler) Balance(c *fiber.Ctx) error {
	balance, err := h.ledger.Balance(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.BalanceResponse{Balance: balance, Formatted: currency.FormatBRL(balance)})
}

// ListEntries godoc
// @Summary      Asientos de caja
// @Tags         cashier
// @Security     Bearer
// @Produce      json
// @Param        direction  query  string  false  "in | out"
// @Param        category   query  string  false  "Sales | Reversals | Supply | Withdrawal"
// @Param        date_from  query  string  false  "YYYY-MM-DD"
// @Param        date_to    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.ListResponse[entity.CashEntry]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cashier/entries [get]
func (h *CashierHandler) ListEntries(c *fiber.Ctx) error {
	var q dto.CashEntryQuery
	if !bindQuery(c, &q) {
		return nil
	}
	entries, err := h.ledger.ListEntries(c.UserContext(), q.ToFilter())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(entries))
}

// Record godoc
// @Summary      Registrar suprimento o sangria
// @Description  Sólo admin.
// @Tags         cashier
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CashEntryRequest  true  "Asiento"
// @Success      201   {object}  entity.CashEntry
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/cashier/entries [post]
func (h *CashierHandler) Record(c *fiber.Ctx) error {
	var in dto.CashEntryRequest
	if !bindBody(c, &in) {
		return nil
	}
	entry, err := h.ledger.Record(c.UserContext(), in.ToInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}
