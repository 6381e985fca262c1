package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mb-vendas/internal/application/dto"
	"github.com/jhoicas/mb-vendas/internal/application/inventory"
)

// InventoryHandler ajustes manuales y consulta de movimientos de stock.
type InventoryHandler struct {
	ledger *inventory.StockLedger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.StockLedger) *InventoryHandler {
	return &InventoryHandler{ledger: ledger}
}

// Adjust godoc
// @Summary      Ajustar stock
// @Description  Ajuste manual (+/-) o reposición. Sólo admin.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockAdjustmentRequest  true  "product_id, delta, type (adjustment|restock)"
// @Success      201   {object}  entity.StockMovement
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	actor := Actor(c)
	if actor.ID == "" {
		return unauthorized(c)
	}
	var in dto.StockAdjustmentRequest
	if !bindBody(c, &in) {
		return nil
	}
	movement, err := h.ledger.Adjust(c.UserContext(), actor, in.ToInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movement)
}

// ListMovements godoc
// @Summary      Movimientos de stock
// @Description  Más recientes primero. product_id vacío = todos.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Success      200  {object}  dto.ListResponse[entity.StockMovement]
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	movements, err := h.ledger.ListMovements(c.UserContext(), c.Query("product_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(movements))
}
