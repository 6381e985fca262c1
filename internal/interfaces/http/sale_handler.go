package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mb-vendas/internal/application/dto"
	"github.com/jhoicas/mb-vendas/internal/application/sales"
)

// SaleHandler maneja ventas y cancelaciones.
type SaleHandler struct {
	svc *sales.Service
}

// NewSaleHandler construye el handler.
func NewSaleHandler(svc *sales.Service) *SaleHandler {
	return &SaleHandler{svc: svc}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Valida el pedido, descuenta stock y registra la entrada de caja en una sola operación.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Pedido"
// @Success      201   {object}  entity.Sale
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	actor := Actor(c)
	if actor.ID == "" {
		return unauthorized(c)
	}
	var in dto.CreateSaleRequest
	if !bindBody(c, &in) {
		return nil
	}
	sale, err := h.svc.CreateSale(c.UserContext(), actor, in.ToInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// List godoc
// @Summary      Listar ventas
// @Description  Más recientes primero. Fechas YYYY-MM-DD inclusivas.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        status       query  string  false  "confirmed | cancelled"
// @Param        date_from    query  string  false  "YYYY-MM-DD"
// @Param        date_to      query  string  false  "YYYY-MM-DD"
// @Param        seller_id    query  string  false  "Vendedor"
// @Param        customer_id  query  string  false  "Cliente"
// @Success      200  {object}  dto.ListResponse[entity.Sale]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var q dto.SaleListQuery
	if !bindQuery(c, &q) {
		return nil
	}
	list, err := h.svc.GetSales(c.UserContext(), q.ToFilter())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  entity.Sale
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.svc.GetSaleByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sale)
}

// Cancel godoc
// @Summary      Cancelar venta
// @Description  Repone el stock y registra la salida de caja. La venta se conserva como cancelled.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true   "ID de la venta"
// @Param        body  body  dto.CancelSaleRequest   false  "Motivo"
// @Success      200   {object}  entity.Sale
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/cancel [post]
func (h *SaleHandler) Cancel(c *fiber.Ctx) error {
	actor := Actor(c)
	if actor.ID == "" {
		return unauthorized(c)
	}
	var in dto.CancelSaleRequest
	if len(c.Body()) > 0 && !bindBody(c, &in) {
		return nil
	}
	sale, err := h.svc.CancelSale(c.UserContext(), actor, c.Params("id"), in.Reason)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sale)
}
