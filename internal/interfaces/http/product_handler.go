package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mb-vendas/internal/application/dto"
	"github.com/jhoicas/mb-vendas/internal/application/inventory"
)

// ProductHandler expone el catálogo (sólo lectura).
type ProductHandler struct {
	uc *inventory.CatalogUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *inventory.CatalogUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar catálogo
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.ListProducts(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductFromEntity(p))
	}
	return c.JSON(dto.NewList(out))
}
