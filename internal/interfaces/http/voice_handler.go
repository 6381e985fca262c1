package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mb-vendas/internal/application/dto"
	"github.com/jhoicas/mb-vendas/internal/application/sales"
)

// VoiceHandler venta por voz: interpretar la transcripción y confirmar el borrador.
type VoiceHandler struct {
	svc *sales.Service
}

// NewVoiceHandler construye el handler.
func NewVoiceHandler(svc *sales.Service) *VoiceHandler {
	return &VoiceHandler{svc: svc}
}

// Parse godoc
// @Summary      Interpretar transcripción
// @Description  Devuelve el borrador y su validación. Nunca falla por contenido: los problemas van en validation.errors.
// @Tags         voice
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VoiceParseRequest  true  "Transcripción"
// @Success      200   {object}  dto.VoiceParseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/voice/parse [post]
func (h *VoiceHandler) Parse(c *fiber.Ctx) error {
	var in dto.VoiceParseRequest
	if !bindBody(c, &in) {
		return nil
	}
	parsed, validation, err := h.svc.ParseVoiceSale(c.UserContext(), in.Transcript)
	if err != nil {
		return writeError(c, err)
	}
	if validation.Errors == nil {
		validation.Errors = []string{}
	}
	return c.JSON(dto.VoiceParseResponse{Parsed: parsed, Validation: validation})
}

// CreateSale godoc
// @Summary      Confirmar venta por voz
// @Tags         voice
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VoiceSaleRequest  true  "Borrador confirmado"
// @Success      201   {object}  entity.Sale
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/voice/sales [post]
func (h *VoiceHandler) CreateSale(c *fiber.Ctx) error {
	actor := Actor(c)
	if actor.ID == "" {
		return unauthorized(c)
	}
	var in dto.VoiceSaleRequest
	if !bindBody(c, &in) {
		return nil
	}
	sale, err := h.svc.CreateSaleFromVoice(c.UserContext(), actor, in.ToDraft())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}
