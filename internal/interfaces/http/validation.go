package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mb-vendas/internal/application/dto"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// bindBody parsea el cuerpo JSON y aplica las etiquetas validate.
// Devuelve false si ya respondió 400.
func bindBody(c *fiber.Ctx, out any) bool {
	if err := c.BodyParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return false
	}
	return check(c, out)
}

// bindQuery parsea la query string y aplica las etiquetas validate.
func bindQuery(c *fiber.Ctx, out any) bool {
	if err := c.QueryParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
		return false
	}
	return check(c, out)
}

func check(c *fiber.Ctx, out any) bool {
	err := validate.Struct(out)
	if err == nil {
		return true
	}
	resp := dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		resp.Details = make(map[string]string, len(ve))
		for _, fe := range ve {
			resp.Details[fe.Field()] = fe.Tag()
		}
	}
	_ = c.Status(fiber.StatusBadRequest).JSON(resp)
	return false
}
