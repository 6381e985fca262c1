package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/mb-vendas/internal/application/dto"
	"github.com/jhoicas/mb-vendas/internal/domain"
)

// writeError traduce errores de dominio a status y código HTTP.
// StockUpdateFailedError envuelve la causa (a veces InsufficientStock), por eso va primero.
func writeError(c *fiber.Ctx, err error) error {
	var (
		failed       *domain.StockUpdateFailedError
		insufficient *domain.InsufficientStockError
		notFound     *domain.ProductNotFoundError
	)
	switch {
	case errors.As(err, &failed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "STOCK_UPDATE_FAILED",
			Message: failed.Error(),
			Details: map[string]string{"product_id": failed.ProductID},
		})
	case errors.As(err, &insufficient):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: insufficient.Error(),
			Details: map[string]string{
				"product_id": insufficient.ProductID,
				"available":  strconv.Itoa(insufficient.Available),
				"requested":  strconv.Itoa(insufficient.Requested),
			},
		})
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "PRODUCT_NOT_FOUND",
			Message: notFound.Error(),
			Details: map[string]string{"product_id": notFound.ProductID},
		})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrSaleNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SALE_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrAlreadyCancelled):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_CANCELLED", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptySale):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_SALE", Message: err.Error()})
	case errors.Is(err, domain.ErrNonPositiveTotal):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NON_POSITIVE_TOTAL", Message: err.Error()})
	case errors.Is(err, domain.ErrMissingPaymentMethod):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PAYMENT_METHOD", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	}

	log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error interno")
	code := "INTERNAL"
	if errors.Is(err, domain.ErrStorage) {
		code = "STORAGE"
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: code, Message: "erro interno, tente novamente"})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
}
