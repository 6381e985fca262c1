// Package voice interpreta transcripciones de voz en portugués de Brasil y las convierte
// en un borrador de venta. Es lógica pura: no accede al almacenamiento ni falla nunca.
package voice

import "github.com/jhoicas/mb-vendas/internal/domain/entity"

// PaymentGuess forma de pago detectada en la transcripción. Vacío = no identificada.
type PaymentGuess string

const (
	PaymentNone PaymentGuess = ""
	PaymentPIX  PaymentGuess = "PIX"
	PaymentCash PaymentGuess = "Dinheiro"
	PaymentCard PaymentGuess = "Cartão"
)

// PaymentMethod traduce la forma detectada a la enumeración de ventas.
func (g PaymentGuess) PaymentMethod() entity.PaymentMethod {
	switch g {
	case PaymentPIX:
		return entity.PaymentPix
	case PaymentCash:
		return entity.PaymentCash
	case PaymentCard:
		return entity.PaymentCard
	}
	return ""
}

// Confidence nivel de confianza del parseo.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ParsedVoiceSale borrador estructurado obtenido de una transcripción.
// ProductName es el nombre del catálogo si hubo coincidencia; si no, el texto adivinado.
type ParsedVoiceSale struct {
	ProductName   string       `json:"product_name"`
	ProductID     string       `json:"product_id,omitempty"`
	Quantity      int          `json:"quantity"`
	CustomerName  string       `json:"customer_name"`
	PaymentMethod PaymentGuess `json:"payment_method,omitempty"`
	Confidence    Confidence   `json:"confidence"`
	RawTranscript string       `json:"raw_transcript"`
}

// ValidationResult resultado de ValidateParsedSale con todas las reglas violadas.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}
