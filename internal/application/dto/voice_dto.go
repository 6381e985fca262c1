package dto

import (
	"github.com/jhoicas/mb-vendas/internal/application/sales"
	"github.com/jhoicas/mb-vendas/internal/domain/voice"
)

// VoiceParseRequest transcripción obtenida del reconocedor del navegador.
type VoiceParseRequest struct {
	Transcript string `json:"transcript" validate:"required,max=500"`
}

// VoiceParseResponse borrador interpretado y su validación.
type VoiceParseResponse struct {
	Parsed     voice.ParsedVoiceSale  `json:"parsed"`
	Validation voice.ValidationResult `json:"validation"`
}

// VoiceSaleRequest borrador confirmado por el vendedor.
type VoiceSaleRequest struct {
	ProductName   string `json:"product_name" validate:"required"`
	Quantity      int    `json:"quantity" validate:"min=1"`
	CustomerName  string `json:"customer_name" validate:"max=120"`
	PaymentMethod string `json:"payment_method" example:"PIX"`
}

// ToDraft convierte la petición en el borrador del servicio.
func (r VoiceSaleRequest) ToDraft() sales.VoiceDraft {
	return sales.VoiceDraft{
		ProductName:   r.ProductName,
		Quantity:      r.Quantity,
		CustomerName:  r.CustomerName,
		PaymentMethod: r.PaymentMethod,
	}
}
