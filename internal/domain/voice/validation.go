package voice

import (
	"fmt"

	"github.com/jhoicas/mb-vendas/internal/domain/entity"
)

// ValidateParsedSale revisa el borrador y devuelve todas las reglas violadas, no sólo la primera.
func ValidateParsedSale(parsed ParsedVoiceSale, catalog []entity.Product) ValidationResult {
	errs := []string{}
	if FindByName(catalog, parsed.ProductName) == nil {
		errs = append(errs, fmt.Sprintf(`Produto "%s" não encontrado no catálogo`, parsed.ProductName))
	}
	if parsed.Quantity < 1 {
		errs = append(errs, "Quantidade inválida")
	}
	if parsed.PaymentMethod == PaymentNone {
		errs = append(errs, "Forma de pagamento não identificada")
	}
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
