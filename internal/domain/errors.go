package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrUnauthorized         = errors.New("não autorizado")
	ErrForbidden            = errors.New("acesso negado")
	ErrEmptySale            = errors.New("Venda deve conter pelo menos um produto")
	ErrNonPositiveTotal     = errors.New("Total da venda deve ser maior que zero")
	ErrMissingPaymentMethod = errors.New("Forma de pagamento é obrigatória")
	ErrProductNotFound      = errors.New("produto não encontrado")
	ErrInsufficientStock    = errors.New("estoque insuficiente")
	ErrStockUpdateFailed    = errors.New("erro ao atualizar estoque")
	ErrSaleNotFound         = errors.New("Venda não encontrada")
	ErrAlreadyCancelled     = errors.New("Venda já está cancelada")
	ErrStorage              = errors.New("erro de armazenamento")
)

// ProductNotFoundError identifica el producto ausente del catálogo.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Produto %s não encontrado", e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error { return ErrProductNotFound }

// InsufficientStockError lleva el stock disponible y la cantidad pedida.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	name := e.ProductName
	if name == "" {
		name = e.ProductID
	}
	return fmt.Sprintf("Estoque insuficiente para %s. Disponível: %d", name, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// StockUpdateFailedError se devuelve cuando el ajuste de stock falla después de validar la venta.
type StockUpdateFailedError struct {
	ProductID string
	Err       error
}

func (e *StockUpdateFailedError) Error() string {
	return fmt.Sprintf("Erro ao atualizar estoque do produto %s", e.ProductID)
}

// Unwrap expone el sentinel y la causa original.
func (e *StockUpdateFailedError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrStockUpdateFailed}
	}
	return []error{ErrStockUpdateFailed, e.Err}
}

// StorageErr envuelve un fallo del almacenamiento conservando la causa.
func StorageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
