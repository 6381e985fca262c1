package sales

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mb-vendas/internal/application/ports"
	"github.com/jhoicas/mb-vendas/internal/domain"
	"github.com/jhoicas/mb-vendas/internal/domain/entity"
	"github.com/jhoicas/mb-vendas/internal/domain/voice"
)

// VoiceDraft borrador confirmado (y posiblemente editado) por el vendedor.
// PaymentMethod acepta el valor del parser (PIX, Dinheiro, Cartão) o cualquier forma de pago válida.
type VoiceDraft struct {
	ProductName   string
	Quantity      int
	CustomerName  string
	PaymentMethod string
}

// ParseVoiceSale interpreta la transcripción contra el catálogo actual y valida el borrador.
func (s *Service) ParseVoiceSale(ctx context.Context, transcript string) (voice.ParsedVoiceSale, voice.ValidationResult, error) {
	catalog, err := s.catalog(ctx)
	if err != nil {
		return voice.ParsedVoiceSale{}, voice.ValidationResult{}, err
	}
	parsed := voice.Parse(transcript, catalog)
	return parsed, voice.ValidateParsedSale(parsed, catalog), nil
}

// DraftFromVoice convierte el borrador en un pedido igual al de una venta manual,
// con precio del catálogo y subtotal = precio × cantidad.
func (s *Service) DraftFromVoice(ctx context.Context, d VoiceDraft) (CreateSaleInput, error) {
	catalog, err := s.catalog(ctx)
	if err != nil {
		return CreateSaleInput{}, err
	}
	product := voice.FindByName(catalog, d.ProductName)
	if product == nil {
		return CreateSaleInput{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, d.ProductName)
	}
	if d.Quantity < 1 {
		return CreateSaleInput{}, domain.ErrInvalidInput
	}
	method := voice.PaymentGuess(d.PaymentMethod).PaymentMethod()
	if method == "" && entity.PaymentMethod(d.PaymentMethod).Valid() {
		method = entity.PaymentMethod(d.PaymentMethod)
	}
	if method == "" {
		return CreateSaleInput{}, domain.ErrMissingPaymentMethod
	}

	return CreateSaleInput{
		Items: []entity.SaleItem{{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    d.Quantity,
			UnitPrice:   product.UnitPrice,
			Subtotal:    product.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity))),
		}},
		PaymentMethod: method,
		CustomerName:  strings.TrimSpace(d.CustomerName),
		Discount:      decimal.Zero,
	}, nil
}

// CreateSaleFromVoice arma el pedido desde el borrador y registra la venta.
func (s *Service) CreateSaleFromVoice(ctx context.Context, actor entity.Actor, d VoiceDraft) (*entity.Sale, error) {
	in, err := s.DraftFromVoice(ctx, d)
	if err != nil {
		return nil, err
	}
	return s.CreateSale(ctx, actor, in)
}

func (s *Service) catalog(ctx context.Context) ([]entity.Product, error) {
	var catalog []entity.Product
	err := s.txRunner.View(ctx, func(repos ports.Repositories) error {
		catalog = repos.Products.List()
		return nil
	})
	return catalog, err
}
