// Package sales orquesta la venta: valida el pedido, descuenta stock, registra el asiento de
// caja y guarda la venta dentro de una única unidad de trabajo.
package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mb-vendas/internal/application/cashier"
	"github.com/jhoicas/mb-vendas/internal/application/inventory"
	"github.com/jhoicas/mb-vendas/internal/application/ports"
	"github.com/jhoicas/mb-vendas/internal/domain"
	"github.com/jhoicas/mb-vendas/internal/domain/entity"
)

// Service servicio de transacciones de venta.
type Service struct {
	txRunner ports.TxRunner
	stock    *inventory.StockLedger
	cash     *cashier.Ledger
	pdf      ReportPDFGenerator
	log      zerolog.Logger
	now      func() time.Time
	newID    func() string
}

// NewService construye el servicio. pdf puede ser nil si no se exportan reportes.
func NewService(
	txRunner ports.TxRunner,
	stock *inventory.StockLedger,
	cash *cashier.Ledger,
	pdf ReportPDFGenerator,
	log zerolog.Logger,
) *Service {
	return &Service{
		txRunner: txRunner,
		stock:    stock,
		cash:     cash,
		pdf:      pdf,
		log:      log,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// WithClock reemplaza el reloj (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateSaleInput pedido de venta, manual o armado desde un borrador de voz.
type CreateSaleInput struct {
	Items         []entity.SaleItem
	PaymentMethod entity.PaymentMethod
	CustomerID    string
	CustomerName  string
	Discount      decimal.Decimal
	Observations  string
}

// CreateSale valida y registra la venta. Las validaciones corren en orden y la primera que
// falla se devuelve sin escribir nada: venta vacía, total no positivo, forma de pago,
// producto inexistente o sin stock, y por último cantidades y descuento.
// Si un ajuste de stock falla después de validar, la unidad de trabajo completa se descarta.
func (s *Service) CreateSale(ctx context.Context, actor entity.Actor, in CreateSaleInput) (*entity.Sale, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptySale
	}
	items := make([]entity.SaleItem, len(in.Items))
	subtotal := decimal.Zero
	for i, it := range in.Items {
		it.Subtotal = it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		items[i] = it
		subtotal = subtotal.Add(it.Subtotal)
	}
	total := subtotal.Sub(in.Discount)
	if !total.IsPositive() {
		return nil, domain.ErrNonPositiveTotal
	}
	if !in.PaymentMethod.Valid() {
		return nil, domain.ErrMissingPaymentMethod
	}

	var sale *entity.Sale
	err := s.txRunner.Run(ctx, func(repos ports.Repositories) error {
		for i := range items {
			product, err := repos.Products.GetByID(items[i].ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return &domain.ProductNotFoundError{ProductID: items[i].ProductID}
			}
			if product.StockQuantity < items[i].Quantity {
				return &domain.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Available:   product.StockQuantity,
					Requested:   items[i].Quantity,
				}
			}
			if items[i].ProductName == "" {
				items[i].ProductName = product.Name
			}
		}
		for _, it := range items {
			if it.Quantity < 1 {
				return domain.ErrInvalidInput
			}
		}
		if in.Discount.IsNegative() {
			return domain.ErrInvalidInput
		}

		at := s.now()
		customer := strings.TrimSpace(in.CustomerName)
		if customer == "" {
			customer = entity.UnidentifiedCustomer
		}
		sale = &entity.Sale{
			ID:            s.newID(),
			Date:          entity.DateOf(at),
			Time:          entity.TimeOf(at),
			CreatedAt:     at,
			SellerID:      actor.ID,
			SellerName:    actor.Name,
			CustomerID:    in.CustomerID,
			CustomerName:  customer,
			PaymentMethod: in.PaymentMethod,
			Status:        entity.SaleStatusConfirmed,
			Items:         items,
			Subtotal:      subtotal,
			Discount:      in.Discount,
			Total:         total,
			Observations:  in.Observations,
		}
		if err := repos.Sales.Create(sale); err != nil {
			return err
		}

		for _, it := range items {
			_, err := s.stock.AdjustInTx(repos, actor, inventory.AdjustInput{
				ProductID:     it.ProductID,
				Delta:         -it.Quantity,
				Type:          entity.MovementTypeSale,
				RelatedSaleID: sale.ID,
			}, at)
			if err == nil {
				continue
			}
			if errors.Is(err, domain.ErrStorage) {
				return err
			}
			// Devolver error descarta la unidad de trabajo completa: ni la venta
			// ni los descuentos anteriores llegan a persistirse.
			return &domain.StockUpdateFailedError{ProductID: it.ProductID, Err: err}
		}

		_, err := s.cash.RecordInTx(repos.Cash, cashier.RecordInput{
			Direction:     entity.CashDirectionIn,
			Description:   fmt.Sprintf("Venda #%s - %s", sale.ShortID(), sale.CustomerName),
			Value:         total,
			Category:      entity.CashCategorySales,
			RelatedSaleID: sale.ID,
		}, at)
		return err
	})
	if err != nil {
		var failed *domain.StockUpdateFailedError
		if errors.As(err, &failed) {
			s.log.Error().Err(err).Str("product_id", failed.ProductID).Msg("venta revertida por fallo de stock")
		}
		return nil, err
	}

	s.log.Info().
		Str("sale_id", sale.ID).
		Str("seller_id", actor.ID).
		Str("payment_method", string(sale.PaymentMethod)).
		Str("total", sale.Total.StringFixed(2)).
		Int("items", len(sale.Items)).
		Msg("venta registrada")
	return sale, nil
}
