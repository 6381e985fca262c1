package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/mb-vendas/internal/application/cashier"
	"github.com/jhoicas/mb-vendas/internal/application/inventory"
	"github.com/jhoicas/mb-vendas/internal/application/ports"
	"github.com/jhoicas/mb-vendas/internal/domain"
	"github.com/jhoicas/mb-vendas/internal/domain/entity"
)

// CancelSale marca la venta como cancelada, repone el stock de cada línea y registra la
// salida de caja por el total. La venta no se borra. Cancelar dos veces devuelve
// domain.ErrAlreadyCancelled sin escribir nada.
func (s *Service) CancelSale(ctx context.Context, actor entity.Actor, saleID, reason string) (*entity.Sale, error) {
	reason = strings.TrimSpace(reason)

	var cancelled *entity.Sale
	var skipped []string
	err := s.txRunner.Run(ctx, func(repos ports.Repositories) error {
		skipped = nil
		sale, err := repos.Sales.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrSaleNotFound
		}
		if sale.Status == entity.SaleStatusCancelled {
			return domain.ErrAlreadyCancelled
		}

		at := s.now()
		sale.Status = entity.SaleStatusCancelled
		sale.CancelledAt = &at
		sale.CancelReason = reason
		if err := repos.Sales.Update(sale); err != nil {
			return err
		}

		for _, it := range sale.Items {
			_, err := s.stock.AdjustInTx(repos, actor, inventory.AdjustInput{
				ProductID:     it.ProductID,
				Delta:         it.Quantity,
				Type:          entity.MovementTypeCancellation,
				RelatedSaleID: sale.ID,
			}, at)
			if errors.Is(err, domain.ErrProductNotFound) {
				skipped = append(skipped, it.ProductID)
				continue
			}
			if err != nil {
				return err
			}
		}

		desc := fmt.Sprintf("Cancelamento Venda #%s - %s", sale.ShortID(), customerLabel(sale))
		if reason != "" {
			desc += fmt.Sprintf(" (%s)", reason)
		}
		if _, err := s.cash.RecordInTx(repos.Cash, cashier.RecordInput{
			Direction:     entity.CashDirectionOut,
			Description:   desc,
			Value:         sale.Total,
			Category:      entity.CashCategoryReversals,
			RelatedSaleID: sale.ID,
		}, at); err != nil {
			return err
		}
		cancelled = sale
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, productID := range skipped {
		s.log.Warn().
			Str("sale_id", saleID).
			Str("product_id", productID).
			Msg("producto ya no existe en el catálogo; stock no repuesto")
	}
	s.log.Info().
		Str("sale_id", saleID).
		Str("seller_id", actor.ID).
		Str("total", cancelled.Total.StringFixed(2)).
		Msg("venta cancelada")
	return cancelled, nil
}

func customerLabel(sale *entity.Sale) string {
	if sale.CustomerName == "" {
		return entity.UnidentifiedCustomer
	}
	return sale.CustomerName
}
