package sales

import (
	"context"
	"sort"

	"github.com/jhoicas/mb-vendas/internal/application/ports"
	"github.com/jhoicas/mb-vendas/internal/domain"
	"github.com/jhoicas/mb-vendas/internal/domain/entity"
)

// SaleFilter filtros de GetSales. Las fechas YYYY-MM-DD se comparan como texto, inclusivas.
type SaleFilter struct {
	Status     string
	DateFrom   string
	DateTo     string
	SellerID   string
	CustomerID string
}

func (f SaleFilter) match(s *entity.Sale) bool {
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.DateFrom != "" && s.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && s.Date > f.DateTo {
		return false
	}
	if f.SellerID != "" && s.SellerID != f.SellerID {
		return false
	}
	if f.CustomerID != "" && s.CustomerID != f.CustomerID {
		return false
	}
	return true
}

// GetSales devuelve las ventas filtradas, de la más reciente a la más antigua.
func (s *Service) GetSales(ctx context.Context, f SaleFilter) ([]entity.Sale, error) {
	var out []entity.Sale
	err := s.txRunner.View(ctx, func(repos ports.Repositories) error {
		all := repos.Sales.List()
		for i := len(all) - 1; i >= 0; i-- {
			if f.match(&all[i]) {
				out = append(out, all[i])
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// GetSaleByID devuelve la venta o domain.ErrSaleNotFound.
func (s *Service) GetSaleByID(ctx context.Context, id string) (*entity.Sale, error) {
	var sale *entity.Sale
	err := s.txRunner.View(ctx, func(repos ports.Repositories) error {
		found, err := repos.Sales.GetByID(id)
		sale = found
		return err
	})
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}
	return sale, nil
}
