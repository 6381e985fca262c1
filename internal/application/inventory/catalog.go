package inventory

import (
	"context"

	"github.com/jhoicas/mb-vendas/internal/application/ports"
	"github.com/jhoicas/mb-vendas/internal/domain/entity"
)

// CatalogUseCase lectura del catálogo y carga inicial.
type CatalogUseCase struct {
	txRunner ports.TxRunner
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(txRunner ports.TxRunner) *CatalogUseCase {
	return &CatalogUseCase{txRunner: txRunner}
}

// ListProducts devuelve el catálogo en el orden guardado.
func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	err := uc.txRunner.View(ctx, func(repos ports.Repositories) error {
		out = repos.Products.List()
		return nil
	})
	return out, err
}

// SeedProducts escribe products sólo si el catálogo está vacío. Devuelve true si sembró.
func (uc *CatalogUseCase) SeedProducts(ctx context.Context, products []entity.Product) (bool, error) {
	seeded := false
	err := uc.txRunner.Run(ctx, func(repos ports.Repositories) error {
		if len(repos.Products.List()) > 0 {
			return nil
		}
		seeded = true
		return repos.Products.ReplaceAll(products)
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}
