package ports

import (
	"context"

	"github.com/jhoicas/mb-vendas/internal/domain/repository"
)

// Repositories agrupa los repositorios atados a una unidad de trabajo.
type Repositories struct {
	Products  repository.ProductRepository
	Sales     repository.SaleRepository
	Cash      repository.CashEntryRepository
	Movements repository.StockMovementRepository
}

// TxRunner ejecuta una función sobre las cuatro colecciones con semántica todo-o-nada.
type TxRunner interface {
	// Run toma el lock de escritor único, ejecuta fn y persiste sólo si fn devuelve nil.
	Run(ctx context.Context, fn func(r Repositories) error) error
	// View ejecuta fn sobre una foto de sólo lectura; los cambios se descartan.
	View(ctx context.Context, fn func(r Repositories) error) error
}
