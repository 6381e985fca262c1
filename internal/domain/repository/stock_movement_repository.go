package repository

import "github.com/jhoicas/mb-vendas/internal/domain/entity"

// StockMovementRepository puerto append-only de movimientos de stock.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List() []entity.StockMovement
}
