package repository

import "github.com/jhoicas/mb-vendas/internal/domain/entity"

// CashEntryRepository puerto append-only del libro de caja.
type CashEntryRepository interface {
	Create(entry *entity.CashEntry) error
	List() []entity.CashEntry
}
