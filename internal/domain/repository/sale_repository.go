package repository

import "github.com/jhoicas/mb-vendas/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	List() []entity.Sale
	GetByID(id string) (*entity.Sale, error) // nil, nil si no existe
	Create(sale *entity.Sale) error
	Update(sale *entity.Sale) error
}
