package repository

import "github.com/jhoicas/mb-vendas/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las implementaciones operan sobre la colección cargada en la unidad de trabajo.
type ProductRepository interface {
	List() []entity.Product
	GetByID(id string) (*entity.Product, error) // nil, nil si no existe
	Upsert(product *entity.Product) error
	ReplaceAll(products []entity.Product) error
}
