package collections

import (
	"github.com/jhoicas/mb-vendas/internal/application/ports"
	"github.com/jhoicas/mb-vendas/internal/domain"
	"github.com/jhoicas/mb-vendas/internal/domain/entity"
	"github.com/jhoicas/mb-vendas/internal/domain/repository"
)

var (
	_ repository.ProductRepository       = (*productCollection)(nil)
	_ repository.SaleRepository          = (*saleCollection)(nil)
	_ repository.CashEntryRepository     = (*cashCollection)(nil)
	_ repository.StockMovementRepository = (*movementCollection)(nil)
)

type unitOfWork struct {
	products  productCollection
	sales     saleCollection
	cash      cashCollection
	movements movementCollection
}

func (u *unitOfWork) repositories() ports.Repositories {
	return ports.Repositories{
		Products:  &u.products,
		Sales:     &u.sales,
		Cash:      &u.cash,
		Movements: &u.movements,
	}
}

// ── Productos ─────────────────────────────────────────────────────────────────

type productCollection struct {
	items []entity.Product
	index map[string]int
	dirty bool
}

func (c *productCollection) reindex() {
	c.index = make(map[string]int, len(c.items))
	for i := range c.items {
		if _, ok := c.index[c.items[i].ID]; !ok {
			c.index[c.items[i].ID] = i
		}
	}
}

func (c *productCollection) List() []entity.Product {
	return append([]entity.Product(nil), c.items...)
}

func (c *productCollection) GetByID(id string) (*entity.Product, error) {
	i, ok := c.index[id]
	if !ok {
		return nil, nil
	}
	p := c.items[i]
	return &p, nil
}

func (c *productCollection) Upsert(product *entity.Product) error {
	if product == nil || product.ID == "" {
		return domain.ErrInvalidInput
	}
	if i, ok := c.index[product.ID]; ok {
		c.items[i] = *product
	} else {
		c.items = append(c.items, *product)
		c.index[product.ID] = len(c.items) - 1
	}
	c.dirty = true
	return nil
}

func (c *productCollection) ReplaceAll(products []entity.Product) error {
	for _, p := range products {
		if p.ID == "" {
			return domain.ErrInvalidInput
		}
	}
	c.items = append([]entity.Product(nil), products...)
	c.reindex()
	c.dirty = true
	return nil
}

// ── Ventas ────────────────────────────────────────────────────────────────────

type saleCollection struct {
	items []entity.Sale
	index map[string]int
	dirty bool
}

func (c *saleCollection) reindex() {
	c.index = make(map[string]int, len(c.items))
	for i := range c.items {
		if _, ok := c.index[c.items[i].ID]; !ok {
			c.index[c.items[i].ID] = i
		}
	}
}

func (c *saleCollection) List() []entity.Sale {
	out := make([]entity.Sale, len(c.items))
	for i := range c.items {
		out[i] = c.items[i].Clone()
	}
	return out
}

func (c *saleCollection) GetByID(id string) (*entity.Sale, error) {
	i, ok := c.index[id]
	if !ok {
		return nil, nil
	}
	s := c.items[i].Clone()
	return &s, nil
}

func (c *saleCollection) Create(sale *entity.Sale) error {
	if sale == nil || sale.ID == "" {
		return domain.ErrInvalidInput
	}
	if _, ok := c.index[sale.ID]; ok {
		return domain.ErrInvalidInput
	}
	c.items = append(c.items, sale.Clone())
	c.index[sale.ID] = len(c.items) - 1
	c.dirty = true
	return nil
}

func (c *saleCollection) Update(sale *entity.Sale) error {
	if sale == nil {
		return domain.ErrInvalidInput
	}
	i, ok := c.index[sale.ID]
	if !ok {
		return domain.ErrSaleNotFound
	}
	c.items[i] = sale.Clone()
	c.dirty = true
	return nil
}

// ── Caja ──────────────────────────────────────────────────────────────────────

type cashCollection struct {
	items []entity.CashEntry
	dirty bool
}

func (c *cashCollection) Create(entry *entity.CashEntry) error {
	if entry == nil || entry.ID == "" {
		return domain.ErrInvalidInput
	}
	c.items = append(c.items, *entry)
	c.dirty = true
	return nil
}

func (c *cashCollection) List() []entity.CashEntry {
	return append([]entity.CashEntry(nil), c.items...)
}

// ── Movimientos de stock ──────────────────────────────────────────────────────

type movementCollection struct {
	items []entity.StockMovement
	dirty bool
}

func (c *movementCollection) Create(movement *entity.StockMovement) error {
	if movement == nil || movement.ID == "" {
		return domain.ErrInvalidInput
	}
	c.items = append(c.items, *movement)
	c.dirty = true
	return nil
}

func (c *movementCollection) List() []entity.StockMovement {
	return append([]entity.StockMovement(nil), c.items...)
}
