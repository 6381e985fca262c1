// Package collections implementa la unidad de trabajo sobre un almacén clave-valor de
// documentos completos: carga las cuatro colecciones, expone repositorios indexados en
// memoria y persiste las colecciones modificadas en una sola escritura.
package collections

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/mb-vendas/internal/application/ports"
	"github.com/jhoicas/mb-vendas/internal/domain"
	"github.com/jhoicas/mb-vendas/internal/domain/repository"
)

// Ensure Runner implements ports.TxRunner.
var _ ports.TxRunner = (*Runner)(nil)

// Keys claves de almacenamiento de cada colección.
type Keys struct {
	Products  string
	Sales     string
	Cash      string
	Movements string
	Lock      string
}

// NewKeys arma las claves con el prefijo configurado (ej. "mb_vendas_").
func NewKeys(prefix string) Keys {
	return Keys{
		Products:  prefix + "products",
		Sales:     prefix + "sales",
		Cash:      prefix + "cashier_transactions",
		Movements: prefix + "stock_movements",
		Lock:      prefix + "lock",
	}
}

// Runner ejecuta callbacks dentro de una unidad de trabajo todo-o-nada.
type Runner struct {
	store  repository.KVStore
	locker repository.Locker
	keys   Keys
}

// NewRunner construye el runner con el almacén y el lock de escritor único.
func NewRunner(store repository.KVStore, locker repository.Locker, keys Keys) *Runner {
	return &Runner{store: store, locker: locker, keys: keys}
}

// Run toma el lock, carga las colecciones, ejecuta fn y persiste si fn no devuelve error.
func (r *Runner) Run(ctx context.Context, fn func(repos ports.Repositories) error) error {
	unlock, err := r.locker.Lock(ctx)
	if err != nil {
		return domain.StorageErr("obtener lock", err)
	}
	defer unlock()

	uow, err := r.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(uow.repositories()); err != nil {
		return err
	}
	return r.commit(ctx, uow)
}

// View ejecuta fn sobre una foto de las colecciones sin persistir cambios.
func (r *Runner) View(ctx context.Context, fn func(repos ports.Repositories) error) error {
	uow, err := r.load(ctx)
	if err != nil {
		return err
	}
	return fn(uow.repositories())
}

// load lee las cuatro colecciones en una sola llamada al almacén.
func (r *Runner) load(ctx context.Context) (*unitOfWork, error) {
	raw, err := r.store.GetMany(ctx, []string{r.keys.Products, r.keys.Sales, r.keys.Cash, r.keys.Movements})
	if err != nil {
		return nil, domain.StorageErr("leer colecciones", err)
	}
	uow := &unitOfWork{}
	if err := decode(raw, r.keys.Products, &uow.products.items); err != nil {
		return nil, err
	}
	if err := decode(raw, r.keys.Sales, &uow.sales.items); err != nil {
		return nil, err
	}
	if err := decode(raw, r.keys.Cash, &uow.cash.items); err != nil {
		return nil, err
	}
	if err := decode(raw, r.keys.Movements, &uow.movements.items); err != nil {
		return nil, err
	}
	uow.products.reindex()
	uow.sales.reindex()
	return uow, nil
}

func decode(raw map[string][]byte, key string, dst any) error {
	v := raw[key]
	if len(v) == 0 {
		return nil
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return domain.StorageErr("decodificar "+key, err)
	}
	return nil
}

func (r *Runner) commit(ctx context.Context, uow *unitOfWork) error {
	values := make(map[string][]byte, 4)
	add := func(key string, dirty bool, v any) error {
		if !dirty {
			return nil
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return domain.StorageErr("codificar "+key, err)
		}
		values[key] = raw
		return nil
	}
	if err := add(r.keys.Products, uow.products.dirty, nonNil(uow.products.items)); err != nil {
		return err
	}
	if err := add(r.keys.Sales, uow.sales.dirty, nonNil(uow.sales.items)); err != nil {
		return err
	}
	if err := add(r.keys.Cash, uow.cash.dirty, nonNil(uow.cash.items)); err != nil {
		return err
	}
	if err := add(r.keys.Movements, uow.movements.dirty, nonNil(uow.movements.items)); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	if err := r.store.SetMany(ctx, values); err != nil {
		return domain.StorageErr("escribir colecciones", err)
	}
	return nil
}

// nonNil evita persistir "null" para colecciones vacías.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
