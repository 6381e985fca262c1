// Package storage arma el backend de colecciones según STORE_DRIVER.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/jhoicas/mb-vendas/internal/application/cashier"
	"github.com/jhoicas/mb-vendas/internal/infrastructure/collections"
	"github.com/jhoicas/mb-vendas/internal/infrastructure/filestore"
	"github.com/jhoicas/mb-vendas/internal/infrastructure/memory"
	"github.com/jhoicas/mb-vendas/internal/infrastructure/postgres"
	"github.com/jhoicas/mb-vendas/internal/infrastructure/redisstore"
	"github.com/jhoicas/mb-vendas/pkg/config"
)

// Backend unidad de trabajo lista para usar más los recursos a liberar.
type Backend struct {
	Driver string
	Runner *collections.Runner
	// Balance es nil cuando el saldo se calcula sumando el historial en memoria.
	Balance cashier.BalanceSource
	closers []func()
}

// Close libera conexiones en orden inverso de apertura.
func (b *Backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// Open abre el backend configurado.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Backend, error) {
	keys := collections.NewKeys(cfg.Store.KeyPrefix)
	b := &Backend{Driver: cfg.Store.Driver}

	switch cfg.Store.Driver {
	case config.StoreMemory:
		b.Runner = collections.NewRunner(memory.NewKVStore(), memory.NewLocker(), keys)

	case config.StoreFile:
		if dir := filepath.Dir(cfg.Store.FilePath); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
			}
		}
		b.Runner = collections.NewRunner(filestore.NewKVStore(cfg.Store.FilePath), memory.NewLocker(), keys)
		log.Info().Str("path", cfg.Store.FilePath).Msg("almacén en archivo")

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("storage: conectar postgres: %w", err)
		}
		b.closers = append(b.closers, pool.Close)
		store := postgres.NewKVStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			b.Close()
			return nil, fmt.Errorf("storage: esquema postgres: %w", err)
		}
		b.Runner = collections.NewRunner(store, postgres.NewAdvisoryLocker(pool, keys.Lock), keys)
		b.Balance = postgres.NewCashBalanceQuery(store, keys.Cash)
		log.Info().Msg("almacén en PostgreSQL")

	case config.StoreRedis:
		rdb, err := redisstore.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("storage: conectar redis: %w", err)
		}
		b.closers = append(b.closers, func() {
			if err := rdb.Close(); err != nil {
				log.Warn().Err(err).Msg("cerrar redis")
			}
		})
		b.Runner = collections.NewRunner(redisstore.NewKVStore(rdb), redisstore.NewLocker(rdb, keys.Lock, cfg.Redis.LockTTL), keys)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("almacén en Redis")

	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Store.Driver)
	}
	return b, nil
}
