package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mb-vendas/internal/application/inventory"
	"github.com/jhoicas/mb-vendas/internal/domain/entity"
	"github.com/jhoicas/mb-vendas/internal/infrastructure/storage"
	"github.com/jhoicas/mb-vendas/pkg/config"
)

func seedAndCount(t *testing.T, b *storage.Backend) int {
	t.Helper()
	catalog := inventory.NewCatalogUseCase(b.Runner)
	_, err := catalog.SeedProducts(context.Background(), entity.DefaultCatalog())
	require.NoError(t, err)
	products, err := catalog.ListProducts(context.Background())
	require.NoError(t, err)
	return len(products)
}

func TestOpen_Memoria(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreMemory, KeyPrefix: "t_"}}
	b, err := storage.Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer b.Close()

	assert.Nil(t, b.Balance)
	assert.Equal(t, 5, seedAndCount(t, b))
}

func TestOpen_ArchivoCreaDirectorio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pdv.json")
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreFile, FilePath: path, KeyPrefix: "t_"}}

	b, err := storage.Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 5, seedAndCount(t, b))
	b.Close()

	reopened, err := storage.Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	products, err := inventory.NewCatalogUseCase(reopened.Runner).ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 5, "el catálogo sobrevive al reinicio")
}

func TestOpen_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{
		Store: config.StoreConfig{Driver: config.StoreRedis, KeyPrefix: "t_"},
		Redis: config.RedisConfig{Addr: mr.Addr(), LockTTL: 5 * time.Second},
	}
	b, err := storage.Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, 5, seedAndCount(t, b))
	assert.True(t, mr.Exists("t_products"))
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := storage.Open(context.Background(), &config.Config{Store: config.StoreConfig{Driver: "sqlite"}}, zerolog.Nop())
	assert.Error(t, err)
}
