package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mb-vendas/internal/application/inventory"
	"github.com/jhoicas/mb-vendas/internal/domain"
	"github.com/jhoicas/mb-vendas/internal/domain/entity"
	"github.com/jhoicas/mb-vendas/internal/infrastructure/collections"
	"github.com/jhoicas/mb-vendas/internal/infrastructure/memory"
)

var admin = entity.Actor{ID: "adm", Name: "Gerente"}

func newLedger(t *testing.T) (*inventory.StockLedger, *inventory.CatalogUseCase) {
	t.Helper()
	runner := collections.NewRunner(memory.NewKVStore(), memory.NewLocker(), collections.NewKeys(""))
	at := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		at = at.Add(time.Second)
		return at
	}
	catalog := inventory.NewCatalogUseCase(runner)
	_, err := catalog.SeedProducts(context.Background(), []entity.Product{
		{ID: "p1", Name: "Coxinha", UnitPrice: decimal.NewFromInt(5), StockQuantity: 4},
	})
	require.NoError(t, err)
	return inventory.NewStockLedger(runner, zerolog.Nop()).WithClock(clock), catalog
}

// ──────────────────────────────────────────────────────────────────────────────
// Adjust
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_ReposicionYAjuste(t *testing.T) {
	ctx := context.Background()
	ledger, catalog := newLedger(t)

	m, err := ledger.Adjust(ctx, admin, inventory.AdjustInput{ProductID: "p1", Delta: 6, Type: entity.MovementTypeRestock})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeRestock, m.Type)
	assert.Equal(t, "Coxinha", m.ProductName)
	assert.Equal(t, "adm", m.SellerID)

	m, err = ledger.Adjust(ctx, admin, inventory.AdjustInput{ProductID: "p1", Delta: -3})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeAdjustment, m.Type, "tipo por defecto")

	products, err := catalog.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 7, products[0].StockQuantity)

	movements, err := ledger.ListMovements(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, -3, movements[0].QuantityDelta, "el más reciente primero")
	assert.Equal(t, 6, movements[1].QuantityDelta)
}

func TestAdjust_NoDejaStockNegativo(t *testing.T) {
	ctx := context.Background()
	ledger, catalog := newLedger(t)

	_, err := ledger.Adjust(ctx, admin, inventory.AdjustInput{ProductID: "p1", Delta: -5})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	products, err := catalog.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, products[0].StockQuantity)

	movements, err := ledger.ListMovements(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestAdjust_EntradasInvalidas(t *testing.T) {
	ledger, _ := newLedger(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   inventory.AdjustInput
		want error
	}{
		{"delta cero", inventory.AdjustInput{ProductID: "p1"}, domain.ErrInvalidInput},
		{"sin producto", inventory.AdjustInput{Delta: 1}, domain.ErrInvalidInput},
		{"reposición negativa", inventory.AdjustInput{ProductID: "p1", Delta: -1, Type: entity.MovementTypeRestock}, domain.ErrInvalidInput},
		{"tipo reservado a ventas", inventory.AdjustInput{ProductID: "p1", Delta: -1, Type: entity.MovementTypeSale}, domain.ErrInvalidInput},
		{"producto inexistente", inventory.AdjustInput{ProductID: "zz", Delta: 1}, domain.ErrProductNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ledger.Adjust(ctx, admin, tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestSeedProducts_SoloConCatalogoVacio(t *testing.T) {
	ctx := context.Background()
	_, catalog := newLedger(t)

	seeded, err := catalog.SeedProducts(ctx, entity.DefaultCatalog())
	require.NoError(t, err)
	assert.False(t, seeded)

	products, err := catalog.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}
