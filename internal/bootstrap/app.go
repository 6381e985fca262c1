// Package bootstrap arma los casos de uso sobre el backend configurado. Lo comparten la API y la CLI.
package bootstrap

import (
	"context"

	"github.com/jhoicas/mb-vendas/internal/application/cashier"
	"github.com/jhoicas/mb-vendas/internal/application/inventory"
	"github.com/jhoicas/mb-vendas/internal/application/sales"
	"github.com/jhoicas/mb-vendas/internal/domain/entity"
	infrapdf "github.com/jhoicas/mb-vendas/internal/infrastructure/pdf"
	"github.com/jhoicas/mb-vendas/internal/infrastructure/storage"
	"github.com/jhoicas/mb-vendas/pkg/config"
	"github.com/jhoicas/mb-vendas/pkg/logger"
)

// App casos de uso listos para usar.
type App struct {
	Config  *config.Config
	Backend *storage.Backend
	Catalog *inventory.CatalogUseCase
	Stock   *inventory.StockLedger
	Cash    *cashier.Ledger
	Sales   *sales.Service
}

// New abre el almacenamiento y construye los servicios.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	backend, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		return nil, err
	}

	stock := inventory.NewStockLedger(backend.Runner, log.Component("inventory"))
	cash := cashier.NewLedger(backend.Runner)
	if backend.Balance != nil {
		cash = cash.WithBalanceSource(backend.Balance)
	}
	svc := sales.NewService(
		backend.Runner, stock, cash,
		infrapdf.NewSalesReportGenerator(cfg.App.Name),
		log.Component("sales"),
	)

	return &App{
		Config:  cfg,
		Backend: backend,
		Catalog: inventory.NewCatalogUseCase(backend.Runner),
		Stock:   stock,
		Cash:    cash,
		Sales:   svc,
	}, nil
}

// SeedCatalog carga el catálogo inicial si el almacén está vacío.
func (a *App) SeedCatalog(ctx context.Context) (bool, error) {
	return a.Catalog.SeedProducts(ctx, entity.DefaultCatalog())
}

// Close libera el backend.
func (a *App) Close() {
	a.Backend.Close()
}
