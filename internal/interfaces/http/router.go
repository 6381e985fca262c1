package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mb-vendas/internal/application/cashier"
	"github.com/jhoicas/mb-vendas/internal/application/inventory"
	"github.com/jhoicas/mb-vendas/internal/application/sales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *inventory.CatalogUseCase
	Stock     *inventory.StockLedger
	Cash      *cashier.Ledger
	Sales     *sales.Service
	JWTSecret string
}

// Router registra las rutas de la API. Todo /api requiere Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret), RequireRole(RoleAdmin, RoleSeller))
	adminOnly := RequireRole(RoleAdmin)

	productHandler := NewProductHandler(deps.CatalogUC)
	api.Get("/products", productHandler.List)

	inventoryHandler := NewInventoryHandler(deps.Stock)
	invGroup := api.Group("/inventory")
	invGroup.Post("/adjustments", adminOnly, inventoryHandler.Adjust)
	invGroup.Get("/movements", inventoryHandler.ListMovements)

	saleHandler := NewSaleHandler(deps.Sales)
	salesGroup := api.Group("/sales")
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Post("/:id/cancel", saleHandler.Cancel)

	reportHandler := NewReportHandler(deps.Sales)
	reports := api.Group("/reports")
	reports.Get("/sales", reportHandler.Sales)
	reports.Get("/sales/pdf", reportHandler.SalesPDF)

	cashierHandler := NewCashierHandler(deps.Cash)
	cashierGroup := api.Group("/cashier")
	cashierGroup.Get("/balance", cashierHandler.Balance)
	cashierGroup.Get("/entries", cashierHandler.ListEntries)
	cashierGroup.Post("/entries", adminOnly, cashierHandler.Record)

	voiceHandler := NewVoiceHandler(deps.Sales)
	voiceGroup := api.Group("/voice")
	voiceGroup.Post("/parse", voiceHandler.Parse)
	voiceGroup.Post("/sales", voiceHandler.CreateSale)
}
