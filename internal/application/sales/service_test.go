package sales_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mb-vendas/internal/application/cashier"
	"github.com/jhoicas/mb-vendas/internal/application/inventory"
	"github.com/jhoicas/mb-vendas/internal/application/ports"
	"github.com/jhoicas/mb-vendas/internal/application/sales"
	"github.com/jhoicas/mb-vendas/internal/domain"
	"github.com/jhoicas/mb-vendas/internal/domain/entity"
	"github.com/jhoicas/mb-vendas/internal/infrastructure/collections"
	"github.com/jhoicas/mb-vendas/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var seller = entity.Actor{ID: "u1", Name: "Ana"}

// testClock avanza un minuto en cada lectura para que created_at sea estrictamente creciente.
type testClock struct {
	mu  sync.Mutex
	cur time.Time
}

func newTestClock() *testClock {
	return &testClock{cur: time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = c.cur.Add(time.Minute)
	return c.cur
}

type fixture struct {
	svc    *sales.Service
	runner *collections.Runner
	stock  *inventory.StockLedger
	cash   *cashier.Ledger
	store  *memory.KVStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewKVStore()
	runner := collections.NewRunner(store, memory.NewLocker(), collections.NewKeys("test_"))
	clock := newTestClock()
	stock := inventory.NewStockLedger(runner, zerolog.Nop()).WithClock(clock.Now)
	cash := cashier.NewLedger(runner).WithClock(clock.Now)
	svc := sales.NewService(runner, stock, cash, nil, zerolog.Nop()).WithClock(clock.Now)

	seeded, err := inventory.NewCatalogUseCase(runner).SeedProducts(context.Background(), []entity.Product{
		{ID: "p1", Name: "Coxinha", UnitPrice: decimal.RequireFromString("5.00"), StockQuantity: 10, Category: "Salgados"},
		{ID: "p2", Name: "Pastel", UnitPrice: decimal.RequireFromString("6.00"), StockQuantity: 5, Category: "Salgados"},
	})
	require.NoError(t, err)
	require.True(t, seeded)
	return &fixture{svc: svc, runner: runner, stock: stock, cash: cash, store: store}
}

func (f *fixture) product(t *testing.T, id string) entity.Product {
	t.Helper()
	var p *entity.Product
	require.NoError(t, f.runner.View(context.Background(), func(r ports.Repositories) error {
		var err error
		p, err = r.Products.GetByID(id)
		return err
	}))
	require.NotNil(t, p)
	return *p
}

func (f *fixture) counts(t *testing.T) (sales, movements, cash int) {
	t.Helper()
	require.NoError(t, f.runner.View(context.Background(), func(r ports.Repositories) error {
		sales = len(r.Sales.List())
		movements = len(r.Movements.List())
		cash = len(r.Cash.List())
		return nil
	}))
	return
}

func (f *fixture) balance(t *testing.T) decimal.Decimal {
	t.Helper()
	b, err := f.cash.Balance(context.Background())
	require.NoError(t, err)
	return b
}

func coxinhas(qty int) sales.CreateSaleInput {
	return sales.CreateSaleInput{
		Items:         []entity.SaleItem{{ProductID: "p1", ProductName: "Coxinha", Quantity: qty, UnitPrice: decimal.RequireFromString("5.00")}},
		PaymentMethod: entity.PaymentPix,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateSale
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_VentaSimple(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	sale, err := f.svc.CreateSale(ctx, seller, coxinhas(2))
	require.NoError(t, err)

	assert.True(t, sale.Total.Equal(decimal.NewFromInt(10)), "total = 2 × 5,00")
	assert.Equal(t, entity.SaleStatusConfirmed, sale.Status)
	assert.Equal(t, "u1", sale.SellerID)
	assert.Equal(t, "Ana", sale.SellerName)
	assert.Equal(t, entity.UnidentifiedCustomer, sale.CustomerName)
	assert.Equal(t, "2024-05-10", sale.Date)
	assert.Len(t, sale.Time, 8)
	assert.Equal(t, 8, f.product(t, "p1").StockQuantity)

	movements, err := f.stock.ListMovements(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, -2, movements[0].QuantityDelta)
	assert.Equal(t, entity.MovementTypeSale, movements[0].Type)
	assert.Equal(t, sale.ID, movements[0].RelatedSaleID)
	assert.Equal(t, "u1", movements[0].SellerID)

	entries, err := f.cash.ListEntries(ctx, cashier.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.CashDirectionIn, entries[0].Direction)
	assert.Equal(t, entity.CashCategorySales, entries[0].Category)
	assert.True(t, entries[0].Value.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "Venda #"+sale.ID[len(sale.ID)-8:]+" - Cliente não identificado", entries[0].Description)
	assert.Equal(t, sale.ID, entries[0].RelatedSaleID)

	assert.True(t, f.balance(t).Equal(decimal.NewFromInt(10)))
}

func TestCreateSale_RecalculaSubtotalYAplicaDescuento(t *testing.T) {
	f := newFixture(t)
	in := sales.CreateSaleInput{
		Items: []entity.SaleItem{
			{ProductID: "p1", Quantity: 3, UnitPrice: decimal.RequireFromString("5.00"), Subtotal: decimal.NewFromInt(999)},
			{ProductID: "p2", Quantity: 1, UnitPrice: decimal.RequireFromString("6.00")},
		},
		PaymentMethod: entity.PaymentCredit2x,
		CustomerName:  "  Maria ",
		Discount:      decimal.RequireFromString("1.50"),
	}

	sale, err := f.svc.CreateSale(context.Background(), seller, in)
	require.NoError(t, err)

	assert.True(t, sale.Items[0].Subtotal.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, "Coxinha", sale.Items[0].ProductName, "nombre tomado del catálogo")
	assert.True(t, sale.Subtotal.Equal(decimal.NewFromInt(21)))
	assert.True(t, sale.Total.Equal(decimal.RequireFromString("19.50")))
	assert.Equal(t, "Maria", sale.CustomerName)
}

func TestCreateSale_StockInsuficienteNoEscribeNada(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateSale(context.Background(), seller, coxinhas(11))

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, "p1", insufficient.ProductID)
	assert.Equal(t, 10, insufficient.Available)
	assert.Equal(t, 11, insufficient.Requested)

	s, m, c := f.counts(t)
	assert.Zero(t, s)
	assert.Zero(t, m)
	assert.Zero(t, c)
	assert.Equal(t, 10, f.product(t, "p1").StockQuantity)
}

func TestCreateSale_OrdenDeValidaciones(t *testing.T) {
	five := decimal.RequireFromString("5.00")
	tests := []struct {
		name string
		in   sales.CreateSaleInput
		want error
	}{
		{
			name: "sin items gana sobre forma de pago",
			in:   sales.CreateSaleInput{},
			want: domain.ErrEmptySale,
		},
		{
			name: "total cero gana sobre forma de pago",
			in: sales.CreateSaleInput{
				Items:    []entity.SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: five}},
				Discount: five,
			},
			want: domain.ErrNonPositiveTotal,
		},
		{
			name: "forma de pago ausente gana sobre producto inexistente",
			in: sales.CreateSaleInput{
				Items: []entity.SaleItem{{ProductID: "nope", Quantity: 1, UnitPrice: five}},
			},
			want: domain.ErrMissingPaymentMethod,
		},
		{
			name: "forma de pago fuera de la enumeración",
			in: sales.CreateSaleInput{
				Items:         []entity.SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: five}},
				PaymentMethod: "Cheque",
			},
			want: domain.ErrMissingPaymentMethod,
		},
		{
			name: "producto inexistente",
			in: sales.CreateSaleInput{
				Items:         []entity.SaleItem{{ProductID: "nope", Quantity: 1, UnitPrice: five}},
				PaymentMethod: entity.PaymentCash,
			},
			want: domain.ErrProductNotFound,
		},
		{
			name: "descuento negativo",
			in: sales.CreateSaleInput{
				Items:         []entity.SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: five}},
				PaymentMethod: entity.PaymentCash,
				Discount:      decimal.NewFromInt(-1),
			},
			want: domain.ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.svc.CreateSale(context.Background(), seller, tt.in)
			assert.ErrorIs(t, err, tt.want)

			s, m, c := f.counts(t)
			assert.Zero(t, s+m+c, "ninguna colección se modifica")
		})
	}
}

func TestCreateSale_FalloDeStockTrasValidarEsTodoONada(t *testing.T) {
	f := newFixture(t)
	// Dos líneas del mismo producto: cada una pasa la validación (5 ≥ 3) pero la suma no.
	in := sales.CreateSaleInput{
		Items: []entity.SaleItem{
			{ProductID: "p1", Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
			{ProductID: "p2", Quantity: 3, UnitPrice: decimal.RequireFromString("6.00")},
			{ProductID: "p2", Quantity: 3, UnitPrice: decimal.RequireFromString("6.00")},
		},
		PaymentMethod: entity.PaymentDebit,
	}

	_, err := f.svc.CreateSale(context.Background(), seller, in)

	var failed *domain.StockUpdateFailedError
	require.ErrorAs(t, err, &failed)
	assert.ErrorIs(t, err, domain.ErrStockUpdateFailed)
	assert.Equal(t, "p2", failed.ProductID)

	assert.Equal(t, 10, f.product(t, "p1").StockQuantity, "el descuento de p1 tampoco se persiste")
	assert.Equal(t, 5, f.product(t, "p2").StockQuantity)
	s, m, c := f.counts(t)
	assert.Zero(t, s)
	assert.Zero(t, m)
	assert.Zero(t, c)
}

type flakyStore struct {
	*memory.KVStore
	fail bool
}

func (s *flakyStore) SetMany(ctx context.Context, values map[string][]byte) error {
	if s.fail {
		return errors.New("quota exceeded")
	}
	return s.KVStore.SetMany(ctx, values)
}

func TestCreateSale_ErrorDeAlmacenamientoSePropaga(t *testing.T) {
	store := &flakyStore{KVStore: memory.NewKVStore()}
	runner := collections.NewRunner(store, memory.NewLocker(), collections.NewKeys("test_"))
	svc := sales.NewService(runner, inventory.NewStockLedger(runner, zerolog.Nop()), cashier.NewLedger(runner), nil, zerolog.Nop())
	_, err := inventory.NewCatalogUseCase(runner).SeedProducts(context.Background(), entity.DefaultCatalog())
	require.NoError(t, err)

	store.fail = true
	_, err = svc.CreateSale(context.Background(), seller, sales.CreateSaleInput{
		Items:         []entity.SaleItem{{ProductID: "1", Quantity: 1, UnitPrice: decimal.NewFromInt(5)}},
		PaymentMethod: entity.PaymentPix,
	})
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestCreateSale_EscritoresConcurrentesNoVendenDeMas(t *testing.T) {
	f := newFixture(t)
	const buyers = 12

	var wg sync.WaitGroup
	errs := make(chan error, buyers)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.CreateSale(context.Background(), seller, coxinhas(1))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	ok, rejected := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrInsufficientStock):
			rejected++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 10, ok)
	assert.Equal(t, 2, rejected)
	assert.Equal(t, 0, f.product(t, "p1").StockQuantity)
	assert.True(t, f.balance(t).Equal(decimal.NewFromInt(50)))
}

// ──────────────────────────────────────────────────────────────────────────────
// CancelSale
// ──────────────────────────────────────────────────────────────────────────────

func TestCancelSale_ReponeStockYRegistraSalida(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sale, err := f.svc.CreateSale(ctx, seller, coxinhas(2))
	require.NoError(t, err)

	cancelled, err := f.svc.CancelSale(ctx, seller, sale.ID, "cliente desistiu")
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)
	assert.Equal(t, "cliente desistiu", cancelled.CancelReason)
	assert.Equal(t, 10, f.product(t, "p1").StockQuantity)

	stored, err := f.svc.GetSaleByID(ctx, sale.ID)
	require.NoError(t, err, "la venta cancelada se conserva")
	assert.Equal(t, entity.SaleStatusCancelled, stored.Status)

	movements, err := f.stock.ListMovements(ctx, "")
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, 2, movements[0].QuantityDelta, "el más reciente primero")
	assert.Equal(t, entity.MovementTypeCancellation, movements[0].Type)
	assert.Equal(t, sale.ID, movements[0].RelatedSaleID)

	out, err := f.cash.ListEntries(ctx, cashier.EntryFilter{Direction: entity.CashDirectionOut})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, entity.CashCategoryReversals, out[0].Category)
	assert.Equal(t, "Cancelamento Venda #"+sale.ShortID()+" - Cliente não identificado (cliente desistiu)", out[0].Description)
	assert.True(t, out[0].Value.Equal(decimal.NewFromInt(10)))

	assert.True(t, f.balance(t).IsZero())
}

func TestCancelSale_NoAlteraImportesNiItems(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	in := coxinhas(2)
	in.Discount = decimal.NewFromInt(1)
	created, err := f.svc.CreateSale(ctx, seller, in)
	require.NoError(t, err)
	require.True(t, created.Total.Equal(decimal.NewFromInt(9)))

	_, err = f.svc.CancelSale(ctx, seller, created.ID, "troca")
	require.NoError(t, err)

	after, err := f.svc.GetSaleByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCancelled, after.Status)
	assert.True(t, created.Total.Equal(after.Total), "total %s vs %s", created.Total, after.Total)
	assert.True(t, created.Subtotal.Equal(after.Subtotal))
	assert.True(t, created.Discount.Equal(after.Discount))
	require.Len(t, after.Items, len(created.Items))
	for i, it := range created.Items {
		got := after.Items[i]
		assert.Equal(t, it.ProductID, got.ProductID)
		assert.Equal(t, it.ProductName, got.ProductName)
		assert.Equal(t, it.Quantity, got.Quantity)
		assert.True(t, it.UnitPrice.Equal(got.UnitPrice))
		assert.True(t, it.Subtotal.Equal(got.Subtotal))
	}
}

func TestCancelSale_DosVecesFallaSinEfectos(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sale, err := f.svc.CreateSale(ctx, seller, coxinhas(1))
	require.NoError(t, err)
	_, err = f.svc.CancelSale(ctx, seller, sale.ID, "")
	require.NoError(t, err)
	_, m1, c1 := f.counts(t)

	_, err = f.svc.CancelSale(ctx, seller, sale.ID, "")
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)

	_, m2, c2 := f.counts(t)
	assert.Equal(t, m1, m2)
	assert.Equal(t, c1, c2)
	assert.Equal(t, 10, f.product(t, "p1").StockQuantity)
	assert.True(t, f.balance(t).IsZero())
}

func TestCancelSale_Inexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CancelSale(context.Background(), seller, "nao-existe", "")
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

func TestCancelSale_ProductoEliminadoSeOmite(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sale, err := f.svc.CreateSale(ctx, seller, coxinhas(1))
	require.NoError(t, err)

	// Catálogo reemplazado sin la coxinha.
	require.NoError(t, f.runner.Run(ctx, func(r ports.Repositories) error {
		return r.Products.ReplaceAll([]entity.Product{{ID: "p2", Name: "Pastel", StockQuantity: 5}})
	}))

	_, err = f.svc.CancelSale(ctx, seller, sale.ID, "")
	require.NoError(t, err)
	assert.True(t, f.balance(t).IsZero(), "la salida de caja se registra igual")
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas y reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSales_FiltrosYOrden(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	bruno := entity.Actor{ID: "u2", Name: "Bruno"}

	first, err := f.svc.CreateSale(ctx, seller, coxinhas(1))
	require.NoError(t, err)
	in := coxinhas(1)
	in.CustomerID = "c9"
	second, err := f.svc.CreateSale(ctx, bruno, in)
	require.NoError(t, err)
	_, err = f.svc.CancelSale(ctx, seller, first.ID, "")
	require.NoError(t, err)

	all, err := f.svc.GetSales(ctx, sales.SaleFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "más reciente primero")

	confirmed, err := f.svc.GetSales(ctx, sales.SaleFilter{Status: entity.SaleStatusConfirmed})
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, second.ID, confirmed[0].ID)

	bySeller, err := f.svc.GetSales(ctx, sales.SaleFilter{SellerID: "u1"})
	require.NoError(t, err)
	require.Len(t, bySeller, 1)
	assert.Equal(t, first.ID, bySeller[0].ID)

	byCustomer, err := f.svc.GetSales(ctx, sales.SaleFilter{CustomerID: "c9"})
	require.NoError(t, err)
	assert.Len(t, byCustomer, 1)

	outOfRange, err := f.svc.GetSales(ctx, sales.SaleFilter{DateFrom: "2024-05-11"})
	require.NoError(t, err)
	assert.Empty(t, outOfRange)

	inRange, err := f.svc.GetSales(ctx, sales.SaleFilter{DateFrom: "2024-05-10", DateTo: "2024-05-10"})
	require.NoError(t, err)
	assert.Len(t, inRange, 2, "rango inclusivo")
}

func TestGetSaleByID_Inexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.GetSaleByID(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

func TestGetSalesReport_SoloConfirmadas(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	bruno := entity.Actor{ID: "u2", Name: "Bruno"}

	_, err := f.svc.CreateSale(ctx, seller, coxinhas(2)) // 10,00 Pix
	require.NoError(t, err)
	mixed := sales.CreateSaleInput{
		Items: []entity.SaleItem{
			{ProductID: "p1", Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
			{ProductID: "p2", Quantity: 2, UnitPrice: decimal.RequireFromString("6.00")},
		},
		PaymentMethod: entity.PaymentCash,
		Discount:      decimal.NewFromInt(2),
	}
	_, err = f.svc.CreateSale(ctx, bruno, mixed) // 17 − 2 = 15,00 Dinheiro
	require.NoError(t, err)
	toCancel, err := f.svc.CreateSale(ctx, bruno, coxinhas(3))
	require.NoError(t, err)
	_, err = f.svc.CancelSale(ctx, bruno, toCancel.ID, "erro")
	require.NoError(t, err)

	report, err := f.svc.GetSalesReport(ctx, "", "")
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalSales)
	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromInt(25)))
	assert.True(t, report.TotalDiscount.Equal(decimal.NewFromInt(2)))
	assert.True(t, report.RevenueByPaymentMethod[entity.PaymentPix].Equal(decimal.NewFromInt(10)))
	assert.True(t, report.RevenueByPaymentMethod[entity.PaymentCash].Equal(decimal.NewFromInt(15)))

	assert.Equal(t, 3, report.ByProduct["p1"].Quantity)
	assert.True(t, report.ByProduct["p1"].Revenue.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, "Pastel", report.ByProduct["p2"].ProductName)

	assert.Equal(t, 1, report.BySeller["u1"].SalesCount)
	assert.Equal(t, 1, report.BySeller["u2"].SalesCount, "la venta cancelada no cuenta")
	assert.Equal(t, "Bruno", report.BySeller["u2"].SellerName)
	assert.True(t, report.BySeller["u2"].Revenue.Equal(decimal.NewFromInt(15)))

	// El saldo de caja coincide con la suma de ventas confirmadas.
	assert.True(t, f.balance(t).Equal(report.TotalRevenue))
}

func TestReportPDF_SinGenerador(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.ReportPDF(context.Background(), "", "")
	assert.Error(t, err)
}
