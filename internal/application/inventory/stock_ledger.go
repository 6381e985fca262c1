package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/mb-vendas/internal/application/ports"
	"github.com/jhoicas/mb-vendas/internal/domain"
	"github.com/jhoicas/mb-vendas/internal/domain/entity"
)

// StockLedger ajusta el stock de un producto y deja un movimiento inmutable por cada cambio.
type StockLedger struct {
	txRunner ports.TxRunner
	log      zerolog.Logger
	now      func() time.Time
	newID    func() string
}

// NewStockLedger construye el ledger.
func NewStockLedger(txRunner ports.TxRunner, log zerolog.Logger) *StockLedger {
	return &StockLedger{
		txRunner: txRunner,
		log:      log,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// WithClock reemplaza el reloj (tests).
func (l *StockLedger) WithClock(now func() time.Time) *StockLedger {
	l.now = now
	return l
}

// AdjustInput entrada de un ajuste de stock. Delta negativo = salida.
type AdjustInput struct {
	ProductID     string
	Delta         int
	Type          string
	RelatedSaleID string
}

// Adjust aplica el ajuste en su propia unidad de trabajo. Los tipos sale y cancellation
// quedan reservados al servicio de ventas.
func (l *StockLedger) Adjust(ctx context.Context, actor entity.Actor, in AdjustInput) (*entity.StockMovement, error) {
	if in.Type == "" {
		in.Type = entity.MovementTypeAdjustment
	}
	if in.ProductID == "" || in.Delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.MovementTypeAdjustment:
	case entity.MovementTypeRestock:
		if in.Delta < 0 {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	var movement *entity.StockMovement
	err := l.txRunner.Run(ctx, func(repos ports.Repositories) error {
		m, err := l.AdjustInTx(repos, actor, in, l.now())
		movement = m
		return err
	})
	if err != nil {
		return nil, err
	}
	l.log.Info().
		Str("product_id", in.ProductID).
		Int("delta", in.Delta).
		Str("type", in.Type).
		Msg("stock ajustado")
	return movement, nil
}

// AdjustInTx aplica el ajuste con los repositorios de una unidad de trabajo abierta.
// Si el producto no existe o el stock quedaría negativo, no modifica nada.
func (l *StockLedger) AdjustInTx(repos ports.Repositories, actor entity.Actor, in AdjustInput, at time.Time) (*entity.StockMovement, error) {
	product, err := repos.Products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &domain.ProductNotFoundError{ProductID: in.ProductID}
	}
	newQty := product.StockQuantity + in.Delta
	if newQty < 0 {
		return nil, &domain.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Available:   product.StockQuantity,
			Requested:   -in.Delta,
		}
	}

	product.StockQuantity = newQty
	if err := repos.Products.Upsert(product); err != nil {
		return nil, err
	}
	movement := &entity.StockMovement{
		ID:            l.newID(),
		ProductID:     product.ID,
		ProductName:   product.Name,
		QuantityDelta: in.Delta,
		Type:          in.Type,
		RelatedSaleID: in.RelatedSaleID,
		Date:          entity.DateOf(at),
		Time:          entity.TimeOf(at),
		SellerID:      actor.ID,
		CreatedAt:     at,
	}
	if err := repos.Movements.Create(movement); err != nil {
		return nil, err
	}
	return movement, nil
}

// ListMovements devuelve los movimientos, del más reciente al más antiguo.
// productID vacío = todos los productos.
func (l *StockLedger) ListMovements(ctx context.Context, productID string) ([]entity.StockMovement, error) {
	var out []entity.StockMovement
	err := l.txRunner.View(ctx, func(repos ports.Repositories) error {
		all := repos.Movements.List()
		for i := len(all) - 1; i >= 0; i-- {
			if productID == "" || all[i].ProductID == productID {
				out = append(out, all[i])
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
