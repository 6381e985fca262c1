// Package cashier implementa el libro de caja: asientos inmutables de entrada y salida
// cuyo saldo se obtiene siempre sumando el historial completo.
package cashier

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mb-vendas/internal/application/ports"
	"github.com/jhoicas/mb-vendas/internal/domain"
	"github.com/jhoicas/mb-vendas/internal/domain/entity"
	"github.com/jhoicas/mb-vendas/internal/domain/repository"
)

// BalanceSource calcula el saldo fuera de la unidad de trabajo (ej. SUM en PostgreSQL).
type BalanceSource interface {
	CashBalance(ctx context.Context) (decimal.Decimal, error)
}

// Ledger libro de caja.
type Ledger struct {
	txRunner ports.TxRunner
	balance  BalanceSource
	now      func() time.Time
	newID    func() string
}

// NewLedger construye el libro de caja.
func NewLedger(txRunner ports.TxRunner) *Ledger {
	return &Ledger{
		txRunner: txRunner,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// WithBalanceSource delega Balance en src.
func (l *Ledger) WithBalanceSource(src BalanceSource) *Ledger {
	l.balance = src
	return l
}

// WithClock reemplaza el reloj (tests).
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// RecordInput datos de un asiento. Value debe ser positivo; Direction da el signo.
type RecordInput struct {
	Direction     string
	Description   string
	Value         decimal.Decimal
	Category      string
	RelatedSaleID string
}

// EntryFilter filtros de ListEntries. Las fechas son YYYY-MM-DD inclusivas.
type EntryFilter struct {
	Direction string
	Category  string
	DateFrom  string
	DateTo    string
}

// Record agrega un asiento manual (suprimento, sangria) en su propia unidad de trabajo.
func (l *Ledger) Record(ctx context.Context, in RecordInput) (*entity.CashEntry, error) {
	var entry *entity.CashEntry
	err := l.txRunner.Run(ctx, func(repos ports.Repositories) error {
		e, err := l.RecordInTx(repos.Cash, in, l.now())
		entry = e
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// RecordInTx agrega el asiento dentro de una unidad de trabajo abierta.
func (l *Ledger) RecordInTx(repo repository.CashEntryRepository, in RecordInput, at time.Time) (*entity.CashEntry, error) {
	if in.Direction != entity.CashDirectionIn && in.Direction != entity.CashDirectionOut {
		return nil, domain.ErrInvalidInput
	}
	if !in.Value.IsPositive() || strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrInvalidInput
	}
	entry := &entity.CashEntry{
		ID:            l.newID(),
		Direction:     in.Direction,
		Description:   in.Description,
		Value:         in.Value,
		Category:      in.Category,
		Date:          entity.DateOf(at),
		Time:          entity.TimeOf(at),
		CreatedAt:     at,
		RelatedSaleID: in.RelatedSaleID,
	}
	if err := repo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Balance devuelve Σ entradas − Σ salidas.
func (l *Ledger) Balance(ctx context.Context) (decimal.Decimal, error) {
	if l.balance != nil {
		b, err := l.balance.CashBalance(ctx)
		if err != nil {
			return decimal.Zero, domain.StorageErr("saldo de caja", err)
		}
		return b, nil
	}
	balance := decimal.Zero
	err := l.txRunner.View(ctx, func(repos ports.Repositories) error {
		balance = Replay(repos.Cash.List())
		return nil
	})
	return balance, err
}

// Replay suma los asientos con su signo.
func Replay(entries []entity.CashEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Signed())
	}
	return total
}

// ListEntries devuelve los asientos filtrados, del más reciente al más antiguo.
func (l *Ledger) ListEntries(ctx context.Context, f EntryFilter) ([]entity.CashEntry, error) {
	var out []entity.CashEntry
	err := l.txRunner.View(ctx, func(repos ports.Repositories) error {
		all := repos.Cash.List()
		for i := len(all) - 1; i >= 0; i-- {
			e := all[i]
			if f.Direction != "" && e.Direction != f.Direction {
				continue
			}
			if f.Category != "" && e.Category != f.Category {
				continue
			}
			if f.DateFrom != "" && e.Date < f.DateFrom {
				continue
			}
			if f.DateTo != "" && e.Date > f.DateTo {
				continue
			}
			out = append(out, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
