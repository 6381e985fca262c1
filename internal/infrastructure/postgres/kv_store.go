package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mb-vendas/internal/domain/repository"
)

var _ repository.KVStore = (*KVStore)(nil)

const createCollectionsTable = `
CREATE TABLE IF NOT EXISTS pdv_collections (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// KVStore guarda cada colección como un documento JSONB en pdv_collections.
type KVStore struct {
	pool *pgxpool.Pool
}

// NewKVStore construye el almacén con el pool.
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool}
}

// EnsureSchema crea la tabla si no existe.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createCollectionsTable); err != nil {
		return fmt.Errorf("crear tabla pdv_collections: %w", err)
	}
	return nil
}

// Get devuelve el documento o nil si la clave no existe.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	return getValue(ctx, s.pool, key)
}

// GetMany lee todas las claves con una sola sentencia, que ve una única foto de la tabla.
func (s *KVStore) GetMany(ctx context.Context, keys []string) (map[string][]byte, error) {
	rows, err := s.pool.Query(ctx, `SELECT key, value FROM pdv_collections WHERE key = ANY($1)`, keys)
	if err != nil {
		return nil, fmt.Errorf("leer colecciones: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]byte, len(keys))
	for rows.Next() {
		var (
			key string
			raw []byte
		)
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("leer colecciones: %w", err)
		}
		out[key] = raw
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leer colecciones: %w", err)
	}
	return out, nil
}

// SetMany escribe todas las claves en una transacción.
func (s *KVStore) SetMany(ctx context.Context, values map[string][]byte) error {
	// Orden estable de claves para que dos escritores no se bloqueen en cruz.
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return inTx(ctx, s.pool, func(tx pgx.Tx) error {
		for _, k := range keys {
			if err := upsertValue(ctx, tx, k, values[k]); err != nil {
				return err
			}
		}
		return nil
	})
}

// SumCashEntries calcula el saldo de caja en SQL recorriendo el documento de asientos.
func (s *KVStore) SumCashEntries(ctx context.Context, key string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(
			CASE WHEN e->>'direction' = 'out' THEN -(e->>'value')::numeric ELSE (e->>'value')::numeric END
		), 0)
		FROM pdv_collections c, jsonb_array_elements(c.value) e
		WHERE c.key = $1`
	var balance decimal.Decimal
	if err := s.pool.QueryRow(ctx, query, key).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("saldo de caja: %w", err)
	}
	return balance, nil
}

func getValue(ctx context.Context, q Querier, key string) ([]byte, error) {
	var raw []byte
	err := q.QueryRow(ctx, `SELECT value FROM pdv_collections WHERE key = $1`, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", key, err)
	}
	return raw, nil
}

func upsertValue(ctx context.Context, q Querier, key string, value []byte) error {
	query := `
		INSERT INTO pdv_collections (key, value, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := q.Exec(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	return nil
}

// CashBalanceQuery adapta SumCashEntries a cashier.BalanceSource.
type CashBalanceQuery struct {
	store *KVStore
	key   string
}

// NewCashBalanceQuery fija la clave de la colección de asientos.
func NewCashBalanceQuery(store *KVStore, key string) *CashBalanceQuery {
	return &CashBalanceQuery{store: store, key: key}
}

// CashBalance devuelve Σ entradas − Σ salidas.
func (q *CashBalanceQuery) CashBalance(ctx context.Context) (decimal.Decimal, error) {
	return q.store.SumCashEntries(ctx, q.key)
}
