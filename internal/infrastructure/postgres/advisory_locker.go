package postgres

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/mb-vendas/internal/domain/repository"
)

var _ repository.Locker = (*AdvisoryLocker)(nil)

// AdvisoryLocker serializa escritores con pg_advisory_lock sobre una conexión dedicada.
type AdvisoryLocker struct {
	pool *pgxpool.Pool
	key  int64
}

// NewAdvisoryLocker deriva la clave numérica del lock a partir de name.
func NewAdvisoryLocker(pool *pgxpool.Pool, name string) *AdvisoryLocker {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return &AdvisoryLocker{pool: pool, key: int64(h.Sum64())}
}

// Lock bloquea hasta obtener el lock o hasta que el contexto se cancele.
func (l *AdvisoryLocker) Lock(ctx context.Context) (func(), error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("adquirir conexión: %w", err)
	}
	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock($1)`, l.key); err != nil {
		conn.Release()
		return nil, fmt.Errorf("pg_advisory_lock: %w", err)
	}
	return func() {
		_, _ = conn.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, l.key)
		conn.Release()
	}, nil
}
