package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/mb-vendas/internal/domain/repository"
)

var _ repository.Locker = (*Locker)(nil)

// Locker lock distribuido de escritor único.
type Locker struct {
	client *redislock.Client
	key    string
	ttl    time.Duration
}

// NewLocker crea el lock sobre key con el TTL indicado.
func NewLocker(rdb redis.UniversalClient, key string, ttl time.Duration) *Locker {
	return &Locker{client: redislock.New(rdb), key: key, ttl: ttl}
}

// Lock reintenta hasta obtener el lock; sin deadline en ctx, redislock usa el TTL como límite.
// Si la espera se agota el error envuelve redislock.ErrNotObtained y la causa del contexto.
func (l *Locker) Lock(ctx context.Context) (func(), error) {
	lock, err := l.client.Obtain(ctx, l.key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(25 * time.Millisecond),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("lock %s ocupado: %w", l.key, err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return nil, fmt.Errorf("lock %s ocupado: %w (%w)", l.key, redislock.ErrNotObtained, err)
	}
	if err != nil {
		return nil, fmt.Errorf("obtener lock %s: %w", l.key, err)
	}
	return func() {
		_ = lock.Release(context.Background())
	}, nil
}
