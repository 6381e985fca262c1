package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/mb-vendas/internal/domain/repository"
)

var _ repository.KVStore = (*KVStore)(nil)

// KVStore guarda cada colección como un string JSON bajo su clave.
type KVStore struct {
	rdb redis.Cmdable
}

// NewKVStore construye el almacén sobre un cliente Redis.
func NewKVStore(rdb redis.Cmdable) *KVStore {
	return &KVStore{rdb: rdb}
}

// Get devuelve el valor o nil si la clave no existe.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return raw, nil
}

// GetMany usa un único MGET, atómico respecto de los MULTI/EXEC de SetMany.
func (s *KVStore) GetMany(ctx context.Context, keys []string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	vals, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}
	for i, v := range vals {
		if str, ok := v.(string); ok {
			out[keys[i]] = []byte(str)
		}
	}
	return out, nil
}

// SetMany escribe todas las claves dentro de MULTI/EXEC.
func (s *KVStore) SetMany(ctx context.Context, values map[string][]byte) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range values {
			pipe.Set(ctx, k, v, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis multi/exec: %w", err)
	}
	return nil
}
