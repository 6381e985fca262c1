// Package memory implementa el almacén clave-valor en memoria del proceso.
// Se usa en tests y en modo demo (STORE_DRIVER=memory).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/mb-vendas/internal/domain/repository"
)

var (
	_ repository.KVStore = (*KVStore)(nil)
	_ repository.Locker  = (*Locker)(nil)
)

// KVStore mapa protegido por RWMutex.
type KVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKVStore crea un almacén vacío.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string][]byte)}
}

// Get devuelve una copia del valor o nil si la clave no existe.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

// GetMany copia las claves pedidas bajo un único RLock.
func (s *KVStore) GetMany(ctx context.Context, keys []string) (map[string][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		if v, ok := s.data[k]; ok {
			out[k] = append([]byte(nil), v...)
		}
	}
	return out, nil
}

// SetMany escribe todas las claves bajo el mismo lock.
func (s *KVStore) SetMany(ctx context.Context, values map[string][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range values {
		s.data[k] = append([]byte(nil), v...)
	}
	return nil
}

// Locker mutex de proceso que respeta la cancelación del contexto.
type Locker struct {
	sem chan struct{}
}

// NewLocker crea el lock de escritor único.
func NewLocker() *Locker {
	return &Locker{sem: make(chan struct{}, 1)}
}

// Lock espera el turno o la cancelación del contexto.
func (l *Locker) Lock(ctx context.Context) (func(), error) {
	select {
	case l.sem <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-l.sem }) }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
