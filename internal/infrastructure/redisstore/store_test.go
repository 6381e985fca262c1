package redisstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mb-vendas/internal/application/ports"
	"github.com/jhoicas/mb-vendas/internal/domain/entity"
	"github.com/jhoicas/mb-vendas/internal/infrastructure/collections"
	"github.com/jhoicas/mb-vendas/internal/infrastructure/redisstore"
)

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestKVStore_GetInexistenteDevuelveNil(t *testing.T) {
	store := redisstore.NewKVStore(newTestClient(t))

	raw, err := store.Get(context.Background(), "mb_vendas_products")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestKVStore_SetManyEscribeTodasLasClaves(t *testing.T) {
	ctx := context.Background()
	store := redisstore.NewKVStore(newTestClient(t))

	require.NoError(t, store.SetMany(ctx, map[string][]byte{
		"a": []byte(`[1]`),
		"b": []byte(`[2]`),
	}))

	a, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.JSONEq(t, `[1]`, string(a))
	b, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.JSONEq(t, `[2]`, string(b))
}

func TestKVStore_GetManyLeeEnUnaSolaFoto(t *testing.T) {
	ctx := context.Background()
	store := redisstore.NewKVStore(newTestClient(t))
	require.NoError(t, store.SetMany(ctx, map[string][]byte{
		"a": []byte(`[1]`),
		"b": []byte(`[2]`),
	}))

	got, err := store.GetMany(ctx, []string{"a", "falta", "b"})
	require.NoError(t, err)
	assert.Len(t, got, 2, "las claves ausentes no aparecen")
	assert.JSONEq(t, `[1]`, string(got["a"]))
	assert.JSONEq(t, `[2]`, string(got["b"]))

	empty, err := store.GetMany(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLocker_SegundoEscritorEsperaHastaLiberar(t *testing.T) {
	rdb := newTestClient(t)
	locker := redisstore.NewLocker(rdb, "mb_vendas_lock", 5*time.Second)

	unlock, err := locker.Lock(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx)
	require.Error(t, err, "el lock está tomado")
	assert.ErrorIs(t, err, redislock.ErrNotObtained)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	unlock2, err := locker.Lock(context.Background())
	require.NoError(t, err, "tras liberar, el lock vuelve a estar disponible")
	unlock2()
}

func TestRunner_SobreRedisPersisteLaUnidadDeTrabajo(t *testing.T) {
	ctx := context.Background()
	rdb := newTestClient(t)
	keys := collections.NewKeys("test_")
	runner := collections.NewRunner(redisstore.NewKVStore(rdb), redisstore.NewLocker(rdb, keys.Lock, time.Second), keys)

	err := runner.Run(ctx, func(r ports.Repositories) error {
		return r.Products.ReplaceAll(entity.DefaultCatalog())
	})
	require.NoError(t, err)

	var names []string
	err = runner.View(ctx, func(r ports.Repositories) error {
		for _, p := range r.Products.List() {
			names = append(names, p.Name)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Coxinha", "Refrigerante 2L", "Combo Lanche", "Pastel", "Suco Natural"}, names)

	exists, err := rdb.Exists(ctx, keys.Products).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)
}
