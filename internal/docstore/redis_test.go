package docstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, "test")

	t.Cleanup(func() {
		_ = store.Close()
		mr.Close()
	})
	return mr, store
}

func TestRedisStore_InsertGet(t *testing.T) {
	mr, store := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "products", "p1", []byte(`{"id":"p1"}`)))

	raw, err := store.Get(ctx, "products", "p1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"p1"}`, string(raw))

	assert.True(t, mr.Exists("test:products"))
	assert.True(t, mr.Exists("test:products:order"))
}

func TestRedisStore_InsertDuplicateConflicts(t *testing.T) {
	_, store := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "products", "p1", []byte(`{"v":1}`)))
	err := store.Insert(ctx, "products", "p1", []byte(`{"v":2}`))
	assert.ErrorIs(t, err, ErrConflict)

	raw, err := store.Get(ctx, "products", "p1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1}`, string(raw))
}

func TestRedisStore_GetMissing(t *testing.T) {
	_, store := setupTestRedis(t)

	_, err := store.Get(context.Background(), "products", "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_ListKeepsInsertionOrder(t *testing.T) {
	_, store := setupTestRedis(t)
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.Insert(ctx, "patients", id, []byte(`"`+id+`"`)))
	}

	docs, err := store.List(ctx, "patients")
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, `"c"`, string(docs[0]))
	assert.Equal(t, `"a"`, string(docs[1]))
	assert.Equal(t, `"b"`, string(docs[2]))
}

func TestRedisStore_ListEmptyCollection(t *testing.T) {
	_, store := setupTestRedis(t)

	docs, err := store.List(context.Background(), "orders")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestRedisStore_ReplaceRequiresExisting(t *testing.T) {
	_, store := setupTestRedis(t)
	ctx := context.Background()

	err := store.Replace(ctx, "users", "u1", []byte(`{}`))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Get(ctx, "users", "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Insert(ctx, "users", "u1", []byte(`{"n":1}`)))
	require.NoError(t, store.Replace(ctx, "users", "u1", []byte(`{"n":2}`)))

	raw, err := store.Get(ctx, "users", "u1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":2}`, string(raw))
}

func TestRedisStore_PutUpserts(t *testing.T) {
	_, store := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "carts", "u1", []byte(`{"items":[]}`)))
	require.NoError(t, store.Put(ctx, "carts", "u1", []byte(`{"items":[1]}`)))

	docs, err := store.List(ctx, "carts")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.JSONEq(t, `{"items":[1]}`, string(docs[0]))
}

func TestRedisStore_Delete(t *testing.T) {
	_, store := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "products", "p1", []byte(`{}`)))
	require.NoError(t, store.Delete(ctx, "products", "p1"))

	assert.ErrorIs(t, store.Delete(ctx, "products", "p1"), ErrNotFound)

	docs, err := store.List(ctx, "products")
	require.NoError(t, err)
	assert.Empty(t, docs)
}
