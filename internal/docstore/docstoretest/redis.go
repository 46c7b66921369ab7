// Package docstoretest provides a miniredis-backed document store for tests.
package docstoretest

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/vetclinic-api/internal/docstore"
)

func NewRedis(t *testing.T) (*miniredis.Miniredis, *docstore.RedisStore) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := docstore.NewRedisStore(client, "test")

	t.Cleanup(func() {
		_ = store.Close()
		mr.Close()
	})
	return mr, store
}
