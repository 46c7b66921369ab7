package docstore

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Each collection lives in one hash (id -> JSON document) plus a sorted set
// that remembers insertion order, scored by a per-collection sequence.
// Writes touching both keys run as Lua scripts so a single document
// operation stays atomic.

var insertScript = redis.NewScript(`
if redis.call('HSETNX', KEYS[1], ARGV[1], ARGV[2]) == 0 then
  return 0
end
local seq = redis.call('INCR', KEYS[3])
redis.call('ZADD', KEYS[2], seq, ARGV[1])
return 1
`)

var putScript = redis.NewScript(`
local created = redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
if created == 1 then
  local seq = redis.call('INCR', KEYS[3])
  redis.call('ZADD', KEYS[2], seq, ARGV[1])
end
return created
`)

var replaceScript = redis.NewScript(`
if redis.call('HEXISTS', KEYS[1], ARGV[1]) == 0 then
  return 0
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
return 1
`)

var deleteScript = redis.NewScript(`
local n = redis.call('HDEL', KEYS[1], ARGV[1])
redis.call('ZREM', KEYS[2], ARGV[1])
return n
`)

type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

func NewRedisStore(client *redis.Client, keyPrefix string) *RedisStore {
	return &RedisStore{client: client, keyPrefix: keyPrefix}
}

// OpenRedis connects to the Redis instance at url and checks it answers.
func OpenRedis(ctx context.Context, url, keyPrefix string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewRedisStore(client, keyPrefix), nil
}

func (s *RedisStore) docsKey(collection string) string {
	return fmt.Sprintf("%s:%s", s.keyPrefix, collection)
}

func (s *RedisStore) orderKey(collection string) string {
	return fmt.Sprintf("%s:%s:order", s.keyPrefix, collection)
}

func (s *RedisStore) seqKey(collection string) string {
	return fmt.Sprintf("%s:%s:seq", s.keyPrefix, collection)
}

func (s *RedisStore) keys(collection string) []string {
	return []string{s.docsKey(collection), s.orderKey(collection), s.seqKey(collection)}
}

func (s *RedisStore) Get(ctx context.Context, collection, id string) ([]byte, error) {
	raw, err := s.client.HGet(ctx, s.docsKey(collection), id).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s/%s: %w", collection, id, err)
	}
	return raw, nil
}

func (s *RedisStore) List(ctx context.Context, collection string) ([][]byte, error) {
	ids, err := s.client.ZRange(ctx, s.orderKey(collection), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list %s: %w", collection, err)
	}
	if len(ids) == 0 {
		return [][]byte{}, nil
	}

	values, err := s.client.HMGet(ctx, s.docsKey(collection), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list %s: %w", collection, err)
	}

	out := make([][]byte, 0, len(values))
	for _, v := range values {
		// ids removed between ZRANGE and HMGET come back as nil
		if str, ok := v.(string); ok {
			out = append(out, []byte(str))
		}
	}
	return out, nil
}

func (s *RedisStore) Insert(ctx context.Context, collection, id string, doc []byte) error {
	created, err := insertScript.Run(ctx, s.client, s.keys(collection), id, string(doc)).Int64()
	if err != nil {
		return fmt.Errorf("redis insert %s/%s: %w", collection, id, err)
	}
	if created == 0 {
		return ErrConflict
	}
	return nil
}

func (s *RedisStore) Replace(ctx context.Context, collection, id string, doc []byte) error {
	replaced, err := replaceScript.Run(ctx, s.client, s.keys(collection), id, string(doc)).Int64()
	if err != nil {
		return fmt.Errorf("redis replace %s/%s: %w", collection, id, err)
	}
	if replaced == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) Put(ctx context.Context, collection, id string, doc []byte) error {
	if err := putScript.Run(ctx, s.client, s.keys(collection), id, string(doc)).Err(); err != nil {
		return fmt.Errorf("redis put %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, collection, id string) error {
	removed, err := deleteScript.Run(ctx, s.client, s.keys(collection), id).Int64()
	if err != nil {
		return fmt.Errorf("redis delete %s/%s: %w", collection, id, err)
	}
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
