package localstore

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisTimeout = 5 * time.Second

// RedisStore implements Store over a Redis connection, for deployments
// that want kiosk/terminal state to survive the local filesystem. Keys
// are namespaced with a prefix so several storefront instances can
// share one database.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (rs *RedisStore) key(key string) string {
	return rs.prefix + ":" + key
}

func (rs *RedisStore) Load(key string, out any) bool {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	raw, err := rs.client.Get(ctx, rs.key(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("localstore: redis get error:", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false
	}
	return true
}

func (rs *RedisStore) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	return rs.client.Set(ctx, rs.key(key), raw, 0).Err()
}

func (rs *RedisStore) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	return rs.client.Del(ctx, rs.key(key)).Err()
}
