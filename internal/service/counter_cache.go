package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/fadilmartias/rozgar/internal/config"
	"github.com/redis/go-redis/v9"
)

// CounterCache stores computed dashboard aggregates until a mutation invalidates them.
// Every Invalidate bumps the key's version; Set only stores a value computed
// at the version that is still current, so counts read before a mutation
// never overwrite the invalidation.
type CounterCache interface {
	Get(ctx context.Context, key string, dst any) bool
	Version(ctx context.Context, key string) int64
	Set(ctx context.Context, key string, v any, version int64)
	Invalidate(ctx context.Context, keys ...string)
}

var errStaleCounters = errors.New("counters invalidated while computing")

func versionKey(key string) string {
	return key + ":version"
}

type RedisCounterCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCounterCache(cfg *config.RedisConfig) *RedisCounterCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisCounterCache{rdb: rdb, ttl: cfg.TTL}
}

func (c *RedisCounterCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *RedisCounterCache) Close() error {
	return c.rdb.Close()
}

// Cache failures are logged and treated as misses; the database stays the source of truth.
func (c *RedisCounterCache) Get(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("counter cache get %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("counter cache decode %s: %v", key, err)
		return false
	}
	return true
}

func (c *RedisCounterCache) Version(ctx context.Context, key string) int64 {
	v, err := c.rdb.Get(ctx, versionKey(key)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		log.Printf("counter cache version %s: %v", key, err)
	}
	return v
}

func (c *RedisCounterCache) Set(ctx context.Context, key string, v any, version int64) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	vk := versionKey(key)
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vk).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleCounters
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, c.ttl)
			return nil
		})
		return err
	}, vk)
	if err != nil && !errors.Is(err, errStaleCounters) && !errors.Is(err, redis.TxFailedErr) {
		log.Printf("counter cache set %s: %v", key, err)
	}
}

func (c *RedisCounterCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		for _, key := range keys {
			pipe.Incr(ctx, versionKey(key))
		}
		return nil
	})
	if err != nil {
		log.Printf("counter cache invalidate %v: %v", keys, err)
	}
}

// NoopCounterCache is used when Redis is not configured.
type NoopCounterCache struct{}

func (NoopCounterCache) Get(context.Context, string, any) bool   { return false }
func (NoopCounterCache) Version(context.Context, string) int64   { return 0 }
func (NoopCounterCache) Set(context.Context, string, any, int64) {}
func (NoopCounterCache) Invalidate(context.Context, ...string)   {}
