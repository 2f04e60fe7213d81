package config

import (
	"os"
	"sync"
	"time"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

var (
	redisConfig *RedisConfig
	redisOnce   sync.Once
)

func LoadRedisConfig() *RedisConfig {
	redisOnce.Do(func() {
		redisConfig = &RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("DASHBOARD_CACHE_TTL", 10*time.Minute),
		}
	})
	return redisConfig
}

func (c *RedisConfig) Enabled() bool {
	return c.Addr != ""
}
