package redis_test

import (
	"testing"

	"forest/config"
	"forest/infras/redis"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "forest"
	cfg.Cache.Redis.Primary.Host = "cache.internal"
	cfg.Cache.Redis.Primary.Port = "6380"
	cfg.Cache.Redis.Primary.Password = "secret"
	cfg.Cache.Redis.Primary.DB = 2

	opts := redis.Options(cfg)

	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, "forest", opts.ClientName)
}

func TestOptionsIPv6(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = "::1"
	cfg.Cache.Redis.Primary.Port = "6379"

	assert.Equal(t, "[::1]:6379", redis.Options(cfg).Addr)
}
