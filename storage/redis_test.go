package veritrans_integration_storage

import (
	"os"
	"testing"

	viConfig "github.com/voxtmault/veritrans-integration/config"
)

func TestInitRedis(t *testing.T) {
	if os.Getenv("REDIS_HOST") == "" {
		t.Skip("REDIS_HOST is not set")
	}

	cfg := viConfig.New(os.Getenv("ENV_PATH"))
	obj, err := InitRedis(&cfg.RedisConfig)
	if err != nil {
		t.Fatalf("Error initializing redis: %v", err)
	}

	if err := obj.CloseRedis(); err != nil {
		t.Errorf("Error closing redis: %v", err)
	}
}

func TestInitRedisInvalidConfig(t *testing.T) {
	if _, err := InitRedis(&viConfig.RedisConfig{RedisPort: "6379"}); err == nil {
		t.Error("expected an error for an empty host")
	}
}

func TestRedisOptions(t *testing.T) {
	opts := redisOptions(&viConfig.RedisConfig{RedisHost: "cache.internal", RedisPort: "6380", RedisDBNum: 2})

	if opts.Addr != "cache.internal:6380" {
		t.Errorf("unexpected addr %s", opts.Addr)
	}
	if opts.DB != 2 || opts.Password != "" {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestCloseRedisWithoutConnection(t *testing.T) {
	if err := (&RedisInstance{}).CloseRedis(); err != nil {
		t.Errorf("closing an unopened instance should be a no-op: %v", err)
	}
}
