package veritrans_integration_storage

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
	viConfig "github.com/voxtmault/veritrans-integration/config"
)

// RedisInstance holds the client backing the BIN cache.
type RedisInstance struct {
	RDB *redis.Client
}

var redisInstance RedisInstance

const redisPingTimeout = 5 * time.Second

func validateRedisConfig(cfg *viConfig.RedisConfig) error {
	if cfg.RedisHost == "" {
		return eris.New("redis host is empty")
	}
	if cfg.RedisPort == "" {
		return eris.New("redis port is empty")
	}

	return nil
}

// redisOptions keeps redis round trips well below the gateway request timeout, a slow cache
// must not delay a BIN lookup.
func redisOptions(cfg *viConfig.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword, // Optional
		DB:           int(cfg.RedisDBNum),
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	}
}

func InitRedis(cfg *viConfig.RedisConfig) (*RedisInstance, error) {

	slog.Debug("Validating Redis Config")
	if err := validateRedisConfig(cfg); err != nil {
		return nil, eris.Wrap(err, "invalid redis configuration")
	}

	opts := redisOptions(cfg)
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, eris.Wrapf(err, "pinging redis at %s", opts.Addr)
	}

	slog.Debug("Successfully opened redis connection", "addr", opts.Addr)
	redisInstance.RDB = client

	return &redisInstance, nil
}

func GetRedisInstance() *RedisInstance {
	return &redisInstance
}

func (r *RedisInstance) CloseRedis() error {
	if r.RDB == nil {
		slog.Info("Redis connection is already closed or is not opened in the first place")
		return nil
	}

	if err := r.RDB.Close(); err != nil {
		return eris.Wrap(err, "closing redis connection")
	}
	r.RDB = nil

	return nil
}
