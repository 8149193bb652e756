package veritrans_integration_cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
	viInterfaces "github.com/voxtmault/veritrans-integration/interfaces"
	viUtil "github.com/voxtmault/veritrans-integration/utils"
)

// BinCache keeps gzipped BIN lookup responses in redis, BIN data rarely changes.
type BinCache struct {
	RDB *redis.Client
	TTL time.Duration
}

var _ viInterfaces.BinCache = &BinCache{}

func NewBinCache(rdb *redis.Client, ttl time.Duration) *BinCache {
	return &BinCache{
		RDB: rdb,
		TTL: ttl,
	}
}

func binKey(binNumber string) string {
	return fmt.Sprintf("%s:%s", viUtil.BinCacheRedis, binNumber)
}

func (c *BinCache) Get(ctx context.Context, binNumber string) ([]byte, bool, error) {
	compressed, err := c.RDB.Get(ctx, binKey(binNumber)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, eris.Wrap(err, "getting bin from redis")
	}

	body, err := viUtil.DecompressData(compressed)
	if err != nil {
		slog.Warn("dropping unreadable bin cache entry", "bin", binNumber, "reason", err)
		c.RDB.Del(ctx, binKey(binNumber))
		return nil, false, nil
	}

	return body, true, nil
}

func (c *BinCache) Set(ctx context.Context, binNumber string, body []byte) error {
	compressed, err := viUtil.CompressData(body)
	if err != nil {
		return eris.Wrap(err, "compressing bin response")
	}

	if err := c.RDB.Set(ctx, binKey(binNumber), compressed, c.TTL).Err(); err != nil {
		return eris.Wrap(err, "saving bin to redis")
	}

	return nil
}

// Purge removes every cached BIN lookup and returns the number of deleted keys.
func (c *BinCache) Purge(ctx context.Context) (int64, error) {
	var deleted int64
	var cursor uint64

	for {
		keys, next, err := c.RDB.Scan(ctx, cursor, viUtil.BinCacheRedis+":*", 100).Result()
		if err != nil {
			return deleted, eris.Wrap(err, "scanning bin keys")
		}

		if len(keys) > 0 {
			n, err := c.RDB.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, eris.Wrap(err, "deleting bin keys")
			}
			deleted += n
		}

		if next == 0 {
			break
		}
		cursor = next
	}

	slog.Debug("purged bin cache", "deleted", deleted)
	return deleted, nil
}
