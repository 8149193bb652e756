package veritrans_integration_cache

import (
	"context"
	"os"
	"testing"
	"time"

	viConfig "github.com/voxtmault/veritrans-integration/config"
	viStorage "github.com/voxtmault/veritrans-integration/storage"
)

func TestBinKey(t *testing.T) {
	if binKey("48111111") != "veritrans-bins:48111111" {
		t.Errorf("unexpected key %s", binKey("48111111"))
	}
}

func TestBinCache(t *testing.T) {
	if os.Getenv("REDIS_HOST") == "" {
		t.Skip("REDIS_HOST is not set")
	}

	cfg := viConfig.New(os.Getenv("ENV_PATH"))
	rdb, err := viStorage.InitRedis(&cfg.RedisConfig)
	if err != nil {
		t.Fatal(err)
	}
	defer rdb.CloseRedis()

	ctx := context.Background()
	cache := NewBinCache(rdb.RDB, time.Minute)
	body := []byte(`{"data":{"bin":"48111111","bank":"bni"}}`)

	if _, found, err := cache.Get(ctx, "00000000"); err != nil || found {
		t.Errorf("expected a miss, got found=%v err=%v", found, err)
	}

	if err := cache.Set(ctx, "48111111", body); err != nil {
		t.Fatal(err)
	}

	cached, found, err := cache.Get(ctx, "48111111")
	if err != nil || !found {
		t.Fatalf("expected a hit, got found=%v err=%v", found, err)
	}
	if string(cached) != string(body) {
		t.Errorf("expected %s, got %s", body, cached)
	}

	deleted, err := cache.Purge(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if deleted < 1 {
		t.Errorf("expected at least one deleted key, got %d", deleted)
	}
}
