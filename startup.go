package veritrans_integration

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rotisserie/eris"
	viCache "github.com/voxtmault/veritrans-integration/cache"
	viConfig "github.com/voxtmault/veritrans-integration/config"
	viLogger "github.com/voxtmault/veritrans-integration/logger"
	viStorage "github.com/voxtmault/veritrans-integration/storage"
	viUtil "github.com/voxtmault/veritrans-integration/utils"
)

// InitVeritransAPI loads the configuration from envPath and builds the gateway client. Redis
// and MariaDB are optional, without them BIN lookups are not cached and egress logs are not
// persisted.
func InitVeritransAPI(envPath string) (*VeritransAPI, error) {
	// Load Configs
	cfg := viConfig.New(envPath)
	viUtil.InitValidator()

	if strings.Contains(strings.ToLower(cfg.Mode), "debug") {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	} else {
		slog.SetLogLoggerLevel(slog.LevelInfo)
	}

	// Checks for problematic configurations
	if err := viUtil.ValidateStruct(context.Background(), &cfg.GatewayConfig); err != nil {
		return nil, eris.Wrap(err, "invalid gateway configuration")
	}

	var binCache *viCache.BinCache
	if cfg.RedisHost != "" {
		obj, err := viStorage.InitRedis(&cfg.RedisConfig)
		if err != nil {
			return nil, eris.Wrap(err, "init redis connection")
		}
		binCache = viCache.NewBinCache(obj.RDB, cfg.BinCacheTTL)
	} else {
		slog.Info("redis host is not set, bin lookups will not be cached")
	}

	if cfg.DBHost != "" {
		db, err := viStorage.InitMariaDB(&cfg.MariaConfig)
		if err != nil {
			if closeErr := viStorage.GetRedisInstance().CloseRedis(); closeErr != nil {
				slog.Error("failed to close redis connection", "reason", closeErr)
			}
			return nil, eris.Wrap(err, "init mariadb connection")
		}
		viLogger.InitLogger(db)
	} else {
		slog.Info("database host is not set, egress logs will not be persisted")
	}

	return NewVeritransAPI(cfg, binCache), nil
}

// Close flushes pending egress logs and releases the storage connections.
func (a *VeritransAPI) Close() error {
	viLogger.CloseLogger()

	if err := viStorage.CloseMariaDB(); err != nil {
		return eris.Wrap(err, "closing mariadb connection")
	}

	if err := viStorage.GetRedisInstance().CloseRedis(); err != nil {
		return eris.Wrap(err, "closing redis connection")
	}

	return nil
}
