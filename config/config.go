package veritrans_integration_config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/voxtmault/veritrans-integration/veritrans"
)

// GatewayConfig is everything needed to talk to the payment gateway
type GatewayConfig struct {
	ServerKey        string        `validate:"required,vtServerKey"`  // Server key from the merchant dashboard, used as the basic auth username
	ClientKey        string        `validate:"omitempty"`             // Client key, only needed by front ends tokenizing cards
	SandboxMode      bool          `validate:"omitempty"`             // Send requests to the sandbox environment
	SandboxURL       string        `validate:"required,url"`          // Base URL of the sandbox environment
	LiveURL          string        `validate:"required,url"`          // Base URL of the production environment
	BinsURL          string        `validate:"omitempty,url"`         // Base URL for BIN lookups, defaults to the active base URL
	RequestTimeout   time.Duration `validate:"required,gt=0"`         // Timeout of a single HTTP exchange
	NotificationPath string        `validate:"required,startswith=/"` // Path the gateway posts payment notifications to
}

// BaseURL returns the base URL of the active environment.
func (c *GatewayConfig) BaseURL() string {
	if c.SandboxMode {
		return c.SandboxURL
	}

	return c.LiveURL
}

// BinsBaseURL returns the base URL used for BIN lookups.
func (c *GatewayConfig) BinsBaseURL() string {
	if c.BinsURL != "" {
		return c.BinsURL
	}

	return c.BaseURL()
}

// For internal use

type MariaConfig struct {
	DBDriver             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBName               string
	DBPassword           string
	TSLConfig            string
	AllowNativePasswords bool
	MultiStatements      bool
	MaxOpenConns         uint
	MaxIdleConns         uint
	ConnMaxLifetime      uint // Minutes
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDBNum    uint8
}

type BinCacheConfig struct {
	BinCacheTTL time.Duration // How long a BIN lookup is kept in redis
}

type InternalConfig struct {
	GatewayConfig
	MariaConfig
	RedisConfig
	BinCacheConfig
	MetricsEnabled bool
	TZ             string
	Mode           string // To control wether the application is running in production or development or debug mode
}

var config *InternalConfig

func New(envPath string) *InternalConfig {

	if err := godotenv.Load(envPath); err != nil {
		log.Println("Failed to locate .env file, program will proceed with provided env if any is provided")
	}

	config = &InternalConfig{
		GatewayConfig: GatewayConfig{
			ServerKey:        getEnv("VT_SERVER_KEY", ""),
			ClientKey:        getEnv("VT_CLIENT_KEY", ""),
			SandboxMode:      getEnvAsBool("VT_SANDBOX_MODE", false),
			SandboxURL:       getEnv("VT_SANDBOX_URL", veritrans.SandboxBaseURL),
			LiveURL:          getEnv("VT_LIVE_URL", veritrans.LiveBaseURL),
			BinsURL:          getEnv("VT_BINS_URL", ""),
			RequestTimeout:   getEnvAsDuration("VT_REQUEST_TIMEOUT", 30*time.Second),
			NotificationPath: getEnv("VT_NOTIFICATION_PATH", "/veritrans/notification"),
		},
		MariaConfig: MariaConfig{
			DBDriver:             getEnv("DB_DRIVER", "mysql"),
			DBHost:               getEnv("DB_HOST", ""),
			DBPort:               getEnv("DB_PORT", "3306"),
			DBUser:               getEnv("DB_USER", ""),
			DBPassword:           getEnv("DB_PASSWORD", ""),
			DBName:               getEnv("DB_NAME", ""),
			TSLConfig:            getEnv("DB_TLS_CONFIG", "false"),
			AllowNativePasswords: getEnvAsBool("DB_ALLOW_NATIVE_PASSWORDS", true),
			MultiStatements:      getEnvAsBool("DB_MULTI_STATEMENTS", false),
			MaxOpenConns:         uint(getEnvAsInt("DB_MAX_OPEN_CONNS", 20)),
			MaxIdleConns:         uint(getEnvAsInt("DB_MAX_IDLE_CONNS", 5)),
			ConnMaxLifetime:      uint(getEnvAsInt("DB_CONN_MAX_LIFETIME", 5)),
		},
		RedisConfig: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", ""),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDBNum:    uint8(getEnvAsInt("REDIS_DB_NUM", 0)),
		},
		BinCacheConfig: BinCacheConfig{
			BinCacheTTL: getEnvAsDuration("BIN_CACHE_TTL", 24*time.Hour),
		},
		MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
		Mode:           getEnv("MODE", "prod"),
		TZ:             getEnv("TZ", "Asia/Jakarta"),
	}

	return config
}

func GetConfig() *InternalConfig {
	return config
}

// Simple helper function to read an environment or return a default value.
func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}

	return defaultVal
}

// Simple helper function to read an environment variable into integer or return a default value.
func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}

	return defaultVal
}

// Helper to read an environment variable into a bool or return default value.
func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

// Helper to read an environment variable into a duration ("30s", "5m") or return default value.
func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valStr := getEnv(name, "")
	if val, err := time.ParseDuration(valStr); err == nil {
		return val
	}

	return defaultVal
}
