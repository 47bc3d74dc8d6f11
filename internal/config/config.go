package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the gateway.
type Config struct {
	App      AppConfig
	Backend  BackendConfig
	Identity IdentityConfig
	Storage  StorageConfig
	Logger   LoggerConfig
	Poller   PollerConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// BackendConfig points at the restaurant backend REST API.
type BackendConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// IdentityConfig defines identity-provider parameters.
type IdentityConfig struct {
	JWTSecret       string
	TokenTTLMinutes int
	BcryptCost      int
	MinPasswordLen  int
}

// StorageConfig selects and configures the client-state store.
type StorageConfig struct {
	Driver        string // redis, postgres or memory
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PostgresDSN   string
	Namespace     string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// PollerConfig controls the pending-payment poller.
type PollerConfig struct {
	Enabled         bool
	IntervalSeconds int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "restaurant-gateway"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Backend: BackendConfig{
			BaseURL:        getEnv("BACKEND_BASE_URL", "http://127.0.0.1:9090"),
			TimeoutSeconds: getEnvAsInt("BACKEND_TIMEOUT_SECONDS", 15),
		},
		Identity: IdentityConfig{
			JWTSecret:       getEnv("IDENTITY_JWT_SECRET", "dev-secret"),
			TokenTTLMinutes: getEnvAsInt("IDENTITY_TOKEN_TTL_MINUTES", 60),
			BcryptCost:      getEnvAsInt("IDENTITY_BCRYPT_COST", 12),
			MinPasswordLen:  getEnvAsInt("IDENTITY_MIN_PASSWORD_LEN", 6),
		},
		Storage: StorageConfig{
			Driver:        getEnv("STORAGE_DRIVER", "redis"),
			RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       redisDB,
			PostgresDSN:   os.Getenv("POSTGRES_DSN"),
			Namespace:     getEnv("STORAGE_NAMESPACE", "restaurant"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Poller: PollerConfig{
			Enabled:         getEnvAsBool("PAYMENT_POLLER_ENABLED", true),
			IntervalSeconds: getEnvAsInt("PAYMENT_POLLER_INTERVAL_SECONDS", 10),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Timeout returns the backend HTTP client timeout.
func (b BackendConfig) Timeout() time.Duration {
	if b.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// Interval returns the poll period.
func (p PollerConfig) Interval() time.Duration {
	if p.IntervalSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(p.IntervalSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
