package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Leerm14/restaurantmanagement/internal/config"
)

// ErrNotFound is returned when a key holds no value.
var ErrNotFound = errors.New("storage: key not found")

// Fixed keys for persisted client state.
const (
	KeyGeneralSettings = "settings:general"
	KeyLanguage        = "settings:language"
	KeyCart            = "cart"
)

// Store is durable client-state storage. Values are JSON-encoded by the
// callers; the store treats them as opaque bytes.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Open builds the store selected by configuration.
func Open(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (Store, error) {
	switch cfg.Driver {
	case "redis":
		return NewRedisStore(cfg, logger), nil
	case "postgres":
		return NewPostgresStore(ctx, cfg, logger)
	case "memory":
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
