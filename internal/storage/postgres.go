package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Leerm14/restaurantmanagement/internal/config"
)

const clientStateSchema = `
    CREATE TABLE IF NOT EXISTS client_state (
        namespace  TEXT NOT NULL,
        key        TEXT NOT NULL,
        value      JSONB NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        PRIMARY KEY (namespace, key)
    )`

// PostgresStore persists client state in a single key-value table, for
// deployments without Redis.
type PostgresStore struct {
	pool      *pgxpool.Pool
	namespace string
}

// NewPostgresStore establishes a connection pool and ensures the schema.
func NewPostgresStore(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (*PostgresStore, error) {
	if cfg.PostgresDSN == "" {
		return nil, errors.New("POSTGRES_DSN required for postgres storage driver")
	}

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if _, err := pool.Exec(ctx, clientStateSchema); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("connected to postgres")
	return &PostgresStore{pool: pool, namespace: cfg.Namespace}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM client_state WHERE namespace=$1 AND key=$2`

	var value []byte
	err := s.pool.QueryRow(ctx, query, s.namespace, key).Scan(&value)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	const query = `
        INSERT INTO client_state (namespace, key, value) VALUES ($1, $2, $3)
        ON CONFLICT (namespace, key) DO UPDATE SET value=$3, updated_at=NOW()`

	_, err := s.pool.Exec(ctx, query, s.namespace, key, value)
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM client_state WHERE namespace=$1 AND key=$2`

	_, err := s.pool.Exec(ctx, query, s.namespace, key)
	return err
}

// Ping verifies database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases pool resources.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
