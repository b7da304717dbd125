package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"botlist-backend/internal/common/config"
	"botlist-backend/internal/common/logger"
	"botlist-backend/migrations"
)

type Client struct {
	db *sql.DB

	initOnce sync.Once
	initErr  error
}

func NewClient(cfg *config.Config) (*Client, error) {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Str("host", cfg.Postgres.Host).
		Int("port", cfg.Postgres.Port).
		Str("database", cfg.Postgres.Database).
		Msg("PostgreSQL client initialized")

	return &Client{db: db}, nil
}

// EnsureSchema applies pending migrations exactly once per process. All
// callers share the same in-flight initialization; concurrent first
// requests block on the Once rather than racing their own checks.
func (c *Client) EnsureSchema(ctx context.Context) error {
	c.initOnce.Do(func() {
		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect("postgres"); err != nil {
			c.initErr = err
			return
		}
		if err := goose.UpContext(ctx, c.db, "."); err != nil {
			c.initErr = fmt.Errorf("apply migrations: %w", err)
			return
		}
		logger.Info().Msg("Database schema is up to date")
	})
	return c.initErr
}

func (c *Client) GetDB() *sql.DB {
	return c.db
}

func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) HealthCheck(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *Client) Stats() sql.DBStats {
	return c.db.Stats()
}
