package repository

import (
	"context"
	"fmt"
	"net"
	"net/url"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS public.segments (
		segment_id SERIAL PRIMARY KEY,
		from_lng   DOUBLE PRECISION NOT NULL,
		from_lat   DOUBLE PRECISION NOT NULL,
		to_lng     DOUBLE PRECISION NOT NULL,
		to_lat     DOUBLE PRECISION NOT NULL,
		mid_lng    DOUBLE PRECISION,
		mid_lat    DOUBLE PRECISION,
		attempts   INTEGER NOT NULL DEFAULT 0,
		last_error TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

// NewDatabase opens a pgx connection pool and verifies it with a ping.
func NewDatabase(ctx context.Context, host, port, user, password, name string) (*pgxpool.Pool, error) {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     net.JoinHostPort(host, port),
		Path:     name,
		RawQuery: "sslmode=disable",
	}

	return Connect(ctx, dsn.String())
}

// Connect opens a pool for an already assembled connection string.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// Migrate creates the segments table when it does not exist yet.
func Migrate(ctx context.Context, db Database) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create segments table: %w", err)
	}

	return nil
}
