package repository

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/jmoiron/sqlx"
)

// DriverName is the database/sql driver every repository is opened with.
const DriverName = "pgx"

// PoolConfig bounds the shared connection pool.
type PoolConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DB is the connection pool handed to repositories and the health check.
type DB struct {
	*sqlx.DB
}

// Open connects to PostgreSQL and verifies the connection with a ping.
func Open(ctx context.Context, cfg PoolConfig) (*DB, error) {
	db, err := sqlx.ConnectContext(ctx, DriverName, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return &DB{DB: db}, nil
}

// Ping checks that the database answers.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}
