// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/tomtom215/metagraphus/internal/config"
	"github.com/tomtom215/metagraphus/internal/logging"
)

// DB wraps the MySQL connection to the metadata store and provides the
// grouped metadata loader plus the seeding/ingest write path
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
}

// New opens a connection pool to the metadata store and verifies it with a
// bounded ping. The store schema is owned by the indexer that populates it;
// New never creates tables (SeedDemoData does, for dev/test runs).
func New(cfg *config.DatabaseConfig) (*DB, error) {
	conn, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{
		conn: conn,
		cfg:  cfg,
	}

	db.configureConnectionPool()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to ping database %s: %w", cfg.Redacted(), err)
	}

	logging.Info().
		Str("dsn", cfg.Redacted()).
		Int("max_open_conns", cfg.MaxOpenConns).
		Msg("Connected to metadata store")

	return db, nil
}

// NewWithConn wraps an existing *sql.DB. This is intended for tests that
// substitute a mock connection for the real driver.
func NewWithConn(conn *sql.DB, cfg *config.DatabaseConfig) *DB {
	return &DB{conn: conn, cfg: cfg}
}

// configureConnectionPool applies the pool limits from config
func (db *DB) configureConnectionPool() {
	db.conn.SetMaxOpenConns(db.cfg.MaxOpenConns)
	db.conn.SetMaxIdleConns(db.cfg.MaxIdleConns)
	db.conn.SetConnMaxLifetime(db.cfg.ConnMaxLifetime)
}

// Conn returns the underlying SQL database connection.
// This is used by tests and by callers that need direct store access.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// Close closes the database connection pool
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}
