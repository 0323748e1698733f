// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration, populated by LoadWithKoanf from
// defaults, an optional YAML file, and environment variables (in that order
// of increasing priority). A .env file in the working directory is loaded
// into the environment first, matching how the metadata store credentials
// have historically been provided.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Database   DatabaseConfig   `koanf:"database"`
	Snapshot   SnapshotConfig   `koanf:"snapshot"`
	Geocoding  GeocodingConfig  `koanf:"geocoding"`
	Embeddings EmbeddingsConfig `koanf:"embeddings"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// ServerConfig holds HTTP server configuration.
//
// Environment Variables:
//   - HTTP_HOST: Bind address (default: 0.0.0.0)
//   - HTTP_PORT or PORT: Listen port (default: 5000)
//   - HTTP_READ_TIMEOUT: Request read timeout (default: 30s)
//   - HTTP_WRITE_TIMEOUT: Response write timeout (default: 120s); chart
//     endpoints render synchronously and country charts may wait on the
//     geocoding provider, so this is deliberately generous
//   - HTTP_IDLE_TIMEOUT: Keep-alive idle timeout (default: 120s)
//   - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown drain window (default: 30s)
//   - CORS_ORIGINS: Comma-separated allowed origins (default: *)
//   - RATE_LIMIT_REQUESTS: Requests allowed per window per IP (default: 100)
//   - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
//
// Example:
//
//	server:
//	  host: 0.0.0.0
//	  port: 5000
//	  write_timeout: 120s
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitReqs   int           `koanf:"rate_limit_requests"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// Address returns the host:port string the HTTP server binds to.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds MySQL/MariaDB connection settings for the metadata
// store. The store is read-mostly: the server only ever runs the grouped
// metadata query against it, while the ingest utility and the demo seeder
// use the write path.
//
// Environment Variables:
//   - SQL_HOST: Store host (default: localhost)
//   - SQL_PORT: Store port (default: 3306)
//   - SQL_USER: Store user (default: root)
//   - SQL_PASSWORD: Store password (default: empty)
//   - SQL_DATABASE: Schema name (default: metagraphus)
//   - DB_MAX_OPEN_CONNS: Connection pool ceiling (default: 10)
//   - DB_MAX_IDLE_CONNS: Idle connections kept (default: 5)
//   - DB_CONN_MAX_LIFETIME: Connection recycling age (default: 30m)
//   - DB_CONNECT_TIMEOUT: Dial + ping budget at startup (default: 10s)
//   - SEED_DEMO_DATA: Create the metadata table and insert a small synthetic
//     corpus at startup (default: false; dev/test only)
//
// The SQL_* names match the variables the deployment has always used in its
// .env file, so an existing deployment configures this service unchanged.
type DatabaseConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnectTimeout  time.Duration `koanf:"connect_timeout"`
	SeedDemoData    bool          `koanf:"seed_demo_data"`
}

// DSN builds the go-sql-driver/mysql data source name. parseTime is always
// on so DATETIME columns scan into time.Time.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// Redacted returns the DSN with the password masked, safe for logging.
func (d *DatabaseConfig) Redacted() string {
	return fmt.Sprintf("%s:***@tcp(%s:%d)/%s", d.User, d.Host, d.Port, d.Name)
}

// SnapshotConfig holds the on-disk CSV snapshot location. The snapshot is
// the system's only cache: once the cleaned table has been written there,
// every request reads it instead of the store until the file is deleted.
//
// Environment Variables:
//   - SNAPSHOT_PATH or METADATA_PATH: Snapshot file path
//     (default: ./data/metadata.csv)
type SnapshotConfig struct {
	Path string `koanf:"path"`
}

// GeocodingConfig holds reverse-geocoding (Nominatim) client settings used
// to resolve GPS coordinates to countries for the country distribution and
// map surfaces.
//
// Environment Variables:
//   - GEOCODING_ENABLED: Enable reverse geocoding (default: true)
//   - GEOCODING_BASE_URL: Nominatim endpoint (default: https://nominatim.openstreetmap.org)
//   - GEOCODING_USER_AGENT: User-Agent header; Nominatim's usage policy
//     requires an identifying agent (default: metagraphus/1.0)
//   - GEOCODING_TIMEOUT: Per-lookup HTTP timeout (default: 10s)
type GeocodingConfig struct {
	Enabled   bool          `koanf:"enabled"`
	BaseURL   string        `koanf:"base_url"`
	UserAgent string        `koanf:"user_agent"`
	Timeout   time.Duration `koanf:"timeout"`
}

// EmbeddingsConfig holds the word2vec model used for tag categorization.
// When ModelPath is empty the categorizer is disabled and the dendrogram
// endpoint reports service-unavailable.
//
// Environment Variables:
//   - EMBEDDINGS_MODEL_PATH or WORD2VEC_MODEL: Path to a binary word2vec
//     model file (default: empty, disabled)
type EmbeddingsConfig struct {
	ModelPath string `koanf:"model_path"`
}

// Enabled reports whether a word2vec model has been configured.
func (e *EmbeddingsConfig) Enabled() bool {
	return e.ModelPath != ""
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: Include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}
