// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateSnapshot(); err != nil {
		return err
	}

	if err := c.validateGeocoding(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates the HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Server.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Server.RateLimitReqs)
	}
	if c.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

// validateDatabase validates the metadata store configuration
func (c *Config) validateDatabase() error {
	if c.Database.Host == "" {
		return fmt.Errorf("SQL_HOST is required")
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("SQL_PORT must be between 1 and 65535, got %d", c.Database.Port)
	}
	if c.Database.User == "" {
		return fmt.Errorf("SQL_USER is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("SQL_DATABASE is required")
	}
	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be at least 1, got %d", c.Database.MaxOpenConns)
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("DB_MAX_IDLE_CONNS (%d) cannot exceed DB_MAX_OPEN_CONNS (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}
	return nil
}

// validateSnapshot validates the snapshot configuration
func (c *Config) validateSnapshot() error {
	if c.Snapshot.Path == "" {
		return fmt.Errorf("SNAPSHOT_PATH is required")
	}
	if strings.HasSuffix(c.Snapshot.Path, "/") {
		return fmt.Errorf("SNAPSHOT_PATH must be a file path, not a directory: %s", c.Snapshot.Path)
	}
	return nil
}

// validateGeocoding validates the reverse-geocoding configuration (only if enabled)
func (c *Config) validateGeocoding() error {
	if !c.Geocoding.Enabled {
		return nil
	}

	if c.Geocoding.BaseURL == "" {
		return fmt.Errorf("GEOCODING_BASE_URL is required when GEOCODING_ENABLED=true")
	}
	u, err := url.Parse(c.Geocoding.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("GEOCODING_BASE_URL is invalid: %s", c.Geocoding.BaseURL)
	}
	if c.Geocoding.UserAgent == "" {
		return fmt.Errorf("GEOCODING_USER_AGENT is required when GEOCODING_ENABLED=true")
	}
	if c.Geocoding.Timeout <= 0 {
		return fmt.Errorf("GEOCODING_TIMEOUT must be positive")
	}
	return nil
}

// validateLogging validates the logging configuration
func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, panic; got %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
