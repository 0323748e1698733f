// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/metagraphus/config.yaml",
	"/etc/metagraphus/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            5000,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    120 * time.Second, // country charts wait on geocoding
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: 1 * time.Minute,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            3306,
			User:            "root",
			Password:        "",
			Name:            "metagraphus",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			ConnectTimeout:  10 * time.Second,
			SeedDemoData:    false,
		},
		Snapshot: SnapshotConfig{
			Path: "data/metadata.csv",
		},
		Geocoding: GeocodingConfig{
			Enabled:   true,
			BaseURL:   "https://nominatim.openstreetmap.org",
			UserAgent: "metagraphus/1.0 (+https://github.com/tomtom215/metagraphus)",
			Timeout:   10 * time.Second,
		},
		Embeddings: EmbeddingsConfig{
			ModelPath: "", // Disabled by default - the model file is large and opt-in
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// Before the environment layer is read, a .env file in the working directory
// is loaded into the process environment (existing variables win). The store
// credentials (SQL_HOST, SQL_USER, ...) have always been delivered that way.
//
// This function is the preferred way to load configuration and provides:
//   - Type-safe configuration unmarshaling
//   - Clear precedence: ENV > File > Defaults
//   - Support for nested configuration via koanf struct tags
//   - Backward compatibility with the deployment's environment variables
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := FindConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority).
	// godotenv never overrides variables already present in the environment,
	// so real env vars still win over .env entries.
	_ = godotenv.Load()

	// Transform environment variable names to koanf paths:
	// SQL_HOST -> database.host
	// SNAPSHOT_PATH -> snapshot.path
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	// Unmarshal into Config struct
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func FindConfigFile() string {
	// Check environment variable first
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	// Search default paths
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"server.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// This is necessary because env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// If it's already a slice (from YAML file), skip
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		// If it's a string, split by comma
		if strVal, ok := val.(string); ok {
			if strVal == "" {
				continue
			}
			parts := strings.Split(strVal, ",")
			trimmed := make([]string, 0, len(parts))
			for _, p := range parts {
				p = strings.TrimSpace(p)
				if p != "" {
					trimmed = append(trimmed, p)
				}
			}
			if len(trimmed) > 0 {
				if err := k.Set(path, trimmed); err != nil {
					return fmt.Errorf("failed to set %s: %w", path, err)
				}
			}
		}
	}
	return nil
}

// envTransformFunc transforms environment variable names to koanf config paths.
// It handles the mapping from the deployment's environment variable names to
// the nested configuration structure.
//
// Examples:
//   - SQL_HOST -> database.host
//   - SQL_DATABASE -> database.name
//   - PORT -> server.port
//   - SNAPSHOT_PATH -> snapshot.path
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	// Map environment variable names to config sections
	envMappings := map[string]string{
		// Metadata store mappings; SQL_* are the names the .env file has
		// always carried
		"sql_host":             "database.host",
		"sql_port":             "database.port",
		"sql_user":             "database.user",
		"sql_password":         "database.password",
		"sql_database":         "database.name",
		"db_max_open_conns":    "database.max_open_conns",
		"db_max_idle_conns":    "database.max_idle_conns",
		"db_conn_max_lifetime": "database.conn_max_lifetime",
		"db_connect_timeout":   "database.connect_timeout",
		"seed_demo_data":       "database.seed_demo_data",

		// Snapshot mappings (METADATA_PATH is the historical name)
		"snapshot_path": "snapshot.path",
		"metadata_path": "snapshot.path",

		// Server mappings
		"http_host":             "server.host",
		"http_port":             "server.port",
		"port":                  "server.port",
		"http_read_timeout":     "server.read_timeout",
		"http_write_timeout":    "server.write_timeout",
		"http_idle_timeout":     "server.idle_timeout",
		"http_shutdown_timeout": "server.shutdown_timeout",
		"cors_origins":          "server.cors_origins",
		"rate_limit_requests":   "server.rate_limit_requests",
		"rate_limit_window":     "server.rate_limit_window",

		// Geocoding mappings
		"geocoding_enabled":    "geocoding.enabled",
		"geocoding_base_url":   "geocoding.base_url",
		"geocoding_user_agent": "geocoding.user_agent",
		"geocoding_timeout":    "geocoding.timeout",

		// Embeddings mappings (WORD2VEC_MODEL is the historical name)
		"embeddings_model_path": "embeddings.model_path",
		"word2vec_model":        "embeddings.model_path",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}

// WatchConfigFile sets up a file watcher for hot-reload capability.
// Note: The caller is responsible for mutex protection when accessing
// configuration during reloads.
//
// Example usage:
//
//	err := WatchConfigFile(configPath, func() {
//	    newCfg, err := LoadWithKoanf()
//	    if err != nil {
//	        logging.Err(err).Msg("Config reload failed")
//	        return
//	    }
//	    logging.Init(logging.Config{Level: newCfg.Logging.Level, Format: newCfg.Logging.Format})
//	})
func WatchConfigFile(path string, callback func()) error {
	provider := file.Provider(path)

	// Start watching the file for changes
	return provider.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
