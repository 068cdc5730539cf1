// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// go-stock-keeper application. It is populated by merging values from
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - json: key used in the JSON config file.
type StructuredConfig struct {
	// App holds the credential settings and the application version.
	App App `envPrefix:"APP_" json:"app"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_" json:"storage"`

	// Log holds the destination and verbosity of the structured log.
	Log Log `envPrefix:"LOG_" json:"log"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds application-level settings.
type App struct {
	// PasswordHashKey is an optional pepper. When set, passwords are keyed
	// with HMAC-SHA256 before the PBKDF2 stretch. Changing it invalidates
	// every stored digest.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY" json:"password_hash_key"`

	// PasswordIterations is the PBKDF2 round count. Must stay constant for
	// the lifetime of a database.
	// Env: APP_PASSWORD_ITERATIONS
	PasswordIterations int `env:"PASSWORD_ITERATIONS" json:"password_iterations"`

	// Version is the semantic version string shown by the shell.
	// Env: APP_VERSION
	Version string `env:"VERSION" json:"version"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_" json:"db"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver is the database/sql driver name: "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER" json:"driver"`

	// DSN is the data source name: a file path for SQLite or a
	// postgres:// URL for PostgreSQL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" json:"dsn"`
}

// Log configures the structured logger.
type Log struct {
	// File is the path of the log file. Empty means "logs" next to the binary.
	// Env: LOG_FILE
	File string `env:"FILE" json:"file"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" json:"level"`
}

// Supported values of [DB.Driver].
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Defaults applied to fields left empty by every source.
const (
	DefaultDriver             = DriverSQLite
	DefaultDSN                = "stock.db"
	DefaultPasswordIterations = 600_000
	DefaultLogLevel           = "info"

	// MinPasswordIterations is the lowest PBKDF2 round count accepted.
	MinPasswordIterations = 100_000
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDriver
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Driver == DriverSQLite {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.App.PasswordIterations == 0 {
		cfg.App.PasswordIterations = DefaultPasswordIterations
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
