// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"APP_PASSWORD_HASH_KEY",
	"APP_PASSWORD_ITERATIONS",
	"APP_VERSION",
	"STORAGE_DB_DRIVER",
	"STORAGE_DB_DATABASE_URI",
	"LOG_FILE",
	"LOG_LEVEL",
	"CONFIG",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
	}
	t.Cleanup(func() {
		for k := range vars {
			_ = os.Unsetenv(k)
		}
	})
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	saved := make(map[string]string)
	for _, k := range configEnvVars {
		if v, ok := os.LookupEnv(k); ok {
			saved[k] = v
		}
		_ = os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for k, v := range saved {
			_ = os.Setenv(k, v)
		}
	})
}

func TestParseEnv_AllFields(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"APP_PASSWORD_HASH_KEY":   "pepper",
		"APP_PASSWORD_ITERATIONS": "200000",
		"APP_VERSION":             "1.2.3",
		"STORAGE_DB_DRIVER":       "pgx",
		"STORAGE_DB_DATABASE_URI": "postgres://localhost/stock",
		"LOG_FILE":                "/tmp/stock.log",
		"LOG_LEVEL":               "debug",
		"CONFIG":                  "/etc/stock.json",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "pepper", cfg.App.PasswordHashKey)
	assert.Equal(t, 200000, cfg.App.PasswordIterations)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/stock", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/stock.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/etc/stock.json", cfg.JSONFilePath)
}

func TestParseEnv_Empty(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidIterations(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"APP_PASSWORD_ITERATIONS": "many"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
