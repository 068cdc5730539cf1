// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *StructuredConfig
	}{
		{
			name: "no flags",
			args: nil,
			want: &StructuredConfig{},
		},
		{
			name: "storage flags",
			args: []string{"-d", "inventory.db", "-driver", "sqlite3"},
			want: &StructuredConfig{
				Storage: Storage{DB: DB{Driver: "sqlite3", DSN: "inventory.db"}},
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/etc/stock.json"},
			want: &StructuredConfig{JSONFilePath: "/etc/stock.json"},
		},
		{
			name: "app and log flags",
			args: []string{
				"-password-hash-key", "pepper",
				"-password-iterations", "150000",
				"-log-file", "stock.log",
				"-log-level", "warn",
			},
			want: &StructuredConfig{
				App: App{PasswordHashKey: "pepper", PasswordIterations: 150000},
				Log: Log{File: "stock.log", Level: "warn"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := parseFlags([]string{"-listen", ":8080"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_BadInt(t *testing.T) {
	_, err := parseFlags([]string{"-password-iterations", "lots"})
	require.Error(t, err)
}
