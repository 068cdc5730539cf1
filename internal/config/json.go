// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads a JSON config file. Its layout mirrors [StructuredConfig]:
//
//	{
//	  "app":     {"password_hash_key": "...", "password_iterations": 600000, "version": "1.0.0"},
//	  "storage": {"db": {"driver": "sqlite3", "dsn": "stock.db"}},
//	  "log":     {"file": "stock.log", "level": "info"}
//	}
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var cfg StructuredConfig
	if err := json.NewDecoder(jsonFile).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &cfg, nil
}
