// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-d database DSN
//	-driver database driver (sqlite3 or pgx)
//	-c/-config json file path with configs
//	-password-hash-key password pepper
//	-password-iterations PBKDF2 round count
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
func parseFlags(args []string) (*StructuredConfig, error) {
	var databaseDSN string
	var driver string
	var jsonConfigPath string
	var passwordHashKey string
	var passwordIterations int
	var logFile string
	var logLevel string

	fs := flag.NewFlagSet("stockkeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver: sqlite3 or pgx")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key (pepper)")
	fs.IntVar(&passwordIterations, "password-iterations", 0, "PBKDF2 iterations")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordHashKey:    passwordHashKey,
			PasswordIterations: passwordIterations,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
