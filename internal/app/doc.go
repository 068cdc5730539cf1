// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the desktop application runtime.
//
// It opens the database, applies migrations, wires the services, prepares
// the administrator account on first run and hands the terminal to the TUI.
package app
