// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

const (
	// MsgSetupSkipped is logged when the first-run administrator could not
	// be prepared. The application keeps running.
	MsgSetupSkipped = "setup skipped"

	// MsgDefaultAdminCreated is logged when the first-run administrator was
	// created with the well-known password.
	MsgDefaultAdminCreated = "default administrator created, change its password after the first login"

	// MsgShutdown is logged after the TUI has returned.
	MsgShutdown = "application stopped"
)
