// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Action is the verb stored in an [AuditRecord].
type Action string

const (
	ActionLogin  Action = "LOGIN"
	ActionLogout Action = "LOGOUT"
	ActionAccess Action = "ACCESS"
	ActionInsert Action = "INSERT"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Entity types referenced by audit records.
const (
	EntitySession     = "session"
	EntityUserAccount = "user_account"
	EntitySupplier    = "supplier"
)

// AuditRecord is an immutable fact about one action.
//
// UserID and Username are copied at write time, so later changes to the
// account do not alter history.
type AuditRecord struct {
	// LogID is assigned by storage and grows with write order.
	LogID int64 `json:"log_id"`

	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Action   Action `json:"action"`

	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`

	// Timestamp is assigned by the audit service at write time (UTC).
	Timestamp time.Time `json:"timestamp"`

	Detail string `json:"detail"`
}

// TableName returns the name of the database table
// associated with the AuditRecord model.
func (a AuditRecord) TableName() string {
	return "audit_log"
}

// AuditEntry is the input of a recordAction call: who did what to which entity.
type AuditEntry struct {
	Actor      Identity
	Action     Action
	EntityType string
	EntityID   string
	Detail     string
}

// SortOrder selects the ordering of audit queries.
type SortOrder int

const (
	// NewestFirst orders records by descending LogID. It is the default.
	NewestFirst SortOrder = iota
	// OldestFirst orders records by ascending LogID.
	OldestFirst
)

// AuditFilter narrows an audit query. Zero-valued fields do not filter.
type AuditFilter struct {
	UserID     string
	Username   string
	Action     Action
	EntityType string
	EntityID   string

	// Since and Until bound Timestamp inclusively when non-zero.
	Since time.Time
	Until time.Time

	Order SortOrder

	// Limit caps the number of returned records when positive.
	Limit uint64
}
