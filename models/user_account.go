// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the access tag attached to a [UserAccount].
// The set is open: new roles may be stored without a schema change.
type Role string

const (
	// RoleAdministrator is assigned to the account created on first run.
	RoleAdministrator Role = "Administrator"
	// RoleStandard is the default role for operator accounts.
	RoleStandard Role = "Standard"
)

// UserAccount represents a durable operator identity.
// Accounts are never physically deleted; IsActive=false is the only way to
// retire one so that audit records keep resolving to a known user.
type UserAccount struct {
	// ID is the stable unique identifier of the account.
	ID string `json:"id"`

	// Username is unique across all accounts, active or not.
	// Matching is case-sensitive.
	Username string `json:"username"`

	// PasswordDigest is the base64 encoded output of the password hasher
	// applied to the current password and Salt. Never exposed via JSON.
	PasswordDigest string `json:"-"`

	// Salt is the base64 encoded per-account random salt. It is replaced on
	// every password change.
	Salt string `json:"-"`

	// Role is the access tag of the account.
	Role Role `json:"role"`

	// CreatedAt is the moment the account was persisted.
	CreatedAt time.Time `json:"created_at"`

	// IsActive is false for deactivated accounts.
	IsActive bool `json:"is_active"`
}

// Identity returns the part of the account carried by an authenticated session.
func (u UserAccount) Identity() Identity {
	return Identity{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}

// TableName returns the name of the database table
// associated with the UserAccount model.
func (u UserAccount) TableName() string {
	return "user_accounts"
}

// Identity is what a session knows about the authenticated operator.
type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsZero reports whether the identity is empty (anonymous).
func (i Identity) IsZero() bool {
	return i.UserID == "" && i.Username == ""
}
