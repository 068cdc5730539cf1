// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"iter"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// CredentialService owns operator accounts: creation, lookup, password
// verification and (de)activation. Passwords never leave it in any form
// other than salted digests.
type CredentialService interface {
	// FindActiveByUsername returns the active account with exactly this
	// username or ErrAccountNotFound.
	FindActiveByUsername(ctx context.Context, username string) (models.UserAccount, error)

	// CreateAccount stores a new account with a fresh salt. An empty id is
	// replaced by a generated one; an empty role means RoleStandard.
	CreateAccount(ctx context.Context, id, username, password string, role models.Role) (models.UserAccount, error)

	// VerifyCredentials returns the account when username and password match
	// an active account, ErrInvalidCredentials otherwise.
	VerifyCredentials(ctx context.Context, username, password string) (models.UserAccount, error)

	Deactivate(ctx context.Context, id string) error
	Reactivate(ctx context.Context, id string) error

	// ChangePassword replaces both salt and digest.
	ChangePassword(ctx context.Context, id, newPassword string) error

	CountAccounts(ctx context.Context) (int64, error)

	// UsesDefaultPassword reports whether the account is the bootstrap
	// administrator still protected by the well-known password.
	UsesDefaultPassword(ctx context.Context, id string) (bool, error)
}

// AuditService appends to and reads the audit trail.
type AuditService interface {
	// Record stamps entry with the current UTC time and persists it.
	Record(ctx context.Context, entry models.AuditEntry) (models.AuditRecord, error)

	// Query returns matching records, newest first unless the filter asks
	// otherwise. The query runs each time the sequence is ranged over.
	Query(ctx context.Context, filter models.AuditFilter) iter.Seq2[models.AuditRecord, error]

	// History is Query with the zero filter.
	History(ctx context.Context) iter.Seq2[models.AuditRecord, error]
}

// SessionManager holds the single in-memory session of the process.
type SessionManager interface {
	Login(ctx context.Context, username, password string) (models.Identity, error)
	Logout(ctx context.Context) error
	CurrentUser() (models.Identity, bool)
}

// BootstrapService prepares a fresh database for first use.
type BootstrapService interface {
	// EnsureAdministrator creates the default administrator when no account
	// exists and reports whether it did.
	EnsureAdministrator(ctx context.Context) (bool, error)
}

// SupplierService manages suppliers. Mutations read the acting operator
// from the context and write an audit record in the same transaction.
type SupplierService interface {
	AddSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
	GetSupplier(ctx context.Context, id string) (models.Supplier, error)

	// ListSuppliers is a sensitive read: it records an ACCESS entry.
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
