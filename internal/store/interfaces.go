// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"iter"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// UserAccountRepository persists operator accounts. Lookups by username are
// case-sensitive and ignore the active flag; filtering inactive accounts is
// the caller's concern.
type UserAccountRepository interface {
	CreateAccount(ctx context.Context, account models.UserAccount) (models.UserAccount, error)
	FindByUsername(ctx context.Context, username string) (models.UserAccount, error)
	FindByID(ctx context.Context, id string) (models.UserAccount, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	SetActive(ctx context.Context, id string, active bool) error
	UpdatePassword(ctx context.Context, id, digest, salt string) error
	CountAccounts(ctx context.Context) (int64, error)
}

// AuditRepository appends to and reads from the audit_log table.
// It has no update or delete method.
type AuditRepository interface {
	// AppendRecord inserts record and returns it with LogID set.
	AppendRecord(ctx context.Context, record models.AuditRecord) (models.AuditRecord, error)

	// QueryRecords returns a sequence that runs the query each time it is
	// ranged over. Iteration stops after the first error is yielded.
	QueryRecords(ctx context.Context, filter models.AuditFilter) iter.Seq2[models.AuditRecord, error]
}

// SupplierRepository is the storage side of the supplier table.
type SupplierRepository interface {
	CreateSupplier(ctx context.Context, supplier models.Supplier) error
	UpdateSupplier(ctx context.Context, supplier models.Supplier) error
	DeleteSupplier(ctx context.Context, id string) error
	GetSupplier(ctx context.Context, id string) (models.Supplier, error)
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
}
