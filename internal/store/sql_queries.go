// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-stock-keeper/models"
)

const (
	userAccountsTable = "user_accounts"
	auditLogTable     = "audit_log"
	suppliersTable    = "suppliers"
)

var userAccountColumns = []string{
	"id",
	"username",
	"password_digest",
	"salt",
	"role",
	"created_at",
	"is_active",
}

var auditLogColumns = []string{
	"log_id",
	"user_id",
	"username",
	"action",
	"entity_type",
	"entity_id",
	"created_at",
	"detail",
}

var supplierColumns = []string{
	"supplier_id",
	"name",
	"address",
	"phone",
	"email",
}

// user_accounts

func buildInsertUserAccountQuery(b sq.StatementBuilderType, account models.UserAccount) (string, []any, error) {
	return b.Insert(userAccountsTable).
		Columns(userAccountColumns...).
		Values(
			account.ID,
			account.Username,
			account.PasswordDigest,
			account.Salt,
			string(account.Role),
			account.CreatedAt,
			account.IsActive,
		).
		ToSql()
}

func buildSelectUserAccountQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userAccountColumns...).
		From(userAccountsTable).
		Where(where).
		ToSql()
}

func buildCountUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(userAccountsTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildCountUserAccountsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(userAccountsTable).
		ToSql()
}

func buildSetActiveQuery(b sq.StatementBuilderType, id string, active bool) (string, []any, error) {
	return b.Update(userAccountsTable).
		Set("is_active", active).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpdatePasswordQuery(b sq.StatementBuilderType, id, digest, salt string) (string, []any, error) {
	return b.Update(userAccountsTable).
		Set("password_digest", digest).
		Set("salt", salt).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// audit_log

func buildInsertAuditRecordQuery(b sq.StatementBuilderType, record models.AuditRecord) (string, []any, error) {
	return b.Insert(auditLogTable).
		Columns(auditLogColumns[1:]...).
		Values(
			record.UserID,
			record.Username,
			string(record.Action),
			record.EntityType,
			record.EntityID,
			record.Timestamp,
			record.Detail,
		).
		Suffix("RETURNING log_id").
		ToSql()
}

func buildSelectAuditRecordsQuery(b sq.StatementBuilderType, filter models.AuditFilter) (string, []any, error) {
	q := b.Select(auditLogColumns...).From(auditLogTable)

	if filter.UserID != "" {
		q = q.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Username != "" {
		q = q.Where(sq.Eq{"username": filter.Username})
	}
	if filter.Action != "" {
		q = q.Where(sq.Eq{"action": string(filter.Action)})
	}
	if filter.EntityType != "" {
		q = q.Where(sq.Eq{"entity_type": filter.EntityType})
	}
	if filter.EntityID != "" {
		q = q.Where(sq.Eq{"entity_id": filter.EntityID})
	}
	if !filter.Since.IsZero() {
		q = q.Where(sq.GtOrEq{"created_at": filter.Since})
	}
	if !filter.Until.IsZero() {
		q = q.Where(sq.LtOrEq{"created_at": filter.Until})
	}

	if filter.Order == models.OldestFirst {
		q = q.OrderBy("log_id ASC")
	} else {
		q = q.OrderBy("log_id DESC")
	}

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	return q.ToSql()
}

// suppliers

func buildInsertSupplierQuery(b sq.StatementBuilderType, supplier models.Supplier) (string, []any, error) {
	return b.Insert(suppliersTable).
		Columns(supplierColumns...).
		Values(supplier.ID, supplier.Name, supplier.Address, supplier.Phone, supplier.Email).
		ToSql()
}

func buildUpdateSupplierQuery(b sq.StatementBuilderType, supplier models.Supplier) (string, []any, error) {
	return b.Update(suppliersTable).
		Set("name", supplier.Name).
		Set("address", supplier.Address).
		Set("phone", supplier.Phone).
		Set("email", supplier.Email).
		Where(sq.Eq{"supplier_id": supplier.ID}).
		ToSql()
}

func buildDeleteSupplierQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(suppliersTable).
		Where(sq.Eq{"supplier_id": id}).
		ToSql()
}

func buildSelectSupplierQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(supplierColumns...).
		From(suppliersTable).
		Where(sq.Eq{"supplier_id": id}).
		ToSql()
}

func buildSelectSuppliersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(supplierColumns...).
		From(suppliersTable).
		OrderBy("name ASC", "supplier_id ASC").
		ToSql()
}
