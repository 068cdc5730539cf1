// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an account with the same
	// username, active or not, is already stored.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrAccountAlreadyExists is returned when an insert violates another
	// uniqueness rule of user_accounts (id or salt).
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when no account matches the lookup key
	// or an update targets an unknown id.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrSupplierAlreadyExists is returned when a supplier id is taken.
	ErrSupplierAlreadyExists = errors.New("supplier already exists")

	// ErrSupplierNotFound is returned when a supplier id is unknown.
	ErrSupplierNotFound = errors.New("supplier was not found")

	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
