// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when input fails validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrDuplicateUsername is returned when an account with the same
	// username, active or not, already exists.
	ErrDuplicateUsername = errors.New("username is already taken")

	// ErrInvalidCredentials covers unknown users, inactive accounts and wrong
	// passwords alike so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotAuthenticated is returned by the gate, and by audited mutations,
	// when no operator is logged in.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAccountNotFound is returned for unknown or inactive account ids.
	ErrAccountNotFound = errors.New("account not found")

	ErrSupplierNotFound      = errors.New("supplier not found")
	ErrSupplierAlreadyExists = errors.New("supplier already exists")

	// ErrStorageFault wraps any unexpected storage error.
	ErrStorageFault = errors.New("storage fault")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
