// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername        = errors.New("username is required")
	ErrUsernameWhitespace   = errors.New("username must not start or end with whitespace")
	ErrUsernameTooLong      = errors.New("username is too long")
	ErrUsernameControlChars = errors.New("username must not contain control characters")
	ErrEmptyPassword        = errors.New("password is required")
	ErrEmptySupplierID      = errors.New("supplier id is required")
	ErrSupplierIDWhitespace = errors.New("supplier id must not contain whitespace")
	ErrEmptySupplierName    = errors.New("supplier name is required")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrFieldTooLong         = errors.New("field value is too long")
)
