// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// Field names accepted by [CredentialsValidator].
const (
	// FieldUsername targets the login name.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password.
	FieldPassword = "password"
)

// MaxUsernameLength is the longest username accepted, in runes.
const MaxUsernameLength = 64

// CredentialsValidator implements [Validator] for [models.Credentials].
//
// Usernames are matched case-sensitively and exactly, so the validator
// rejects values that would be ambiguous on screen: surrounding whitespace
// and control characters. The password is only checked for presence.
type CredentialsValidator struct {
}

// NewCredentialsValidator constructs a new CredentialsValidator
// and returns it as the Validator interface.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate implements [Validator]. Both value and pointer forms of
// models.Credentials are accepted; anything else yields ErrUnsupportedType.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(c.Username); err != nil {
				return err
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if strings.TrimSpace(username) != username {
		return ErrUsernameWhitespace
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	if strings.ContainsFunc(username, unicode.IsControl) {
		return ErrUsernameControlChars
	}
	return nil
}
