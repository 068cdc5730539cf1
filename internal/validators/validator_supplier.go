// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// Field names accepted by [SupplierValidator].
const (
	FieldSupplierID      = "supplier_id"
	FieldSupplierName    = "name"
	FieldSupplierAddress = "address"
	FieldSupplierPhone   = "phone"
	FieldSupplierEmail   = "email"
)

// MaxSupplierFieldLength caps every free-text supplier column, in runes.
const MaxSupplierFieldLength = 255

// SupplierValidator implements [Validator] for [models.Supplier].
// With no field list it validates every field; FieldSupplierID alone is
// enough for delete requests.
type SupplierValidator struct {
}

func NewSupplierValidator() Validator {
	return &SupplierValidator{}
}

// Validate implements [Validator].
func (v *SupplierValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Supplier:
		return v.validateSupplier(value, fields...)
	case *models.Supplier:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSupplier(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SupplierValidator) validateSupplier(s models.Supplier, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSupplierID, FieldSupplierName, FieldSupplierAddress, FieldSupplierPhone, FieldSupplierEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldSupplierID:
			if s.ID == "" {
				return ErrEmptySupplierID
			}
			if strings.ContainsFunc(s.ID, unicode.IsSpace) {
				return ErrSupplierIDWhitespace
			}
			if err := checkLength(s.ID); err != nil {
				return err
			}
		case FieldSupplierName:
			if strings.TrimSpace(s.Name) == "" {
				return ErrEmptySupplierName
			}
			if err := checkLength(s.Name); err != nil {
				return err
			}
		case FieldSupplierAddress:
			if err := checkLength(s.Address); err != nil {
				return err
			}
		case FieldSupplierPhone:
			if err := checkLength(s.Phone); err != nil {
				return err
			}
		case FieldSupplierEmail:
			if s.Email == "" {
				continue
			}
			if err := checkLength(s.Email); err != nil {
				return err
			}
			if addr, err := mail.ParseAddress(s.Email); err != nil || addr.Address != s.Email {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkLength(value string) error {
	if utf8.RuneCountInString(value) > MaxSupplierFieldLength {
		return ErrFieldTooLong
	}
	return nil
}
