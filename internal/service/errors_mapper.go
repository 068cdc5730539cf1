// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/internal/validators"
)

// mapStoreError translates a repository error into a service business error.
// The original error stays in the chain so errors.Is works on both layers.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrNotAuthenticated),
		errors.Is(err, ErrInvalidDataProvided),
		errors.Is(err, ErrStorageFault):
		return err
	case errors.Is(err, store.ErrUsernameAlreadyExists),
		errors.Is(err, store.ErrAccountAlreadyExists):
		return fmt.Errorf("%w: %w", ErrDuplicateUsername, err)
	case errors.Is(err, store.ErrAccountNotFound):
		return fmt.Errorf("%w: %w", ErrAccountNotFound, err)
	case errors.Is(err, store.ErrSupplierNotFound):
		return fmt.Errorf("%w: %w", ErrSupplierNotFound, err)
	case errors.Is(err, store.ErrSupplierAlreadyExists):
		return fmt.Errorf("%w: %w", ErrSupplierAlreadyExists, err)
	default:
		return fmt.Errorf("%w: %w", ErrStorageFault, err)
	}
}

// mapValidationError marks a validator error as invalid input.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, validators.ErrUnsupportedType) || errors.Is(err, validators.ErrUnknownField) {
		return fmt.Errorf("validation misconfigured: %w", err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
