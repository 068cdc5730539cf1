// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/internal/validators"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// SupplierServiceWrapper defines middleware composition for SupplierService.
// Implementations wrap an existing SupplierService to add behavior such as
// validating.
type SupplierServiceWrapper interface {
	Wrap(SupplierService) SupplierService
}

type SupplierValidationService struct {
	inner     SupplierService
	validator validators.Validator
}

func NewSupplierValidationService() SupplierServiceWrapper {
	return &SupplierValidationService{
		validator: validators.NewSupplierValidator(),
	}
}

func (v *SupplierValidationService) AddSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	if err := v.validator.Validate(ctx, supplier); err != nil {
		return models.Supplier{}, mapValidationError(err)
	}

	return v.inner.AddSupplier(ctx, supplier)
}

func (v *SupplierValidationService) UpdateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	if err := v.validator.Validate(ctx, supplier); err != nil {
		return models.Supplier{}, mapValidationError(err)
	}

	return v.inner.UpdateSupplier(ctx, supplier)
}

func (v *SupplierValidationService) DeleteSupplier(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, models.Supplier{ID: id}, validators.FieldSupplierID); err != nil {
		return mapValidationError(err)
	}

	return v.inner.DeleteSupplier(ctx, id)
}

func (v *SupplierValidationService) GetSupplier(ctx context.Context, id string) (models.Supplier, error) {
	if err := v.validator.Validate(ctx, models.Supplier{ID: id}, validators.FieldSupplierID); err != nil {
		return models.Supplier{}, mapValidationError(err)
	}

	return v.inner.GetSupplier(ctx, id)
}

func (v *SupplierValidationService) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return v.inner.ListSuppliers(ctx)
}

func (v *SupplierValidationService) Wrap(wrapper SupplierService) SupplierService {
	v.inner = wrapper
	return v
}
