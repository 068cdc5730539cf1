// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

type supplierService struct {
	storages *store.Storages
	clock    Clock

	logger *logger.Logger
}

func NewSupplierService(storages *store.Storages, clock Clock, logger *logger.Logger) SupplierService {
	if clock == nil {
		clock = SystemClock
	}

	return &supplierService{
		storages: storages,
		clock:    clock,
		logger:   logger,
	}
}

func (s *supplierService) AddSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	err := s.mutate(ctx, models.ActionInsert, supplier.ID, supplier.Name, func(ctx context.Context, tx *store.Storages) error {
		return tx.SupplierRepository.CreateSupplier(ctx, supplier)
	})
	if err != nil {
		return models.Supplier{}, err
	}

	return supplier, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	err := s.mutate(ctx, models.ActionUpdate, supplier.ID, supplier.Name, func(ctx context.Context, tx *store.Storages) error {
		return tx.SupplierRepository.UpdateSupplier(ctx, supplier)
	})
	if err != nil {
		return models.Supplier{}, err
	}

	return supplier, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id string) error {
	return s.mutate(ctx, models.ActionDelete, id, "", func(ctx context.Context, tx *store.Storages) error {
		return tx.SupplierRepository.DeleteSupplier(ctx, id)
	})
}

func (s *supplierService) GetSupplier(ctx context.Context, id string) (models.Supplier, error) {
	supplier, err := s.storages.SupplierRepository.GetSupplier(ctx, id)
	if err != nil {
		return models.Supplier{}, mapStoreError(err)
	}

	return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier

	err := s.mutate(ctx, models.ActionAccess, "", "supplier list viewed", func(ctx context.Context, tx *store.Storages) error {
		var err error
		suppliers, err = tx.SupplierRepository.ListSuppliers(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return suppliers, nil
}

// mutate runs change and the matching audit append in one transaction.
func (s *supplierService) mutate(ctx context.Context, action models.Action, id, detail string, change func(ctx context.Context, tx *store.Storages) error) error {
	actor, ok := utils.ActorFromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	err := s.storages.WithTx(ctx, func(ctx context.Context, tx *store.Storages) error {
		if err := change(ctx, tx); err != nil {
			return err
		}

		_, err := appendAudit(ctx, tx.AuditRepository, s.clock, models.AuditEntry{
			Actor:      actor,
			Action:     action,
			EntityType: models.EntitySupplier,
			EntityID:   id,
			Detail:     detail,
		})
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "supplierService.mutate").
			Str("action", string(action)).
			Str("supplier_id", id).
			Msg("supplier operation failed")
		return mapStoreError(err)
	}

	return nil
}
