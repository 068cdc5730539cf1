// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// supplierRepository is the SQL implementation of [SupplierRepository].
type supplierRepository struct {
	db     *DB
	conn   DBTX
	logger *logger.Logger
}

func NewSupplierRepository(db *DB, logger *logger.Logger) SupplierRepository {
	return newSupplierRepository(db, db.DB, logger)
}

func newSupplierRepository(db *DB, conn DBTX, logger *logger.Logger) *supplierRepository {
	return &supplierRepository{
		db:     db,
		conn:   conn,
		logger: logger,
	}
}

func (s *supplierRepository) CreateSupplier(ctx context.Context, supplier models.Supplier) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSupplierQuery(s.db.builder, supplier)
	if err != nil {
		log.Err(err).Str("func", "supplierRepository.CreateSupplier").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.conn.ExecContext(ctx, query, args...); err != nil {
		class := s.db.classify(err)
		log.Err(err).
			Str("func", "supplierRepository.CreateSupplier").
			Str("supplier_id", supplier.ID).
			Stringer("class", class).
			Msg("failed to insert supplier")
		if class == UniqueViolation {
			return fmt.Errorf("%w: %w", ErrSupplierAlreadyExists, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *supplierRepository) UpdateSupplier(ctx context.Context, supplier models.Supplier) error {
	query, args, err := buildUpdateSupplierQuery(s.db.builder, supplier)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.execAffectingOne(ctx, "supplierRepository.UpdateSupplier", supplier.ID, query, args)
}

func (s *supplierRepository) DeleteSupplier(ctx context.Context, id string) error {
	query, args, err := buildDeleteSupplierQuery(s.db.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.execAffectingOne(ctx, "supplierRepository.DeleteSupplier", id, query, args)
}

func (s *supplierRepository) execAffectingOne(ctx context.Context, funcName, id, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("supplier_id", id).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Str("supplier_id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrSupplierNotFound
	}

	return nil
}

func (s *supplierRepository) GetSupplier(ctx context.Context, id string) (models.Supplier, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSupplierQuery(s.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "supplierRepository.GetSupplier").Msg("failed to build query")
		return models.Supplier{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var supplier models.Supplier
	err = s.conn.QueryRowContext(ctx, query, args...).Scan(
		&supplier.ID,
		&supplier.Name,
		&supplier.Address,
		&supplier.Phone,
		&supplier.Email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Supplier{}, ErrSupplierNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "supplierRepository.GetSupplier").Str("supplier_id", id).Msg("failed to query supplier")
		return models.Supplier{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return supplier, nil
}

func (s *supplierRepository) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSuppliersQuery(s.db.builder)
	if err != nil {
		log.Err(err).Str("func", "supplierRepository.ListSuppliers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "supplierRepository.ListSuppliers").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	suppliers := make([]models.Supplier, 0, 16)
	for rows.Next() {
		var supplier models.Supplier
		if scanErr := rows.Scan(
			&supplier.ID,
			&supplier.Name,
			&supplier.Address,
			&supplier.Phone,
			&supplier.Email,
		); scanErr != nil {
			log.Err(scanErr).Str("func", "supplierRepository.ListSuppliers").Msg("failed to scan supplier row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		suppliers = append(suppliers, supplier)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "supplierRepository.ListSuppliers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return suppliers, nil
}
