// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
)

// Storages groups the repositories that share one connection. The value
// handed to a [Storages.WithTx] callback binds every repository to the same
// transaction.
type Storages struct {
	UserAccountRepository UserAccountRepository
	AuditRepository       AuditRepository
	SupplierRepository    SupplierRepository

	db     *DB
	inTx   bool
	logger *logger.Logger
}

// NewStorages builds repositories on top of the connection pool.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return newStorages(db, db.DB, false, log)
}

func newStorages(db *DB, conn DBTX, inTx bool, log *logger.Logger) *Storages {
	return &Storages{
		UserAccountRepository: newUserAccountRepository(db, conn, log),
		AuditRepository:       newAuditRepository(db, conn, log),
		SupplierRepository:    newSupplierRepository(db, conn, log),
		db:                    db,
		inTx:                  inTx,
		logger:                log,
	}
}

// WithTx begins a transaction, runs fn with transaction-bound repositories,
// and then commits on success or rolls back on error/panic. Panics are
// rethrown. Called on a value that is already transaction-bound, fn joins
// the open transaction.
//
// Typical use:
//
//	err := storages.WithTx(ctx, func(ctx context.Context, tx *store.Storages) error {
//	    if err := tx.SupplierRepository.CreateSupplier(ctx, s); err != nil {
//	        return err
//	    }
//	    _, err := tx.AuditRepository.AppendRecord(ctx, record)
//	    return err
//	})
func (s *Storages) WithTx(ctx context.Context, fn func(ctx context.Context, tx *Storages) error) (err error) {
	if s.inTx {
		return fn(ctx, s)
	}

	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "Storages.WithTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Err(rbErr).Str("func", "Storages.WithTx").Msg("failed to roll back transaction")
			}
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			log.Err(commitErr).Str("func", "Storages.WithTx").Msg("failed to commit transaction")
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
	}()

	err = fn(ctx, newStorages(s.db, tx, true, s.logger))
	return err
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
