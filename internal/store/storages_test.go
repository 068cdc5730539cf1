// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

func TestStorages_WithTx_Mock(t *testing.T) {
	errFn := errors.New("fn failed")

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		fnErr   error
		wantErr error
	}{
		{
			name: "commit on success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
		},
		{
			name: "rollback on error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fnErr:   errFn,
			wantErr: errFn,
		},
		{
			name: "begin fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("locked"))
			},
			wantErr: ErrBeginningTransaction,
		},
		{
			name: "commit fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("disk full"))
			},
			wantErr: ErrCommitingTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)
			storages := NewStorages(db, logger.Nop())

			err := storages.WithTx(context.Background(), func(ctx context.Context, tx *Storages) error {
				assert.NotSame(t, storages, tx)
				return tt.fnErr
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStorages_WithTx_PanicRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()
	storages := NewStorages(db, logger.Nop())

	assert.PanicsWithValue(t, "boom", func() {
		_ = storages.WithTx(context.Background(), func(ctx context.Context, tx *Storages) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorages_WithTx_RepositoriesUseTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	storages := NewStorages(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO suppliers")).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO audit_log")).
		WillReturnRows(sqlmock.NewRows([]string{"log_id"}).AddRow(1))
	mock.ExpectCommit()

	err := storages.WithTx(context.Background(), func(ctx context.Context, tx *Storages) error {
		if err := tx.SupplierRepository.CreateSupplier(ctx, models.Supplier{ID: "S1", Name: "Volvo"}); err != nil {
			return err
		}
		// nested call joins the open transaction
		return tx.WithTx(ctx, func(ctx context.Context, inner *Storages) error {
			assert.Same(t, tx, inner)
			_, err := inner.AuditRepository.AppendRecord(ctx, models.AuditRecord{Action: models.ActionInsert})
			return err
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorages_WithTx_SQLiteRollback(t *testing.T) {
	ctx := context.Background()
	storages := NewStorages(newSQLiteDB(t), logger.Nop())
	errAudit := errors.New("audit append failed")

	err := storages.WithTx(ctx, func(ctx context.Context, tx *Storages) error {
		require.NoError(t, tx.SupplierRepository.CreateSupplier(ctx, models.Supplier{ID: "S1", Name: "Volvo"}))
		return errAudit
	})
	assert.ErrorIs(t, err, errAudit)

	_, err = storages.SupplierRepository.GetSupplier(ctx, "S1")
	assert.ErrorIs(t, err, ErrSupplierNotFound, "business row must roll back with the audit append")
}
