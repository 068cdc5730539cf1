//go:build integration

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

func newPostgresDB(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("stock"),
		postgres.WithUsername("stock"),
		postgres.WithPassword("stock"),
		testcontainers.WithWaitStrategyAndDeadline(2*time.Minute,
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := NewConnectPostgres(ctx, config.DB{Driver: config.DriverPostgres, DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func TestPostgres_AccountsAuditAndTransactions(t *testing.T) {
	ctx := context.Background()
	storages := NewStorages(newPostgresDB(t), logger.Nop())

	alice := testAccount("u-1", "alice")
	_, err := storages.UserAccountRepository.CreateAccount(ctx, alice)
	require.NoError(t, err)

	_, err = storages.UserAccountRepository.CreateAccount(ctx, testAccount("u-2", "alice"))
	assert.ErrorIs(t, err, ErrAccountAlreadyExists)

	err = storages.WithTx(ctx, func(ctx context.Context, tx *Storages) error {
		if err := tx.SupplierRepository.CreateSupplier(ctx, models.Supplier{ID: "S1", Name: "Volvo"}); err != nil {
			return err
		}
		_, err := tx.AuditRepository.AppendRecord(ctx, models.AuditRecord{
			UserID:     alice.ID,
			Username:   alice.Username,
			Action:     models.ActionInsert,
			EntityType: models.EntitySupplier,
			EntityID:   "S1",
			Timestamp:  time.Now().UTC(),
		})
		return err
	})
	require.NoError(t, err)

	var records []models.AuditRecord
	for record, err := range storages.AuditRepository.QueryRecords(ctx, models.AuditFilter{}) {
		require.NoError(t, err)
		records = append(records, record)
	}
	require.Len(t, records, 1)
	assert.Equal(t, "S1", records[0].EntityID)

	_, err = storages.db.ExecContext(ctx, "DELETE FROM audit_log")
	require.Error(t, err)
	assert.Equal(t, ConstraintViolation, storages.db.classify(err))
}
