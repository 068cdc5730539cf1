// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

func collect(t *testing.T, repo AuditRepository, filter models.AuditFilter) []models.AuditRecord {
	t.Helper()

	var out []models.AuditRecord
	for record, err := range repo.QueryRecords(context.Background(), filter) {
		require.NoError(t, err)
		out = append(out, record)
	}
	return out
}

func logIDs(records []models.AuditRecord) []int64 {
	ids := make([]int64, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.LogID)
	}
	return ids
}

func TestAuditRepository_AppendRecord_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepository(db, logger.Nop())
	now := time.Now().UTC()

	record := models.AuditRecord{
		UserID:     "u-1",
		Username:   "alice",
		Action:     models.ActionLogin,
		EntityType: models.EntitySession,
		Timestamp:  now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO audit_log")).
		WithArgs("u-1", "alice", "LOGIN", "session", "", now, "").
		WillReturnRows(sqlmock.NewRows([]string{"log_id"}).AddRow(7))

	saved, err := repo.AppendRecord(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.LogID)
	assert.Equal(t, record.Username, saved.Username)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO audit_log")).
		WillReturnError(errors.New("database is locked"))

	_, err = repo.AppendRecord(context.Background(), record)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_QueryRecords_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM audit_log")).WillReturnError(errors.New("no such table"))

	var errs []error
	for _, err := range repo.QueryRecords(context.Background(), models.AuditFilter{}) {
		errs = append(errs, err)
	}

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrExecutingQuery)
}

func TestAuditRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	repo := NewAuditRepository(db, logger.Nop())

	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	entries := []models.AuditRecord{
		{UserID: "u-1", Username: "alice", Action: models.ActionLogin, EntityType: models.EntitySession, Timestamp: base},
		{UserID: "u-1", Username: "alice", Action: models.ActionInsert, EntityType: models.EntitySupplier, EntityID: "S1", Timestamp: base.Add(time.Minute), Detail: "Volvo"},
		{UserID: "u-2", Username: "bob", Action: models.ActionLogin, EntityType: models.EntitySession, Timestamp: base.Add(2 * time.Minute)},
		{UserID: "u-1", Username: "alice", Action: models.ActionLogout, EntityType: models.EntitySession, Timestamp: base.Add(3 * time.Minute)},
	}

	var prev int64
	for _, e := range entries {
		saved, err := repo.AppendRecord(ctx, e)
		require.NoError(t, err)
		assert.Greater(t, saved.LogID, prev, "log ids follow write order")
		prev = saved.LogID
	}

	t.Run("default order is newest first", func(t *testing.T) {
		all := collect(t, repo, models.AuditFilter{})
		require.Len(t, all, 4)
		assert.Equal(t, []int64{4, 3, 2, 1}, logIDs(all))
		assert.Equal(t, models.ActionLogout, all[0].Action)
		assert.True(t, base.Add(3*time.Minute).Equal(all[0].Timestamp))
	})

	t.Run("oldest first", func(t *testing.T) {
		all := collect(t, repo, models.AuditFilter{Order: models.OldestFirst})
		assert.Equal(t, []int64{1, 2, 3, 4}, logIDs(all))
	})

	t.Run("filters", func(t *testing.T) {
		assert.Len(t, collect(t, repo, models.AuditFilter{UserID: "u-1"}), 3)
		assert.Len(t, collect(t, repo, models.AuditFilter{Username: "bob"}), 1)
		assert.Len(t, collect(t, repo, models.AuditFilter{Action: models.ActionLogin}), 2)
		assert.Len(t, collect(t, repo, models.AuditFilter{EntityType: models.EntitySupplier, EntityID: "S1"}), 1)

		window := collect(t, repo, models.AuditFilter{
			Since: base.Add(time.Minute),
			Until: base.Add(2 * time.Minute),
		})
		assert.Equal(t, []int64{3, 2}, logIDs(window))

		assert.Len(t, collect(t, repo, models.AuditFilter{Limit: 2}), 2)
	})

	t.Run("sequence is restartable", func(t *testing.T) {
		seq := repo.QueryRecords(ctx, models.AuditFilter{})

		first := 0
		for range seq {
			first++
		}
		second := 0
		for range seq {
			second++
		}
		assert.Equal(t, 4, first)
		assert.Equal(t, first, second)
	})

	t.Run("early break releases rows", func(t *testing.T) {
		for record, err := range repo.QueryRecords(ctx, models.AuditFilter{}) {
			require.NoError(t, err)
			assert.Equal(t, int64(4), record.LogID)
			break
		}

		// a write after an abandoned iteration must not be blocked
		_, err := repo.AppendRecord(ctx, entries[0])
		require.NoError(t, err)
	})

	t.Run("records cannot be modified", func(t *testing.T) {
		_, err := db.ExecContext(ctx, "UPDATE audit_log SET detail = 'tampered'")
		require.Error(t, err)
		assert.Equal(t, ConstraintViolation, db.classify(err))

		_, err = db.ExecContext(ctx, "DELETE FROM audit_log")
		require.Error(t, err)
	})
}
