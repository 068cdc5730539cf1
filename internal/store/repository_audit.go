// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"iter"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// auditRepository is the SQL implementation of [AuditRepository].
type auditRepository struct {
	db     *DB
	conn   DBTX
	logger *logger.Logger
}

// NewAuditRepository constructs an [AuditRepository] backed by the provided
// database connection and logger.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	return newAuditRepository(db, db.DB, logger)
}

func newAuditRepository(db *DB, conn DBTX, logger *logger.Logger) *auditRepository {
	return &auditRepository{
		db:     db,
		conn:   conn,
		logger: logger,
	}
}

// AppendRecord inserts record and scans back the storage-assigned log_id.
func (a *auditRepository) AppendRecord(ctx context.Context, record models.AuditRecord) (models.AuditRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAuditRecordQuery(a.db.builder, record)
	if err != nil {
		log.Err(err).Str("func", "auditRepository.AppendRecord").Msg("failed to build query")
		return models.AuditRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = a.conn.QueryRowContext(ctx, query, args...).Scan(&record.LogID); err != nil {
		log.Err(err).
			Str("func", "auditRepository.AppendRecord").
			Str("action", string(record.Action)).
			Str("user_id", record.UserID).
			Stringer("class", a.db.classify(err)).
			Msg("failed to append audit record")
		return models.AuditRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

// QueryRecords implements [AuditRepository]. The query is built eagerly so a
// build error is reported on the first iteration; rows are streamed and
// closed when the consumer stops ranging.
func (a *auditRepository) QueryRecords(ctx context.Context, filter models.AuditFilter) iter.Seq2[models.AuditRecord, error] {
	query, args, buildErr := buildSelectAuditRecordsQuery(a.db.builder, filter)

	return func(yield func(models.AuditRecord, error) bool) {
		log := logger.FromContext(ctx)

		if buildErr != nil {
			log.Err(buildErr).Str("func", "auditRepository.QueryRecords").Msg("failed to build query")
			yield(models.AuditRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr))
			return
		}

		rows, err := a.conn.QueryContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "auditRepository.QueryRecords").Msg("failed to execute audit query")
			yield(models.AuditRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var record models.AuditRecord
			scanErr := rows.Scan(
				&record.LogID,
				&record.UserID,
				&record.Username,
				&record.Action,
				&record.EntityType,
				&record.EntityID,
				&record.Timestamp,
				&record.Detail,
			)
			if scanErr != nil {
				log.Err(scanErr).Str("func", "auditRepository.QueryRecords").Msg("failed to scan audit row")
				yield(models.AuditRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr))
				return
			}

			if !yield(record, nil) {
				return
			}
		}

		if err = rows.Err(); err != nil {
			log.Err(err).Str("func", "auditRepository.QueryRecords").Msg("error occurred during rows iteration")
			yield(models.AuditRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err))
		}
	}
}
