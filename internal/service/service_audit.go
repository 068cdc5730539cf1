// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"iter"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// timestampPrecision is the finest resolution both storage dialects keep.
const timestampPrecision = time.Microsecond

type auditService struct {
	repository store.AuditRepository
	clock      Clock

	logger *logger.Logger
}

func NewAuditService(storages *store.Storages, clock Clock, logger *logger.Logger) AuditService {
	if clock == nil {
		clock = SystemClock
	}

	return &auditService{
		repository: storages.AuditRepository,
		clock:      clock,
		logger:     logger,
	}
}

func (a *auditService) Record(ctx context.Context, entry models.AuditEntry) (models.AuditRecord, error) {
	record, err := appendAudit(ctx, a.repository, a.clock, entry)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "auditService.Record").
			Str("action", string(entry.Action)).
			Msg("failed to record audit entry")
		return models.AuditRecord{}, mapStoreError(err)
	}

	return record, nil
}

func (a *auditService) Query(ctx context.Context, filter models.AuditFilter) iter.Seq2[models.AuditRecord, error] {
	return func(yield func(models.AuditRecord, error) bool) {
		for record, err := range a.repository.QueryRecords(ctx, filter) {
			if err != nil {
				yield(models.AuditRecord{}, mapStoreError(err))
				return
			}
			if !yield(record, nil) {
				return
			}
		}
	}
}

func (a *auditService) History(ctx context.Context) iter.Seq2[models.AuditRecord, error] {
	return a.Query(ctx, models.AuditFilter{})
}

// appendAudit stamps entry and writes it through repository, which may be
// bound to an open transaction.
func appendAudit(ctx context.Context, repository store.AuditRepository, clock Clock, entry models.AuditEntry) (models.AuditRecord, error) {
	if entry.Actor.IsZero() {
		return models.AuditRecord{}, ErrNotAuthenticated
	}
	if entry.Action == "" || entry.EntityType == "" {
		return models.AuditRecord{}, ErrInvalidDataProvided
	}

	return repository.AppendRecord(ctx, models.AuditRecord{
		UserID:     entry.Actor.UserID,
		Username:   entry.Actor.Username,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Timestamp:  clock().UTC().Truncate(timestampPrecision),
		Detail:     entry.Detail,
	})
}
