// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"iter"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/crypto"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/models"
)

var testNow = time.Date(2026, 5, 4, 10, 30, 0, 123456789, time.UTC)

func fixedClock() time.Time {
	return testNow
}

// newTestStorages opens a migrated SQLite file in a temp dir.
func newTestStorages(t *testing.T) *store.Storages {
	t.Helper()

	cfg := config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "stock.db"),
	}
	db, err := store.NewConnect(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	storages := store.NewStorages(db, logger.Nop())
	t.Cleanup(func() { _ = storages.Close() })

	return storages
}

type testServices struct {
	storages    *store.Storages
	credentials CredentialService
	audit       AuditService
	session     SessionManager
	gate        AuthorizationGate
	dispatcher  CommandDispatcher
	bootstrap   BootstrapService
	suppliers   SupplierService
}

// newTestServices wires real services over SQLite with the cheapest
// accepted hashing cost.
func newTestServices(t *testing.T) *testServices {
	t.Helper()

	storages := newTestStorages(t)
	ids := &sequenceIDs{}
	hasher := crypto.NewPasswordHasher(crypto.MinIterations, "")

	credentials := NewCredentialService(storages, hasher, ids, fixedClock, logger.Nop())
	audit := NewAuditService(storages, fixedClock, logger.Nop())
	session := NewSessionManager(credentials, audit, logger.Nop())
	gate := NewAuthorizationGate(session, logger.Nop())

	return &testServices{
		storages:    storages,
		credentials: credentials,
		audit:       audit,
		session:     session,
		gate:        gate,
		dispatcher:  NewCommandDispatcher(gate, logger.Nop()),
		bootstrap:   NewBootstrapService(credentials, ids, logger.Nop()),
		suppliers:   NewSupplierValidationService().Wrap(NewSupplierService(storages, fixedClock, logger.Nop())),
	}
}

// sequenceIDs hands out U1, U2, ...
type sequenceIDs struct {
	n int
}

func (s *sequenceIDs) Generate() string {
	s.n++
	return "U" + strconv.Itoa(s.n)
}

func collect(t *testing.T, seq iter.Seq2[models.AuditRecord, error]) []models.AuditRecord {
	t.Helper()

	var records []models.AuditRecord
	for record, err := range seq {
		require.NoError(t, err)
		records = append(records, record)
	}
	return records
}
