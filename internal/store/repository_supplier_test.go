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

func TestSupplierRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	repo := NewSupplierRepository(newSQLiteDB(t), logger.Nop())

	volvo := models.Supplier{ID: "S1", Name: "Volvo Trucks", Address: "Gothenburg", Phone: "+46 31", Email: "sales@volvo.example"}
	man := models.Supplier{ID: "S2", Name: "MAN", Address: "Munich"}

	require.NoError(t, repo.CreateSupplier(ctx, volvo))
	require.NoError(t, repo.CreateSupplier(ctx, man))

	err := repo.CreateSupplier(ctx, volvo)
	assert.ErrorIs(t, err, ErrSupplierAlreadyExists)

	got, err := repo.GetSupplier(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, volvo, got)

	list, err := repo.ListSuppliers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Supplier{man, volvo}, list, "ordered by name")

	volvo.Phone = "+46 31 000"
	require.NoError(t, repo.UpdateSupplier(ctx, volvo))
	got, err = repo.GetSupplier(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, "+46 31 000", got.Phone)

	assert.ErrorIs(t, repo.UpdateSupplier(ctx, models.Supplier{ID: "S9", Name: "x"}), ErrSupplierNotFound)

	require.NoError(t, repo.DeleteSupplier(ctx, "S2"))
	assert.ErrorIs(t, repo.DeleteSupplier(ctx, "S2"), ErrSupplierNotFound)

	_, err = repo.GetSupplier(ctx, "S2")
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

func TestSupplierRepository_ListSuppliers_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSupplierRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT supplier_id, name, address, phone, email FROM suppliers")).
		WillReturnRows(sqlmock.NewRows(supplierColumns).
			AddRow("S1", "Volvo", "", "", "").
			RowError(0, errors.New("row broken")))

	_, err := repo.ListSuppliers(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)

	mock.ExpectQuery(regexp.QuoteMeta("FROM suppliers")).WillReturnError(errors.New("closed"))
	_, err = repo.ListSuppliers(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
