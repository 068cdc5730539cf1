// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/crypto"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

func TestNewServices(t *testing.T) {
	storages := newTestStorages(t)
	cfg := config.StructuredConfig{App: config.App{Version: "1.0.0", PasswordIterations: crypto.MinIterations}}

	services, err := NewServices(storages, cfg, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	require.NoError(t, err)

	created, err := services.BootstrapService.EnsureAdministrator(context.Background())
	require.NoError(t, err)
	assert.True(t, created)

	result := services.Dispatcher.Dispatch(context.Background(), Command{
		Name:  "listSuppliers",
		Gated: true,
		Run:   func(ctx context.Context) error { return nil },
	})
	assert.ErrorIs(t, result.Err, ErrNotAuthenticated)

	_, err = services.SessionManager.Login(context.Background(), DefaultAdminUsername, DefaultAdminPassword)
	require.NoError(t, err)
	result = services.Dispatcher.Dispatch(context.Background(), Command{
		Name:  "listSuppliers",
		Gated: true,
		Run: func(ctx context.Context) error {
			_, err := services.SupplierService.ListSuppliers(ctx)
			return err
		},
	})
	assert.NoError(t, result.Err)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
}

func TestNewServices_RequiresVersion(t *testing.T) {
	services, err := NewServices(newTestStorages(t), config.StructuredConfig{}, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, services)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
