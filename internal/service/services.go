// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/crypto"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// Services is the application object graph. One SessionManager exists per
// process; the gate and the dispatcher share it.
type Services struct {
	CredentialService CredentialService
	AuditService      AuditService
	SessionManager    SessionManager
	BootstrapService  BootstrapService
	SupplierService   SupplierService
	Gate              AuthorizationGate
	Dispatcher        CommandDispatcher
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()
	hasher := crypto.NewPasswordHasher(cfg.App.PasswordIterations, cfg.App.PasswordHashKey)

	credentials := NewCredentialService(storages, hasher, ids, SystemClock, logger)
	audit := NewAuditService(storages, SystemClock, logger)
	session := NewSessionManager(credentials, audit, logger)
	gate := NewAuthorizationGate(session, logger)

	suppliers := NewSupplierValidationService().Wrap(NewSupplierService(storages, SystemClock, logger))

	return &Services{
		CredentialService: credentials,
		AuditService:      audit,
		SessionManager:    session,
		BootstrapService:  NewBootstrapService(credentials, ids, logger),
		SupplierService:   suppliers,
		Gate:              gate,
		Dispatcher:        NewCommandDispatcher(gate, logger),
		AppInfoService:    appInfo,
	}, nil
}
