// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// Credentials of the administrator created on an empty database. They are
// well known; the shell asks the operator to change the password.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin"
)

type bootstrapService struct {
	credentials CredentialService
	ids         utils.IDGenerator

	logger *logger.Logger
}

func NewBootstrapService(credentials CredentialService, ids utils.IDGenerator, logger *logger.Logger) BootstrapService {
	return &bootstrapService{
		credentials: credentials,
		ids:         ids,
		logger:      logger,
	}
}

func (b *bootstrapService) EnsureAdministrator(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	count, err := b.credentials.CountAccounts(ctx)
	if err != nil {
		log.Err(err).Str("func", "bootstrapService.EnsureAdministrator").Msg("failed to count accounts")
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	account, err := b.credentials.CreateAccount(ctx, b.ids.Generate(), DefaultAdminUsername, DefaultAdminPassword, models.RoleAdministrator)
	if errors.Is(err, ErrDuplicateUsername) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "bootstrapService.EnsureAdministrator").Msg("failed to create administrator")
		return false, err
	}

	log.Warn().
		Str("func", "bootstrapService.EnsureAdministrator").
		Str("user_id", account.ID).
		Msg("default administrator created with the well-known password")

	return true, nil
}
