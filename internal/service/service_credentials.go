// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/crypto"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/internal/validators"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// dummySalt feeds the derivation run for unknown usernames.
var dummySalt = make([]byte, crypto.SaltSize)

type credentialService struct {
	storages  *store.Storages
	hasher    crypto.PasswordHasher
	validator validators.Validator
	ids       utils.IDGenerator
	clock     Clock

	logger *logger.Logger
}

// NewCredentialService builds a [CredentialService] on the account and audit
// repositories of storages.
func NewCredentialService(storages *store.Storages, hasher crypto.PasswordHasher, ids utils.IDGenerator, clock Clock, logger *logger.Logger) CredentialService {
	if clock == nil {
		clock = SystemClock
	}

	return &credentialService{
		storages:  storages,
		hasher:    hasher,
		validator: validators.NewCredentialsValidator(),
		ids:       ids,
		clock:     clock,
		logger:    logger,
	}
}

func (c *credentialService) FindActiveByUsername(ctx context.Context, username string) (models.UserAccount, error) {
	account, err := c.storages.UserAccountRepository.FindByUsername(ctx, username)
	if err != nil {
		return models.UserAccount{}, mapStoreError(err)
	}
	if !account.IsActive {
		return models.UserAccount{}, ErrAccountNotFound
	}

	return account, nil
}

func (c *credentialService) CreateAccount(ctx context.Context, id, username, password string, role models.Role) (models.UserAccount, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, models.Credentials{Username: username, Password: password}); err != nil {
		return models.UserAccount{}, mapValidationError(err)
	}

	if id == "" {
		id = c.ids.Generate()
	}
	if role == "" {
		role = models.RoleStandard
	}

	salt, err := c.hasher.GenerateSalt()
	if err != nil {
		log.Err(err).Str("func", "credentialService.CreateAccount").Msg("failed to generate salt")
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrStorageFault, err)
	}

	account := models.UserAccount{
		ID:             id,
		Username:       username,
		PasswordDigest: encode(c.hasher.Derive(password, salt)),
		Salt:           encode(salt),
		Role:           role,
		CreatedAt:      c.clock().UTC().Truncate(timestampPrecision),
		IsActive:       true,
	}

	err = c.storages.WithTx(ctx, func(ctx context.Context, tx *store.Storages) error {
		exists, err := tx.UserAccountRepository.UsernameExists(ctx, username)
		if err != nil {
			return err
		}
		if exists {
			return store.ErrUsernameAlreadyExists
		}

		if account, err = tx.UserAccountRepository.CreateAccount(ctx, account); err != nil {
			return err
		}

		return c.auditAccountChange(ctx, tx, models.ActionInsert, account.ID, "account "+account.Username+" created")
	})
	if err != nil {
		log.Err(err).Str("func", "credentialService.CreateAccount").Str("username", username).Msg("failed to create account")
		return models.UserAccount{}, mapStoreError(err)
	}

	return account, nil
}

func (c *credentialService) VerifyCredentials(ctx context.Context, username, password string) (models.UserAccount, error) {
	if err := c.validator.Validate(ctx, models.Credentials{Username: username, Password: password}); err != nil {
		c.hasher.Derive(password, dummySalt)
		return models.UserAccount{}, ErrInvalidCredentials
	}

	account, err := c.storages.UserAccountRepository.FindByUsername(ctx, username)
	if errors.Is(err, store.ErrAccountNotFound) {
		c.hasher.Derive(password, dummySalt)
		return models.UserAccount{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.UserAccount{}, mapStoreError(err)
	}

	salt, digest, err := decodeSecrets(account)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialService.VerifyCredentials").
			Str("user_id", account.ID).
			Msg("stored secrets are not valid base64")
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrStorageFault, err)
	}

	// inactive accounts still pay for the derivation
	if !c.hasher.Verify(password, salt, digest) || !account.IsActive {
		return models.UserAccount{}, ErrInvalidCredentials
	}

	return account, nil
}

func (c *credentialService) Deactivate(ctx context.Context, id string) error {
	return c.setActive(ctx, id, false)
}

func (c *credentialService) Reactivate(ctx context.Context, id string) error {
	return c.setActive(ctx, id, true)
}

func (c *credentialService) setActive(ctx context.Context, id string, active bool) error {
	detail := "account deactivated"
	if active {
		detail = "account reactivated"
	}

	err := c.storages.WithTx(ctx, func(ctx context.Context, tx *store.Storages) error {
		if err := tx.UserAccountRepository.SetActive(ctx, id, active); err != nil {
			return err
		}
		return c.auditAccountChange(ctx, tx, models.ActionUpdate, id, detail)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialService.setActive").
			Str("user_id", id).
			Bool("active", active).
			Msg("failed to change account state")
		return mapStoreError(err)
	}

	return nil
}

func (c *credentialService) ChangePassword(ctx context.Context, id, newPassword string) error {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, models.Credentials{Password: newPassword}, validators.FieldPassword); err != nil {
		return mapValidationError(err)
	}

	salt, err := c.hasher.GenerateSalt()
	if err != nil {
		log.Err(err).Str("func", "credentialService.ChangePassword").Msg("failed to generate salt")
		return fmt.Errorf("%w: %w", ErrStorageFault, err)
	}
	digest := c.hasher.Derive(newPassword, salt)

	err = c.storages.WithTx(ctx, func(ctx context.Context, tx *store.Storages) error {
		if err := tx.UserAccountRepository.UpdatePassword(ctx, id, encode(digest), encode(salt)); err != nil {
			return err
		}
		return c.auditAccountChange(ctx, tx, models.ActionUpdate, id, "password changed")
	})
	if err != nil {
		log.Err(err).Str("func", "credentialService.ChangePassword").Str("user_id", id).Msg("failed to change password")
		return mapStoreError(err)
	}

	return nil
}

func (c *credentialService) CountAccounts(ctx context.Context) (int64, error) {
	count, err := c.storages.UserAccountRepository.CountAccounts(ctx)
	if err != nil {
		return 0, mapStoreError(err)
	}

	return count, nil
}

func (c *credentialService) UsesDefaultPassword(ctx context.Context, id string) (bool, error) {
	account, err := c.storages.UserAccountRepository.FindByID(ctx, id)
	if err != nil {
		return false, mapStoreError(err)
	}
	if account.Role != models.RoleAdministrator || account.Username != DefaultAdminUsername {
		return false, nil
	}

	salt, digest, err := decodeSecrets(account)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStorageFault, err)
	}

	return c.hasher.Verify(DefaultAdminPassword, salt, digest), nil
}

// auditAccountChange appends a record for an account mutation when the
// context carries an actor. Setup code runs without one and is not audited.
func (c *credentialService) auditAccountChange(ctx context.Context, tx *store.Storages, action models.Action, id, detail string) error {
	actor, ok := utils.ActorFromContext(ctx)
	if !ok {
		return nil
	}

	_, err := appendAudit(ctx, tx.AuditRepository, c.clock, models.AuditEntry{
		Actor:      actor,
		Action:     action,
		EntityType: models.EntityUserAccount,
		EntityID:   id,
		Detail:     detail,
	})
	return err
}

func encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func decodeSecrets(account models.UserAccount) (salt, digest []byte, err error) {
	if salt, err = base64.StdEncoding.DecodeString(account.Salt); err != nil {
		return nil, nil, err
	}
	if digest, err = base64.StdEncoding.DecodeString(account.PasswordDigest); err != nil {
		return nil, nil, err
	}

	return salt, digest, nil
}
