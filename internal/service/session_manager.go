// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// sessionManager is the process-wide login state machine:
//
//	ANONYMOUS --Login ok--> AUTHENTICATED(identity) --Logout--> ANONYMOUS
//
// A failed login leaves the state as it was. Logging in while authenticated
// logs the previous identity out first.
type sessionManager struct {
	mu       sync.RWMutex
	identity models.Identity
	active   bool

	credentials CredentialService
	audit       AuditService

	logger *logger.Logger
}

func NewSessionManager(credentials CredentialService, audit AuditService, logger *logger.Logger) SessionManager {
	return &sessionManager{
		credentials: credentials,
		audit:       audit,
		logger:      logger,
	}
}

func (s *sessionManager) Login(ctx context.Context, username, password string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	account, err := s.credentials.VerifyCredentials(ctx, username, password)
	if err != nil {
		log.Info().Err(err).Str("func", "sessionManager.Login").Str("username", username).Msg("login rejected")
		return models.Identity{}, err
	}

	identity := account.Identity()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		s.recordTransition(ctx, s.identity, models.ActionLogout, "session replaced by "+identity.Username)
	}

	s.identity = identity
	s.active = true
	s.recordTransition(ctx, identity, models.ActionLogin, "")

	log.Info().Str("func", "sessionManager.Login").Str("user_id", identity.UserID).Msg("user logged in")

	return identity, nil
}

func (s *sessionManager) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil
	}

	s.recordTransition(ctx, s.identity, models.ActionLogout, "")

	logger.FromContext(ctx).Info().
		Str("func", "sessionManager.Logout").
		Str("user_id", s.identity.UserID).
		Msg("user logged out")

	s.identity = models.Identity{}
	s.active = false

	return nil
}

func (s *sessionManager) CurrentUser() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.identity, s.active
}

// recordTransition writes a LOGIN or LOGOUT record. A failed write does not
// undo the transition.
func (s *sessionManager) recordTransition(ctx context.Context, identity models.Identity, action models.Action, detail string) {
	_, err := s.audit.Record(ctx, models.AuditEntry{
		Actor:      identity,
		Action:     action,
		EntityType: models.EntitySession,
		EntityID:   identity.UserID,
		Detail:     detail,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionManager.recordTransition").
			Str("action", string(action)).
			Str("user_id", identity.UserID).
			Msg("failed to record session transition")
	}
}
