// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/mock"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

func TestCredentialService_CreateAndVerify(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	account, err := s.credentials.CreateAccount(ctx, "", "alice", "s3cret", "")
	require.NoError(t, err)
	assert.Equal(t, "U1", account.ID)
	assert.Equal(t, models.RoleStandard, account.Role)
	assert.True(t, account.IsActive)
	assert.NotEmpty(t, account.Salt)
	assert.NotEmpty(t, account.PasswordDigest)

	verified, err := s.credentials.VerifyCredentials(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, account.ID, verified.ID)

	_, err = s.credentials.VerifyCredentials(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.credentials.VerifyCredentials(ctx, "Alice", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "usernames match case-sensitively")
}

func TestCredentialService_SamePasswordDistinctSalts(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	a, err := s.credentials.CreateAccount(ctx, "", "alice", "same", "")
	require.NoError(t, err)
	b, err := s.credentials.CreateAccount(ctx, "", "bob", "same", "")
	require.NoError(t, err)

	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.PasswordDigest, b.PasswordDigest)
}

func TestCredentialService_CreateAccount_Errors(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	_, err := s.credentials.CreateAccount(ctx, "", "alice", "s3cret", "")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "duplicate", username: "alice", password: "other", wantErr: ErrDuplicateUsername},
		{name: "empty username", username: "", password: "x", wantErr: ErrInvalidDataProvided},
		{name: "padded username", username: " bob ", password: "x", wantErr: ErrInvalidDataProvided},
		{name: "empty password", username: "bob", password: "", wantErr: ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.credentials.CreateAccount(ctx, "", tt.username, tt.password, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	count, err := s.credentials.CountAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCredentialService_DeactivatedAccount(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	account, err := s.credentials.CreateAccount(ctx, "", "alice", "s3cret", "")
	require.NoError(t, err)

	require.NoError(t, s.credentials.Deactivate(ctx, account.ID))

	_, err = s.credentials.VerifyCredentials(ctx, "alice", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.credentials.FindActiveByUsername(ctx, "alice")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	_, err = s.credentials.CreateAccount(ctx, "", "alice", "again", "")
	assert.ErrorIs(t, err, ErrDuplicateUsername, "inactive accounts keep their username")

	require.NoError(t, s.credentials.Reactivate(ctx, account.ID))
	_, err = s.credentials.VerifyCredentials(ctx, "alice", "s3cret")
	assert.NoError(t, err)

	assert.ErrorIs(t, s.credentials.Deactivate(ctx, "missing"), ErrAccountNotFound)
}

func TestCredentialService_ChangePassword(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	account, err := s.credentials.CreateAccount(ctx, "", "alice", "old", "")
	require.NoError(t, err)

	require.NoError(t, s.credentials.ChangePassword(ctx, account.ID, "new"))

	_, err = s.credentials.VerifyCredentials(ctx, "alice", "old")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	updated, err := s.credentials.VerifyCredentials(ctx, "alice", "new")
	require.NoError(t, err)
	assert.NotEqual(t, account.Salt, updated.Salt)

	assert.ErrorIs(t, s.credentials.ChangePassword(ctx, account.ID, ""), ErrInvalidDataProvided)
	assert.ErrorIs(t, s.credentials.ChangePassword(ctx, "missing", "x"), ErrAccountNotFound)
}

func TestCredentialService_MutationsWithActorAreAudited(t *testing.T) {
	s := newTestServices(t)
	admin := models.Identity{UserID: "U0", Username: "admin", Role: models.RoleAdministrator}
	ctx := utils.WithActor(context.Background(), admin)

	account, err := s.credentials.CreateAccount(ctx, "", "alice", "s3cret", "")
	require.NoError(t, err)
	require.NoError(t, s.credentials.Deactivate(ctx, account.ID))

	records := collect(t, s.audit.Query(ctx, models.AuditFilter{EntityType: models.EntityUserAccount, Order: models.OldestFirst}))
	require.Len(t, records, 2)
	assert.Equal(t, models.ActionInsert, records[0].Action)
	assert.Equal(t, models.ActionUpdate, records[1].Action)
	assert.Equal(t, "admin", records[1].Username)
	assert.Equal(t, account.ID, records[1].EntityID)
}

func TestCredentialService_VerifyUnknownUser_RunsDummyDerivation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repository := mock.NewMockUserAccountRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	svc := NewCredentialService(&store.Storages{UserAccountRepository: repository}, hasher, staticID("U1"), fixedClock, logger.Nop())
	ctx := context.Background()

	gomock.InOrder(
		repository.EXPECT().FindByUsername(ctx, "ghost").Return(models.UserAccount{}, store.ErrAccountNotFound),
		hasher.EXPECT().Derive("pw", dummySalt).Return([]byte("ignored")).Times(1),
	)

	_, err := svc.VerifyCredentials(ctx, "ghost", "pw")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCredentialService_VerifyStorageFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	repository := mock.NewMockUserAccountRepository(ctrl)
	svc := NewCredentialService(&store.Storages{UserAccountRepository: repository}, mock.NewMockPasswordHasher(ctrl), staticID("U1"), fixedClock, logger.Nop())
	ctx := context.Background()

	repository.EXPECT().FindByUsername(ctx, "alice").Return(models.UserAccount{}, store.ErrScanningRow)

	_, err := svc.VerifyCredentials(ctx, "alice", "pw")

	assert.ErrorIs(t, err, ErrStorageFault)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestCredentialService_UsesDefaultPassword(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	admin, err := s.credentials.CreateAccount(ctx, "", DefaultAdminUsername, DefaultAdminPassword, models.RoleAdministrator)
	require.NoError(t, err)
	operator, err := s.credentials.CreateAccount(ctx, "", "alice", DefaultAdminPassword, "")
	require.NoError(t, err)

	uses, err := s.credentials.UsesDefaultPassword(ctx, operator.ID)
	require.NoError(t, err)
	assert.False(t, uses)

	require.NoError(t, s.credentials.ChangePassword(ctx, admin.ID, "rotated"))
	uses, err = s.credentials.UsesDefaultPassword(ctx, admin.ID)
	require.NoError(t, err)
	assert.False(t, uses)
}
