// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/mock"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

func newTestGate(t *testing.T, identity models.Identity, authenticated bool) AuthorizationGate {
	t.Helper()

	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionManager(ctrl)
	session.EXPECT().CurrentUser().Return(identity, authenticated).AnyTimes()

	return NewAuthorizationGate(session, logger.Nop())
}

func TestAuthorizationGate_Run_Anonymous_NeverInvokes(t *testing.T) {
	gate := newTestGate(t, models.Identity{}, false)
	calls := 0

	err := gate.Run(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Zero(t, calls)
}

func TestAuthorizationGate_Run_Authenticated_InvokesOnceWithActor(t *testing.T) {
	gate := newTestGate(t, alice.Identity(), true)
	calls := 0

	err := gate.Run(context.Background(), func(ctx context.Context) error {
		calls++
		actor, ok := utils.ActorFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "alice", actor.Username)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestAuthorizationGate_Run_PropagatesOperationError(t *testing.T) {
	gate := newTestGate(t, alice.Identity(), true)
	opErr := errors.New("boom")

	err := gate.Run(context.Background(), func(ctx context.Context) error {
		return opErr
	})

	assert.Same(t, opErr, err)
}

func TestAuthorizationGate_Wrap(t *testing.T) {
	calls := 0
	op := func(ctx context.Context) error {
		calls++
		return nil
	}

	anonymous := newTestGate(t, models.Identity{}, false).Wrap(op)
	assert.ErrorIs(t, anonymous(context.Background()), ErrNotAuthenticated)
	assert.Zero(t, calls)

	authenticated := newTestGate(t, alice.Identity(), true).Wrap(op)
	assert.NoError(t, authenticated(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestAuthorizationGate_Authorize_ReturnsOriginalContextOnRejection(t *testing.T) {
	gate := newTestGate(t, models.Identity{}, false)
	ctx := context.Background()

	got, err := gate.Authorize(ctx)

	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, ctx, got)
}

func TestGuard(t *testing.T) {
	fn := func(ctx context.Context) (int, error) {
		return 42, nil
	}

	value, err := Guard(context.Background(), newTestGate(t, alice.Identity(), true), fn)
	require.NoError(t, err)
	assert.Equal(t, 42, value)

	value, err = Guard(context.Background(), newTestGate(t, models.Identity{}, false), fn)
	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Zero(t, value)
}
