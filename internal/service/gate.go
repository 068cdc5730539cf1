// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
)

// Operation is a unit of work the gate can protect.
type Operation func(ctx context.Context) error

// AuthorizationGate lets operations through only while an operator is
// logged in. It reads the session and never writes audit records.
type AuthorizationGate interface {
	// Authorize returns ctx enriched with the current identity, or
	// ErrNotAuthenticated.
	Authorize(ctx context.Context) (context.Context, error)

	// Run invokes op once when authenticated. Errors from op are returned
	// unchanged.
	Run(ctx context.Context, op Operation) error

	// Wrap returns the gated version of op.
	Wrap(op Operation) Operation
}

type authorizationGate struct {
	session SessionManager

	logger *logger.Logger
}

func NewAuthorizationGate(session SessionManager, logger *logger.Logger) AuthorizationGate {
	return &authorizationGate{
		session: session,
		logger:  logger,
	}
}

func (g *authorizationGate) Authorize(ctx context.Context) (context.Context, error) {
	identity, ok := g.session.CurrentUser()
	if !ok {
		logger.FromContext(ctx).Debug().Str("func", "authorizationGate.Authorize").Msg("no active session")
		return ctx, ErrNotAuthenticated
	}

	return utils.WithActor(ctx, identity), nil
}

func (g *authorizationGate) Run(ctx context.Context, op Operation) error {
	ctx, err := g.Authorize(ctx)
	if err != nil {
		return err
	}

	return op(ctx)
}

func (g *authorizationGate) Wrap(op Operation) Operation {
	return func(ctx context.Context) error {
		return g.Run(ctx, op)
	}
}

// Guard runs fn behind gate and returns its value. The zero T is returned
// when the caller is not authenticated.
func Guard[T any](ctx context.Context, gate AuthorizationGate, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T

	err := gate.Run(ctx, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		return err
	})

	return result, err
}
