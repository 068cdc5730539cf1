// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, keyed hashing
// and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ActorCtxKey is the key used to store the acting user's identity in the
// context. The authorization gate sets it before a gated operation runs;
// services read it back with ActorFromContext to stamp audit records.
var ActorCtxKey = contextKey("actor")

// WithActor returns a copy of ctx carrying the given identity.
func WithActor(ctx context.Context, actor models.Identity) context.Context {
	return context.WithValue(ctx, ActorCtxKey, actor)
}

// ActorFromContext retrieves the acting identity from the context.
//
// Returns the identity and an ok flag:
//   - ok == true: a non-zero identity is present
//   - ok == false: value is missing, zero or has an unexpected type
//
// Example usage:
//
//	actor, ok := utils.ActorFromContext(ctx)
//	if !ok {
//	    return service.ErrNotAuthenticated
//	}
func ActorFromContext(ctx context.Context) (models.Identity, bool) {
	actor, ok := ctx.Value(ActorCtxKey).(models.Identity)
	if !ok || actor.IsZero() {
		return models.Identity{}, false
	}
	return actor, true
}
