// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
)

// Command is a named shell action. Gated commands only run for a logged-in
// operator; Run then sees the actor in its context.
type Command struct {
	Name  string
	Gated bool
	Run   Operation
}

// Result reports how a dispatched command ended. Authorized is false only
// when the gate turned the command away.
type Result struct {
	Command    string
	Authorized bool
	Err        error
}

// CommandDispatcher is the single entry point the shell uses for actions.
type CommandDispatcher interface {
	Dispatch(ctx context.Context, cmd Command) Result
}

type commandDispatcher struct {
	gate AuthorizationGate

	logger *logger.Logger
}

func NewCommandDispatcher(gate AuthorizationGate, logger *logger.Logger) CommandDispatcher {
	return &commandDispatcher{
		gate:   gate,
		logger: logger,
	}
}

func (d *commandDispatcher) Dispatch(ctx context.Context, cmd Command) Result {
	ctx = d.withTrace(ctx, cmd.Name)
	log := logger.FromContext(ctx)
	result := Result{Command: cmd.Name, Authorized: true}

	start := time.Now()
	defer func() {
		log.Debug().
			Bool("authorized", result.Authorized).
			Bool("failed", result.Err != nil).
			Dur("duration", time.Since(start)).
			Msg("command dispatched")
	}()

	if cmd.Run == nil {
		result.Err = ErrInvalidDataProvided
		return result
	}

	if !cmd.Gated {
		result.Err = cmd.Run(ctx)
		return result
	}

	gatedCtx, err := d.gate.Authorize(ctx)
	if err != nil {
		log.Info().Err(err).Str("func", "commandDispatcher.Dispatch").Msg("command rejected")
		result.Authorized = false
		result.Err = err
		return result
	}

	result.Err = cmd.Run(gatedCtx)
	if result.Err != nil && !errors.Is(result.Err, ErrInvalidDataProvided) {
		log.Err(result.Err).Str("func", "commandDispatcher.Dispatch").Msg("command failed")
	}

	return result
}

// withTrace attaches a child logger tagged with a fresh trace id and the
// command name.
func (d *commandDispatcher) withTrace(ctx context.Context, command string) context.Context {
	l := d.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", uuid.NewString()).Str("command", command)
	})

	return l.WithContext(ctx)
}
