// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-stock-keeper/internal/service"
)

// dispatch runs op through the dispatcher on a Bubble Tea goroutine. done
// turns the command error into the page message; rejected gated commands
// become [CommandRejected] instead.
func dispatch(ctx context.Context, dispatcher service.CommandDispatcher, name string, gated bool, op service.Operation, done func(err error) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		result := dispatcher.Dispatch(ctx, service.Command{
			Name:  name,
			Gated: gated,
			Run:   op,
		})
		if !result.Authorized {
			return CommandRejected{Command: result.Command}
		}
		return done(result.Err)
	}
}
