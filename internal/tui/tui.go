// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the desktop shell of go-stock-keeper. Every action that
// touches data is sent through the service CommandDispatcher; a rejected
// gated command brings the operator back to the login page.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
)

var ErrNilServices = errors.New("services are not configured")

type TUI struct {
	services *service.Services
	logger   *logger.Logger
}

func New(services *service.Services, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNilServices
	}

	return &TUI{
		services: services,
		logger:   logger,
	}, nil
}

// Run blocks until the operator quits. An active session is closed on exit
// so the audit trail gets its LOGOUT record.
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)

	root := NewRootModel(newPages(ctx, t.services), pageLogin, t.services.AppInfoService.GetBuildInfo(ctx))
	_, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()

	if err := t.services.SessionManager.Logout(ctx); err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("failed to close session on exit")
	}

	if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return runErr
}

func newPages(ctx context.Context, services *service.Services) map[string]tea.Model {
	return map[string]tea.Model{
		pageLogin:        NewLoginModel(ctx, services.Dispatcher, services.SessionManager, services.CredentialService),
		pageMenu:         NewMenuModel(ctx, services.Dispatcher, services.SessionManager),
		pageSuppliers:    NewSuppliersModel(ctx, services.Dispatcher, services.SupplierService),
		pageSupplierForm: NewSupplierFormModel(ctx, services.Dispatcher, services.SupplierService),
		pageAudit:        NewAuditModel(ctx, services.Dispatcher, services.AuditService),
		pagePassword:     NewPasswordModel(ctx, services.Dispatcher, services.CredentialService),
	}
}
