// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/internal/tui"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// Shell is the interactive front end the App hands control to.
type Shell interface {
	Run(ctx context.Context) error
}

type App struct {
	storages *store.Storages
	services *service.Services
	shell    Shell
	logger   *logger.Logger
}

// NewApp opens and migrates the configured database and wires the services
// and the TUI on top of it.
func NewApp(ctx context.Context, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate storage: %w", err)
	}

	storages := store.NewStorages(db, log)
	services, err := service.NewServices(storages, cfg, buildInfo, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create services: %w", err)
	}

	ui, err := tui.New(services, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return newApp(storages, services, ui, log), nil
}

func newApp(storages *store.Storages, services *service.Services, shell Shell, log *logger.Logger) *App {
	return &App{
		storages: storages,
		services: services,
		shell:    shell,
		logger:   log,
	}
}

// Run prepares the first-run administrator and blocks in the shell until
// the operator quits or a stop signal arrives.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	ctx = a.logger.WithContext(ctx)
	a.bootstrap(ctx)

	if err := a.shell.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg(MsgShutdown)
	return nil
}

func (a *App) bootstrap(ctx context.Context) {
	created, err := a.services.BootstrapService.EnsureAdministrator(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "App.bootstrap").Msg(MsgSetupSkipped)
		return
	}
	if created {
		a.logger.Warn().Str("func", "App.bootstrap").Msg(MsgDefaultAdminCreated)
	}
}

func (a *App) Close() error {
	return a.storages.Close()
}
