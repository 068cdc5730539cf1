// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-stock-keeper/internal/app"
	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	log := logger.NewFileLogger("stockkeeper", cfg.Log.File)
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx := context.Background()

	application, err := app.NewApp(ctx, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}
	defer func() {
		if closeErr := application.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storage")
		}
	}()

	if err = application.Run(ctx); err != nil {
		log.Err(err).Msg("app run error")
	}
}
