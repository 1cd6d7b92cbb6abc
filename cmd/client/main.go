// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/survey-auth/internal/adapter"
	"github.com/MKhiriev/survey-auth/internal/client"
	"github.com/MKhiriev/survey-auth/internal/config"
	"github.com/MKhiriev/survey-auth/internal/logger"
	"github.com/MKhiriev/survey-auth/internal/tui"
	"github.com/MKhiriev/survey-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("survey-auth-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	api, err := adapter.NewHTTPAuthAPI(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create auth api adapter")
	}

	ui := tui.New(api, buildInfo, log)

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	for _, line := range info.Lines() {
		fmt.Println(line)
	}
}
