// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/survey-auth/internal/logger"
	"github.com/MKhiriev/survey-auth/internal/tui"
)

var ErrNoUI = errors.New("no UI to run")

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	return &App{ui: ui, logger: logger}, nil
}

// Run blocks until the UI exits or the process receives SIGTERM. Quitting
// the UI is not an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	log := a.logger.GetChildLogger()
	log.Info().Str("func", "App.Run").Msg("client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		log.Info().Str("func", "App.Run").Msg("client stopped by user")
		return nil
	case ctx.Err() != nil:
		log.Info().Str("func", "App.Run").Msg("client interrupted")
		return nil
	default:
		log.Err(err).Str("func", "App.Run").Msg("client stopped with error")
		return fmt.Errorf("run ui: %w", err)
	}
}
