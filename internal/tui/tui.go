// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal client of survey-auth on Bubble Tea.
//
// [RootModel] routes between the menu, login, register and profile pages.
// Pages talk to the server only through [adapter.AuthAPI].
package tui

import (
	"context"

	"github.com/MKhiriev/survey-auth/internal/adapter"
	"github.com/MKhiriev/survey-auth/internal/logger"
	"github.com/MKhiriev/survey-auth/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	api       adapter.AuthAPI
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(api adapter.AuthAPI, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{api: api, buildInfo: buildInfo, logger: logger}
}

// newRootModel wires all pages, starting at the menu.
func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.api),
		pageRegister: NewRegisterModel(ctx, t.api),
		pageProfile:  NewProfileModel(ctx, t.api),
	}
	return NewRootModel(ctx, t.api, pages, pageMenu, t.buildInfo)
}

// Run blocks until the user quits. It returns [ErrUserQuit] on ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	t.logger.Info().Str("func", "TUI.Run").Msg("starting terminal UI")

	finalModel, err := tea.NewProgram(t.newRootModel(ctx), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal UI stopped with error")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
