// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/survey-auth/internal/adapter"
	"github.com/MKhiriev/survey-auth/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. It renders email
// and password inputs and dispatches an async login command on submission.
// On success the form is cleared and the profile page is opened.
type LoginModel struct {
	ctx context.Context
	api adapter.AuthAPI

	form       form
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel]. The email field receives focus
// immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, api adapter.AuthAPI) *LoginModel {
	return &LoginModel{
		ctx: ctx,
		api: api,
		form: newForm(
			newTextInput("email", 254, false),
			newTextInput("password", 256, true),
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult] clears the submitting state and either shows the error
//     or opens the profile page.
//   - esc goes back to the menu.
//   - tab / shift+tab move the focus.
//   - enter checks that both fields are filled and submits.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		user := result.Response.User
		return m, func() tea.Msg {
			return NavigateTo{Page: pageProfile, Payload: AuthSuccess{User: user}}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			email := m.form.trimmed(0)
			pass := m.form.value(1)
			if email == "" || pass == "" {
				m.errMsg = "Email и пароль обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	m.form.rows(&b, "Email", "Пароль")

	if m.submitting {
		b.WriteString("\n[Войти...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *LoginModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	api := m.api

	return func() tea.Msg {
		resp, err := api.Login(ctx, models.LoginRequest{
			Email:    email,
			Password: pass,
		})
		return LoginResult{Err: err, Response: resp}
	}
}
