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

const (
	registerUsername = iota
	registerEmail
	registerPassword
	registerConfirm
)

// RegisterModel is the Bubble Tea model for the registration screen. It
// renders username, email, password and password confirmation inputs.
// The confirmation never leaves the client: a mismatch is reported without
// calling the server. A successful registration logs the user in, so the
// profile page is opened right away.
type RegisterModel struct {
	ctx context.Context
	api adapter.AuthAPI

	form       form
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with four pre-configured text
// inputs. The username field receives focus immediately.
func NewRegisterModel(ctx context.Context, api adapter.AuthAPI) *RegisterModel {
	return &RegisterModel{
		ctx: ctx,
		api: api,
		form: newForm(
			newTextInput("username", 50, false),
			newTextInput("email", 254, false),
			newTextInput("password", 256, true),
			newTextInput("repeat password", 256, true),
		),
	}
}

// Init implements [tea.Model].
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterResult] clears the submitting state and either shows the
//     server's message or opens the profile page.
//   - esc goes back to the menu.
//   - tab / shift+tab move the focus.
//   - enter checks the form and submits.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		user := result.Response.User
		return m, func() tea.Msg {
			return NavigateTo{
				Page: pageProfile,
				Payload: AuthSuccess{
					User:   user,
					Notice: "Пользователь " + user.Username + " успешно зарегистрирован",
				},
			}
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

			req := models.RegisterRequest{
				Username: m.form.trimmed(registerUsername),
				Email:    m.form.trimmed(registerEmail),
				Password: m.form.value(registerPassword),
			}
			repeat := m.form.value(registerConfirm)

			if req.Username == "" || req.Email == "" || req.Password == "" || repeat == "" {
				m.errMsg = "Все поля обязательны"
				return m, nil
			}
			if req.Password != repeat {
				m.errMsg = "Пароли не совпадают"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	m.form.rows(&b, "Имя пользователя", "Email", "Пароль", "Повтор пароля")

	if m.submitting {
		b.WriteString("\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	api := m.api

	return func() tea.Msg {
		resp, err := api.Register(ctx, req)
		return RegisterResult{Err: err, Response: resp}
	}
}
