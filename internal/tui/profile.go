// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/survey-auth/internal/adapter"
	"github.com/MKhiriev/survey-auth/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

const tokenPreviewLength = 32

// ProfileModel shows the account of the stored token. The profile is
// re-fetched via Me every time the page is opened.
type ProfileModel struct {
	ctx context.Context
	api adapter.AuthAPI

	spinner spinner.Model
	loading bool
	profile models.UserProfile
	status  string
	overlay errorOverlayModel
}

func NewProfileModel(ctx context.Context, api adapter.AuthAPI) *ProfileModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &ProfileModel{
		ctx:     ctx,
		api:     api,
		spinner: s,
	}
}

// Init implements [tea.Model]. Starts loading the profile.
func (m *ProfileModel) Init() tea.Cmd {
	return m.startLoading()
}

// Update implements [tea.Model]. Handled messages:
//   - [AuthSuccess] shows the account returned by login or registration and
//     re-fetches it.
//   - c copies the token to the clipboard.
//   - l drops the token and returns to the menu.
//   - r re-fetches the profile.
//
// An unauthorized response means the token expired: the page returns to the
// menu with a reason.
func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AuthSuccess:
		m.profile = msg.User
		m.status = msg.Notice
		m.overlay = errorOverlayModel{}
		return m, m.startLoading()

	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrUnauthorized) || errors.Is(msg.err, adapter.ErrNoToken) {
				return m, m.leave("Сессия истекла, войдите снова")
			}
			m.overlay = errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.profile = msg.profile
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.overlay = errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.status = "Токен скопирован в буфер обмена"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.overlay.active() {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.overlay = errorOverlayModel{}
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.copy):
			return m, cmdCopyToClipboard(m.api.Token())
		case key.Matches(msg, keys.logout):
			return m, m.leave("")
		case key.Matches(msg, keys.refresh):
			if m.loading {
				return m, nil
			}
			return m, m.startLoading()
		}
	}

	return m, nil
}

// View implements [tea.Model].
func (m *ProfileModel) View() string {
	if m.overlay.active() {
		return m.overlay.View()
	}

	var b strings.Builder
	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" загрузка профиля...\n\n")
	}

	b.WriteString("ID:               ")
	b.WriteString(idOrDash(m.profile.ID))
	b.WriteString("\nИмя пользователя: ")
	b.WriteString(valueOrNA(m.profile.Username))
	b.WriteString("\nEmail:            ")
	b.WriteString(valueOrNA(m.profile.Email))
	b.WriteString("\nСоздан:           ")
	b.WriteString(timeOrNA(m.profile.CreatedAt))
	b.WriteString("\nТокен:            ")
	b.WriteString(valueOrNA(fitText(m.api.Token(), tokenPreviewLength)))
	b.WriteString("\n")
	renderStatus(&b, m.status, "")

	return renderPage("ПРОФИЛЬ", strings.TrimRight(b.String(), "\n"), "c: копировать токен │ r: обновить │ l: выйти")
}

func (m *ProfileModel) startLoading() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdFetchProfile())
}

// leave drops the token and sends the user back to the menu.
func (m *ProfileModel) leave(reason string) tea.Cmd {
	m.api.SetToken("")
	m.profile = models.UserProfile{}
	m.status = ""
	m.loading = false
	return func() tea.Msg {
		return NavigateTo{Page: pageMenu, Payload: LoggedOut{Reason: reason}}
	}
}

func (m *ProfileModel) cmdFetchProfile() tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		profile, err := api.Me(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if text == "" {
			return copiedMsg{err: adapter.ErrNoToken}
		}
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func idOrDash(id int64) string {
	if id == 0 {
		return "-"
	}
	return strconv.FormatInt(id, 10)
}

func timeOrNA(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
