// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) active() bool {
	return m.message != ""
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Ошибка") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc закрыть")
	return overlayBoxStyle.Render(content)
}
