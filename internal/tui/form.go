// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is the list of text inputs shared by the login and register pages.
type form struct {
	inputs []textinput.Model
	focus  int
}

func newTextInput(placeholder string, charLimit int, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func newForm(inputs ...textinput.Model) form {
	f := form{inputs: inputs}
	f.inputs[0].Focus()
	return f
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) trimmed(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[f.focus].Focus()
}

func (f *form) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// rows renders the form as a "Поле │ Значение" table, one input per row.
func (f *form) rows(b *strings.Builder, labels ...string) {
	const header = "Поле"
	width := len([]rune(header))
	for _, l := range labels {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}

	b.WriteString(header)
	b.WriteString(strings.Repeat(" ", width-len([]rune(header))))
	b.WriteString(" │ Значение\n")
	b.WriteString(strings.Repeat("─", width))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 44))
	b.WriteString("\n")

	for i, l := range labels {
		b.WriteString(l)
		b.WriteString(strings.Repeat(" ", width-len([]rune(l))))
		b.WriteString(" │ [")
		b.WriteString(f.inputs[i].View())
		b.WriteString("]\n")
	}
}
