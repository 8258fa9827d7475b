// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// REGISTER FORM
// =============================================================================

// registerForm is the account creation view. A successful registration
// logs the new user straight in; the backend issues a token with the
// same envelope as login.
type registerForm struct {
	username   textinput.Model
	password   textinput.Model
	confirm    textinput.Model
	focus      int
	submitting bool
	errText    string
}

func newRegisterForm() registerForm {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	confirm := textinput.New()
	confirm.Placeholder = "confirm password"
	confirm.CharLimit = 128
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '*'

	return registerForm{username: username, password: password, confirm: confirm}
}

func (f *registerForm) reset() {
	f.username.SetValue("")
	f.password.SetValue("")
	f.confirm.SetValue("")
	f.errText = ""
	f.submitting = false
	f.setFocus(0)
}

func (f *registerForm) inputs() []*textinput.Model {
	return []*textinput.Model{&f.username, &f.password, &f.confirm}
}

func (f *registerForm) setFocus(i int) {
	f.focus = i
	for idx, in := range f.inputs() {
		if idx == i {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (f *registerForm) update(a *App, msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !f.submitting {
		switch {
		case key.Matches(keyMsg, a.keys.Submit):
			if f.focus < 2 {
				f.setFocus(f.focus + 1)
				return nil
			}
			return f.submit(a)
		case key.Matches(keyMsg, a.keys.NextField):
			f.setFocus((f.focus + 1) % 3)
			return nil
		case keyMsg.String() == "up" || keyMsg.String() == "shift+tab":
			f.setFocus((f.focus + 2) % 3)
			return nil
		}
	}

	var cmds []tea.Cmd
	for _, in := range f.inputs() {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (f *registerForm) submit(a *App) tea.Cmd {
	username := strings.TrimSpace(f.username.Value())
	password := f.password.Value()

	switch {
	case username == "" || password == "":
		f.errText = "username and password are required"
		return nil
	case len(password) < 4:
		f.errText = "password must be at least 4 characters"
		return nil
	case password != f.confirm.Value():
		f.errText = "passwords do not match"
		return nil
	}

	f.errText = ""
	f.submitting = true
	attempt := a.store.Begin()
	return a.authCmd(attempt, username, password, true)
}

func (f *registerForm) view(a *App) string {
	var sb strings.Builder
	sb.WriteString(a.theme.ResultTitle.Render("Create account"))
	sb.WriteString("\n\n")

	labels := []string{"Username", "Password", "Confirm password"}
	for i, in := range f.inputs() {
		sb.WriteString(fieldLabel(a, labels[i], f.focus == i))
		sb.WriteString("\n")
		sb.WriteString(in.View())
		sb.WriteString("\n\n")
	}

	if f.submitting {
		sb.WriteString(a.theme.InfoStyle.Render("creating account..."))
	}
	if f.errText != "" {
		sb.WriteString(a.theme.FormError.Render(f.errText))
	}

	return a.theme.FormBox.Render(sb.String())
}
