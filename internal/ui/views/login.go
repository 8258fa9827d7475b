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
// LOGIN FORM
// =============================================================================

// loginForm is the username/password login view.
type loginForm struct {
	username   textinput.Model
	password   textinput.Model
	focus      int
	submitting bool
	errText    string
}

func newLoginForm() loginForm {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginForm{username: username, password: password}
}

// reset clears the form for a fresh login screen.
func (f *loginForm) reset() {
	f.username.SetValue("")
	f.password.SetValue("")
	f.errText = ""
	f.submitting = false
	f.setFocus(0)
}

func (f *loginForm) setFocus(i int) {
	f.focus = i
	if i == 0 {
		f.username.Focus()
		f.password.Blur()
	} else {
		f.username.Blur()
		f.password.Focus()
	}
}

func (f *loginForm) update(a *App, msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !f.submitting {
		switch {
		case key.Matches(keyMsg, a.keys.Submit):
			if f.focus == 0 {
				f.setFocus(1)
				return nil
			}
			return f.submit(a)
		case key.Matches(keyMsg, a.keys.NextField):
			f.setFocus((f.focus + 1) % 2)
			return nil
		case keyMsg.String() == "up" || keyMsg.String() == "shift+tab":
			f.setFocus((f.focus + 1) % 2)
			return nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	f.username, cmd = f.username.Update(msg)
	cmds = append(cmds, cmd)
	f.password, cmd = f.password.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// submit begins a fenced login attempt and fires the network call.
func (f *loginForm) submit(a *App) tea.Cmd {
	username := strings.TrimSpace(f.username.Value())
	password := f.password.Value()
	if username == "" || password == "" {
		f.errText = "username and password are required"
		return nil
	}

	f.errText = ""
	f.submitting = true
	attempt := a.store.Begin()
	return a.authCmd(attempt, username, password, false)
}

func (f *loginForm) view(a *App) string {
	var sb strings.Builder
	sb.WriteString(a.theme.ResultTitle.Render("Log in"))
	sb.WriteString("\n\n")

	sb.WriteString(fieldLabel(a, "Username", f.focus == 0))
	sb.WriteString("\n")
	sb.WriteString(f.username.View())
	sb.WriteString("\n\n")
	sb.WriteString(fieldLabel(a, "Password", f.focus == 1))
	sb.WriteString("\n")
	sb.WriteString(f.password.View())
	sb.WriteString("\n")

	if f.submitting {
		sb.WriteString("\n" + a.theme.InfoStyle.Render("logging in..."))
	}
	if f.errText != "" {
		sb.WriteString("\n" + a.theme.FormError.Render(f.errText))
	}

	sb.WriteString("\n\n" + a.theme.FormHint.Render("No account yet? Ctrl+N switches to Register."))
	return a.theme.FormBox.Render(sb.String())
}

// fieldLabel renders a form label, highlighted when focused.
func fieldLabel(a *App, label string, focused bool) string {
	if focused {
		return a.theme.FormLabelFocus.Render("> " + label)
	}
	return a.theme.FormLabel.Render("  " + label)
}
