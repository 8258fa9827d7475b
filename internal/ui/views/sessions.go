// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/splasp-tui/internal/api"
	"github.com/morganforge/splasp-tui/internal/ui/components"
	"github.com/morganforge/splasp-tui/internal/ui/styles"
)

// =============================================================================
// SESSIONS VIEW (ADMIN)
// =============================================================================

// sessionsMode selects the sub-screen of the sessions view.
type sessionsMode int

const (
	sessionsList sessionsMode = iota
	sessionsCreate
)

// sessionsModel is the administrator's session management view. The
// guard keeps non-admins out before this view is ever entered.
type sessionsModel struct {
	theme *styles.Theme
	mode  sessionsMode

	sessions []api.Session
	selected int
	loading  bool

	// Create form
	nameInput textinput.Model
	daysInput textinput.Model
	formFocus int
	creating  bool
	errText   string
}

func newSessionsModel(theme *styles.Theme) sessionsModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "session name"
	nameInput.CharLimit = 64

	daysInput := textinput.New()
	daysInput.Placeholder = "duration in days (default 7)"
	daysInput.CharLimit = 4

	return sessionsModel{theme: theme, nameInput: nameInput, daysInput: daysInput}
}

func (s *sessionsModel) update(a *App, msg tea.Msg) tea.Cmd {
	if s.mode == sessionsCreate {
		return s.updateCreate(a, msg)
	}
	return s.updateList(a, msg)
}

func (s *sessionsModel) updateList(a *App, msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, a.keys.Up):
		if s.selected > 0 {
			s.selected--
		}
	case key.Matches(keyMsg, a.keys.Down):
		if s.selected < len(s.sessions)-1 {
			s.selected++
		}
	case key.Matches(keyMsg, a.keys.Refresh):
		s.loading = true
		return a.loadSessionsCmd()
	case key.Matches(keyMsg, a.keys.New):
		s.enterCreate()
	case key.Matches(keyMsg, a.keys.Close):
		if s.selected < len(s.sessions) {
			sess := s.sessions[s.selected]
			if !sess.IsActive {
				return a.toasts.Push(components.NewStatusToast("session already closed"))
			}
			return a.closeSessionCmd(sess.ID)
		}
	}
	return nil
}

func (s *sessionsModel) enterCreate() {
	s.mode = sessionsCreate
	s.errText = ""
	s.creating = false
	s.nameInput.SetValue("")
	s.daysInput.SetValue("")
	s.formFocus = 0
	s.nameInput.Focus()
	s.daysInput.Blur()
}

func (s *sessionsModel) updateCreate(a *App, msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !s.creating {
		switch {
		case key.Matches(keyMsg, a.keys.Back):
			s.mode = sessionsList
			return nil
		case key.Matches(keyMsg, a.keys.Submit):
			if s.formFocus == 0 {
				s.setFormFocus(1)
				return nil
			}
			return s.submitCreate(a)
		case key.Matches(keyMsg, a.keys.NextField):
			s.setFormFocus((s.formFocus + 1) % 2)
			return nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	s.nameInput, cmd = s.nameInput.Update(msg)
	cmds = append(cmds, cmd)
	s.daysInput, cmd = s.daysInput.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (s *sessionsModel) setFormFocus(i int) {
	s.formFocus = i
	if i == 0 {
		s.nameInput.Focus()
		s.daysInput.Blur()
	} else {
		s.nameInput.Blur()
		s.daysInput.Focus()
	}
}

func (s *sessionsModel) submitCreate(a *App) tea.Cmd {
	name := strings.TrimSpace(s.nameInput.Value())
	if name == "" {
		s.errText = "session name is required"
		return nil
	}

	days := 7
	if v := strings.TrimSpace(s.daysInput.Value()); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil || d < 1 {
			s.errText = "duration must be a positive number of days"
			return nil
		}
		days = d
	}

	s.errText = ""
	s.creating = true
	start := time.Now()
	return a.createSessionCmd(name, start, start.AddDate(0, 0, days))
}

func (s *sessionsModel) handle(a *App, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case sessionsLoadedMsg:
		s.loading = false
		if msg.err != nil {
			return a.toasts.Push(components.NewErrorToast(
				"could not load sessions: " + friendlyError(msg.err)))
		}
		s.sessions = msg.sessions
		if s.selected >= len(s.sessions) {
			s.selected = 0
		}

	case sessionCreatedMsg:
		s.creating = false
		if msg.err != nil {
			s.errText = friendlyError(msg.err)
			return nil
		}
		s.mode = sessionsList
		return tea.Batch(
			a.toasts.Push(components.NewSuccessToast(
				fmt.Sprintf("session created, code %s", msg.session.Code))),
			a.loadSessionsCmd(),
		)

	case sessionClosedMsg:
		if msg.err != nil {
			return a.toasts.Push(components.NewErrorToast(
				"could not close session: " + friendlyError(msg.err)))
		}
		return tea.Batch(
			a.toasts.Push(components.NewSuccessToast("session closed")),
			a.loadSessionsCmd(),
		)
	}
	return nil
}

// =============================================================================
// RENDERING
// =============================================================================

func (s *sessionsModel) view(a *App) string {
	if s.mode == sessionsCreate {
		return s.viewCreate(a)
	}
	return s.viewList(a)
}

func (s *sessionsModel) viewList(a *App) string {
	var sb strings.Builder
	sb.WriteString(a.theme.ResultTitle.Render("Sessions"))
	sb.WriteString("\n\n")

	if s.loading {
		sb.WriteString(a.theme.InfoStyle.Render("loading..."))
		return sb.String()
	}
	if len(s.sessions) == 0 {
		sb.WriteString(a.theme.FormHint.Render("No sessions. Press 'n' to create one."))
		return sb.String()
	}

	tbl := components.NewTable(a.theme,
		components.Column{Title: "ID", Width: 5},
		components.Column{Title: "Name", Width: 22},
		components.Column{Title: "Code", Width: 8},
		components.Column{Title: "Ends", Width: 16},
		components.Column{Title: "State", Width: 8},
	)
	tbl.Selected = s.selected

	rows := make([][]string, 0, len(s.sessions))
	for _, sess := range s.sessions {
		state := "closed"
		if sess.IsActive {
			state = "active"
		}
		rows = append(rows, []string{
			strconv.Itoa(sess.ID),
			sess.Name,
			sess.Code,
			sess.EndDate.Local().Format("2006-01-02 15:04"),
			state,
		})
	}
	sb.WriteString(tbl.View(rows))
	return sb.String()
}

func (s *sessionsModel) viewCreate(a *App) string {
	var sb strings.Builder
	sb.WriteString(a.theme.ResultTitle.Render("New session"))
	sb.WriteString("\n\n")

	sb.WriteString(fieldLabel(a, "Name", s.formFocus == 0))
	sb.WriteString("\n")
	sb.WriteString(s.nameInput.View())
	sb.WriteString("\n\n")
	sb.WriteString(fieldLabel(a, "Duration", s.formFocus == 1))
	sb.WriteString("\n")
	sb.WriteString(s.daysInput.View())
	sb.WriteString("\n")

	if s.creating {
		sb.WriteString("\n" + a.theme.InfoStyle.Render("creating..."))
	}
	if s.errText != "" {
		sb.WriteString("\n" + a.theme.FormError.Render(s.errText))
	}

	return a.theme.FormBox.Render(sb.String())
}
