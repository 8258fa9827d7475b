// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/splasp-tui/internal/api"
	"github.com/morganforge/splasp-tui/internal/history"
	"github.com/morganforge/splasp-tui/internal/identity"
	"github.com/morganforge/splasp-tui/internal/ui/components"
)

// =============================================================================
// HOME VIEW
// =============================================================================

// homeModel is the landing view after login. Students join an analysis
// session by code here; everyone sees their recent local runs.
type homeModel struct {
	joinCode textinput.Model
	joining  bool
	joined   *api.Session
	runs     []history.Run
	errText  string
}

func newHomeModel() homeModel {
	joinCode := textinput.New()
	joinCode.Placeholder = "session code"
	joinCode.CharLimit = 16
	joinCode.Focus()
	return homeModel{joinCode: joinCode}
}

// reset clears transient state. The joined session sticks for the
// lifetime of the app; uploads go to it.
func (h *homeModel) reset() {
	h.errText = ""
	h.joining = false
	h.joinCode.SetValue("")
	h.joinCode.Focus()
}

func (h *homeModel) update(a *App, msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, a.keys.Submit) && !h.joining {
			code := strings.TrimSpace(h.joinCode.Value())
			if code == "" {
				return nil
			}
			h.errText = ""
			h.joining = true
			return a.joinSessionCmd(code)
		}
	}

	var cmd tea.Cmd
	h.joinCode, cmd = h.joinCode.Update(msg)
	return cmd
}

func (h *homeModel) handle(a *App, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case sessionJoinedMsg:
		h.joining = false
		if msg.err != nil {
			h.errText = "could not join session: " + friendlyError(msg.err)
			return nil
		}
		h.joined = msg.session
		h.joinCode.SetValue("")
		return a.toasts.Push(components.NewSuccessToast(
			fmt.Sprintf("joined session %q", msg.session.Name)))

	case historyLoadedMsg:
		if msg.err != nil {
			return a.toasts.Push(components.NewErrorToast("could not load local history"))
		}
		h.runs = msg.runs
	}
	return nil
}

func (h *homeModel) view(a *App) string {
	id := a.ids.Identity()

	var sb strings.Builder
	sb.WriteString(a.theme.ResultTitle.Render("Welcome"))
	sb.WriteString("\n\n")

	switch id.Role {
	case identity.RoleAdmin:
		sb.WriteString("You are logged in as an administrator. Manage analysis\n")
		sb.WriteString("sessions from the Sessions view.\n")
	case identity.RoleUser:
		sb.WriteString("Upload Snap! projects from the My Projects view. Join a\n")
		sb.WriteString("session below to attach your uploads to it.\n")
	default:
		sb.WriteString("Your account role was not recognized. You can browse, but\n")
		sb.WriteString("role-specific views are unavailable.\n")
	}

	if id.Role == identity.RoleUser {
		sb.WriteString("\n")
		if h.joined != nil {
			sb.WriteString(a.theme.SuccessStyle.Render(
				fmt.Sprintf("Current session: %s (%s)", h.joined.Name, h.joined.Code)))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
		sb.WriteString(a.theme.FormLabel.Render("Join session by code"))
		sb.WriteString("\n")
		sb.WriteString(h.joinCode.View())
		sb.WriteString("\n")
		if h.joining {
			sb.WriteString(a.theme.InfoStyle.Render("joining..."))
			sb.WriteString("\n")
		}
		if h.errText != "" {
			sb.WriteString(a.theme.FormError.Render(h.errText))
			sb.WriteString("\n")
		}
	}

	if len(h.runs) > 0 {
		sb.WriteString("\n")
		sb.WriteString(a.theme.TableHeader.Render("Recent analyses"))
		sb.WriteString("\n")
		tbl := components.NewTable(a.theme,
			components.Column{Title: "File", Width: 24},
			components.Column{Title: "Level", Width: 8},
			components.Column{Title: "Blocks", Width: 7},
			components.Column{Title: "When", Width: 16},
		)
		rows := make([][]string, 0, len(h.runs))
		for _, r := range h.runs {
			rows = append(rows, []string{
				r.Filename,
				r.ProjectLevel,
				fmt.Sprintf("%d", r.BlockCount),
				r.CreatedAt.Local().Format("2006-01-02 15:04"),
			})
		}
		sb.WriteString(tbl.View(rows))
	}

	return sb.String()
}

// friendlyError shortens API errors for inline display.
func friendlyError(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return err.Error()
}
