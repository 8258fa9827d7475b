// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/splasp-tui/internal/history"
	"github.com/morganforge/splasp-tui/internal/identity"
)

// =============================================================================
// ASYNC COMMANDS
// =============================================================================

// requestTimeout returns the per-call deadline from the config.
func (a *App) requestTimeout() time.Duration {
	return time.Duration(a.cfg.Server.TimeoutSecs) * time.Second
}

// authCmd runs a login or register call off the update loop. The
// attempt handle travels with the result so the commit can be fenced.
func (a *App) authCmd(attempt *identity.Attempt, username, password string, register bool) tea.Cmd {
	client := a.client
	timeout := a.requestTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if register {
			creds, err := client.Register(ctx, username, password)
			return authDoneMsg{attempt: attempt, creds: creds, register: true, err: err}
		}
		creds, err := client.Login(ctx, username, password)
		return authDoneMsg{attempt: attempt, creds: creds, err: err}
	}
}

// loadProjectsCmd fetches the user's analyzed projects.
func (a *App) loadProjectsCmd() tea.Cmd {
	client := a.client
	timeout := a.requestTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		projects, err := client.MyProjects(ctx)
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

// loadSessionsCmd fetches all sessions for the admin view.
func (a *App) loadSessionsCmd() tea.Cmd {
	client := a.client
	timeout := a.requestTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		sessions, err := client.ListSessions(ctx)
		return sessionsLoadedMsg{sessions: sessions, err: err}
	}
}

// createSessionCmd creates a timed session.
func (a *App) createSessionCmd(name string, start, end time.Time) tea.Cmd {
	client := a.client
	timeout := a.requestTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		session, err := client.CreateSession(ctx, name, start, end)
		return sessionCreatedMsg{session: session, err: err}
	}
}

// joinSessionCmd joins a session by code.
func (a *App) joinSessionCmd(code string) tea.Cmd {
	client := a.client
	timeout := a.requestTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		session, err := client.JoinSession(ctx, code)
		return sessionJoinedMsg{session: session, err: err}
	}
}

// closeSessionCmd closes a session.
func (a *App) closeSessionCmd(id int) tea.Cmd {
	client := a.client
	timeout := a.requestTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := client.CloseSession(ctx, id)
		return sessionClosedMsg{id: id, err: err}
	}
}

// analyzeCmd reads the project file and uploads it for analysis.
// Uploads can outlast a single request timeout, so the deadline is
// doubled here.
func (a *App) analyzeCmd(path string, sessionID int) tea.Cmd {
	client := a.client
	timeout := 2 * a.requestTimeout()
	return func() tea.Msg {
		content, err := os.ReadFile(path)
		if err != nil {
			return analyzeDoneMsg{filename: path, err: fmt.Errorf("could not read file: %w", err)}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		filename := filepath.Base(path)
		result, err := client.Analyze(ctx, filename, content, sessionID)
		return analyzeDoneMsg{filename: filename, result: result, err: err}
	}
}

// recordRunCmd writes an analysis summary to local history.
func (a *App) recordRunCmd(run history.Run) tea.Cmd {
	hist := a.hist
	if hist == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_, err := hist.Record(ctx, run)
		return historyRecordedMsg{err: err}
	}
}

// loadHistoryCmd fetches recent local runs for the home view.
func (a *App) loadHistoryCmd() tea.Cmd {
	hist := a.hist
	if hist == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		runs, err := hist.Recent(ctx, 10)
		return historyLoadedMsg{runs: runs, err: err}
	}
}
