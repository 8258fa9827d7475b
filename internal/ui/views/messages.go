// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"github.com/morganforge/splasp-tui/internal/api"
	"github.com/morganforge/splasp-tui/internal/history"
	"github.com/morganforge/splasp-tui/internal/identity"
)

// =============================================================================
// ASYNC RESULT MESSAGES
// =============================================================================

// authDoneMsg carries a resolved login or register network call. The
// attempt handle fences it: the app commits through the attempt, and a
// superseded attempt is dropped without touching the identity store.
type authDoneMsg struct {
	attempt  *identity.Attempt
	creds    *api.Credentials
	register bool
	err      error
}

// projectsLoadedMsg carries the user's analyzed project list.
type projectsLoadedMsg struct {
	projects []api.Project
	err      error
}

// sessionsLoadedMsg carries the session list for the admin view.
type sessionsLoadedMsg struct {
	sessions []api.Session
	err      error
}

// sessionCreatedMsg carries the result of an admin session creation.
type sessionCreatedMsg struct {
	session *api.Session
	err     error
}

// sessionJoinedMsg carries the result of joining a session by code.
type sessionJoinedMsg struct {
	session *api.Session
	err     error
}

// sessionClosedMsg carries the result of closing a session.
type sessionClosedMsg struct {
	id  int
	err error
}

// analyzeDoneMsg carries a finished project analysis.
type analyzeDoneMsg struct {
	filename string
	result   *api.AnalysisResult
	err      error
}

// historyLoadedMsg carries recent local analysis runs.
type historyLoadedMsg struct {
	runs []history.Run
	err  error
}

// historyRecordedMsg reports a background history insert. Failures are
// logged as a toast but never fail the analysis.
type historyRecordedMsg struct {
	err error
}
