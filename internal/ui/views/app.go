// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/splasp-tui/internal/api"
	"github.com/morganforge/splasp-tui/internal/config"
	"github.com/morganforge/splasp-tui/internal/history"
	"github.com/morganforge/splasp-tui/internal/identity"
	"github.com/morganforge/splasp-tui/internal/nav"
	"github.com/morganforge/splasp-tui/internal/storage"
	"github.com/morganforge/splasp-tui/internal/ui/components"
	"github.com/morganforge/splasp-tui/internal/ui/styles"
)

// =============================================================================
// APP MODEL
// =============================================================================

// App is the root Bubble Tea model. It owns the identity store, routes
// every view switch through the navigation guard, and recomputes the
// visible surface set from a fresh identity snapshot each frame.
type App struct {
	cfg   *config.Config
	theme *styles.Theme
	keys  KeyMap

	store  *identity.Store
	ids    identity.View
	guard  nav.Guard
	client *api.Client
	creds  *storage.CredentialStore
	hist   *history.Store // nil when history is disabled

	header    *components.Header
	statusBar *components.StatusBar
	toasts    *components.ToastStack

	width  int
	height int
	route  nav.Route

	login    loginForm
	register registerForm
	home     homeModel
	projects projectsModel
	sessions sessionsModel
}

// NewApp wires the application model. creds and hist may be nil when
// login persistence or local history is disabled.
func NewApp(cfg *config.Config, store *identity.Store, client *api.Client,
	creds *storage.CredentialStore, hist *history.Store) *App {

	theme := styles.NewTheme()
	ids := identity.NewView(store)

	a := &App{
		cfg:       cfg,
		theme:     theme,
		keys:      DefaultKeyMap(),
		store:     store,
		ids:       ids,
		guard:     nav.NewGuard(ids),
		client:    client,
		creds:     creds,
		hist:      hist,
		header:    components.NewHeader(theme),
		statusBar: components.NewStatusBar(theme),
		toasts:    components.NewToastStack(theme),
		login:     newLoginForm(),
		register:  newRegisterForm(),
		home:      newHomeModel(),
		projects:  newProjectsModel(theme),
		sessions:  newSessionsModel(theme),
	}

	// A restored credential lands on home; everyone else on login.
	a.route = a.guard.Resolve(nav.Fallback(ids.Identity()))
	return a
}

// Init starts cursor blinking and loads the initial view's data.
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.enterCmd(a.route))
}

// =============================================================================
// NAVIGATION
// =============================================================================

// navigate moves to target, letting the guard redirect when access is
// denied. Unknown targets fall back before the guard runs.
func (a *App) navigate(target nav.Route) tea.Cmd {
	if !target.Known() {
		target = nav.Fallback(a.ids.Identity())
	}

	var cmds []tea.Cmd
	dec := a.guard.Check(target)
	if !dec.Allowed {
		switch dec.Reason {
		case nav.DeniedInsufficientRole:
			cmds = append(cmds, a.toasts.Push(components.NewErrorToast("administrator access required")))
		default:
			cmds = append(cmds, a.toasts.Push(components.NewStatusToast("log in to continue")))
		}
		target = dec.Redirect
	}

	a.route = target
	cmds = append(cmds, a.enterCmd(target))
	return tea.Batch(cmds...)
}

// enterCmd prepares a view on entry and returns its data-loading
// command, if any.
func (a *App) enterCmd(route nav.Route) tea.Cmd {
	switch route {
	case nav.RouteLogin:
		a.login.reset()
		return nil
	case nav.RouteRegister:
		a.register.reset()
		return nil
	case nav.RouteHome:
		a.home.reset()
		return a.loadHistoryCmd()
	case nav.RouteProjects:
		return a.loadProjectsCmd()
	case nav.RouteSessions:
		return a.loadSessionsCmd()
	default:
		return nil
	}
}

// cycleTab moves to the adjacent navigable view. The surface set comes
// from a fresh snapshot, so a stale tab can never be reached.
func (a *App) cycleTab(delta int) tea.Cmd {
	routes := nav.Surfaces(a.ids.Identity())
	if len(routes) == 0 {
		return nil
	}
	idx := 0
	for i, r := range routes {
		if r == a.route {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(routes)) % len(routes)
	return a.navigate(routes[idx])
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.theme.SetSize(msg.Width, msg.Height)
		a.header.SetWidth(msg.Width)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.NextTab):
			return a, a.cycleTab(1)
		case key.Matches(msg, a.keys.PrevTab):
			return a, a.cycleTab(-1)
		case key.Matches(msg, a.keys.Logout):
			return a, a.logout()
		}
		return a, a.updateRoute(msg)

	case authDoneMsg:
		return a, a.handleAuthDone(msg)

	case projectsLoadedMsg, analyzeDoneMsg:
		return a, a.projects.handle(a, msg)

	case sessionsLoadedMsg, sessionCreatedMsg, sessionClosedMsg:
		return a, a.sessions.handle(a, msg)

	case sessionJoinedMsg, historyLoadedMsg:
		return a, a.home.handle(a, msg)

	case historyRecordedMsg:
		if msg.err != nil {
			return a, a.toasts.Push(components.NewErrorToast("could not record analysis locally"))
		}
		return a, nil

	default:
		a.toasts.Update(msg)
		return a, a.updateRoute(msg)
	}
}

// updateRoute delegates a message to the active view.
func (a *App) updateRoute(msg tea.Msg) tea.Cmd {
	switch a.route {
	case nav.RouteLogin:
		return a.login.update(a, msg)
	case nav.RouteRegister:
		return a.register.update(a, msg)
	case nav.RouteHome:
		return a.home.update(a, msg)
	case nav.RouteProjects:
		return a.projects.update(a, msg)
	case nav.RouteSessions:
		return a.sessions.update(a, msg)
	default:
		return nil
	}
}

// logout clears the identity, removes any persisted credential, and
// re-resolves the current route, which lands on login.
func (a *App) logout() tea.Cmd {
	if !a.ids.IsAuthenticated() {
		return nil
	}
	a.store.Logout()
	if a.creds != nil {
		if err := a.creds.Clear(); err != nil {
			return tea.Batch(
				a.toasts.Push(components.NewErrorToast("could not clear saved login")),
				a.navigate(a.route),
			)
		}
	}
	return tea.Batch(
		a.toasts.Push(components.NewStatusToast("logged out")),
		a.navigate(a.route),
	)
}

// =============================================================================
// AUTH RESULT HANDLING
// =============================================================================

// handleAuthDone commits a resolved login/register call through its
// attempt handle. A superseded attempt is dropped silently: whatever
// the user did afterwards wins.
func (a *App) handleAuthDone(msg authDoneMsg) tea.Cmd {
	form := &a.login
	if msg.register {
		a.register.submitting = false
	} else {
		form.submitting = false
	}

	if msg.err != nil {
		text := friendlyAuthError(msg.err, msg.register)
		if msg.register {
			a.register.errText = text
		} else {
			form.errText = text
		}
		return nil
	}

	applied, err := msg.attempt.Commit(msg.creds.Token, msg.creds.Role)
	if err != nil {
		return a.toasts.Push(components.NewErrorToast("login failed: " + err.Error()))
	}
	if !applied {
		return nil
	}

	var cmds []tea.Cmd
	if a.cfg.Session.RememberLogin && a.creds != nil {
		if err := a.creds.Save(a.ids.Identity()); err != nil {
			cmds = append(cmds, a.toasts.Push(components.NewErrorToast("could not save login")))
		}
	}
	if !msg.creds.RoleRecognized {
		cmds = append(cmds, a.toasts.Push(components.NewErrorToast("unrecognized role, privileged views unavailable")))
	}
	if msg.register {
		cmds = append(cmds, a.toasts.Push(components.NewSuccessToast("account created")))
	} else {
		cmds = append(cmds, a.toasts.Push(components.NewSuccessToast("logged in")))
	}
	cmds = append(cmds, a.navigate(nav.RouteHome))
	return tea.Batch(cmds...)
}

// friendlyAuthError maps auth failures to short form-level messages.
func friendlyAuthError(err error, register bool) string {
	switch {
	case errors.Is(err, api.ErrUsernameTaken):
		return "username already taken"
	case errors.Is(err, api.ErrInvalidCredentials):
		if register {
			return "registration rejected"
		}
		return "invalid username or password"
	default:
		return "server unreachable: " + err.Error()
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (a *App) View() string {
	id := a.ids.Identity()

	header := a.header.View(nav.Surfaces(id), a.route)

	var body string
	switch a.route {
	case nav.RouteLogin:
		body = a.login.view(a)
	case nav.RouteRegister:
		body = a.register.view(a)
	case nav.RouteHome:
		body = a.home.view(a)
	case nav.RouteProjects:
		body = a.projects.view(a)
	case nav.RouteSessions:
		body = a.sessions.view(a)
	}
	body = a.theme.Container.Render(body)

	status := a.statusBar.View(id, a.shortcuts())

	parts := []string{header, body}
	if t := a.toasts.View(); t != "" {
		parts = append(parts, t)
	}
	parts = append(parts, status)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// shortcuts returns the status bar hints for the active view.
func (a *App) shortcuts() []components.Shortcut {
	common := []components.Shortcut{
		{Key: "C-n", Desc: "switch view"},
		{Key: "C-c", Desc: "quit"},
	}
	switch a.route {
	case nav.RouteLogin, nav.RouteRegister:
		return append([]components.Shortcut{
			{Key: "Tab", Desc: "next field"},
			{Key: "Enter", Desc: "submit"},
		}, common...)
	case nav.RouteProjects:
		return append([]components.Shortcut{
			{Key: "a", Desc: "analyze"},
			{Key: "r", Desc: "refresh"},
			{Key: "C-x", Desc: "log out"},
		}, common...)
	case nav.RouteSessions:
		return append([]components.Shortcut{
			{Key: "n", Desc: "new"},
			{Key: "c", Desc: "close"},
			{Key: "r", Desc: "refresh"},
		}, common...)
	default:
		return append([]components.Shortcut{
			{Key: "C-x", Desc: "log out"},
		}, common...)
	}
}
