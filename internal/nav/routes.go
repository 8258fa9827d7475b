// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nav

// =============================================================================
// ROUTES
// =============================================================================

// Route identifies one navigable destination in the client.
type Route int

const (
	// RouteLogin is the login form. It is also the redirect target for
	// every denied navigation attempt.
	RouteLogin Route = iota

	// RouteRegister is the account registration form.
	RouteRegister

	// RouteHome is the generic authenticated landing view.
	RouteHome

	// RouteProjects is the "my projects" list with the analyze flow.
	RouteProjects

	// RouteSessions is the admin sessions management view.
	RouteSessions
)

// String returns the route name used in key hints and telemetry.
func (r Route) String() string {
	switch r {
	case RouteLogin:
		return "login"
	case RouteRegister:
		return "register"
	case RouteHome:
		return "home"
	case RouteProjects:
		return "projects"
	case RouteSessions:
		return "sessions"
	default:
		return "unknown"
	}
}

// Known reports whether r is one of the declared routes.
func (r Route) Known() bool {
	switch r {
	case RouteLogin, RouteRegister, RouteHome, RouteProjects, RouteSessions:
		return true
	default:
		return false
	}
}
