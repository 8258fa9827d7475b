// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nav

import "github.com/morganforge/splasp-tui/internal/identity"

// =============================================================================
// ROLE-CONDITIONED SURFACES
// =============================================================================

// Surfaces returns the set of routes visible for the given identity.
//
// Three independent set tests are evaluated and unioned: the
// unauthenticated surface, the generic authenticated surface, and the
// role-specific surface. Role surfaces are additive to the generic
// authenticated surface, never a replacement for it. An unrecognized
// role contributes nothing, so a malformed backend role value grants
// no privileged entry.
func Surfaces(id identity.Identity) []Route {
	var routes []Route

	// Unauthenticated surface.
	if id.IsZero() {
		routes = append(routes, RouteLogin, RouteRegister)
	}

	// Generic authenticated surface.
	if !id.IsZero() {
		routes = append(routes, RouteHome)
	}

	// Role-specific surface. Exhaustive over the closed enumeration:
	// extending Role means extending this switch.
	switch id.Role {
	case identity.RoleUser:
		if !id.IsZero() {
			routes = append(routes, RouteProjects)
		}
	case identity.RoleAdmin:
		if !id.IsZero() {
			routes = append(routes, RouteSessions)
		}
	case identity.RoleUnknown:
		// No role surface. Fail closed.
	}

	return routes
}

// Visible reports whether route is in the surface set for id.
func Visible(id identity.Identity, route Route) bool {
	for _, r := range Surfaces(id) {
		if r == route {
			return true
		}
	}
	return false
}

// Fallback is the catch-all destination for unmatched or denied
// navigation: home when authenticated, login otherwise.
func Fallback(id identity.Identity) Route {
	if id.IsZero() {
		return RouteLogin
	}
	return RouteHome
}
