// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nav

import "github.com/morganforge/splasp-tui/internal/identity"

// =============================================================================
// DENIAL REASONS
// =============================================================================

// DenialReason classifies why a navigation attempt was denied. Both
// reasons redirect to the same place; the distinction exists for
// telemetry only.
type DenialReason int

const (
	// DeniedNone means the attempt was allowed.
	DeniedNone DenialReason = iota

	// DeniedUnauthenticated means no identity was held.
	DeniedUnauthenticated

	// DeniedInsufficientRole means an identity was held but its role
	// does not reach the destination.
	DeniedInsufficientRole
)

// String returns the telemetry label for the reason.
func (d DenialReason) String() string {
	switch d {
	case DeniedUnauthenticated:
		return "unauthenticated"
	case DeniedInsufficientRole:
		return "insufficient-role"
	default:
		return "none"
	}
}

// =============================================================================
// DECISION
// =============================================================================

// Decision is the outcome of one guard check.
type Decision struct {
	// Allowed means the destination may render.
	Allowed bool

	// Redirect is the route to navigate to instead when denied.
	Redirect Route

	// Reason records why the attempt was denied.
	Reason DenialReason
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason DenialReason) Decision {
	return Decision{Redirect: RouteLogin, Reason: reason}
}

// =============================================================================
// GUARD
// =============================================================================

// Snapshotter supplies the Identity snapshot a guard check runs
// against. identity.View satisfies it.
type Snapshotter interface {
	Identity() identity.Identity
}

// Guard authorizes navigation attempts against the current identity.
// Each check reads exactly one snapshot, so a logout firing mid-check
// is either fully before or fully after it - never interleaved.
type Guard struct {
	ids Snapshotter
}

// NewGuard returns a guard reading identity through ids.
func NewGuard(ids Snapshotter) Guard {
	return Guard{ids: ids}
}

// Check evaluates whether the current identity may render route.
func (g Guard) Check(route Route) Decision {
	return CheckIdentity(route, g.ids.Identity())
}

// CheckIdentity is the pure form of Check, evaluated against an
// explicit snapshot.
func CheckIdentity(route Route, id identity.Identity) Decision {
	switch route {
	case RouteLogin, RouteRegister:
		// Public entry points.
		return allow()

	case RouteHome, RouteProjects:
		// Authenticated surface.
		return requireAuth(id)

	case RouteSessions:
		// Admin surface.
		return requireAdmin(id)

	default:
		// Unknown destinations are treated like the authenticated
		// surface; Resolve applies the catch-all before rendering.
		return requireAuth(id)
	}
}

// Resolve applies the guard plus the catch-all rule and returns the
// route that should actually render for a navigation attempt.
func (g Guard) Resolve(route Route) Route {
	id := g.ids.Identity()
	if !route.Known() {
		return Fallback(id)
	}
	if d := CheckIdentity(route, id); !d.Allowed {
		return d.Redirect
	}
	return route
}

// requireAuth allows any authenticated identity.
func requireAuth(id identity.Identity) Decision {
	if id.IsZero() {
		return deny(DeniedUnauthenticated)
	}
	return allow()
}

// requireAdmin allows only an authenticated ADMIN.
func requireAdmin(id identity.Identity) Decision {
	if id.IsZero() {
		return deny(DeniedUnauthenticated)
	}
	if id.Role != identity.RoleAdmin {
		return deny(DeniedInsufficientRole)
	}
	return allow()
}
