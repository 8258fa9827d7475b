// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/morganforge/splasp-tui/internal/identity"
)

func TestCheckIdentity_PublicRoutes(t *testing.T) {
	for _, route := range []Route{RouteLogin, RouteRegister} {
		d := CheckIdentity(route, identity.Identity{})
		assert.True(t, d.Allowed, "%s should be public", route)
	}
}

func TestCheckIdentity_AuthenticatedRoutes(t *testing.T) {
	for _, route := range []Route{RouteHome, RouteProjects} {
		d := CheckIdentity(route, identity.Identity{})
		assert.False(t, d.Allowed)
		assert.Equal(t, RouteLogin, d.Redirect)
		assert.Equal(t, DeniedUnauthenticated, d.Reason)

		d = CheckIdentity(route, identity.Identity{Token: "t", Role: identity.RoleUser})
		assert.True(t, d.Allowed, "%s should render for any authenticated identity", route)
	}
}

// The admin guard matrix: no token redirects, USER token redirects,
// ADMIN token renders. Both denials land on login.
func TestCheckIdentity_AdminRoute(t *testing.T) {
	d := CheckIdentity(RouteSessions, identity.Identity{})
	assert.False(t, d.Allowed)
	assert.Equal(t, RouteLogin, d.Redirect)
	assert.Equal(t, DeniedUnauthenticated, d.Reason)

	d = CheckIdentity(RouteSessions, identity.Identity{Token: "t", Role: identity.RoleUser})
	assert.False(t, d.Allowed)
	assert.Equal(t, RouteLogin, d.Redirect)
	assert.Equal(t, DeniedInsufficientRole, d.Reason)

	d = CheckIdentity(RouteSessions, identity.Identity{Token: "t", Role: identity.RoleAdmin})
	assert.True(t, d.Allowed)
}

func TestCheckIdentity_UnknownRoleOnAdminRoute(t *testing.T) {
	d := CheckIdentity(RouteSessions, identity.Identity{Token: "t", Role: identity.RoleUnknown})
	assert.False(t, d.Allowed)
	assert.Equal(t, DeniedInsufficientRole, d.Reason)
}

func TestGuard_ReadsLiveIdentity(t *testing.T) {
	store := identity.NewStore()
	guard := NewGuard(identity.NewView(store))

	assert.False(t, guard.Check(RouteHome).Allowed)

	// The guard must reflect a login that happened after it was
	// constructed - it reads snapshots, not a captured value.
	_ = store.Login("t", identity.RoleAdmin)
	assert.True(t, guard.Check(RouteHome).Allowed)
	assert.True(t, guard.Check(RouteSessions).Allowed)

	store.Logout()
	assert.False(t, guard.Check(RouteSessions).Allowed)
}

func TestGuard_Resolve(t *testing.T) {
	store := identity.NewStore()
	guard := NewGuard(identity.NewView(store))

	// Unauthenticated: protected and unknown destinations land on login.
	assert.Equal(t, RouteLogin, guard.Resolve(RouteProjects))
	assert.Equal(t, RouteLogin, guard.Resolve(Route(42)))
	assert.Equal(t, RouteRegister, guard.Resolve(RouteRegister))

	_ = store.Login("t", identity.RoleUser)
	assert.Equal(t, RouteProjects, guard.Resolve(RouteProjects))
	assert.Equal(t, RouteLogin, guard.Resolve(RouteSessions), "wrong role redirects like no identity")
	assert.Equal(t, RouteHome, guard.Resolve(Route(42)), "catch-all lands on home when authenticated")
}
