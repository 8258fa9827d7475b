// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/morganforge/splasp-tui/internal/identity"
)

func TestSurfaces_Unauthenticated(t *testing.T) {
	got := Surfaces(identity.Identity{})
	assert.ElementsMatch(t, []Route{RouteLogin, RouteRegister}, got,
		"unauthenticated surface is exactly login+register, home excluded")
}

func TestSurfaces_UserRole(t *testing.T) {
	got := Surfaces(identity.Identity{Token: "t", Role: identity.RoleUser})
	assert.ElementsMatch(t, []Route{RouteHome, RouteProjects}, got)
}

func TestSurfaces_AdminRole(t *testing.T) {
	got := Surfaces(identity.Identity{Token: "t", Role: identity.RoleAdmin})
	assert.ElementsMatch(t, []Route{RouteHome, RouteSessions}, got)
}

// A token with an unrecognized role authenticates but activates only
// the generic surface - the malformed role value grants nothing.
func TestSurfaces_UnknownRoleFailsClosed(t *testing.T) {
	got := Surfaces(identity.Identity{Token: "t", Role: identity.RoleUnknown})
	assert.ElementsMatch(t, []Route{RouteHome}, got)
}

func TestVisible(t *testing.T) {
	admin := identity.Identity{Token: "t", Role: identity.RoleAdmin}
	assert.True(t, Visible(admin, RouteSessions))
	assert.False(t, Visible(admin, RouteProjects))
	assert.False(t, Visible(identity.Identity{}, RouteHome))
}

func TestFallback(t *testing.T) {
	assert.Equal(t, RouteLogin, Fallback(identity.Identity{}))
	assert.Equal(t, RouteHome, Fallback(identity.Identity{Token: "t", Role: identity.RoleUser}))
}
