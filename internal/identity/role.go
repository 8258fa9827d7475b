// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package identity

import "strings"

// =============================================================================
// ROLE ENUMERATION
// =============================================================================

// Role is the closed privilege classification issued by the platform
// backend. Anything outside the enumeration parses to RoleUnknown,
// which authenticates but activates no role-specific surface.
type Role int

const (
	// RoleUnknown is the absent or unrecognized role. It is the role of
	// the unauthenticated Identity and of any identity whose backend
	// role value fell outside the closed enumeration.
	RoleUnknown Role = iota

	// RoleUser is a regular platform user.
	RoleUser

	// RoleAdmin manages timed analysis sessions.
	RoleAdmin
)

// String returns the wire spelling of the role.
func (r Role) String() string {
	switch r {
	case RoleUser:
		return "USER"
	case RoleAdmin:
		return "ADMIN"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// ParseRole maps a backend role value onto the closed enumeration.
// The backend upper-cases roles on the way out, but parsing stays
// case-insensitive. Unrecognized values fail closed to RoleUnknown
// with ok=false rather than granting any privilege.
func ParseRole(s string) (Role, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "USER":
		return RoleUser, true
	case "ADMIN":
		return RoleAdmin, true
	default:
		return RoleUnknown, false
	}
}
