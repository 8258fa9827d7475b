// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package identity

// =============================================================================
// SESSION ACCESSOR
// =============================================================================

// View is the read-only accessor over a Store. It holds no state of
// its own and always reflects the store at read time. Presentation
// code, the navigation guard and the request authenticator all read
// identity through a View so the "authenticated" derivation lives in
// exactly one place.
type View struct {
	store *Store
}

// NewView returns an accessor over the given store.
func NewView(s *Store) View {
	return View{store: s}
}

// IsAuthenticated reports whether a token is currently held. This is
// the single definition of "logged in" for the whole client.
func (v View) IsAuthenticated() bool {
	return !v.store.Snapshot().IsZero()
}

// Token returns the current bearer credential, or "" when logged out.
// The API transport calls this per request, never caching the value.
func (v View) Token() string {
	return v.store.Snapshot().Token
}

// Role returns the current role, RoleUnknown when logged out.
func (v View) Role() Role {
	return v.store.Snapshot().Role
}

// Identity returns the full snapshot, guaranteed untorn.
func (v View) Identity() Identity {
	return v.store.Snapshot()
}

// Login forwards to the store unchanged.
func (v View) Login(token string, role Role) error {
	return v.store.Login(token, role)
}

// Logout forwards to the store unchanged.
func (v View) Logout() {
	v.store.Logout()
}
