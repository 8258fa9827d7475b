// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package identity

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// =============================================================================
// IDENTITY VALUE
// =============================================================================

// Identity is the {token, role} pair for the current user. The zero
// value is the unauthenticated state.
type Identity struct {
	// Token is the opaque bearer credential issued by the backend.
	Token string

	// Role is the privilege classification issued alongside the token.
	Role Role
}

// IsZero reports whether the identity is the unauthenticated state.
func (id Identity) IsZero() bool {
	return id.Token == ""
}

// ErrEmptyToken is returned by Login when called without a credential.
// Login never validates the credential's authenticity - that already
// happened on the backend - but an empty token would break the pairing
// invariant, so it is rejected.
var ErrEmptyToken = errors.New("identity: login with empty token")

// =============================================================================
// STORE
// =============================================================================

// Store holds the current Identity. It is the only writer path; all
// mutations replace the whole pair atomically under one mutex, so
// snapshots are never torn.
type Store struct {
	mu      sync.Mutex
	current Identity

	// attempt tags the most recent in-flight login attempt. Any direct
	// Login or Logout clears it, which fences out late resolutions.
	attempt string

	// rev increments on every applied change so views can cheaply
	// detect that the identity moved between reads.
	rev uint64
}

// NewStore returns a store in the unauthenticated state.
func NewStore() *Store {
	return &Store{}
}

// NewStoreWith returns a store seeded with an initial Identity, e.g.
// one restored by the storage collaborator. A partial identity (token
// without recognized role is allowed, role without token is not) is
// coerced back to the zero state to preserve the pairing invariant.
func NewStoreWith(initial Identity) *Store {
	if initial.IsZero() {
		initial = Identity{}
	}
	return &Store{current: initial}
}

// Login atomically replaces the Identity with {token, role}. The role
// may be RoleUnknown (backend sent an unrecognized value); the user is
// then authenticated but gets no role-specific surface.
func (s *Store) Login(token string, role Role) error {
	if token == "" {
		return ErrEmptyToken
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(Identity{Token: token, Role: role})
	return nil
}

// Logout atomically resets the Identity to the unauthenticated state.
// Idempotent: logging out while already unauthenticated is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current.IsZero() && s.attempt == "" {
		return
	}
	s.apply(Identity{})
}

// Snapshot returns the Identity at call time.
func (s *Store) Snapshot() Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Rev returns the change counter. It moves on every applied Login and
// Logout, including committed attempts.
func (s *Store) Rev() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rev
}

// apply replaces the identity and supersedes any in-flight attempt.
// Callers must hold s.mu.
func (s *Store) apply(id Identity) {
	s.current = id
	s.attempt = ""
	s.rev++
}

// =============================================================================
// LOGIN ATTEMPT FENCING
// =============================================================================

// Attempt is a handle for one in-flight login network call. The store
// honors a Commit only while the attempt is still the newest thing that
// happened to the store; a later Begin, Login or Logout supersedes it
// and its Commit becomes a silent no-op.
type Attempt struct {
	store *Store
	id    string
}

// Begin registers a new login attempt and supersedes any earlier
// outstanding attempt. Call it before issuing the auth network call.
func (s *Store) Begin() *Attempt {
	id := uuid.NewString()
	s.mu.Lock()
	s.attempt = id
	s.mu.Unlock()
	return &Attempt{store: s, id: id}
}

// Commit applies the login result if this attempt is still current.
// It reports whether the identity was actually replaced. A stale
// commit is discarded without error - the newer Identity wins.
func (a *Attempt) Commit(token string, role Role) (bool, error) {
	if token == "" {
		return false, ErrEmptyToken
	}
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	if a.store.attempt != a.id {
		return false, nil
	}
	a.store.apply(Identity{Token: token, Role: role})
	return true, nil
}

// Active reports whether the attempt is still the current one.
func (a *Attempt) Active() bool {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	return a.store.attempt == a.id
}
