// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package identity

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// STORE BASICS
// =============================================================================

func TestNewStore_Unauthenticated(t *testing.T) {
	s := NewStore()
	snap := s.Snapshot()

	assert.True(t, snap.IsZero())
	assert.Equal(t, RoleUnknown, snap.Role)
	assert.Empty(t, snap.Token)
}

func TestNewStoreWith_SeedsIdentity(t *testing.T) {
	s := NewStoreWith(Identity{Token: "t0", Role: RoleUser})
	snap := s.Snapshot()

	require.False(t, snap.IsZero())
	assert.Equal(t, "t0", snap.Token)
	assert.Equal(t, RoleUser, snap.Role)
}

func TestStore_LoginReplacesIdentity(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.Login("t1", RoleAdmin))
	assert.Equal(t, Identity{Token: "t1", Role: RoleAdmin}, s.Snapshot())

	require.NoError(t, s.Login("t2", RoleUser))
	assert.Equal(t, Identity{Token: "t2", Role: RoleUser}, s.Snapshot())
}

func TestStore_LoginEmptyToken(t *testing.T) {
	s := NewStore()
	err := s.Login("", RoleUser)

	require.ErrorIs(t, err, ErrEmptyToken)
	assert.True(t, s.Snapshot().IsZero(), "failed login must not mutate identity")
}

func TestStore_LogoutIdempotent(t *testing.T) {
	s := NewStore()

	// Logging out while already unauthenticated is a no-op.
	s.Logout()
	assert.True(t, s.Snapshot().IsZero())

	require.NoError(t, s.Login("t1", RoleUser))
	s.Logout()
	s.Logout()
	assert.True(t, s.Snapshot().IsZero())
}

// The pairing invariant: for any sequence of login/logout calls the
// store never holds a token without a role being set alongside it, and
// "authenticated" always equals "last call was a login".
func TestStore_PairingInvariant(t *testing.T) {
	s := NewStore()
	v := NewView(s)

	steps := []struct {
		login bool
		token string
		role  Role
	}{
		{login: true, token: "a", role: RoleUser},
		{login: false},
		{login: false},
		{login: true, token: "b", role: RoleAdmin},
		{login: true, token: "c", role: RoleUnknown},
		{login: false},
	}

	for i, step := range steps {
		if step.login {
			require.NoError(t, s.Login(step.token, step.role))
		} else {
			s.Logout()
		}

		snap := s.Snapshot()
		assert.Equal(t, step.login, v.IsAuthenticated(), "step %d", i)
		if snap.IsZero() {
			assert.Equal(t, RoleUnknown, snap.Role, "step %d: role without token", i)
		} else {
			assert.Equal(t, step.role, snap.Role, "step %d", i)
		}
	}
}

func TestStore_RevMovesOnChange(t *testing.T) {
	s := NewStore()
	r0 := s.Rev()

	require.NoError(t, s.Login("t1", RoleUser))
	r1 := s.Rev()
	assert.Greater(t, r1, r0)

	s.Logout()
	assert.Greater(t, s.Rev(), r1)

	// Idempotent logout does not move the counter.
	r2 := s.Rev()
	s.Logout()
	assert.Equal(t, r2, s.Rev())
}

// =============================================================================
// ACCESSOR
// =============================================================================

func TestView_ReflectsStoreAtReadTime(t *testing.T) {
	s := NewStore()
	v := NewView(s)

	assert.False(t, v.IsAuthenticated())
	assert.Empty(t, v.Token())

	require.NoError(t, v.Login("t1", RoleAdmin))
	assert.True(t, v.IsAuthenticated())
	assert.Equal(t, "t1", v.Token())
	assert.Equal(t, RoleAdmin, v.Role())

	v.Logout()
	assert.False(t, v.IsAuthenticated())
	assert.Equal(t, RoleUnknown, v.Role())
}

// =============================================================================
// LOGIN ATTEMPT FENCING
// =============================================================================

func TestAttempt_CommitApplies(t *testing.T) {
	s := NewStore()
	a := s.Begin()

	applied, err := a.Commit("t1", RoleUser)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, Identity{Token: "t1", Role: RoleUser}, s.Snapshot())
}

// Two in-flight logins: the slow one started first, the fast one
// resolved first. The late resolution of the superseded attempt must
// not overwrite the newer identity.
func TestAttempt_StaleCommitDiscarded(t *testing.T) {
	s := NewStore()

	slow := s.Begin()
	fast := s.Begin()

	applied, err := fast.Commit("fast", RoleAdmin)
	require.NoError(t, err)
	require.True(t, applied)

	applied, err = slow.Commit("slow", RoleUser)
	require.NoError(t, err)
	assert.False(t, applied, "superseded attempt must be discarded")
	assert.Equal(t, Identity{Token: "fast", Role: RoleAdmin}, s.Snapshot())
}

func TestAttempt_LogoutFencesPendingCommit(t *testing.T) {
	s := NewStore()

	pending := s.Begin()
	fast := s.Begin()

	_, err := fast.Commit("fast", RoleUser)
	require.NoError(t, err)

	// The user logs out after the fast login resolved; the still
	// pending slow response must leave the store unauthenticated.
	s.Logout()

	applied, err := pending.Commit("slow", RoleUser)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.True(t, s.Snapshot().IsZero())
}

func TestAttempt_DirectLoginSupersedes(t *testing.T) {
	s := NewStore()
	a := s.Begin()

	require.NoError(t, s.Login("direct", RoleUser))
	assert.False(t, a.Active())

	applied, err := a.Commit("late", RoleAdmin)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, "direct", s.Snapshot().Token)
}

func TestAttempt_CommitEmptyToken(t *testing.T) {
	s := NewStore()
	a := s.Begin()

	_, err := a.Commit("", RoleUser)
	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.True(t, a.Active(), "rejected commit must not consume the attempt")
}

// =============================================================================
// CONCURRENCY
// =============================================================================

func TestStore_ConcurrentReadersAndWriter(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = s.Login("tok", RoleUser)
			s.Logout()
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				snap := s.Snapshot()
				// Never a torn read: a held token always carries the
				// role that was written with it.
				if snap.Token != "" && snap.Role != RoleUser {
					t.Errorf("torn snapshot: %+v", snap)
					return
				}
			}
		}()
	}

	wg.Wait()
}
