// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package identity holds the client-side source of truth for who is
// logged in to the splasp platform and with what role.
//
// The store is the single writable home of the {token, role} pair. Both
// fields are set together by Login and cleared together by Logout; no
// other code path mutates them, so a reader can never observe a token
// without a role or a role without a token.
//
// # Key Types
//
//   - Store: mutable Identity holder with Login/Logout/Snapshot
//   - View: read-only accessor used by views, guards and the API client
//   - Attempt: fencing handle for in-flight login network calls
//   - Role: closed privilege enumeration (ADMIN, USER)
//
// # Usage
//
// Wire a store at startup and hand the View to everything that reads:
//
//	store := identity.NewStore()
//	view := identity.NewView(store)
//
//	attempt := store.Begin()
//	// ... call the auth endpoint ...
//	attempt.Commit(resp.Token, resp.Role) // discarded if superseded
//
// # Concurrency
//
// All operations are safe for concurrent use. A late-arriving login
// response never overwrites a newer Login or Logout: Begin tags each
// attempt and Commit applies only while that tag is still current.
package identity
