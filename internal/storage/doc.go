// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides credential persistence for the splasp client.
//
// The identity store in internal/identity is memory-only. When the user
// opts into "remember login", this package saves the current identity to
// a JSON file under ~/.splasp/ and seeds the store from it on startup.
//
// # Key Types
//
//   - CredentialStore: save/load/clear for a persisted identity
//
// # Usage
//
//	cs, _ := storage.NewCredentialStore()
//	if id, err := cs.Load(); err == nil {
//	    store = identity.NewStoreWith(id)
//	}
//
// Files are written atomically with 0600 permissions; a corrupt or
// missing file degrades to a logged-out start, never an error dialog.
package storage
