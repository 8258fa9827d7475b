// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package views provides the Bubble Tea application model for the
// splasp TUI.
//
// # Key Types
//
//   - App: root model owning the identity store and the route
//   - loginForm / registerForm: credential entry
//   - homeModel: landing view with session join and local history
//   - projectsModel: project list, upload flow, analysis results
//   - sessionsModel: administrator session management
//
// # Navigation
//
// Every view switch goes through App.navigate, which asks the guard
// for a decision against a fresh identity snapshot. Denied targets
// redirect to the login view with a toast; unknown targets fall back
// to home or login. The tab row and the tab cycling order both derive
// from the same surface computation, so the reachable views and the
// visible tabs can never disagree.
//
// # Login resolution
//
// Credential submissions register an attempt on the identity store
// before the network call and commit through that attempt when the
// response arrives. A response superseded by a newer attempt, login,
// or logout is dropped without touching the store.
package views
