// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the splasp
// TUI.
//
// # Key Types
//
//   - Header: title bar with role-aware navigation tabs
//   - StatusBar: bottom bar with login state and shortcuts
//   - Toast: non-blocking auto-dismissing notifications
//   - Table: display-width-aware text tables
//
// Components are pure renderers. They hold no domain state; the views
// feed them the current identity snapshot on every frame, so what is
// on screen always reflects the live login state.
package components
