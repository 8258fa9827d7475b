// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nav decides which routes of the splasp client the current
// identity may reach and which navigation entries are visible.
//
// Guards never raise errors: an unauthorized navigation attempt is
// surfaced as a redirect to the login route, whether the user had no
// identity at all or the wrong role. The two cases are distinguished
// only in the decision's Reason field for telemetry.
//
// # Key Types
//
//   - Route: closed enumeration of navigable destinations
//   - Guard: per-navigation authorization check over one Identity snapshot
//   - Decision: allow-or-redirect outcome with a denial reason
//
// # Usage
//
//	guard := nav.NewGuard(view)
//	d := guard.Check(nav.RouteSessions)
//	if !d.Allowed {
//	    // navigate to d.Redirect instead
//	}
//
// Surface composition is a pure function so it can be tested without a
// store:
//
//	visible := nav.Surfaces(view.Identity())
package nav
