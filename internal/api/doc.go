// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client for the splasp platform
// backend: authentication, Snap! project analysis uploads, and timed
// session management.
//
// Every outgoing request passes through a bearer transport that reads
// the current credential from a TokenSource at send time. When a token
// is held it is attached as an Authorization header; when not, the
// request goes out unauthenticated and the server decides whether that
// is acceptable. The transport performs no retries and no validation
// of its own.
//
// # Key Types
//
//   - Client: platform API client with retry and backoff
//   - TokenSource: per-request credential reader (identity.View fits)
//   - APIError: typed backend error with HTTP status and detail
//
// # Usage
//
//	client := api.NewClient(cfg.Server.URL, view)
//	creds, err := client.Login(ctx, "ada", "hunter2")
//	if err == nil {
//	    applied, _ := attempt.Commit(creds.Token, creds.Role)
//	    _ = applied
//	}
//
// # Security
//
// Authorization values are never logged; request logging records only
// method, path, status and duration.
package api
