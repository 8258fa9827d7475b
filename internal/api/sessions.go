// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// =============================================================================
// SESSION TYPES
// =============================================================================

// Session is one timed analysis session. Students join by code;
// administrators create and close them.
type Session struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsActive  bool      `json:"isActive"`
}

// createSessionRequest is the admin session creation body.
type createSessionRequest struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// joinSessionRequest carries the join code.
type joinSessionRequest struct {
	Code string `json:"code"`
}

// =============================================================================
// SESSION CALLS
// =============================================================================

// CreateSession creates a timed session. Admin only; the backend
// rejects other roles with 403.
func (c *Client) CreateSession(ctx context.Context, name string, start, end time.Time) (*Session, error) {
	build, err := c.jsonRequest(ctx, http.MethodPost, "/api/sessions/", createSessionRequest{
		Name:      name,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, err
	}

	var session Session
	if err := c.do(ctx, build, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// JoinSession joins the session identified by code.
func (c *Client) JoinSession(ctx context.Context, code string) (*Session, error) {
	build, err := c.jsonRequest(ctx, http.MethodPost, "/api/sessions/join", joinSessionRequest{Code: code})
	if err != nil {
		return nil, err
	}

	var session Session
	if err := c.do(ctx, build, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// CloseSession deactivates a session. Admin only.
func (c *Client) CloseSession(ctx context.Context, sessionID int) error {
	build, err := c.jsonRequest(ctx, http.MethodPatch, fmt.Sprintf("/api/sessions/%d", sessionID), nil)
	if err != nil {
		return err
	}
	return c.do(ctx, build, nil)
}

// ListSessions lists all sessions. Admin only.
func (c *Client) ListSessions(ctx context.Context) ([]Session, error) {
	build, err := c.jsonRequest(ctx, http.MethodGet, "/api/sessions/", nil)
	if err != nil {
		return nil, err
	}

	var sessions []Session
	if err := c.do(ctx, build, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
