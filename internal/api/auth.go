// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/morganforge/splasp-tui/internal/identity"
)

// =============================================================================
// AUTHENTICATION CALLS
// =============================================================================

// Credentials is the normalized result of a successful login or
// registration: the bearer token plus the parsed role. The backend's
// raw access_token field never leaves this package.
type Credentials struct {
	Token string
	Role  identity.Role

	// RoleRecognized is false when the backend sent a role outside the
	// closed enumeration. The credential is still usable; the role
	// simply activates no privileged surface.
	RoleRecognized bool
}

// authRequest is the login/register request body.
type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// authResponse is the backend's auth envelope.
type authResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
}

// Login authenticates username/password against the backend and
// returns the issued credential pair. It does not touch the identity
// store - the caller commits the result through its login attempt so
// superseded responses are discarded.
func (c *Client) Login(ctx context.Context, username, password string) (*Credentials, error) {
	return c.authenticate(ctx, "/api/auth/login", username, password)
}

// Register creates a new account and returns the issued credential
// pair, which logs the new user straight in.
func (c *Client) Register(ctx context.Context, username, password string) (*Credentials, error) {
	return c.authenticate(ctx, "/api/auth/register", username, password)
}

func (c *Client) authenticate(ctx context.Context, path, username, password string) (*Credentials, error) {
	build, err := c.jsonRequest(ctx, http.MethodPost, path, authRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var resp authResponse
	if err := c.do(ctx, build, &resp); err != nil {
		return nil, mapAuthError(path, err)
	}

	if resp.AccessToken == "" {
		return nil, &APIError{Status: http.StatusOK, Detail: "auth response without access token"}
	}

	role, ok := identity.ParseRole(resp.Role)
	return &Credentials{Token: resp.AccessToken, Role: role, RoleRecognized: ok}, nil
}

// mapAuthError refines the generic 400 the backend uses for both
// rejected logins and duplicate usernames.
func mapAuthError(path string, err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest {
		return err
	}
	if strings.HasSuffix(path, "/register") {
		return fmt.Errorf("%w: %s", ErrUsernameTaken, apiErr.Detail)
	}
	return fmt.Errorf("%w: %s", ErrInvalidCredentials, apiErr.Detail)
}
