// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/morganforge/splasp-tui/internal/identity"
	"github.com/morganforge/splasp-tui/internal/util"
)

// =============================================================================
// STORED CREDENTIAL TYPE
// =============================================================================

// storedCredential is the on-disk shape of a persisted identity. The
// role is stored as its canonical string and re-parsed on load, so a
// file written by a newer client with a role this build does not know
// degrades to a logged-out start.
type storedCredential struct {
	Token   string    `json:"token"`
	Role    string    `json:"role"`
	SavedAt time.Time `json:"saved_at"`
}

// =============================================================================
// CREDENTIAL STORE
// =============================================================================

// CredentialStore handles identity persistence.
type CredentialStore struct {
	// Path is the credentials file location
	// Default: ~/.splasp/credentials.json
	Path string
}

// NewCredentialStore creates a store at the default location.
func NewCredentialStore() (*CredentialStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &CredentialStore{
		Path: filepath.Join(homeDir, ".splasp", "credentials.json"),
	}, nil
}

// NewCredentialStoreWithPath creates a store with a custom file path.
func NewCredentialStoreWithPath(path string) *CredentialStore {
	return &CredentialStore{Path: path}
}

// =============================================================================
// SAVE / LOAD / CLEAR
// =============================================================================

// Save persists the identity. Saving a zero identity is equivalent to
// Clear, so callers can mirror every store transition without branching.
func (s *CredentialStore) Save(id identity.Identity) error {
	if id.IsZero() {
		return s.Clear()
	}

	data, err := json.MarshalIndent(storedCredential{
		Token:   id.Token,
		Role:    id.Role.String(),
		SavedAt: time.Now(),
	}, "", "  ")
	if err != nil {
		return err
	}

	// RELIABILITY: Atomic write with fsync prevents a torn credential
	// file on crash. Owner-only permissions, the token is a secret.
	return util.AtomicWriteFile(s.Path, data, 0600)
}

// Load reads the persisted identity. A missing, unreadable, or
// malformed file returns ErrNoCredentials; the caller starts logged out.
func (s *CredentialStore) Load() (identity.Identity, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return identity.Identity{}, ErrNoCredentials
	}

	var cred storedCredential
	if err := json.Unmarshal(data, &cred); err != nil {
		return identity.Identity{}, ErrNoCredentials
	}
	if cred.Token == "" {
		return identity.Identity{}, ErrNoCredentials
	}

	role, ok := identity.ParseRole(cred.Role)
	if !ok {
		return identity.Identity{}, ErrNoCredentials
	}

	return identity.Identity{Token: cred.Token, Role: role}, nil
}

// Clear removes the credentials file. Clearing an absent file is not an
// error.
func (s *CredentialStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrNoCredentials is returned when no usable credential is on disk.
// Use errors.Is(err, ErrNoCredentials) to check for this error.
var ErrNoCredentials = &CredentialError{Message: "no stored credentials"}

// CredentialError represents a credential storage error.
type CredentialError struct {
	Message string
}

// Error implements the error interface.
func (e *CredentialError) Error() string {
	return e.Message
}

// Is implements errors.Is support for comparing credential errors.
func (e *CredentialError) Is(target error) bool {
	t, ok := target.(*CredentialError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}
