// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/morganforge/splasp-tui/internal/identity"
)

func newTestStore(t *testing.T) *CredentialStore {
	t.Helper()
	return NewCredentialStoreWithPath(filepath.Join(t.TempDir(), "credentials.json"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cs := newTestStore(t)

	want := identity.Identity{Token: "tok-abc", Role: identity.RoleAdmin}
	if err := cs.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := cs.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}

	info, err := os.Stat(cs.Path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("credentials file permissions = %o, want 0600", perm)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cs := newTestStore(t)

	_, err := cs.Load()
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("Load on missing file = %v, want ErrNoCredentials", err)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	cs := newTestStore(t)
	if err := os.WriteFile(cs.Path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := cs.Load()
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("Load on corrupt file = %v, want ErrNoCredentials", err)
	}
}

func TestLoadUnknownRole(t *testing.T) {
	cs := newTestStore(t)
	if err := os.WriteFile(cs.Path, []byte(`{"token":"t","role":"SUPERVISOR"}`), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := cs.Load()
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("Load with unknown role = %v, want ErrNoCredentials", err)
	}
}

func TestSaveZeroClears(t *testing.T) {
	cs := newTestStore(t)

	if err := cs.Save(identity.Identity{Token: "t", Role: identity.RoleUser}); err != nil {
		t.Fatal(err)
	}
	if err := cs.Save(identity.Identity{}); err != nil {
		t.Fatalf("Save zero identity failed: %v", err)
	}

	if _, err := cs.Load(); !errors.Is(err, ErrNoCredentials) {
		t.Error("credentials should be gone after saving zero identity")
	}
}

func TestClearIdempotent(t *testing.T) {
	cs := newTestStore(t)

	if err := cs.Clear(); err != nil {
		t.Errorf("Clear on missing file = %v, want nil", err)
	}
	if err := cs.Clear(); err != nil {
		t.Errorf("second Clear = %v, want nil", err)
	}
}
