// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/morganforge/splasp-tui/internal/identity"
)

// captureAuth records the Authorization header of each request and
// answers with an empty JSON list.
func captureAuth(headers *[]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*headers = append(*headers, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}
}

func TestBearerTransport_AttachesCurrentToken(t *testing.T) {
	var headers []string
	srv := httptest.NewServer(captureAuth(&headers))
	defer srv.Close()

	store := identity.NewStore()
	client := NewClient(srv.URL, identity.NewView(store))

	if err := store.Login("t1", identity.RoleAdmin); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if _, err := client.MyProjects(context.Background()); err != nil {
		t.Fatalf("MyProjects failed: %v", err)
	}

	if len(headers) != 1 || headers[0] != "Bearer t1" {
		t.Errorf("Authorization headers = %v, want [Bearer t1]", headers)
	}
}

func TestBearerTransport_NoTokenNoHeader(t *testing.T) {
	var headers []string
	srv := httptest.NewServer(captureAuth(&headers))
	defer srv.Close()

	store := identity.NewStore()
	client := NewClient(srv.URL, identity.NewView(store))

	if _, err := client.MyProjects(context.Background()); err != nil {
		t.Fatalf("MyProjects failed: %v", err)
	}

	if len(headers) != 1 || headers[0] != "" {
		t.Errorf("Authorization headers = %v, want one empty entry", headers)
	}
}

// The transport must reflect logins and logouts that happen after the
// client was constructed: it reads the store per request, it does not
// capture a value.
func TestBearerTransport_ReadsLiveIdentity(t *testing.T) {
	var headers []string
	srv := httptest.NewServer(captureAuth(&headers))
	defer srv.Close()

	store := identity.NewStore()
	client := NewClient(srv.URL, identity.NewView(store))
	ctx := context.Background()

	if _, err := client.MyProjects(ctx); err != nil {
		t.Fatalf("request 1 failed: %v", err)
	}

	_ = store.Login("t1", identity.RoleUser)
	if _, err := client.MyProjects(ctx); err != nil {
		t.Fatalf("request 2 failed: %v", err)
	}

	_ = store.Login("t2", identity.RoleUser)
	if _, err := client.MyProjects(ctx); err != nil {
		t.Fatalf("request 3 failed: %v", err)
	}

	store.Logout()
	if _, err := client.MyProjects(ctx); err != nil {
		t.Fatalf("request 4 failed: %v", err)
	}

	want := []string{"", "Bearer t1", "Bearer t2", ""}
	if len(headers) != len(want) {
		t.Fatalf("got %d requests, want %d", len(headers), len(want))
	}
	for i := range want {
		if headers[i] != want[i] {
			t.Errorf("request %d Authorization = %q, want %q", i, headers[i], want[i])
		}
	}
}
