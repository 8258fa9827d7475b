// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/morganforge/splasp-tui/internal/identity"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *identity.Store, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	store := identity.NewStore()
	client := NewClient(srv.URL, identity.NewView(store)).WithMaxRetries(1)
	return client, store, srv.Close
}

// =============================================================================
// AUTH
// =============================================================================

func TestClient_Login_NormalizesAccessToken(t *testing.T) {
	client, _, done := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected call: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["username"] != "ada" || body["password"] != "pw" {
			t.Errorf("unexpected body: %v", body)
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1", "role": "ADMIN"})
	}))
	defer done()

	creds, err := client.Login(context.Background(), "ada", "pw")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if creds.Token != "tok-1" {
		t.Errorf("Token = %q, want tok-1", creds.Token)
	}
	if creds.Role != identity.RoleAdmin || !creds.RoleRecognized {
		t.Errorf("Role = %v (recognized=%v), want RoleAdmin", creds.Role, creds.RoleRecognized)
	}
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	client, _, done := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
	}))
	defer done()

	_, err := client.Login(context.Background(), "ada", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestClient_Register_UsernameTaken(t *testing.T) {
	client, _, done := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Username already exists"})
	}))
	defer done()

	_, err := client.Register(context.Background(), "ada", "pw")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("err = %v, want ErrUsernameTaken", err)
	}
}

// A backend role outside the closed enumeration must not fail the
// login, but it must come back unrecognized so no privileged surface
// activates.
func TestClient_Login_UnknownRoleFailsClosed(t *testing.T) {
	client, _, done := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1", "role": "ROOT"})
	}))
	defer done()

	creds, err := client.Login(context.Background(), "ada", "pw")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if creds.Role != identity.RoleUnknown || creds.RoleRecognized {
		t.Errorf("Role = %v (recognized=%v), want RoleUnknown unrecognized", creds.Role, creds.RoleRecognized)
	}
}

func TestClient_Login_MissingToken(t *testing.T) {
	client, _, done := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"role": "USER"})
	}))
	defer done()

	if _, err := client.Login(context.Background(), "ada", "pw"); err == nil {
		t.Error("expected error for auth response without token")
	}
}

// =============================================================================
// ERROR MAPPING
// =============================================================================

func TestClient_MapsStatusErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
	}

	for _, tt := range tests {
		client, _, done := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			json.NewEncoder(w).Encode(map[string]string{"detail": "nope"})
		}))
		_, err := client.MyProjects(context.Background())
		done()

		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: err = %v, want %v", tt.status, err, tt.want)
		}
	}
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client, _, done := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("[]"))
	}))
	defer done()

	if _, err := client.MyProjects(context.Background()); err != nil {
		t.Fatalf("MyProjects failed after retry: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

// =============================================================================
// PROJECTS
// =============================================================================

func TestClient_Analyze_Multipart(t *testing.T) {
	client, store, done := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not a multipart request: %v", err)
		}
		if got := r.FormValue("sessionId"); got != "7" {
			t.Errorf("sessionId = %q, want 7", got)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "project.xml" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		content, _ := io.ReadAll(f)
		if string(content) != "<project/>" {
			t.Errorf("content = %q", content)
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("Authorization = %q, want Bearer tok", r.Header.Get("Authorization"))
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"projectLevel": 2,
			"totalScripts": 5,
			"deadFeatures": []string{"f1"},
			"tanglingDict": map[string]int{"1": 3},
		})
	}))
	defer done()

	_ = store.Login("tok", identity.RoleUser)
	result, err := client.Analyze(context.Background(), "project.xml", []byte("<project/>"), 7)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if result.ProjectLevel != 2 || result.TotalScripts != 5 {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.TanglingDict[1] != 3 {
		t.Errorf("TanglingDict = %v", result.TanglingDict)
	}
}

func TestClient_Analyze_RejectsNonXML(t *testing.T) {
	client := NewClient("http://unused", identity.NewView(identity.NewStore()))
	if _, err := client.Analyze(context.Background(), "project.txt", nil, 1); err == nil {
		t.Error("expected error for non-XML filename")
	}
}

// =============================================================================
// SESSIONS
// =============================================================================

func TestClient_SessionLifecycle(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	client, store, done := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "POST /api/sessions/":
			var body createSessionRequest
			json.NewDecoder(r.Body).Decode(&body)
			if body.Name != "lab-1" {
				t.Errorf("name = %q", body.Name)
			}
			json.NewEncoder(w).Encode(Session{ID: 3, Name: body.Name, Code: "ABC123",
				StartDate: body.StartDate, EndDate: body.EndDate, IsActive: true})
		case "POST /api/sessions/join":
			json.NewEncoder(w).Encode(Session{ID: 3, Name: "lab-1", Code: "ABC123", IsActive: true})
		case "PATCH /api/sessions/3":
			json.NewEncoder(w).Encode(map[string]string{"message": "Session deactivate"})
		default:
			t.Errorf("unexpected call: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer done()

	_ = store.Login("tok", identity.RoleAdmin)
	ctx := context.Background()

	created, err := client.CreateSession(ctx, "lab-1", start, end)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if created.Code != "ABC123" || !created.IsActive {
		t.Errorf("unexpected session: %+v", created)
	}

	joined, err := client.JoinSession(ctx, "ABC123")
	if err != nil {
		t.Fatalf("JoinSession failed: %v", err)
	}
	if joined.ID != 3 {
		t.Errorf("joined ID = %d", joined.ID)
	}

	if err := client.CloseSession(ctx, 3); err != nil {
		t.Fatalf("CloseSession failed: %v", err)
	}
}
