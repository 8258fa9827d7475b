// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"crypto/tls"
	"net/http"
	"time"
)

// =============================================================================
// OUTBOUND REQUEST AUTHENTICATION
// =============================================================================

// TokenSource supplies the bearer credential for outgoing requests.
// Implementations must return the latest value on every call - the
// transport never caches it, so a logout or re-login that happened
// after the client was constructed is reflected on the next request.
// identity.View satisfies this interface.
type TokenSource interface {
	Token() string
}

// bearerTransport attaches the current credential to every request on
// the way out. It runs inside the request pipeline, independent of any
// UI update cycle, including requests issued before a view mounted.
type bearerTransport struct {
	source TokenSource
	base   http.RoundTripper
}

// RoundTrip implements http.RoundTripper. The request is cloned before
// mutation per the RoundTripper contract. With no token held the
// request is sent untouched; acceptability is the server's call.
func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if tok := t.source.Token(); tok != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return t.base.RoundTrip(req)
}

// newHTTPClient builds the pooled HTTP client wrapped with the bearer
// transport. TLS 1.2 minimum.
func newHTTPClient(source TokenSource, timeout time.Duration) *http.Client {
	base := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
	return &http.Client{
		Transport: &bearerTransport{source: source, base: base},
		Timeout:   timeout,
	}
}
