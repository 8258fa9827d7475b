// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.URL == "" {
		t.Error("default server URL should not be empty")
	}
	if cfg.Server.TimeoutSecs != 30 {
		t.Errorf("default TimeoutSecs = %d, want 30", cfg.Server.TimeoutSecs)
	}
	if cfg.Server.MaxRetries != 3 {
		t.Errorf("default MaxRetries = %d, want 3", cfg.Server.MaxRetries)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("default Theme = %q, want dark", cfg.UI.Theme)
	}
	if cfg.Session.RememberLogin {
		t.Error("logins should not persist by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
version = "1.0.0"

[server]
url = "https://splasp.example.edu"
timeout_secs = 10

[session]
remember_login = true

[ui]
theme = "light"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Server.URL != "https://splasp.example.edu" {
		t.Errorf("URL = %q", cfg.Server.URL)
	}
	if cfg.Server.TimeoutSecs != 10 {
		t.Errorf("TimeoutSecs = %d, want 10", cfg.Server.TimeoutSecs)
	}
	if cfg.Server.MaxRetries != 3 {
		t.Errorf("MaxRetries should fall back to default, got %d", cfg.Server.MaxRetries)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q", cfg.UI.Theme)
	}
	if !cfg.Session.RememberLogin {
		t.Error("RememberLogin should be true")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty url", func(c *Config) { c.Server.URL = "" }, true},
		{"bad url", func(c *Config) { c.Server.URL = "not a url" }, true},
		{"bad scheme", func(c *Config) { c.Server.URL = "ftp://x.example" }, true},
		{"timeout too small", func(c *Config) { c.Server.TimeoutSecs = 0 }, true},
		{"timeout too big", func(c *Config) { c.Server.TimeoutSecs = 301 }, true},
		{"negative retries", func(c *Config) { c.Server.MaxRetries = -1 }, true},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }, true},
		{"light theme", func(c *Config) { c.UI.Theme = "light" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SPLASP_SERVER_URL", "https://env.example.edu")
	t.Setenv("SPLASP_THEME", "light")
	t.Setenv("SPLASP_REMEMBER_LOGIN", "true")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Server.URL != "https://env.example.edu" {
		t.Errorf("URL = %q", cfg.Server.URL)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q", cfg.UI.Theme)
	}
	if !cfg.Session.RememberLogin {
		t.Error("RememberLogin should be true")
	}
}

func TestGlobal_SetAndReset(t *testing.T) {
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	custom := Default()
	custom.Server.URL = "https://custom.example.edu"
	SetGlobal(custom)

	if Global().Server.URL != "https://custom.example.edu" {
		t.Errorf("Global URL = %q", Global().Server.URL)
	}
}
