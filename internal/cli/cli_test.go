// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import "testing"

func TestParse_DefaultIsTUI(t *testing.T) {
	cmd, _ := parse(nil)
	if cmd != CmdTUI {
		t.Errorf("parse(nil) = %v, want CmdTUI", cmd)
	}
}

func TestParse_Commands(t *testing.T) {
	tests := []struct {
		argv []string
		want Command
	}{
		{[]string{"status"}, CmdStatus},
		{[]string{"s"}, CmdStatus},
		{[]string{"logout"}, CmdLogout},
		{[]string{"version"}, CmdVersion},
		{[]string{"--version"}, CmdVersion},
		{[]string{"-v"}, CmdVersion},
		{[]string{"help"}, CmdHelp},
		{[]string{"--help"}, CmdHelp},
		{[]string{"-h"}, CmdHelp},
		{[]string{"tui"}, CmdTUI},
		{[]string{"bogus"}, CmdHelp},
	}

	for _, tt := range tests {
		cmd, _ := parse(tt.argv)
		if cmd != tt.want {
			t.Errorf("parse(%v) = %v, want %v", tt.argv, cmd, tt.want)
		}
	}
}

func TestParse_Flags(t *testing.T) {
	cmd, args := parse([]string{"--server", "http://example.org:9000", "--no-remember", "status"})
	if cmd != CmdStatus {
		t.Errorf("cmd = %v, want CmdStatus", cmd)
	}
	if args.ServerURL != "http://example.org:9000" {
		t.Errorf("ServerURL = %q", args.ServerURL)
	}
	if !args.NoRemember {
		t.Error("NoRemember should be set")
	}
}

func TestParse_VersionAliasAfterFlags(t *testing.T) {
	cmd, _ := parse([]string{"--server", "http://example.org:9000", "--version"})
	if cmd != CmdVersion {
		t.Errorf("cmd = %v, want CmdVersion", cmd)
	}
}

func TestLoadConfig_ServerOverride(t *testing.T) {
	cfg := loadConfig(Args{ServerURL: "http://10.0.0.1:8000"})
	if cfg.Server.URL != "http://10.0.0.1:8000" {
		t.Errorf("Server.URL = %q", cfg.Server.URL)
	}
}
