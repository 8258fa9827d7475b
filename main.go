// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// main.go - splasp entry point.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/splasp-tui/internal/api"
	"github.com/morganforge/splasp-tui/internal/cli"
	"github.com/morganforge/splasp-tui/internal/config"
	"github.com/morganforge/splasp-tui/internal/history"
	"github.com/morganforge/splasp-tui/internal/identity"
	"github.com/morganforge/splasp-tui/internal/storage"
	"github.com/morganforge/splasp-tui/internal/ui/views"
)

// Version information (set at build time via -ldflags)
var (
	version   = "0.1.0"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func init() {
	cli.Version = version
	cli.GitCommit = gitCommit
	cli.BuildDate = buildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdStatus:
		cli.HandleStatus(args)
	case cli.CmdLogout:
		if err := cli.HandleLogout(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	default:
		if err := runTUI(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// runTUI wires config, identity, API client, and local history together
// and hands the root model to Bubble Tea.
func runTUI(args cli.Args) error {
	cfg, err := loadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.Default()
	}
	applyOverrides(cfg, args)

	// Credential store, only when persistence is on.
	var creds *storage.CredentialStore
	store := identity.NewStore()
	if cfg.Session.RememberLogin {
		creds, err = credentialStore(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: saved logins unavailable: %v\n", err)
		} else if id, err := creds.Load(); err == nil {
			store = identity.NewStoreWith(id)
		}
	}

	client := api.NewClient(cfg.Server.URL, identity.NewView(store)).
		WithTimeout(time.Duration(cfg.Server.TimeoutSecs) * time.Second).
		WithMaxRetries(cfg.Server.MaxRetries)

	var hist *history.Store
	if cfg.History.Enabled {
		path := cfg.History.Path
		var herr error
		if path == "" {
			path, herr = history.DefaultPath()
		}
		if herr == nil {
			hist, herr = history.Open(path)
		}
		if herr != nil {
			fmt.Fprintf(os.Stderr, "Warning: local history disabled: %v\n", herr)
			hist = nil
		}
	}
	if hist != nil {
		defer hist.Close()
	}

	app := views.NewApp(cfg, store, client, creds, hist)
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

func loadConfig(args cli.Args) (*config.Config, error) {
	if args.ConfigPath != "" {
		return config.LoadFromPath(args.ConfigPath)
	}
	return config.Load()
}

func applyOverrides(cfg *config.Config, args cli.Args) {
	if args.ServerURL != "" {
		cfg.Server.URL = args.ServerURL
	}
	if args.NoRemember {
		cfg.Session.RememberLogin = false
	}
	config.SetGlobal(cfg)
}

func credentialStore(cfg *config.Config) (*storage.CredentialStore, error) {
	if cfg.Session.CredentialsPath != "" {
		return storage.NewCredentialStoreWithPath(cfg.Session.CredentialsPath), nil
	}
	return storage.NewCredentialStore()
}
