// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for splasp.
package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/morganforge/splasp-tui/internal/config"
	"github.com/morganforge/splasp-tui/internal/storage"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdStatus
	CmdLogout
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ServerURL  string // --server overrides config server.url
	ConfigPath string // --config loads an alternate config file
	NoRemember bool   // --no-remember disables credential persistence

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `splasp - terminal client for the Snap! SPL analysis platform

Usage:
  splasp                     Start TUI (default)
  splasp status              Show configuration and login state
  splasp logout              Discard the saved login
  splasp version             Show version information
  splasp help                Show this help

Flags:
  --server URL               Override the backend URL
  --config PATH              Load an alternate config file
  --no-remember              Do not persist logins across restarts

Environment:
  SPLASP_SERVER_URL          Override the backend URL
  SPLASP_THEME               Override the UI theme (dark, light)
  SPLASP_REMEMBER_LOGIN      Set to 1 to persist logins
`

// Parse parses os.Args into a command and its arguments.
func Parse() (Command, Args) {
	return parse(os.Args[1:])
}

func parse(argv []string) (Command, Args) {
	cmd := CmdTUI
	var args Args

	i := 0
	for i < len(argv) {
		arg := argv[i]
		switch {
		case arg == "--server" && i+1 < len(argv):
			args.ServerURL = argv[i+1]
			i += 2
		case arg == "--config" && i+1 < len(argv):
			args.ConfigPath = argv[i+1]
			i += 2
		case arg == "--no-remember":
			args.NoRemember = true
			i++
		case arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h":
			// Command aliases, not flags: let the command switch see them.
			args.Raw = append(args.Raw, arg)
			i++
		case strings.HasPrefix(arg, "-"):
			fmt.Fprintf(os.Stderr, "Unknown flag: %s\n", arg)
			i++
		default:
			args.Raw = append(args.Raw, arg)
			i++
		}
	}

	if len(args.Raw) > 0 {
		switch args.Raw[0] {
		case "status", "s":
			cmd = CmdStatus
		case "logout":
			cmd = CmdLogout
		case "version", "-v", "--version":
			cmd = CmdVersion
		case "help", "-h", "--help":
			cmd = CmdHelp
		case "tui":
			cmd = CmdTUI
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args.Raw[0])
			cmd = CmdHelp
		}
	}

	return cmd, args
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// HandleStatus prints the effective configuration and login state.
func HandleStatus(args Args) {
	cfg := loadConfig(args)

	fmt.Println("splasp status")
	fmt.Println("-------------")
	fmt.Printf("Server:          %s\n", cfg.Server.URL)
	fmt.Printf("Timeout:         %ds\n", cfg.Server.TimeoutSecs)
	fmt.Printf("Max retries:     %d\n", cfg.Server.MaxRetries)
	fmt.Printf("Theme:           %s\n", cfg.UI.Theme)
	fmt.Printf("Remember login:  %t\n", cfg.Session.RememberLogin)
	fmt.Printf("Local history:   %t\n", cfg.History.Enabled)

	cs, err := credentialStore(cfg)
	if err != nil {
		fmt.Printf("Saved login:     unavailable (%v)\n", err)
		return
	}
	if id, err := cs.Load(); err == nil {
		fmt.Printf("Saved login:     yes (role %s)\n", id.Role)
	} else {
		fmt.Println("Saved login:     no")
	}
}

// HandleLogout discards the saved credential file.
func HandleLogout(args Args) error {
	cfg := loadConfig(args)
	cs, err := credentialStore(cfg)
	if err != nil {
		return err
	}

	if _, err := cs.Load(); errors.Is(err, storage.ErrNoCredentials) {
		fmt.Println("No saved login.")
		return nil
	}
	if err := cs.Clear(); err != nil {
		return fmt.Errorf("could not clear saved login: %w", err)
	}
	fmt.Println("Saved login discarded.")
	return nil
}

// HandleVersion prints version information.
func HandleVersion() {
	fmt.Printf("splasp %s\n", Version)
	fmt.Printf("  commit:  %s\n", GitCommit)
	fmt.Printf("  built:   %s\n", BuildDate)
	fmt.Printf("  runtime: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// HandleHelp prints usage.
func HandleHelp() {
	fmt.Print(usageText)
}

// =============================================================================
// HELPERS
// =============================================================================

// loadConfig loads configuration honoring --config and --server.
func loadConfig(args Args) *config.Config {
	var cfg *config.Config
	var err error
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.Default()
	}
	if args.ServerURL != "" {
		cfg.Server.URL = args.ServerURL
	}
	if args.NoRemember {
		cfg.Session.RememberLogin = false
	}
	return cfg
}

// credentialStore builds the credential store from config.
func credentialStore(cfg *config.Config) (*storage.CredentialStore, error) {
	if cfg.Session.CredentialsPath != "" {
		return storage.NewCredentialStoreWithPath(cfg.Session.CredentialsPath), nil
	}
	return storage.NewCredentialStore()
}
