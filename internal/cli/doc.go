// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements argument parsing and the non-interactive
// commands of the splasp binary.
//
// # Key Types
//
//   - Command: which subcommand to run (TUI, status, logout, ...)
//   - Args: parsed global flags plus remaining arguments
//
// The TUI itself lives in internal/ui/views; this package only decides
// what to run and handles the commands that never enter the TUI.
package cli
