// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the splasp TUI.
//
// # Key Types
//
//   - Theme: all styled components, built once at startup
//
// # Color System
//
// All colors use lipgloss.AdaptiveColor so the same palette works on
// light and dark terminals. Semantic colors (Rose for errors, Emerald
// for success, Amber for warnings) are paired with ASCII status
// indicators for colorblind users.
//
// # Usage
//
//	theme := styles.NewTheme()
//	fmt.Print(theme.HeaderTitle.Render("splasp"))
package styles
