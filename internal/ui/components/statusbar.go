// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/splasp-tui/internal/identity"
	"github.com/morganforge/splasp-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Shortcut is a key binding hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar is the bottom bar showing login state and key hints.
type StatusBar struct {
	Width int
	theme *styles.Theme
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{Width: 80, theme: theme}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// View renders the status bar for the given identity snapshot.
func (s *StatusBar) View(id identity.Identity, shortcuts []Shortcut) string {
	left := s.roleBadge(id)

	hints := make([]string, 0, len(shortcuts))
	for _, sc := range shortcuts {
		hints = append(hints,
			s.theme.ShortcutKey.Render(sc.Key)+" "+s.theme.ShortcutDesc.Render(sc.Desc))
	}
	right := strings.Join(hints, "  ")

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return s.theme.StatusBar.Width(s.Width).Render(
		left + strings.Repeat(" ", gap) + right)
}

// roleBadge renders the login state indicator.
func (s *StatusBar) roleBadge(id identity.Identity) string {
	if id.IsZero() {
		return s.theme.RoleAnon.Render("not logged in")
	}
	switch id.Role {
	case identity.RoleAdmin:
		return s.theme.RoleAdmin.Render("[ADMIN]")
	case identity.RoleUser:
		return s.theme.RoleUser.Render("[USER]")
	default:
		return s.theme.RoleAnon.Render("[?]")
	}
}
