// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/splasp-tui/internal/nav"
	"github.com/morganforge/splasp-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the title bar with the navigation tab row. The tab row is
// recomputed from the identity snapshot each frame, so tabs appear and
// disappear as the login state changes.
type Header struct {
	Title    string
	Subtitle string
	Width    int
	theme    *styles.Theme
}

// NewHeader creates a new Header component with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:    "splasp",
		Subtitle: "Snap! project analysis",
		Width:    80,
		theme:    theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the header with the given navigable routes and the
// currently active route.
func (h *Header) View(routes []nav.Route, active nav.Route) string {
	width := h.Width
	if width < 40 {
		width = 40
	}

	accentStyle := lipgloss.NewStyle().Foreground(styles.Purple)
	brand := accentStyle.Render("< ") +
		h.theme.HeaderTitle.Render(h.Title) +
		accentStyle.Render(" >")

	title := brand + "  " + h.theme.HeaderSubtitle.Render(h.Subtitle)

	titleLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(title)

	tabLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.renderTabs(routes, active))

	content := lipgloss.JoinVertical(lipgloss.Center, titleLine, tabLine)

	return h.theme.Header.Width(width).Render(content)
}

// renderTabs renders one tab per navigable route.
func (h *Header) renderTabs(routes []nav.Route, active nav.Route) string {
	if len(routes) == 0 {
		return ""
	}

	tabs := make([]string, 0, len(routes))
	for _, r := range routes {
		label := tabLabel(r)
		if r == active {
			tabs = append(tabs, h.theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, h.theme.Tab.Render(label))
		}
	}

	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render("|")

	return strings.Join(tabs, separator)
}

// tabLabel returns the display label for a route.
func tabLabel(r nav.Route) string {
	switch r {
	case nav.RouteLogin:
		return "Login"
	case nav.RouteRegister:
		return "Register"
	case nav.RouteHome:
		return "Home"
	case nav.RouteProjects:
		return "My Projects"
	case nav.RouteSessions:
		return "Sessions"
	default:
		return r.String()
	}
}
