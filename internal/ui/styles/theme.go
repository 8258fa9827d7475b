// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// NAVIGATION TAB STYLES
	// ==========================================================================

	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	TabDisabled lipgloss.Style

	// ==========================================================================
	// FORM STYLES
	// ==========================================================================

	FormBox        lipgloss.Style
	FormLabel      lipgloss.Style
	FormLabelFocus lipgloss.Style
	FormHint       lipgloss.Style
	FormError      lipgloss.Style

	// ==========================================================================
	// TABLE STYLES
	// ==========================================================================

	TableHeader      lipgloss.Style
	TableRow         lipgloss.Style
	TableRowSelected lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	RoleUser     lipgloss.Style
	RoleAdmin    lipgloss.Style
	RoleAnon     lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// RESULT PANEL STYLES
	// ==========================================================================

	ResultBox   lipgloss.Style
	ResultTitle lipgloss.Style
	StatsLabel  lipgloss.Style
	StatsValue  lipgloss.Style
	LevelLow    lipgloss.Style
	LevelMedium lipgloss.Style
	LevelHigh   lipgloss.Style

	// ==========================================================================
	// FEEDBACK STYLES
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
	Spinner      lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.App = lipgloss.NewStyle().
		Foreground(TextPrimary)
	t.Container = lipgloss.NewStyle().
		Padding(0, 1)

	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)
	t.HeaderTitle = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)
	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Tab = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 2)
	t.TabActive = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true).
		Underline(true).
		Padding(0, 2)
	t.TabDisabled = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 2)

	t.FormBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(1, 2)
	t.FormLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)
	t.FormLabelFocus = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)
	t.FormHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)
	t.FormError = lipgloss.NewStyle().
		Foreground(Rose)

	t.TableHeader = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)
	t.TableRow = lipgloss.NewStyle().
		Foreground(TextPrimary)
	t.TableRowSelected = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Cyan)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)
	t.RoleUser = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)
	t.RoleAdmin = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)
	t.RoleAnon = lipgloss.NewStyle().
		Foreground(TextMuted)
	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)
	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ResultBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 2)
	t.ResultTitle = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)
	t.StatsLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)
	t.StatsValue = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)
	t.LevelLow = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)
	t.LevelMedium = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)
	t.LevelHigh = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)
	t.WarningStyle = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)
	t.InfoStyle = lipgloss.NewStyle().
		Foreground(Cyan)
	t.Spinner = lipgloss.NewStyle().
		Foreground(Purple)

	return t
}

// SetSize updates the theme's layout dimensions on window resize.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// LevelStyle returns the style for a project complexity level.
func (t *Theme) LevelStyle(level string) lipgloss.Style {
	switch level {
	case "LOW":
		return t.LevelLow
	case "MEDIUM":
		return t.LevelMedium
	case "HIGH":
		return t.LevelHigh
	default:
		return t.StatsValue
	}
}
