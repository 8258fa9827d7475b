// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/splasp-tui/internal/ui/styles"
)

// =============================================================================
// TOAST TYPES
// =============================================================================

// ToastKind represents the type of toast notification.
type ToastKind int

const (
	// ToastKindStatus is an informational toast (cyan)
	ToastKindStatus ToastKind = iota
	// ToastKindError is an error toast (rose)
	ToastKindError
	// ToastKindSuccess is a success toast (emerald)
	ToastKindSuccess
)

// DefaultToastDuration is the auto-dismiss duration for status toasts.
const DefaultToastDuration = 4 * time.Second

// ErrorToastDuration is the auto-dismiss duration for error toasts
// (longer to read).
const ErrorToastDuration = 8 * time.Second

// Toast is a non-blocking notification. Unlike a modal error dialog it
// renders in a corner and auto-dismisses, so the user keeps typing.
type Toast struct {
	ID        int64
	Message   string
	Kind      ToastKind
	CreatedAt time.Time
	Duration  time.Duration
}

var toastIDCounter atomic.Int64

// NewErrorToast creates an error toast.
func NewErrorToast(message string) Toast {
	return Toast{
		ID:        toastIDCounter.Add(1),
		Message:   message,
		Kind:      ToastKindError,
		CreatedAt: time.Now(),
		Duration:  ErrorToastDuration,
	}
}

// NewStatusToast creates an informational toast.
func NewStatusToast(message string) Toast {
	return Toast{
		ID:        toastIDCounter.Add(1),
		Message:   message,
		Kind:      ToastKindStatus,
		CreatedAt: time.Now(),
		Duration:  DefaultToastDuration,
	}
}

// NewSuccessToast creates a success toast.
func NewSuccessToast(message string) Toast {
	return Toast{
		ID:        toastIDCounter.Add(1),
		Message:   message,
		Kind:      ToastKindSuccess,
		CreatedAt: time.Now(),
		Duration:  DefaultToastDuration,
	}
}

// Expired reports whether the toast has outlived its duration.
func (t Toast) Expired(now time.Time) bool {
	return now.Sub(t.CreatedAt) >= t.Duration
}

// =============================================================================
// TOAST STACK
// =============================================================================

// toastExpireMsg triggers an expiry sweep.
type toastExpireMsg struct{ id int64 }

// ToastStack manages the active toasts for a bubbletea model.
type ToastStack struct {
	toasts []Toast
	theme  *styles.Theme
}

// NewToastStack creates an empty toast stack.
func NewToastStack(theme *styles.Theme) *ToastStack {
	return &ToastStack{theme: theme}
}

// Push adds a toast and returns the command that expires it.
func (s *ToastStack) Push(t Toast) tea.Cmd {
	s.toasts = append(s.toasts, t)
	// Keep at most 3 toasts on screen
	if len(s.toasts) > 3 {
		s.toasts = s.toasts[len(s.toasts)-3:]
	}
	return tea.Tick(t.Duration, func(time.Time) tea.Msg {
		return toastExpireMsg{id: t.ID}
	})
}

// Update handles toast expiry messages.
func (s *ToastStack) Update(msg tea.Msg) {
	exp, ok := msg.(toastExpireMsg)
	if !ok {
		return
	}
	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if t.ID != exp.id {
			kept = append(kept, t)
		}
	}
	s.toasts = kept
}

// Len returns the number of active toasts.
func (s *ToastStack) Len() int {
	return len(s.toasts)
}

// View renders the active toasts, newest last.
func (s *ToastStack) View() string {
	if len(s.toasts) == 0 {
		return ""
	}

	lines := make([]string, 0, len(s.toasts))
	for _, t := range s.toasts {
		lines = append(lines, s.render(t))
	}
	return lipgloss.JoinVertical(lipgloss.Right, lines...)
}

// render renders one toast box.
func (s *ToastStack) render(t Toast) string {
	var border lipgloss.AdaptiveColor
	var label string
	switch t.Kind {
	case ToastKindError:
		border = styles.Rose
		label = styles.StatusIndicators.Error
	case ToastKindSuccess:
		border = styles.Emerald
		label = styles.StatusIndicators.Success
	default:
		border = styles.Cyan
		label = styles.StatusIndicators.Info
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(label + " " + t.Message)
}
