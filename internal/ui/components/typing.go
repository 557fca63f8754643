// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/aidesk/internal/ui/styles"
)

// TypingIndicator shows that a request is in flight.
type TypingIndicator struct {
	spinner spinner.Model
	label   string
	active  bool
	theme   *styles.Theme
}

// NewTypingIndicator creates a stopped indicator with the given label.
func NewTypingIndicator(theme *styles.Theme, label string) TypingIndicator {
	s := spinner.New(spinner.WithSpinner(styles.TypingSpinner))
	s.Style = theme.Typing
	return TypingIndicator{spinner: s, label: label, theme: theme}
}

// Start activates the indicator and returns the first tick.
func (t *TypingIndicator) Start() tea.Cmd {
	t.active = true
	return t.spinner.Tick
}

// Stop hides the indicator. Pending ticks are ignored.
func (t *TypingIndicator) Stop() {
	t.active = false
}

// Active reports whether the indicator is showing.
func (t *TypingIndicator) Active() bool {
	return t.active
}

// Update advances the animation while active.
func (t TypingIndicator) Update(msg tea.Msg) (TypingIndicator, tea.Cmd) {
	if !t.active {
		return t, nil
	}
	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return t, cmd
}

// View renders the label and animation, or "" when stopped.
func (t TypingIndicator) View() string {
	if !t.active {
		return ""
	}
	return t.theme.Typing.Render(t.label) + " " + t.spinner.View()
}
