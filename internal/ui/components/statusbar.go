// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/aidesk/internal/ui/styles"
	"github.com/jeranaias/aidesk/internal/util"
)

// StatusBar renders key hints on the left and the backend address on the right.
type StatusBar struct {
	Width   int
	Backend string

	help  help.Model
	theme *styles.Theme
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	h := help.New()
	h.Styles.ShortKey = theme.ShortcutKey
	h.Styles.ShortDesc = theme.ShortcutDesc
	h.Styles.FullKey = theme.ShortcutKey
	h.Styles.FullDesc = theme.ShortcutDesc
	return &StatusBar{help: h, theme: theme}
}

// SetWidth sets the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
	s.help.Width = width
}

// View renders the short help of keys.
func (s *StatusBar) View(keys help.KeyMap) string {
	right := ""
	if s.Backend != "" && s.Width >= 80 {
		right = s.theme.ShortcutDesc.Render(util.TruncateWidth(s.Backend, 40))
	}
	s.help.Width = s.Width - lipgloss.Width(right) - 3
	left := s.help.ShortHelpView(keys.ShortHelp())

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := left + lipgloss.NewStyle().Width(gap).Render("") + right
	return s.theme.StatusBar.Width(s.Width).Render(line)
}

// FullHelp renders the expanded help for keys.
func (s *StatusBar) FullHelp(keys help.KeyMap) string {
	return s.help.FullHelpView(keys.FullHelp())
}
