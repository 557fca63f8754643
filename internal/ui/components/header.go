// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/aidesk/internal/ui/styles"
	"github.com/jeranaias/aidesk/internal/util"
)

// BackendStatus is the last known health of the backend.
type BackendStatus int

const (
	BackendUnknown BackendStatus = iota
	BackendOnline
	BackendOffline
)

// Header is the single-line title bar.
type Header struct {
	Title    string
	Subtitle string
	Status   BackendStatus
	Width    int

	theme *styles.Theme
}

// NewHeader creates a header.
func NewHeader(theme *styles.Theme, title string) *Header {
	return &Header{Title: title, theme: theme}
}

// SetWidth sets the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the header.
func (h *Header) View() string {
	left := h.theme.HeaderTitle.Render(h.Title)
	if h.Subtitle != "" {
		left += "  " + h.theme.HeaderSubtitle.Render(util.TruncateWidth(h.Subtitle, h.Width/2))
	}

	var right string
	switch h.Status {
	case BackendOnline:
		right = h.theme.Online.Render("● online")
	case BackendOffline:
		right = h.theme.Offline.Render("● offline")
	}

	gap := h.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := left + lipgloss.NewStyle().Width(gap).Render("") + right
	return h.theme.Header.Width(h.Width).Render(line)
}
