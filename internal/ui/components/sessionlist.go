// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
	"github.com/jeranaias/aidesk/internal/ui/styles"
	"github.com/jeranaias/aidesk/internal/util"
)

// =============================================================================
// SESSION LIST MESSAGES
// =============================================================================

// SessionSelectedMsg requests opening a session.
type SessionSelectedMsg struct {
	ID string
}

// SessionNewMsg requests a fresh chat (welcome screen).
type SessionNewMsg struct{}

// SessionDeleteMsg requests deleting a session, after confirmation.
type SessionDeleteMsg struct {
	ID string
}

// SwitchToAdminMsg requests the admin dashboard.
type SwitchToAdminMsg struct{}

// =============================================================================
// SESSION LIST
// =============================================================================

// SessionList is the conversation sidebar.
type SessionList struct {
	sessions  []model.Session
	cursor    int
	offset    int
	currentID string
	loading   bool

	width  int
	height int

	theme   *styles.Theme
	printer *locale.Printer
}

// NewSessionList creates an empty session list.
func NewSessionList(theme *styles.Theme, p *locale.Printer) *SessionList {
	return &SessionList{theme: theme, printer: p, loading: true}
}

// SetSessions replaces the list, keeping the cursor in range.
func (l *SessionList) SetSessions(sessions []model.Session) {
	l.sessions = sessions
	l.loading = false
	if l.cursor >= len(sessions) {
		l.cursor = len(sessions) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.clampOffset()
}

// Sessions returns the sessions in display order.
func (l *SessionList) Sessions() []model.Session {
	return l.sessions
}

// SetLoading toggles the loading placeholder.
func (l *SessionList) SetLoading(loading bool) {
	l.loading = loading
}

// SetCurrent marks the open session and moves the cursor to it.
func (l *SessionList) SetCurrent(id string) {
	l.currentID = id
	for i, s := range l.sessions {
		if s.ID == id {
			l.cursor = i
			l.clampOffset()
			return
		}
	}
}

// Current returns the id of the open session.
func (l *SessionList) Current() string {
	return l.currentID
}

// Selected returns the session under the cursor.
func (l *SessionList) Selected() (model.Session, bool) {
	if l.cursor < 0 || l.cursor >= len(l.sessions) {
		return model.Session{}, false
	}
	return l.sessions[l.cursor], true
}

// SetSize sets the sidebar dimensions.
func (l *SessionList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.clampOffset()
}

// visibleRows is the number of sessions that fit; each takes two lines.
func (l *SessionList) visibleRows() int {
	rows := (l.height - 2) / 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (l *SessionList) clampOffset() {
	rows := l.visibleRows()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// Update handles navigation keys and returns the request for the host.
func (l *SessionList) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
			l.clampOffset()
		}
	case "down", "j":
		if l.cursor < len(l.sessions)-1 {
			l.cursor++
			l.clampOffset()
		}
	case "home", "g":
		l.cursor = 0
		l.clampOffset()
	case "end", "G":
		if len(l.sessions) > 0 {
			l.cursor = len(l.sessions) - 1
			l.clampOffset()
		}
	case "enter":
		if s, ok := l.Selected(); ok {
			return func() tea.Msg { return SessionSelectedMsg{ID: s.ID} }
		}
	case "n":
		return func() tea.Msg { return SessionNewMsg{} }
	case "d", "delete":
		if s, ok := l.Selected(); ok {
			return func() tea.Msg { return SessionDeleteMsg{ID: s.ID} }
		}
	case "a":
		return func() tea.Msg { return SwitchToAdminMsg{} }
	}
	return nil
}

// View renders the sidebar content (without the border).
func (l *SessionList) View() string {
	inner := l.width - 4
	if inner < 10 {
		inner = 10
	}

	var sb strings.Builder
	sb.WriteString(l.theme.SidebarTitle.Render(l.printer.T(locale.SessionsTitle)))
	sb.WriteByte('\n')

	if l.loading {
		sb.WriteString(l.theme.Empty.Render(l.printer.T(locale.Loading)))
		return sb.String()
	}
	if len(l.sessions) == 0 {
		sb.WriteString(l.theme.Empty.Render(l.printer.T(locale.SessionsEmpty)))
		return sb.String()
	}

	end := l.offset + l.visibleRows()
	if end > len(l.sessions) {
		end = len(l.sessions)
	}
	for i := l.offset; i < end; i++ {
		s := l.sessions[i]
		name := s.Name
		if name == "" {
			name = l.printer.T(locale.SessionUntitled)
		}
		name = util.PadRight(util.TruncateWidth(name, inner), inner)

		style := l.theme.ListItem
		switch {
		case i == l.cursor:
			style = l.theme.ListItemSelected
		case s.ID == l.currentID:
			style = l.theme.ListItemActive
		}
		sb.WriteString(style.Render(name))
		sb.WriteByte('\n')
		sb.WriteString(l.theme.ListMeta.Render("  " + model.FormatSessionTime(s.UpdatedAt)))
		if i < end-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
