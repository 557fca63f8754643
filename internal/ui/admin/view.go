// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/aidesk/internal/locale"
)

// View renders the dashboard.
func (m *Model) View() string {
	if m.confirm.IsVisible() {
		return m.place(m.confirm.View())
	}

	switch m.overlay {
	case overlayDocForm:
		return m.docForm.view(m.theme, m.printer, m.width)
	case overlayCategoryForm:
		return m.place(m.catForm.view(m.theme, m.printer, m.width))
	case overlayDocCategories:
		box := m.theme.DialogTitle.Render(m.printer.T(locale.CategorySelectMany)) + "\n\n" + m.docPicker.View()
		return m.place(m.theme.Dialog.Width(48).Render(box))
	case overlayChunking:
		return m.place(m.chunkPanel.view(m.theme, m.printer, m.width))
	}

	body := m.documents.view
	if m.tab == TabCategories {
		body = m.categories.view
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(),
		body(m.theme, m.printer, m.width, m.bodyHeight()),
	)
}

func (m *Model) place(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// viewTabs renders the tab bar with the header actions on the right.
func (m *Model) viewTabs() string {
	tab := func(k locale.Key, t Tab) string {
		if m.tab == t {
			return m.theme.TabActive.Render(m.printer.T(k))
		}
		return m.theme.Tab.Render(m.printer.T(k))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top,
		tab(locale.TabDocuments, TabDocuments),
		tab(locale.TabCategories, TabCategories),
	)

	action := func(k, label string) string {
		return m.theme.ShortcutKey.Render(k) + " " + m.theme.ShortcutDesc.Render(label)
	}
	newLabel := m.printer.T(locale.DocNew)
	if m.tab == TabCategories {
		newLabel = m.printer.T(locale.CategoryTitle)
	}
	right := action("C", m.printer.T(locale.ChunkingTitle)) + "  " + action("n", newLabel)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + "\n"
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right + "\n"
}
