// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/ui/styles"
	"github.com/jeranaias/aidesk/internal/util"
)

// cardOuterWidth is the rendered width of a welcome category card.
const cardOuterWidth = 27

// View renders the chat screen.
func (m *Model) View() string {
	main := m.viewMain()
	if w := m.sidebarWidth(); w > 0 {
		sidebar := m.theme.Sidebar.
			Width(w - 1).
			Height(m.height).
			Render(m.sessions.View())
		main = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
	}

	if m.confirm.IsVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}
	return main
}

func (m *Model) mainWidth() int {
	w := m.width - m.sidebarWidth()
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) viewMain() string {
	var body string
	if m.current == nil {
		body = m.viewWelcome()
	} else {
		body = m.viewport.View()
	}

	status := ""
	if m.typing.Active() {
		status = m.typing.View()
	}

	inputStyle := m.theme.InputContainer.Width(m.mainWidth() - 2)
	input := inputStyle.Render(m.input.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Height(m.viewport.Height).MaxHeight(m.viewport.Height).Render(body),
		status,
		input,
	)
}

// viewWelcome renders the screen shown before a conversation starts.
func (m *Model) viewWelcome() string {
	width := m.mainWidth()

	var sb strings.Builder
	sb.WriteString(m.theme.WelcomeTitle.Render(m.printer.T(locale.WelcomeTitle)))
	sb.WriteByte('\n')
	sb.WriteString(m.theme.WelcomeSubtitle.Render(m.printer.T(locale.WelcomeSubtitle)))
	sb.WriteString("\n\n")

	if len(m.categories) == 0 {
		return sb.String()
	}

	sb.WriteString(m.theme.FieldLabel.Render(m.printer.T(locale.CategoryPrompt)))
	sb.WriteByte('\n')

	perRow := width / cardOuterWidth
	if perRow < 1 {
		perRow = 1
	}
	var rows []string
	for start := 0; start < len(m.categories); start += perRow {
		end := start + perRow
		if end > len(m.categories) {
			end = len(m.categories)
		}
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return sb.String()
}

func (m *Model) renderCard(i int) string {
	cat := m.categories[i]
	style := m.theme.CategoryCard
	if m.focus == FocusWelcome && i == m.welcomeCursor {
		style = m.theme.CategoryCardFocused
	}

	title := styles.CategoryIcon(cat.Name) + " " + util.TruncateWidth(cat.Name, 18)
	lines := []string{styles.CategoryBadge(cat.Name).Render(title)}
	if desc := util.FirstLine(cat.Description); desc != "" {
		lines = append(lines, m.theme.FieldHint.Render(util.TruncateWidth(desc, 22)))
	}
	return style.Render(strings.Join(lines, "\n"))
}
