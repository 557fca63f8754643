// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
	"github.com/jeranaias/aidesk/internal/ui/styles"
)

// =============================================================================
// MESSAGE VIEW
// =============================================================================

// MessageView renders chat messages. User messages are right aligned plain
// text; assistant messages go through the markdown renderer and may carry an
// action card.
type MessageView struct {
	Theme    *styles.Theme
	Printer  *locale.Printer
	Markdown *MarkdownRenderer

	Width    int
	ShowTime bool
}

// NewMessageView creates a message view for the given width.
func NewMessageView(theme *styles.Theme, p *locale.Printer, width int) *MessageView {
	v := &MessageView{
		Theme:    theme,
		Printer:  p,
		ShowTime: true,
	}
	v.Markdown = NewMarkdownRenderer(width - 4)
	v.SetWidth(width)
	return v
}

// SetWidth updates the render width.
func (v *MessageView) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	v.Width = width
	if v.Markdown != nil {
		v.Markdown.SetWidth(width - 4)
	}
}

// Render renders one message. focusedCard highlights its action button.
func (v *MessageView) Render(msg model.Message, focusedCard bool) string {
	if msg.IsUser() {
		return v.renderUser(msg)
	}
	return v.renderAssistant(msg, focusedCard)
}

func (v *MessageView) label(msg model.Message) string {
	name := v.Printer.T(locale.AssistantLabel)
	if msg.IsUser() {
		name = v.Printer.T(locale.YouLabel)
	}
	out := v.Theme.MessageLabel.Render(name)
	if v.ShowTime {
		if ts := model.FormatMessageTime(msg.CreatedAt); ts != "" {
			out += " " + v.Theme.MessageTime.Render(ts)
		}
	}
	return out
}

func (v *MessageView) renderUser(msg model.Message) string {
	maxWidth := v.Width * 3 / 4
	body := v.Theme.UserBubble.MaxWidth(maxWidth).Render(
		lipgloss.NewStyle().Width(min(maxWidth-4, lipgloss.Width(msg.Content))).Render(msg.Content),
	)
	block := lipgloss.JoinVertical(lipgloss.Right, v.label(msg), body)
	return lipgloss.PlaceHorizontal(v.Width, lipgloss.Right, block)
}

func (v *MessageView) renderAssistant(msg model.Message, focusedCard bool) string {
	body := v.Theme.AssistantBubble.Render(v.Markdown.Render(msg.Content))
	parts := []string{v.label(msg), body}
	if msg.ActionCard != nil {
		parts = append(parts, v.RenderActionCard(msg.ActionCard, focusedCard))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderActionCard renders the follow-up suggestion under an assistant message.
func (v *MessageView) RenderActionCard(card *model.ActionCard, focused bool) string {
	width := v.Width - 8
	if width > 60 {
		width = 60
	}

	button := v.Theme.ActionButton
	if focused {
		button = v.Theme.ActionButtonFocused
	}

	lines := []string{v.Theme.ActionCardTitle.Render(card.Title)}
	if card.Description != "" {
		lines = append(lines, lipgloss.NewStyle().Width(width-4).Render(card.Description))
	}
	lines = append(lines, "", button.Render(card.Action.Text))
	if focused {
		lines = append(lines, v.Theme.FieldHint.Render(v.Printer.T(locale.ActionCardHint)))
	}
	return v.Theme.ActionCard.Width(width).Render(strings.Join(lines, "\n"))
}

// RenderAll renders a conversation. focusedCardID names the message whose
// action card has focus, or "".
func (v *MessageView) RenderAll(msgs []model.Message, focusedCardID string) string {
	blocks := make([]string, 0, len(msgs))
	for _, m := range msgs {
		blocks = append(blocks, v.Render(m, m.ID == focusedCardID && m.ActionCard != nil))
	}
	return strings.Join(blocks, "\n\n")
}

// ActionCardIDs returns the ids of messages carrying an action card, oldest first.
func ActionCardIDs(msgs []model.Message) []string {
	var ids []string
	for _, m := range msgs {
		if m.ActionCard != nil {
			ids = append(ids, m.ID)
		}
	}
	return ids
}
