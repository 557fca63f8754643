// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/ui/styles"
)

// =============================================================================
// CONFIRM DIALOG
// =============================================================================

// ConfirmKind sets the dialog's accent color.
type ConfirmKind int

const (
	ConfirmDanger ConfirmKind = iota
	ConfirmWarning
	ConfirmInfo
)

// Buttons
const (
	buttonConfirm = 0
	buttonCancel  = 1
)

// ConfirmResultMsg is emitted when the dialog closes.
type ConfirmResultMsg struct {
	ID        string
	Confirmed bool
}

// ConfirmDialog is a modal yes/no prompt. The ID passed to Show comes back
// in the ConfirmResultMsg so the host knows which action was confirmed.
type ConfirmDialog struct {
	id       string
	title    string
	message  string
	kind     ConfirmKind
	visible  bool
	selected int
	width    int

	theme   *styles.Theme
	printer *locale.Printer
}

// NewConfirmDialog creates a hidden dialog.
func NewConfirmDialog(theme *styles.Theme, p *locale.Printer) *ConfirmDialog {
	return &ConfirmDialog{theme: theme, printer: p}
}

// Show opens the dialog. Danger dialogs start on the cancel button.
func (d *ConfirmDialog) Show(id, title, message string, kind ConfirmKind) {
	d.id = id
	d.title = title
	d.message = message
	d.kind = kind
	d.visible = true
	d.selected = buttonConfirm
	if kind == ConfirmDanger {
		d.selected = buttonCancel
	}
}

// IsVisible returns whether the dialog is open.
func (d *ConfirmDialog) IsVisible() bool {
	return d.visible
}

// ID returns the id of the pending confirmation.
func (d *ConfirmDialog) ID() string {
	return d.id
}

// SetWidth sets the available width.
func (d *ConfirmDialog) SetWidth(width int) {
	d.width = width
}

// Update handles keys while visible. The bool reports whether the key was consumed.
func (d *ConfirmDialog) Update(msg tea.Msg) (tea.Cmd, bool) {
	if !d.visible {
		return nil, false
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}

	switch key.String() {
	case "left", "right", "tab", "shift+tab", "h", "l":
		d.selected = 1 - d.selected
		return nil, true
	case "enter", " ":
		return d.close(d.selected == buttonConfirm), true
	case "y":
		return d.close(true), true
	case "n", "esc":
		return d.close(false), true
	}
	// Modal: swallow everything else.
	return nil, true
}

func (d *ConfirmDialog) close(confirmed bool) tea.Cmd {
	id := d.id
	d.visible = false
	return func() tea.Msg {
		return ConfirmResultMsg{ID: id, Confirmed: confirmed}
	}
}

// View renders the dialog box, or "" when hidden.
func (d *ConfirmDialog) View() string {
	if !d.visible {
		return ""
	}

	accent := styles.Indigo
	switch d.kind {
	case ConfirmDanger:
		accent = styles.Rose
	case ConfirmWarning:
		accent = styles.Amber
	}

	boxWidth := 56
	if d.width > 0 && d.width-4 < boxWidth {
		boxWidth = d.width - 4
	}
	if boxWidth < 24 {
		boxWidth = 24
	}

	title := d.theme.DialogTitle.Foreground(accent).Render(d.title)
	body := lipgloss.NewStyle().Width(boxWidth - 6).Render(d.message)

	confirm := d.theme.DialogButton
	cancel := d.theme.DialogButton
	if d.selected == buttonConfirm {
		confirm = d.theme.DialogButtonActive.Background(accent)
	} else {
		cancel = d.theme.DialogButtonActive
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		cancel.Render(d.printer.T(locale.Cancel)),
		confirm.Render(d.printer.T(locale.Confirm)),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, title, body, "", buttons)
	return d.theme.Dialog.BorderForeground(accent).Width(boxWidth).Render(content)
}
