// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
	"github.com/jeranaias/aidesk/internal/ui/components"
	"github.com/jeranaias/aidesk/internal/ui/styles"
)

// =============================================================================
// DOCUMENT FORM
// =============================================================================

const (
	docFieldName = iota
	docFieldContent
	docFieldCategories
)

// docForm creates a document, or edits the content of an existing one.
type docForm struct {
	editing bool
	docID   string
	docName string

	name    textinput.Model
	content textarea.Model
	picker  *components.CategoryPicker
	focus   int
}

func newDocForm(theme *styles.Theme, p *locale.Printer, cats []model.Category) *docForm {
	name := textinput.New()
	name.Placeholder = p.T(locale.DocNamePlaceholder)
	name.CharLimit = 255

	content := textarea.New()
	content.Placeholder = p.T(locale.DocContentPlaceholder)
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.MaxHeight = 0

	picker := components.NewCategoryPicker(theme, p, components.PickMulti)
	picker.SetCategories(cats)

	f := &docForm{name: name, content: content, picker: picker}
	f.setFocus(docFieldName)
	return f
}

func editDocForm(theme *styles.Theme, p *locale.Printer, doc model.Document) *docForm {
	f := newDocForm(theme, p, nil)
	f.editing = true
	f.docID = doc.ID
	f.docName = doc.Name
	f.content.SetValue(doc.Content)
	f.setFocus(docFieldContent)
	return f
}

// fields lists the focusable fields in order.
func (f *docForm) fields() []int {
	if f.editing {
		return []int{docFieldContent}
	}
	return []int{docFieldName, docFieldContent, docFieldCategories}
}

func (f *docForm) setFocus(field int) {
	f.focus = field
	f.name.Blur()
	f.content.Blur()
	switch field {
	case docFieldName:
		f.name.Focus()
	case docFieldContent:
		f.content.Focus()
	}
}

func (f *docForm) cycle(step int) {
	fields := f.fields()
	idx := 0
	for i, field := range fields {
		if field == f.focus {
			idx = i
		}
	}
	f.setFocus(fields[(idx+step+len(fields))%len(fields)])
}

func (f *docForm) setSize(width, height int) {
	f.name.Width = width - 6
	f.content.SetWidth(width - 4)
	h := height - 12
	if h < 3 {
		h = 3
	}
	f.content.SetHeight(h)
}

// values returns the trimmed name, content and selected category ids.
func (f *docForm) values() (name, content string, categoryIDs []string) {
	return strings.TrimSpace(f.name.Value()), strings.TrimSpace(f.content.Value()), f.picker.Selected()
}

func (f *docForm) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		f.cycle(1)
		return nil
	case "shift+tab":
		f.cycle(-1)
		return nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case docFieldName:
		f.name, cmd = f.name.Update(msg)
	case docFieldContent:
		f.content, cmd = f.content.Update(msg)
	case docFieldCategories:
		// Enter would submit the picker; the form saves with ctrl+s instead.
		if msg.String() != "enter" && msg.String() != "esc" {
			cmd = f.picker.Update(msg)
		}
	}
	return cmd
}

func (f *docForm) view(theme *styles.Theme, p *locale.Printer, width int) string {
	label := func(k locale.Key, field int) string {
		if f.focus == field {
			return theme.FieldFocused.Render("▸ " + p.T(k))
		}
		return theme.FieldLabel.Render("  " + p.T(k))
	}

	title := p.T(locale.DocNew)
	if f.editing {
		title = p.T(locale.Edit) + ": " + f.docName
	}

	parts := []string{theme.DialogTitle.Render(title), ""}
	if !f.editing {
		parts = append(parts, label(locale.DocNameLabel, docFieldName), "  "+f.name.View(), "")
	}
	parts = append(parts, label(locale.DocContentLabel, docFieldContent), f.content.View())
	if !f.editing {
		parts = append(parts, "", label(locale.CategorySelectMany, docFieldCategories), f.picker.View())
	}
	parts = append(parts, "", theme.FieldHint.Render("tab: chuyển ô  ctrl+s: "+p.T(locale.Save)+"  esc: "+p.T(locale.Cancel)))

	return theme.Panel.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// =============================================================================
// CATEGORY FORM
// =============================================================================

// categoryForm creates or edits a category.
type categoryForm struct {
	editing bool
	id      string

	name  textinput.Model
	desc  textinput.Model
	focus int
}

func newCategoryForm(p *locale.Printer, existing *model.Category) *categoryForm {
	name := textinput.New()
	name.Placeholder = p.T(locale.CategoryNamePlaceholder)
	name.CharLimit = 100

	desc := textinput.New()
	desc.Placeholder = p.T(locale.CategoryDescPlaceholder)
	desc.CharLimit = 500

	f := &categoryForm{name: name, desc: desc}
	if existing != nil {
		f.editing = true
		f.id = existing.ID
		f.name.SetValue(existing.Name)
		f.desc.SetValue(existing.Description)
	}
	f.setFocus(0)
	return f
}

func (f *categoryForm) setFocus(i int) {
	f.focus = i
	if i == 0 {
		f.name.Focus()
		f.desc.Blur()
	} else {
		f.name.Blur()
		f.desc.Focus()
	}
}

func (f *categoryForm) setWidth(width int) {
	f.name.Width = width - 8
	f.desc.Width = width - 8
}

func (f *categoryForm) values() (name, description string) {
	return strings.TrimSpace(f.name.Value()), strings.TrimSpace(f.desc.Value())
}

func (f *categoryForm) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		f.setFocus(1 - f.focus)
		return nil
	}
	var cmd tea.Cmd
	if f.focus == 0 {
		f.name, cmd = f.name.Update(msg)
	} else {
		f.desc, cmd = f.desc.Update(msg)
	}
	return cmd
}

func (f *categoryForm) view(theme *styles.Theme, p *locale.Printer, width int) string {
	title := p.T(locale.CategoryTitle)
	if f.editing {
		title = p.T(locale.Edit) + ": " + f.name.Value()
	}
	parts := []string{
		theme.DialogTitle.Render(title),
		"",
		f.name.View(),
		f.desc.View(),
		"",
		theme.FieldHint.Render("enter/ctrl+s: " + p.T(locale.Save) + "  esc: " + p.T(locale.Cancel)),
	}
	boxWidth := 60
	if width-4 < boxWidth {
		boxWidth = width - 4
	}
	return theme.Dialog.Width(boxWidth).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
