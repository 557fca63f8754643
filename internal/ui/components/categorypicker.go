// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
	"github.com/jeranaias/aidesk/internal/ui/styles"
)

// PickerMode selects single or multi selection.
type PickerMode int

const (
	// PickSingle selects at most one category. The first row means "none".
	PickSingle PickerMode = iota
	// PickMulti toggles any number of categories.
	PickMulti
)

// CategoriesPickedMsg is emitted when the picker is confirmed.
type CategoriesPickedMsg struct {
	IDs []string
}

// CategoryPickCancelledMsg is emitted when the picker is dismissed.
type CategoryPickCancelledMsg struct{}

// CategoryPicker selects categories from a loaded list.
type CategoryPicker struct {
	mode       PickerMode
	categories []model.Category
	selected   map[string]bool
	cursor     int

	theme   *styles.Theme
	printer *locale.Printer
}

// NewCategoryPicker creates a picker in the given mode.
func NewCategoryPicker(theme *styles.Theme, p *locale.Printer, mode PickerMode) *CategoryPicker {
	return &CategoryPicker{
		mode:     mode,
		selected: make(map[string]bool),
		theme:    theme,
		printer:  p,
	}
}

// SetCategories replaces the available categories. Selections of categories
// that no longer exist are dropped.
func (c *CategoryPicker) SetCategories(cats []model.Category) {
	c.categories = cats
	for id := range c.selected {
		if _, ok := model.FindCategory(cats, id); !ok {
			delete(c.selected, id)
		}
	}
	if c.cursor >= c.rows() {
		c.cursor = c.rows() - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
}

// SetSelected replaces the selection.
func (c *CategoryPicker) SetSelected(ids []string) {
	c.selected = make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		c.selected[id] = true
		if c.mode == PickSingle {
			break
		}
	}
}

// Selected returns the selected ids in category order.
func (c *CategoryPicker) Selected() []string {
	var ids []string
	for _, cat := range c.categories {
		if c.selected[cat.ID] {
			ids = append(ids, cat.ID)
		}
	}
	return ids
}

// SelectedOne returns the single selection, or "".
func (c *CategoryPicker) SelectedOne() string {
	if ids := c.Selected(); len(ids) > 0 {
		return ids[0]
	}
	return ""
}

// rows counts the "none" row in single mode.
func (c *CategoryPicker) rows() int {
	if c.mode == PickSingle {
		return len(c.categories) + 1
	}
	return len(c.categories)
}

// categoryAt maps a row to a category; ok is false for the "none" row.
func (c *CategoryPicker) categoryAt(row int) (model.Category, bool) {
	if c.mode == PickSingle {
		row--
	}
	if row < 0 || row >= len(c.categories) {
		return model.Category{}, false
	}
	return c.categories[row], true
}

// Toggle flips the row under the cursor. In single mode it selects that row.
func (c *CategoryPicker) Toggle() {
	cat, ok := c.categoryAt(c.cursor)
	if c.mode == PickSingle {
		c.selected = make(map[string]bool)
		if ok {
			c.selected[cat.ID] = true
		}
		return
	}
	if !ok {
		return
	}
	if c.selected[cat.ID] {
		delete(c.selected, cat.ID)
	} else {
		c.selected[cat.ID] = true
	}
}

// Update handles keys: up/down move, space toggles, enter confirms, esc cancels.
func (c *CategoryPicker) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < c.rows()-1 {
			c.cursor++
		}
	case " ", "x":
		c.Toggle()
	case "enter":
		if c.mode == PickSingle {
			c.Toggle()
		}
		ids := c.Selected()
		return func() tea.Msg { return CategoriesPickedMsg{IDs: ids} }
	case "esc":
		return func() tea.Msg { return CategoryPickCancelledMsg{} }
	}
	return nil
}

// View renders the picker rows.
func (c *CategoryPicker) View() string {
	var lines []string
	if c.mode == PickSingle {
		lines = append(lines, c.row(0, c.printer.T(locale.CategoryAll), len(c.selected) == 0))
	} else {
		lines = append(lines, c.theme.FieldHint.Render(c.printer.T(locale.CategorySelectMany)))
	}
	if len(c.categories) == 0 {
		lines = append(lines, c.theme.Empty.Render(c.printer.T(locale.CategoryEmpty)))
	}
	for i, cat := range c.categories {
		row := i
		if c.mode == PickSingle {
			row++
		}
		lines = append(lines, c.row(row, styles.RenderBadge(cat.Name), c.selected[cat.ID]))
	}
	return strings.Join(lines, "\n")
}

func (c *CategoryPicker) row(i int, label string, checked bool) string {
	mark := "[ ] "
	if c.mode == PickSingle {
		mark = "( ) "
		if checked {
			mark = "(*) "
		}
	} else if checked {
		mark = "[x] "
	}
	prefix := "  "
	if i == c.cursor {
		prefix = c.theme.FieldFocused.Render("> ")
	}
	return prefix + mark + label
}

// BadgeList renders category names as colored pills, or the "none" text.
func BadgeList(p *locale.Printer, theme *styles.Theme, cats []model.Category) string {
	if len(cats) == 0 {
		return theme.ListMeta.Render(p.T(locale.CategoryNone))
	}
	badges := make([]string, 0, len(cats))
	for _, cat := range cats {
		badges = append(badges, styles.RenderBadge(cat.Name))
	}
	return strings.Join(badges, " ")
}
