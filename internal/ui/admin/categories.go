// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
	"github.com/jeranaias/aidesk/internal/ui/styles"
	"github.com/jeranaias/aidesk/internal/util"
)

// =============================================================================
// CATEGORIES TAB
// =============================================================================

// categoriesTab lists categories with their document counts.
type categoriesTab struct {
	cats    []model.Category
	counts  map[string]int
	loading bool

	filter    textinput.Model
	filtering bool

	cursor int
	grid   bool
}

const gridCardWidth = 30

func newCategoriesTab(p *locale.Printer) *categoriesTab {
	f := textinput.New()
	f.Placeholder = p.T(locale.CategorySearch)
	f.Prompt = "/ "
	f.CharLimit = 200
	return &categoriesTab{filter: f, loading: true, grid: true, counts: map[string]int{}}
}

func (c *categoriesTab) visible() []model.Category {
	return model.FilterCategories(c.cats, c.filter.Value())
}

func (c *categoriesTab) selected() (model.Category, bool) {
	cats := c.visible()
	if c.cursor < 0 || c.cursor >= len(cats) {
		return model.Category{}, false
	}
	return cats[c.cursor], true
}

func (c *categoriesTab) setCategories(cats []model.Category) {
	c.cats = cats
	c.loading = false
	c.clamp()
}

func (c *categoriesTab) clamp() {
	n := len(c.visible())
	if c.cursor >= n {
		c.cursor = n - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
}

// move shifts the cursor. In grid view up and down jump a whole row.
func (c *categoriesTab) move(delta, perRow int) {
	if c.grid && perRow > 1 && (delta == 1 || delta == -1) {
		delta *= perRow
	}
	next := c.cursor + delta
	if next < 0 || next >= len(c.visible()) {
		return
	}
	c.cursor = next
}

func perRow(width int) int {
	n := width / gridCardWidth
	if n < 1 {
		n = 1
	}
	return n
}

func (c *categoriesTab) view(theme *styles.Theme, p *locale.Printer, width, height int) string {
	var sb strings.Builder
	sb.WriteString(theme.WelcomeTitle.Render(p.T(locale.CategoryTitle)))
	sb.WriteByte('\n')
	sb.WriteString(theme.FieldHint.Render(p.T(locale.CategorySubtitle)))
	sb.WriteString("\n\n")

	c.filter.Width = width - 6
	sb.WriteString(c.filter.View())
	sb.WriteString("\n\n")

	cats := c.visible()
	switch {
	case c.loading:
		sb.WriteString(theme.Empty.Render(p.T(locale.Loading)))
	case len(cats) == 0:
		sb.WriteString(theme.Empty.Render(p.T(locale.CategoryEmpty)))
	case c.grid:
		sb.WriteString(c.viewGrid(theme, p, cats, width))
	default:
		sb.WriteString(c.viewTable(theme, p, cats, width))
	}

	return lipgloss.NewStyle().Padding(0, 1).MaxHeight(height).Render(sb.String())
}

func (c *categoriesTab) viewGrid(theme *styles.Theme, p *locale.Printer, cats []model.Category, width int) string {
	n := perRow(width)
	var rows []string
	for start := 0; start < len(cats); start += n {
		end := start + n
		if end > len(cats) {
			end = len(cats)
		}
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cat := cats[i]
			style := theme.CategoryCard.Width(gridCardWidth - 4)
			if i == c.cursor {
				style = theme.CategoryCardFocused.Width(gridCardWidth - 4)
			}
			lines := []string{
				styles.CategoryBadge(cat.Name).Render(styles.CategoryIcon(cat.Name) + " " + util.TruncateWidth(cat.Name, gridCardWidth-12)),
				theme.FieldHint.Render(util.TruncateWidth(util.FirstLine(cat.Description), gridCardWidth-6)),
				theme.ListMeta.Render(p.T(locale.CategoryDocCount, c.counts[cat.ID])),
			}
			cards = append(cards, style.Render(strings.Join(lines, "\n")))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (c *categoriesTab) viewTable(theme *styles.Theme, p *locale.Printer, cats []model.Category, width int) string {
	nameW := 24
	countW := 14
	descW := width - nameW - countW - 8
	if descW < 10 {
		descW = 10
	}

	var sb strings.Builder
	sb.WriteString(theme.TableHead.Render(
		util.PadRight("Name", nameW) + " " + util.PadRight("Description", descW) + " " + "Documents"))
	for i, cat := range cats {
		sb.WriteByte('\n')
		style := theme.ListItem
		if i == c.cursor {
			style = theme.ListItemSelected
		}
		name := styles.CategoryIcon(cat.Name) + " " + cat.Name
		row := util.PadRight(util.TruncateWidth(name, nameW), nameW) + " " +
			util.PadRight(util.TruncateWidth(util.FirstLine(cat.Description), descW), descW) + " " +
			util.PadRight(p.T(locale.CategoryDocCount, c.counts[cat.ID]), countW)
		sb.WriteString(style.Render(row))
	}
	return sb.String()
}
