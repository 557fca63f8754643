// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
	"github.com/jeranaias/aidesk/internal/ui/components"
	"github.com/jeranaias/aidesk/internal/ui/styles"
	"github.com/jeranaias/aidesk/internal/util"
)

// =============================================================================
// DOCUMENTS TAB
// =============================================================================

// documentsTab holds the document list, its filter and the detail pane.
type documentsTab struct {
	docs    []model.Document
	loading bool

	filter    textinput.Model
	filtering bool

	cursor int
	offset int

	// Categories of the selected document.
	catsFor     string
	cats        []model.Category
	catsLoading bool

	detail viewport.Model
}

func newDocumentsTab(p *locale.Printer) *documentsTab {
	f := textinput.New()
	f.Placeholder = p.T(locale.DocSearchPlaceholder)
	f.Prompt = "/ "
	f.CharLimit = 200
	return &documentsTab{filter: f, loading: true, detail: viewport.New(40, 10)}
}

// visible returns the documents passing the filter.
func (d *documentsTab) visible() []model.Document {
	return model.FilterDocuments(d.docs, d.filter.Value())
}

func (d *documentsTab) selected() (model.Document, bool) {
	docs := d.visible()
	if d.cursor < 0 || d.cursor >= len(docs) {
		return model.Document{}, false
	}
	return docs[d.cursor], true
}

func (d *documentsTab) setDocuments(docs []model.Document) {
	d.docs = docs
	d.loading = false
	d.clamp()
}

func (d *documentsTab) clamp() {
	n := len(d.visible())
	if d.cursor >= n {
		d.cursor = n - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
}

// move shifts the cursor and reports whether the selection changed.
func (d *documentsTab) move(delta int) bool {
	before := d.cursor
	d.cursor += delta
	d.clamp()
	return d.cursor != before
}

// listWidth splits the tab between list and detail.
func listWidth(total int) int {
	w := total * 2 / 5
	if w < 28 {
		w = 28
	}
	if w > total {
		w = total
	}
	return w
}

func (d *documentsTab) view(theme *styles.Theme, p *locale.Printer, width, height int) string {
	lw := listWidth(width)
	list := d.viewList(theme, p, lw, height)
	if width-lw < 30 {
		return list
	}
	detail := d.viewDetail(theme, p, width-lw, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
}

func (d *documentsTab) viewList(theme *styles.Theme, p *locale.Printer, width, height int) string {
	inner := width - 4
	var sb strings.Builder

	d.filter.Width = inner - 2
	sb.WriteString(d.filter.View())
	sb.WriteString("\n\n")

	docs := d.visible()
	switch {
	case d.loading:
		sb.WriteString(theme.Empty.Render(p.T(locale.Loading)))
	case len(docs) == 0:
		sb.WriteString(theme.Empty.Render(p.T(locale.DocEmpty)))
	default:
		// Each entry takes three rows.
		rows := (height - 3) / 3
		if rows < 1 {
			rows = 1
		}
		if d.cursor < d.offset {
			d.offset = d.cursor
		}
		if d.cursor >= d.offset+rows {
			d.offset = d.cursor - rows + 1
		}
		end := d.offset + rows
		if end > len(docs) {
			end = len(docs)
		}
		for i := d.offset; i < end; i++ {
			doc := docs[i]
			style := theme.ListItem
			if i == d.cursor {
				style = theme.ListItemSelected
			}
			name := util.PadRight(util.TruncateWidth(doc.Name, inner-2), inner-2)
			sb.WriteString(style.Render(name))
			sb.WriteByte('\n')
			sb.WriteString(theme.ListMeta.Render("  " + util.TruncateWidth(util.FirstLine(doc.Preview()), inner-2)))
			sb.WriteByte('\n')
			meta := model.FormatDate(doc.Date())
			if len(doc.Categories) > 0 {
				meta += " " + components.BadgeList(p, theme, doc.Categories)
			}
			sb.WriteString(theme.ListMeta.Render("  ") + meta)
			if i < end-1 {
				sb.WriteByte('\n')
			}
		}
	}

	return theme.Sidebar.Width(width - 1).Height(height).Render(sb.String())
}

func (d *documentsTab) viewDetail(theme *styles.Theme, p *locale.Printer, width, height int) string {
	doc, ok := d.selected()
	if !ok {
		hint := theme.Empty.Render(p.T(locale.DocSelectHint)) + "\n" +
			theme.FieldHint.Render(p.T(locale.DocSelectHintSub))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, hint)
	}

	var head strings.Builder
	head.WriteString(theme.DialogTitle.Render(doc.Name))
	head.WriteByte('\n')
	head.WriteString(theme.ListMeta.Render(fmt.Sprintf("%s  ·  %s  ·  %s",
		model.FormatDate(doc.Date()),
		p.T(locale.DocChunks, doc.ChunksCount),
		p.T(locale.DocChars, doc.CharCount()))))
	head.WriteByte('\n')

	switch {
	case d.catsLoading && d.catsFor == doc.ID:
		head.WriteString(theme.Empty.Render(p.T(locale.Loading)))
	case d.catsFor == doc.ID:
		head.WriteString(components.BadgeList(p, theme, d.cats))
	default:
		head.WriteString(components.BadgeList(p, theme, doc.Categories))
	}
	head.WriteString("\n")

	header := head.String()
	d.detail.Width = width - 2
	d.detail.Height = height - lipgloss.Height(header) - 1
	if d.detail.Height < 3 {
		d.detail.Height = 3
	}

	return lipgloss.NewStyle().PaddingLeft(1).Render(header + "\n" + d.detail.View())
}

// refreshDetail renders the selected document's content into the viewport.
func (d *documentsTab) refreshDetail() {
	doc, ok := d.selected()
	if !ok {
		d.detail.SetContent("")
		return
	}
	lang := doc.Type
	if lang == "" || lang == "text" {
		lang = doc.Name
	}
	d.detail.SetContent(components.HighlightLines(doc.Content, lang, 0))
	d.detail.GotoTop()
}
