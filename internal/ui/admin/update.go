// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/aidesk/internal/api"
	"github.com/jeranaias/aidesk/internal/chunking"
	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
	"github.com/jeranaias/aidesk/internal/ui/components"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages for the dashboard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case DocumentsLoadedMsg:
		if msg.Err != nil {
			m.documents.loading = false
			m.failure(locale.ErrLoadDocuments, msg.Err)
			return m, nil
		}
		m.documents.setDocuments(msg.Documents)
		return m, m.selectDocument(false)

	case DocCategoriesLoadedMsg:
		m.handleDocCategories(msg)
		return m, nil

	case DocumentSavedMsg:
		m.saving = false
		if msg.Err != nil {
			k := locale.ErrUpdateDocument
			if msg.Created {
				k = locale.ErrCreateDocument
			}
			m.failure(k, msg.Err)
			return m, nil
		}
		k := locale.DocUpdated
		if msg.Created {
			k = locale.DocCreated
		}
		m.banners.Success(m.printer.T(k))
		m.closeOverlay()
		return m, loadDocumentsCmd(m.client, m.timeout)

	case DocumentDeletedMsg:
		if msg.Err != nil {
			m.failure(locale.ErrDeleteDocument, msg.Err)
			return m, nil
		}
		m.banners.Success(m.printer.T(locale.DocDeleted))
		return m, loadDocumentsCmd(m.client, m.timeout)

	case ReembedDoneMsg:
		if msg.Err != nil {
			k := locale.ErrReembed
			if msg.Semantic {
				k = locale.ErrSemanticReembed
			}
			m.failure(k, msg.Err)
			return m, nil
		}
		k := locale.DocReembedStarted
		if msg.Semantic {
			k = locale.DocSemanticStarted
		}
		m.banners.Success(m.printer.T(k))
		return m, loadDocumentsCmd(m.client, m.timeout)

	case DocCategoriesSavedMsg:
		m.saving = false
		if msg.Err != nil {
			m.failure(locale.ErrUpdateDocCategories, msg.Err)
			return m, nil
		}
		m.banners.Success(m.printer.T(locale.DocCategoriesUpdated))
		m.closeOverlay()
		m.documents.catsFor = ""
		return m, loadDocumentsCmd(m.client, m.timeout)

	case CategoriesLoadedMsg:
		if msg.Err != nil {
			m.categories.loading = false
			m.failure(locale.ErrLoadCategories, msg.Err)
			return m, nil
		}
		m.allCategories = msg.Categories
		m.categories.setCategories(msg.Categories)
		return m, categoryCountsCmd(m.client, m.timeout, msg.Categories)

	case CategoryCountsMsg:
		m.categories.counts = msg.Counts
		return m, nil

	case CategorySavedMsg:
		m.saving = false
		if msg.Err != nil {
			k := locale.ErrUpdateCategory
			if msg.Created {
				k = locale.ErrCreateCategory
			}
			m.failure(k, msg.Err)
			return m, nil
		}
		k := locale.CategoryUpdated
		if msg.Created {
			k = locale.CategoryCreated
		}
		m.banners.Success(m.printer.T(k))
		m.closeOverlay()
		return m, m.Reload()

	case CategoryDeletedMsg:
		if msg.Err != nil {
			m.failure(locale.ErrDeleteCategory, msg.Err)
			return m, nil
		}
		m.banners.Success(m.printer.T(locale.CategoryDeleted))
		return m, m.Reload()

	case components.ConfirmResultMsg:
		return m, m.handleConfirm(msg)

	case components.CategoriesPickedMsg:
		if m.overlay != overlayDocCategories || m.saving {
			return m, nil
		}
		m.saving = true
		return m, saveDocCategoriesCmd(m.client, m.timeout, m.pickerDocID, msg.IDs)

	case components.CategoryPickCancelledMsg:
		if m.overlay == overlayDocCategories {
			m.closeOverlay()
		}
		return m, nil
	}

	return m, m.forward(msg)
}

// forward passes other messages (cursor blink) to the focused input.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.overlay == overlayDocForm && m.docForm != nil:
		if m.docForm.focus == docFieldName {
			m.docForm.name, cmd = m.docForm.name.Update(msg)
		} else if m.docForm.focus == docFieldContent {
			m.docForm.content, cmd = m.docForm.content.Update(msg)
		}
	case m.overlay == overlayCategoryForm && m.catForm != nil:
		if m.catForm.focus == 0 {
			m.catForm.name, cmd = m.catForm.name.Update(msg)
		} else {
			m.catForm.desc, cmd = m.catForm.desc.Update(msg)
		}
	case m.overlay == overlayChunking && m.chunkPanel != nil && m.chunkPanel.editing:
		m.chunkPanel.input, cmd = m.chunkPanel.input.Update(msg)
	case m.documents.filtering:
		m.documents.filter, cmd = m.documents.filter.Update(msg)
	case m.categories.filtering:
		m.categories.filter, cmd = m.categories.filter.Update(msg)
	}
	return cmd
}

// failure logs err and shows the message for k, with the backend's reason
// when it sent one.
func (m *Model) failure(k locale.Key, err error) {
	log.Printf("admin: %s: %v", k, err)
	text := m.printer.T(k)
	var ce *api.ClientError
	if errors.As(err, &ce) && ce.Status != 0 && ce.Message != "" && !strings.Contains(text, ce.Message) {
		text += ": " + ce.Message
	}
	m.banners.Error(text)
}

func categoryIDs(cats []model.Category) []string {
	ids := make([]string, len(cats))
	for i, c := range cats {
		ids[i] = c.ID
	}
	return ids
}

func (m *Model) closeOverlay() {
	m.overlay = overlayNone
	m.docForm = nil
	m.catForm = nil
	m.docPicker = nil
	m.pickerDocID = ""
	m.chunkPanel = nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirm.IsVisible() {
		cmd, _ := m.confirm.Update(msg)
		return cmd
	}

	switch m.overlay {
	case overlayDocForm:
		return m.handleDocFormKey(msg)
	case overlayCategoryForm:
		return m.handleCategoryFormKey(msg)
	case overlayDocCategories:
		if m.saving {
			return nil
		}
		return m.docPicker.Update(msg)
	case overlayChunking:
		return m.handleChunkingKey(msg)
	}

	if m.documents.filtering && m.tab == TabDocuments {
		return m.handleFilterKey(msg, &m.documents.filtering, func() tea.Cmd {
			var cmd tea.Cmd
			m.documents.filter, cmd = m.documents.filter.Update(msg)
			m.documents.clamp()
			return tea.Batch(cmd, m.selectDocument(false))
		})
	}
	if m.categories.filtering && m.tab == TabCategories {
		return m.handleFilterKey(msg, &m.categories.filtering, func() tea.Cmd {
			var cmd tea.Cmd
			m.categories.filter, cmd = m.categories.filter.Update(msg)
			m.categories.clamp()
			return cmd
		})
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		return func() tea.Msg { return SwitchToChatMsg{} }
	case key.Matches(msg, m.keys.SwitchTab):
		if m.tab == TabDocuments {
			m.tab = TabCategories
		} else {
			m.tab = TabDocuments
		}
		return nil
	case key.Matches(msg, m.keys.Chunking):
		m.openChunking()
		return nil
	}

	if m.tab == TabCategories {
		return m.handleCategoriesKey(msg)
	}
	return m.handleDocumentsKey(msg)
}

// handleFilterKey edits a filter. Enter keeps the term, esc clears it.
func (m *Model) handleFilterKey(msg tea.KeyMsg, filtering *bool, edit func() tea.Cmd) tea.Cmd {
	switch msg.String() {
	case "enter":
		*filtering = false
		m.documents.filter.Blur()
		m.categories.filter.Blur()
		return nil
	case "esc":
		*filtering = false
		if m.tab == TabDocuments {
			m.documents.filter.Reset()
			m.documents.filter.Blur()
			m.documents.clamp()
			return m.selectDocument(false)
		}
		m.categories.filter.Reset()
		m.categories.filter.Blur()
		m.categories.clamp()
		return nil
	}
	return edit()
}

func (m *Model) handleDocumentsKey(msg tea.KeyMsg) tea.Cmd {
	d := m.documents
	switch {
	case key.Matches(msg, m.keys.Up):
		if d.move(-1) {
			return m.selectDocument(false)
		}
	case key.Matches(msg, m.keys.Down):
		if d.move(1) {
			return m.selectDocument(false)
		}
	case key.Matches(msg, m.keys.Filter):
		d.filtering = true
		return d.filter.Focus()
	case key.Matches(msg, m.keys.New):
		m.openDocForm(nil)
	case msg.String() == "enter":
		return m.selectDocument(true)
	case msg.String() == "pgup":
		d.detail.HalfViewUp()
	case msg.String() == "pgdown":
		d.detail.HalfViewDown()
	}

	doc, ok := d.selected()
	if !ok {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Edit):
		m.openDocForm(&doc)
	case key.Matches(msg, m.keys.Delete):
		m.confirm.Show(confirmDeleteDoc+doc.ID,
			m.printer.T(locale.ConfirmDeleteTitle),
			m.printer.T(locale.ConfirmDeleteDocument),
			components.ConfirmDanger)
	case key.Matches(msg, m.keys.Reembed):
		m.confirm.Show(confirmReembed+doc.ID,
			m.printer.T(locale.ConfirmReembedTitle),
			m.printer.T(locale.ConfirmReembed),
			components.ConfirmWarning)
	case key.Matches(msg, m.keys.Semantic):
		m.confirm.Show(confirmSemantic+doc.ID,
			m.printer.T(locale.ConfirmSemanticTitle),
			m.printer.T(locale.ConfirmSemanticReembed),
			components.ConfirmWarning)
	case key.Matches(msg, m.keys.Categories):
		m.openDocPicker(doc.ID, doc.CategoryIDs())
	}
	return nil
}

func (m *Model) handleCategoriesKey(msg tea.KeyMsg) tea.Cmd {
	c := m.categories
	n := perRow(m.width - 2)
	switch msg.String() {
	case "up", "k":
		c.move(-1, n)
		return nil
	case "down", "j":
		c.move(1, n)
		return nil
	case "left", "h":
		c.move(-1, 1)
		return nil
	case "right", "l":
		c.move(1, 1)
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Filter):
		c.filtering = true
		return c.filter.Focus()
	case key.Matches(msg, m.keys.New):
		m.openCategoryForm(nil)
	case key.Matches(msg, m.keys.ToggleView):
		c.grid = !c.grid
	case key.Matches(msg, m.keys.Edit):
		if cat, ok := c.selected(); ok {
			m.openCategoryForm(&cat)
		}
	case key.Matches(msg, m.keys.Delete):
		if cat, ok := c.selected(); ok {
			m.confirm.Show(confirmDeleteCategory+cat.ID,
				m.printer.T(locale.ConfirmDeleteTitle),
				m.printer.T(locale.ConfirmDeleteCategory),
				components.ConfirmDanger)
		}
	}
	return nil
}

// =============================================================================
// DOCUMENTS
// =============================================================================

// selectDocument refreshes the detail pane and loads the categories of the
// selected document when they are not loaded yet (or always, with force).
func (m *Model) selectDocument(force bool) tea.Cmd {
	d := m.documents
	d.refreshDetail()
	doc, ok := d.selected()
	if !ok {
		return nil
	}
	if !force && d.catsFor == doc.ID {
		return nil
	}
	d.catsFor = doc.ID
	d.cats = nil
	d.catsLoading = true
	return loadDocCategoriesCmd(m.client, m.timeout, doc.ID)
}

func (m *Model) handleDocCategories(msg DocCategoriesLoadedMsg) {
	d := m.documents
	if d.catsFor != msg.DocumentID {
		return
	}
	d.catsLoading = false
	if msg.Err != nil {
		m.failure(locale.ErrLoadDocCategories, msg.Err)
		d.cats = nil
		return
	}
	d.cats = msg.Categories
	if m.overlay == overlayDocCategories && m.pickerDocID == msg.DocumentID {
		m.docPicker.SetSelected(categoryIDs(msg.Categories))
	}
}

func (m *Model) openDocForm(doc *model.Document) {
	if doc == nil {
		m.docForm = newDocForm(m.theme, m.printer, m.allCategories)
	} else {
		m.docForm = editDocForm(m.theme, m.printer, *doc)
	}
	m.docForm.setSize(m.width, m.bodyHeight())
	m.overlay = overlayDocForm
}

func (m *Model) handleDocFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.String() == "esc":
		m.closeOverlay()
		return nil
	case key.Matches(msg, m.keys.Save):
		return m.submitDocForm()
	}
	return m.docForm.update(msg)
}

func (m *Model) submitDocForm() tea.Cmd {
	if m.saving {
		return nil
	}
	f := m.docForm
	name, content, ids := f.values()
	if f.editing {
		if content == "" {
			m.banners.Error(m.printer.T(locale.RequireContent))
			return nil
		}
		m.saving = true
		return updateDocumentCmd(m.client, m.timeout, f.docID, content)
	}
	if name == "" || content == "" {
		m.banners.Error(m.printer.T(locale.RequireNameAndContent))
		return nil
	}
	m.saving = true
	return createDocumentCmd(m.client, m.timeout, name, content, ids)
}

func (m *Model) openDocPicker(docID string, fallback []string) {
	picker := components.NewCategoryPicker(m.theme, m.printer, components.PickMulti)
	picker.SetCategories(m.allCategories)
	if m.documents.catsFor == docID && !m.documents.catsLoading {
		picker.SetSelected(categoryIDs(m.documents.cats))
	} else {
		picker.SetSelected(fallback)
	}
	m.docPicker = picker
	m.pickerDocID = docID
	m.overlay = overlayDocCategories
}

// =============================================================================
// CATEGORIES
// =============================================================================

func (m *Model) openCategoryForm(existing *model.Category) {
	m.catForm = newCategoryForm(m.printer, existing)
	m.catForm.setWidth(60)
	m.overlay = overlayCategoryForm
}

func (m *Model) handleCategoryFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.String() == "esc":
		m.closeOverlay()
		return nil
	case msg.String() == "enter", key.Matches(msg, m.keys.Save):
		return m.submitCategoryForm()
	}
	return m.catForm.update(msg)
}

func (m *Model) submitCategoryForm() tea.Cmd {
	if m.saving {
		return nil
	}
	f := m.catForm
	name, desc := f.values()
	if name == "" {
		m.banners.Error(m.printer.T(locale.RequireCategoryName))
		return nil
	}
	m.saving = true
	if f.editing {
		return updateCategoryCmd(m.client, m.timeout, f.id, name, desc)
	}
	return createCategoryCmd(m.client, m.timeout, name, desc)
}

// =============================================================================
// CHUNKING
// =============================================================================

func (m *Model) openChunking() {
	base := m.chunkBase
	if m.chunkConfig != nil {
		base = *m.chunkConfig
	}
	m.chunkPanel = newChunkingPanel(base)
	m.overlay = overlayChunking
}

func (m *Model) handleChunkingKey(msg tea.KeyMsg) tea.Cmd {
	p := m.chunkPanel
	if !p.editing && !p.showInfo {
		switch {
		case msg.String() == "esc":
			m.closeOverlay()
			return nil
		case key.Matches(msg, m.keys.Save):
			m.saveChunking()
			return nil
		}
	}
	cmd, err := p.update(msg)
	if err != nil {
		m.banners.Error(chunkingErrorText(m.printer, err))
	}
	return cmd
}

// saveChunking keeps the draft in dashboard state. Nothing is written to disk.
func (m *Model) saveChunking() {
	cfg := m.chunkPanel.draft
	if err := cfg.Validate(); err != nil {
		m.banners.Error(chunkingErrorText(m.printer, err))
		return
	}
	m.chunkConfig = &cfg
	m.banners.Success(m.printer.T(locale.ChunkingSaved))
	m.closeOverlay()
}

// chunkingErrorText names the first rejected field by its form label and
// states its range.
func chunkingErrorText(p *locale.Printer, err error) string {
	var ferr *chunking.FieldError
	switch {
	case errors.As(err, &ferr):
		b, ok := ferr.Field.Bounds()
		if !ok {
			return p.T(locale.ErrChunkingValue, ferr.Field.Label())
		}
		return p.T(locale.ErrChunkingRange, ferr.Field.Label(),
			strconv.FormatFloat(b.Min, 'f', -1, 64), strconv.FormatFloat(b.Max, 'f', -1, 64))
	case errors.Is(err, chunking.ErrMinExceedsMax):
		return p.T(locale.ErrChunkingMinOverMax)
	case errors.Is(err, chunking.ErrOverlapTooLarge):
		return p.T(locale.ErrChunkingOverlap)
	default:
		return err.Error()
	}
}

// =============================================================================
// CONFIRMATIONS
// =============================================================================

func (m *Model) handleConfirm(msg components.ConfirmResultMsg) tea.Cmd {
	if !msg.Confirmed {
		return nil
	}
	if id, ok := strings.CutPrefix(msg.ID, confirmDeleteDoc); ok {
		return deleteDocumentCmd(m.client, m.timeout, id)
	}
	if id, ok := strings.CutPrefix(msg.ID, confirmReembed); ok {
		return reembedCmd(m.client, m.timeout, id)
	}
	if id, ok := strings.CutPrefix(msg.ID, confirmSemantic); ok {
		return semanticReembedCmd(m.client, m.timeout, id, m.chunkConfig)
	}
	if id, ok := strings.CutPrefix(msg.ID, confirmDeleteCategory); ok {
		return deleteCategoryCmd(m.client, m.timeout, id)
	}
	return nil
}
