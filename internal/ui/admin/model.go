// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/aidesk/internal/chunking"
	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
	"github.com/jeranaias/aidesk/internal/ui/components"
	"github.com/jeranaias/aidesk/internal/ui/styles"
)

// Tab identifies a dashboard tab.
type Tab int

const (
	TabDocuments Tab = iota
	TabCategories
)

// overlay identifies the modal shown over the tabs.
type overlay int

const (
	overlayNone overlay = iota
	overlayDocForm
	overlayDocCategories
	overlayCategoryForm
	overlayChunking
)

// Confirmation ids carry the target id after the prefix.
const (
	confirmDeleteDoc      = "doc-delete:"
	confirmReembed        = "doc-reembed:"
	confirmSemantic       = "doc-semantic:"
	confirmDeleteCategory = "category-delete:"
)

// Options configures the dashboard.
type Options struct {
	Client  Backend
	Theme   *styles.Theme
	Printer *locale.Printer

	// Banners is shared with the rest of the application.
	Banners *components.BannerManager

	Timeout time.Duration

	// ChunkingPreset seeds the chunking panel draft.
	ChunkingPreset string
}

// Model is the admin dashboard.
type Model struct {
	client  Backend
	timeout time.Duration
	theme   *styles.Theme
	printer *locale.Printer
	keys    KeyMap

	tab        Tab
	documents  *documentsTab
	categories *categoriesTab

	// Every category, for pickers and badges.
	allCategories []model.Category

	overlay     overlay
	docForm     *docForm
	catForm     *categoryForm
	docPicker   *components.CategoryPicker
	pickerDocID string
	chunkPanel  *chunkingPanel
	confirm     *components.ConfirmDialog
	banners     *components.BannerManager
	saving      bool

	// chunkBase seeds the panel; chunkConfig is the saved config sent with
	// semantic re-embedding.
	chunkBase   chunking.Config
	chunkConfig *chunking.Config

	width  int
	height int
}

// New creates the dashboard. Call Init to load its data.
func New(opts Options) *Model {
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}
	p := opts.Printer
	if p == nil {
		p = locale.Default()
	}
	banners := opts.Banners
	if banners == nil {
		banners = components.NewBannerManager()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	base := chunking.Default()
	if preset, err := chunking.LookupPreset(opts.ChunkingPreset); err == nil {
		base = preset.Config
	}

	return &Model{
		client:     opts.Client,
		timeout:    timeout,
		theme:      theme,
		printer:    p,
		keys:       DefaultKeyMap(),
		documents:  newDocumentsTab(p),
		categories: newCategoriesTab(p),
		confirm:    components.NewConfirmDialog(theme, p),
		banners:    banners,
		chunkBase:  base,
		width:      80,
		height:     24,
	}
}

// Init loads documents and categories.
func (m *Model) Init() tea.Cmd {
	return m.Reload()
}

// Reload refetches documents and categories.
func (m *Model) Reload() tea.Cmd {
	return tea.Batch(
		loadDocumentsCmd(m.client, m.timeout),
		loadCategoriesCmd(m.client, m.timeout),
	)
}

// Keys returns the bindings shown in the status bar.
func (m *Model) Keys() KeyMap {
	return m.keys
}

// Tab returns the active tab.
func (m *Model) Tab() Tab {
	return m.tab
}

// Documents returns the loaded documents.
func (m *Model) Documents() []model.Document {
	return m.documents.docs
}

// Categories returns the loaded categories.
func (m *Model) Categories() []model.Category {
	return m.allCategories
}

// ChunkingConfig returns the saved chunking config, or nil when none was saved.
func (m *Model) ChunkingConfig() *chunking.Config {
	return m.chunkConfig
}

// SetChunkingPreset reseeds the panel draft, used on config reload. A saved
// config is kept.
func (m *Model) SetChunkingPreset(key string) {
	if preset, err := chunking.LookupPreset(key); err == nil {
		m.chunkBase = preset.Config
	}
}

// SetClient points later requests at a different backend.
func (m *Model) SetClient(client Backend) {
	m.client = client
}

// Modal reports whether a form, panel or dialog has the keyboard.
func (m *Model) Modal() bool {
	return m.overlay != overlayNone || m.confirm.IsVisible() ||
		m.documents.filtering || m.categories.filtering
}

// SetSize sets the area available to the dashboard.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.confirm.SetWidth(width)
	if m.docForm != nil {
		m.docForm.setSize(width, m.bodyHeight())
	}
	if m.catForm != nil {
		m.catForm.setWidth(60)
	}
}

// bodyHeight is the height below the tab bar.
func (m *Model) bodyHeight() int {
	h := m.height - 2
	if h < 5 {
		h = 5
	}
	return h
}
