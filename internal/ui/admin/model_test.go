// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/aidesk/internal/api"
	"github.com/jeranaias/aidesk/internal/chunking"
	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
	"github.com/jeranaias/aidesk/internal/ui/components"
	"github.com/jeranaias/aidesk/internal/ui/styles"
)

// =============================================================================
// FAKE BACKEND
// =============================================================================

type call struct {
	op   string
	id   string
	args []string
	cfg  *chunking.Config
}

type fakeBackend struct {
	docs     []model.Document
	cats     []model.Category
	docCats  map[string][]model.Category
	catDocs  map[string][]model.Document
	countErr map[string]bool

	deleteCategoryErr error
	createDocErr      error

	calls []call
}

func newFakeBackend() *fakeBackend {
	hr := model.Category{ID: "c-hr", Name: "Nhân sự", Description: "Phúc lợi"}
	it := model.Category{ID: "c-it", Name: "IT", Description: "Thiết bị"}
	leave := model.Document{ID: "d1", Name: "Quy định nghỉ phép", Content: "Nhân viên được nghỉ 12 ngày.", ChunksCount: 2, Categories: []model.Category{hr}}
	vpn := model.Document{ID: "d2", Name: "Hướng dẫn VPN", Content: "sudo openvpn --config company.ovpn", ChunksCount: 1, Categories: []model.Category{it}}
	return &fakeBackend{
		docs:     []model.Document{leave, vpn},
		cats:     []model.Category{hr, it},
		docCats:  map[string][]model.Category{"d1": {hr}, "d2": {it}},
		catDocs:  map[string][]model.Document{"c-hr": {leave}, "c-it": {vpn}},
		countErr: map[string]bool{},
	}
}

func (f *fakeBackend) record(op, id string, args ...string) {
	f.calls = append(f.calls, call{op: op, id: id, args: args})
}

func (f *fakeBackend) called(op string) []call {
	var out []call
	for _, c := range f.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeBackend) ListDocuments(ctx context.Context) ([]model.Document, error) {
	f.record("ListDocuments", "")
	return append([]model.Document(nil), f.docs...), nil
}

func (f *fakeBackend) CreateDocument(ctx context.Context, name, content string, categoryIDs []string) (*api.MutationResult, error) {
	f.record("CreateDocument", "", append([]string{name, content}, categoryIDs...)...)
	if f.createDocErr != nil {
		return nil, f.createDocErr
	}
	doc := model.Document{ID: "d-new", Name: name, Content: content}
	f.docs = append(f.docs, doc)
	return &api.MutationResult{Message: "ok", Document: doc}, nil
}

func (f *fakeBackend) UpdateDocument(ctx context.Context, id, content string) (*api.MutationResult, error) {
	f.record("UpdateDocument", id, content)
	return &api.MutationResult{Message: "ok"}, nil
}

func (f *fakeBackend) DeleteDocument(ctx context.Context, id string) (string, error) {
	f.record("DeleteDocument", id)
	var kept []model.Document
	for _, d := range f.docs {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	f.docs = kept
	return "deleted", nil
}

func (f *fakeBackend) ReembedDocument(ctx context.Context, id string) (*api.MutationResult, error) {
	f.record("ReembedDocument", id)
	return &api.MutationResult{}, nil
}

func (f *fakeBackend) SemanticReembed(ctx context.Context, id string, cfg *chunking.Config) (*api.SemanticReembedResult, error) {
	f.calls = append(f.calls, call{op: "SemanticReembed", id: id, cfg: cfg})
	return &api.SemanticReembedResult{}, nil
}

func (f *fakeBackend) GetDocumentCategories(ctx context.Context, id string) ([]model.Category, error) {
	f.record("GetDocumentCategories", id)
	return f.docCats[id], nil
}

func (f *fakeBackend) UpdateDocumentCategories(ctx context.Context, id string, categoryIDs []string) error {
	f.record("UpdateDocumentCategories", id, categoryIDs...)
	return nil
}

func (f *fakeBackend) ListCategories(ctx context.Context) ([]model.Category, error) {
	f.record("ListCategories", "")
	return append([]model.Category(nil), f.cats...), nil
}

func (f *fakeBackend) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	f.record("CreateCategory", "", name, description)
	c := model.Category{ID: "c-new", Name: name, Description: description}
	f.cats = append(f.cats, c)
	return &c, nil
}

func (f *fakeBackend) UpdateCategory(ctx context.Context, id, name, description string) (*model.Category, error) {
	f.record("UpdateCategory", id, name, description)
	return &model.Category{ID: id, Name: name, Description: description}, nil
}

func (f *fakeBackend) DeleteCategory(ctx context.Context, id string) error {
	f.record("DeleteCategory", id)
	return f.deleteCategoryErr
}

func (f *fakeBackend) ListCategoryDocuments(ctx context.Context, id string) ([]model.Document, error) {
	if f.countErr[id] {
		return nil, errors.New("boom")
	}
	return f.catDocs[id], nil
}

// =============================================================================
// HELPERS
// =============================================================================

func newTestModel(t *testing.T, backend Backend) *Model {
	t.Helper()
	m := New(Options{
		Client:  backend,
		Theme:   styles.NewTheme(),
		Printer: locale.New("vi"),
		Timeout: 5 * time.Second,
	})
	m.SetSize(120, 40)
	drain(t, m, m.Init())
	return m
}

// drain runs cmd and feeds the dashboard's own messages back into Update.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case DocumentsLoadedMsg, DocCategoriesLoadedMsg, DocumentSavedMsg, DocumentDeletedMsg,
			ReembedDoneMsg, DocCategoriesSavedMsg, CategoriesLoadedMsg, CategoryCountsMsg,
			CategorySavedMsg, CategoryDeletedMsg,
			components.ConfirmResultMsg, components.CategoriesPickedMsg, components.CategoryPickCancelledMsg:
			_, next := m.Update(msg)
			queue = append(queue, next)
		}
	}
}

func press(t *testing.T, m *Model, keys ...tea.KeyMsg) {
	t.Helper()
	for _, k := range keys {
		_, cmd := m.Update(k)
		drain(t, m, cmd)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	saveKey  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func bannerTexts(m *Model) []string {
	var out []string
	for _, b := range m.banners.Banners() {
		out = append(out, b.Message)
	}
	return out
}

// =============================================================================
// DOCUMENTS
// =============================================================================

func TestInit_LoadsDocumentsCategoriesAndCounts(t *testing.T) {
	backend := newFakeBackend()
	backend.countErr["c-it"] = true
	m := newTestModel(t, backend)

	assert.Len(t, m.Documents(), 2)
	assert.Len(t, m.Categories(), 2)
	assert.Equal(t, 1, m.categories.counts["c-hr"])
	assert.Equal(t, 0, m.categories.counts["c-it"], "failed count shows 0")

	// The first document is selected and its categories loaded.
	require.Len(t, backend.called("GetDocumentCategories"), 1)
	assert.Equal(t, "d1", m.documents.catsFor)
	assert.False(t, m.documents.catsLoading)
	require.Len(t, m.documents.cats, 1)
}

func TestDocuments_SelectLoadsCategories(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)

	press(t, m, downKey)
	calls := backend.called("GetDocumentCategories")
	require.Len(t, calls, 2)
	assert.Equal(t, "d2", calls[1].id)
	assert.Equal(t, "IT", m.documents.cats[0].Name)
}

func TestDocuments_Filter(t *testing.T) {
	m := newTestModel(t, newFakeBackend())

	press(t, m, runes("/"), runes("openvpn"))
	require.True(t, m.documents.filtering)
	visible := m.documents.visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "d2", visible[0].ID)

	press(t, m, escKey)
	assert.False(t, m.documents.filtering)
	assert.Len(t, m.documents.visible(), 2)
}

func TestDocuments_CreateRequiresNameAndContent(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)

	press(t, m, runes("n"))
	require.Equal(t, overlayDocForm, m.overlay)
	m.docForm.name.SetValue("Chỉ có tên")
	press(t, m, saveKey)

	assert.Empty(t, backend.called("CreateDocument"))
	assert.Contains(t, bannerTexts(m), m.printer.T(locale.RequireNameAndContent))
	assert.Equal(t, overlayDocForm, m.overlay, "form stays open")
}

func TestDocuments_CreateWithCategories(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)

	press(t, m, runes("n"))
	m.docForm.name.SetValue("Quy trình hoàn ứng")
	m.docForm.content.SetValue("Gửi hóa đơn trong 5 ngày.")
	// Move to the picker and select the second category.
	press(t, m, tabKey, tabKey, downKey, spaceKey)
	press(t, m, saveKey)

	calls := backend.called("CreateDocument")
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"Quy trình hoàn ứng", "Gửi hóa đơn trong 5 ngày.", "c-it"}, calls[0].args)
	assert.Equal(t, overlayNone, m.overlay)
	assert.Contains(t, bannerTexts(m), m.printer.T(locale.DocCreated))
	assert.Len(t, m.Documents(), 3)
}

func TestDocuments_CreateFailureKeepsForm(t *testing.T) {
	backend := newFakeBackend()
	backend.createDocErr = &api.ClientError{Type: api.ErrTypeBadRequest, Status: 400, Message: "Name is required"}
	m := newTestModel(t, backend)

	press(t, m, runes("n"))
	m.docForm.name.SetValue("A")
	m.docForm.content.SetValue("B")
	press(t, m, saveKey)

	assert.Equal(t, overlayDocForm, m.overlay)
	assert.Contains(t, bannerTexts(m), m.printer.T(locale.ErrCreateDocument)+": Name is required")
}

func TestDocuments_EditRequiresContent(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)

	press(t, m, runes("e"))
	require.Equal(t, overlayDocForm, m.overlay)
	assert.Equal(t, "Nhân viên được nghỉ 12 ngày.", m.docForm.content.Value())

	m.docForm.content.SetValue("   ")
	press(t, m, saveKey)
	assert.Empty(t, backend.called("UpdateDocument"))
	assert.Contains(t, bannerTexts(m), m.printer.T(locale.RequireContent))

	m.docForm.content.SetValue("Nhân viên được nghỉ 14 ngày.")
	press(t, m, saveKey)
	calls := backend.called("UpdateDocument")
	require.Len(t, calls, 1)
	assert.Equal(t, "d1", calls[0].id)
	assert.Contains(t, bannerTexts(m), m.printer.T(locale.DocUpdated))
}

func TestDocuments_DeleteThroughConfirm(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)

	press(t, m, runes("d"))
	require.True(t, m.confirm.IsVisible())
	// Danger dialogs default to cancel.
	press(t, m, enterKey)
	assert.Empty(t, backend.called("DeleteDocument"))

	press(t, m, runes("d"), runes("y"))
	calls := backend.called("DeleteDocument")
	require.Len(t, calls, 1)
	assert.Equal(t, "d1", calls[0].id)
	assert.Len(t, m.Documents(), 1)
	assert.Contains(t, bannerTexts(m), m.printer.T(locale.DocDeleted))
}

func TestDocuments_Reembed(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)

	press(t, m, runes("r"))
	require.True(t, m.confirm.IsVisible())
	// Warning dialogs default to confirm.
	press(t, m, enterKey)
	require.Len(t, backend.called("ReembedDocument"), 1)
	assert.Contains(t, bannerTexts(m), m.printer.T(locale.DocReembedStarted))
}

func TestDocuments_SemanticReembedUsesSavedConfig(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)

	// Nothing saved yet: no config is sent.
	press(t, m, runes("s"), runes("y"))
	calls := backend.called("SemanticReembed")
	require.Len(t, calls, 1)
	assert.Nil(t, calls[0].cfg)

	// Save the "short" preset, then re-embed again.
	press(t, m, runes("C"), rightKey, saveKey)
	require.NotNil(t, m.ChunkingConfig())
	assert.Equal(t, chunking.MustPreset("short").Config, *m.ChunkingConfig())
	assert.Contains(t, bannerTexts(m), m.printer.T(locale.ChunkingSaved))

	press(t, m, runes("s"), runes("y"))
	calls = backend.called("SemanticReembed")
	require.Len(t, calls, 2)
	require.NotNil(t, calls[1].cfg)
	assert.Equal(t, 600, calls[1].cfg.MaxChunkSize)
}

func TestDocuments_UpdateCategories(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)

	press(t, m, runes("c"))
	require.Equal(t, overlayDocCategories, m.overlay)
	assert.Equal(t, []string{"c-hr"}, m.docPicker.Selected())

	// Add IT and submit.
	press(t, m, downKey, spaceKey, enterKey)
	calls := backend.called("UpdateDocumentCategories")
	require.Len(t, calls, 1)
	assert.Equal(t, "d1", calls[0].id)
	assert.Equal(t, []string{"c-hr", "c-it"}, calls[0].args)
	assert.Equal(t, overlayNone, m.overlay)
	assert.Contains(t, bannerTexts(m), m.printer.T(locale.DocCategoriesUpdated))
}

func TestDocuments_DetailView(t *testing.T) {
	m := newTestModel(t, newFakeBackend())
	view := m.View()
	assert.Contains(t, view, "Quy định nghỉ phép")
	assert.Contains(t, view, "2 chunks")
	assert.Contains(t, view, "Nhân sự")
}

func TestDocuments_DateFromCreatedAt(t *testing.T) {
	var doc model.Document
	require.NoError(t, json.Unmarshal([]byte(`{"id":"d9","name":"Nội quy","content":"abc","chunks_count":1,"created_at":"2025-03-14T10:00:00Z"}`), &doc))
	backend := newFakeBackend()
	backend.docs = []model.Document{doc}

	m := newTestModel(t, backend)
	want := model.FormatDate(time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC))
	view := m.View()
	assert.Contains(t, view, want+"  ·  ")
	assert.NotContains(t, view, "-  ·  1 chunks")
}

// =============================================================================
// CHUNKING
// =============================================================================

func TestChunking_InvalidFieldRejected(t *testing.T) {
	m := newTestModel(t, newFakeBackend())

	press(t, m, runes("C"), downKey, enterKey)
	require.True(t, m.chunkPanel.editing)
	m.chunkPanel.input.SetValue("abc")
	press(t, m, enterKey)

	assert.Equal(t, 200, m.chunkPanel.draft.MinChunkSize)
	texts := bannerTexts(m)
	require.NotEmpty(t, texts)
	assert.Equal(t, "Kích thước chunk tối thiểu phải nằm trong khoảng 50 - 1000", texts[0], "newest banner first")
}

func TestChunking_CrossFieldValidationBlocksSave(t *testing.T) {
	m := newTestModel(t, newFakeBackend())

	press(t, m, runes("C"))
	m.chunkPanel.draft.MinChunkSize = 900
	m.chunkPanel.draft.MaxChunkSize = 600
	press(t, m, saveKey)

	assert.Nil(t, m.ChunkingConfig())
	assert.Equal(t, overlayChunking, m.overlay)
	assert.Contains(t, bannerTexts(m), m.printer.T(locale.ErrChunkingMinOverMax))
}

func TestChunkingErrorText(t *testing.T) {
	p := locale.New("vi")

	cfg := chunking.Default()
	err := cfg.Set(chunking.FieldSimilarityThreshold, "1.5")
	require.Error(t, err)
	assert.Equal(t, "Ngưỡng tương đồng phải nằm trong khoảng 0 - 1", chunkingErrorText(p, err))

	cfg = chunking.Default()
	cfg.OverlapSize = 400
	cfg.MaxChunkSize = 300
	assert.Equal(t, p.T(locale.ErrChunkingOverlap), chunkingErrorText(p, cfg.Validate()))

	err = cfg.Set(chunking.FieldUseSemanticBoundaries, "maybe")
	require.Error(t, err)
	assert.Equal(t, "Giá trị không hợp lệ cho Sử dụng ranh giới ngữ nghĩa", chunkingErrorText(p, err))
}

func TestChunking_StepAndEscDiscards(t *testing.T) {
	m := newTestModel(t, newFakeBackend())

	press(t, m, runes("C"), downKey, rightKey)
	assert.Equal(t, 210, m.chunkPanel.draft.MinChunkSize)
	press(t, m, escKey)
	assert.Equal(t, overlayNone, m.overlay)
	assert.Nil(t, m.ChunkingConfig())
}

func TestChunking_InfoOverlay(t *testing.T) {
	m := newTestModel(t, newFakeBackend())
	press(t, m, runes("C"), runes("i"))
	assert.Contains(t, m.View(), m.printer.T(locale.ChunkingInfoTitle))
	press(t, m, escKey)
	assert.Equal(t, overlayChunking, m.overlay, "esc closes only the info overlay")
}

// =============================================================================
// CATEGORIES
// =============================================================================

func TestCategories_CreateRequiresName(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)

	press(t, m, tabKey)
	require.Equal(t, TabCategories, m.Tab())
	press(t, m, runes("n"), enterKey)
	assert.Empty(t, backend.called("CreateCategory"))
	assert.Contains(t, bannerTexts(m), m.printer.T(locale.RequireCategoryName))

	m.catForm.name.SetValue("Tài chính")
	m.catForm.desc.SetValue("Thanh toán")
	press(t, m, enterKey)
	calls := backend.called("CreateCategory")
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"Tài chính", "Thanh toán"}, calls[0].args)
	assert.Len(t, m.Categories(), 3)
}

func TestCategories_Edit(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)

	press(t, m, tabKey, runes("e"))
	require.Equal(t, overlayCategoryForm, m.overlay)
	assert.Equal(t, "Nhân sự", m.catForm.name.Value())
	m.catForm.name.SetValue("Nhân sự & Phúc lợi")
	press(t, m, saveKey)

	calls := backend.called("UpdateCategory")
	require.Len(t, calls, 1)
	assert.Equal(t, "c-hr", calls[0].id)
}

func TestCategories_DeleteFailureMessage(t *testing.T) {
	backend := newFakeBackend()
	backend.deleteCategoryErr = errors.New("in use")
	m := newTestModel(t, backend)

	press(t, m, tabKey, runes("d"), runes("y"))
	require.Len(t, backend.called("DeleteCategory"), 1)
	assert.Contains(t, bannerTexts(m),
		"Failed to delete category. Make sure no documents or sessions are using this category.")
}

func TestCategories_ViewToggle(t *testing.T) {
	m := newTestModel(t, newFakeBackend())
	press(t, m, tabKey)
	assert.Contains(t, m.View(), "1 documents")

	press(t, m, runes("v"))
	assert.False(t, m.categories.grid)
	view := m.View()
	assert.Contains(t, view, "Description")
	assert.Contains(t, view, "IT")
}

func TestBackEmitsSwitchToChat(t *testing.T) {
	m := newTestModel(t, newFakeBackend())
	_, cmd := m.Update(escKey)
	require.NotNil(t, cmd)
	assert.IsType(t, SwitchToChatMsg{}, cmd())
}
