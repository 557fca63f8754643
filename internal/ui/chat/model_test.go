// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/aidesk/internal/api"
	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
	"github.com/jeranaias/aidesk/internal/stubserver"
	"github.com/jeranaias/aidesk/internal/ui/components"
	"github.com/jeranaias/aidesk/internal/ui/styles"
)

// =============================================================================
// FAKE BACKEND
// =============================================================================

type fakeBackend struct {
	sessions   []model.Session
	messages   map[string][]model.Message
	categories []model.Category

	reply        string
	card         *model.ActionCard
	actionResult *api.ActionResult

	listErr   error
	createErr error
	sendErr   error
	deleteErr error
	actionErr error

	createdNames []string
	createdOpts  []api.CreateSessionOptions
	sent         []string
	actions      []model.ActionButton
	deleted      []string
	nextID       int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		messages: map[string][]model.Message{},
		reply:    "Nhân viên được nghỉ 12 ngày mỗi năm.",
	}
}

func (f *fakeBackend) ListSessions(ctx context.Context) ([]model.Session, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]model.Session(nil), f.sessions...), nil
}

func (f *fakeBackend) GetSession(ctx context.Context, id string) (*model.Session, []model.Message, error) {
	s, ok := model.FindSession(f.sessions, id)
	if !ok {
		return nil, nil, &api.ClientError{Type: api.ErrTypeNotFound, Status: 404, Message: "Session not found"}
	}
	return &s, f.messages[id], nil
}

func (f *fakeBackend) CreateSession(ctx context.Context, name string, opts api.CreateSessionOptions) (*model.Session, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	s := model.Session{
		ID:         "s-new-" + string(rune('0'+f.nextID)),
		Name:       name,
		CategoryID: opts.CategoryID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	f.sessions = append(f.sessions, s)
	f.createdNames = append(f.createdNames, name)
	f.createdOpts = append(f.createdOpts, opts)
	return &s, nil
}

func (f *fakeBackend) SendMessage(ctx context.Context, sessionID, text string) (*api.ChatResponse, error) {
	f.sent = append(f.sent, text)
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return &api.ChatResponse{
		Message: model.Message{
			ID:        "m-" + text,
			SessionID: sessionID,
			Role:      model.RoleAssistant,
			Content:   f.reply,
			CreatedAt: time.Now(),
		},
		ActionCard: f.card,
	}, nil
}

func (f *fakeBackend) DeleteSession(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	f.sessions = model.RemoveSession(f.sessions, id)
	return nil
}

func (f *fakeBackend) ListCategories(ctx context.Context) ([]model.Category, error) {
	return f.categories, nil
}

func (f *fakeBackend) ExecuteAction(ctx context.Context, action model.ActionButton) (*api.ActionResult, error) {
	f.actions = append(f.actions, action)
	if f.actionErr != nil {
		return nil, f.actionErr
	}
	if f.actionResult != nil {
		return f.actionResult, nil
	}
	return &api.ActionResult{Message: "Đã tạo ticket"}, nil
}

// =============================================================================
// HELPERS
// =============================================================================

var testNow = time.Date(2026, 10, 18, 14, 30, 5, 0, time.Local)

func newTestModel(t *testing.T, backend Backend) *Model {
	t.Helper()
	m := New(Options{
		Client:         backend,
		Theme:          styles.NewTheme(),
		Printer:        locale.New("vi"),
		Timeout:        5 * time.Second,
		SidebarOpen:    true,
		ShowTimestamps: true,
	})
	m.now = func() time.Time { return testNow }
	m.SetSize(120, 40)
	return m
}

// drain runs cmd and feeds the screen's own result messages back into Update
// until no more work is produced. Timer driven messages are not followed.
func drain(t *testing.T, m *Model, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	var seen []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		seen = append(seen, msg)
		switch msg := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case SessionsLoadedMsg, SessionLoadedMsg, SessionCreatedMsg, MessageSentMsg,
			SessionDeletedMsg, CategoriesLoadedMsg, ActionDoneMsg,
			components.SessionSelectedMsg, components.SessionNewMsg,
			components.SessionDeleteMsg, components.ConfirmResultMsg:
			_, next := m.Update(msg)
			queue = append(queue, next)
		}
	}
	return seen
}

func press(t *testing.T, m *Model, k tea.KeyMsg) []tea.Msg {
	t.Helper()
	_, cmd := m.Update(k)
	return drain(t, m, cmd)
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func bannerTexts(m *Model) []string {
	var out []string
	for _, b := range m.banners.Banners() {
		out = append(out, b.Message)
	}
	return out
}

// =============================================================================
// TESTS
// =============================================================================

func TestInit_LoadsSessionsNewestFirst(t *testing.T) {
	backend := newFakeBackend()
	backend.sessions = []model.Session{
		{ID: "old", Name: "Cũ", UpdatedAt: testNow.Add(-2 * time.Hour)},
		{ID: "new", Name: "Mới", UpdatedAt: testNow.Add(-time.Minute)},
	}
	backend.categories = []model.Category{{ID: "c1", Name: "Nhân sự"}}

	m := newTestModel(t, backend)
	drain(t, m, m.Init())

	sessions := m.Sessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, "new", sessions[0].ID)
	assert.Len(t, m.Categories(), 1)
	assert.Nil(t, m.Current())
}

func TestInit_ListFailureShowsBanner(t *testing.T) {
	backend := newFakeBackend()
	backend.listErr = errors.New("connection refused")

	m := newTestModel(t, backend)
	drain(t, m, m.Init())

	assert.Contains(t, bannerTexts(m), m.printer.T(locale.ErrLoadSessions))
}

func TestSubmit_WithoutSessionCreatesAndSends(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)
	drain(t, m, m.Init())

	m.input.SetValue("  Quy định nghỉ phép?  ")
	press(t, m, enterKey)

	require.Len(t, backend.createdNames, 1)
	assert.Equal(t, "Cuộc trò chuyện 14:30:05 18/10/2026", backend.createdNames[0])
	assert.Equal(t, []string{"Quy định nghỉ phép?"}, backend.sent)

	require.NotNil(t, m.Current())
	msgs := m.Messages()
	require.Len(t, msgs, 2)
	assert.True(t, msgs[0].IsUser())
	assert.Equal(t, "Quy định nghỉ phép?", msgs[0].Content)
	assert.True(t, msgs[1].IsAssistant())
	assert.False(t, m.Busy())
	assert.Equal(t, m.Current().ID, m.Sessions()[0].ID)
	assert.Empty(t, m.input.Value())
}

func TestSubmit_EmptyInputIgnored(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)

	m.input.SetValue("   ")
	_, cmd := m.Update(enterKey)
	assert.Nil(t, cmd)
	assert.Empty(t, backend.createdNames)
	assert.Empty(t, backend.sent)
}

func TestSubmit_OptimisticAndSingleFlight(t *testing.T) {
	backend := newFakeBackend()
	backend.sessions = []model.Session{{ID: "s1", Name: "Một", UpdatedAt: testNow.Add(-time.Hour)}}
	m := newTestModel(t, backend)
	drain(t, m, m.Init())
	drain(t, m, m.openSession("s1"))

	m.input.SetValue("Xin chào")
	_, cmd := m.Update(enterKey)
	require.NotNil(t, cmd)

	// Before the request resolves the user message is already visible.
	require.Len(t, m.Messages(), 1)
	assert.True(t, m.Messages()[0].IsLocal())
	assert.True(t, m.Busy())

	// A second enter while in flight does nothing.
	m.input.SetValue("Lần hai")
	_, second := m.Update(enterKey)
	assert.Nil(t, second)

	drain(t, m, cmd)
	assert.False(t, m.Busy())
	assert.Len(t, m.Messages(), 2)
	assert.Equal(t, []string{"Xin chào"}, backend.sent)
}

func TestSend_FailureRemovesOptimisticMessage(t *testing.T) {
	backend := newFakeBackend()
	backend.sessions = []model.Session{{ID: "s1", Name: "Một"}}
	backend.sendErr = &api.ClientError{Type: api.ErrTypeServer, Status: 500, Message: "boom"}
	m := newTestModel(t, backend)
	drain(t, m, m.Init())
	drain(t, m, m.openSession("s1"))

	m.input.SetValue("Xin chào")
	press(t, m, enterKey)

	assert.Empty(t, m.Messages())
	assert.False(t, m.Busy())
	assert.Contains(t, bannerTexts(m), m.printer.T(locale.ErrSendMessage))
}

func TestCreateFailureRestoresInput(t *testing.T) {
	backend := newFakeBackend()
	backend.createErr = errors.New("down")
	m := newTestModel(t, backend)

	m.input.SetValue("Câu hỏi")
	press(t, m, enterKey)

	assert.Nil(t, m.Current())
	assert.Equal(t, "Câu hỏi", m.input.Value())
	assert.Contains(t, bannerTexts(m), m.printer.T(locale.ErrCreateSession))
}

func TestSendBumpsSessionToTop(t *testing.T) {
	backend := newFakeBackend()
	backend.sessions = []model.Session{
		{ID: "top", Name: "Đầu", UpdatedAt: testNow.Add(-time.Minute)},
		{ID: "low", Name: "Cuối", UpdatedAt: testNow.Add(-time.Hour)},
	}
	m := newTestModel(t, backend)
	drain(t, m, m.Init())
	drain(t, m, m.openSession("low"))

	m.input.SetValue("Hello")
	press(t, m, enterKey)

	assert.Equal(t, "low", m.Sessions()[0].ID)
	assert.True(t, m.Sessions()[0].UpdatedAt.Equal(testNow))
}

func TestDeleteCurrentSessionClearsChat(t *testing.T) {
	backend := newFakeBackend()
	backend.sessions = []model.Session{{ID: "s1", Name: "Một"}, {ID: "s2", Name: "Hai"}}
	m := newTestModel(t, backend)
	drain(t, m, m.Init())
	drain(t, m, m.openSession("s1"))
	require.NotNil(t, m.Current())

	drain(t, m, func() tea.Msg { return components.SessionDeleteMsg{ID: "s1"} })
	require.True(t, m.ConfirmVisible())

	// Danger dialogs start on cancel; y confirms.
	press(t, m, runes("y"))

	assert.Equal(t, []string{"s1"}, backend.deleted)
	assert.Nil(t, m.Current())
	assert.Empty(t, m.Messages())
	require.Len(t, m.Sessions(), 1)
	assert.Equal(t, "s2", m.Sessions()[0].ID)
}

func TestDeleteCancelled(t *testing.T) {
	backend := newFakeBackend()
	backend.sessions = []model.Session{{ID: "s1", Name: "Một"}}
	m := newTestModel(t, backend)
	drain(t, m, m.Init())

	drain(t, m, func() tea.Msg { return components.SessionDeleteMsg{ID: "s1"} })
	press(t, m, enterKey)

	assert.False(t, m.ConfirmVisible())
	assert.Empty(t, backend.deleted)
	assert.Len(t, m.Sessions(), 1)
}

func TestDeleteFailureKeepsSession(t *testing.T) {
	backend := newFakeBackend()
	backend.sessions = []model.Session{{ID: "s1", Name: "Một"}}
	backend.deleteErr = errors.New("nope")
	m := newTestModel(t, backend)
	drain(t, m, m.Init())

	drain(t, m, func() tea.Msg { return components.ConfirmResultMsg{ID: confirmDeletePrefix + "s1", Confirmed: true} })

	assert.Len(t, m.Sessions(), 1)
	assert.Contains(t, bannerTexts(m), m.printer.T(locale.ErrDeleteSession))
}

func TestActionCardFlow(t *testing.T) {
	backend := newFakeBackend()
	backend.sessions = []model.Session{{ID: "s1", Name: "Một"}}
	backend.card = &model.ActionCard{
		Type:  "create_ticket",
		Title: "Không tìm thấy thông tin?",
		Action: model.ActionButton{
			Text:     "Tạo Ticket Hỏi HR",
			Endpoint: "/api/v1/tickets",
			Method:   "POST",
		},
	}
	m := newTestModel(t, backend)
	drain(t, m, m.Init())
	drain(t, m, m.openSession("s1"))

	m.input.SetValue("máy pha cà phê hỏng")
	press(t, m, enterKey)
	require.Len(t, m.Messages(), 2)
	require.NotNil(t, m.Messages()[1].ActionCard)

	press(t, m, tabKey)
	assert.Equal(t, FocusActions, m.Focus())
	assert.Equal(t, m.Messages()[1].ID, m.focusedCardID())

	press(t, m, enterKey)
	require.Len(t, backend.actions, 1)
	assert.Equal(t, "/api/v1/tickets", backend.actions[0].Endpoint)

	msgs := m.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "Đã tạo ticket", msgs[2].Content)
	assert.True(t, msgs[2].IsAssistant())
}

func TestActionCardFailureUsesDefaultText(t *testing.T) {
	backend := newFakeBackend()
	backend.sessions = []model.Session{{ID: "s1", Name: "Một"}}
	backend.messages["s1"] = []model.Message{{
		ID:   "a1",
		Role: model.RoleAssistant,
		ActionCard: &model.ActionCard{
			Title:  "Ticket",
			Action: model.ActionButton{Text: "Tạo", Endpoint: "/api/v1/tickets"},
		},
	}}
	backend.actionErr = errors.New("dial tcp: refused")
	m := newTestModel(t, backend)
	drain(t, m, m.Init())
	drain(t, m, m.openSession("s1"))

	press(t, m, tabKey)
	press(t, m, enterKey)

	want := m.printer.T(locale.ErrCreateTicket)
	msgs := m.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, want, msgs[1].Content)
	assert.Contains(t, bannerTexts(m), want)
}

func TestWelcomeCategoryStartsBoundSession(t *testing.T) {
	backend := newFakeBackend()
	backend.categories = []model.Category{{ID: "c1", Name: "Nhân sự"}, {ID: "c2", Name: "IT"}}
	m := newTestModel(t, backend)
	drain(t, m, m.Init())

	press(t, m, tabKey)
	require.Equal(t, FocusWelcome, m.Focus())
	press(t, m, downKey)
	press(t, m, enterKey)

	require.Len(t, backend.createdOpts, 1)
	assert.Equal(t, "c2", backend.createdOpts[0].CategoryID)
	require.NotNil(t, m.Current())
	assert.Equal(t, "c2", m.Current().CategoryID)
	assert.Empty(t, backend.sent)
}

func TestStaleSessionLoadIgnored(t *testing.T) {
	backend := newFakeBackend()
	backend.sessions = []model.Session{{ID: "s1"}, {ID: "s2"}}
	m := newTestModel(t, backend)
	drain(t, m, m.Init())

	// Opening s2 while s1 is loading discards the s1 response.
	_ = m.openSession("s1")
	cmd := m.openSession("s2")
	m.Update(SessionLoadedMsg{ID: "s1", Session: &model.Session{ID: "s1"}, Messages: []model.Message{{ID: "x"}}})
	assert.Equal(t, "s2", m.Current().ID)
	assert.Empty(t, m.Messages())

	drain(t, m, cmd)
	assert.Equal(t, "s2", m.Current().ID)
}

func TestLoadMessagesFailure(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)
	drain(t, m, m.openSession("missing"))
	assert.Contains(t, bannerTexts(m), m.printer.T(locale.ErrLoadMessages))
}

func TestAdminKeyEmitsSwitch(t *testing.T) {
	m := newTestModel(t, newFakeBackend())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyF2})
	require.NotNil(t, cmd)
	assert.IsType(t, components.SwitchToAdminMsg{}, cmd())
}

func TestToggleSidebar(t *testing.T) {
	m := newTestModel(t, newFakeBackend())
	require.True(t, m.SidebarOpen())
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.False(t, m.SidebarOpen())
	for _, f := range m.focusOrder() {
		assert.NotEqual(t, FocusSidebar, f)
	}
}

func TestView_WelcomeAndConversation(t *testing.T) {
	backend := newFakeBackend()
	backend.categories = []model.Category{{ID: "c1", Name: "Nhân sự", Description: "Phúc lợi"}}
	backend.sessions = []model.Session{{ID: "s1", Name: "Hỏi về VPN", UpdatedAt: testNow}}
	backend.messages["s1"] = []model.Message{{ID: "u1", Role: model.RoleUser, Content: "VPN lỗi", CreatedAt: testNow}}
	m := newTestModel(t, backend)
	drain(t, m, m.Init())

	view := m.View()
	assert.Contains(t, view, m.printer.T(locale.WelcomeTitle))
	assert.Contains(t, view, "Nhân sự")
	assert.Contains(t, view, "Hỏi về VPN")

	drain(t, m, m.openSession("s1"))
	assert.Contains(t, m.View(), "VPN lỗi")
}

// =============================================================================
// AGAINST THE STUB BACKEND
// =============================================================================

func TestChatAgainstStubServer(t *testing.T) {
	srv := stubserver.New(stubserver.WithSeed())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	client := api.NewClientWithConfig(&api.ClientConfig{BaseURL: ts.URL + "/api/v1", Timeout: 5 * time.Second})

	m := newTestModel(t, client)
	drain(t, m, m.Init())
	assert.Len(t, m.Categories(), 3)

	m.input.SetValue("máy pha cà phê hỏng")
	press(t, m, enterKey)

	require.NotNil(t, m.Current())
	msgs := m.Messages()
	require.Len(t, msgs, 2)
	require.NotNil(t, msgs[1].ActionCard)

	press(t, m, tabKey)
	press(t, m, enterKey)

	require.Len(t, srv.Tickets(), 1)
	assert.Equal(t, "máy pha cà phê hỏng", srv.Tickets()[0].Question)
	assert.Len(t, m.Messages(), 3)
}
