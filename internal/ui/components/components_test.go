// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
	"github.com/jeranaias/aidesk/internal/ui/styles"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

// =============================================================================
// BANNERS
// =============================================================================

func TestBannerManager(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	m := NewBannerManager()
	m.now = func() time.Time { return now }

	errID := m.Error("Không thể gửi tin nhắn")
	m.Success("ok")
	banners := m.Banners()
	require.Len(t, banners, 2)
	assert.Equal(t, BannerSuccess, banners[0].Kind, "newest first")

	// Success expires before the error.
	left := m.Tick(now.Add(5 * time.Second))
	require.Len(t, left, 1)
	assert.Equal(t, errID, left[0].ID)

	assert.Empty(t, m.Tick(now.Add(9*time.Second)))
	assert.False(t, m.HasBanners())
}

func TestBannerManagerLimit(t *testing.T) {
	m := NewBannerManager()
	for i := 0; i < 5; i++ {
		m.Info("x")
	}
	assert.Len(t, m.Banners(), maxBanners)
	assert.Equal(t, BannerInfo, m.Banners()[0].Kind)
}

func TestRenderBanners(t *testing.T) {
	theme := styles.NewTheme()
	m := NewBannerManager()
	m.Error("boom")
	out := RenderBanners(theme, m.Banners(), 40)
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, styles.StatusIndicators.Error)
	assert.Equal(t, "", RenderBanners(theme, nil, 40))
}

// =============================================================================
// CONFIRM DIALOG
// =============================================================================

func TestConfirmDialog(t *testing.T) {
	d := NewConfirmDialog(styles.NewTheme(), locale.Default())
	cmd, handled := d.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.False(t, handled, "hidden dialog ignores keys")

	d.Show("delete:1", "Xác nhận xóa", "Bạn có chắc muốn xóa document này?", ConfirmDanger)
	view := d.View()
	assert.Contains(t, view, "Xác nhận xóa")
	assert.Contains(t, view, "Hủy")

	// Danger dialogs default to cancel.
	cmd, handled = d.Update(keyMsg("enter"))
	assert.True(t, handled)
	assert.Equal(t, ConfirmResultMsg{ID: "delete:1", Confirmed: false}, run(t, cmd))
	assert.False(t, d.IsVisible())

	d.Show("reembed:1", "t", "m", ConfirmWarning)
	cmd, _ = d.Update(keyMsg("enter"))
	assert.Equal(t, ConfirmResultMsg{ID: "reembed:1", Confirmed: true}, run(t, cmd))

	d.Show("x", "t", "m", ConfirmDanger)
	_, _ = d.Update(keyMsg("tab"))
	cmd, _ = d.Update(keyMsg("enter"))
	assert.Equal(t, ConfirmResultMsg{ID: "x", Confirmed: true}, run(t, cmd))

	d.Show("y", "t", "m", ConfirmInfo)
	cmd, _ = d.Update(keyMsg("esc"))
	assert.Equal(t, ConfirmResultMsg{ID: "y", Confirmed: false}, run(t, cmd))
	assert.Equal(t, "", d.View())
}

// =============================================================================
// SESSION LIST
// =============================================================================

func sampleSessions() []model.Session {
	t0 := time.Date(2025, 3, 1, 9, 30, 0, 0, time.Local)
	return []model.Session{
		{ID: "s1", Name: "Nghỉ phép", UpdatedAt: t0.Add(2 * time.Hour)},
		{ID: "s2", Name: "", UpdatedAt: t0.Add(time.Hour)},
		{ID: "s3", Name: "VPN", UpdatedAt: t0},
	}
}

func TestSessionListNavigation(t *testing.T) {
	l := NewSessionList(styles.NewTheme(), locale.Default())
	l.SetSize(30, 20)
	l.SetSessions(sampleSessions())

	assert.Nil(t, l.Update(keyMsg("up")))
	l.Update(keyMsg("down"))
	l.Update(keyMsg("down"))
	l.Update(keyMsg("down"))
	s, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, "s3", s.ID)

	assert.Equal(t, SessionSelectedMsg{ID: "s3"}, run(t, l.Update(keyMsg("enter"))))
	assert.Equal(t, SessionDeleteMsg{ID: "s3"}, run(t, l.Update(keyMsg("d"))))
	assert.Equal(t, SessionNewMsg{}, run(t, l.Update(keyMsg("n"))))
	assert.Equal(t, SwitchToAdminMsg{}, run(t, l.Update(keyMsg("a"))))
}

func TestSessionListClampsCursor(t *testing.T) {
	l := NewSessionList(styles.NewTheme(), locale.Default())
	l.SetSize(30, 20)
	l.SetSessions(sampleSessions())
	l.SetCurrent("s3")
	l.SetSessions(sampleSessions()[:1])
	s, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, "s1", s.ID)

	l.SetSessions(nil)
	_, ok = l.Selected()
	assert.False(t, ok)
	assert.Nil(t, l.Update(keyMsg("enter")))
}

func TestSessionListView(t *testing.T) {
	l := NewSessionList(styles.NewTheme(), locale.Default())
	l.SetSize(30, 20)
	assert.Contains(t, l.View(), "Đang tải...")

	l.SetSessions(nil)
	assert.Contains(t, l.View(), "Chưa có cuộc trò chuyện nào")

	l.SetSessions(sampleSessions())
	view := l.View()
	assert.Contains(t, view, "Nghỉ phép")
	assert.Contains(t, view, "Cuộc trò chuyện mới", "unnamed sessions get the default name")
	assert.Contains(t, view, "01/03 11:30")
}

// =============================================================================
// CATEGORY PICKER
// =============================================================================

func sampleCategories() []model.Category {
	return []model.Category{
		{ID: "c1", Name: "Nhân sự"},
		{ID: "c2", Name: "IT"},
		{ID: "c3", Name: "Tài chính"},
	}
}

func TestCategoryPickerMulti(t *testing.T) {
	p := NewCategoryPicker(styles.NewTheme(), locale.Default(), PickMulti)
	p.SetCategories(sampleCategories())
	p.SetSelected([]string{"c3"})

	p.Update(keyMsg(" "))
	p.Update(keyMsg("down"))
	p.Update(keyMsg("down"))
	p.Update(keyMsg(" "))

	msg := run(t, p.Update(keyMsg("enter")))
	assert.Equal(t, CategoriesPickedMsg{IDs: []string{"c1"}}, msg, "c3 toggled off, order follows categories")

	assert.Equal(t, CategoryPickCancelledMsg{}, run(t, p.Update(keyMsg("esc"))))
}

func TestCategoryPickerSingle(t *testing.T) {
	p := NewCategoryPicker(styles.NewTheme(), locale.Default(), PickSingle)
	p.SetCategories(sampleCategories())
	p.SetSelected([]string{"c1", "c2"})
	assert.Equal(t, []string{"c1"}, p.Selected())

	p.Update(keyMsg("down"))
	p.Update(keyMsg("down"))
	msg := run(t, p.Update(keyMsg("enter")))
	assert.Equal(t, CategoriesPickedMsg{IDs: []string{"c2"}}, msg)
	assert.Equal(t, "c2", p.SelectedOne())

	// The first row clears the selection.
	for i := 0; i < 5; i++ {
		p.Update(keyMsg("up"))
	}
	msg = run(t, p.Update(keyMsg("enter")))
	assert.Equal(t, CategoriesPickedMsg{}, msg)
	assert.Equal(t, "", p.SelectedOne())
}

func TestCategoryPickerDropsStaleSelection(t *testing.T) {
	p := NewCategoryPicker(styles.NewTheme(), locale.Default(), PickMulti)
	p.SetCategories(sampleCategories())
	p.SetSelected([]string{"c1", "c2"})
	p.SetCategories(sampleCategories()[1:])
	assert.Equal(t, []string{"c2"}, p.Selected())
	assert.Contains(t, p.View(), "[x]")
}

func TestBadgeList(t *testing.T) {
	theme := styles.NewTheme()
	p := locale.Default()
	assert.Contains(t, BadgeList(p, theme, nil), "No categories")
	out := BadgeList(p, theme, sampleCategories()[:2])
	assert.Contains(t, out, "Nhân sự")
	assert.Contains(t, out, "IT")
}

// =============================================================================
// MESSAGES
// =============================================================================

func TestMessageViewActionCard(t *testing.T) {
	v := NewMessageView(styles.NewTheme(), locale.Default(), 80)
	msg := model.Message{
		ID:      "m1",
		Role:    model.RoleAssistant,
		Content: "Xin lỗi, tôi không tìm thấy thông tin.",
		ActionCard: &model.ActionCard{
			Type:        "create_ticket",
			Title:       "Không tìm thấy thông tin?",
			Description: "Tạo ticket để được hỗ trợ",
			Action:      model.ActionButton{Text: "Tạo Ticket Hỏi HR", Endpoint: "/api/v1/tickets"},
		},
	}
	out := v.Render(msg, true)
	assert.Contains(t, out, "Không tìm thấy thông tin?")
	assert.Contains(t, out, "Tạo Ticket Hỏi HR")
	assert.Contains(t, out, "Trợ lý")

	user := model.Message{ID: "m0", Role: model.RoleUser, Content: "Nghỉ phép thế nào?",
		CreatedAt: time.Date(2025, 3, 1, 14, 5, 0, 0, time.Local)}
	out = v.Render(user, false)
	assert.Contains(t, out, "Nghỉ phép thế nào?")
	assert.Contains(t, out, "14:05")

	assert.Equal(t, []string{"m1"}, ActionCardIDs([]model.Message{user, msg}))
	all := v.RenderAll([]model.Message{user, msg}, "m1")
	assert.Contains(t, all, "Bạn")
}

func TestMarkdownRenderer(t *testing.T) {
	r := NewMarkdownRenderer(60)
	out := r.Render("# Tiêu đề\n\n- một\n- hai")
	assert.Contains(t, out, "Tiêu đề")
	assert.Contains(t, out, "hai")
	assert.False(t, strings.HasSuffix(out, "\n"))

	r.SetWidth(5)
	assert.Equal(t, 20, r.Width())
}

func TestHighlightLines(t *testing.T) {
	out := HighlightLines("dòng một\ndòng hai\ndòng ba\n", "notes.md", 2)
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "2")
	assert.Equal(t, 2, strings.Count(out, "\n")+1)
	assert.NotEmpty(t, Highlight("package main", "main.go"))
}

// =============================================================================
// TYPING INDICATOR AND HEADER
// =============================================================================

func TestTypingIndicator(t *testing.T) {
	ti := NewTypingIndicator(styles.NewTheme(), "Đang trả lời...")
	assert.Equal(t, "", ti.View())
	assert.NotNil(t, ti.Start())
	assert.True(t, ti.Active())
	assert.Contains(t, ti.View(), "Đang trả lời...")
	ti.Stop()
	_, cmd := ti.Update(nil)
	assert.Nil(t, cmd)
}

func TestHeaderStatus(t *testing.T) {
	h := NewHeader(styles.NewTheme(), "Trợ lý AI nội bộ")
	h.SetWidth(80)
	h.Status = BackendOffline
	out := h.View()
	assert.Contains(t, out, "Trợ lý AI nội bộ")
	assert.Contains(t, out, "offline")
}
