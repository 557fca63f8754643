// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// =============================================================================
// SESSION ORDERING TESTS
// =============================================================================

func TestSortSessionsByRecency(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	sessions := []Session{
		{ID: "a", UpdatedAt: base},
		{ID: "b", UpdatedAt: base.Add(2 * time.Hour)},
		{ID: "c", UpdatedAt: base.Add(time.Hour)},
	}

	SortSessionsByRecency(sessions)

	got := []string{sessions[0].ID, sessions[1].ID, sessions[2].ID}
	want := []string{"b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestTouchSession_MovesToTop(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	sessions := []Session{
		{ID: "new", UpdatedAt: base.Add(time.Hour)},
		{ID: "old", UpdatedAt: base},
	}

	sessions = TouchSession(sessions, "old", base.Add(3*time.Hour))

	if sessions[0].ID != "old" {
		t.Errorf("first session = %q, want old", sessions[0].ID)
	}
	if !sessions[0].UpdatedAt.Equal(base.Add(3 * time.Hour)) {
		t.Errorf("UpdatedAt not bumped: %v", sessions[0].UpdatedAt)
	}
}

func TestTouchSession_UnknownIDKeepsOrder(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	sessions := []Session{
		{ID: "a", UpdatedAt: base.Add(time.Hour)},
		{ID: "b", UpdatedAt: base},
	}
	sessions = TouchSession(sessions, "missing", base.Add(5*time.Hour))
	if sessions[0].ID != "a" || sessions[1].ID != "b" {
		t.Errorf("order changed for unknown id: %v", sessions)
	}
}

func TestRemoveSession(t *testing.T) {
	sessions := []Session{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	out := RemoveSession(sessions, "b")
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if _, ok := FindSession(out, "b"); ok {
		t.Error("session b still present")
	}
	if len(sessions) != 3 {
		t.Error("input slice was modified")
	}
}

func TestNewSessionName(t *testing.T) {
	at := time.Date(2026, 10, 8, 14, 5, 9, 0, time.UTC)
	got := NewSessionName("Cuộc trò chuyện", at)
	if got != "Cuộc trò chuyện 14:05:09 8/10/2026" {
		t.Errorf("NewSessionName() = %q", got)
	}
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewUserMessage_IsLocal(t *testing.T) {
	m := NewUserMessage("s1", "xin chào")
	if !m.IsLocal() {
		t.Error("optimistic message should be local")
	}
	if !m.IsUser() || m.IsAssistant() {
		t.Errorf("role = %q, want user", m.Role)
	}
	if m.SessionID != "s1" {
		t.Errorf("SessionID = %q", m.SessionID)
	}

	server := Message{ID: "3f1c", Role: RoleAssistant}
	if server.IsLocal() {
		t.Error("server message reported as local")
	}
}

func TestRemoveMessage(t *testing.T) {
	opt := NewUserMessage("s1", "hi")
	msgs := []Message{{ID: "m1"}, opt, {ID: "m2"}}
	out := RemoveMessage(msgs, opt.ID)
	if len(out) != 2 || out[0].ID != "m1" || out[1].ID != "m2" {
		t.Errorf("RemoveMessage() = %+v", out)
	}
}

func TestActionButton_HTTPMethod(t *testing.T) {
	tests := map[string]string{"": "POST", "get": "GET", " put ": "PUT", "POST": "POST"}
	for in, want := range tests {
		if got := (ActionButton{Method: in}).HTTPMethod(); got != want {
			t.Errorf("HTTPMethod(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMessage_DecodeActionCard(t *testing.T) {
	raw := `{"id":"m1","role":"assistant","content":"ok","created_at":"2026-01-02T03:04:05Z",
		"action_card":{"type":"ticket","title":"Tạo ticket","description":"d",
		"action":{"text":"Tạo","endpoint":"/api/v1/tickets/","method":"POST","payload":{"question":"q"}}}}`
	var m Message
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.ActionCard == nil {
		t.Fatal("action card not decoded")
	}
	if m.ActionCard.Action.Payload["question"] != "q" {
		t.Errorf("payload = %v", m.ActionCard.Action.Payload)
	}
}

// =============================================================================
// FILTER TESTS
// =============================================================================

func TestFilterDocuments(t *testing.T) {
	docs := []Document{
		{ID: "1", Name: "Quy định nghỉ phép", Content: "Nhân viên được nghỉ 12 ngày"},
		{ID: "2", Name: "VPN setup", Content: "Install the client"},
		{ID: "3", Name: "Onboarding", Content: "Chính sách NGHỈ PHÉP cho nhân viên mới"},
	}

	tests := []struct {
		term string
		want []string
	}{
		{"", []string{"1", "2", "3"}},
		{"vpn", []string{"2"}},
		{"nghỉ phép", []string{"1", "3"}},
		{"CLIENT", []string{"2"}},
		{"không có", nil},
	}

	for _, tc := range tests {
		t.Run(tc.term, func(t *testing.T) {
			got := FilterDocuments(docs, tc.term)
			if len(got) != len(tc.want) {
				t.Fatalf("FilterDocuments(%q) returned %d docs, want %d", tc.term, len(got), len(tc.want))
			}
			for i, d := range got {
				if d.ID != tc.want[i] {
					t.Errorf("doc[%d] = %s, want %s", i, d.ID, tc.want[i])
				}
			}
		})
	}
}

func TestFilterCategories_NameOrDescription(t *testing.T) {
	cats := []Category{
		{ID: "hr", Name: "Nhân sự", Description: "Chính sách"},
		{ID: "it", Name: "IT", Description: "Hỗ trợ kỹ thuật"},
	}
	if got := FilterCategories(cats, "kỹ thuật"); len(got) != 1 || got[0].ID != "it" {
		t.Errorf("description match failed: %+v", got)
	}
	if got := FilterCategories(cats, "NHÂN"); len(got) != 1 || got[0].ID != "hr" {
		t.Errorf("name match failed: %+v", got)
	}
}

func TestDocument_PreviewAndCounts(t *testing.T) {
	d := Document{Content: strings.Repeat("ă", 150), Categories: []Category{{ID: "a"}, {ID: "b"}}}
	if n := len([]rune(d.Preview())); n != PreviewLength {
		t.Errorf("preview length = %d, want %d", n, PreviewLength)
	}
	if d.CharCount() != 150 {
		t.Errorf("CharCount() = %d", d.CharCount())
	}
	ids := d.CategoryIDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("CategoryIDs() = %v", ids)
	}
}

func TestDocument_Date(t *testing.T) {
	created := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	uploaded := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	if got := (Document{CreatedAt: created, UploadedAt: uploaded}).Date(); !got.Equal(created) {
		t.Errorf("Date() = %v, want created_at", got)
	}
	if got := (Document{UploadedAt: uploaded}).Date(); !got.Equal(uploaded) {
		t.Errorf("Date() = %v, want uploaded_at fallback", got)
	}
	if !(Document{}).Date().IsZero() {
		t.Error("Date() of an undated document should be zero")
	}
}

func TestFormatters(t *testing.T) {
	if FormatDate(time.Time{}) != "-" {
		t.Error("zero date should render as -")
	}
	if FormatSessionTime(time.Time{}) != "" || FormatMessageTime(time.Time{}) != "" {
		t.Error("zero time should render empty")
	}
	at := time.Date(2026, 1, 5, 8, 3, 0, 0, time.Local)
	if got := FormatSessionTime(at); got != "05/01 08:03" {
		t.Errorf("FormatSessionTime() = %q", got)
	}
	if got := FormatMessageTime(at); got != "08:03" {
		t.Errorf("FormatMessageTime() = %q", got)
	}
}

func TestHealth_OK(t *testing.T) {
	if !(Health{Status: "ok"}).OK() {
		t.Error("status ok should be healthy")
	}
	if (Health{Status: "degraded"}).OK() {
		t.Error("status degraded should not be healthy")
	}
}
