// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"sort"
	"time"
)

// Session is a chat conversation held by the backend.
type Session struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id,omitempty"`
	CategoryID string    `json:"category_id,omitempty"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SortSessionsByRecency orders sessions newest first by UpdatedAt.
// The sort is stable so sessions with equal timestamps keep their order.
func SortSessionsByRecency(sessions []Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].UpdatedAt.After(sessions[j].UpdatedAt)
	})
}

// TouchSession sets UpdatedAt of the session with the given id and re-sorts
// the list. The slice is modified in place and returned for convenience.
func TouchSession(sessions []Session, id string, at time.Time) []Session {
	for i := range sessions {
		if sessions[i].ID == id {
			sessions[i].UpdatedAt = at
			break
		}
	}
	SortSessionsByRecency(sessions)
	return sessions
}

// FindSession returns the session with the given id.
func FindSession(sessions []Session, id string) (Session, bool) {
	for _, s := range sessions {
		if s.ID == id {
			return s, true
		}
	}
	return Session{}, false
}

// RemoveSession returns sessions without the one with the given id.
func RemoveSession(sessions []Session, id string) []Session {
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}

// NewSessionName builds the default name for a session started from free text.
func NewSessionName(prefix string, at time.Time) string {
	return prefix + " " + at.Format("15:04:05 2/1/2006")
}
