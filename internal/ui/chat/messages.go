// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/jeranaias/aidesk/internal/api"
	"github.com/jeranaias/aidesk/internal/model"
)

// SessionsLoadedMsg delivers the conversation list.
type SessionsLoadedMsg struct {
	Sessions []model.Session
	Err      error
}

// SessionLoadedMsg delivers one conversation and its messages.
type SessionLoadedMsg struct {
	ID       string
	Session  *model.Session
	Messages []model.Message
	Err      error
}

// SessionCreatedMsg reports a new conversation. Pending is the text to send
// once the session exists, or "".
type SessionCreatedMsg struct {
	Session *model.Session
	Pending string
	Err     error
}

// MessageSentMsg reports the reply to a sent message. LocalID is the id of
// the optimistic user message.
type MessageSentMsg struct {
	SessionID string
	LocalID   string
	Response  *api.ChatResponse
	Err       error
}

// SessionDeletedMsg reports a deleted conversation.
type SessionDeletedMsg struct {
	ID  string
	Err error
}

// CategoriesLoadedMsg delivers the categories for the welcome screen.
type CategoriesLoadedMsg struct {
	Categories []model.Category
	Err        error
}

// ActionDoneMsg reports the outcome of an action card.
type ActionDoneMsg struct {
	SessionID string
	Result    *api.ActionResult
	Err       error
}
