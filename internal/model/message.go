// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "Bạn"
	case RoleAssistant:
		return "Trợ lý"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// localIDPrefix marks messages that exist only on the client.
const localIDPrefix = "local-"

// Message represents a single turn in a session.
type Message struct {
	ID         string      `json:"id"`
	SessionID  string      `json:"session_id,omitempty"`
	Role       Role        `json:"role"`
	Content    string      `json:"content"`
	CreatedAt  time.Time   `json:"created_at"`
	ActionCard *ActionCard `json:"action_card,omitempty"`
}

// NewUserMessage creates an optimistic user message that has not been
// acknowledged by the backend yet.
func NewUserMessage(sessionID, content string) Message {
	return Message{
		ID:        localIDPrefix + uuid.NewString(),
		SessionID: sessionID,
		Role:      RoleUser,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// NewAssistantNote creates a client-side assistant message, used to surface
// the outcome of an action card.
func NewAssistantNote(sessionID, content string) Message {
	return Message{
		ID:        localIDPrefix + uuid.NewString(),
		SessionID: sessionID,
		Role:      RoleAssistant,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// IsLocal reports whether the message was created on the client.
func (m Message) IsLocal() bool {
	return strings.HasPrefix(m.ID, localIDPrefix)
}

// IsUser returns true if this is a user message.
func (m Message) IsUser() bool {
	return m.Role == RoleUser
}

// IsAssistant returns true if this is an assistant message.
func (m Message) IsAssistant() bool {
	return m.Role == RoleAssistant
}

// RemoveMessage returns msgs without the message with the given id.
func RemoveMessage(msgs []Message, id string) []Message {
	out := msgs[:0:0]
	for _, m := range msgs {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}

// =============================================================================
// ACTION CARD
// =============================================================================

// ActionCard is a structured follow-up suggestion attached to an assistant reply.
type ActionCard struct {
	Type        string       `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Action      ActionButton `json:"action"`
}

// ActionButton describes the request issued when the card is activated.
type ActionButton struct {
	Text     string            `json:"text"`
	Endpoint string            `json:"endpoint"`
	Method   string            `json:"method"`
	Payload  map[string]string `json:"payload,omitempty"`
}

// HTTPMethod returns the upper-cased method, defaulting to POST.
func (b ActionButton) HTTPMethod() string {
	m := strings.ToUpper(strings.TrimSpace(b.Method))
	if m == "" {
		return "POST"
	}
	return m
}
