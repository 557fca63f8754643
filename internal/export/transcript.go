// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"github.com/jeranaias/aidesk/internal/model"
)

// Transcript is a session with its messages, ready to render.
type Transcript struct {
	Session  model.Session   `json:"session"`
	Category string          `json:"category,omitempty"`
	Messages []model.Message `json:"messages"`
}

// NewTranscript builds a transcript. Messages that exist only on the client
// (optimistic sends, action notes) are left out.
func NewTranscript(session model.Session, messages []model.Message) *Transcript {
	kept := make([]model.Message, 0, len(messages))
	for _, m := range messages {
		if m.IsLocal() {
			continue
		}
		kept = append(kept, m)
	}
	return &Transcript{Session: session, Messages: kept}
}

// WithCategory sets the category name shown in the metadata header.
func (t *Transcript) WithCategory(name string) *Transcript {
	t.Category = name
	return t
}

func (t *Transcript) validate() error {
	if t == nil {
		return ErrNilTranscript
	}
	if len(t.Messages) == 0 {
		return ErrNoMessages
	}
	return nil
}

// roleLabel names the sender of a message.
func roleLabel(r model.Role) string {
	if r == "" {
		return "Unknown"
	}
	return r.DisplayName()
}
