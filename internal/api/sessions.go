// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/jeranaias/aidesk/internal/model"
)

// =============================================================================
// SESSION TYPES
// =============================================================================

// CreateSessionOptions carries the optional fields of a new session.
type CreateSessionOptions struct {
	UserID     string
	CategoryID string
}

type createSessionRequest struct {
	Name       string `json:"name"`
	UserID     string `json:"user_id,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
}

type sessionResponse struct {
	Session model.Session `json:"session"`
}

type sessionsResponse struct {
	Sessions []model.Session `json:"sessions"`
}

type sessionDetailResponse struct {
	Session  model.Session   `json:"session"`
	Messages []model.Message `json:"messages"`
}

type sendMessageRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the assistant's reply to one user message.
type ChatResponse struct {
	Message    model.Message     `json:"message"`
	ActionCard *model.ActionCard `json:"action_card,omitempty"`
}

type chatEnvelope struct {
	Response ChatResponse `json:"response"`
}

func sessionPath(id string, rest ...string) string {
	return "/chat/sessions/" + url.PathEscape(id) + strings.Join(rest, "")
}

// =============================================================================
// SESSION OPERATIONS
// =============================================================================

// CreateSession starts a new chat session.
func (c *Client) CreateSession(ctx context.Context, name string, opts CreateSessionOptions) (*model.Session, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ClientError{Type: ErrTypeBadRequest, Message: "session name is required"}
	}
	var resp sessionResponse
	err := c.call(ctx, http.MethodPost, "/chat/sessions", createSessionRequest{
		Name:       name,
		UserID:     opts.UserID,
		CategoryID: opts.CategoryID,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Session, nil
}

// ListSessions returns all sessions, newest first.
func (c *Client) ListSessions(ctx context.Context) ([]model.Session, error) {
	var resp sessionsResponse
	if err := c.call(ctx, http.MethodGet, "/chat/sessions", nil, &resp); err != nil {
		return nil, err
	}
	model.SortSessionsByRecency(resp.Sessions)
	return resp.Sessions, nil
}

// GetSession returns a session and its full message history.
func (c *Client) GetSession(ctx context.Context, id string) (*model.Session, []model.Message, error) {
	var resp sessionDetailResponse
	if err := c.call(ctx, http.MethodGet, sessionPath(id), nil, &resp); err != nil {
		return nil, nil, err
	}
	return &resp.Session, resp.Messages, nil
}

// SendMessage posts a user message and waits for the assistant reply.
// A returned action card is also attached to the reply message.
func (c *Client) SendMessage(ctx context.Context, sessionID, text string) (*ChatResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ClientError{Type: ErrTypeBadRequest, Message: "message is empty"}
	}
	var resp chatEnvelope
	if err := c.call(ctx, http.MethodPost, sessionPath(sessionID, "/messages"), sendMessageRequest{Message: text}, &resp); err != nil {
		return nil, err
	}
	if resp.Response.ActionCard != nil && resp.Response.Message.ActionCard == nil {
		resp.Response.Message.ActionCard = resp.Response.ActionCard
	}
	return &resp.Response, nil
}

// DeleteSession removes a session and its messages.
func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, sessionPath(id), nil, nil)
}
