// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/aidesk/internal/api"
	"github.com/jeranaias/aidesk/internal/model"
)

// Backend is the part of the API client the chat screen uses.
type Backend interface {
	ListSessions(ctx context.Context) ([]model.Session, error)
	GetSession(ctx context.Context, id string) (*model.Session, []model.Message, error)
	CreateSession(ctx context.Context, name string, opts api.CreateSessionOptions) (*model.Session, error)
	SendMessage(ctx context.Context, sessionID, text string) (*api.ChatResponse, error)
	DeleteSession(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]model.Category, error)
	ExecuteAction(ctx context.Context, action model.ActionButton) (*api.ActionResult, error)
}

// DefaultTimeout bounds each request issued by the screen.
const DefaultTimeout = 30 * time.Second

func loadSessionsCmd(client Backend, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		sessions, err := client.ListSessions(ctx)
		return SessionsLoadedMsg{Sessions: sessions, Err: err}
	}
}

func loadSessionCmd(client Backend, timeout time.Duration, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		session, messages, err := client.GetSession(ctx, id)
		return SessionLoadedMsg{ID: id, Session: session, Messages: messages, Err: err}
	}
}

func createSessionCmd(client Backend, timeout time.Duration, name, categoryID, pending string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		session, err := client.CreateSession(ctx, name, api.CreateSessionOptions{CategoryID: categoryID})
		return SessionCreatedMsg{Session: session, Pending: pending, Err: err}
	}
}

func sendMessageCmd(client Backend, timeout time.Duration, sessionID, localID, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.SendMessage(ctx, sessionID, text)
		return MessageSentMsg{SessionID: sessionID, LocalID: localID, Response: resp, Err: err}
	}
}

func deleteSessionCmd(client Backend, timeout time.Duration, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return SessionDeletedMsg{ID: id, Err: client.DeleteSession(ctx, id)}
	}
}

func loadCategoriesCmd(client Backend, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		cats, err := client.ListCategories(ctx)
		return CategoriesLoadedMsg{Categories: cats, Err: err}
	}
}

func executeActionCmd(client Backend, timeout time.Duration, sessionID string, action model.ActionButton) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		res, err := client.ExecuteAction(ctx, action)
		return ActionDoneMsg{SessionID: sessionID, Result: res, Err: err}
	}
}
