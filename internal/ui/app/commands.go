// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/aidesk/internal/config"
	"github.com/jeranaias/aidesk/internal/ui/components"
)

// =============================================================================
// MESSAGES
// =============================================================================

// healthMsg carries the result of a health check.
type healthMsg struct {
	Status components.BackendStatus
	Err    error
}

// healthTickMsg schedules the next health check.
type healthTickMsg struct{}

// configReloadedMsg carries a config loaded by the file watcher.
type configReloadedMsg struct {
	Config *config.Config
	Err    error
}

// =============================================================================
// COMMANDS
// =============================================================================

func healthCmd(client Backend, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return healthMsg{Status: components.BackendOffline, Err: errors.New("no backend configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		h, err := client.Health(ctx)
		if err != nil {
			return healthMsg{Status: components.BackendOffline, Err: err}
		}
		if !h.OK() {
			return healthMsg{Status: components.BackendOffline, Err: errors.New("backend reported status " + h.Status)}
		}
		return healthMsg{Status: components.BackendOnline}
	}
}

func healthTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return healthTickMsg{} })
}

// waitForReload blocks until the watcher delivers a config.
func waitForReload(ch <-chan configReloadedMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}
