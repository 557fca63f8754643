// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/aidesk/internal/config"
	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/ui/admin"
	"github.com/jeranaias/aidesk/internal/ui/chat"
	"github.com/jeranaias/aidesk/internal/ui/components"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages and routes them to the screens.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.status.SetWidth(msg.Width)
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		cmd = m.routeActive(msg)

	case components.SwitchToAdminMsg:
		cmd = m.showAdmin()

	case admin.SwitchToChatMsg:
		cmd = m.showChat()

	case components.BannerTickMsg:
		m.banners.Tick(msg.Time)
		cmd = components.BannerTickCmd()

	case healthMsg:
		m.handleHealth(msg)
		cmd = healthTick(m.healthInterval)

	case healthTickMsg:
		cmd = healthCmd(m.client, m.cfg.Timeout())

	case configReloadedMsg:
		cmd = tea.Batch(m.handleReload(msg), waitForReload(m.reloads))

	// Request results go back to the screen that issued them.
	case chat.SessionsLoadedMsg, chat.SessionLoadedMsg, chat.SessionCreatedMsg,
		chat.MessageSentMsg, chat.SessionDeletedMsg, chat.CategoriesLoadedMsg,
		chat.ActionDoneMsg, spinner.TickMsg,
		components.SessionSelectedMsg, components.SessionNewMsg, components.SessionDeleteMsg:
		_, cmd = m.chat.Update(msg)

	case admin.DocumentsLoadedMsg, admin.DocCategoriesLoadedMsg, admin.DocumentSavedMsg,
		admin.DocumentDeletedMsg, admin.ReembedDoneMsg, admin.DocCategoriesSavedMsg,
		admin.CategoriesLoadedMsg, admin.CategoryCountsMsg, admin.CategorySavedMsg,
		admin.CategoryDeletedMsg,
		components.CategoriesPickedMsg, components.CategoryPickCancelledMsg:
		_, cmd = m.admin.Update(msg)

	default:
		cmd = m.routeActive(msg)
	}

	m.syncBanners()
	return m, cmd
}

// routeActive forwards msg to the active screen.
func (m *Model) routeActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.screen == ScreenAdmin {
		_, cmd = m.admin.Update(msg)
	} else {
		_, cmd = m.chat.Update(msg)
	}
	return cmd
}

// =============================================================================
// SCREEN SWITCHING
// =============================================================================

func (m *Model) showAdmin() tea.Cmd {
	if m.screen == ScreenAdmin {
		return nil
	}
	m.screen = ScreenAdmin
	m.resize()
	if !m.adminLoaded {
		m.adminLoaded = true
		return m.admin.Init()
	}
	return m.admin.Reload()
}

// showChat returns to the chat. Categories are refetched since the
// dashboard may have changed them.
func (m *Model) showChat() tea.Cmd {
	if m.screen == ScreenChat {
		return nil
	}
	m.screen = ScreenChat
	m.resize()
	return m.chat.Reload()
}

// =============================================================================
// LAYOUT
// =============================================================================

// bodyHeight is what remains below the header and banners and above the
// status bar.
func (m *Model) bodyHeight() int {
	h := m.height - 2 - m.bannerLines
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) resize() {
	m.bannerLines = m.renderedBannerLines()
	m.chat.SetSize(m.width, m.bodyHeight())
	m.admin.SetSize(m.width, m.bodyHeight())
}

// syncBanners resizes the screens when banners appear or expire.
func (m *Model) syncBanners() {
	if m.renderedBannerLines() != m.bannerLines {
		m.resize()
	}
}

func (m *Model) renderedBannerLines() int {
	out := components.RenderBanners(m.theme, m.banners.Banners(), m.width)
	if out == "" {
		return 0
	}
	return lipgloss.Height(out)
}

// =============================================================================
// HEALTH AND CONFIG
// =============================================================================

func (m *Model) handleHealth(msg healthMsg) {
	prev := m.health
	m.health = msg.Status
	m.header.Status = msg.Status

	switch {
	case msg.Status == components.BackendOffline && prev != components.BackendOffline:
		log.Printf("health: %v", msg.Err)
		m.banners.Warning(m.printer.T(locale.BackendDown))
	case msg.Status == components.BackendOnline && prev == components.BackendOffline:
		m.banners.Success(m.printer.T(locale.BackendUp))
	}
}

func (m *Model) handleReload(msg configReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		log.Printf("config reload: %v", msg.Err)
		m.banners.Error(m.printer.T(locale.ErrConfigReload, msg.Err))
		return nil
	}
	if msg.Config == nil {
		return nil
	}
	return m.applyConfig(msg.Config)
}

// applyConfig switches to cfg. Language and theme change in place; a
// changed API section gets a new client and a refetch.
func (m *Model) applyConfig(cfg *config.Config) tea.Cmd {
	old := m.cfg
	m.cfg = cfg

	if cfg.UI.Language != old.UI.Language {
		m.printer.SetLanguage(cfg.UI.Language)
		m.header.Title = m.printer.T(locale.AppTitle)
	}
	if cfg.UI.Theme != old.UI.Theme {
		m.theme.Use(cfg.UI.Theme)
	}
	m.chat.SetShowTimestamps(cfg.UI.ShowTimestamps)
	m.admin.SetChunkingPreset(cfg.Chunking.DefaultPreset)
	m.status.Backend = cfg.API.BaseURL

	var cmds []tea.Cmd
	if cfg.API != old.API && m.newClient != nil {
		m.client = m.newClient(cfg)
		m.chat.SetClient(m.client)
		m.admin.SetClient(m.client)
		cmds = append(cmds, m.chat.Reload(), healthCmd(m.client, cfg.Timeout()))
		if m.adminLoaded {
			cmds = append(cmds, m.admin.Reload())
		}
	}

	m.banners.Info(m.printer.T(locale.ConfigReloaded))
	return tea.Batch(cmds...)
}
