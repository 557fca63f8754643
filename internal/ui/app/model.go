// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/aidesk/internal/config"
	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
	"github.com/jeranaias/aidesk/internal/ui/admin"
	"github.com/jeranaias/aidesk/internal/ui/chat"
	"github.com/jeranaias/aidesk/internal/ui/components"
	"github.com/jeranaias/aidesk/internal/ui/styles"
)

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// Screen identifies the active screen.
type Screen int

const (
	ScreenChat Screen = iota
	ScreenAdmin
)

// Backend is everything the application needs from the API client.
type Backend interface {
	chat.Backend
	admin.Backend
	Health(ctx context.Context) (*model.Health, error)
}

// DefaultHealthInterval is how often the backend health is polled.
const DefaultHealthInterval = 30 * time.Second

// Options configures the application.
type Options struct {
	Config *config.Config
	Client Backend

	// NewClient builds a backend for a reloaded config. Nil keeps Client.
	NewClient func(cfg *config.Config) Backend

	Theme   *styles.Theme
	Printer *locale.Printer

	HealthInterval time.Duration
}

// Model is the main Bubble Tea model for the application.
type Model struct {
	cfg       *config.Config
	client    Backend
	newClient func(cfg *config.Config) Backend

	theme   *styles.Theme
	printer *locale.Printer

	header  *components.Header
	status  *components.StatusBar
	banners *components.BannerManager

	chat        *chat.Model
	admin       *admin.Model
	screen      Screen
	adminLoaded bool

	health         components.BackendStatus
	healthInterval time.Duration

	reloads chan configReloadedMsg

	width       int
	height      int
	bannerLines int
}

// New creates the application model.
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}
	p := opts.Printer
	if p == nil {
		p = locale.New(cfg.UI.Language)
	}
	interval := opts.HealthInterval
	if interval <= 0 {
		interval = DefaultHealthInterval
	}

	banners := components.NewBannerManager()
	header := components.NewHeader(theme, p.T(locale.AppTitle))
	status := components.NewStatusBar(theme)
	status.Backend = cfg.API.BaseURL

	m := &Model{
		cfg:            cfg,
		client:         opts.Client,
		newClient:      opts.NewClient,
		theme:          theme,
		printer:        p,
		header:         header,
		status:         status,
		banners:        banners,
		healthInterval: interval,
		reloads:        make(chan configReloadedMsg, 1),
		width:          80,
		height:         24,
	}
	m.chat = chat.New(chat.Options{
		Client:          opts.Client,
		Theme:           theme,
		Printer:         p,
		Banners:         banners,
		Timeout:         cfg.Timeout(),
		SidebarOpen:     cfg.UI.SidebarOpen,
		ShowTimestamps:  cfg.UI.ShowTimestamps,
		DefaultCategory: cfg.Chat.DefaultCategory,
	})
	m.admin = admin.New(admin.Options{
		Client:         opts.Client,
		Theme:          theme,
		Printer:        p,
		Banners:        banners,
		Timeout:        cfg.Timeout(),
		ChunkingPreset: cfg.Chunking.DefaultPreset,
	})
	return m
}

// Init loads the chat screen and starts the background ticks. The admin
// dashboard loads the first time it is opened.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.chat.Init(),
		healthCmd(m.client, m.cfg.Timeout()),
		components.BannerTickCmd(),
		waitForReload(m.reloads),
	)
}

// WatchConfig delivers changes of the config file at path as messages until
// ctx is cancelled.
func (m *Model) WatchConfig(ctx context.Context, path string) {
	go func() {
		err := config.Watch(ctx, path, func(cfg *config.Config, err error) {
			select {
			case m.reloads <- configReloadedMsg{Config: cfg, Err: err}:
			case <-ctx.Done():
			}
		})
		if err != nil {
			log.Printf("config watch: %v", err)
		}
	}()
}

// Screen returns the active screen.
func (m *Model) Screen() Screen {
	return m.screen
}

// Chat returns the chat screen.
func (m *Model) Chat() *chat.Model {
	return m.chat
}

// Admin returns the admin dashboard.
func (m *Model) Admin() *admin.Model {
	return m.admin
}

// Config returns the active configuration.
func (m *Model) Config() *config.Config {
	return m.cfg
}

// Health returns the last known backend status.
func (m *Model) Health() components.BackendStatus {
	return m.health
}
