// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/aidesk/internal/ui/styles"
)

// =============================================================================
// BANNER TYPES
// =============================================================================

// BannerKind represents the type of banner.
type BannerKind int

const (
	BannerError BannerKind = iota
	BannerWarning
	BannerSuccess
	BannerInfo
)

// Auto-dismiss durations. Errors stay longer so they can be read.
const (
	DefaultBannerDuration = 4 * time.Second
	WarningBannerDuration = 6 * time.Second
	ErrorBannerDuration   = 8 * time.Second
)

// maxBanners is the number of banners shown at once.
const maxBanners = 3

// Banner is a transient notification shown above the status bar.
type Banner struct {
	ID        int
	Message   string
	Kind      BannerKind
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the banner should be dismissed at now.
func (b Banner) IsExpired(now time.Time) bool {
	return now.Sub(b.CreatedAt) >= b.Duration
}

func durationFor(kind BannerKind) time.Duration {
	switch kind {
	case BannerError:
		return ErrorBannerDuration
	case BannerWarning:
		return WarningBannerDuration
	default:
		return DefaultBannerDuration
	}
}

// =============================================================================
// BANNER MANAGER
// =============================================================================

// BannerManager holds the active banners, newest first.
type BannerManager struct {
	banners []Banner
	nextID  int
	now     func() time.Time
}

// NewBannerManager creates an empty banner manager.
func NewBannerManager() *BannerManager {
	return &BannerManager{nextID: 1, now: time.Now}
}

// Add shows a banner and returns its id.
func (m *BannerManager) Add(kind BannerKind, message string) int {
	b := Banner{
		ID:        m.nextID,
		Message:   message,
		Kind:      kind,
		CreatedAt: m.now(),
		Duration:  durationFor(kind),
	}
	m.nextID++

	m.banners = append([]Banner{b}, m.banners...)
	if len(m.banners) > maxBanners {
		m.banners = m.banners[:maxBanners]
	}
	return b.ID
}

// Error shows an error banner.
func (m *BannerManager) Error(message string) int { return m.Add(BannerError, message) }

// Warning shows a warning banner.
func (m *BannerManager) Warning(message string) int { return m.Add(BannerWarning, message) }

// Success shows a success banner.
func (m *BannerManager) Success(message string) int { return m.Add(BannerSuccess, message) }

// Info shows an informational banner.
func (m *BannerManager) Info(message string) int { return m.Add(BannerInfo, message) }

// Tick drops expired banners and returns the remaining ones.
func (m *BannerManager) Tick(now time.Time) []Banner {
	active := m.banners[:0]
	for _, b := range m.banners {
		if !b.IsExpired(now) {
			active = append(active, b)
		}
	}
	m.banners = active
	return m.banners
}

// Banners returns a copy of the active banners.
func (m *BannerManager) Banners() []Banner {
	out := make([]Banner, len(m.banners))
	copy(out, m.banners)
	return out
}

// HasBanners reports whether any banner is showing.
func (m *BannerManager) HasBanners() bool {
	return len(m.banners) > 0
}

// =============================================================================
// BANNER MESSAGES
// =============================================================================

// BannerTickMsg is sent periodically to expire banners.
type BannerTickMsg struct {
	Time time.Time
}

// BannerTickCmd ticks banners every 250ms.
func BannerTickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return BannerTickMsg{Time: t}
	})
}

// =============================================================================
// BANNER RENDERING
// =============================================================================

// RenderBanner renders a single banner line, wrapped to width.
func RenderBanner(theme *styles.Theme, b Banner, width int) string {
	var style lipgloss.Style
	var icon string
	switch b.Kind {
	case BannerError:
		style, icon = theme.BannerError, styles.StatusIndicators.Error
	case BannerWarning:
		style, icon = theme.BannerWarning, styles.StatusIndicators.Warning
	case BannerSuccess:
		style, icon = theme.BannerSuccess, styles.StatusIndicators.Success
	default:
		style, icon = theme.BannerInfo, styles.StatusIndicators.Info
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(icon + " " + b.Message)
}

// RenderBanners stacks the banners, newest on top.
func RenderBanners(theme *styles.Theme, banners []Banner, width int) string {
	if len(banners) == 0 {
		return ""
	}
	lines := make([]string, 0, len(banners))
	for _, b := range banners {
		lines = append(lines, RenderBanner(theme, b, width))
	}
	return strings.Join(lines, "\n")
}
