// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/help"

	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/ui/components"
)

// View renders the header, banners, active screen and status bar.
func (m *Model) View() string {
	var body string
	var keys help.KeyMap

	if m.screen == ScreenAdmin {
		m.header.Subtitle = m.printer.T(locale.AdminTitle)
		body = m.admin.View()
		keys = m.admin.Keys()
	} else {
		m.header.Subtitle = ""
		if s := m.chat.Current(); s != nil {
			m.header.Subtitle = s.Name
		}
		body = m.chat.View()
		keys = m.chat.Keys()
	}

	out := m.header.View() + "\n"
	if banners := components.RenderBanners(m.theme, m.banners.Banners(), m.width); banners != "" {
		out += banners + "\n"
	}
	return out + body + "\n" + m.status.View(keys)
}
