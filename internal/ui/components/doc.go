// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides reusable UI components for the aidesk TUI.

Components are built on Bubble Tea and Lip Gloss and share the styles.Theme.
Interactive components return tea.Cmds that emit the typed messages declared
next to them, so the screens in internal/ui/chat and internal/ui/admin stay in
charge of API calls.

# Display Components

  - Header (header.go) - Title bar with backend status
  - StatusBar (statusbar.go) - Key hints rendered with bubbles/help
  - MessageView (message.go) - Chat messages and action cards
  - MarkdownRenderer (markdown.go) - glamour rendering for assistant replies
  - Highlight (highlight.go) - Chroma highlighting for document content

# Interactive Components

  - SessionList (sessionlist.go) - Conversation sidebar
  - CategoryPicker (categorypicker.go) - Single and multi category selection
  - ConfirmDialog (confirm.go) - Danger, warning and info confirmations
  - TypingIndicator (typing.go) - Animated "answering" indicator

# Feedback

  - BannerManager (banner.go) - Transient error and success banners

# Usage

	banners := components.NewBannerManager()
	banners.Error(p.T(locale.ErrSendMessage))
	view := components.RenderBanners(theme, banners.Banners(), width)
*/
package components
