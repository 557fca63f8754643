// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the aidesk TUI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection. The configured theme ("dark", "light" or "auto") is applied with
ApplyTheme before the first render.

# Color System (colors.go)

  - Indigo - Brand color, user messages, selections
  - Teal - Assistant accents and links
  - Emerald - Success banners
  - Amber - Warnings and re-embed confirmations
  - Rose - Errors and destructive confirmations

# Category Colors (category.go)

Categories get a stable badge color and icon derived from their name, so the
same category looks the same in the chat welcome screen, the document list
and the category manager:

	style := styles.CategoryBadge(cat.Name)
	icon := styles.CategoryIcon(cat.Name)

# Theme (theme.go)

Theme bundles the lipgloss styles used by the components:

	theme := styles.NewTheme()
	theme.SetSize(width, height)
	header := theme.Header.Render("Trợ lý AI nội bộ")

# Indicators (indicators.go)

Typing indicator frames and the gauge used by the chunking panel sliders.
*/
package styles
