// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"unicode/utf16"

	"github.com/charmbracelet/lipgloss"
)

// BadgeColor is one entry of the category badge palette.
type BadgeColor struct {
	Name string
	Bg   lipgloss.AdaptiveColor
	Fg   lipgloss.AdaptiveColor
}

// BadgePalette is indexed by NameHash. Order matters: changing it recolors
// every category.
var BadgePalette = []BadgeColor{
	{"blue", lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1E3A8A"}, lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#BFDBFE"}},
	{"green", lipgloss.AdaptiveColor{Light: "#DCFCE7", Dark: "#14532D"}, lipgloss.AdaptiveColor{Light: "#166534", Dark: "#BBF7D0"}},
	{"purple", lipgloss.AdaptiveColor{Light: "#F3E8FF", Dark: "#581C87"}, lipgloss.AdaptiveColor{Light: "#6B21A8", Dark: "#E9D5FF"}},
	{"pink", lipgloss.AdaptiveColor{Light: "#FCE7F3", Dark: "#831843"}, lipgloss.AdaptiveColor{Light: "#9D174D", Dark: "#FBCFE8"}},
	{"indigo", lipgloss.AdaptiveColor{Light: "#E0E7FF", Dark: "#312E81"}, lipgloss.AdaptiveColor{Light: "#3730A3", Dark: "#C7D2FE"}},
	{"yellow", lipgloss.AdaptiveColor{Light: "#FEF9C3", Dark: "#713F12"}, lipgloss.AdaptiveColor{Light: "#854D0E", Dark: "#FEF08A"}},
	{"red", lipgloss.AdaptiveColor{Light: "#FEE2E2", Dark: "#7F1D1D"}, lipgloss.AdaptiveColor{Light: "#991B1B", Dark: "#FECACA"}},
	{"gray", lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#374151"}, lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E7EB"}},
}

// CategoryIcons is indexed by NameHash. ASCII-safe stand-ins for the web
// client's icon set, in the same order.
var CategoryIcons = []string{
	"[doc]", "[tag]", "[book]", "[case]",
	"[code]", "[db]", "[web]", "[shield]",
	"[zap]", "[star]", "[heart]", "[target]",
	"[idea]", "[rocket]", "[puzzle]", "[game]",
}

// NameHash is the 32-bit string hash h = h*31 + c over the UTF-16 code units
// of name, with two's-complement wraparound. Names hash identically to the
// web client, so a category keeps its color across clients.
func NameHash(name string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(name)) {
		h = (h << 5) - h + int32(c)
	}
	return h
}

// NameIndex maps name onto [0, n) using |NameHash(name)| mod n.
func NameIndex(name string, n int) int {
	if n <= 0 {
		return 0
	}
	h := int64(NameHash(name))
	if h < 0 {
		h = -h
	}
	return int(h % int64(n))
}

// CategoryColor returns the badge color for a category name.
func CategoryColor(name string) BadgeColor {
	return BadgePalette[NameIndex(name, len(BadgePalette))]
}

// CategoryIcon returns the icon for a category name.
func CategoryIcon(name string) string {
	return CategoryIcons[NameIndex(name, len(CategoryIcons))]
}

// CategoryBadge returns the pill style for a category name.
func CategoryBadge(name string) lipgloss.Style {
	c := CategoryColor(name)
	return lipgloss.NewStyle().
		Background(c.Bg).
		Foreground(c.Fg).
		Padding(0, 1)
}

// RenderBadge renders a category name as a colored pill.
func RenderBadge(name string) string {
	return CategoryBadge(name).Render(name)
}
