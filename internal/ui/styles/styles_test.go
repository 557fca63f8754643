// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
)

func TestNameHash(t *testing.T) {
	tests := []struct {
		name string
		want int32
	}{
		{"", 0},
		{"a", 97},
		{"ab", 97*31 + 98},
		{"IT", 73*31 + 84},
		// Same value the web client computes for "Nhân sự".
		{"Nhân sự", -599690216},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NameHash(tt.name); got != tt.want {
				t.Errorf("NameHash(%q) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestNameHashWraps(t *testing.T) {
	long := strings.Repeat("z", 64)
	h := NameHash(long)
	var want int32
	for i := 0; i < 64; i++ {
		want = want*31 + 'z'
	}
	if h != want {
		t.Errorf("NameHash wraparound = %d, want %d", h, want)
	}
}

func TestNameHashUTF16(t *testing.T) {
	// Astral characters hash as two surrogate code units.
	got := NameHash("😀")
	want := int32(0xD83D)*31 + int32(0xDE00)
	if got != want {
		t.Errorf("NameHash(emoji) = %d, want %d", got, want)
	}
}

func TestNameIndex(t *testing.T) {
	if got := NameIndex("IT", 8); got != (73*31+84)%8 {
		t.Errorf("NameIndex(IT, 8) = %d", got)
	}
	if got := NameIndex("anything", 0); got != 0 {
		t.Errorf("NameIndex with n=0 = %d, want 0", got)
	}
	for _, name := range []string{"Nhân sự", "IT", "Tài chính", "", "😀", strings.Repeat("z", 64)} {
		idx := NameIndex(name, len(BadgePalette))
		if idx < 0 || idx >= len(BadgePalette) {
			t.Errorf("NameIndex(%q) = %d out of range", name, idx)
		}
	}
}

func TestCategoryColorStable(t *testing.T) {
	a := CategoryColor("Nhân sự")
	b := CategoryColor("Nhân sự")
	if a.Name != b.Name {
		t.Errorf("CategoryColor not stable: %s vs %s", a.Name, b.Name)
	}
	if len(BadgePalette) != 8 {
		t.Errorf("palette size = %d, want 8", len(BadgePalette))
	}
	if len(CategoryIcons) != 16 {
		t.Errorf("icon count = %d, want 16", len(CategoryIcons))
	}
	if CategoryIcon("IT") != CategoryIcons[(73*31+84)%16] {
		t.Errorf("CategoryIcon(IT) = %s", CategoryIcon("IT"))
	}
}

func TestRenderBadgeContainsName(t *testing.T) {
	if !strings.Contains(RenderBadge("IT"), "IT") {
		t.Error("badge should contain the category name")
	}
}

func TestRenderGauge(t *testing.T) {
	tests := []struct {
		value, min, max float64
		want            string
	}{
		{50, 0, 100, "#####-----"},
		{0, 0, 100, "----------"},
		{100, 0, 100, "##########"},
		{150, 0, 100, "##########"},
		{-5, 0, 100, "----------"},
		{5, 5, 5, "----------"},
	}
	for _, tt := range tests {
		if got := RenderGauge(10, tt.value, tt.min, tt.max); got != tt.want {
			t.Errorf("RenderGauge(10, %v, %v, %v) = %q, want %q", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
	if RenderGauge(0, 1, 0, 1) != "" {
		t.Error("zero width gauge should be empty")
	}
}

func TestLayoutMode(t *testing.T) {
	th := NewTheme()
	th.SetSize(50, 20)
	if th.GetLayoutMode() != LayoutNarrow || th.SidebarWidth() != 0 {
		t.Error("50 columns should be narrow without sidebar")
	}
	th.SetSize(80, 20)
	if th.GetLayoutMode() != LayoutMedium {
		t.Error("80 columns should be medium")
	}
	th.SetSize(120, 20)
	if th.GetLayoutMode() != LayoutWide || th.SidebarWidth() == 0 {
		t.Error("120 columns should be wide with sidebar")
	}
}
