// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard key bindings.
type KeyMap struct {
	SwitchTab  key.Binding
	Up         key.Binding
	Down       key.Binding
	Filter     key.Binding
	New        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Reembed    key.Binding
	Semantic   key.Binding
	Categories key.Binding
	Chunking   key.Binding
	ToggleView key.Binding
	Save       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default dashboard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SwitchTab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "đổi tab"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "lên"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "xuống"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "tìm"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "tạo mới"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "sửa"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "xóa"),
		),
		Reembed: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "re-embed"),
		),
		Semantic: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "semantic"),
		),
		Categories: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "danh mục"),
		),
		Chunking: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "chunking"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "lưới/bảng"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "lưu"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "f2"),
			key.WithHelp("esc", "trò chuyện"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "thoát"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchTab, k.Filter, k.New, k.Edit, k.Delete, k.Chunking, k.Back}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchTab, k.Up, k.Down, k.Filter},
		{k.New, k.Edit, k.Delete, k.Categories},
		{k.Reembed, k.Semantic, k.Chunking, k.ToggleView},
		{k.Save, k.Back, k.Quit},
	}
}
