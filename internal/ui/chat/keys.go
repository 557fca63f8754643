// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the chat screen key bindings.
type KeyMap struct {
	Send          key.Binding
	NextFocus     key.Binding
	PrevFocus     key.Binding
	Back          key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	ToggleSidebar key.Binding
	NewChat       key.Binding
	Admin         key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default chat bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "gửi"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "chuyển vùng"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "về ô nhập"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "cuộn lên"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "cuộn xuống"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("C-b", "danh sách"),
		),
		NewChat: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("C-n", "mới"),
		),
		Admin: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "admin"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "thoát"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.NextFocus, k.ToggleSidebar, k.NewChat, k.Admin, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.NextFocus, k.Back},
		{k.PageUp, k.PageDown},
		{k.ToggleSidebar, k.NewChat, k.Admin, k.Quit},
	}
}
