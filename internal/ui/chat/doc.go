// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat screen of the aidesk TUI.
//
// The screen combines the conversation sidebar, the message viewport, the
// input line and, when no conversation is open, a welcome screen listing
// categories to start from.
//
// # Request Flow
//
// Every user action issues at most one request. Sending appends the user
// message immediately, disables the input and shows the typing indicator;
// the reply (with its action card, if any) is appended when the request
// returns. On failure the optimistic message is removed and an error banner
// is shown.
//
// # Key Types
//
//   - Model: Bubble Tea model for the chat screen
//   - Backend: The subset of the API client the screen uses
//   - KeyMap: Key bindings, rendered by the status bar
package chat
