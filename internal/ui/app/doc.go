// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea model. It owns the chat screen and the
// admin dashboard, switches between them, and draws the shared header,
// banners and status bar.
//
// Results of asynchronous requests are routed to the screen that issued
// them even when the other screen is active. Keys go to the active screen.
//
// The backend health is polled in the background and configuration file
// changes are delivered as messages from a watcher goroutine.
package app
