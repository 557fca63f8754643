// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package admin provides the knowledge base dashboard of the aidesk TUI.
//
// The dashboard has two tabs. Documents lists the knowledge base with a
// filter, a detail pane with highlighted content, and forms to create and
// edit entries. Categories manages the category list with document counts.
// The semantic chunking panel edits the configuration sent with semantic
// re-embedding; it lives in dashboard state only.
//
// Destructive and expensive operations (delete, re-embed) go through a
// confirmation dialog. Every failure is reported as a banner and leaves the
// local state untouched; every success refetches the affected list.
package admin
