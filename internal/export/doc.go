// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes chat session transcripts to files.
//
// A Transcript is built from a session and its messages as returned by the
// backend. Exporters render it as Markdown, JSON or standalone HTML.
//
// # Key Types
//
//   - Transcript: a session plus its messages
//   - Exporter: renders a transcript in one format
//   - Options: output directory, metadata and timestamp switches
//
// # Usage
//
//	t := export.NewTranscript(session, messages)
//	exp, err := export.ForFormat("md", opts)
//	path, err := export.ToFile(t, exp, opts)
package export
