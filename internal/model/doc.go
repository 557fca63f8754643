// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures exchanged with the assistant backend.
//
// The client never owns these entities. Every value here is a transient copy of
// what the backend returned, refreshed on the next fetch.
//
// # Key Types
//
//   - Session: A chat conversation, ordered by UpdatedAt
//   - Message: A single user or assistant turn, optionally carrying an ActionCard
//   - ActionCard: A suggested follow-up with one clickable ActionButton
//   - Document: A knowledge base entry with its assigned categories
//   - Category: A topic label shared by documents and sessions
//   - SearchResult: A chunk returned by semantic search
//
// # Usage
//
// Keep the session list ordered after a reply arrives:
//
//	sessions = model.TouchSession(sessions, id, time.Now())
//
// Filter loaded documents by a search term:
//
//	visible := model.FilterDocuments(docs, "nghỉ phép")
package model
