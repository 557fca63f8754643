// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package stubserver is an in-memory stand-in for the assistant backend.
//
// It serves the same /api/v1 routes and JSON envelopes as the real service so
// the client, CLI and TUI can be developed and tested without a database or
// an LLM. Replies are assembled from naive keyword matches over the stored
// documents; when nothing matches, the reply carries a create-ticket action card.
//
// # Usage
//
//	srv := stubserver.New(stubserver.WithSeed())
//	ts := httptest.NewServer(srv.Router())
//	client := api.NewClientWithConfig(&api.ClientConfig{BaseURL: ts.URL + "/api/v1"})
package stubserver
