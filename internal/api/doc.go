// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the REST client for the Company AI Assistant backend.
//
// Every backend endpoint under /api/v1 has one method on Client. Calls are
// single-shot: there are no retries and no caching, and each takes a
// context.Context so callers control the deadline.
//
// # Key Types
//
//   - Client: Thread-safe client built on resty
//   - ClientConfig: Base URL, timeout, user agent and optional rate limit
//   - ClientError: Typed error carrying the backend's "error" text
//   - ChatResponse: Assistant reply plus optional action card
//
// # Usage
//
//	client := api.NewClientWithConfig(&api.ClientConfig{
//	    BaseURL: "http://localhost:8082/api/v1",
//	})
//	sessions, err := client.ListSessions(ctx)
//	if api.IsUnavailable(err) {
//	    // backend is down
//	}
package api
