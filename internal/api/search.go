// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/jeranaias/aidesk/internal/model"
)

// DefaultSearchLimit is the number of chunks returned when no limit is given.
const DefaultSearchLimit = 10

type searchResponse struct {
	Query   string               `json:"query"`
	Results []model.SearchResult `json:"results"`
}

// Search runs a semantic search over the embedded chunks.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]model.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &ClientError{Type: ErrTypeBadRequest, Message: "search query is required"}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	req := c.http.R().SetQueryParams(map[string]string{
		"q":     query,
		"limit": strconv.Itoa(limit),
	})
	var resp searchResponse
	if err := c.send(ctx, req, http.MethodGet, "/search", &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Health reports whether the backend is up.
func (c *Client) Health(ctx context.Context) (*model.Health, error) {
	var resp model.Health
	if err := c.call(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
