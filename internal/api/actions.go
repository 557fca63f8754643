// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"strings"

	"github.com/jeranaias/aidesk/internal/model"
)

// ActionResult is the outcome of an action card request. Exactly one of
// Message or Error is set.
type ActionResult struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// resolveEndpoint turns an action endpoint into a request URL. Absolute URLs
// pass through; host-relative paths ("/api/v1/tickets") resolve against the
// backend origin; anything else is relative to the API base.
func (c *Client) resolveEndpoint(endpoint string) string {
	switch {
	case strings.HasPrefix(endpoint, "http://"), strings.HasPrefix(endpoint, "https://"):
		return endpoint
	case strings.HasPrefix(endpoint, "/"):
		return c.origin() + endpoint
	default:
		return c.config.BaseURL + "/" + endpoint
	}
}

// ExecuteAction issues the request described by an action card button with
// its payload as the JSON body. Backend failures are reported in
// ActionResult.Error; a non-nil error means no usable response arrived.
func (c *Client) ExecuteAction(ctx context.Context, action model.ActionButton) (*ActionResult, error) {
	if strings.TrimSpace(action.Endpoint) == "" {
		return nil, &ClientError{Type: ErrTypeBadRequest, Message: "action has no endpoint"}
	}

	target := c.resolveEndpoint(action.Endpoint)
	method := action.HTTPMethod()

	req := c.http.R()
	if method != "GET" && method != "DELETE" {
		payload := action.Payload
		if payload == nil {
			payload = map[string]string{}
		}
		req.SetBody(payload)
	}

	var result ActionResult
	err := c.send(ctx, req, method, target, &result)
	if err != nil {
		if typeOf(err) == ErrTypeUnavailable || typeOf(err) == ErrTypeTimeout {
			return nil, err
		}
		return &ActionResult{Error: BackendMessage(err)}, nil
	}
	if result.Message == "" && result.Error == "" {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "action response has no message"}
	}
	return &result, nil
}
