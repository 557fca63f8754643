// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the backend address used when nothing is configured.
const DefaultBaseURL = "http://localhost:8082/api/v1"

// MaxResponseSize caps how much of a response body is read (10 MB).
// SECURITY: Prevents memory exhaustion from oversized documents lists.
const MaxResponseSize = 10 * 1024 * 1024

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the backend client.
type ClientConfig struct {
	// BaseURL includes the /api/v1 prefix (default: http://localhost:8082/api/v1)
	BaseURL string

	// Timeout per request (default: 30s). Chat replies can take a while.
	Timeout time.Duration

	// UserAgent sent with every request (default: aidesk)
	UserAgent string

	// RequestsPerSecond limits outgoing calls; 0 disables the limiter.
	RequestsPerSecond float64

	// Verbose logs every request and response line via the log package.
	Verbose bool
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:   DefaultBaseURL,
		Timeout:   30 * time.Second,
		UserAgent: "aidesk",
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the assistant backend.
//
// The Client is thread-safe for concurrent use.
type Client struct {
	config  *ClientConfig
	http    *resty.Client
	limiter *rate.Limiter
}

// NewClient creates a client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a client with custom configuration.
// Zero values are replaced with defaults.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "aidesk"
	}

	hc := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetHeader("User-Agent", config.UserAgent).
		SetHeader("Accept", "application/json").
		SetResponseBodyLimit(MaxResponseSize)

	if config.Verbose {
		hc.OnBeforeRequest(logRequest).OnAfterResponse(logResponse)
	}

	c := &Client{config: config, http: hc}
	if config.RequestsPerSecond > 0 {
		burst := int(config.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), burst)
	}
	return c
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// LOGGING
// =============================================================================

// logRequest logs method and path only. Bodies carry document content and
// chat text, so they are never logged.
func logRequest(_ *resty.Client, r *resty.Request) error {
	log.Printf("API Request: %s %s", r.Method, r.URL)
	return nil
}

func logResponse(_ *resty.Client, resp *resty.Response) error {
	log.Printf("API Response: %d %s (%v)", resp.StatusCode(), resp.Request.URL, resp.Time())
	return nil
}

// =============================================================================
// REQUEST EXECUTION
// =============================================================================

// call performs one request against path. body is sent as JSON when non-nil;
// a successful response is decoded into out when non-nil.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	return c.send(ctx, c.http.R().SetBody(body), method, path, out)
}

// send executes a prepared request with the shared error handling.
func (c *Client) send(ctx context.Context, req *resty.Request, method, path string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return transportError(method, path, err)
		}
	}

	resp, err := req.SetContext(ctx).Execute(method, path)
	if err != nil {
		return transportError(method, path, err)
	}

	if !resp.IsSuccess() {
		return handleErrorResponse(resp.StatusCode(), resp.Body())
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &ClientError{
			Type:    ErrTypeInvalidResponse,
			Status:  resp.StatusCode(),
			Message: "failed to decode " + method + " " + path,
			Cause:   err,
		}
	}
	return nil
}

// origin returns scheme://host of the base URL, used to resolve
// host-relative endpoints such as those in action cards.
func (c *Client) origin() string {
	u, err := url.Parse(c.config.BaseURL)
	if err != nil || u.Scheme == "" {
		return c.config.BaseURL
	}
	return u.Scheme + "://" + u.Host
}

// messageResponse is the {"message": "..."} envelope of mutations.
type messageResponse struct {
	Message string `json:"message"`
}
