// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents a failed backend call.
type ClientError struct {
	Type    ErrorType
	Status  int
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is matches any ClientError of the same type, so a response-specific error
// still satisfies errors.Is against the sentinels below.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeUnavailable
	ErrTypeTimeout
	ErrTypeNotFound
	ErrTypeBadRequest
	ErrTypeServer
	ErrTypeInvalidResponse
)

// String returns a short name for the error type.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeUnavailable:
		return "unavailable"
	case ErrTypeTimeout:
		return "timeout"
	case ErrTypeNotFound:
		return "not_found"
	case ErrTypeBadRequest:
		return "bad_request"
	case ErrTypeServer:
		return "server"
	case ErrTypeInvalidResponse:
		return "invalid_response"
	default:
		return "unknown"
	}
}

// Sentinel errors for easy checking.
var (
	ErrUnavailable     = &ClientError{Type: ErrTypeUnavailable, Message: "backend is not reachable"}
	ErrTimeout         = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrNotFound        = &ClientError{Type: ErrTypeNotFound, Message: "not found"}
	ErrBadRequest      = &ClientError{Type: ErrTypeBadRequest, Message: "bad request"}
	ErrServer          = &ClientError{Type: ErrTypeServer, Message: "backend error"}
	ErrInvalidResponse = &ClientError{Type: ErrTypeInvalidResponse, Message: "invalid response"}
)

// errorResponse is the backend's error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// =============================================================================
// ERROR MAPPING
// =============================================================================

// handleErrorResponse converts a non-2xx response into a ClientError,
// keeping the backend's message when it sent one.
func handleErrorResponse(statusCode int, body []byte) error {
	msg := http.StatusText(statusCode)
	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		msg = apiErr.Error
	} else if text := strings.TrimSpace(string(body)); text != "" && len(text) < 200 {
		msg = text
	}

	errType := ErrTypeUnknown
	switch {
	case statusCode == http.StatusNotFound:
		errType = ErrTypeNotFound
	case statusCode == http.StatusRequestTimeout || statusCode == http.StatusGatewayTimeout:
		errType = ErrTypeTimeout
	case statusCode == http.StatusBadGateway || statusCode == http.StatusServiceUnavailable:
		errType = ErrTypeUnavailable
	case statusCode >= 400 && statusCode < 500:
		errType = ErrTypeBadRequest
	case statusCode >= 500:
		errType = ErrTypeServer
	}

	return &ClientError{Type: errType, Status: statusCode, Message: msg}
}

// transportError classifies an error that prevented any response.
func transportError(method, path string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &ClientError{Type: ErrTypeTimeout, Message: fmt.Sprintf("%s %s timed out", method, path), Cause: err}
	}
	return &ClientError{Type: ErrTypeUnavailable, Message: fmt.Sprintf("%s %s failed", method, path), Cause: err}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

func typeOf(err error) ErrorType {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type
	}
	return ErrTypeUnknown
}

// IsNotFound checks if an error is a 404 from the backend.
func IsNotFound(err error) bool {
	return typeOf(err) == ErrTypeNotFound
}

// IsUnavailable checks if the backend could not be reached.
func IsUnavailable(err error) bool {
	return typeOf(err) == ErrTypeUnavailable
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	return typeOf(err) == ErrTypeTimeout
}

// BackendMessage returns the backend's error text, or err.Error() for other errors.
func BackendMessage(err error) string {
	if err == nil {
		return ""
	}
	var clientErr *ClientError
	if errors.As(err, &clientErr) && clientErr.Status != 0 {
		return clientErr.Message
	}
	return err.Error()
}
