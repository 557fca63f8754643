// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types, display and exit codes for CLI commands.
//
// Handlers always return errors; main displays them once and picks the exit
// code.

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jeranaias/aidesk/internal/api"
	"github.com/jeranaias/aidesk/internal/chunking"
	"github.com/jeranaias/aidesk/internal/config"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitUsageError    = 2
	ExitConfigError   = 3
	ExitNetworkError  = 5
	ExitNotFoundError = 7
	ExitTimeoutError  = 8
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError wraps a failed backend call with the localized message the
// user sees first.
type CommandError struct {
	Message string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, api.BackendMessage(e.Err))
	}
	return e.Message
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ValidationError is a bad flag or argument value.
type ValidationError struct {
	Field   string
	Value   string
	Reason  string
	Example string
}

func (e *ValidationError) Error() string {
	msg := e.Reason
	if e.Field != "" {
		msg = fmt.Sprintf("invalid %s", e.Field)
		if e.Value != "" {
			msg += fmt.Sprintf(" %q", e.Value)
		}
		msg += ": " + e.Reason
	}
	if e.Example != "" {
		msg += "\nExample: " + e.Example
	}
	return msg
}

// UsageError is an unknown command or subcommand.
type UsageError struct {
	Command string
	Usage   string
}

func (e *UsageError) Error() string {
	if e.Command == "" {
		return "Usage: " + e.Usage
	}
	return fmt.Sprintf("unknown command %q\nUsage: %s", e.Command, e.Usage)
}

// ConfigError is a config file that could not be loaded or saved.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return "configuration: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// =============================================================================
// CONSTRUCTORS
// =============================================================================

// ErrMissingArgument reports a required positional argument or flag.
func ErrMissingArgument(argName, usage string) error {
	return &ValidationError{Field: argName, Reason: "is required", Example: usage}
}

// ErrUnknownSubcommand reports a subcommand the command does not have.
func ErrUnknownSubcommand(command, sub, usage string) error {
	return &UsageError{Command: command + " " + sub, Usage: usage}
}

// failed wraps a backend error with a localized message.
func failed(message string, err error) error {
	return &CommandError{Message: message, Err: err}
}

// =============================================================================
// DISPLAY
// =============================================================================

// DisplayError prints err as a JSON envelope or a red stderr line.
func DisplayError(out, errOut io.Writer, command string, err error, jsonMode bool) {
	if err == nil {
		return
	}
	if jsonMode {
		NewJSONErrorResponse(command, err).Print(out)
		return
	}
	fmt.Fprintf(errOut, "%s %s\n", ErrorStyle.Render("[ERROR]"), err.Error())
}

// errorType classifies err for the JSON envelope.
func errorType(err error) string {
	var (
		validationErr *ValidationError
		usageErr      *UsageError
		configErr     *ConfigError
		clientErr     *api.ClientError
		cfgValErr     config.ValidateErrors
		fieldErr      *chunking.FieldError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &cfgValErr), errors.As(err, &fieldErr):
		return "validation"
	case errors.As(err, &usageErr):
		return "usage"
	case errors.As(err, &configErr):
		return "config"
	case errors.As(err, &clientErr):
		return clientErr.Type.String()
	default:
		return "error"
	}
}

// GetExitCode maps an error to the process exit code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	switch errorType(err) {
	case "validation", "usage", "bad_request":
		return ExitUsageError
	case "config":
		return ExitConfigError
	case "unavailable":
		return ExitNetworkError
	case "not_found":
		return ExitNotFoundError
	case "timeout":
		return ExitTimeoutError
	default:
		return ExitGeneralError
	}
}
