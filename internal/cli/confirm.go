// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/jeranaias/aidesk/internal/locale"
)

// ErrCancelled is returned when the user declines a confirmation prompt.
var ErrCancelled = errors.New("cancelled")

// =============================================================================
// CONFIRMATION
// =============================================================================

// RequireConfirmation gates a destructive action.
//
// Confirmation flow:
//  1. --confirm given: proceed
//  2. JSON mode or no terminal on stdin: fail asking for --confirm
//  3. Otherwise prompt "[y/N]" and proceed only on y/yes
func (e *Env) RequireConfirmation(confirmFlag bool, question string) error {
	if confirmFlag {
		return nil
	}
	if e.JSON || !e.Interactive {
		return &ValidationError{Reason: e.Printer.T(locale.ConfirmFlagRequired)}
	}

	fmt.Fprintf(e.Err, "%s [y/N]: ", question)
	input, err := bufio.NewReader(e.In).ReadString('\n')
	if err != nil && input == "" {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	response := strings.ToLower(strings.TrimSpace(input))
	if response == "y" || response == "yes" || response == "c" || response == "có" {
		return nil
	}
	return ErrCancelled
}
