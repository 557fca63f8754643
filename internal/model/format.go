// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Display layouts used across the UI.
const (
	SessionTimeLayout = "02/01 15:04"
	MessageTimeLayout = "15:04"
	DateLayout        = "02/01/2006"
)

// FormatSessionTime formats a session timestamp as dd/MM HH:mm in local time.
func FormatSessionTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(SessionTimeLayout)
}

// FormatMessageTime formats a message timestamp as HH:mm in local time.
func FormatMessageTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(MessageTimeLayout)
}

// FormatDate formats a date as dd/MM/yyyy in local time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(DateLayout)
}

// containsFold reports whether substr occurs in s under Unicode case folding.
// A fresh Caser is used per call since Casers carry state.
func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}
