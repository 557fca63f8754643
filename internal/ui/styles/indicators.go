// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// =============================================================================
// TYPING INDICATOR
// =============================================================================

// TypingSpinner is the three-dot indicator shown while the assistant answers.
var TypingSpinner = spinner.Spinner{
	Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
	FPS:    time.Second / 6,
}

// LoadingSpinner is used for list fetches.
var LoadingSpinner = spinner.Spinner{
	Frames: []string{"|", "/", "-", "\\"},
	FPS:    time.Second / 10,
}

// =============================================================================
// GAUGE
// =============================================================================

// Gauge characters.
var (
	GaugeFull  = "#"
	GaugeEmpty = "-"
)

// RenderGauge draws value's position within [min, max] as a bar of the
// given width. Values outside the range are clamped.
func RenderGauge(width int, value, min, max float64) string {
	if width <= 0 {
		return ""
	}
	frac := 0.0
	if max > min {
		frac = (value - min) / (max - min)
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac*float64(width) + 0.5)

	var sb strings.Builder
	sb.Grow(width)
	sb.WriteString(strings.Repeat(GaugeFull, filled))
	sb.WriteString(strings.Repeat(GaugeEmpty, width-filled))
	return sb.String()
}
