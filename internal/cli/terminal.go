// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for the CLI.
//
// Piped output gets no colors and no prompts. NO_COLOR wins over FORCE_COLOR
// (https://no-color.org/).

package cli

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Width bounds for rendering assistant replies.
const (
	DefaultTerminalWidth = 80
	MinTerminalWidth     = 40
)

// terminal is what the process streams support, probed once per run.
type terminal struct {
	stdin  bool
	stdout bool
	color  bool
}

var (
	termOnce  sync.Once
	termState terminal
)

func detectTerminal() terminal {
	termOnce.Do(func() {
		termState.stdin = term.IsTerminal(int(os.Stdin.Fd()))
		termState.stdout = term.IsTerminal(int(os.Stdout.Fd()))
		switch {
		case os.Getenv("NO_COLOR") != "":
			termState.color = false
		case os.Getenv("FORCE_COLOR") != "":
			termState.color = true
		default:
			termState.color = termState.stdout
		}
	})
	return termState
}

// IsTTY reports whether stdin is a terminal, which is when prompts and the
// chat REPL may read from it.
func IsTTY() bool { return detectTerminal().stdin }

// ColorsEnabled reports whether styled output should be written to stdout.
func ColorsEnabled() bool { return detectTerminal().color }

// GetTerminalWidth returns the width of stdout, clamped to MinTerminalWidth,
// or DefaultTerminalWidth when stdout is not a terminal.
func GetTerminalWidth() int {
	if !detectTerminal().stdout {
		return DefaultTerminalWidth
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	switch {
	case err != nil || width <= 0:
		return DefaultTerminalWidth
	case width < MinTerminalWidth:
		return MinTerminalWidth
	}
	return width
}

// GetColorProfile picks the lipgloss profile: Ascii when colors are off,
// otherwise whatever stdout supports.
func GetColorProfile() termenv.Profile {
	if !ColorsEnabled() {
		return termenv.Ascii
	}
	return termenv.NewOutput(os.Stdout).ColorProfile()
}
