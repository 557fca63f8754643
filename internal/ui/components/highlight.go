// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/aidesk/internal/ui/styles"
)

// =============================================================================
// DOCUMENT HIGHLIGHTING (Chroma-based)
// =============================================================================

// lexerFor picks a lexer from the document name, falling back to markdown
// since most corpus documents are prose with headings and lists.
func lexerFor(name string) chroma.Lexer {
	lexer := lexers.Match(name)
	if lexer == nil {
		lexer = lexers.Get("markdown")
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// Highlight applies terminal syntax highlighting to document content.
// It returns content unchanged if highlighting fails.
func Highlight(content, name string) string {
	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexerFor(name).Tokenise(nil, content)
	if err != nil {
		return content
	}
	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return content
	}
	return buf.String()
}

// HighlightLines highlights content and prefixes line numbers. At most
// maxLines lines are returned when maxLines > 0.
func HighlightLines(content, name string, maxLines int) string {
	lines := strings.Split(Highlight(strings.TrimRight(content, "\n"), name), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	numWidth := len(fmt.Sprint(len(lines)))
	lineNum := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Width(numWidth).
		Align(lipgloss.Right).
		MarginRight(1)

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(lineNum.Render(fmt.Sprint(i + 1)))
		sb.WriteString(line)
	}
	return sb.String()
}
