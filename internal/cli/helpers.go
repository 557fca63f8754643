// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jeranaias/aidesk/internal/util"
)

// formatDuration formats a latency in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// formatBytes formats a size in B/KB/MB.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// readContent returns --content, or the file named by --file ("-" reads stdin).
func readContent(p *ArgParser, in io.Reader) (string, error) {
	if c := p.Flag("content", "c"); c != "" {
		return c, nil
	}
	path := p.Flag("file", "f")
	if path == "" {
		return "", nil
	}
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// =============================================================================
// TABLES
// =============================================================================

// table prints aligned columns. Widths are measured in terminal cells so
// Vietnamese text lines up.
type table struct {
	header []string
	rows   [][]string
}

func newTable(header ...string) *table {
	return &table{header: header}
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

// maxCell caps a column so long names do not push the rest off screen.
const maxCell = 48

func (t *table) print(w io.Writer) {
	widths := make([]int, len(t.header))
	measure := func(row []string) {
		for i, c := range row {
			if i < len(widths) {
				if n := util.StringWidth(c); n > widths[i] {
					widths[i] = n
				}
			}
		}
	}
	measure(t.header)
	for _, r := range t.rows {
		measure(r)
	}
	for i := range widths {
		if widths[i] > maxCell {
			widths[i] = maxCell
		}
	}

	line := func(row []string, style func(string) string) {
		var b strings.Builder
		for i, c := range row {
			if i >= len(widths) {
				break
			}
			cell := util.TruncateWidth(c, widths[i])
			if i < len(row)-1 {
				cell = util.PadRight(cell, widths[i]+2)
			}
			b.WriteString(cell)
		}
		fmt.Fprintln(w, style(strings.TrimRight(b.String(), " ")))
	}
	line(t.header, func(s string) string { return DimStyle.Render(s) })
	for _, r := range t.rows {
		line(r, func(s string) string { return s })
	}
}
