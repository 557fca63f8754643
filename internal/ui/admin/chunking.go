// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/aidesk/internal/chunking"
	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/ui/styles"
	"github.com/jeranaias/aidesk/internal/util"
)

// =============================================================================
// CHUNKING PANEL
// =============================================================================

// chunkingPanel edits a draft configuration. Row 0 is the preset selector,
// rows 1..n are the fields in chunking.Fields order.
type chunkingPanel struct {
	draft     chunking.Config
	cursor    int
	presetIdx int
	editing   bool
	input     textinput.Model
	showInfo  bool
}

func newChunkingPanel(current chunking.Config) *chunkingPanel {
	in := textinput.New()
	in.CharLimit = 10
	in.Width = 12

	p := &chunkingPanel{draft: current, input: in}
	if key := chunking.MatchPreset(current); key != "" {
		for i, preset := range chunking.Presets() {
			if preset.Key == key {
				p.presetIdx = i
			}
		}
	}
	return p
}

func (c *chunkingPanel) rows() int {
	return 1 + len(chunking.Fields)
}

// field returns the field under the cursor.
func (c *chunkingPanel) field() (chunking.Field, bool) {
	if c.cursor < 1 || c.cursor > len(chunking.Fields) {
		return 0, false
	}
	return chunking.Fields[c.cursor-1], true
}

func (c *chunkingPanel) applyPreset(idx int) {
	presets := chunking.Presets()
	c.presetIdx = (idx + len(presets)) % len(presets)
	c.draft = presets[c.presetIdx].Config
}

// update handles a key. A rejected field value is returned as an error and
// leaves the draft unchanged.
func (c *chunkingPanel) update(msg tea.KeyMsg) (tea.Cmd, error) {
	if c.showInfo {
		switch msg.String() {
		case "esc", "i", "enter", "q":
			c.showInfo = false
		}
		return nil, nil
	}

	if c.editing {
		switch msg.String() {
		case "enter":
			c.editing = false
			c.input.Blur()
			f, _ := c.field()
			return nil, c.draft.Set(f, c.input.Value())
		case "esc":
			c.editing = false
			c.input.Blur()
			return nil, nil
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return cmd, nil
	}

	switch msg.String() {
	case "i":
		c.showInfo = true
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < c.rows()-1 {
			c.cursor++
		}
	case "left", "h", "-":
		c.step(-1)
	case "right", "l", "+":
		c.step(1)
	case "enter", " ":
		if c.cursor == 0 {
			c.applyPreset(c.presetIdx)
			return nil, nil
		}
		f, _ := c.field()
		if f == chunking.FieldUseSemanticBoundaries {
			c.draft.Step(f, 1)
			return nil, nil
		}
		c.editing = true
		c.input.SetValue(c.draft.Get(f))
		c.input.CursorEnd()
		return c.input.Focus(), nil
	}
	return nil, nil
}

func (c *chunkingPanel) step(delta int) {
	if c.cursor == 0 {
		c.applyPreset(c.presetIdx + delta)
		return
	}
	if f, ok := c.field(); ok {
		c.draft.Step(f, delta)
	}
}

// presetLabel names the preset matching the draft, or the custom label.
func (c *chunkingPanel) presetLabel(p *locale.Printer) string {
	key := chunking.MatchPreset(c.draft)
	if key == "" {
		return p.T(locale.ChunkingCustom)
	}
	return chunking.MustPreset(key).Name
}

func (c *chunkingPanel) view(theme *styles.Theme, p *locale.Printer, width int) string {
	boxWidth := 72
	if width-4 < boxWidth {
		boxWidth = width - 4
	}
	inner := boxWidth - 4

	if c.showInfo {
		body := theme.DialogTitle.Render(p.T(locale.ChunkingInfoTitle)) + "\n\n" +
			lipgloss.NewStyle().Width(inner).Render(chunking.Info) + "\n\n" +
			theme.FieldHint.Render("esc: "+p.T(locale.Cancel))
		return theme.Dialog.Width(boxWidth).Render(body)
	}

	var sb strings.Builder
	sb.WriteString(theme.DialogTitle.Render(p.T(locale.ChunkingTitle)))
	sb.WriteString("\n\n")

	presetLine := p.T(locale.ChunkingPresetLabel) + " ‹ " + c.presetLabel(p) + " ›"
	sb.WriteString(c.rowStyle(theme, 0).Render(presetLine))
	sb.WriteByte('\n')
	if key := chunking.MatchPreset(c.draft); key != "" {
		sb.WriteString(theme.FieldHint.Render("  " + chunking.MustPreset(key).Description))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	gaugeWidth := inner - 44
	if gaugeWidth < 6 {
		gaugeWidth = 6
	}
	for i, f := range chunking.Fields {
		row := i + 1
		value := c.draft.Get(f)
		if f == chunking.FieldUseSemanticBoundaries {
			value = p.T(locale.ChunkingSemanticOff)
			if c.draft.UseSemanticBoundaries {
				value = p.T(locale.ChunkingSemanticOn)
			}
		}
		if c.editing && c.cursor == row {
			value = c.input.View()
		}

		line := util.PadRight(util.TruncateWidth(f.Label(), 30), 30) + " " + util.PadRight(value, 10)
		if b, ok := f.Bounds(); ok {
			line += " " + styles.RenderGauge(gaugeWidth, c.numeric(f), b.Min, b.Max)
		}
		sb.WriteString(c.rowStyle(theme, row).Render(line))
		sb.WriteByte('\n')
		if c.cursor == row {
			sb.WriteString(theme.FieldHint.Render("  " + f.Hint()))
			sb.WriteByte('\n')
		}
	}

	sb.WriteByte('\n')
	sb.WriteString(theme.FieldHint.Render("←/→: chỉnh  enter: nhập  i: thông tin  ctrl+s: " + p.T(locale.Save) + "  esc: " + p.T(locale.Cancel)))
	return theme.Dialog.Width(boxWidth).Render(sb.String())
}

func (c *chunkingPanel) rowStyle(theme *styles.Theme, row int) lipgloss.Style {
	if row == c.cursor {
		return theme.ListItemSelected
	}
	return theme.ListItem
}

func (c *chunkingPanel) numeric(f chunking.Field) float64 {
	switch f {
	case chunking.FieldMinChunkSize:
		return float64(c.draft.MinChunkSize)
	case chunking.FieldMaxChunkSize:
		return float64(c.draft.MaxChunkSize)
	case chunking.FieldSimilarityThreshold:
		return c.draft.SimilarityThreshold
	case chunking.FieldOverlapSize:
		return float64(c.draft.OverlapSize)
	}
	return 0
}
