// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/jeranaias/aidesk/internal/model"
)

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter renders transcripts as a standalone HTML page. Fenced code
// blocks are highlighted inline with Chroma.
type HTMLExporter struct {
	options *Options
}

// NewHTMLExporter creates an HTML exporter.
func NewHTMLExporter(opts *Options) *HTMLExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTMLExporter{options: opts}
}

// Export renders t as HTML.
func (e *HTMLExporter) Export(t *Transcript) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	theme := e.theme()

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"vi\">\n<head>\n")
	sb.WriteString("<meta charset=\"UTF-8\">\n")
	sb.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", html.EscapeString(t.Session.Name))
	sb.WriteString("<meta name=\"generator\" content=\"aidesk\">\n")
	fmt.Fprintf(&sb, "<meta name=\"date\" content=\"%s\">\n", t.Session.CreatedAt.Format(time.RFC3339))
	sb.WriteString(pageCSS)
	sb.WriteString("</head>\n")
	fmt.Fprintf(&sb, "<body class=\"%s\">\n<div class=\"page\">\n", theme)

	if e.options.IncludeMetadata {
		sb.WriteString(e.renderHeader(t))
	} else {
		fmt.Fprintf(&sb, "<header><h1>%s</h1></header>\n", html.EscapeString(t.Session.Name))
	}

	sb.WriteString("<main>\n")
	for _, msg := range t.Messages {
		sb.WriteString(e.renderMessage(msg, theme))
	}
	sb.WriteString("</main>\n")

	fmt.Fprintf(&sb, "<footer>Exported from <strong>aidesk</strong> on %s</footer>\n",
		formatTimestamp(e.options.now()))
	sb.WriteString("</div>\n</body>\n</html>\n")

	return []byte(sb.String()), nil
}

// FileExtension returns ".html".
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// MimeType returns the MIME type for HTML.
func (e *HTMLExporter) MimeType() string {
	return "text/html"
}

func (e *HTMLExporter) theme() string {
	if e.options.Theme == "light" {
		return "light"
	}
	return "dark"
}

// =============================================================================
// RENDERING
// =============================================================================

func (e *HTMLExporter) renderHeader(t *Transcript) string {
	var sb strings.Builder
	sb.WriteString("<header>\n")
	fmt.Fprintf(&sb, "<h1>%s</h1>\n<div class=\"meta\">\n", html.EscapeString(t.Session.Name))
	if t.Category != "" {
		fmt.Fprintf(&sb, "<span><strong>Category:</strong> %s</span>\n", html.EscapeString(t.Category))
	}
	fmt.Fprintf(&sb, "<span><strong>Created:</strong> %s</span>\n", formatTimestamp(t.Session.CreatedAt))
	fmt.Fprintf(&sb, "<span><strong>Messages:</strong> %d</span>\n", len(t.Messages))
	fmt.Fprintf(&sb, "<span class=\"id\">%s</span>\n", html.EscapeString(t.Session.ID))
	sb.WriteString("</div>\n</header>\n")
	return sb.String()
}

func (e *HTMLExporter) renderMessage(msg model.Message, theme string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<section class=\"msg %s\">\n<div class=\"who\">%s",
		html.EscapeString(string(msg.Role)), html.EscapeString(roleLabel(msg.Role)))
	if e.options.IncludeTimestamps && !msg.CreatedAt.IsZero() {
		fmt.Fprintf(&sb, " <time>%s</time>", formatShortTimestamp(msg.CreatedAt))
	}
	sb.WriteString("</div>\n<div class=\"body\">\n")
	sb.WriteString(formatContent(msg.Content, theme))
	sb.WriteString("</div>\n")
	if msg.ActionCard != nil {
		sb.WriteString(renderActionCard(msg.ActionCard))
	}
	sb.WriteString("</section>\n")
	return sb.String()
}

func renderActionCard(card *model.ActionCard) string {
	var sb strings.Builder
	sb.WriteString("<aside class=\"card\">\n")
	fmt.Fprintf(&sb, "<strong>%s</strong>\n", html.EscapeString(card.Title))
	if card.Description != "" {
		fmt.Fprintf(&sb, "<p>%s</p>\n", html.EscapeString(card.Description))
	}
	if card.Action.Text != "" {
		fmt.Fprintf(&sb, "<span class=\"action\">%s</span>\n", html.EscapeString(card.Action.Text))
	}
	sb.WriteString("</aside>\n")
	return sb.String()
}

// formatContent escapes prose into paragraphs and highlights fenced code.
func formatContent(content, theme string) string {
	var (
		out       strings.Builder
		paragraph []string
		code      []string
		lang      string
		inFence   bool
	)
	flush := func() {
		if len(paragraph) > 0 {
			out.WriteString("<p>" + strings.Join(paragraph, "<br>\n") + "</p>\n")
			paragraph = nil
		}
	}

	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if inFence {
				out.WriteString(highlightCode(strings.Join(code, "\n"), lang, theme))
				code = nil
				inFence = false
			} else {
				flush()
				lang = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
				inFence = true
			}
			continue
		}
		if inFence {
			code = append(code, line)
			continue
		}
		if trimmed == "" {
			flush()
			continue
		}
		paragraph = append(paragraph, inlineCode(html.EscapeString(trimmed)))
	}
	if inFence {
		out.WriteString(highlightCode(strings.Join(code, "\n"), lang, theme))
	}
	flush()
	return out.String()
}

// inlineCode wraps `spans` of already escaped text in <code>.
func inlineCode(escaped string) string {
	parts := strings.Split(escaped, "`")
	if len(parts) < 3 {
		return escaped
	}
	var sb strings.Builder
	for i, part := range parts {
		switch {
		case i%2 == 0:
			sb.WriteString(part)
		case i == len(parts)-1:
			// Unbalanced backtick.
			sb.WriteString("`" + part)
		default:
			sb.WriteString("<code>" + part + "</code>")
		}
	}
	return sb.String()
}

// highlightCode renders one fenced block. The language label is escaped;
// Chroma escapes the code itself.
func highlightCode(code, lang, theme string) string {
	var label string
	if lang != "" {
		label = fmt.Sprintf("<div class=\"lang\">%s</div>", html.EscapeString(lang))
	}

	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	styleName := "monokai"
	if theme == "light" {
		styleName = "github"
	}
	style := chromaStyles.Get(styleName)
	if style == nil {
		style = chromaStyles.Fallback
	}

	var body strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(false), chromahtml.TabWidth(4))
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil || formatter.Format(&body, style, iterator) != nil {
		body.Reset()
		body.WriteString("<pre><code>" + html.EscapeString(code) + "</code></pre>")
	}
	return "<div class=\"code\">" + label + body.String() + "</div>\n"
}

// pageCSS is embedded so the export is a single file.
const pageCSS = `<style>
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: system-ui, "Segoe UI", Roboto, sans-serif; line-height: 1.6; padding: 24px; }
body.dark { background: #1e1f29; color: #d8dae5; --panel: #282a36; --muted: #8a8fa8; --user: #2d3250; --accent: #8be9fd; }
body.light { background: #f4f5f7; color: #1f2328; --panel: #ffffff; --muted: #6a737d; --user: #eef3ff; --accent: #0969da; }
.page { max-width: 860px; margin: 0 auto; background: var(--panel); border-radius: 10px; overflow: hidden; }
header { padding: 24px 28px; border-bottom: 1px solid var(--muted); }
header h1 { font-size: 24px; margin-bottom: 8px; }
.meta { display: flex; flex-wrap: wrap; gap: 14px; font-size: 13px; color: var(--muted); }
.meta .id { font-family: ui-monospace, monospace; }
main { padding: 20px 28px; }
.msg { margin-bottom: 18px; padding: 14px 18px; border-radius: 8px; border-left: 3px solid var(--muted); }
.msg.user { background: var(--user); border-left-color: var(--accent); }
.who { font-weight: 600; font-size: 13px; margin-bottom: 6px; }
.who time { font-weight: 400; color: var(--muted); font-family: ui-monospace, monospace; margin-left: 8px; }
.body p { margin-bottom: 10px; }
.body code { font-family: ui-monospace, monospace; font-size: 13px; }
.code { margin: 10px 0; border-radius: 6px; overflow: hidden; }
.code .lang { font-size: 11px; text-transform: uppercase; padding: 4px 12px; color: var(--muted); }
.code pre { padding: 12px; overflow-x: auto; }
.card { margin-top: 10px; padding: 10px 14px; border: 1px dashed var(--accent); border-radius: 6px; font-size: 14px; }
.card .action { display: inline-block; margin-top: 6px; color: var(--accent); }
footer { padding: 14px 28px; font-size: 12px; color: var(--muted); text-align: center; }
@media print { .page { border-radius: 0; } .msg { page-break-inside: avoid; } }
</style>
`
