// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// search_cmd.go - Knowledge base search and chunking presets.
//
// Command: search "query" [--limit N]
// Command: chunking presets
//
// Examples:
//   aidesk search "quy trình nghỉ phép"
//   aidesk search vpn --limit 3 --json
//   aidesk chunking presets
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/aidesk/internal/api"
	"github.com/jeranaias/aidesk/internal/chunking"
	"github.com/jeranaias/aidesk/internal/locale"
)

const searchUsage = `aidesk search "query" [--limit N]`

// snippetWidth caps the chunk excerpt shown per result.
const snippetWidth = 200

// HandleSearch runs a semantic search and prints the matching chunks.
func HandleSearch(env *Env, args Args) error {
	p := args.Parser()
	query := strings.TrimSpace(JoinPositionalArgs(p, 0))
	if query == "" {
		return &ValidationError{Field: "query", Reason: env.Printer.T(locale.ErrEmptyQuery), Example: searchUsage}
	}

	limit := api.DefaultSearchLimit
	if p.HasFlag("limit") || p.HasFlag("n") {
		raw := p.Flag("limit", "n")
		n, err := ParseIntWithValidation(raw, "--limit")
		if err != nil {
			return err
		}
		if n < 1 || n > 100 {
			return &ValidationError{Field: "--limit", Value: raw, Reason: "must be between 1 and 100"}
		}
		limit = n
	}

	ctx, cancel := env.ctx()
	defer cancel()
	results, err := env.Client.Search(ctx, query, limit)
	if err != nil {
		return failed(env.Printer.T(locale.ErrSearch), err)
	}

	if env.JSON {
		return env.emit("search", map[string]any{"query": query, "results": results})
	}
	if len(results) == 0 {
		env.info("%s", env.Printer.T(locale.SearchNoResults))
		return nil
	}
	for i, r := range results {
		source := r.DocumentID
		if r.Document != nil && r.Document.Name != "" {
			source = r.Document.Name
		}
		fmt.Fprintf(env.Out, "%s %s %s\n",
			TitleStyle.Render(strconv.Itoa(i+1)+"."),
			ValueStyle.Render(source),
			DimStyle.Render("#"+strconv.Itoa(r.ChunkIndex)))
		fmt.Fprintln(env.Out, "   "+snippet(r.Content))
	}
	return nil
}

// snippet flattens a chunk to one line of at most snippetWidth runes.
func snippet(content string) string {
	s := strings.Join(strings.Fields(content), " ")
	if r := []rune(s); len(r) > snippetWidth {
		return string(r[:snippetWidth-1]) + "…"
	}
	return s
}

// HandleChunking lists the semantic chunking presets.
func HandleChunking(env *Env, args Args) error {
	p := args.Parser()
	switch p.Subcommand() {
	case "", "presets", "list":
	default:
		return ErrUnknownSubcommand("chunking", p.Subcommand(), "aidesk chunking presets")
	}

	presets := chunking.Presets()
	if env.JSON {
		return env.emit("chunking presets", presets)
	}
	for i, pr := range presets {
		if i > 0 {
			fmt.Fprintln(env.Out)
		}
		fmt.Fprintln(env.Out, TitleStyle.Render(pr.Name)+" "+DimStyle.Render("("+pr.Key+")"))
		fmt.Fprintln(env.Out, "  "+pr.Description)
		printChunkingConfig(env.Out, pr.Config)
	}
	return nil
}
