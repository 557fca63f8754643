// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for aidesk.
package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdSessions
	CmdDocs
	CmdCategories
	CmdSearch
	CmdChunking
	CmdHealth
	CmdConfig
	CmdStub
	CmdVersion
	CmdHelp
	CmdUnknown
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	API   string // --api overrides api.base_url for this run
	JSON  bool   // Output in JSON format
	Quiet bool

	// Name is the command word as typed, for error messages.
	Name string

	// Subcommand is the first positional argument after the command.
	Subcommand string

	// Raw args (remaining after global flag parsing, command word removed)
	Raw []string
}

// Parser returns an ArgParser over the command arguments.
func (a Args) Parser() *ArgParser {
	return NewArgParser(a.Raw, boolFlagNames...)
}

// boolFlagNames never take a value, so "--confirm ID" keeps ID positional.
var boolFlagNames = []string{"confirm", "y", "clear", "open", "seed", "log", "json", "quiet", "q", "help", "h"}

const usageText = `aidesk - terminal client for the Company AI Assistant

Usage:
  aidesk                                  Start the TUI (default)
  aidesk ask "question" [--category ID]   Ask one question in a new session
  aidesk chat [--session ID]              Line-mode chat with input history

Sessions:
  aidesk sessions list
  aidesk sessions show ID
  aidesk sessions delete ID --confirm
  aidesk sessions export ID [--format md|json|html] [--output DIR] [--open]

Documents:
  aidesk docs list [--filter TEXT]
  aidesk docs show ID
  aidesk docs create --name NAME (--content TEXT | --file PATH) [--category ID]...
  aidesk docs update ID (--content TEXT | --file PATH)
  aidesk docs delete ID --confirm
  aidesk docs reembed ID
  aidesk docs semantic-reembed ID [--preset KEY]
  aidesk docs categories ID [--set ID,ID]

Categories:
  aidesk categories list [--filter TEXT]
  aidesk categories create --name NAME [--description TEXT]
  aidesk categories update ID --name NAME [--description TEXT]
  aidesk categories delete ID --confirm
  aidesk categories docs ID

Other:
  aidesk search "query" [--limit N]       Semantic search over the knowledge base
  aidesk chunking presets                 List semantic chunking presets
  aidesk health                           Check the backend
  aidesk config show|path|keys            Show configuration
  aidesk config set KEY VALUE             Change a setting
  aidesk stub [--addr :8082] [--seed]     Run the in-memory development backend
  aidesk version

Global flags:
  --api URL     Backend base URL including /api/v1
  --json        Machine-readable output
  -q, --quiet   Print only essential output

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "aidesk version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "  Go:         %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Parse parses command-line arguments (without the program name) and
// returns the command and args.
func Parse(argv []string) (Command, Args) {
	remaining, parsed := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, parsed
	}

	name := strings.ToLower(remaining[0])
	parsed.Name = name
	parsed.Raw = remaining[1:]
	if len(parsed.Raw) > 0 && !strings.HasPrefix(parsed.Raw[0], "-") {
		parsed.Subcommand = strings.ToLower(parsed.Raw[0])
	}

	switch name {
	case "tui":
		return CmdTUI, parsed
	case "ask":
		return CmdAsk, parsed
	case "chat":
		return CmdChat, parsed
	case "sessions", "session":
		return CmdSessions, parsed
	case "docs", "doc", "documents":
		return CmdDocs, parsed
	case "categories", "category", "cats":
		return CmdCategories, parsed
	case "search":
		return CmdSearch, parsed
	case "chunking":
		return CmdChunking, parsed
	case "health", "status":
		return CmdHealth, parsed
	case "config":
		return CmdConfig, parsed
	case "stub":
		return CmdStub, parsed
	case "version", "-v", "--version":
		return CmdVersion, parsed
	case "help", "-h", "--help":
		return CmdHelp, parsed
	default:
		return CmdUnknown, parsed
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
// Global flags are accepted anywhere on the line.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsed Args

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--json":
			parsed.JSON = true
		case arg == "-q" || arg == "--quiet":
			parsed.Quiet = true
		case arg == "--api":
			if i+1 < len(args) {
				i++
				parsed.API = args[i]
			}
		case strings.HasPrefix(arg, "--api="):
			parsed.API = strings.TrimPrefix(arg, "--api=")
		default:
			remaining = append(remaining, arg)
		}
	}
	return remaining, parsed
}

// =============================================================================
// DISPATCH
// =============================================================================

// Execute runs a non-TUI command against env.
func Execute(env *Env, cmd Command, args Args) error {
	switch cmd {
	case CmdAsk:
		return HandleAsk(env, args)
	case CmdChat:
		return HandleChat(env, args)
	case CmdSessions:
		return HandleSessions(env, args)
	case CmdDocs:
		return HandleDocs(env, args)
	case CmdCategories:
		return HandleCategories(env, args)
	case CmdSearch:
		return HandleSearch(env, args)
	case CmdChunking:
		return HandleChunking(env, args)
	case CmdHealth:
		return HandleHealth(env, args)
	case CmdConfig:
		return HandleConfig(env, args)
	case CmdStub:
		return HandleStub(env, args)
	case CmdVersion:
		return HandleVersion(env, args)
	case CmdHelp:
		PrintUsage(env.Out)
		return nil
	default:
		return &UsageError{Command: args.Name, Usage: "aidesk help"}
	}
}

// HandleVersion prints version information, as JSON with --json.
func HandleVersion(env *Env, args Args) error {
	if args.JSON {
		return env.emit("version", map[string]string{
			"version":    Version,
			"git_commit": GitCommit,
			"build_date": BuildDate,
			"go_version": runtime.Version(),
			"platform":   runtime.GOOS + "/" + runtime.GOARCH,
		})
	}
	PrintVersion(env.Out)
	return nil
}
