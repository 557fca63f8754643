// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-interactive commands
// of aidesk.
//
// Every command runs against an Env, which carries the output streams, the
// loaded configuration and the backend client. Handlers return errors and
// never exit; the caller displays the error once and picks the exit code.
//
// # Key Types
//
//   - Command: Enumeration of all available CLI commands
//   - Args: Global flags plus the remaining command arguments
//   - ArgParser: Flag and positional parsing for one command
//   - Env: Streams, config and client a handler runs against
//   - JSONResponse: Envelope printed for --json output
//
// # Usage
//
//	cmd, args := cli.Parse(os.Args[1:])
//	if cmd == cli.CmdTUI {
//	    // start the bubbletea program
//	}
//	env, err := cli.NewEnv(args)
//	if err == nil {
//	    err = cli.Execute(env, cmd, args)
//	}
//	if err != nil {
//	    cli.DisplayError(os.Stdout, os.Stderr, args.Name, err, args.JSON)
//	    os.Exit(cli.GetExitCode(err))
//	}
//
// # Commands Overview
//
// Chat:
//   - ask: One question in a new session
//   - chat: Line-mode REPL with input history
//   - sessions: List, show, delete and export sessions
//
// Knowledge base:
//   - docs: Document CRUD, re-embedding and category assignment
//   - categories: Category CRUD
//   - search: Semantic search over document chunks
//   - chunking: Semantic chunking presets
//
// Other:
//   - health: Backend liveness
//   - config: Show and change configuration
//   - stub: In-memory development backend
//
// All commands that print data support --json.
package cli
