// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// session_cmd.go - Session management commands.
//
// Command: sessions [subcommand]
// Aliases: session
//
// Subcommands:
//   list (default)      List sessions, newest first
//   show <id>           Print a session transcript
//   delete <id>         Delete a session (--confirm)
//   export <id>         Export a transcript to md, json or html
//
// Examples:
//   aidesk sessions
//   aidesk sessions show s-123
//   aidesk sessions delete s-123 --confirm
//   aidesk sessions export s-123 --format html --output ~/exports --open
//   aidesk sessions export s-123 --format md --output -     Write to stdout
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jeranaias/aidesk/internal/export"
	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
)

const sessionsUsage = "aidesk sessions [list|show ID|delete ID --confirm|export ID --format md|json|html]"

// HandleSessions dispatches the sessions subcommands.
func HandleSessions(env *Env, args Args) error {
	p := args.Parser()
	switch p.Subcommand() {
	case "", "list", "ls":
		return handleSessionList(env)
	case "show":
		return handleSessionShow(env, p)
	case "delete", "rm":
		return handleSessionDelete(env, p)
	case "export":
		return handleSessionExport(env, p)
	default:
		return ErrUnknownSubcommand("sessions", p.Subcommand(), sessionsUsage)
	}
}

func handleSessionList(env *Env) error {
	ctx, cancel := env.ctx()
	defer cancel()
	sessions, err := env.Client.ListSessions(ctx)
	if err != nil {
		return failed(env.Printer.T(locale.ErrLoadSessions), err)
	}
	model.SortSessionsByRecency(sessions)

	if env.JSON {
		return env.emit("sessions list", sessions)
	}
	if len(sessions) == 0 {
		env.info("%s", env.Printer.T(locale.SessionsEmpty))
		return nil
	}
	printSessionTable(env.Out, sessions)
	return nil
}

func handleSessionShow(env *Env, p *ArgParser) error {
	id := p.Positional(1)
	if id == "" {
		return ErrMissingArgument("session id", "aidesk sessions show ID")
	}
	ctx, cancel := env.ctx()
	defer cancel()
	sess, messages, err := env.Client.GetSession(ctx, id)
	if err != nil {
		return failed(env.Printer.T(locale.ErrLoadMessages), err)
	}

	if env.JSON {
		return env.emit("sessions show", map[string]any{"session": sess, "messages": messages})
	}
	printTranscript(env, sess, messages)
	return nil
}

func handleSessionDelete(env *Env, p *ArgParser) error {
	id := p.Positional(1)
	if id == "" {
		return ErrMissingArgument("session id", "aidesk sessions delete ID --confirm")
	}
	if err := env.RequireConfirmation(p.BoolFlag("confirm", "y"), env.Printer.T(locale.ConfirmDeleteChat)); err != nil {
		return err
	}

	ctx, cancel := env.ctx()
	defer cancel()
	if err := env.Client.DeleteSession(ctx, id); err != nil {
		return failed(env.Printer.T(locale.ErrDeleteSession), err)
	}
	return env.success("sessions delete", env.Printer.T(locale.SessionDeleted), MutationData{ID: id})
}

func handleSessionExport(env *Env, p *ArgParser) error {
	id := p.Positional(1)
	if id == "" {
		return ErrMissingArgument("session id", "aidesk sessions export ID --format md")
	}
	format := strings.ToLower(p.FlagOrDefault("format", export.FormatMarkdown))

	opts := export.DefaultOptions()
	opts.OutputDir = p.FlagOrDefault("output", ".")
	opts.OpenAfterExport = p.BoolFlag("open")
	opts.IncludeTimestamps = env.Config.UI.ShowTimestamps
	if env.Config.UI.Theme == "light" {
		opts.Theme = "light"
	}
	opts.Now = env.Now

	exporter, err := export.ForFormat(format, opts)
	if err != nil {
		return &ValidationError{Field: "--format", Value: format, Reason: err.Error(), Example: "--format md|json|html"}
	}

	ctx, cancel := env.ctx()
	defer cancel()
	sess, messages, err := env.Client.GetSession(ctx, id)
	if err != nil {
		return failed(env.Printer.T(locale.ErrLoadMessages), err)
	}
	transcript := export.NewTranscript(*sess, messages)
	if sess.CategoryID != "" {
		// The category name is decoration; a failed lookup keeps the id.
		transcript.WithCategory(sess.CategoryID)
		if cats, err := env.Client.ListCategories(ctx); err == nil {
			if c, ok := model.FindCategory(cats, sess.CategoryID); ok {
				transcript.WithCategory(c.Name)
			}
		}
	}

	if opts.OutputDir == "-" {
		data, err := exporter.Export(transcript)
		if err != nil {
			return err
		}
		_, err = env.Out.Write(data)
		return err
	}

	path, err := export.ToFile(transcript, exporter, opts)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	return env.success("sessions export", env.Printer.T(locale.SessionExported, path), ExportData{
		SessionID: sess.ID,
		Format:    format,
		Path:      path,
		Messages:  len(transcript.Messages),
	})
}

// =============================================================================
// OUTPUT
// =============================================================================

func printSessionTable(w io.Writer, sessions []model.Session) {
	t := newTable("ID", "NAME", "UPDATED")
	for _, s := range sessions {
		t.add(s.ID, s.Name, model.FormatSessionTime(s.UpdatedAt))
	}
	t.print(w)
}

// printTranscript prints a session header and its messages in order.
func printTranscript(env *Env, sess *model.Session, messages []model.Message) {
	out := env.Out
	fmt.Fprintln(out, TitleStyle.Render(sess.Name))
	fmt.Fprintln(out, DimStyle.Render(sess.ID+" · "+model.FormatSessionTime(sess.CreatedAt)))
	fmt.Fprintln(out, RenderSeparator())

	if len(messages) == 0 {
		fmt.Fprintln(out, DimStyle.Render(env.Printer.T(locale.ChatEmpty)))
		return
	}
	for _, m := range messages {
		label := m.Role.DisplayName()
		if env.Config.UI.ShowTimestamps {
			label += " " + DimStyle.Render(model.FormatMessageTime(m.CreatedAt))
		}
		if m.IsUser() {
			fmt.Fprintln(out, PromptStyle.Render(label))
			fmt.Fprintln(out, m.Content)
		} else {
			fmt.Fprintln(out, AssistantStyle.Render(label))
			fmt.Fprintln(out, env.renderMarkdown(m.Content))
		}
		if m.ActionCard != nil {
			printActionCard(out, m.ActionCard)
		}
		fmt.Fprintln(out)
	}
}
