// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot question command.
//
// Command: ask "question"
// Short:   Ask one question in a new session
//
// Examples:
//   aidesk ask "Làm sao kết nối VPN?"
//   aidesk ask --category c-it "Máy in không hoạt động"
//   echo "Quy định nghỉ phép?" | aidesk ask
//   aidesk ask --json "Giờ làm việc?"
//
// Flags:
//   --category ID   Bind the new session to a category
//   --json          Output in JSON format
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jeranaias/aidesk/internal/api"
	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
	"github.com/jeranaias/aidesk/internal/ui/components"
)

const askUsage = `aidesk ask "question" [--category ID]`

// HandleAsk creates a session named after the current time, sends one
// question and prints the answer.
func HandleAsk(env *Env, args Args) error {
	p := args.Parser()
	question := strings.TrimSpace(JoinPositionalArgs(p, 0))
	if question == "" && !env.Interactive {
		data, err := io.ReadAll(env.In)
		if err != nil {
			return fmt.Errorf("failed to read question: %w", err)
		}
		question = strings.TrimSpace(string(data))
	}
	if question == "" {
		return ErrMissingArgument("question", askUsage)
	}

	category := p.FlagOrDefault("category", env.Config.Chat.DefaultCategory)
	sess, resp, err := askOnce(env, question, category)
	if err != nil {
		return err
	}

	if env.JSON {
		data := AskData{SessionID: sess.ID, Question: question, Answer: resp.Message.Content}
		if resp.ActionCard != nil {
			data.ActionCard = resp.ActionCard
		}
		return env.emit("ask", data)
	}

	env.info("%s", DimStyle.Render(sess.Name+" · "+sess.ID))
	fmt.Fprintln(env.Out, env.renderMarkdown(resp.Message.Content))
	if resp.ActionCard != nil {
		printActionCard(env.Out, resp.ActionCard)
	}
	return nil
}

// askOnce creates a session and sends question in it.
func askOnce(env *Env, question, categoryID string) (*model.Session, *api.ChatResponse, error) {
	name := model.NewSessionName(env.Printer.T(locale.SessionNamePrefix), env.Now())

	ctx, cancel := env.ctx()
	defer cancel()
	sess, err := env.Client.CreateSession(ctx, name, api.CreateSessionOptions{CategoryID: categoryID})
	if err != nil {
		return nil, nil, failed(env.Printer.T(locale.ErrCreateSession), err)
	}

	ctx2, cancel2 := env.ctx()
	defer cancel2()
	resp, err := env.Client.SendMessage(ctx2, sess.ID, question)
	if err != nil {
		return sess, nil, failed(env.Printer.T(locale.ErrSendMessage), err)
	}
	return sess, resp, nil
}

// renderMarkdown renders assistant content for a terminal, or returns it
// unchanged when output is piped.
func (e *Env) renderMarkdown(content string) string {
	if !ColorsEnabled() {
		return content
	}
	return strings.TrimRight(components.NewMarkdownRenderer(GetTerminalWidth()).Render(content), "\n")
}

// printActionCard shows the card the assistant attached to a reply.
func printActionCard(w io.Writer, card *model.ActionCard) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, WarningStyle.Render("▌ "+card.Title))
	if card.Description != "" {
		fmt.Fprintln(w, "  "+card.Description)
	}
	fmt.Fprintln(w, "  "+DimStyle.Render("["+card.Action.Text+"] "+card.Action.HTTPMethod()+" "+card.Action.Endpoint))
}
