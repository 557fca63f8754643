// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat command.
//
// Command: chat
// Short:   Line-mode chat with input history
//
// Examples:
//   aidesk chat                    Start a new conversation on first message
//   aidesk chat --session s-123    Continue an existing session
//   aidesk chat --category c-it    Bind a new session to a category
//
// Interactive commands (during chat):
//   /help, /h        Show available commands
//   /new             Start a new session with the next message
//   /sessions        List recent sessions
//   /open ID         Switch to another session
//   /history         Show the messages of the current session
//   /action          Run the action card of the last reply
//   /quit, /q        Exit chat
//   Ctrl+C, Ctrl+D   Exit chat
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/aidesk/internal/api"
	"github.com/jeranaias/aidesk/internal/config"
	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// Prompter reads one line of input. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// ChatCLI provides input history and line editing for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a ChatCLI that keeps its history in historyFile.
func NewChatCLI(historyFile string) *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	c := &ChatCLI{line: line, historyFile: historyFile}
	c.LoadHistory()
	return c
}

// LoadHistory loads command history from file.
func (c *ChatCLI) LoadHistory() {
	if c.historyFile == "" {
		return
	}
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// Prompt reads a line with history navigation.
func (c *ChatCLI) Prompt(prompt string) (string, error) {
	return c.line.Prompt(prompt)
}

// AppendHistory records a line in the history.
func (c *ChatCLI) AppendHistory(item string) {
	c.line.AppendHistory(item)
}

// SaveHistory persists history with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if c.historyFile == "" {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and restores the terminal.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// ChatSession holds the state of one REPL run.
type ChatSession struct {
	env      *Env
	input    Prompter
	category string

	// Current is nil until the first message creates a session.
	Current  *model.Session
	lastCard *model.ActionCard
}

// HandleChat runs the chat REPL on the terminal.
func HandleChat(env *Env, args Args) error {
	if env.JSON {
		return &ValidationError{Field: "--json", Reason: "chat is interactive; use ask for scripted questions"}
	}
	p := args.Parser()

	historyFile, err := config.ResolvePath(env.Config.Chat.HistoryFile)
	if err != nil {
		historyFile = ""
	}
	in := NewChatCLI(historyFile)
	defer in.Close()

	session := &ChatSession{
		env:      env,
		input:    in,
		category: p.FlagOrDefault("category", env.Config.Chat.DefaultCategory),
	}
	if id := p.Flag("session", "s"); id != "" {
		if err := session.open(id); err != nil {
			return err
		}
	}
	return session.Run()
}

// NewChatSession creates a REPL reading from input.
func NewChatSession(env *Env, input Prompter, category string) *ChatSession {
	return &ChatSession{env: env, input: input, category: category}
}

// Run reads lines until /quit, Ctrl+C or EOF.
func (s *ChatSession) Run() error {
	env := s.env
	if !env.Quiet {
		fmt.Fprintln(env.Out, TitleStyle.Render(env.Printer.T(locale.AppTitle)))
		fmt.Fprintln(env.Out, DimStyle.Render(env.Config.API.BaseURL+"  ·  /help"))
		fmt.Fprintln(env.Out)
	}

	for {
		input, err := s.input.Prompt(PromptStyle.Render("aidesk> "))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(env.Out)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		s.input.AppendHistory(input)

		if strings.HasPrefix(input, "/") {
			cont, err := s.handleSlashCommand(input)
			if err != nil {
				fmt.Fprintf(env.Err, "%s %v\n", ErrorStyle.Render("[ERROR]"), err)
			}
			if !cont {
				return nil
			}
			continue
		}
		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			return nil
		}

		if err := s.send(input); err != nil {
			fmt.Fprintf(env.Err, "%s %v\n", ErrorStyle.Render("[ERROR]"), err)
		}
	}
}

// =============================================================================
// MESSAGE PROCESSING
// =============================================================================

// send posts input to the current session, creating one first when needed.
func (s *ChatSession) send(input string) error {
	env := s.env
	if s.Current == nil {
		sess, resp, err := askOnce(env, input, s.category)
		if sess != nil {
			s.Current = sess
			env.info("%s", DimStyle.Render(sess.Name+" · "+sess.ID))
		}
		if err != nil {
			return err
		}
		s.showReply(resp)
		return nil
	}

	ctx, cancel := env.ctx()
	defer cancel()
	resp, err := env.Client.SendMessage(ctx, s.Current.ID, input)
	if err != nil {
		return failed(env.Printer.T(locale.ErrSendMessage), err)
	}
	s.showReply(resp)
	return nil
}

func (s *ChatSession) showReply(resp *api.ChatResponse) {
	out := s.env.Out
	fmt.Fprintln(out, AssistantStyle.Render(model.RoleAssistant.DisplayName()+":"))
	fmt.Fprintln(out, s.env.renderMarkdown(resp.Message.Content))
	s.lastCard = resp.ActionCard
	if resp.ActionCard != nil {
		printActionCard(out, resp.ActionCard)
		fmt.Fprintln(out, DimStyle.Render("  /action"))
	}
	fmt.Fprintln(out)
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// handleSlashCommand runs a REPL command. It returns false to end the REPL.
func (s *ChatSession) handleSlashCommand(input string) (bool, error) {
	fields := strings.Fields(input)
	cmd := strings.ToLower(fields[0])
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}
	out := s.env.Out

	switch cmd {
	case "/quit", "/q", "/exit":
		return false, nil

	case "/help", "/h", "/?":
		fmt.Fprintln(out, `  /new             start a new session with the next message
  /sessions        list recent sessions
  /open ID         switch to another session
  /history         show the current session
  /action          run the action card of the last reply
  /quit            exit`)
		return true, nil

	case "/new":
		s.Current = nil
		s.lastCard = nil
		fmt.Fprintln(out, DimStyle.Render(s.env.Printer.T(locale.SessionUntitled)))
		return true, nil

	case "/sessions", "/ls":
		ctx, cancel := s.env.ctx()
		defer cancel()
		sessions, err := s.env.Client.ListSessions(ctx)
		if err != nil {
			return true, failed(s.env.Printer.T(locale.ErrLoadSessions), err)
		}
		model.SortSessionsByRecency(sessions)
		if len(sessions) > 10 {
			sessions = sessions[:10]
		}
		printSessionTable(out, sessions)
		return true, nil

	case "/open":
		if arg == "" {
			return true, ErrMissingArgument("session id", "/open ID")
		}
		return true, s.open(arg)

	case "/history":
		if s.Current == nil {
			fmt.Fprintln(out, DimStyle.Render(s.env.Printer.T(locale.ChatEmpty)))
			return true, nil
		}
		return true, s.open(s.Current.ID)

	case "/action":
		return true, s.runAction()

	default:
		return true, fmt.Errorf("unknown command %s (try /help)", cmd)
	}
}

// open switches to session id and prints its messages.
func (s *ChatSession) open(id string) error {
	ctx, cancel := s.env.ctx()
	defer cancel()
	sess, messages, err := s.env.Client.GetSession(ctx, id)
	if err != nil {
		return failed(s.env.Printer.T(locale.ErrLoadMessages), err)
	}
	s.Current = sess
	s.lastCard = nil
	printTranscript(s.env, sess, messages)
	return nil
}

// runAction executes the last action card and prints the outcome.
func (s *ChatSession) runAction() error {
	if s.lastCard == nil {
		return errors.New("no action card to run")
	}
	ctx, cancel := s.env.ctx()
	defer cancel()
	result, err := s.env.Client.ExecuteAction(ctx, s.lastCard.Action)
	if err != nil {
		return failed(s.env.Printer.T(locale.ErrCreateTicket), err)
	}
	s.lastCard = nil
	if result.Error != "" {
		return errors.New(result.Error)
	}
	fmt.Fprintln(s.env.Out, SuccessStyle.Render("✓")+" "+result.Message)
	return nil
}
