// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jeranaias/aidesk/internal/api"
	"github.com/jeranaias/aidesk/internal/config"
	"github.com/jeranaias/aidesk/internal/locale"
)

// =============================================================================
// COMMAND ENVIRONMENT
// =============================================================================

// Env is what a command handler runs against: the streams, the loaded
// configuration and the backend client.
type Env struct {
	Out io.Writer
	Err io.Writer
	In  io.Reader

	// Interactive is true when In is a terminal and prompts are possible.
	Interactive bool

	Config  *config.Config
	Client  *api.Client
	Printer *locale.Printer

	JSON  bool
	Quiet bool

	Now func() time.Time
}

// NewEnv loads the configuration, applies the global flags and builds the
// backend client for a command run on the process streams.
func NewEnv(args Args) (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	if args.API != "" {
		if err := cfg.Set("api.base_url", args.API); err != nil {
			return nil, &ValidationError{Field: "--api", Value: args.API, Reason: err.Error()}
		}
	}

	return &Env{
		Out:         os.Stdout,
		Err:         os.Stderr,
		In:          os.Stdin,
		Interactive: IsTTY() && !args.JSON,
		Config:      cfg,
		Client:      api.NewClientWithConfig(cfg.ClientConfig()),
		Printer:     locale.New(cfg.UI.Language),
		JSON:        args.JSON,
		Quiet:       args.Quiet,
		Now:         time.Now,
	}, nil
}

// ctx bounds one backend call by the configured timeout.
func (e *Env) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), e.Config.Timeout())
}

// printf writes human output, suppressed in JSON mode.
func (e *Env) printf(format string, args ...any) {
	if e.JSON {
		return
	}
	fmt.Fprintf(e.Out, format, args...)
}

// info writes a status line to stderr unless --quiet or --json.
func (e *Env) info(format string, args ...any) {
	if e.Quiet || e.JSON {
		return
	}
	fmt.Fprintf(e.Err, format+"\n", args...)
}

// success reports a completed mutation: a JSON envelope, or a green line.
func (e *Env) success(command, message string, data any) error {
	if e.JSON {
		return e.emit(command, data)
	}
	if !e.Quiet {
		fmt.Fprintln(e.Out, SuccessStyle.Render("✓")+" "+message)
	}
	return nil
}
