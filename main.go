// aidesk - terminal client for the Company AI Assistant.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/aidesk/internal/api"
	"github.com/jeranaias/aidesk/internal/cli"
	"github.com/jeranaias/aidesk/internal/config"
	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/ui/app"
	"github.com/jeranaias/aidesk/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	// A missing .env is fine; a broken one is reported but not fatal.
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	cmd, args := cli.Parse(os.Args[1:])
	if cmd == cli.CmdTUI {
		if err := runTUI(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error running aidesk: %v\n", err)
			os.Exit(1)
		}
		return
	}

	env, err := cli.NewEnv(args)
	if err == nil {
		err = cli.Execute(env, cmd, args)
	}
	if err != nil {
		if errors.Is(err, cli.ErrCancelled) {
			os.Exit(cli.ExitSuccess)
		}
		cli.DisplayError(os.Stdout, os.Stderr, args.Name, err, args.JSON)
		os.Exit(cli.GetExitCode(err))
	}
}

// runTUI starts the full-screen interface.
func runTUI(args cli.Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if args.API != "" {
		if err := cfg.Set("api.base_url", args.API); err != nil {
			return fmt.Errorf("--api: %w", err)
		}
	}

	// The alt screen owns stdout, so log lines go to a file.
	if dir, err := config.ConfigDir(); err == nil && os.MkdirAll(dir, 0700) == nil {
		if f, err := tea.LogToFile(filepath.Join(dir, "aidesk.log"), "aidesk"); err == nil {
			defer f.Close()
		}
	}

	theme := styles.NewTheme()
	theme.Use(cfg.UI.Theme)

	m := app.New(app.Options{
		Config: cfg,
		Client: api.NewClientWithConfig(cfg.ClientConfig()),
		NewClient: func(c *config.Config) app.Backend {
			return api.NewClientWithConfig(c.ClientConfig())
		},
		Theme:   theme,
		Printer: locale.New(cfg.UI.Language),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if path, err := config.ActivePath(); err == nil {
		m.WatchConfig(ctx, path)
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)
	_, err = p.Run()
	return err
}
