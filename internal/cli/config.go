// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Config command implementation for aidesk.
//
// Command: config [subcommand]
// Short:   View and modify configuration
//
// Subcommands:
//   show (default)      Display current configuration
//   get <key>           Print one value
//   set <key> <value>   Set a configuration value
//   keys                List every settable key
//   reset               Reset to default configuration (--confirm)
//   path                Show configuration file path
//
// Examples:
//   aidesk config
//   aidesk config set api.base_url http://helpdesk.internal:8082/api/v1
//   aidesk config set ui.language en
//   aidesk config get ui.theme
//   aidesk config reset --confirm
//
// A running TUI picks up changes written here without a restart.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/aidesk/internal/config"
)

const configUsage = "aidesk config [show|get KEY|set KEY VALUE|keys|reset --confirm|path]"

// HandleConfig handles the config command and its subcommands.
func HandleConfig(env *Env, args Args) error {
	p := args.Parser()
	switch p.Subcommand() {
	case "", "show":
		return handleConfigShow(env)
	case "get":
		return handleConfigGet(env, p.Positional(1))
	case "set":
		return handleConfigSet(env, p.Positional(1), strings.Join(p.PositionalFrom(2), " "))
	case "keys":
		return handleConfigKeys(env)
	case "reset":
		return handleConfigReset(env, p.BoolFlag("confirm", "y"))
	case "path":
		return handleConfigPath(env)
	default:
		return ErrUnknownSubcommand("config", p.Subcommand(), configUsage)
	}
}

// configValues returns every key with its current value, in AllKeys order.
func configValues(cfg *config.Config) ([]string, map[string]string) {
	keys := config.AllKeys()
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		v, err := cfg.Get(k)
		if err != nil {
			continue
		}
		values[k] = fmt.Sprint(v)
	}
	return keys, values
}

// handleConfigShow displays the current configuration grouped by section.
func handleConfigShow(env *Env) error {
	path, _ := config.ActivePath()
	if env.JSON {
		return env.emit("config show", map[string]any{"path": path, "config": env.Config})
	}

	keys, values := configValues(env.Config)
	fmt.Fprintln(env.Out, TitleStyle.Render("aidesk configuration"))
	fmt.Fprintln(env.Out, RenderSeparator(41))

	section := ""
	for _, k := range keys {
		sec, name, _ := strings.Cut(k, ".")
		if sec != section {
			if section != "" {
				fmt.Fprintln(env.Out)
			}
			section = sec
			fmt.Fprintln(env.Out, WarningStyle.Render("["+sec+"]"))
		}
		fmt.Fprintln(env.Out, "  "+RenderField(name, values[k]))
	}

	fmt.Fprintln(env.Out, RenderSeparator(41))
	fmt.Fprintln(env.Out, "Config file: "+DimStyle.Render(path))
	return nil
}

func handleConfigGet(env *Env, key string) error {
	if key == "" {
		return ErrMissingArgument("key", "aidesk config get KEY")
	}
	v, err := env.Config.Get(key)
	if err != nil {
		return &ValidationError{Field: "key", Value: key, Reason: err.Error(), Example: "aidesk config keys"}
	}
	if env.JSON {
		return env.emit("config get", map[string]any{"key": key, "value": v})
	}
	fmt.Fprintln(env.Out, v)
	return nil
}

// handleConfigSet sets a configuration value and saves the file. The file
// is reloaded first so a --api override is not persisted by accident.
func handleConfigSet(env *Env, key, value string) error {
	if key == "" {
		return ErrMissingArgument("key", "aidesk config set KEY VALUE")
	}
	cfg, err := config.Load()
	if err != nil {
		return &ConfigError{Err: err}
	}
	if err := cfg.Set(key, value); err != nil {
		return &ValidationError{Field: key, Value: value, Reason: err.Error()}
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	env.Config = cfg
	return env.success("config set", key+" = "+value, map[string]string{"key": key, "value": value})
}

func handleConfigKeys(env *Env) error {
	keys, values := configValues(env.Config)
	if env.JSON {
		return env.emit("config keys", values)
	}
	for _, k := range keys {
		fmt.Fprintln(env.Out, RenderField(k, values[k]))
	}
	return nil
}

// handleConfigReset writes the default configuration.
func handleConfigReset(env *Env, confirmed bool) error {
	if err := env.RequireConfirmation(confirmed, "Reset configuration to defaults?"); err != nil {
		return err
	}
	cfg := config.Default()
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	env.Config = cfg
	path, _ := config.ActivePath()
	return env.success("config reset", "Configuration reset to defaults", map[string]string{"path": path})
}

// handleConfigPath shows the config file path.
func handleConfigPath(env *Env) error {
	path, err := config.ActivePath()
	if err != nil {
		return &ConfigError{Err: err}
	}
	_, statErr := os.Stat(path)
	if env.JSON {
		return env.emit("config path", map[string]any{"path": path, "exists": statErr == nil})
	}
	fmt.Fprintln(env.Out, path)
	if os.IsNotExist(statErr) {
		env.info("%s (file does not exist - defaults are in use)", WarningStyle.Render("Note"))
	}
	return nil
}
