// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for aidesk.
//
// Supports both TOML and JSON configuration formats, with defaults,
// environment variable overrides, validation and hot reload.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - APIConfig: Backend address, timeout and client rate limit
//   - UIConfig: Theme, language and layout preferences
//   - ChunkingConfig: Preset preselected in the chunking panel
//   - ChatConfig: REPL history and default category
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (AIDESK_*, plus VITE_API_URL), optionally from a .env file
//   - ~/.aidesk/config.toml
//   - ~/.aidesk/config.json
//   - Built-in defaults
//
// AIDESK_HOME relocates the ~/.aidesk directory.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := api.NewClientWithConfig(cfg.ClientConfig())
//
// Watch for edits while the TUI runs:
//
//	go config.Watch(ctx, path, func(cfg *config.Config, err error) { ... })
package config
