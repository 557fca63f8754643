// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config directory at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AIDESK_HOME", dir)
	return dir
}

func TestConfig_Default(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 30, cfg.API.TimeoutSecs)
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.Equal(t, "vi", cfg.UI.Language)
	assert.Equal(t, "default", cfg.Chunking.DefaultPreset)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad scheme", func(c *Config) { c.API.BaseURL = "ftp://host/api" }, "api.base_url"},
		{"no host", func(c *Config) { c.API.BaseURL = "http://" }, "api.base_url"},
		{"timeout zero", func(c *Config) { c.API.TimeoutSecs = 0 }, "api.timeout_secs"},
		{"timeout large", func(c *Config) { c.API.TimeoutSecs = 601 }, "api.timeout_secs"},
		{"negative rps", func(c *Config) { c.API.RequestsPerSecond = -1 }, "api.requests_per_second"},
		{"theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"language", func(c *Config) { c.UI.Language = "not a tag!" }, "ui.language"},
		{"wrap", func(c *Config) { c.UI.WordWrap = 20 }, "ui.word_wrap"},
		{"preset", func(c *Config) { c.Chunking.DefaultPreset = "huge" }, "chunking.default_preset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)

			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field)
		})
	}
}

func TestConfig_SaveAndLoadTOML(t *testing.T) {
	dir := isolate(t)

	cfg := Default()
	cfg.API.BaseURL = "https://hr.example.com/api/v1/"
	cfg.UI.Theme = "dark"
	cfg.Chat.DefaultCategory = "cat-1"

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, SaveTOML(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://hr.example.com/api/v1", loaded.API.BaseURL)
	assert.Equal(t, "dark", loaded.UI.Theme)
	assert.Equal(t, "cat-1", loaded.Chat.DefaultCategory)
}

func TestConfig_LoadJSONFallback(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ui":{"language":"en"}}`), 0600))

	active, err := ActivePath()
	require.NoError(t, err)
	assert.Equal(t, path, active)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.UI.Language)
	assert.Equal(t, 30, cfg.API.TimeoutSecs)
}

func TestConfig_LoadMissingUsesDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().API, cfg.API)
}

func TestConfig_LoadInvalid(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"neon\"\n"), 0600))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.theme")
}

func TestConfig_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("VITE_API_URL", "http://legacy:9000/api/v1")
	t.Setenv("AIDESK_TIMEOUT_SECS", "45")
	t.Setenv("AIDESK_LANG", "en")
	t.Setenv("AIDESK_THEME", "light")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://legacy:9000/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 45, cfg.API.TimeoutSecs)
	assert.Equal(t, "en", cfg.UI.Language)
	assert.Equal(t, "light", cfg.UI.Theme)

	t.Setenv("AIDESK_API_URL", "http://primary:8082/api/v1")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "http://primary:8082/api/v1", cfg.API.BaseURL)
}

func TestConfig_EnvOverridesBadInt(t *testing.T) {
	isolate(t)
	t.Setenv("AIDESK_TIMEOUT_SECS", "soon")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("AIDESK_DOTENV_PROBE=from-file\n"), 0600))
	t.Cleanup(func() { os.Unsetenv("AIDESK_DOTENV_PROBE") })

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "from-file", os.Getenv("AIDESK_DOTENV_PROBE"))
}

func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	v, err := cfg.Get("api.base_url")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8082/api/v1", v)

	require.NoError(t, cfg.Set("api.timeout_secs", "90"))
	assert.Equal(t, 90, cfg.API.TimeoutSecs)

	require.NoError(t, cfg.Set("ui.show-timestamps", "false"))
	assert.False(t, cfg.UI.ShowTimestamps)

	require.NoError(t, cfg.Set("api.requests_per_second", "2.5"))
	assert.InDelta(t, 2.5, cfg.API.RequestsPerSecond, 1e-9)

	// Rejected values leave the previous value in place.
	assert.Error(t, cfg.Set("ui.theme", "neon"))
	assert.Equal(t, "auto", cfg.UI.Theme)

	assert.Error(t, cfg.Set("api.timeout_secs", "abc"))
	assert.Error(t, cfg.Set("api.nope", "1"))
	assert.Error(t, cfg.Set("api", "1"))
	_, err = cfg.Get("")
	assert.Error(t, err)
}

func TestAllKeysResolve(t *testing.T) {
	cfg := Default()
	for _, key := range AllKeys() {
		_, err := cfg.Get(key)
		assert.NoError(t, err, key)
	}
}

func TestConfig_ClientConfig(t *testing.T) {
	cfg := Default()
	cfg.API.TimeoutSecs = 5
	cfg.API.RequestsPerSecond = 3
	cc := cfg.ClientConfig()
	assert.Equal(t, cfg.API.BaseURL, cc.BaseURL)
	assert.Equal(t, 5*time.Second, cc.Timeout)
	assert.InDelta(t, 3.0, cc.RequestsPerSecond, 1e-9)
}

func TestConfig_ChunkingDefaults(t *testing.T) {
	cfg := Default()
	cfg.Chunking.DefaultPreset = "technical"
	assert.Equal(t, 400, cfg.ChunkingDefaults().MinChunkSize)
}

func TestWatch(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config, err error) {
			if err == nil {
				got <- c
			}
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	cfg := Default()
	cfg.UI.Theme = "light"
	require.NoError(t, SaveTOML(cfg, path))

	select {
	case c := <-got:
		assert.Equal(t, "light", c.UI.Theme)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after config change")
	}

	cancel()
	assert.NoError(t, <-done)
}
