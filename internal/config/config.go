// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/jeranaias/aidesk/internal/api"
	"github.com/jeranaias/aidesk/internal/chunking"
	"github.com/jeranaias/aidesk/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete aidesk configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Backend connection
	API APIConfig `toml:"api" json:"api"`

	// Terminal UI preferences
	UI UIConfig `toml:"ui" json:"ui"`

	// Semantic chunking panel
	Chunking ChunkingConfig `toml:"chunking" json:"chunking"`

	// Chat REPL and new sessions
	Chat ChatConfig `toml:"chat" json:"chat"`
}

// APIConfig contains backend connection settings.
type APIConfig struct {
	// BaseURL includes the /api/v1 prefix
	BaseURL string `toml:"base_url" json:"base_url"`
	// TimeoutSecs bounds every request (1-600)
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
	// RequestsPerSecond throttles outgoing calls; 0 disables throttling
	RequestsPerSecond float64 `toml:"requests_per_second" json:"requests_per_second"`
	// LogRequests writes one log line per request and response
	LogRequests bool `toml:"log_requests" json:"log_requests"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// Language is a BCP 47 tag for UI messages ("vi" or "en")
	Language string `toml:"language" json:"language"`
	// ShowTimestamps shows HH:mm next to each message
	ShowTimestamps bool `toml:"show_timestamps" json:"show_timestamps"`
	// WordWrap is the markdown wrap width; 0 follows the terminal
	WordWrap int `toml:"word_wrap" json:"word_wrap"`
	// SidebarOpen shows the session list on start
	SidebarOpen bool `toml:"sidebar_open" json:"sidebar_open"`
}

// ChunkingConfig contains semantic chunking defaults.
type ChunkingConfig struct {
	// DefaultPreset preselects a preset key: default, short, long, technical
	DefaultPreset string `toml:"default_preset" json:"default_preset"`
}

// ChatConfig contains chat settings.
type ChatConfig struct {
	// HistoryFile stores REPL input history; relative paths live in the config dir
	HistoryFile string `toml:"history_file" json:"history_file"`
	// DefaultCategory is the category id attached to sessions started from the CLI
	DefaultCategory string `toml:"default_category" json:"default_category"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Version: "1",
		API: APIConfig{
			BaseURL:     api.DefaultBaseURL,
			TimeoutSecs: 30,
		},
		UI: UIConfig{
			Theme:          "auto",
			Language:       "vi",
			ShowTimestamps: true,
			SidebarOpen:    true,
		},
		Chunking: ChunkingConfig{
			DefaultPreset: "default",
		},
		Chat: ChatConfig{
			HistoryFile: "chat_history",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the aidesk configuration directory path.
func ConfigDir() (string, error) {
	if dir := os.Getenv("AIDESK_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".aidesk"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// ActivePath returns the file Load would read: the TOML file if present,
// else the JSON file if present, else the TOML path.
func ActivePath() (string, error) {
	tomlPath, err := ConfigPathTOML()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath, nil
	}
	jsonPath, err := ConfigPathJSON()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath, nil
	}
	return tomlPath, nil
}

// ResolvePath makes a config-relative path absolute.
func ResolvePath(p string) (string, error) {
	if p == "" || filepath.IsAbs(p) {
		return p, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, p), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// LoadDotEnv loads KEY=VALUE pairs from the given .env files into the process
// environment. Variables already set win. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Load loads configuration from the config file, then applies environment
// overrides, defaults and validation.
func Load() (*Config, error) {
	path, err := ActivePath()
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(path); statErr != nil {
		cfg := Default()
		return finish(cfg)
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// SetDefaults fills zero values that have no meaningful zero.
func (c *Config) SetDefaults() {
	d := Default()
	if c.Version == "" {
		c.Version = d.Version
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = d.API.BaseURL
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.TimeoutSecs == 0 {
		c.API.TimeoutSecs = d.API.TimeoutSecs
	}
	if c.UI.Theme == "" {
		c.UI.Theme = d.UI.Theme
	}
	if c.UI.Language == "" {
		c.UI.Language = d.UI.Language
	}
	if c.Chunking.DefaultPreset == "" {
		c.Chunking.DefaultPreset = d.Chunking.DefaultPreset
	}
	if c.Chat.HistoryFile == "" {
		c.Chat.HistoryFile = d.Chat.HistoryFile
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// envOverrides lists the supported environment variables.
type envOverrides struct {
	APIURL       string `env:"AIDESK_API_URL"`
	LegacyAPIURL string `env:"VITE_API_URL"`
	TimeoutSecs  int    `env:"AIDESK_TIMEOUT_SECS"`
	Language     string `env:"AIDESK_LANG"`
	Theme        string `env:"AIDESK_THEME"`
	LogRequests  string `env:"AIDESK_LOG_REQUESTS"`
}

// ApplyEnvOverrides applies environment variable overrides:
//   - AIDESK_API_URL (or the legacy VITE_API_URL): api.base_url
//   - AIDESK_TIMEOUT_SECS: api.timeout_secs
//   - AIDESK_LANG: ui.language
//   - AIDESK_THEME: ui.theme
//   - AIDESK_LOG_REQUESTS: api.log_requests
func (c *Config) ApplyEnvOverrides() error {
	var e envOverrides
	if err := env.Parse(&e); err != nil {
		return err
	}

	switch {
	case e.APIURL != "":
		c.API.BaseURL = e.APIURL
	case e.LegacyAPIURL != "":
		c.API.BaseURL = e.LegacyAPIURL
	}
	if e.TimeoutSecs != 0 {
		c.API.TimeoutSecs = e.TimeoutSecs
	}
	if e.Language != "" {
		c.UI.Language = e.Language
	}
	if e.Theme != "" {
		c.UI.Theme = e.Theme
	}
	if e.LogRequests != "" {
		b, err := strconv.ParseBool(e.LogRequests)
		if err != nil {
			return fmt.Errorf("AIDESK_LOG_REQUESTS: %w", err)
		}
		c.API.LogRequests = b
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to the active config file.
func Save(cfg *Config) error {
	path, err := ActivePath()
	if err != nil {
		return err
	}
	if strings.HasSuffix(path, ".json") {
		return SaveJSON(cfg, path)
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
// SECURITY: Config files are written 0600 (owner read/write only).
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# aidesk configuration file\n")
	buf.WriteString("# Generated by aidesk - edit with care\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, ValidationError{"api.base_url", fmt.Sprintf("must be an http(s) URL, got %q", c.API.BaseURL)})
	}
	if c.API.TimeoutSecs < 1 || c.API.TimeoutSecs > 600 {
		errs = append(errs, ValidationError{"api.timeout_secs", "must be between 1 and 600"})
	}
	if c.API.RequestsPerSecond < 0 {
		errs = append(errs, ValidationError{"api.requests_per_second", "must not be negative"})
	}

	switch c.UI.Theme {
	case "dark", "light", "auto":
	default:
		errs = append(errs, ValidationError{"ui.theme", fmt.Sprintf("must be dark, light or auto, got %q", c.UI.Theme)})
	}
	if _, err := language.Parse(c.UI.Language); err != nil {
		errs = append(errs, ValidationError{"ui.language", fmt.Sprintf("not a language tag: %q", c.UI.Language)})
	}
	if c.UI.WordWrap != 0 && (c.UI.WordWrap < 40 || c.UI.WordWrap > 200) {
		errs = append(errs, ValidationError{"ui.word_wrap", "must be 0 or between 40 and 200"})
	}

	if _, err := chunking.LookupPreset(c.Chunking.DefaultPreset); err != nil {
		errs = append(errs, ValidationError{"chunking.default_preset", err.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// DERIVED SETTINGS
// =============================================================================

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSecs) * time.Second
}

// ClientConfig builds the API client configuration.
func (c *Config) ClientConfig() *api.ClientConfig {
	return &api.ClientConfig{
		BaseURL:           c.API.BaseURL,
		Timeout:           c.Timeout(),
		RequestsPerSecond: c.API.RequestsPerSecond,
		Verbose:           c.API.LogRequests,
	}
}

// ChunkingDefaults returns the config of the preselected preset.
func (c *Config) ChunkingDefaults() chunking.Config {
	p, err := chunking.LookupPreset(c.Chunking.DefaultPreset)
	if err != nil {
		return chunking.Default()
	}
	return p.Config
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// lookup walks a dotted key ("api.base_url") to its struct field.
func (c *Config) lookup(key string) (reflect.Value, error) {
	parts := strings.Split(key, ".")
	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			return field, nil
		}
		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// Get retrieves a configuration value using dot notation (e.g., "api.base_url").
func (c *Config) Get(key string) (interface{}, error) {
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("empty key")
	}
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set parses value into the field named by key and re-validates.
// On validation failure the previous value is restored.
func (c *Config) Set(key, value string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("empty key")
	}
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if field.Kind() == reflect.Struct {
		return fmt.Errorf("%s is a section, not a value", key)
	}

	prev := reflect.New(field.Type()).Elem()
	prev.Set(field)
	if err := setFieldValue(field, value); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		field.Set(prev)
		return err
	}
	return nil
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})
	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(part[:1]))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

func setFieldValue(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer value: %w", err)
		}
		field.SetInt(n)
	case reflect.Float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid float value: %w", err)
		}
		field.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value: %w", err)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("cannot set %s fields", field.Kind())
	}
	return nil
}

// AllKeys returns every settable key in dot notation.
func AllKeys() []string {
	return []string{
		"api.base_url",
		"api.timeout_secs",
		"api.requests_per_second",
		"api.log_requests",
		"ui.theme",
		"ui.language",
		"ui.show_timestamps",
		"ui.word_wrap",
		"ui.sidebar_open",
		"chunking.default_preset",
		"chat.history_file",
		"chat.default_category",
	}
}
