// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/aidesk/internal/api"
	"github.com/jeranaias/aidesk/internal/config"
	"github.com/jeranaias/aidesk/internal/locale"
	"github.com/jeranaias/aidesk/internal/model"
	"github.com/jeranaias/aidesk/internal/stubserver"
)

// =============================================================================
// HELPERS
// =============================================================================

type testEnv struct {
	*Env
	out    *bytes.Buffer
	errOut *bytes.Buffer
	stub   *stubserver.Server
}

func newStubEnv(t *testing.T) *testEnv {
	t.Helper()
	srv := stubserver.New(stubserver.WithSeed())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	te := newEnvFor(t, ts.URL+"/api/v1")
	te.stub = srv
	return te
}

func newEnvFor(t *testing.T, baseURL string) *testEnv {
	t.Helper()
	cfg := config.Default()
	cfg.API.BaseURL = baseURL
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	env := &Env{
		Out:     out,
		Err:     errOut,
		In:      strings.NewReader(""),
		Config:  cfg,
		Client:  api.NewClientWithConfig(&api.ClientConfig{BaseURL: baseURL, Timeout: 5 * time.Second}),
		Printer: locale.New("en"),
		Now:     func() time.Time { return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) },
	}
	return &testEnv{Env: env, out: out, errOut: errOut}
}

// run parses argv the way main does and executes it against the env.
func (te *testEnv) run(argv ...string) error {
	te.out.Reset()
	te.errOut.Reset()
	cmd, args := Parse(argv)
	te.JSON = args.JSON
	te.Quiet = args.Quiet
	return Execute(te.Env, cmd, args)
}

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     *string         `json:"error"`
	ErrorType string          `json:"error_type"`
	Command   string          `json:"command"`
}

func (te *testEnv) envelope(t *testing.T, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(te.out.Bytes(), &env), te.out.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func (te *testEnv) categories(t *testing.T) []CategoryRow {
	t.Helper()
	require.NoError(t, te.run("--json", "categories", "list"))
	var rows []CategoryRow
	te.envelope(t, &rows)
	return rows
}

func findRow(rows []CategoryRow, name string) (CategoryRow, bool) {
	for _, r := range rows {
		if r.Name == name {
			return r, true
		}
	}
	return CategoryRow{}, false
}

// =============================================================================
// PARSE
// =============================================================================

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		argv  []string
		want  Command
		check func(t *testing.T, a Args)
	}{
		{name: "no args starts the TUI", argv: nil, want: CmdTUI},
		{name: "explicit tui", argv: []string{"tui"}, want: CmdTUI},
		{
			name: "json anywhere",
			argv: []string{"docs", "list", "--json"},
			want: CmdDocs,
			check: func(t *testing.T, a Args) {
				assert.True(t, a.JSON)
				assert.Equal(t, "list", a.Subcommand)
				assert.Equal(t, []string{"list"}, a.Raw)
			},
		},
		{
			name: "api with equals",
			argv: []string{"--api=http://helpdesk:8082/api/v1", "health"},
			want: CmdHealth,
			check: func(t *testing.T, a Args) {
				assert.Equal(t, "http://helpdesk:8082/api/v1", a.API)
			},
		},
		{
			name: "api as separate value",
			argv: []string{"--api", "http://h/api/v1", "-q", "sessions"},
			want: CmdSessions,
			check: func(t *testing.T, a Args) {
				assert.Equal(t, "http://h/api/v1", a.API)
				assert.True(t, a.Quiet)
			},
		},
		{name: "category alias", argv: []string{"cats"}, want: CmdCategories},
		{name: "status alias", argv: []string{"status"}, want: CmdHealth},
		{name: "version flag", argv: []string{"--version"}, want: CmdVersion},
		{
			name: "unknown command",
			argv: []string{"frobnicate"},
			want: CmdUnknown,
			check: func(t *testing.T, a Args) {
				assert.Equal(t, "frobnicate", a.Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args := Parse(tt.argv)
			assert.Equal(t, tt.want, cmd)
			if tt.check != nil {
				tt.check(t, args)
			}
		})
	}
}

// =============================================================================
// ARG PARSER
// =============================================================================

func TestArgParser(t *testing.T) {
	t.Run("confirm does not take a value", func(t *testing.T) {
		p := NewArgParser([]string{"delete", "--confirm", "d-1"}, boolFlagNames...)
		assert.Equal(t, "delete", p.Subcommand())
		assert.Equal(t, "d-1", p.Positional(1))
		assert.True(t, p.BoolFlag("confirm"))
	})

	t.Run("flag with equals", func(t *testing.T) {
		p := NewArgParser([]string{"list", "--filter=nghỉ phép"})
		assert.Equal(t, "nghỉ phép", p.Flag("filter"))
	})

	t.Run("repeated and comma separated values", func(t *testing.T) {
		p := NewArgParser([]string{"create", "--category", "a,b", "--category", "c"})
		assert.Equal(t, []string{"a", "b", "c"}, p.FlagValues("category"))
		assert.Equal(t, "c", p.Flag("category"))
	})

	t.Run("dash is a value", func(t *testing.T) {
		p := NewArgParser([]string{"create", "--file", "-", "--name", "x"})
		assert.Equal(t, "-", p.Flag("file", "f"))
		assert.Equal(t, "x", p.Flag("name"))
	})

	t.Run("double dash ends flags", func(t *testing.T) {
		p := NewArgParser([]string{"--limit", "3", "--", "--not-a-flag", "word"})
		assert.Equal(t, "3", p.Flag("limit"))
		assert.Equal(t, []string{"--not-a-flag", "word"}, p.PositionalFrom(0))
	})

	t.Run("short aliases", func(t *testing.T) {
		p := NewArgParser([]string{"create", "-n", "Name", "-c", "Body"})
		assert.Equal(t, "Name", p.Flag("name", "n"))
		assert.Equal(t, "Body", p.Flag("content", "c"))
	})

	t.Run("int helpers", func(t *testing.T) {
		p := NewArgParser([]string{"--limit", "7", "--bad", "x"})
		assert.Equal(t, 7, p.FlagIntOrDefault("limit", 5))
		assert.Equal(t, 5, p.FlagIntOrDefault("bad", 5))
		assert.Equal(t, 5, p.FlagIntOrDefault("missing", 5))

		_, err := ParseIntWithValidation("-1", "--limit")
		assert.Error(t, err)
		n, err := ParseIntWithValidation("12", "--limit")
		require.NoError(t, err)
		assert.Equal(t, 12, n)
	})
}

// =============================================================================
// ERRORS AND EXIT CODES
// =============================================================================

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"validation", &ValidationError{Field: "--limit"}, ExitUsageError},
		{"usage", &UsageError{Command: "x"}, ExitUsageError},
		{"config", &ConfigError{Err: errors.New("bad toml")}, ExitConfigError},
		{"not found", failed("load", api.ErrNotFound), ExitNotFoundError},
		{"unavailable", failed("load", api.ErrUnavailable), ExitNetworkError},
		{"timeout", api.ErrTimeout, ExitTimeoutError},
		{"bad request", api.ErrBadRequest, ExitUsageError},
		{"other", errors.New("boom"), ExitGeneralError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestDisplayError_JSON(t *testing.T) {
	var out, errOut bytes.Buffer
	DisplayError(&out, &errOut, "docs show", failed("Failed to load documents", api.ErrNotFound), true)

	assert.Empty(t, errOut.String())
	var env envelope
	require.NoError(t, json.Unmarshal(out.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "not_found", env.ErrorType)
	assert.Equal(t, "docs show", env.Command)
	require.NotNil(t, env.Error)
	assert.Contains(t, *env.Error, "Failed to load documents")
}

func TestDisplayError_Text(t *testing.T) {
	var out, errOut bytes.Buffer
	DisplayError(&out, &errOut, "x", &ValidationError{Field: "--limit", Value: "0", Reason: "must be positive"}, false)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "--limit")
}

func TestExecute_Unknown(t *testing.T) {
	te := newEnvFor(t, "http://127.0.0.1:1/api/v1")
	err := te.run("frobnicate")
	var usage *UsageError
	require.ErrorAs(t, err, &usage)
	assert.Equal(t, ExitUsageError, GetExitCode(err))
}

func TestVersion_JSON(t *testing.T) {
	te := newEnvFor(t, "http://127.0.0.1:1/api/v1")
	require.NoError(t, te.run("version", "--json"))
	var data map[string]string
	env := te.envelope(t, &data)
	assert.True(t, env.Success)
	assert.Equal(t, Version, data["version"])
}

// =============================================================================
// CATEGORIES
// =============================================================================

func TestCategories_ListWithCounts(t *testing.T) {
	te := newStubEnv(t)
	rows := te.categories(t)
	require.Len(t, rows, 3)

	hr, ok := findRow(rows, "Nhân sự")
	require.True(t, ok)
	assert.Equal(t, 1, hr.DocumentCount)
	fin, ok := findRow(rows, "Tài chính")
	require.True(t, ok)
	assert.Equal(t, 0, fin.DocumentCount)

	require.NoError(t, te.run("categories", "--filter", "IT"))
	assert.Contains(t, te.out.String(), "DOCS")
	assert.Contains(t, te.out.String(), "IT")
	assert.NotContains(t, te.out.String(), "Tài chính")
}

func TestCategories_CreateUpdateDelete(t *testing.T) {
	te := newStubEnv(t)

	err := te.run("categories", "create")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	require.NoError(t, te.run("--json", "categories", "create", "--name", "Pháp chế", "--description", "Hợp đồng"))
	var created model.Category
	te.envelope(t, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Pháp chế", created.Name)

	// Only the name changes; the description is kept.
	require.NoError(t, te.run("--json", "categories", "update", created.ID, "--name", "Pháp lý"))
	var updated model.Category
	te.envelope(t, &updated)
	assert.Equal(t, "Pháp lý", updated.Name)
	assert.Equal(t, "Hợp đồng", updated.Description)

	// Not interactive and no --confirm.
	err = te.run("categories", "delete", created.ID)
	require.ErrorAs(t, err, &verr)
	assert.Len(t, te.categories(t), 4)

	require.NoError(t, te.run("categories", "delete", created.ID, "--confirm"))
	assert.Contains(t, te.out.String(), "✓")
	assert.Len(t, te.categories(t), 3)
}

func TestCategories_Docs(t *testing.T) {
	te := newStubEnv(t)
	it, ok := findRow(te.categories(t), "IT")
	require.True(t, ok)

	require.NoError(t, te.run("categories", "docs", it.ID))
	assert.Contains(t, te.out.String(), "Hướng dẫn kết nối VPN")
	assert.NotContains(t, te.out.String(), "Quy định nghỉ phép năm")
}

// =============================================================================
// DOCUMENTS
// =============================================================================

func TestDocs_CreateListDelete(t *testing.T) {
	te := newStubEnv(t)
	it, _ := findRow(te.categories(t), "IT")

	err := te.run("docs", "create", "--name", "Only a name")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	require.NoError(t, te.run("--json", "docs", "create", "--name", "Máy in tầng 3", "--content", "Máy in dùng driver HP.", "--category", it.ID))
	var created MutationData
	te.envelope(t, &created)
	require.NotEmpty(t, created.ID)

	require.NoError(t, te.run("docs", "list", "--category", it.ID))
	assert.Contains(t, te.out.String(), "Máy in tầng 3")
	assert.Contains(t, te.out.String(), "Hướng dẫn kết nối VPN")

	require.NoError(t, te.run("docs", "delete", created.ID, "--confirm"))
	require.NoError(t, te.run("--json", "docs", "list"))
	var docs []model.Document
	te.envelope(t, &docs)
	assert.Len(t, docs, 2)
}

func TestDocs_CreateFromStdin(t *testing.T) {
	te := newStubEnv(t)
	te.In = strings.NewReader("Nội dung từ stdin")
	require.NoError(t, te.run("--json", "docs", "create", "--name", "Stdin", "--file", "-"))
	var created MutationData
	te.envelope(t, &created)

	require.NoError(t, te.run("--json", "docs", "show", created.ID))
	assert.Contains(t, te.out.String(), "Nội dung từ stdin")
}

func TestDocs_SemanticReembedBadSet(t *testing.T) {
	te := newStubEnv(t)
	err := te.run("docs", "semantic-reembed", "any", "--set", "maxChunkSize")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "--set", verr.Field)
}

func TestDocs_ShowMissing(t *testing.T) {
	te := newStubEnv(t)
	err := te.run("docs", "show", "does-not-exist")
	require.Error(t, err)
	assert.Equal(t, ExitNotFoundError, GetExitCode(err))
}

// =============================================================================
// SEARCH AND CHUNKING
// =============================================================================

func TestSearch(t *testing.T) {
	te := newStubEnv(t)

	require.NoError(t, te.run("search", "VPN"))
	assert.Contains(t, te.out.String(), "Hướng dẫn kết nối VPN")

	require.NoError(t, te.run("--json", "search", "VPN", "--limit", "1"))
	var data struct {
		Query   string               `json:"query"`
		Results []model.SearchResult `json:"results"`
	}
	te.envelope(t, &data)
	assert.Equal(t, "VPN", data.Query)
	assert.Len(t, data.Results, 1)
}

func TestSearch_Validation(t *testing.T) {
	te := newStubEnv(t)
	var verr *ValidationError

	require.ErrorAs(t, te.run("search"), &verr)
	require.ErrorAs(t, te.run("search", "vpn", "--limit", "0"), &verr)
	require.ErrorAs(t, te.run("search", "vpn", "--limit", "500"), &verr)
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "a b c", snippet("a\n\n b\tc "))
	long := strings.Repeat("ă", snippetWidth+10)
	assert.Equal(t, snippetWidth, len([]rune(snippet(long))))
}

func TestChunkingPresets(t *testing.T) {
	te := newEnvFor(t, "http://127.0.0.1:1/api/v1")
	require.NoError(t, te.run("chunking", "presets"))
	assert.Contains(t, te.out.String(), "(default)")
	assert.Contains(t, te.out.String(), "maxChunkSize")

	var uerr *UsageError
	require.ErrorAs(t, te.run("chunking", "apply"), &uerr)
}

// =============================================================================
// HEALTH
// =============================================================================

func TestHealth(t *testing.T) {
	te := newStubEnv(t)
	require.NoError(t, te.run("--json", "health"))
	var data HealthData
	te.envelope(t, &data)
	assert.Equal(t, "ok", data.Status)
	assert.Equal(t, te.Client.BaseURL(), data.BaseURL)
}

func TestHealth_Down(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	te := newEnvFor(t, ts.URL+"/api/v1")
	err := te.run("health")
	require.Error(t, err)
	assert.Contains(t, err.Error(), te.Printer.T(locale.BackendDown))
	assert.Equal(t, ExitNetworkError, GetExitCode(err))
}

// =============================================================================
// ASK AND SESSIONS
// =============================================================================

func TestAsk_JSON(t *testing.T) {
	te := newStubEnv(t)
	require.NoError(t, te.run("--json", "ask", "Cách", "kết", "nối", "VPN?"))
	var data AskData
	te.envelope(t, &data)
	assert.NotEmpty(t, data.SessionID)
	assert.Equal(t, "Cách kết nối VPN?", data.Question)
	assert.Contains(t, data.Answer, "Hướng dẫn kết nối VPN")
	assert.Nil(t, data.ActionCard)
}

func TestAsk_FromStdin(t *testing.T) {
	te := newStubEnv(t)
	te.In = strings.NewReader("qqqzzz xxyyzz\n")
	require.NoError(t, te.run("ask"))
	assert.Contains(t, te.out.String(), stubserver.NotFoundReply)
	assert.Contains(t, te.out.String(), "Tạo Ticket Hỏi HR")
}

func TestAsk_MissingQuestion(t *testing.T) {
	te := newStubEnv(t)
	te.Interactive = true
	var verr *ValidationError
	require.ErrorAs(t, te.run("ask"), &verr)
}

func TestSessions_ListShowExportDelete(t *testing.T) {
	te := newStubEnv(t)
	require.NoError(t, te.run("--json", "ask", "VPN"))
	var asked AskData
	te.envelope(t, &asked)

	require.NoError(t, te.run("sessions"))
	assert.Contains(t, te.out.String(), asked.SessionID)
	assert.Contains(t, te.out.String(), "Conversation 09:30:00 14/3/2025")

	require.NoError(t, te.run("sessions", "show", asked.SessionID))
	assert.Contains(t, te.out.String(), "VPN")
	assert.Contains(t, te.out.String(), model.RoleAssistant.DisplayName())

	require.NoError(t, te.run("sessions", "export", asked.SessionID, "--format", "md", "--output", "-"))
	assert.Contains(t, te.out.String(), "VPN")

	var verr *ValidationError
	require.ErrorAs(t, te.run("sessions", "export", asked.SessionID, "--format", "pdf"), &verr)
	require.ErrorAs(t, te.run("sessions", "delete", asked.SessionID), &verr)

	require.NoError(t, te.run("sessions", "delete", asked.SessionID, "--confirm"))
	require.NoError(t, te.run("--json", "sessions"))
	var sessions []model.Session
	te.envelope(t, &sessions)
	assert.Empty(t, sessions)
}

func TestSessions_ExportToFile(t *testing.T) {
	te := newStubEnv(t)
	require.NoError(t, te.run("--json", "ask", "VPN"))
	var asked AskData
	te.envelope(t, &asked)

	dir := t.TempDir()
	require.NoError(t, te.run("--json", "sessions", "export", asked.SessionID, "--format", "json", "--output", dir))
	var data ExportData
	te.envelope(t, &data)
	assert.Equal(t, asked.SessionID, data.SessionID)
	assert.Equal(t, 2, data.Messages)
	assert.True(t, strings.HasPrefix(data.Path, dir))
}

// =============================================================================
// CHAT REPL
// =============================================================================

type fakePrompter struct {
	lines   []string
	history []string
}

func (f *fakePrompter) Prompt(string) (string, error) {
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func (f *fakePrompter) AppendHistory(item string) {
	f.history = append(f.history, item)
}

func TestChatSession_Conversation(t *testing.T) {
	te := newStubEnv(t)
	in := &fakePrompter{lines: []string{"VPN", "", "nghỉ phép", "/history", "/quit", "never read"}}
	s := NewChatSession(te.Env, in, "")

	require.NoError(t, s.Run())
	require.NotNil(t, s.Current)
	assert.Equal(t, []string{"VPN", "nghỉ phép", "/history", "/quit"}, in.history)
	assert.Equal(t, []string{"never read"}, in.lines)

	_, messages, err := te.Client.GetSession(t.Context(), s.Current.ID)
	require.NoError(t, err)
	assert.Len(t, messages, 4)
	assert.Contains(t, te.out.String(), "Quy định nghỉ phép năm")
}

func TestChatSession_ActionCard(t *testing.T) {
	te := newStubEnv(t)
	in := &fakePrompter{lines: []string{"/action", "qqqzzz xxyyzz", "/action", "/action"}}
	s := NewChatSession(te.Env, in, "")

	require.NoError(t, s.Run())
	tickets := te.stub.Tickets()
	require.Len(t, tickets, 1)
	assert.Contains(t, te.out.String(), stubserver.TicketCreatedMessage)
	// The first and last /action had no card to run.
	assert.Equal(t, 2, strings.Count(te.errOut.String(), "no action card"))
}

func TestChatSession_NewAndOpen(t *testing.T) {
	te := newStubEnv(t)
	in := &fakePrompter{lines: []string{"VPN", "/new", "/open", "/open missing", "/bogus"}}
	s := NewChatSession(te.Env, in, "")

	require.NoError(t, s.Run())
	assert.Nil(t, s.Current)
	errs := te.errOut.String()
	assert.Contains(t, errs, "session id")
	assert.Contains(t, errs, "unknown command /bogus")
}

func TestChat_RejectsJSON(t *testing.T) {
	te := newStubEnv(t)
	var verr *ValidationError
	require.ErrorAs(t, te.run("--json", "chat"), &verr)
}

// =============================================================================
// CONFIG
// =============================================================================

func TestConfig_SetGet(t *testing.T) {
	t.Setenv("AIDESK_HOME", t.TempDir())
	te := newEnvFor(t, "http://127.0.0.1:1/api/v1")

	require.NoError(t, te.run("config", "set", "ui.language", "en"))
	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "en", loaded.UI.Language)

	require.NoError(t, te.run("config", "get", "ui.language"))
	assert.Equal(t, "en\n", te.out.String())

	var verr *ValidationError
	require.ErrorAs(t, te.run("config", "set", "api.base_url", "ftp://example.com"), &verr)
	require.ErrorAs(t, te.run("config", "get", "ui.nope"), &verr)

	loaded, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default().API.BaseURL, loaded.API.BaseURL)
}

func TestConfig_ShowAndKeys(t *testing.T) {
	t.Setenv("AIDESK_HOME", t.TempDir())
	te := newEnvFor(t, "http://127.0.0.1:1/api/v1")

	require.NoError(t, te.run("config"))
	out := te.out.String()
	assert.Contains(t, out, "[api]")
	assert.Contains(t, out, "[chunking]")
	assert.Contains(t, out, "http://127.0.0.1:1/api/v1")

	require.NoError(t, te.run("--json", "config", "keys"))
	var values map[string]string
	te.envelope(t, &values)
	assert.Len(t, values, len(config.AllKeys()))
	assert.Equal(t, "vi", values["ui.language"])
}

func TestConfig_Reset(t *testing.T) {
	t.Setenv("AIDESK_HOME", t.TempDir())
	te := newEnvFor(t, "http://127.0.0.1:1/api/v1")
	require.NoError(t, te.run("config", "set", "ui.theme", "light"))

	var verr *ValidationError
	require.ErrorAs(t, te.run("config", "reset"), &verr)

	require.NoError(t, te.run("config", "reset", "--confirm"))
	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "auto", loaded.UI.Theme)
}

// =============================================================================
// OUTPUT HELPERS
// =============================================================================

func TestTable_AlignsWideRunes(t *testing.T) {
	var buf bytes.Buffer
	tb := newTable("ID", "NAME")
	tb.add("1", "Nhân sự")
	tb.add("22", "IT")
	tb.print(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID  NAME", lines[0])
	assert.Equal(t, "1   Nhân sự", lines[1])
	assert.Equal(t, "22  IT", lines[2])
}

func TestRenderField(t *testing.T) {
	assert.Equal(t, "Status         ok", RenderField("Status", "ok"))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "250ms", formatDuration(250*time.Millisecond))
	assert.Equal(t, "1.5s", formatDuration(1500*time.Millisecond))
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.5 KB", formatBytes(1536))
}
