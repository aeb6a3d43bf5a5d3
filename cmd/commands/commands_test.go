package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/reposearch/internal/cli"
	"github.com/pluqqy/reposearch/pkg/files"
	"github.com/pluqqy/reposearch/pkg/models"
)

// execute runs the root command with args and returns everything written to
// stdout, stderr and the message helpers
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	t.Cleanup(func() {
		cli.SetOutput(os.Stdout, os.Stderr)
		cli.SetInput(os.Stdin)
		cli.SetGlobalFlags(false, false, false)
	})

	root := NewRootCommand("test")
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "reposearch version test\n", out)
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := execute(t, "languages", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestTokenizeCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")

	out, err := execute(t, "--config-dir", dir, "tokenize", "cli language:go", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"input": "cli language:go"`)
	assert.Contains(t, out, `"type": "qualifier"`)
	assert.Contains(t, out, `"qualifier": "language"`)
	assert.Contains(t, out, `"value": "go"`)

	out, err = execute(t, "--config-dir", dir, "tokenize", "foorepo:x")
	require.NoError(t, err)
	assert.Contains(t, out, "text")
	assert.Contains(t, out, `"foo"`)
	assert.Contains(t, out, "repo")
	assert.Contains(t, out, `"x"`)
}

func TestTokenizeUsesCustomRegistry(t *testing.T) {
	dir := t.TempDir()
	registry := "qualifiers:\n  - prefix: \"lang:\"\n    label: Language\n    icon: octicon:code-16\n"
	require.NoError(t, os.WriteFile(files.QualifiersPath(dir), []byte(registry), 0644))

	out, err := execute(t, "--config-dir", dir, "tokenize", "lang:go language:go", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"qualifier": "lang"`)
	assert.NotContains(t, out, `"qualifier": "language"`)
}

func TestHighlightCommand(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		args     []string
		wantErr  string
		contains []string
	}{
		{
			name: "html by default",
			args: []string{"highlight", "language:go cli"},
			contains: []string{
				`<span class="search-token-text">language:</span>`,
				`<span class="search-token-value">go</span>`,
				`<span class="search-token-space"> </span>`,
			},
		},
		{
			name:     "html is escaped",
			args:     []string{"highlight", "stars:>5"},
			contains: []string{`<span class="search-token-value">&gt;5</span>`},
		},
		{
			name:     "parts",
			args:     []string{"highlight", "--format", "parts", "topic:tui"},
			contains: []string{"qualifier", `"topic:"`, "value", `"tui"`},
		},
		{
			name:     "ansi keeps the text",
			args:     []string{"highlight", "--format", "ansi", "topic:tui"},
			contains: []string{"topic:", "tui"},
		},
		{
			name:     "structured output",
			args:     []string{"highlight", "-o", "yaml", "topic:tui"},
			contains: []string{"markup:", "kind: qualifier", "text: tui"},
		},
		{
			name:    "unknown format",
			args:    []string{"highlight", "--format", "svg", "x"},
			wantErr: "invalid highlight format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"--config-dir", dir}, tt.args...)...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestQueryCommand(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "free text and filters",
			args: []string{"query", "cli tool", "--min-stars", "100", "--language", "go"},
			want: "cli tool stars:>=100 language:go\n",
		},
		{
			name: "typed qualifier wins over filter",
			args: []string{"query", "Language:rust", "--language", "go"},
			want: "Language:rust\n",
		},
		{
			name: "topics and tests",
			args: []string{"query", "--topic", "tui", "--topic", "testing", "--has-tests", "--template"},
			want: "topic:tui topic:testing is:template\n",
		},
		{
			name: "bare repo value degrades to text",
			args: []string{"query", "repo:onlyname", "stars:>5"},
			want: "onlyname stars:>5\n",
		},
		{
			name: "any language is ignored",
			args: []string{"query", "cli", "--language", "all"},
			want: "cli\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"--config-dir", dir}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestQueryCommandCopy(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	defer func() { copyToClipboard = orig }()

	out, err := execute(t, "--config-dir", t.TempDir(), "query", "repo:charmbracelet/bubbletea", "--copy")
	require.NoError(t, err)
	assert.Equal(t, "repo:charmbracelet/bubbletea", copied)
	assert.Contains(t, out, "Copied query to clipboard")
}

func TestRemoveCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "--config-dir", dir, "remove", "cli language:go stars:>5", "language", "go")
	require.NoError(t, err)
	assert.Equal(t, "cli stars:>5\n", out)

	out, err = execute(t, "--config-dir", dir, "remove", "topic:a x topic:a", "topic:", "a", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"result": "x topic:a"`)

	_, err = execute(t, "--config-dir", dir, "remove", "only two")
	assert.Error(t, err)
}

func TestSuggestCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, files.WriteHistory(dir, []string{"topic:", "stars:"}))

	out, err := execute(t, "--config-dir", dir, "suggest", "cli language:go")
	require.NoError(t, err)
	assert.Contains(t, out, "language:")
	assert.Contains(t, out, "Recent: topic:, stars:")

	lines := strings.Split(out, "\n")
	var languageRow string
	for _, line := range lines {
		if strings.Contains(line, "language:") {
			languageRow = line
		}
	}
	assert.True(t, strings.HasSuffix(strings.TrimSpace(languageRow), "go"), "language row should show the used value: %q", languageRow)

	out, err = execute(t, "--config-dir", dir, "suggest", "--match", "date", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"prefix": "created:"`)
	assert.Contains(t, out, `"prefix": "pushed:"`)
	assert.NotContains(t, out, `"prefix": "repo:"`)

	out, err = execute(t, "--config-dir", dir, "suggest", "--match", "nothing-matches")
	require.NoError(t, err)
	assert.Contains(t, out, "No qualifiers match")
}

func TestInitCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".reposearch")

	out, err := execute(t, "--config-dir", dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+dir)
	assert.FileExists(t, files.SettingsPath(dir))
	assert.FileExists(t, files.QualifiersPath(dir))

	// A declined --force keeps customized settings
	settings := models.DefaultSettings()
	settings.Search.PerPage = 7
	require.NoError(t, files.WriteSettings(dir, settings))

	cli.SetInput(strings.NewReader("n\n"))
	out, err = execute(t, "--config-dir", dir, "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")

	loaded, err := files.ReadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Search.PerPage)

	_, err = execute(t, "--config-dir", dir, "--yes", "init", "--force")
	require.NoError(t, err)

	loaded, err = files.ReadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, 30, loaded.Search.PerPage)
}

func TestConfigCommands(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "--config-dir", dir, "config", "set", "search.per_page", "50")
	require.NoError(t, err)
	_, err = execute(t, "--config-dir", dir, "config", "set", "api.timeout", "3s")
	require.NoError(t, err)

	out, err := execute(t, "--config-dir", dir, "config", "show", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"per_page": 50`)
	assert.Contains(t, out, `"prefix": "language:"`)

	loaded, err := files.ReadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, loaded.API.Timeout)

	out, err = execute(t, "--config-dir", dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "per_page: 50")

	_, err = execute(t, "--config-dir", dir, "config", "set", "search.per_page", "500")
	assert.Error(t, err)
}

func TestApplySetting(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
		check   func(t *testing.T, s *models.Settings)
	}{
		{key: "api.base_url", value: "http://localhost:8080/", check: func(t *testing.T, s *models.Settings) {
			assert.Equal(t, "http://localhost:8080", s.API.BaseURL)
		}},
		{key: "api.token_env", value: "GH_TOKEN", check: func(t *testing.T, s *models.Settings) {
			assert.Equal(t, "GH_TOKEN", s.API.TokenEnv)
		}},
		{key: "api.timeout", value: "soon", wantErr: true},
		{key: "search.sort", value: "forks", check: func(t *testing.T, s *models.Settings) {
			assert.Equal(t, "forks", s.Search.Sort)
		}},
		{key: "search.sort", value: "name", wantErr: true},
		{key: "search.order", value: "up", wantErr: true},
		{key: "search.per_page", value: "abc", wantErr: true},
		{key: "UI.Mode", value: "Inline", check: func(t *testing.T, s *models.Settings) {
			assert.Equal(t, models.ModeInline, s.UI.Mode)
		}},
		{key: "ui.mode", value: "popup", wantErr: true},
		{key: "ui.show_icons", value: "false", check: func(t *testing.T, s *models.Settings) {
			assert.False(t, s.UI.ShowIcons)
		}},
		{key: "ui.max_suggestions", value: "0", wantErr: true},
		{key: "colors", value: "on", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			s := models.DefaultSettings()
			err := applySetting(s, tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestCatalogCommands(t *testing.T) {
	out, err := execute(t, "languages")
	require.NoError(t, err)
	assert.Contains(t, out, "Go\n")
	assert.Contains(t, out, "Rust\n")

	out, err = execute(t, "topics", "--featured", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "ai"`)
	assert.NotContains(t, out, `"name": "cli"`)

	out, err = execute(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "cli")
}

func TestCollectionsList(t *testing.T) {
	out, err := execute(t, "collections")
	require.NoError(t, err)
	assert.Contains(t, out, "developer-tools")
	assert.Contains(t, out, "topic:developer-tools stars:>1000")

	_, err = execute(t, "collections", "no-such-collection")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown collection")
}
