package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pluqqy/reposearch/pkg/files"
	"github.com/pluqqy/reposearch/pkg/github"
	"github.com/pluqqy/reposearch/pkg/models"
	"github.com/pluqqy/reposearch/pkg/qualifiers"
	"github.com/pluqqy/reposearch/pkg/search"
)

// CommandContext lazily loads configuration shared by commands
type CommandContext struct {
	ConfigDir string
	Logger    *slog.Logger

	settings *models.Settings
	registry *qualifiers.Registry
	lexer    *search.Lexer
}

// NewCommandContext creates a context rooted at configDir. An empty
// configDir means files.ConfigDir in the working directory.
func NewCommandContext(configDir string, logger *slog.Logger) *CommandContext {
	if configDir == "" {
		configDir = files.ConfigDir
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CommandContext{ConfigDir: configDir, Logger: logger}
}

// LoadSettings reads settings once and caches them
func (c *CommandContext) LoadSettings() (*models.Settings, error) {
	if c.settings != nil {
		return c.settings, nil
	}

	settings, err := files.ReadSettings(c.ConfigDir)
	if err != nil {
		return nil, err
	}

	c.settings = settings
	return settings, nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	settings, err := c.LoadSettings()
	if err != nil {
		c.Logger.Warn("using default settings", "error", err)
		settings = models.DefaultSettings()
		c.settings = settings
	}
	return settings
}

// Lexer returns a lexer over the configured qualifier registry
func (c *CommandContext) Lexer() (*search.Lexer, error) {
	if c.lexer != nil {
		return c.lexer, nil
	}

	registry, err := files.ReadQualifiers(c.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load qualifiers: %w", err)
	}

	c.registry = registry
	c.lexer = search.NewLexer(registry)
	return c.lexer, nil
}

// Registry returns the configured qualifier registry
func (c *CommandContext) Registry() (*qualifiers.Registry, error) {
	if _, err := c.Lexer(); err != nil {
		return nil, err
	}
	return c.registry, nil
}

// Client builds a GitHub client from settings. The token is read from the
// environment variable named in settings.
func (c *CommandContext) Client() (*github.Client, error) {
	settings := c.LoadSettingsWithDefault()
	lexer, err := c.Lexer()
	if err != nil {
		return nil, err
	}

	token := ""
	if settings.API.TokenEnv != "" {
		token = os.Getenv(settings.API.TokenEnv)
	}
	if token == "" {
		c.Logger.Debug("no GitHub token configured; requests are unauthenticated", "env", settings.API.TokenEnv)
	}

	return github.NewClient(
		github.WithBaseURL(settings.API.BaseURL),
		github.WithAPIVersion(settings.API.APIVersion),
		github.WithTimeout(settings.API.Timeout),
		github.WithToken(token),
		github.WithLexer(lexer),
		github.WithLogger(c.Logger),
	), nil
}

// History loads recent filters from the config directory. Errors fall back
// to an empty history.
func (c *CommandContext) History() *search.RecentFilters {
	items, err := files.ReadHistory(c.ConfigDir)
	if err != nil {
		c.Logger.Warn("ignoring unreadable history", "error", err)
		items = nil
	}
	return search.NewRecentFilters(items)
}

// SaveHistory persists recent filters when the config directory exists
func (c *CommandContext) SaveHistory(recent *search.RecentFilters) error {
	if _, err := os.Stat(c.ConfigDir); os.IsNotExist(err) {
		return nil
	}
	return files.WriteHistory(c.ConfigDir, recent.Items())
}
