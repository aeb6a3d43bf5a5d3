package models

import "time"

// Settings represents the application configuration
type Settings struct {
	API    APISettings    `yaml:"api" json:"api"`
	Search SearchSettings `yaml:"search" json:"search"`
	UI     UISettings     `yaml:"ui" json:"ui"`
}

// APISettings controls how the GitHub search API is reached
type APISettings struct {
	BaseURL    string        `yaml:"base_url" json:"base_url"`
	APIVersion string        `yaml:"api_version" json:"api_version"`
	TokenEnv   string        `yaml:"token_env" json:"token_env"` // environment variable holding the token
	Timeout    time.Duration `yaml:"timeout" json:"timeout"`
}

// SearchSettings are defaults applied to every search
type SearchSettings struct {
	Sort    string `yaml:"sort" json:"sort"`
	Order   string `yaml:"order" json:"order"`
	PerPage int    `yaml:"per_page" json:"per_page"`
}

// UISettings controls TUI preferences
type UISettings struct {
	Mode           string `yaml:"mode" json:"mode"` // "inline" or "modal"
	ShowIcons      bool   `yaml:"show_icons" json:"show_icons"`
	MaxSuggestions int    `yaml:"max_suggestions" json:"max_suggestions"`
}

const (
	ModeInline = "inline"
	ModeModal  = "modal"
)

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		API: APISettings{
			BaseURL:    "https://api.github.com",
			APIVersion: "2022-11-28",
			TokenEnv:   "GITHUB_TOKEN",
			Timeout:    15 * time.Second,
		},
		Search: SearchSettings{
			Sort:    "stars",
			Order:   "desc",
			PerPage: 30,
		},
		UI: UISettings{
			Mode:           ModeModal,
			ShowIcons:      true,
			MaxSuggestions: 12,
		},
	}
}
