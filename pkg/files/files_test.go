package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pluqqy/reposearch/pkg/models"
	"github.com/pluqqy/reposearch/pkg/qualifiers"
)

func TestInitProjectStructure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ConfigDir)

	if err := InitProjectStructure(dir, false); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	for _, path := range []string{SettingsPath(dir), QualifiersPath(dir)} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("Expected file %s does not exist", path)
		}
	}

	registry, err := ReadQualifiers(dir)
	if err != nil {
		t.Fatalf("ReadQualifiers failed: %v", err)
	}
	if registry.Len() != qualifiers.Default().Len() {
		t.Errorf("Expected %d qualifiers, got %d", qualifiers.Default().Len(), registry.Len())
	}
}

func TestInitProjectStructureKeepsExisting(t *testing.T) {
	dir := t.TempDir()

	settings := models.DefaultSettings()
	settings.Search.PerPage = 50
	if err := WriteSettings(dir, settings); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}

	if err := InitProjectStructure(dir, false); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}
	got, err := ReadSettings(dir)
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if got.Search.PerPage != 50 {
		t.Errorf("Expected existing settings to survive, got per_page %d", got.Search.PerPage)
	}

	if err := InitProjectStructure(dir, true); err != nil {
		t.Fatalf("InitProjectStructure with force failed: %v", err)
	}
	got, err = ReadSettings(dir)
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if got.Search.PerPage != 30 {
		t.Errorf("Expected force to reset per_page to 30, got %d", got.Search.PerPage)
	}
}

func TestReadSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		write   bool
		wantErr bool
		check   func(t *testing.T, s *models.Settings)
	}{
		{
			name: "missing file returns defaults",
			check: func(t *testing.T, s *models.Settings) {
				if s.API.BaseURL != "https://api.github.com" {
					t.Errorf("Expected default base URL, got %q", s.API.BaseURL)
				}
				if s.UI.Mode != models.ModeModal {
					t.Errorf("Expected modal mode, got %q", s.UI.Mode)
				}
			},
		},
		{
			name:    "partial file keeps other defaults",
			content: "search:\n  sort: forks\nui:\n  mode: inline\n",
			write:   true,
			check: func(t *testing.T, s *models.Settings) {
				if s.Search.Sort != "forks" {
					t.Errorf("Expected sort forks, got %q", s.Search.Sort)
				}
				if s.Search.Order != "desc" {
					t.Errorf("Expected default order desc, got %q", s.Search.Order)
				}
				if s.UI.Mode != models.ModeInline {
					t.Errorf("Expected inline mode, got %q", s.UI.Mode)
				}
				if s.API.Timeout != 15*time.Second {
					t.Errorf("Expected default timeout, got %v", s.API.Timeout)
				}
			},
		},
		{
			name:    "timeout parses as duration",
			content: "api:\n  timeout: 3s\n",
			write:   true,
			check: func(t *testing.T, s *models.Settings) {
				if s.API.Timeout != 3*time.Second {
					t.Errorf("Expected 3s timeout, got %v", s.API.Timeout)
				}
			},
		},
		{
			name:    "malformed file",
			content: "search: [unclosed",
			write:   true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.write {
				if err := os.WriteFile(SettingsPath(dir), []byte(tt.content), 0644); err != nil {
					t.Fatalf("failed to write settings: %v", err)
				}
			}

			settings, err := ReadSettings(dir)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, settings)
			}
		})
	}
}

func TestWriteSettingsRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", ConfigDir)

	settings := models.DefaultSettings()
	settings.API.TokenEnv = "GH_TOKEN"
	settings.UI.ShowIcons = false

	if err := WriteSettings(dir, settings); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}
	if _, err := os.Stat(SettingsPath(dir) + ".tmp"); !os.IsNotExist(err) {
		t.Error("Expected temporary file to be renamed away")
	}

	got, err := ReadSettings(dir)
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if got.API.TokenEnv != "GH_TOKEN" {
		t.Errorf("Expected token env GH_TOKEN, got %q", got.API.TokenEnv)
	}
	if got.UI.ShowIcons {
		t.Error("Expected show_icons to be false")
	}
}

func TestReadQualifiersWithoutFile(t *testing.T) {
	registry, err := ReadQualifiers(t.TempDir())
	if err != nil {
		t.Fatalf("ReadQualifiers failed: %v", err)
	}
	if _, ok := registry.Get("stars"); !ok {
		t.Error("Expected built-in registry with stars:")
	}
}

func TestHistory(t *testing.T) {
	dir := t.TempDir()

	got, err := ReadHistory(dir)
	if err != nil {
		t.Fatalf("ReadHistory failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty history, got %v", got)
	}

	want := []string{"language:", "stars:"}
	if err := WriteHistory(dir, want); err != nil {
		t.Fatalf("WriteHistory failed: %v", err)
	}

	got, err = ReadHistory(dir)
	if err != nil {
		t.Fatalf("ReadHistory failed: %v", err)
	}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
