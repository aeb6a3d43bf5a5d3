package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pluqqy/reposearch/pkg/models"
	"github.com/pluqqy/reposearch/pkg/qualifiers"
	"gopkg.in/yaml.v3"
)

const (
	ConfigDir      = ".reposearch"
	SettingsFile   = "settings.yaml"
	QualifiersFile = "qualifiers.yaml"
	HistoryFile    = "history.yaml"
)

// SettingsPath returns the settings file location inside dir
func SettingsPath(dir string) string {
	return filepath.Join(dir, SettingsFile)
}

// QualifiersPath returns the qualifier registry file location inside dir
func QualifiersPath(dir string) string {
	return filepath.Join(dir, QualifiersFile)
}

// HistoryPath returns the recent filter history location inside dir
func HistoryPath(dir string) string {
	return filepath.Join(dir, HistoryFile)
}

// InitProjectStructure creates dir and writes default settings and qualifier
// files. Existing files are left untouched unless force is set.
func InitProjectStructure(dir string, force bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if force || !exists(SettingsPath(dir)) {
		if err := WriteSettings(dir, models.DefaultSettings()); err != nil {
			return err
		}
	}

	if force || !exists(QualifiersPath(dir)) {
		if err := qualifiers.Default().SaveFile(QualifiersPath(dir)); err != nil {
			return err
		}
	}

	return nil
}

// ReadSettings loads settings from dir. A missing file yields the defaults;
// fields absent from the file keep their default values.
func ReadSettings(dir string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(SettingsPath(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

// WriteSettings saves settings to dir
func WriteSettings(dir string, settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}
	return writeAtomic(SettingsPath(dir), content)
}

// ReadQualifiers loads the qualifier registry from dir, falling back to the
// built-in registry when no file exists
func ReadQualifiers(dir string) (*qualifiers.Registry, error) {
	return qualifiers.LoadFileOrDefault(QualifiersPath(dir))
}

type historyFile struct {
	Filters []string `yaml:"filters"`
}

// ReadHistory returns the saved recent filters, most recent first
func ReadHistory(dir string) ([]string, error) {
	content, err := os.ReadFile(HistoryPath(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var h historyFile
	if err := yaml.Unmarshal(content, &h); err != nil {
		return nil, fmt.Errorf("failed to parse history YAML: %w", err)
	}
	if h.Filters == nil {
		h.Filters = []string{}
	}
	return h.Filters, nil
}

// WriteHistory saves recent filters to dir
func WriteHistory(dir string, filters []string) error {
	content, err := yaml.Marshal(historyFile{Filters: filters})
	if err != nil {
		return fmt.Errorf("failed to marshal history to YAML: %w", err)
	}
	return writeAtomic(HistoryPath(dir), content)
}

func writeAtomic(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to save file %s: %w", path, err)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
