package qualifiers

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// registryFile is the on-disk layout of a custom qualifier registry
type registryFile struct {
	Qualifiers []Definition `yaml:"qualifiers"`
}

// LoadFile reads a registry from a YAML file
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse qualifier registry: %w", err)
	}

	r, err := New(file.Qualifiers...)
	if err != nil {
		return nil, fmt.Errorf("invalid qualifier registry %s: %w", path, err)
	}
	return r, nil
}

// LoadFileOrDefault reads a registry from path, falling back to the
// built-in registry when the file does not exist
func LoadFileOrDefault(path string) (*Registry, error) {
	r, err := LoadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return r, nil
}

// SaveFile writes the registry to path atomically
func (r *Registry) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}

	data, err := yaml.Marshal(registryFile{Qualifiers: r.Definitions()})
	if err != nil {
		return fmt.Errorf("failed to marshal qualifier registry: %w", err)
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write qualifier registry: %w", err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to save qualifier registry: %w", err)
	}

	return nil
}
