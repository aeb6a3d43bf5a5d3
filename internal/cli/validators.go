package cli

import (
	"fmt"
	"strings"

	"github.com/pluqqy/reposearch/pkg/models"
)

// ValidateOutputFormat checks the --output flag value
func ValidateOutputFormat(format string) error {
	switch OutputFormat(format) {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateUIMode checks a suggestion UI mode
func ValidateUIMode(mode string) error {
	switch strings.ToLower(mode) {
	case models.ModeInline, models.ModeModal:
		return nil
	}
	return fmt.Errorf("invalid ui mode: %s (must be: inline or modal)", mode)
}

// ValidatePage checks pagination flags
func ValidatePage(page, perPage int) error {
	if page < 1 {
		return fmt.Errorf("invalid page: %d (must be at least 1)", page)
	}
	if perPage < 1 || perPage > 100 {
		return fmt.Errorf("invalid per-page: %d (must be between 1 and 100)", perPage)
	}
	return nil
}
