package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/reposearch/pkg/search"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorVeryDim  = "242" // Even dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for errors
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorPrimary  = "33"  // Blue for qualifier values
	ColorStar     = "220" // Yellow for star counts
)

// Common styles
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	StarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorStar))

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorVeryDim)).
				Italic(true)

	// Used marks a suggestion whose qualifier is already in the input
	UsedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess)).
			Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorActive)).
			Foreground(lipgloss.Color(ColorWhite)).
			Bold(true)
)

// Token styles
var (
	QualifierStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimary))

	TextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite))
)

// PartStyle returns the style used to draw a highlighted part
func PartStyle(kind search.PartKind) lipgloss.Style {
	switch kind {
	case search.PartQualifier:
		return QualifierStyle
	case search.PartValue:
		return ValueStyle
	case search.PartNormal:
		return TextStyle
	default:
		return lipgloss.NewStyle()
	}
}

// RenderParts draws highlighted parts as styled terminal text
func RenderParts(parts []search.ColoredPart) string {
	var b strings.Builder
	for _, part := range parts {
		if part.Kind == search.PartSpace {
			b.WriteString(part.Text)
			continue
		}
		b.WriteString(PartStyle(part.Kind).Render(part.Text))
	}
	return b.String()
}

// GetActiveBorderStyle returns the border for a pane given its focus
func GetActiveBorderStyle(isActive bool) lipgloss.Style {
	if isActive {
		return ActiveBorderStyle
	}
	return InactiveBorderStyle
}
