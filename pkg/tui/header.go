package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const appName = "⌕ reposearch"

func renderHeader(width int, title string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		PaddingBottom(1).
		Width(width)

	logo := logoStyle.Render(appName)
	contentWidth := width - 2 // -2 for left and right padding

	if title == "" {
		rightAlign := lipgloss.NewStyle().
			Width(contentWidth).
			Align(lipgloss.Right)
		return headerPadding.Render(rightAlign.Render(logo))
	}

	titleRendered := titleStyle.Render(title)
	gap := contentWidth - lipgloss.Width(titleRendered) - lipgloss.Width(logo)
	if gap < 1 {
		gap = 1
	}

	headerContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		lipgloss.NewStyle().Width(gap).Render(""),
		logo,
	)
	return headerPadding.Render(headerContent)
}
