package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/reposearch/pkg/github"
	"github.com/pluqqy/reposearch/pkg/qualifiers"
)

const (
	descriptionLines = 2
	resultItemHeight = descriptionLines + 2 // name, description, gap
)

// ResultList shows repositories returned by a search
type ResultList struct {
	repos     []github.Repository
	total     int
	cursor    int
	offset    int
	width     int
	height    int
	showIcons bool
}

// NewResultList creates an empty result list
func NewResultList(showIcons bool) *ResultList {
	return &ResultList{showIcons: showIcons}
}

// SetSize sets the area available to the list
func (r *ResultList) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.SetOffset(r.offset)
}

// SetResults replaces the repositories and resets the selection
func (r *ResultList) SetResults(repos []github.Repository, total int) {
	r.repos = repos
	r.total = total
	r.cursor = 0
	r.offset = 0
}

// Len returns the number of loaded repositories
func (r *ResultList) Len() int {
	return len(r.repos)
}

// Selected returns the repository under the cursor
func (r *ResultList) Selected() (github.Repository, bool) {
	if r.cursor < 0 || r.cursor >= len(r.repos) {
		return github.Repository{}, false
	}
	return r.repos[r.cursor], true
}

func (r *ResultList) visibleItems() int {
	n := r.height / resultItemHeight
	if n < 1 {
		return 1
	}
	return n
}

// Offset returns the index of the first visible repository
func (r *ResultList) Offset() int {
	return r.offset
}

// SetOffset scrolls so that offset is the first visible repository
func (r *ResultList) SetOffset(offset int) {
	maxOffset := len(r.repos) - r.visibleItems()
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	r.offset = offset
}

// MoveUp moves the cursor up, scrolling when needed
func (r *ResultList) MoveUp() {
	if r.cursor > 0 {
		r.cursor--
	}
	if r.cursor < r.offset {
		r.SetOffset(r.cursor)
	}
}

// MoveDown moves the cursor down, scrolling when needed
func (r *ResultList) MoveDown() {
	if r.cursor < len(r.repos)-1 {
		r.cursor++
	}
	if r.cursor >= r.offset+r.visibleItems() {
		r.SetOffset(r.cursor - r.visibleItems() + 1)
	}
}

// View renders the visible repositories
func (r *ResultList) View() string {
	if len(r.repos) == 0 {
		return DescriptionStyle.Render("No repositories yet. Press / to search.")
	}

	width := r.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%d repositories", r.total)))
	b.WriteString("\n\n")

	end := r.offset + r.visibleItems()
	if end > len(r.repos) {
		end = len(r.repos)
	}

	for i := r.offset; i < end; i++ {
		b.WriteString(r.renderItem(r.repos[i], i == r.cursor, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (r *ResultList) renderItem(repo github.Repository, selected bool, width int) string {
	star := "stars"
	if r.showIcons {
		star = qualifiers.Glyph("octicon:star-16")
	}

	meta := StarStyle.Render(fmt.Sprintf("%s %d", star, repo.StargazersCount))
	if lang := repo.LanguageText(); lang != "" {
		meta += DescriptionStyle.Render("  " + lang)
	}

	nameWidth := width - lipgloss.Width(meta) - 4
	if nameWidth < 10 {
		nameWidth = 10
	}
	name := truncate.StringWithTail(repo.FullName, uint(nameWidth), "…")

	nameStyle := NormalStyle.Bold(true)
	prefix := "  "
	if selected {
		nameStyle = SelectedStyle
		prefix = "▸ "
	}

	var b strings.Builder
	b.WriteString(prefix + nameStyle.Render(name) + "  " + meta + "\n")

	desc := repo.DescriptionText()
	if desc == "" {
		desc = "No description"
	}
	lines := strings.Split(wordwrap.String(desc, width-4), "\n")
	if len(lines) > descriptionLines {
		lines = lines[:descriptionLines]
		last := lines[descriptionLines-1]
		lines[descriptionLines-1] = truncate.StringWithTail(last+" …", uint(width-4), "…")
	}
	for len(lines) < descriptionLines {
		lines = append(lines, "")
	}
	for _, line := range lines {
		b.WriteString("    " + DescriptionStyle.Render(line) + "\n")
	}

	return b.String()
}
