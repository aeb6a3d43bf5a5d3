package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pluqqy/reposearch/pkg/github"
)

func makeRepos(n int) []github.Repository {
	repos := make([]github.Repository, n)
	for i := range repos {
		desc := fmt.Sprintf("Description of repository %d", i)
		lang := "Go"
		repos[i] = github.Repository{
			FullName:        fmt.Sprintf("owner/repo-%d", i),
			Description:     &desc,
			Language:        &lang,
			StargazersCount: 1000 - i,
		}
	}
	return repos
}

func TestResultList_Scrolling(t *testing.T) {
	list := NewResultList(false)
	list.SetSize(80, resultItemHeight*3) // three visible items
	list.SetResults(makeRepos(10), 10)

	for i := 0; i < 4; i++ {
		list.MoveDown()
	}
	if list.Offset() != 2 {
		t.Errorf("Expected offset 2 after moving to item 4, got %d", list.Offset())
	}
	repo, ok := list.Selected()
	if !ok || repo.FullName != "owner/repo-4" {
		t.Errorf("Expected owner/repo-4 selected, got %q", repo.FullName)
	}

	for i := 0; i < 4; i++ {
		list.MoveUp()
	}
	if list.Offset() != 0 {
		t.Errorf("Expected offset 0 after moving back to the top, got %d", list.Offset())
	}
}

func TestResultList_SetOffsetClamps(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		want   int
	}{
		{"negative", -4, 0},
		{"in range", 3, 3},
		{"past end", 50, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewResultList(false)
			list.SetSize(80, resultItemHeight*3)
			list.SetResults(makeRepos(10), 10)

			list.SetOffset(tt.offset)
			if list.Offset() != tt.want {
				t.Errorf("SetOffset(%d) -> %d, want %d", tt.offset, list.Offset(), tt.want)
			}
		})
	}
}

func TestResultList_View(t *testing.T) {
	list := NewResultList(true)
	list.SetSize(60, resultItemHeight*2)

	if !strings.Contains(list.View(), "Press / to search") {
		t.Error("Expected empty state hint")
	}

	list.SetResults(makeRepos(5), 1234)
	view := list.View()

	for _, want := range []string{"1234 repositories", "owner/repo-0", "owner/repo-1", "★ 1000", "Go", "Description of repository 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q, got:\n%s", want, view)
		}
	}
	if strings.Contains(view, "owner/repo-2") {
		t.Error("Expected only two visible items")
	}
}

func TestResultList_LongDescriptionIsWrapped(t *testing.T) {
	desc := strings.Repeat("word ", 60)
	list := NewResultList(false)
	list.SetSize(40, resultItemHeight)
	list.SetResults([]github.Repository{{FullName: "a/b", Description: &desc}}, 1)

	lines := strings.Split(list.View(), "\n")
	// total line, blank line, name, two description lines, trailing newline
	if len(lines) != 6 {
		t.Fatalf("Expected 6 lines, got %d:\n%s", len(lines), list.View())
	}
	if !strings.Contains(lines[4], "…") {
		t.Errorf("Expected truncated second description line, got %q", lines[4])
	}
}
