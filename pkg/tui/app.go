package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/reposearch/pkg/github"
	"github.com/pluqqy/reposearch/pkg/models"
	"github.com/pluqqy/reposearch/pkg/search"
)

// Searcher runs repository searches for the app
type Searcher interface {
	SearchRepositories(ctx context.Context, params github.SearchParams) (*github.SearchResponse, error)
}

// Options configures an App
type Options struct {
	Lexer    *search.Lexer
	Searcher Searcher
	Settings *models.Settings
	Recent   *search.RecentFilters
	// SaveRecent is called after a suggestion is picked
	SaveRecent func(*search.RecentFilters) error
	// Copy writes to the system clipboard; defaults to clipboard.WriteAll
	Copy   func(string) error
	Logger *slog.Logger
}

// App is the search screen: a highlighted search bar with a qualifier
// dropdown above a list of results
type App struct {
	lexer      *search.Lexer
	searcher   Searcher
	settings   *models.Settings
	recent     *search.RecentFilters
	saveRecent func(*search.RecentFilters) error
	copy       func(string) error
	logger     *slog.Logger

	searchBar *SearchBar
	dropdown  *SuggestionDropdown
	results   *ResultList
	focus     FocusController

	width     int
	height    int
	loading   bool
	searchSeq int
	lastQuery string
	err       error
	statusMsg string
}

// NewApp creates the search screen
func NewApp(opts Options) *App {
	if opts.Lexer == nil {
		opts.Lexer = search.NewLexer(nil)
	}
	if opts.Settings == nil {
		opts.Settings = models.DefaultSettings()
	}
	if opts.Recent == nil {
		opts.Recent = &search.RecentFilters{}
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	a := &App{
		lexer:      opts.Lexer,
		searcher:   opts.Searcher,
		settings:   opts.Settings,
		recent:     opts.Recent,
		saveRecent: opts.SaveRecent,
		copy:       opts.Copy,
		logger:     opts.Logger.With("component", "tui"),
		searchBar:  NewSearchBar(opts.Lexer),
		dropdown:   NewSuggestionDropdown(opts.Lexer, opts.Settings.UI.MaxSuggestions, opts.Settings.UI.ShowIcons),
		results:    NewResultList(opts.Settings.UI.ShowIcons),
	}

	if strings.EqualFold(opts.Settings.UI.Mode, models.ModeInline) {
		a.focus = NewInlineFocus()
	} else {
		a.focus = NewScrollLock(a.results)
	}

	return a
}

// Init focuses the search bar so typing starts immediately
func (a *App) Init() tea.Cmd {
	return a.openSearch()
}

// Messages
type (
	// StatusMsg shows a transient message in the status bar
	StatusMsg string

	searchResultMsg struct {
		seq   int
		query string
		resp  *github.SearchResponse
		err   error
	}
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.searchBar.SetWidth(msg.Width)
		a.results.SetSize(msg.Width, a.resultsHeight())
		return a, nil

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case searchResultMsg:
		// Results of a superseded search are dropped
		if msg.seq != a.searchSeq {
			return a, nil
		}
		a.loading = false
		a.err = msg.err
		if msg.err != nil {
			a.logger.Warn("search failed", "query", msg.query, "error", msg.err)
			return a, nil
		}
		a.results.SetResults(msg.resp.Items, msg.resp.TotalCount)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.searchBar.Active() {
		var cmd tea.Cmd
		a.searchBar, cmd = a.searchBar.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if Shortcuts.Quit.Matches(key) {
		a.closeSearch()
		return a, tea.Quit
	}
	if Shortcuts.Copy.Matches(key) {
		return a, a.copyQuery()
	}

	if !a.searchBar.Active() {
		switch {
		case Shortcuts.Focus.Matches(key):
			return a, a.openSearch()
		case Shortcuts.Up.Matches(key), key == "k":
			a.results.MoveUp()
		case Shortcuts.Down.Matches(key), key == "j":
			a.results.MoveDown()
		case key == "q":
			return a, tea.Quit
		}
		return a, nil
	}

	switch {
	case Shortcuts.Close.Matches(key):
		a.closeSearch()
		return a, nil

	case Shortcuts.Submit.Matches(key):
		query := strings.TrimSpace(a.searchBar.Value())
		a.closeSearch()
		return a, a.submit(query)

	case Shortcuts.Up.Matches(key):
		a.dropdown.MoveUp()
		return a, nil

	case Shortcuts.Down.Matches(key):
		a.dropdown.MoveDown()
		return a, nil

	case Shortcuts.Select.Matches(key):
		a.selectSuggestion()
		return a, nil

	case Shortcuts.Remove.Matches(key):
		a.removeSuggestion()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchBar, cmd = a.searchBar.Update(msg)
	a.refreshDropdown()
	return a, cmd
}

// openSearch focuses the search bar and takes the focus lock
func (a *App) openSearch() tea.Cmd {
	if a.searchBar.Active() {
		return nil
	}
	a.focus.Acquire()
	cmd := a.searchBar.SetActive(true)
	a.refreshDropdown()
	return cmd
}

// closeSearch blurs the search bar and always gives the lock back
func (a *App) closeSearch() {
	a.searchBar.SetActive(false)
	a.focus.Release()
}

func (a *App) refreshDropdown() {
	a.dropdown.Refresh(a.searchBar.Value(), a.recent.Items())
	a.dropdown.SetColumn(a.searchBar.CaretColumn())
}

func (a *App) selectSuggestion() {
	item, ok := a.dropdown.Selected()
	if !ok {
		return
	}

	a.searchBar.SetValue(search.CompleteSuggestion(a.searchBar.Value(), item.Prefix))
	a.recent.Add(item.Prefix)
	if a.saveRecent != nil {
		if err := a.saveRecent(a.recent); err != nil {
			a.logger.Warn("failed to save recent filters", "error", err)
		}
	}
	a.refreshDropdown()
}

func (a *App) removeSuggestion() {
	item, ok := a.dropdown.Selected()
	if !ok || !item.IsUsed {
		return
	}

	a.searchBar.SetValue(a.lexer.RemoveQualifier(a.searchBar.Value(), item.Prefix, item.CurrentValue))
	a.refreshDropdown()
}

func (a *App) submit(query string) tea.Cmd {
	if a.searcher == nil {
		a.err = fmt.Errorf("no search client configured")
		return nil
	}

	a.searchSeq++
	a.loading = true
	a.err = nil
	a.lastQuery = a.lexer.BuildQuery(query, search.Filters{})

	params := a.searchParams(query)
	seq := a.searchSeq
	timeout := a.settings.API.Timeout
	if timeout <= 0 {
		timeout = github.DefaultTimeout
	}
	searcher := a.searcher

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		resp, err := searcher.SearchRepositories(ctx, params)
		return searchResultMsg{seq: seq, query: query, resp: resp, err: err}
	}
}

func (a *App) copyQuery() tea.Cmd {
	query := a.lexer.BuildQuery(a.searchBar.Value(), search.Filters{})
	if query == "" {
		return nil
	}
	copyFn := a.copy
	return func() tea.Msg {
		if err := copyFn(query); err != nil {
			return StatusMsg("Copy failed: " + err.Error())
		}
		return StatusMsg("Copied: " + query)
	}
}

// header, search bar, help line and status line
const chromeHeight = 2 + 3 + 1 + 1

func (a *App) resultsHeight() int {
	h := a.height - chromeHeight
	if h < resultItemHeight {
		return resultItemHeight
	}
	return h
}

func (a *App) modal() bool {
	_, ok := a.focus.(*ScrollLock)
	return ok
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	sections := []string{
		renderHeader(a.width, "Repository search"),
		a.searchBar.View(),
	}

	dropdown := ""
	if a.searchBar.Active() {
		dropdown = a.dropdown.View(a.width)
	}

	switch {
	case dropdown != "" && a.modal():
		// The modal replaces the results while it is open
		sections = append(sections, dropdown)
	case dropdown != "":
		sections = append(sections, dropdown, a.bodyView())
	default:
		sections = append(sections, a.bodyView())
	}

	sections = append(sections, a.helpView())
	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)
		sections = append(sections, statusStyle.Render(a.statusMsg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) bodyView() string {
	style := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)

	switch {
	case a.loading:
		return style.Render(DescriptionStyle.Render("Searching " + a.lastQuery + " ..."))
	case a.err != nil:
		return style.Render(ErrorStyle.Render("Error: " + a.err.Error()))
	default:
		return style.Render(a.results.View())
	}
}

func (a *App) helpView() string {
	var help []string
	if a.searchBar.Active() {
		help = []string{
			FormatShortcutForHelp(Shortcuts.Submit) + " search",
			FormatShortcutForHelp(Shortcuts.Select) + " add filter",
			FormatShortcutForHelp(Shortcuts.Remove) + " remove filter",
			FormatShortcutForHelp(Shortcuts.Copy) + " copy query",
			FormatShortcutForHelp(Shortcuts.Close) + " close",
		}
	} else {
		help = []string{
			FormatShortcutForHelp(Shortcuts.Focus) + " search",
			FormatShortcutForHelp(Shortcuts.Up) + "/" + FormatShortcutForHelp(Shortcuts.Down) + " move",
			FormatShortcutForHelp(Shortcuts.Copy) + " copy query",
			"q quit",
		}
	}
	return lipgloss.NewStyle().PaddingLeft(1).Render(DescriptionStyle.Render(strings.Join(help, " • ")))
}

// searchParams applies the configured sort, order and page size. Unknown
// values fall back to the client defaults.
func (a *App) searchParams(query string) github.SearchParams {
	params := github.SearchParams{Query: query, PerPage: a.settings.Search.PerPage}
	if sort, ok := github.ParseSort(a.settings.Search.Sort); ok {
		params.Sort = sort
	}
	if order, ok := github.ParseOrder(a.settings.Search.Order); ok {
		params.Order = order
	}
	return params
}

var _ tea.Model = (*App)(nil)
