package qualifiers

// Default qualifiers understood by the GitHub repository search API
var defaultDefinitions = []Definition{
	{Prefix: "repo:", Label: "Repository (user/repo)", Icon: "octicon:repo-16"},
	{Prefix: "user:", Label: "User", Icon: "octicon:person-16"},
	{Prefix: "org:", Label: "Organization", Icon: "octicon:organization-16"},
	{Prefix: "in:", Label: "Search in", Icon: "octicon:search-16"},
	{Prefix: "size:", Label: "Size", Icon: "octicon:file-16"},
	{Prefix: "stars:", Label: "Stars", Icon: "octicon:star-16"},
	{Prefix: "language:", Label: "Language", Icon: "octicon:code-16"},
	{Prefix: "created:", Label: "Created date", Icon: "octicon:calendar-16"},
	{Prefix: "pushed:", Label: "Push date", Icon: "octicon:git-commit-16"},
	{Prefix: "topic:", Label: "Topic", Icon: "octicon:hash-16"},
	{Prefix: "is:", Label: "State", Icon: "octicon:circle-16"},
	{Prefix: "fork:", Label: "Fork", Icon: "octicon:repo-forked-16"},
}

var defaultRegistry = MustNew(defaultDefinitions...)

// Default returns the built-in twelve-entry registry
func Default() *Registry {
	return defaultRegistry
}

// Glyph maps an octicon identifier to a terminal-friendly symbol
func Glyph(icon string) string {
	switch icon {
	case "octicon:repo-16":
		return "▤"
	case "octicon:person-16":
		return "●"
	case "octicon:organization-16":
		return "◆"
	case "octicon:search-16":
		return "⌕"
	case "octicon:file-16":
		return "▯"
	case "octicon:star-16":
		return "★"
	case "octicon:code-16":
		return "‹›"
	case "octicon:calendar-16":
		return "▦"
	case "octicon:git-commit-16":
		return "◉"
	case "octicon:hash-16":
		return "#"
	case "octicon:circle-16":
		return "○"
	case "octicon:repo-forked-16":
		return "⑂"
	default:
		return "•"
	}
}
