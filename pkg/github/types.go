package github

// Repository is a repository as returned by the search API
type Repository struct {
	ID              int64    `json:"id" yaml:"id"`
	NodeID          string   `json:"node_id" yaml:"node_id"`
	Name            string   `json:"name" yaml:"name"`
	FullName        string   `json:"full_name" yaml:"full_name"`
	Private         bool     `json:"private" yaml:"private"`
	Owner           User     `json:"owner" yaml:"owner"`
	HTMLURL         string   `json:"html_url" yaml:"html_url"`
	Description     *string  `json:"description" yaml:"description"`
	Fork            bool     `json:"fork" yaml:"fork"`
	URL             string   `json:"url" yaml:"url"`
	CreatedAt       string   `json:"created_at" yaml:"created_at"`
	UpdatedAt       string   `json:"updated_at" yaml:"updated_at"`
	PushedAt        string   `json:"pushed_at" yaml:"pushed_at"`
	Homepage        *string  `json:"homepage" yaml:"homepage"`
	Size            int      `json:"size" yaml:"size"`
	StargazersCount int      `json:"stargazers_count" yaml:"stargazers_count"`
	WatchersCount   int      `json:"watchers_count" yaml:"watchers_count"`
	Language        *string  `json:"language" yaml:"language"`
	ForksCount      int      `json:"forks_count" yaml:"forks_count"`
	OpenIssuesCount int      `json:"open_issues_count" yaml:"open_issues_count"`
	DefaultBranch   string   `json:"default_branch" yaml:"default_branch"`
	Score           float64  `json:"score" yaml:"score"`
	Archived        bool     `json:"archived" yaml:"archived"`
	Disabled        bool     `json:"disabled" yaml:"disabled"`
	License         *License `json:"license" yaml:"license"`
	Topics          []string `json:"topics" yaml:"topics"`
	Visibility      string   `json:"visibility" yaml:"visibility"`
}

// DescriptionText returns the description or an empty string
func (r Repository) DescriptionText() string {
	if r.Description == nil {
		return ""
	}
	return *r.Description
}

// LanguageText returns the primary language or an empty string
func (r Repository) LanguageText() string {
	if r.Language == nil {
		return ""
	}
	return *r.Language
}

// User is a repository owner, either a user or an organization
type User struct {
	Login     string `json:"login" yaml:"login"`
	ID        int64  `json:"id" yaml:"id"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`
	HTMLURL   string `json:"html_url" yaml:"html_url"`
	Type      string `json:"type" yaml:"type"`
	SiteAdmin bool   `json:"site_admin" yaml:"site_admin"`
}

// License is the detected license of a repository
type License struct {
	Key    string  `json:"key" yaml:"key"`
	Name   string  `json:"name" yaml:"name"`
	SPDXID string  `json:"spdx_id" yaml:"spdx_id"`
	URL    *string `json:"url" yaml:"url"`
	NodeID string  `json:"node_id" yaml:"node_id"`
}

// SearchResponse is the body of a repository search
type SearchResponse struct {
	TotalCount        int          `json:"total_count" yaml:"total_count"`
	IncompleteResults bool         `json:"incomplete_results" yaml:"incomplete_results"`
	Items             []Repository `json:"items" yaml:"items"`
}

// SortOption is a repository search sort field
type SortOption string

const (
	SortStars      SortOption = "stars"
	SortForks      SortOption = "forks"
	SortUpdated    SortOption = "updated"
	SortHelpWanted SortOption = "help-wanted-issues"
)

// OrderOption is a sort direction
type OrderOption string

const (
	OrderDesc OrderOption = "desc"
	OrderAsc  OrderOption = "asc"
)

// ParseSort validates a sort option name
func ParseSort(s string) (SortOption, bool) {
	switch SortOption(s) {
	case SortStars, SortForks, SortUpdated, SortHelpWanted:
		return SortOption(s), true
	}
	return "", false
}

// ParseOrder validates an order option name
func ParseOrder(s string) (OrderOption, bool) {
	switch OrderOption(s) {
	case OrderDesc, OrderAsc:
		return OrderOption(s), true
	}
	return "", false
}
