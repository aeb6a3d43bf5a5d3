package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pluqqy/reposearch/pkg/search"
)

const (
	DefaultBaseURL    = "https://api.github.com"
	DefaultAPIVersion = "2022-11-28"
	DefaultPerPage    = 30
	MaxPerPage        = 100
	DefaultTimeout    = 15 * time.Second

	acceptHeader = "application/vnd.github.v3+json"
)

// Client talks to the GitHub repository search endpoint
type Client struct {
	baseURL    string
	apiVersion string
	token      string
	httpClient *http.Client
	retry      RetryConfig
	lexer      *search.Lexer
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at a different API root
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

// WithToken sets the bearer token. An empty token sends no Authorization header.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithAPIVersion sets the X-GitHub-Api-Version header
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		if version != "" {
			c.apiVersion = version
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithRetry overrides the retry policy
func WithRetry(config RetryConfig) Option {
	return func(c *Client) {
		c.retry = config
	}
}

// WithLexer sets the lexer used to normalize free text. Default is the
// built-in registry.
func WithLexer(lexer *search.Lexer) Option {
	return func(c *Client) {
		if lexer != nil {
			c.lexer = lexer
		}
	}
}

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger.With("component", "github-client")
	}
}

// NewClient creates a search client
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiVersion: DefaultAPIVersion,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		retry:      DefaultRetryConfig(),
		lexer:      search.NewLexer(nil),
		logger:     slog.Default().With("component", "github-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchParams describes one repository search
type SearchParams struct {
	Query   string
	Filters search.Filters
	Sort    SortOption
	Order   OrderOption
	Page    int
	PerPage int
}

// Values returns the URL query parameters for the search, applying defaults
func (c *Client) Values(params SearchParams) url.Values {
	sort := params.Sort
	if sort == "" {
		sort = SortStars
	}
	order := params.Order
	if order == "" {
		order = OrderDesc
	}
	perPage := params.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	page := params.Page
	if page <= 0 {
		page = 1
	}

	values := url.Values{}
	values.Set("q", c.lexer.BuildQuery(params.Query, params.Filters))
	values.Set("sort", string(sort))
	values.Set("order", string(order))
	values.Set("per_page", strconv.Itoa(perPage))
	values.Set("page", strconv.Itoa(page))
	return values
}

// SearchURL returns the full request URL for params
func (c *Client) SearchURL(params SearchParams) string {
	return c.baseURL + "/search/repositories?" + c.Values(params).Encode()
}

// SearchRepositories runs a repository search
func (c *Client) SearchRepositories(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	endpoint := c.SearchURL(params)
	c.logger.Debug("searching repositories", "url", endpoint)

	resp, err := retryWithBackoff(ctx, c.retry, func() (*SearchResponse, error) {
		return c.get(ctx, endpoint)
	})
	if err != nil {
		c.logger.Warn("repository search failed", "error", err)
		return nil, fmt.Errorf("failed to fetch repositories: %w", err)
	}

	c.logger.Debug("search complete", "total", resp.TotalCount, "items", len(resp.Items))
	return resp, nil
}

func (c *Client) get(ctx context.Context, endpoint string) (*SearchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", c.apiVersion)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(body, apiErr)
		return nil, apiErr
	}

	var result SearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}
