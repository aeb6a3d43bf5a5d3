package github

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// TrendingWindow is how far back trending repositories were created
const TrendingWindow = 7 * 24 * time.Hour

// TrendingQuery returns the query for repositories created after now minus
// the trending window
func TrendingQuery(now time.Time) string {
	return "created:>" + now.Add(-TrendingWindow).UTC().Format("2006-01-02")
}

// Trending returns popular repositories created in the last week
func (c *Client) Trending(ctx context.Context, now time.Time) ([]Repository, error) {
	params := SearchParams{
		Query:   TrendingQuery(now),
		Sort:    SortStars,
		Order:   OrderDesc,
		PerPage: DefaultPerPage,
	}
	params.Filters.MinStars = 100

	resp, err := c.SearchRepositories(ctx, params)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Collection is a curated group of repositories backed by a fixed query
type Collection struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	Icon        string       `json:"icon" yaml:"icon"`
	Query       string       `json:"query" yaml:"query"`
	Repos       []Repository `json:"repos" yaml:"repos"`
}

// CollectionSize is how many repositories each collection holds
const CollectionSize = 5

// maxConcurrentCollections bounds parallel collection requests
const maxConcurrentCollections = 4

var collectionDefinitions = []Collection{
	{ID: "developer-tools", Title: "Must-have Developer Tools", Description: "Essential tools and utilities for modern development", Icon: "octicon:tools-24", Query: "topic:developer-tools stars:>1000"},
	{ID: "web-frameworks", Title: "Web Development Frameworks", Description: "Popular frameworks for building web applications", Icon: "octicon:browser-24", Query: "topic:web-framework stars:>5000"},
	{ID: "mobile-frameworks", Title: "Mobile Development Frameworks", Description: "Top frameworks for building mobile applications", Icon: "octicon:device-mobile-24", Query: "topic:mobile-framework stars:>3000"},
	{ID: "data-science", Title: "Data Science & ML", Description: "Popular tools for data science and machine learning", Icon: "octicon:graph-24", Query: "topic:data-science stars:>5000"},
	{ID: "devops-tools", Title: "DevOps & Infrastructure", Description: "Essential tools for DevOps and infrastructure management", Icon: "octicon:server-24", Query: "topic:devops stars:>3000"},
	{ID: "game-engines", Title: "Game Development", Description: "Leading game engines and development tools", Icon: "octicon:play-24", Query: "topic:game-engine stars:>1000"},
	{ID: "ui-libraries", Title: "UI Component Libraries", Description: "Popular UI component libraries and design systems", Icon: "octicon:paintbrush-24", Query: "topic:ui-library stars:>2000"},
	{ID: "backend-frameworks", Title: "Backend Frameworks", Description: "Powerful frameworks for building backend services", Icon: "octicon:server-24", Query: "topic:backend-framework stars:>3000"},
	{ID: "databases", Title: "Database Systems", Description: "Modern database systems and tools", Icon: "octicon:database-24", Query: "topic:database stars:>5000"},
	{ID: "testing-tools", Title: "Testing Tools", Description: "Popular testing frameworks and utilities", Icon: "octicon:checklist-24", Query: "topic:testing-framework stars:>1000"},
	{ID: "ai-frameworks", Title: "AI & Deep Learning Frameworks", Description: "Popular frameworks for building AI and deep learning applications", Icon: "octicon:cpu-24", Query: "topic:artificial-intelligence stars:>1000 topic:deep-learning"},
	{ID: "ai-llm-tools", Title: "LLM & Foundation Models", Description: "Tools and libraries for working with Large Language Models", Icon: "octicon:repo-template-24", Query: "topic:llm stars:>100 created:>2022-01-01"},
	{ID: "ai-vision", Title: "Computer Vision & Image AI", Description: "Tools for computer vision and image processing with AI", Icon: "octicon:eye-24", Query: "topic:computer-vision stars:>500"},
	{ID: "ai-agents", Title: "AI Agents & Automation", Description: "Frameworks and tools for building AI agents and automation", Icon: "octicon:copilot-24", Query: "topic:ai-agents stars:>100 created:>2022-01-01"},
	{ID: "ai-chatbots", Title: "Chatbots & Conversational AI", Description: "Tools for building intelligent chatbots and conversational interfaces", Icon: "octicon:comment-discussion-24", Query: "topic:chatbot stars:>500 topic:ai"},
}

// Collections returns the curated collection definitions without repositories
func Collections() []Collection {
	out := make([]Collection, len(collectionDefinitions))
	copy(out, collectionDefinitions)
	return out
}

// FindCollection looks up a collection definition by id
func FindCollection(id string) (Collection, error) {
	for _, col := range collectionDefinitions {
		if col.ID == id {
			return col, nil
		}
	}
	return Collection{}, fmt.Errorf("%w: %s", ErrUnknownCollection, id)
}

// FetchCollections fills each collection with its top repositories. Requests
// run concurrently; the first failure cancels the rest.
func (c *Client) FetchCollections(ctx context.Context, collections []Collection) ([]Collection, error) {
	out := make([]Collection, len(collections))
	copy(out, collections)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentCollections)

	for i := range out {
		i := i
		g.Go(func() error {
			resp, err := c.SearchRepositories(gctx, SearchParams{
				Query:   out[i].Query,
				Sort:    SortStars,
				PerPage: CollectionSize,
			})
			if err != nil {
				return fmt.Errorf("collection %s: %w", out[i].ID, err)
			}
			out[i].Repos = resp.Items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
