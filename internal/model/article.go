package model

import "strings"

// Source identifies the outlet an article came from.
type Source struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Article is the normalized news item used uniformly after provider-specific
// translation. Providers map their native schema into this record at the
// adapter boundary; downstream components carry no provider knowledge.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at,omitempty"`
	Source      Source `json:"source"`
	Author      string `json:"author,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Content     string `json:"content,omitempty"`

	// Computed during classification/ranking, never persisted upstream.
	RelevanceScore float64 `json:"relevance_score,omitempty"`
	Category       string  `json:"category,omitempty"`

	// Fallback marks static data so consumers can tell it from live content.
	Fallback bool `json:"fallback,omitempty"`
}

// NormalizedTitle is the article's deduplication identity: trimmed and
// lower-cased. Two articles with the same normalized title are duplicates
// regardless of source or URL.
func (a Article) NormalizedTitle() string {
	return strings.ToLower(strings.TrimSpace(a.Title))
}

// Text returns the lowercased searchable text of the article.
func (a Article) Text() string {
	return strings.ToLower(a.Title + " " + a.Description + " " + a.Content)
}

// Dedupe keeps the first occurrence of every normalized title, dropping
// subsequent duplicates and articles with empty titles. Input order is
// preserved, so higher-priority sources win when batches are merged in
// priority order.
func Dedupe(articles []Article) []Article {
	seen := make(map[string]struct{}, len(articles))
	unique := make([]Article, 0, len(articles))

	for _, a := range articles {
		title := a.NormalizedTitle()
		if title == "" {
			continue
		}
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		unique = append(unique, a)
	}

	return unique
}
