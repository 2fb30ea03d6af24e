package provider

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestStaticProviderAlwaysServesFlaggedArticles(t *testing.T) {
	p := NewStaticProvider()
	if !p.Configured() {
		t.Fatal("static provider must always be configured")
	}

	articles, err := p.FetchHeadlines(context.Background(), "business", 3)
	if err != nil {
		t.Fatalf("FetchHeadlines: %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("got %d articles, want 3", len(articles))
	}
	for _, article := range articles {
		if !article.Fallback {
			t.Errorf("article %q not flagged as fallback", article.Title)
		}
		if article.Title == "" || article.Description == "" {
			t.Errorf("incomplete fallback article: %+v", article)
		}
	}
}

func TestStaticProviderStampsRecentTimestamps(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := NewStaticProvider()
	p.now = func() time.Time { return now }

	articles, err := p.FetchHeadlines(context.Background(), "unknown-category", 5)
	if err != nil {
		t.Fatalf("FetchHeadlines: %v", err)
	}
	for _, article := range articles {
		published, err := time.Parse(time.RFC3339, article.PublishedAt)
		if err != nil {
			t.Fatalf("unparsable timestamp %q: %v", article.PublishedAt, err)
		}
		if age := now.Sub(published); age <= 0 || age > 24*time.Hour {
			t.Errorf("article %q age %v, want within the last day", article.Title, age)
		}
	}
}

func TestStaticProviderSearchFilters(t *testing.T) {
	p := NewStaticProvider()

	articles, err := p.Search(context.Background(), "cricket", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(articles) == 0 {
		t.Fatal("expected at least one cricket match")
	}
	for _, article := range articles {
		text := strings.ToLower(article.Title + " " + article.Description)
		if !strings.Contains(text, "cricket") {
			t.Errorf("article %q does not match the query", article.Title)
		}
	}
}

func TestStaticProviderTrending(t *testing.T) {
	p := NewStaticProvider()
	articles := p.Trending(3)
	if len(articles) != 3 {
		t.Fatalf("got %d articles, want 3", len(articles))
	}
	for _, article := range articles {
		if !article.Fallback {
			t.Errorf("trending fallback %q not flagged", article.Title)
		}
	}
}
