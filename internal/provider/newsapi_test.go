package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anoa.com/newshub/pkg/apperror"
)

func TestNewsAPIFetchHeadlinesNormalizes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/top-headlines" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("apiKey") != "test-key" {
			t.Errorf("apiKey = %q", r.URL.Query().Get("apiKey"))
		}
		if r.URL.Query().Get("country") != "in" {
			t.Errorf("country = %q", r.URL.Query().Get("country"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "ok",
			"articles": [{
				"source": {"id": "the-hindu", "name": "The Hindu"},
				"author": "Staff Reporter",
				"title": "Headline one",
				"description": "first story",
				"url": "https://example.com/1",
				"urlToImage": "https://example.com/1.jpg",
				"publishedAt": "2025-06-01T16:00:00+05:30",
				"content": "body"
			}]
		}`))
	}))
	defer server.Close()

	p := NewNewsAPIProvider("test-key", server.URL, "in", time.Second)
	articles, err := p.FetchHeadlines(context.Background(), "general", 8)
	if err != nil {
		t.Fatalf("FetchHeadlines: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("got %d articles, want 1", len(articles))
	}

	article := articles[0]
	if article.Title != "Headline one" || article.Source.Name != "The Hindu" {
		t.Errorf("unexpected article: %+v", article)
	}
	if article.PublishedAt != "2025-06-01T10:30:00Z" {
		t.Errorf("PublishedAt = %q, want normalized UTC", article.PublishedAt)
	}
	if article.ImageURL != "https://example.com/1.jpg" {
		t.Errorf("ImageURL = %q", article.ImageURL)
	}
}

func TestNewsAPIRateLimitSetsCooldown(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := NewNewsAPIProvider("test-key", server.URL, "in", time.Second)

	_, err := p.FetchHeadlines(context.Background(), "general", 8)
	if !errors.Is(err, apperror.ErrRateLimitExceeded) {
		t.Fatalf("err = %v, want ErrRateLimitExceeded", err)
	}

	// While the cooldown is active, no further requests reach the server.
	_, err = p.FetchHeadlines(context.Background(), "general", 8)
	if !errors.Is(err, apperror.ErrRateLimitExceeded) {
		t.Fatalf("err = %v, want ErrRateLimitExceeded from cooldown", err)
	}
	if calls != 1 {
		t.Errorf("server saw %d calls, want 1", calls)
	}
}

func TestNewsAPIBadStatusIsInvalidResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "articles": []}`))
	}))
	defer server.Close()

	p := NewNewsAPIProvider("test-key", server.URL, "in", time.Second)
	_, err := p.FetchHeadlines(context.Background(), "general", 8)
	if !errors.Is(err, apperror.ErrInvalidResponse) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestNewsAPIUnconfigured(t *testing.T) {
	p := NewNewsAPIProvider("", "https://unused.example", "in", time.Second)
	if p.Configured() {
		t.Error("Configured() = true without a key")
	}
	_, err := p.FetchHeadlines(context.Background(), "general", 8)
	if !errors.Is(err, apperror.ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}
