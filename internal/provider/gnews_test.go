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

func TestGNewsSearchNormalizes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("q") != "elections" {
			t.Errorf("q = %q", r.URL.Query().Get("q"))
		}
		if r.URL.Query().Get("apikey") != "test-key" {
			t.Errorf("apikey = %q", r.URL.Query().Get("apikey"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"articles": [{
				"title": "Poll dates announced",
				"description": "five states vote in march",
				"content": "full text",
				"url": "https://example.com/polls",
				"image": "https://example.com/polls.jpg",
				"publishedAt": "2025-06-01T10:30:00Z",
				"source": {"name": "", "url": "https://example.com"}
			}]
		}`))
	}))
	defer server.Close()

	p := NewGNewsProvider("test-key", server.URL, "in", time.Second)
	articles, err := p.Search(context.Background(), "elections", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("got %d articles, want 1", len(articles))
	}
	if articles[0].Source.Name != "GNews" {
		t.Errorf("Source.Name = %q, want the GNews default for a blank name", articles[0].Source.Name)
	}
	if articles[0].ImageURL != "https://example.com/polls.jpg" {
		t.Errorf("ImageURL = %q", articles[0].ImageURL)
	}
}

func TestGNewsKeyRejectedIsConfigurationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	p := NewGNewsProvider("bad-key", server.URL, "in", time.Second)
	_, err := p.FetchHeadlines(context.Background(), "general", 10)
	if !errors.Is(err, apperror.ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestGNewsRateLimitBacksOffFiveMinutes(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := NewGNewsProvider("test-key", server.URL, "in", time.Second)

	if _, err := p.Search(context.Background(), "x", 10); !errors.Is(err, apperror.ErrRateLimitExceeded) {
		t.Fatalf("err = %v, want ErrRateLimitExceeded", err)
	}
	if _, err := p.Search(context.Background(), "x", 10); !errors.Is(err, apperror.ErrRateLimitExceeded) {
		t.Fatalf("err = %v, want ErrRateLimitExceeded from cooldown", err)
	}
	if calls != 1 {
		t.Errorf("server saw %d calls, want 1", calls)
	}
}
