package cache

import (
	"context"
	"testing"
	"time"

	"anoa.com/newshub/internal/model"
)

func testArticles(titles ...string) []model.Article {
	articles := make([]model.Article, 0, len(titles))
	for _, title := range titles {
		articles = append(articles, model.Article{Title: title, URL: "https://example.com/" + title})
	}
	return articles
}

func TestCacheHitWithinTTL(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore())

	if err := c.Put(ctx, "category:technology", testArticles("a", "b")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok := c.Get(ctx, "category:technology", 10*time.Minute)
	if !ok {
		t.Fatal("expected a hit for a fresh entry")
	}
	if len(got) != 2 || got[0].Title != "a" {
		t.Errorf("got %v, want the stored articles in order", got)
	}
}

func TestCacheExpiryBoundary(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := 10 * time.Minute

	c := New(NewMemoryStore())
	c.now = func() time.Time { return base }
	if err := c.Put(ctx, "master", testArticles("a")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	tests := []struct {
		name    string
		elapsed time.Duration
		wantHit bool
	}{
		{"just inside ttl", ttl - time.Second, true},
		{"exactly at ttl", ttl, false},
		{"just past ttl", ttl + time.Second, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.now = func() time.Time { return base.Add(tt.elapsed) }
			_, ok := c.Get(ctx, "master", ttl)
			if ok != tt.wantHit {
				t.Errorf("hit = %v, want %v", ok, tt.wantHit)
			}
		})
	}
}

func TestCacheMissOnUnknownKey(t *testing.T) {
	c := New(NewMemoryStore())
	if _, ok := c.Get(context.Background(), "nope", time.Minute); ok {
		t.Error("expected a miss for an unknown key")
	}
}

func TestCacheStoresEmptyPage(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore())

	if err := c.Put(ctx, "category:ghost", []model.Article{}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok := c.Get(ctx, "category:ghost", time.Minute)
	if !ok {
		t.Fatal("an empty page is still a valid entry")
	}
	if len(got) != 0 {
		t.Errorf("got %d articles, want 0", len(got))
	}
}

func TestCacheClearAndStatus(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := New(NewMemoryStore())
	c.now = func() time.Time { return base }

	if err := c.Put(ctx, "category:sports", testArticles("a")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.Put(ctx, "master", testArticles("b", "c")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	fixedTTL := func(string) time.Duration { return 10 * time.Minute }

	c.now = func() time.Time { return base.Add(5 * time.Minute) }
	statuses, err := c.Status(ctx, fixedTTL)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("got %d statuses, want 2", len(statuses))
	}
	// Sorted by key: category:sports then master.
	if statuses[0].Key != "category:sports" || !statuses[0].Valid {
		t.Errorf("unexpected first status: %+v", statuses[0])
	}
	if statuses[1].ArticleCount != 2 {
		t.Errorf("master count = %d, want 2", statuses[1].ArticleCount)
	}

	if err := c.Clear(ctx, "master"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := c.Get(ctx, "master", time.Hour); ok {
		t.Error("cleared key should miss")
	}

	if err := c.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	statuses, err = c.Status(ctx, fixedTTL)
	if err != nil {
		t.Fatalf("Status after ClearAll: %v", err)
	}
	if len(statuses) != 0 {
		t.Errorf("got %d statuses after ClearAll, want 0", len(statuses))
	}
}
