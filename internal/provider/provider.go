package provider

import (
	"context"
	"net/http"
	"sync"
	"time"

	"anoa.com/newshub/internal/model"
)

// Provider is the common capability set of an upstream news source. Adapters
// normalize their native schema into model.Article and report expected
// failures as tagged errors, never panics.
type Provider interface {
	Name() string
	Configured() bool
	FetchHeadlines(ctx context.Context, category string, pageSize int) ([]model.Article, error)
	Search(ctx context.Context, query string, pageSize int) ([]model.Article, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// cooldown short-circuits calls after an upstream rate-limit response. While
// active, adapters fail fast without touching the network.
type cooldown struct {
	mu    sync.Mutex
	until time.Time
}

func (c *cooldown) active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Now().Before(c.until)
}

func (c *cooldown) set(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.until = time.Now().Add(d)
}

var publishedAtFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05.999999999Z",
	time.RFC1123,
	time.RFC1123Z,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NormalizePublishedAt coerces the loose date formats upstreams emit into
// RFC 3339. An empty or unparsable input returns "" — consumers deliberately
// fail open on missing publish times.
func NormalizePublishedAt(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range publishedAtFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return ""
}

func clampPageSize(pageSize, max int) int {
	if pageSize <= 0 {
		return 1
	}
	if pageSize > max {
		return max
	}
	return pageSize
}
