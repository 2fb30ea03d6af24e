// Package cache holds timestamped article pages. Freshness is computed from
// the stored timestamp against a caller-supplied TTL, so the same entry can
// be read with different freshness policies.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"anoa.com/newshub/internal/model"
)

type entry struct {
	Timestamp time.Time       `json:"timestamp"`
	Articles  []model.Article `json:"articles"`
}

// KeyStatus describes one cache entry for the status endpoint.
type KeyStatus struct {
	Key          string  `json:"key"`
	ArticleCount int     `json:"article_count"`
	AgeSeconds   float64 `json:"age_seconds"`
	Valid        bool    `json:"valid"`
}

type Cache struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Cache {
	return &Cache{store: store, now: time.Now}
}

// Get returns the cached articles for key when the entry is younger than
// ttl. An entry aged exactly ttl is expired.
func (c *Cache) Get(ctx context.Context, key string, ttl time.Duration) ([]model.Article, bool) {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if err != ErrMiss {
			log.Printf("cache: read %q failed: %v", key, err)
		}
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		log.Printf("cache: corrupt entry %q: %v", key, err)
		_ = c.store.Delete(ctx, key)
		return nil, false
	}

	if c.now().Sub(e.Timestamp) >= ttl {
		return nil, false
	}
	return e.Articles, true
}

// Put stores articles under key stamped with the current time. An empty
// slice is stored too; an empty page is still a valid answer.
func (c *Cache) Put(ctx context.Context, key string, articles []model.Article) error {
	raw, err := json.Marshal(entry{Timestamp: c.now(), Articles: articles})
	if err != nil {
		return err
	}
	return c.store.Set(ctx, key, raw)
}

func (c *Cache) Clear(ctx context.Context, key string) error {
	return c.store.Delete(ctx, key)
}

func (c *Cache) ClearAll(ctx context.Context) error {
	return c.store.DeleteAll(ctx)
}

// Status reports every entry's age and validity, sorted by key for stable
// output. ttlFor lets callers apply tier-specific TTLs per key.
func (c *Cache) Status(ctx context.Context, ttlFor func(key string) time.Duration) ([]KeyStatus, error) {
	keys, err := c.store.Keys(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)

	statuses := make([]KeyStatus, 0, len(keys))
	for _, key := range keys {
		raw, err := c.store.Get(ctx, key)
		if err != nil {
			continue
		}
		var e entry
		if err := json.Unmarshal(raw, &e); err != nil {
			continue
		}
		age := c.now().Sub(e.Timestamp)
		statuses = append(statuses, KeyStatus{
			Key:          key,
			ArticleCount: len(e.Articles),
			AgeSeconds:   age.Seconds(),
			Valid:        age < ttlFor(key),
		})
	}
	return statuses, nil
}
