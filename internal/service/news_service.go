package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"anoa.com/newshub/internal/cache"
	"anoa.com/newshub/internal/classify"
	"anoa.com/newshub/internal/model"
	"anoa.com/newshub/internal/provider"
	"anoa.com/newshub/internal/quota"
	"anoa.com/newshub/internal/rank"
	"anoa.com/newshub/pkg/apperror"
)

// Source tags returned alongside articles so callers can tell where a page
// came from.
const (
	SourceCategoryCache = "category_cache"
	SourceMasterCache   = "master_cache"
	SourceLive          = "live"
	SourceFallback      = "fallback"
)

const (
	masterKey   = "master"
	trendingKey = "trending"

	// rawFetchSize is how many articles the pipeline pulls into the master
	// pool; every category page is carved out of this pool, so it has to be
	// big enough to feed classification for all of them.
	rawFetchSize = 50
)

// QuotaStatus reports one tracked provider's daily budget.
type QuotaStatus struct {
	Provider  string `json:"provider"`
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
}

// CacheReport is the payload of the cache status endpoint.
type CacheReport struct {
	Entries []cache.KeyStatus `json:"entries"`
	Quotas  []QuotaStatus     `json:"quotas"`
}

type NewsService interface {
	GetCategory(ctx context.Context, category string, pageSize int) ([]model.Article, string, error)
	Search(ctx context.Context, query string, pageSize int) ([]model.Article, error)
	Trending(ctx context.Context, pageSize int) ([]model.Article, string, error)
	ForceRefresh(ctx context.Context) error
	CacheStatus(ctx context.Context) (*CacheReport, error)
}

type newsService struct {
	providers  []provider.Provider
	static     *provider.StaticProvider
	quotas     map[string]*quota.Tracker
	cache      *cache.Cache
	classifier *classify.Classifier
	scorer     *rank.Scorer

	masterTTL       time.Duration
	categoryTTL     time.Duration
	pipelineTimeout time.Duration
}

// NewNewsService wires the aggregation pipeline. Providers are tried in
// slice order; trackers in quotas gate the provider with the matching name.
func NewNewsService(
	providers []provider.Provider,
	static *provider.StaticProvider,
	quotas map[string]*quota.Tracker,
	articleCache *cache.Cache,
	classifier *classify.Classifier,
	scorer *rank.Scorer,
	masterTTL, categoryTTL, pipelineTimeout time.Duration,
) (NewsService, error) {
	if err := classifier.Validate(); err != nil {
		return nil, err
	}
	return &newsService{
		providers:       providers,
		static:          static,
		quotas:          quotas,
		cache:           articleCache,
		classifier:      classifier,
		scorer:          scorer,
		masterTTL:       masterTTL,
		categoryTTL:     categoryTTL,
		pipelineTimeout: pipelineTimeout,
	}, nil
}

func categoryKey(category string) string {
	return "category:" + strings.ToLower(category)
}

// GetCategory serves a category page: category cache, then the master pool
// (cached or freshly fetched), then the static fallback. It always returns
// something displayable; the only error is a fully unconfigured deployment.
func (s *newsService) GetCategory(ctx context.Context, category string, pageSize int) ([]model.Article, string, error) {
	category = strings.ToLower(category)

	if articles, ok := s.cache.Get(ctx, categoryKey(category), s.categoryTTL); ok {
		return articles, SourceCategoryCache, nil
	}

	pool, tag, err := s.masterPool(ctx)
	if err != nil {
		return nil, "", err
	}
	if tag == SourceFallback {
		articles, _ := s.static.FetchHeadlines(ctx, category, pageSize)
		return articles, SourceFallback, nil
	}

	page := s.scorer.Rank(s.classifier.Filter(pool, category, pageSize))
	if err := s.cache.Put(ctx, categoryKey(category), page); err != nil {
		log.Printf("news: caching %s page failed: %v", category, err)
	}
	return page, tag, nil
}

// masterPool returns the deduplicated general pool, fetching from the
// provider chain on a cache miss.
func (s *newsService) masterPool(ctx context.Context) ([]model.Article, string, error) {
	if articles, ok := s.cache.Get(ctx, masterKey, s.masterTTL); ok {
		return articles, SourceMasterCache, nil
	}

	merged, err := s.fetchChain(ctx, func(ctx context.Context, p provider.Provider) ([]model.Article, error) {
		return p.FetchHeadlines(ctx, "home", rawFetchSize)
	})
	if err != nil {
		return nil, "", err
	}
	if len(merged) == 0 {
		return nil, SourceFallback, nil
	}

	pool := model.Dedupe(merged)
	if err := s.cache.Put(ctx, masterKey, pool); err != nil {
		log.Printf("news: caching master pool failed: %v", err)
	}
	return pool, SourceLive, nil
}

// fetchChain walks the provider list in priority order, skipping anything
// unconfigured or out of quota, and accumulates results until it has a full
// raw batch. Transient failures move on to the next provider. The whole walk
// shares one timeout so a string of slow providers cannot stall a request.
func (s *newsService) fetchChain(ctx context.Context, fetch func(context.Context, provider.Provider) ([]model.Article, error)) ([]model.Article, error) {
	if s.pipelineTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.pipelineTimeout)
		defer cancel()
	}

	var merged []model.Article
	attempted := 0

	for _, p := range s.providers {
		if !p.Configured() {
			continue
		}
		if tracker := s.quotas[p.Name()]; tracker != nil && !tracker.CanUse() {
			log.Printf("news: skipping %s, daily quota exhausted", p.Name())
			continue
		}

		attempted++
		articles, err := fetch(ctx, p)
		if tracker := s.quotas[p.Name()]; tracker != nil {
			tracker.RecordUse()
		}
		if err != nil {
			if apperror.IsTransient(err) {
				log.Printf("news: provider %s failed, trying next: %v", p.Name(), err)
				continue
			}
			log.Printf("news: provider %s misconfigured, trying next: %v", p.Name(), err)
			continue
		}

		merged = append(merged, articles...)
		if len(merged) >= rawFetchSize {
			break
		}
	}

	if attempted == 0 {
		return nil, fmt.Errorf("%w: no news provider is configured", apperror.ErrNotConfigured)
	}
	return merged, nil
}

// Search bypasses the cache; queries are too varied to be worth caching.
func (s *newsService) Search(ctx context.Context, query string, pageSize int) ([]model.Article, error) {
	merged, err := s.fetchChain(ctx, func(ctx context.Context, p provider.Provider) ([]model.Article, error) {
		return p.Search(ctx, query, pageSize)
	})
	if err != nil {
		return nil, err
	}
	if len(merged) == 0 {
		articles, _ := s.static.Search(ctx, query, pageSize)
		return articles, nil
	}

	ranked := s.scorer.Rank(model.Dedupe(merged))
	if len(ranked) > pageSize {
		ranked = ranked[:pageSize]
	}
	return ranked, nil
}

// Trending serves the prioritized view of the freshest pool, filtered to
// articles above the quality floor.
func (s *newsService) Trending(ctx context.Context, pageSize int) ([]model.Article, string, error) {
	if articles, ok := s.cache.Get(ctx, trendingKey, s.categoryTTL); ok {
		return articles, SourceCategoryCache, nil
	}

	pool, tag, err := s.masterPool(ctx)
	if err != nil {
		return nil, "", err
	}
	if tag == SourceFallback {
		return s.static.Trending(pageSize), SourceFallback, nil
	}

	trending := s.scorer.Prioritize(pool, pageSize)
	if len(trending) == 0 {
		return s.static.Trending(pageSize), SourceFallback, nil
	}
	if err := s.cache.Put(ctx, trendingKey, trending); err != nil {
		log.Printf("news: caching trending page failed: %v", err)
	}
	return trending, tag, nil
}

// ForceRefresh drops every cache entry and warms the master pool again.
func (s *newsService) ForceRefresh(ctx context.Context) error {
	if err := s.cache.ClearAll(ctx); err != nil {
		return err
	}
	_, tag, err := s.masterPool(ctx)
	if err != nil {
		return err
	}
	log.Printf("news: forced refresh complete, source=%s", tag)
	return nil
}

func (s *newsService) CacheStatus(ctx context.Context) (*CacheReport, error) {
	entries, err := s.cache.Status(ctx, func(key string) time.Duration {
		if key == masterKey {
			return s.masterTTL
		}
		return s.categoryTTL
	})
	if err != nil {
		return nil, err
	}

	report := &CacheReport{Entries: entries}
	for name, tracker := range s.quotas {
		report.Quotas = append(report.Quotas, QuotaStatus{
			Provider:  name,
			Used:      tracker.Used(),
			Limit:     tracker.Limit(),
			Remaining: tracker.Remaining(),
		})
	}
	return report, nil
}
