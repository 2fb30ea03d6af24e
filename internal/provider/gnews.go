package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"anoa.com/newshub/internal/model"
	"anoa.com/newshub/pkg/apperror"
)

// GNewsProvider wraps the search-oriented secondary provider (gnews.io
// schema). Its free tier carries a daily request budget, so callers gate it
// behind the quota tracker.
type GNewsProvider struct {
	apiKey   string
	baseURL  string
	country  string
	client   *http.Client
	cooldown cooldown
}

func NewGNewsProvider(apiKey, baseURL, country string, timeout time.Duration) *GNewsProvider {
	return &GNewsProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		country: country,
		client:  newHTTPClient(timeout),
	}
}

func (p *GNewsProvider) Name() string { return "gnews" }

func (p *GNewsProvider) Configured() bool { return p.apiKey != "" }

type gnewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"source"`
}

type gnewsResponse struct {
	Articles []gnewsArticle `json:"articles"`
}

func (p *GNewsProvider) FetchHeadlines(ctx context.Context, category string, pageSize int) ([]model.Article, error) {
	params := url.Values{}
	params.Set("lang", "en")
	params.Set("country", p.country)
	params.Set("max", strconv.Itoa(clampPageSize(pageSize, 100)))
	if category != "" {
		params.Set("category", category)
	}
	return p.request(ctx, "top-headlines", params)
}

func (p *GNewsProvider) Search(ctx context.Context, query string, pageSize int) ([]model.Article, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("lang", "en")
	params.Set("country", p.country)
	params.Set("max", strconv.Itoa(clampPageSize(pageSize, 100)))
	return p.request(ctx, "search", params)
}

func (p *GNewsProvider) request(ctx context.Context, endpoint string, params url.Values) ([]model.Article, error) {
	if !p.Configured() {
		return nil, fmt.Errorf("%w: GNEWS_API_KEY is not set", apperror.ErrNotConfigured)
	}
	if p.cooldown.active() {
		return nil, fmt.Errorf("%w: gnews cooldown active", apperror.ErrRateLimitExceeded)
	}

	params.Set("apikey", p.apiKey)
	reqURL := fmt.Sprintf("%s/%s?%s", p.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrProviderUnavailable, err)
	}
	req.Header.Set("User-Agent", "NewsHub/1.0 (India-focused)")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		// 5 min cooldown
		p.cooldown.set(5 * time.Minute)
		log.Printf("gnews rate limit hit, backing off")
		return nil, fmt.Errorf("%w: gnews returned 429", apperror.ErrRateLimitExceeded)
	case http.StatusForbidden, http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: gnews api key rejected", apperror.ErrNotConfigured)
	case http.StatusOK:
	default:
		return nil, fmt.Errorf("%w: gnews returned %d", apperror.ErrProviderUnavailable, resp.StatusCode)
	}

	var body gnewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInvalidResponse, err)
	}

	articles := make([]model.Article, 0, len(body.Articles))
	for _, a := range body.Articles {
		name := a.Source.Name
		if name == "" {
			name = "GNews"
		}
		articles = append(articles, model.Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: NormalizePublishedAt(a.PublishedAt),
			Source:      model.Source{Name: name},
			ImageURL:    a.Image,
			Content:     a.Content,
		})
	}
	return articles, nil
}
