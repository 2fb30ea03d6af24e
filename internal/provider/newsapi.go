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

// NewsAPIProvider wraps the primary headline API (newsapi.org schema).
type NewsAPIProvider struct {
	apiKey   string
	baseURL  string
	country  string
	client   *http.Client
	cooldown cooldown
}

func NewNewsAPIProvider(apiKey, baseURL, country string, timeout time.Duration) *NewsAPIProvider {
	return &NewsAPIProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		country: country,
		client:  newHTTPClient(timeout),
	}
}

func (p *NewsAPIProvider) Name() string { return "newsapi" }

func (p *NewsAPIProvider) Configured() bool { return p.apiKey != "" }

type newsAPIArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Articles []newsAPIArticle `json:"articles"`
}

func (p *NewsAPIProvider) FetchHeadlines(ctx context.Context, category string, pageSize int) ([]model.Article, error) {
	params := url.Values{}
	params.Set("country", p.country)
	params.Set("pageSize", strconv.Itoa(clampPageSize(pageSize, 100)))
	if category != "" {
		params.Set("category", category)
	}
	return p.request(ctx, "top-headlines", params)
}

func (p *NewsAPIProvider) Search(ctx context.Context, query string, pageSize int) ([]model.Article, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(clampPageSize(pageSize, 100)))
	return p.request(ctx, "everything", params)
}

func (p *NewsAPIProvider) request(ctx context.Context, endpoint string, params url.Values) ([]model.Article, error) {
	if !p.Configured() {
		return nil, fmt.Errorf("%w: NEWS_API_KEY is not set", apperror.ErrNotConfigured)
	}
	if p.cooldown.active() {
		return nil, fmt.Errorf("%w: newsapi cooldown active", apperror.ErrRateLimitExceeded)
	}

	params.Set("apiKey", p.apiKey)
	reqURL := fmt.Sprintf("%s/%s?%s", p.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrProviderUnavailable, err)
	}
	req.Header.Set("User-Agent", "NewsHub/1.0 (RealTime)")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		// 1 min cooldown
		p.cooldown.set(time.Minute)
		log.Printf("newsapi rate limit hit, backing off")
		return nil, fmt.Errorf("%w: newsapi returned 429", apperror.ErrRateLimitExceeded)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: newsapi returned %d", apperror.ErrProviderUnavailable, resp.StatusCode)
	}

	var body newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInvalidResponse, err)
	}
	if body.Status != "ok" {
		return nil, fmt.Errorf("%w: status %q", apperror.ErrInvalidResponse, body.Status)
	}

	articles := make([]model.Article, 0, len(body.Articles))
	for _, a := range body.Articles {
		articles = append(articles, model.Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: NormalizePublishedAt(a.PublishedAt),
			Source:      model.Source{ID: a.Source.ID, Name: a.Source.Name},
			Author:      a.Author,
			ImageURL:    a.URLToImage,
			Content:     a.Content,
		})
	}
	return articles, nil
}
