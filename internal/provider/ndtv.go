package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"anoa.com/newshub/internal/model"
	"anoa.com/newshub/pkg/apperror"
)

// NDTVProvider wraps the regional scraping API. The upstream exposes three
// endpoints (/general, /cities, /sports); responses use headline/image_url/
// posted_date field names that get translated here.
type NDTVProvider struct {
	baseURL string
	enabled bool
	client  *http.Client
}

func NewNDTVProvider(baseURL string, enabled bool, timeout time.Duration) *NDTVProvider {
	return &NDTVProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		enabled: enabled,
		client:  newHTTPClient(timeout),
	}
}

func (p *NDTVProvider) Name() string { return "ndtv" }

func (p *NDTVProvider) Configured() bool { return p.enabled && p.baseURL != "" }

type ndtvItem struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url"`
	PostedDate  string `json:"posted_date"`
}

type ndtvResponse struct {
	News []struct {
		Category string     `json:"category"`
		Articles []ndtvItem `json:"articles"`
	} `json:"news"`
}

var ndtvSports = map[string]struct{}{
	"cricket": {}, "football": {}, "tennis": {}, "hockey": {}, "badminton": {},
}

// ndtvGeneral maps app categories onto the upstream's /general categories.
// The upstream has no technology section; science is the closest fit.
var ndtvGeneral = map[string][]string{
	"home":          {"latest", "india"},
	"india":         {"india"},
	"international": {"world"},
	"business":      {"business"},
	"entertainment": {"entertainment"},
	"technology":    {"science"},
	"miscellaneous": {"offbeat"},
}

func (p *NDTVProvider) FetchHeadlines(ctx context.Context, category string, pageSize int) ([]model.Article, error) {
	category = strings.ToLower(category)

	if category == "sports" {
		return p.fetch(ctx, "/sports", "sport", []string{"cricket", "football", "tennis"}, pageSize)
	}
	if _, ok := ndtvSports[category]; ok {
		return p.fetch(ctx, "/sports", "sport", []string{category}, pageSize)
	}

	values, ok := ndtvGeneral[category]
	if !ok {
		values = []string{"latest"}
	}
	return p.fetch(ctx, "/general", "category", values, pageSize)
}

// Search is unsupported upstream; the pipeline falls through to the next
// source.
func (p *NDTVProvider) Search(ctx context.Context, query string, pageSize int) ([]model.Article, error) {
	return nil, fmt.Errorf("%w: ndtv api has no search endpoint", apperror.ErrProviderUnavailable)
}

func (p *NDTVProvider) fetch(ctx context.Context, path, param string, values []string, limit int) ([]model.Article, error) {
	if !p.Configured() {
		return nil, fmt.Errorf("%w: ndtv api disabled", apperror.ErrNotConfigured)
	}

	params := url.Values{}
	params.Set(param, fmt.Sprintf("values(%s)", strings.Join(values, ",")))
	params.Set("field", "values(headline,description,url,image_url,posted_date)")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrProviderUnavailable, err)
	}
	req.Header.Set("User-Agent", "NewsHub/1.0 (NDTVClient)")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: ndtv returned %d", apperror.ErrProviderUnavailable, resp.StatusCode)
	}

	var body ndtvResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInvalidResponse, err)
	}
	if body.News == nil {
		return nil, fmt.Errorf("%w: missing news payload", apperror.ErrInvalidResponse)
	}

	var articles []model.Article
	for _, group := range body.News {
		category := group.Category
		if category == "" {
			category = "general"
		}
		for _, item := range group.Articles {
			if item.Headline == "" {
				continue
			}
			articles = append(articles, model.Article{
				Title:       item.Headline,
				Description: item.Description,
				URL:         item.URL,
				PublishedAt: NormalizePublishedAt(item.PostedDate),
				Source:      model.Source{ID: "ndtv", Name: "NDTV"},
				Author:      "NDTV",
				ImageURL:    item.ImageURL,
				Content:     item.Description,
				Category:    category,
			})
			if len(articles) >= limit {
				return articles, nil
			}
		}
	}
	return articles, nil
}
