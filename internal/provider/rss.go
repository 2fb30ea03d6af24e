package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"anoa.com/newshub/internal/model"
	"anoa.com/newshub/pkg/apperror"
)

type rssFeed struct {
	url      string
	source   string
	sourceID string
}

// Indian news outlets with stable public feeds. Order matters: the first
// feeds fill the result before later ones get a turn.
var defaultFeeds = []rssFeed{
	{"https://timesofindia.indiatimes.com/rssfeedstopstories.cms", "Times of India", "times-of-india"},
	{"https://www.hindustantimes.com/feeds/rss/india-news/rssfeed.xml", "Hindustan Times", "hindustan-times"},
	{"https://feeds.feedburner.com/ndtvnews-top-stories", "NDTV News", "ndtv-news"},
}

const perFeedLimit = 10

// RSSProvider pulls from public feeds. It carries no key and no quota, so it
// sits after the API providers in the chain.
type RSSProvider struct {
	feeds  []rssFeed
	parser *gofeed.Parser
}

func NewRSSProvider(timeout time.Duration) *RSSProvider {
	parser := gofeed.NewParser()
	parser.Client = newHTTPClient(timeout)
	parser.UserAgent = "NewsHub/1.0 (FeedReader)"
	return &RSSProvider{feeds: defaultFeeds, parser: parser}
}

func (p *RSSProvider) Name() string { return "rss" }

func (p *RSSProvider) Configured() bool { return len(p.feeds) > 0 }

func (p *RSSProvider) FetchHeadlines(ctx context.Context, category string, pageSize int) ([]model.Article, error) {
	var articles []model.Article
	var lastErr error

	for _, feed := range p.feeds {
		parsed, err := p.parser.ParseURLWithContext(feed.url, ctx)
		if err != nil {
			lastErr = err
			continue
		}
		for i, item := range parsed.Items {
			if i >= perFeedLimit {
				break
			}
			article := itemToArticle(item, feed)
			if article.Title == "" {
				continue
			}
			articles = append(articles, article)
			if len(articles) >= pageSize {
				return articles, nil
			}
		}
	}

	if len(articles) == 0 {
		if lastErr != nil {
			return nil, fmt.Errorf("%w: all feeds failed: %v", apperror.ErrProviderUnavailable, lastErr)
		}
		return nil, fmt.Errorf("%w: feeds returned no items", apperror.ErrProviderUnavailable)
	}
	return articles, nil
}

// Search filters fetched feed items by a case-insensitive substring match on
// title and description.
func (p *RSSProvider) Search(ctx context.Context, query string, pageSize int) ([]model.Article, error) {
	all, err := p.FetchHeadlines(ctx, "home", perFeedLimit*len(p.feeds))
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	var matched []model.Article
	for _, article := range all {
		haystack := strings.ToLower(article.Title + " " + article.Description)
		if strings.Contains(haystack, query) {
			matched = append(matched, article)
			if len(matched) >= pageSize {
				break
			}
		}
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: no feed items matched", apperror.ErrProviderUnavailable)
	}
	return matched, nil
}

func itemToArticle(item *gofeed.Item, feed rssFeed) model.Article {
	published := ""
	if item.PublishedParsed != nil {
		published = item.PublishedParsed.UTC().Format(time.RFC3339)
	} else {
		published = NormalizePublishedAt(item.Published)
	}

	imageURL := ""
	if item.Image != nil {
		imageURL = item.Image.URL
	}

	author := feed.source
	if len(item.Authors) > 0 && item.Authors[0].Name != "" {
		author = item.Authors[0].Name
	}

	return model.Article{
		Title:       strings.TrimSpace(item.Title),
		Description: strings.TrimSpace(item.Description),
		URL:         item.Link,
		PublishedAt: published,
		Source:      model.Source{ID: feed.sourceID, Name: feed.source},
		Author:      author,
		ImageURL:    imageURL,
		Content:     strings.TrimSpace(item.Description),
	}
}
